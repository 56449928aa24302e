// Package compliance checks target repositories against the governance
// rule tables and validates dependency direction against the tier table.
//
// The tables live in rules.yaml, embedded at build time. Nothing is read
// from the environment when a check runs.
package compliance

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ProjectType selects a rule set.
type ProjectType string

const (
	TypeRust       ProjectType = "rust"
	TypePython     ProjectType = "python"
	TypeGovernance ProjectType = "governance"
)

// ValidTypes lists the project types in display order.
var ValidTypes = []ProjectType{TypeRust, TypePython, TypeGovernance}

// Severity of a failed rule.
type Severity string

const (
	SeverityFail Severity = "FAIL"
	SeverityWarn Severity = "WARN"
)

// RuleKind tags a Rule.
type RuleKind string

const (
	KindFileExists       RuleKind = "file-exists"
	KindNamePrefix       RuleKind = "name-prefix"
	KindContentContains  RuleKind = "content-contains"
	KindEqualsTemplate   RuleKind = "content-equals-template"
	KindNamedJobPresent  RuleKind = "named-job-present"
	KindNamedStepPresent RuleKind = "named-step-present"
)

// Rule is one check in a compliance run.
type Rule struct {
	Kind     RuleKind
	Severity Severity
	// Target is the repo-relative file the rule inspects. For
	// KindNamePrefix it is the required prefix.
	Target string
	// Template is the governance template path for KindEqualsTemplate.
	Template string
	// Needles are the accepted substrings for KindContentContains; any
	// one suffices. For CI rules Needles[0] is the job or step name.
	Needles []string
	// Pass and Fail override the default messages.
	Pass, Fail string
}

type contentRule struct {
	File     string   `yaml:"file"`
	Contains []string `yaml:"contains"`
	Severity Severity `yaml:"severity"`
	Pass     string   `yaml:"pass"`
	Fail     string   `yaml:"fail"`
}

type driftRule struct {
	File     string `yaml:"file"`
	Template string `yaml:"template"`
}

type typeRules struct {
	Files   []string      `yaml:"files"`
	Content []contentRule `yaml:"content"`
	CIJob   string        `yaml:"ci_job"`
	CISteps []string      `yaml:"ci_steps"`
}

// Tables is the decoded rules.yaml.
type Tables struct {
	NamingPrefix string                    `yaml:"naming_prefix"`
	CIWorkflow   string                    `yaml:"ci_workflow"`
	CommonFiles  []string                  `yaml:"common_files"`
	Drift        []driftRule               `yaml:"drift"`
	ProjectTypes map[ProjectType]typeRules `yaml:"project_types"`
	Tiers        map[string]int            `yaml:"tiers"`
}

//go:embed rules.yaml
var rulesYAML []byte

// LoadTables decodes the embedded rule tables.
func LoadTables() (*Tables, error) {
	return ParseTables(rulesYAML)
}

// ParseTables decodes rule tables from YAML and checks that every project
// type has a CI job.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding rule tables: %w", err)
	}
	for _, pt := range ValidTypes {
		tr, ok := t.ProjectTypes[pt]
		if !ok {
			return nil, fmt.Errorf("rule tables: no rules for project type %q", pt)
		}
		if tr.CIJob == "" {
			return nil, fmt.Errorf("rule tables: project type %q has no ci_job", pt)
		}
	}
	return &t, nil
}

// MustLoadTables is LoadTables for package initialization.
func MustLoadTables() *Tables {
	t, err := LoadTables()
	if err != nil {
		panic(err)
	}
	return t
}

// Rules expands the tables into the ordered rule list for pt: required
// files, naming, content, template drift, then CI job and steps.
func (t *Tables) Rules(pt ProjectType) ([]Rule, bool) {
	tr, ok := t.ProjectTypes[pt]
	if !ok {
		return nil, false
	}

	var rules []Rule
	for _, f := range append(append([]string{}, t.CommonFiles...), tr.Files...) {
		rules = append(rules, Rule{Kind: KindFileExists, Severity: SeverityFail, Target: f})
	}

	rules = append(rules, Rule{Kind: KindNamePrefix, Severity: SeverityWarn, Target: t.NamingPrefix})

	for _, c := range tr.Content {
		rules = append(rules, Rule{
			Kind:     KindContentContains,
			Severity: c.Severity,
			Target:   c.File,
			Needles:  c.Contains,
			Pass:     c.Pass,
			Fail:     c.Fail,
		})
	}

	for _, d := range t.Drift {
		rules = append(rules, Rule{
			Kind:     KindEqualsTemplate,
			Severity: SeverityWarn,
			Target:   d.File,
			Template: d.Template,
		})
	}

	rules = append(rules, Rule{
		Kind:     KindNamedJobPresent,
		Severity: SeverityFail,
		Target:   t.CIWorkflow,
		Needles:  []string{tr.CIJob},
	})
	for _, step := range tr.CISteps {
		rules = append(rules, Rule{
			Kind:     KindNamedStepPresent,
			Severity: SeverityFail,
			Target:   t.CIWorkflow,
			Needles:  []string{step},
		})
	}
	return rules, true
}

// KnownProjects returns the tier table's project names, sorted.
func (t *Tables) KnownProjects() []string {
	names := make([]string, 0, len(t.Tiers))
	for name := range t.Tiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
