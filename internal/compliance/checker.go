package compliance

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aces-framework/aces-governance/internal/docs"
)

var (
	// ErrInvalidProjectType is returned for a type outside ValidTypes.
	ErrInvalidProjectType = errors.New("invalid project type")
	// ErrTargetNotFound is returned when the target is not a directory.
	ErrTargetNotFound = errors.New("directory not found")
)

// Checker evaluates the rule tables against a target repository. Template
// drift is measured against the governance root's templates.
type Checker struct {
	root   *docs.Root
	tables *Tables
}

// NewChecker creates a Checker.
func NewChecker(root *docs.Root, tables *Tables) *Checker {
	return &Checker{root: root, tables: tables}
}

// Check runs every rule for projectType against targetDir.
func (c *Checker) Check(targetDir, projectType string) (*Report, error) {
	pt := ProjectType(projectType)
	rules, ok := c.tables.Rules(pt)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProjectType, projectType)
	}

	info, err := os.Stat(targetDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, targetDir)
	}

	dir := filepath.Clean(targetDir)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	run := &checkRun{
		checker: c,
		target:  targetDir,
		name:    filepath.Base(dir),
		files:   make(map[string]string),
	}
	report := &Report{Repo: run.name, Type: pt}
	for _, rule := range rules {
		line, applies, err := run.evaluate(rule)
		if err != nil {
			return nil, err
		}
		if applies {
			report.add(line)
		}
	}
	return report, nil
}

// RenderCheck runs Check and renders the outcome as text. Invalid input is
// rendered as a rejection rather than returned as an error.
func (c *Checker) RenderCheck(targetDir, projectType string) (string, error) {
	report, err := c.Check(targetDir, projectType)
	switch {
	case errors.Is(err, ErrInvalidProjectType):
		return fmt.Sprintf("Invalid repo_type: %s. Must be rust, python, or governance.", projectType), nil
	case errors.Is(err, ErrTargetNotFound):
		return fmt.Sprintf("Directory not found: %s", targetDir), nil
	case err != nil:
		return "", err
	}
	return report.String(), nil
}

// checkRun holds per-call state. files memoizes reads within one run so
// the CI workflow is read once for all of its step rules.
type checkRun struct {
	checker *Checker
	target  string
	name    string
	files   map[string]string
}

func (r *checkRun) path(rel string) string {
	return filepath.Join(r.target, filepath.FromSlash(rel))
}

func (r *checkRun) exists(rel string) bool {
	_, err := os.Stat(r.path(rel))
	return err == nil
}

func (r *checkRun) read(rel string) (string, error) {
	if content, ok := r.files[rel]; ok {
		return content, nil
	}
	content, err := docs.ReadFile(r.path(rel))
	if err != nil {
		return "", err
	}
	r.files[rel] = content
	return content, nil
}

// evaluate returns the report line for rule. applies is false when the
// rule's subject file is absent and the rule is conditional on it.
func (r *checkRun) evaluate(rule Rule) (ReportLine, bool, error) {
	switch rule.Kind {
	case KindFileExists:
		if r.exists(rule.Target) {
			return pass("%s exists", rule.Target), true, nil
		}
		return finding(rule.Severity, "%s missing", rule.Target), true, nil

	case KindNamePrefix:
		if strings.HasPrefix(r.name, rule.Target) {
			return pass("Repo name '%s' follows naming convention", r.name), true, nil
		}
		return finding(rule.Severity, "Repo name '%s' does not start with '%s-'", r.name, rule.Target), true, nil

	case KindContentContains:
		if !r.exists(rule.Target) {
			return ReportLine{}, false, nil
		}
		content, err := r.read(rule.Target)
		if err != nil {
			return ReportLine{}, false, err
		}
		for _, needle := range rule.Needles {
			if strings.Contains(content, needle) {
				return pass("%s", rule.Pass), true, nil
			}
		}
		return finding(rule.Severity, "%s", rule.Fail), true, nil

	case KindEqualsTemplate:
		tmpl, ok := r.checker.root.TemplatePath(rule.Template)
		if !ok || !r.exists(rule.Target) || !fileExists(tmpl) {
			return ReportLine{}, false, nil
		}
		local, err := os.ReadFile(r.path(rule.Target))
		if err != nil {
			return ReportLine{}, false, fmt.Errorf("reading %s: %w", rule.Target, err)
		}
		want, err := os.ReadFile(tmpl)
		if err != nil {
			return ReportLine{}, false, fmt.Errorf("reading template %s: %w", rule.Template, err)
		}
		if bytes.Equal(local, want) {
			return pass("%s matches governance template", rule.Target), true, nil
		}
		return finding(rule.Severity, "%s differs from governance template (template drift)", rule.Target), true, nil

	case KindNamedJobPresent, KindNamedStepPresent:
		if !r.exists(rule.Target) {
			return ReportLine{}, false, nil
		}
		content, err := r.read(rule.Target)
		if err != nil {
			return ReportLine{}, false, err
		}
		name := rule.Needles[0]
		if rule.Kind == KindNamedJobPresent {
			if strings.Contains(content, "  "+name+":") {
				return pass("CI job name is '%s'", name), true, nil
			}
			return finding(rule.Severity, "CI workflow missing expected job name '%s'", name), true, nil
		}
		if strings.Contains(content, name) {
			return pass("CI contains '%s' step", name), true, nil
		}
		return finding(rule.Severity, "CI workflow missing expected step '%s'", name), true, nil
	}

	return ReportLine{}, false, fmt.Errorf("unknown rule kind %q", rule.Kind)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
