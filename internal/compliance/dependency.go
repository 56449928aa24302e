package compliance

import (
	"fmt"
	"strings"
)

// Violation is a dependency on a more downstream tier.
type Violation struct {
	Project        string
	ProjectTier    int
	Dependency     string
	DependencyTier int
}

func (v Violation) String() string {
	return fmt.Sprintf("VIOLATION: %s (tier %d) depends on %s (tier %d) — higher tier dependency",
		v.Project, v.ProjectTier, v.Dependency, v.DependencyTier)
}

// TieredDependency is a validated dependency with its tier.
type TieredDependency struct {
	Name string
	Tier int
}

// DependencyResult is the outcome of CheckDependencies.
type DependencyResult struct {
	Project string
	// Known is false when Project is not in the tier table; nothing else
	// is populated in that case except KnownProjects.
	Known         bool
	Tier          int
	Violations    []Violation
	Valid         []TieredDependency
	KnownProjects []string
}

// CheckDependencies validates that project only depends on projects at
// its own tier or a lower one. Dependencies absent from the tier table
// are external and ignored.
func (t *Tables) CheckDependencies(project string, deps []string) DependencyResult {
	tier, ok := t.Tiers[project]
	if !ok {
		return DependencyResult{Project: project, KnownProjects: t.KnownProjects()}
	}

	res := DependencyResult{Project: project, Known: true, Tier: tier}
	for _, dep := range deps {
		depTier, ok := t.Tiers[dep]
		if !ok {
			continue
		}
		if depTier > tier {
			res.Violations = append(res.Violations, Violation{
				Project: project, ProjectTier: tier,
				Dependency: dep, DependencyTier: depTier,
			})
			continue
		}
		res.Valid = append(res.Valid, TieredDependency{Name: dep, Tier: depTier})
	}
	return res
}

// String renders the result: the unknown-project message, the violations
// only, or the validated dependencies.
func (r DependencyResult) String() string {
	if !r.Known {
		return fmt.Sprintf("Unknown repo: %s. Known repos: %s", r.Project, strings.Join(r.KnownProjects, ", "))
	}

	if len(r.Violations) > 0 {
		lines := []string{"Dependency direction violations found:"}
		for _, v := range r.Violations {
			lines = append(lines, v.String())
		}
		return strings.Join(lines, "\n")
	}

	lines := []string{"All ACES dependencies follow the architecture DAG."}
	for _, d := range r.Valid {
		lines = append(lines, fmt.Sprintf("OK: %s (tier %d)", d.Name, d.Tier))
	}
	return strings.Join(lines, "\n")
}
