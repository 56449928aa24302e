package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDependencies_UpwardTierViolation(t *testing.T) {
	tables := MustLoadTables()

	res := tables.CheckDependencies("aces-schema", []string{"aces-runtime"})

	require.Len(t, res.Violations, 1)
	assert.Equal(t, Violation{Project: "aces-schema", ProjectTier: 1, Dependency: "aces-runtime", DependencyTier: 3}, res.Violations[0])
	assert.Equal(t,
		"Dependency direction violations found:\n"+
			"VIOLATION: aces-schema (tier 1) depends on aces-runtime (tier 3) — higher tier dependency",
		res.String())
}

func TestCheckDependencies_DownwardAllowed(t *testing.T) {
	tables := MustLoadTables()

	res := tables.CheckDependencies("aces-runtime", []string{"aces-schema", "aces-sdl", "aces-provider-sdk"})

	assert.Empty(t, res.Violations)
	assert.Equal(t,
		"All ACES dependencies follow the architecture DAG.\n"+
			"OK: aces-schema (tier 1)\nOK: aces-sdl (tier 1)\nOK: aces-provider-sdk (tier 2)",
		res.String())
}

func TestCheckDependencies_SameTierAllowed(t *testing.T) {
	res := MustLoadTables().CheckDependencies("aces-experiment", []string{"aces-runtime"})

	assert.Empty(t, res.Violations)
	assert.Equal(t, []TieredDependency{{Name: "aces-runtime", Tier: 3}}, res.Valid)
}

func TestCheckDependencies_ExternalIgnored(t *testing.T) {
	res := MustLoadTables().CheckDependencies("aces-schema", []string{"tokio", "serde", "aces"})

	assert.Empty(t, res.Violations)
	assert.Equal(t, []TieredDependency{{Name: "aces", Tier: 0}}, res.Valid)
}

func TestCheckDependencies_OnlyViolationsReported(t *testing.T) {
	res := MustLoadTables().CheckDependencies("aces-provider-sdk", []string{"aces-schema", "aces-cli"})

	assert.Len(t, res.Violations, 1)
	assert.NotContains(t, res.String(), "OK:")
}

func TestCheckDependencies_UnknownProject(t *testing.T) {
	res := MustLoadTables().CheckDependencies("unknown-repo", []string{"aces-schema"})

	assert.False(t, res.Known)
	assert.Empty(t, res.Violations)
	assert.Equal(t,
		"Unknown repo: unknown-repo. Known repos: aces, aces-agent-sdk, aces-cli, aces-experiment, "+
			"aces-provider-docker, aces-provider-sdk, aces-runtime, aces-schema, aces-sdl, aces-stdlib",
		res.String())
}

func TestParseTables_RequiresEveryType(t *testing.T) {
	_, err := ParseTables([]byte("project_types:\n  rust:\n    ci_job: check\n"))
	assert.ErrorContains(t, err, `"python"`)

	_, err = ParseTables([]byte("project_types: [nope"))
	assert.ErrorContains(t, err, "decoding rule tables")
}

func TestRules_Order(t *testing.T) {
	rules, ok := MustLoadTables().Rules(TypeGovernance)
	require.True(t, ok)

	kinds := make([]RuleKind, 0, len(rules))
	for _, r := range rules {
		kinds = append(kinds, r.Kind)
	}
	assert.Equal(t, KindFileExists, kinds[0])
	assert.Equal(t, KindNamePrefix, kinds[11])
	assert.Equal(t, KindEqualsTemplate, kinds[12])
	assert.Equal(t, KindNamedJobPresent, kinds[13])
	assert.Equal(t, KindNamedStepPresent, kinds[14])
	assert.Len(t, kinds, 15)

	_, ok = MustLoadTables().Rules("java")
	assert.False(t, ok)
}
