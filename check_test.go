package gridcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "site.grid.yaml", `grids:
  - selector: .mixed
    row: [200px, 80%]
  - selector: .broken
  - selector: .odd
    order: [0, 2]
`)

	result, err := Check(CheckConfig{SourceDir: root})
	require.NoError(t, err)
	require.Len(t, result.Issues, 3, "issues are sorted by position")

	degraded := result.Issues[0]
	assert.Equal(t, CheckDegradation, degraded.FromCheck)
	assert.Equal(t, SeverityWarning, degraded.Severity)
	assert.Equal(t, path, degraded.Pos.Filename)
	assert.Equal(t, 2, degraded.Pos.Line)
	assert.Equal(t, 5, degraded.Pos.Column)
	assert.Contains(t, degraded.Text, "upgraded to flexbox")
	require.Len(t, degraded.SourceLines, 1)
	assert.Equal(t, "  - selector: .mixed", degraded.SourceLines[0])

	broken := result.Issues[1]
	assert.Equal(t, CheckManifest, broken.FromCheck)
	assert.Equal(t, SeverityError, broken.Severity)
	assert.Equal(t, 4, broken.Pos.Line)
	assert.Equal(t, IssueGridNoLayout, broken.Text)

	odd := result.Issues[2]
	assert.Equal(t, CheckGrid, odd.FromCheck)
	assert.Equal(t, SeverityWarning, odd.Severity)
	assert.Equal(t, 5, odd.Pos.Line)
	assert.Contains(t, odd.Text, "order index 0")

	assert.True(t, result.HasErrors())
	assert.True(t, result.HasWarnings())

	stats := result.Stats
	assert.Equal(t, 1, stats.ManifestsScanned)
	assert.Equal(t, 3, stats.GridsChecked)
	assert.Equal(t, 6, stats.RulesPlanned, "broken grids plan no rules")
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 2, stats.Warnings)
	assert.Equal(t, map[string]int{
		CheckDegradation: 1,
		CheckManifest:    1,
		CheckGrid:        1,
	}, stats.ByCheck)
}

func TestCheckReportsUnparseableManifest(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "broken.grid.yaml", "grids: [\n")

	result, err := Check(CheckConfig{SourceDir: root})
	require.NoError(t, err, "parse failures become issues, not a failed run")

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, CheckManifest, issue.FromCheck)
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, path, issue.Pos.Filename)
	assert.Greater(t, issue.Pos.Line, 0, "positioned at the yaml error line")
	assert.Contains(t, issue.Text, "parse manifest")

	assert.True(t, result.HasErrors())
	assert.Equal(t, 1, result.Stats.ManifestsScanned)
	assert.Zero(t, result.Stats.GridsChecked)
}

func TestCheckWarnsDuplicateSelectors(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "dup.grid.yaml", `grids:
  - selector: .twice
    equal: true
  - selector: .twice
    gallery: 2
`)

	result, err := Check(CheckConfig{SourceDir: root})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, CheckGrid, issue.FromCheck)
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Equal(t, 4, issue.Pos.Line, "the second declaration is the duplicate")
	assert.Contains(t, issue.Text, `selector ".twice" already declared`)
	assert.Contains(t, issue.Text, path+":2")
}

func TestCheckHonorsGridOverrides(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "flex.grid.yaml", `grids:
  - selector: .mixed
    row: [200px, 80%]
    layout: flexbox
`)

	result, err := Check(CheckConfig{SourceDir: root})
	require.NoError(t, err)
	assert.Empty(t, result.Issues, "an explicit flexbox request needs no upgrade")
}

func TestCheckSortsAcrossManifests(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.grid.yaml", `grids:
  - selector: .b
`)
	writeFile(t, root, "a.grid.yaml", `grids:
  - selector: .a
    order: [0]
`)

	result, err := Check(CheckConfig{SourceDir: root})
	require.NoError(t, err)

	require.Len(t, result.Issues, 2)
	assert.Contains(t, result.Issues[0].Pos.Filename, "a.grid.yaml")
	assert.Contains(t, result.Issues[1].Pos.Filename, "b.grid.yaml")
	assert.Equal(t, 2, result.Stats.ManifestsScanned)
}

func TestCheckCapsIssues(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "noisy.grid.yaml", `grids:
  - selector: .a
  - selector: .b
  - selector: .c
`)

	result, err := Check(CheckConfig{SourceDir: root, MaxIssues: 1})
	require.NoError(t, err)

	require.Len(t, result.Issues, 2, "one issue plus the truncation notice")
	assert.Equal(t, CheckManifest, result.Issues[0].FromCheck)

	notice := result.Issues[1]
	assert.Equal(t, CheckTruncation, notice.FromCheck)
	assert.Equal(t, SeverityInfo, notice.Severity)
	assert.Contains(t, notice.Text, "2 more issues not shown")

	assert.Equal(t, 3, result.Stats.Errors, "stats cover the uncapped list")
	assert.NotContains(t, result.Stats.ByCheck, CheckTruncation)
}

func TestCheckCleanTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ok.grid.yaml", `grids:
  - selector: .article
    row: [30%, 70%]
`)

	result, err := Check(CheckConfig{SourceDir: root})
	require.NoError(t, err)

	assert.Empty(t, result.Issues)
	assert.False(t, result.HasErrors())
	assert.False(t, result.HasWarnings())
	assert.Equal(t, 1, result.Stats.GridsChecked)
	assert.Equal(t, 4, result.Stats.RulesPlanned)
}

func TestCheckRejectsBadDefaults(t *testing.T) {
	_, err := Check(CheckConfig{SourceDir: t.TempDir(), Gutters: "wat"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gutter:")
}
