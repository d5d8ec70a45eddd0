package gridcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func intRef(n int) *int { return &n }

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, "site.grid.yaml", `grids:
  - name: Main Article
    row: [25%, 65%, 10%]
  - selector: .thumbs
    gallery: 3
    gutter: 10px
  - selector: .masthead
    order: [2, 1, 3]
    layout: flexbox
  - selector: .toolbar
    equal: true
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Grids, 4)
	assert.Equal(t, path, m.Path)

	article := m.Grids[0]
	assert.Equal(t, GridRow, article.Kind())
	assert.Equal(t, ".main-article", article.ContainerSelector(), "names slug into class selectors")
	assert.Equal(t, []string{"25%", "65%", "10%"}, article.Row)

	thumbs := m.Grids[1]
	assert.Equal(t, GridGallery, thumbs.Kind())
	assert.Equal(t, ".thumbs", thumbs.ContainerSelector())
	require.NotNil(t, thumbs.Gallery)
	assert.Equal(t, 3, *thumbs.Gallery)
	assert.Equal(t, "10px", thumbs.Gutter)

	assert.Equal(t, GridOrder, m.Grids[2].Kind())
	assert.Equal(t, GridEqual, m.Grids[3].Kind())
}

func TestLoadManifestCapturesPositions(t *testing.T) {
	path := writeManifest(t, "site.grid.yaml", `grids:
  - name: article
    row: [100%]
  - selector: .thumbs
    gallery: 2
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Grids, 2)

	assert.Equal(t, 2, m.Grids[0].Line())
	assert.Equal(t, 4, m.Grids[1].Line())
	assert.Equal(t, 5, m.Grids[0].Column(), "grid mappings start after the sequence dash")
	assert.Equal(t, "  - name: article", m.SourceLine(2))
	assert.Equal(t, "", m.SourceLine(99))
}

func TestLoadManifestSyntaxError(t *testing.T) {
	path := writeManifest(t, "broken.grid.yaml", "grids:\n  - name: x\n   bad indent: [\n")

	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.Greater(t, yamlErrorLine(err), 0, "yaml errors carry a line number")
}

func TestLoadManifestUnknownGridField(t *testing.T) {
	path := writeManifest(t, "typo.grid.yaml", `grids:
  - selector: .a
    row: [50%, 50%]
    gutterz: 4px
`)

	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown grid field "gutterz"`)
	assert.Equal(t, 4, yamlErrorLine(err))
}

func TestLoadManifestUnknownTopLevelField(t *testing.T) {
	path := writeManifest(t, "typo.grid.yaml", "grid:\n  - selector: .a\n")

	_, err := LoadManifest(path)
	require.Error(t, err)
}

func TestLoadManifestEmpty(t *testing.T) {
	path := writeManifest(t, "empty.grid.yaml", "")

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Empty(t, m.Grids)
}

func TestGridProblems(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		errors   []string
		warnings []string
	}{
		{
			name:   "no layout operation",
			grid:   Grid{Selector: ".x"},
			errors: []string{"grid declares no layout operation (want one of row, order, gallery, equal)"},
		},
		{
			name:   "several layout operations",
			grid:   Grid{Selector: ".x", Row: []string{"50%"}, Equal: true},
			errors: []string{"grid declares row, equal (want exactly one layout operation)"},
		},
		{
			name:   "anonymous grid",
			grid:   Grid{Row: []string{"50%"}},
			errors: []string{"grid has neither selector nor name"},
		},
		{
			name:   "unparseable span",
			grid:   Grid{Selector: ".x", Row: []string{"50%", "wat"}},
			errors: []string{`row span 2: invalid dimension "wat"`},
		},
		{
			name:   "unparseable gutter",
			grid:   Grid{Selector: ".x", Row: []string{"50%"}, Gutter: "wide"},
			errors: []string{`gutter: invalid dimension "wide"`},
		},
		{
			name:   "unknown layout mode",
			grid:   Grid{Selector: ".x", Row: []string{"50%"}, Layout: "grid"},
			errors: []string{`layout: unknown layout mode "grid" (want float or flexbox)`},
		},
		{
			name:     "order index below one",
			grid:     Grid{Selector: ".x", Order: []int{0, 2}},
			warnings: []string{"order index 0 can never match a child position"},
		},
		{
			name:     "negative gutter",
			grid:     Grid{Selector: ".x", Row: []string{"50%"}, Gutter: "-5px"},
			warnings: []string{"gutter -5px is negative and collapses to no spacing"},
		},
		{
			name:     "unitless span",
			grid:     Grid{Selector: ".x", Row: []string{"50"}},
			warnings: []string{`row span "50" has no unit`},
		},
		{
			name:     "unitless gutter",
			grid:     Grid{Selector: ".x", Row: []string{"50%"}, Gutter: "12"},
			warnings: []string{`gutter "12" has no unit`},
		},
		{
			name: "zero span needs no unit",
			grid: Grid{Selector: ".x", Row: []string{"0", "100%"}},
		},
		{
			name: "sound grid",
			grid: Grid{Name: "gallery wall", Gallery: intRef(4), Gutter: "1.5rem", Layout: "flexbox"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errors, warnings []string
			for _, p := range tt.grid.Problems() {
				switch p.Severity {
				case SeverityError:
					errors = append(errors, p.Text)
				case SeverityWarning:
					warnings = append(warnings, p.Text)
				}
			}
			for _, want := range tt.errors {
				assert.Contains(t, errors, want)
			}
			for _, want := range tt.warnings {
				assert.Contains(t, warnings, want)
			}
			if tt.errors == nil {
				assert.Empty(t, errors)
			}
			if tt.warnings == nil {
				assert.Empty(t, warnings)
			}
		})
	}
}

func TestGridCompileMatchesEmitters(t *testing.T) {
	defaults := DefaultOptions()

	row := Grid{Selector: ".article", Row: []string{"25%", "65%", "10%"}}
	got, err := row.Compile(defaults)
	require.NoError(t, err)
	want := Row(".article", []Dimension{Percent(25), Percent(65), Percent(10)}, defaults)
	if diff := cmp.Diff(want.Rules, got.Rules); diff != "" {
		t.Errorf("row rules mismatch (-want +got):\n%s", diff)
	}

	gallery := Grid{Selector: ".thumbs", Gallery: intRef(3), Gutter: "10px", Layout: "flexbox"}
	got, err = gallery.Compile(defaults)
	require.NoError(t, err)
	want = Gallery(".thumbs", 3, Options{Gutter: Length(10, "px"), Layout: LayoutFlexbox})
	if diff := cmp.Diff(want.Rules, got.Rules); diff != "" {
		t.Errorf("gallery rules mismatch (-want +got):\n%s", diff)
	}

	order := Grid{Selector: ".masthead", Order: []int{2, 1}}
	got, err = order.Compile(defaults)
	require.NoError(t, err)
	want = OrderColumns(".masthead", []int{2, 1}, defaults)
	if diff := cmp.Diff(want.Rules, got.Rules); diff != "" {
		t.Errorf("order rules mismatch (-want +got):\n%s", diff)
	}

	equal := Grid{Selector: ".toolbar", Equal: true}
	got, err = equal.Compile(defaults)
	require.NoError(t, err)
	want = EqualColumns(".toolbar", defaults)
	if diff := cmp.Diff(want.Rules, got.Rules); diff != "" {
		t.Errorf("equal rules mismatch (-want +got):\n%s", diff)
	}
}

func TestGridCompileOverridesDefaults(t *testing.T) {
	defaults := Options{Gutter: Length(20, "px"), Layout: LayoutFloat}
	g := Grid{Selector: ".x", Row: []string{"50%", "50%"}, Gutter: "0px", Layout: "flexbox"}

	rs, err := g.Compile(defaults)
	require.NoError(t, err)

	container := ruleFor(t, rs.Rules, ".x")
	requireDecl(t, container, "display", "flex")
	for _, r := range rs.Rules {
		_, found := declValue(r, "margin-right")
		assert.False(t, found, "zero gutter override should omit spacing")
	}
}

func TestGridCompileErrors(t *testing.T) {
	defaults := DefaultOptions()

	_, err := (&Grid{Selector: ".x"}).Compile(defaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no layout operation")

	_, err = (&Grid{Row: []string{"50%"}}).Compile(defaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither selector nor name")

	_, err = (&Grid{Selector: ".x", Row: []string{"nope"}}).Compile(defaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row span 1")
}

func TestManifestErrAggregates(t *testing.T) {
	path := writeManifest(t, "broken.grid.yaml", `grids:
  - selector: .a
  - row: [50%]
  - selector: .ok
    equal: true
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)

	aggregated := m.Err()
	require.Error(t, aggregated)
	assert.Contains(t, aggregated.Error(), path+":2")
	assert.Contains(t, aggregated.Error(), path+":3")
	assert.Contains(t, aggregated.Error(), "no layout operation")
	assert.Contains(t, aggregated.Error(), "neither selector nor name")
}

func TestGridKind(t *testing.T) {
	assert.Equal(t, GridNone, (&Grid{}).Kind())
	assert.Equal(t, GridNone, (&Grid{Row: []string{"1px"}, Equal: true}).Kind())
	assert.Equal(t, GridGallery, (&Grid{Gallery: intRef(2)}).Kind())
}
