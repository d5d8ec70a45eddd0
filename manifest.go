package gridcss

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Manifest is one parsed *.grid.yaml document: a list of grid declarations
// that compile into CSS rules.
type Manifest struct {
	Path  string
	Grids []Grid

	// lines holds the raw manifest text for issue source display.
	lines []string
}

type manifestDoc struct {
	Grids []Grid `yaml:"grids"`
}

// Grid is a single grid declaration. Exactly one of Row, Order, Gallery or
// Equal selects the layout operation; Gutter and Layout override the ambient
// defaults for this grid only.
type Grid struct {
	Name     string   `yaml:"name"`
	Selector string   `yaml:"selector"`
	Row      []string `yaml:"row"`
	Order    []int    `yaml:"order"`
	Gallery  *int     `yaml:"gallery"`
	Equal    bool     `yaml:"equal"`
	Gutter   string   `yaml:"gutter"`
	Layout   string   `yaml:"layout"`

	line   int
	column int
}

// gridFields are the keys a grid mapping may carry. Anything else is a typo
// and fails the load with a positioned error.
var gridFields = map[string]bool{
	"name":     true,
	"selector": true,
	"row":      true,
	"order":    true,
	"gallery":  true,
	"equal":    true,
	"gutter":   true,
	"layout":   true,
}

// UnmarshalYAML decodes a grid mapping and records its source position so
// problems can be reported as file:line:column.
func (g *Grid) UnmarshalYAML(node *yaml.Node) error {
	type plain Grid
	if err := node.Decode((*plain)(g)); err != nil {
		return err
	}
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if key := node.Content[i]; !gridFields[key.Value] {
				return fmt.Errorf("line %d: unknown grid field %q", key.Line, key.Value)
			}
		}
	}
	g.line = node.Line
	g.column = node.Column
	return nil
}

// Line returns the manifest line the grid starts on, 1-indexed.
func (g *Grid) Line() int { return g.line }

// Column returns the manifest column the grid starts on, 1-indexed.
func (g *Grid) Column() int { return g.column }

// LoadManifest reads and parses a grid manifest. Parse errors carry the YAML
// line where the parser gave up; structural validation is separate, see
// Grid.Problems and Manifest.Err.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var doc manifestDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	return &Manifest{
		Path:  path,
		Grids: doc.Grids,
		lines: strings.Split(string(data), "\n"),
	}, nil
}

// SourceLine returns the manifest's raw text at the 1-indexed line, or ""
// when the line does not exist.
func (m *Manifest) SourceLine(n int) string {
	if n < 1 || n > len(m.lines) {
		return ""
	}
	return m.lines[n-1]
}

// Err aggregates the error-severity problems of every grid as one combined
// error, each positioned as path:line. Generation requires a nil Err before
// compiling anything; the checker reports the same problems as issues
// instead.
func (m *Manifest) Err() error {
	var err error
	for i := range m.Grids {
		for _, p := range m.Grids[i].Problems() {
			if p.Severity != SeverityError {
				continue
			}
			err = multierr.Append(err, fmt.Errorf("%s:%d: %s", m.Path, p.Line, p.Text))
		}
	}
	return err
}

var yamlLinePattern = regexp.MustCompile(`line (\d+):`)

// yamlErrorLine extracts the first line number a yaml error mentions, or 0
// when it carries none.
func yamlErrorLine(err error) int {
	if err == nil {
		return 0
	}
	match := yamlLinePattern.FindStringSubmatch(err.Error())
	if match == nil {
		return 0
	}
	n, convErr := strconv.Atoi(match[1])
	if convErr != nil {
		return 0
	}
	return n
}

// GridKind names the layout operation a grid declares.
type GridKind string

const (
	GridRow     GridKind = "row"
	GridOrder   GridKind = "order"
	GridGallery GridKind = "gallery"
	GridEqual   GridKind = "equal"

	// GridNone marks a grid that declares no operation, or several at once.
	GridNone GridKind = ""
)

func (g *Grid) kinds() []GridKind {
	var kinds []GridKind
	if g.Row != nil {
		kinds = append(kinds, GridRow)
	}
	if g.Order != nil {
		kinds = append(kinds, GridOrder)
	}
	if g.Gallery != nil {
		kinds = append(kinds, GridGallery)
	}
	if g.Equal {
		kinds = append(kinds, GridEqual)
	}
	return kinds
}

// Kind reports the single layout operation g declares, or GridNone when the
// grid declares none or several.
func (g *Grid) Kind() GridKind {
	if kinds := g.kinds(); len(kinds) == 1 {
		return kinds[0]
	}
	return GridNone
}

func joinKinds(kinds []GridKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// ContainerSelector returns the selector the grid's rules target: the
// explicit selector verbatim, or a class selector slugged from the name when
// only a name is given.
func (g *Grid) ContainerSelector() string {
	if g.Selector != "" {
		return g.Selector
	}
	if g.Name != "" {
		return "." + slug.Make(g.Name)
	}
	return ""
}

// Problem is a defect found while validating a grid declaration, positioned
// at the grid's line in its manifest.
type Problem struct {
	Severity string
	Text     string
	Line     int
	Column   int
}

// Problems validates the declaration. Error severity marks problems that
// abort generation; warnings mark declarations that render but rarely mean
// what the author wrote.
func (g *Grid) Problems() []Problem {
	var problems []Problem
	report := func(severity, format string, args ...any) {
		problems = append(problems, Problem{
			Severity: severity,
			Text:     fmt.Sprintf(format, args...),
			Line:     g.line,
			Column:   g.column,
		})
	}

	kinds := g.kinds()
	switch {
	case len(kinds) == 0:
		report(SeverityError, IssueGridNoLayout)
	case len(kinds) > 1:
		report(SeverityError, IssueGridManyLayouts, joinKinds(kinds))
	}
	if g.ContainerSelector() == "" {
		report(SeverityError, IssueGridAnonymous)
	}

	for i, raw := range g.Row {
		d, err := ParseDimension(raw)
		if err != nil {
			report(SeverityError, IssueBadSpan, i+1, err)
			continue
		}
		if bareNumber(d) {
			report(SeverityWarning, IssueNoUnit, "row span", raw)
		}
	}
	for _, pos := range g.Order {
		if pos < 1 {
			report(SeverityWarning, IssueOrderNeverMatches, pos)
		}
	}
	if g.Gutter != "" {
		d, err := ParseDimension(g.Gutter)
		switch {
		case err != nil:
			report(SeverityError, IssueBadGutter, err)
		case d.Kind() == KindQuantity && d.Value() < 0:
			report(SeverityWarning, IssueNegativeGutter, d)
		case bareNumber(d):
			report(SeverityWarning, IssueNoUnit, "gutter", g.Gutter)
		}
	}
	if g.Layout != "" {
		if _, err := ParseLayoutMode(g.Layout); err != nil {
			report(SeverityError, IssueBadLayout, err)
		}
	}
	return problems
}

// bareNumber reports whether d parsed as a nonzero number with no unit. It
// renders as written, but a pixel or percent unit was almost certainly
// intended.
func bareNumber(d Dimension) bool {
	return d.Kind() == KindQuantity && d.Unit() == "" && d.Value() != 0
}

// Compile emits the rules for g, applying its overrides on top of the
// ambient defaults. The error cases mirror the error-severity problems
// reported by Problems; callers that validated first never see one.
func (g *Grid) Compile(defaults Options) (*RuleSet, error) {
	opts := defaults
	if g.Gutter != "" {
		d, err := ParseDimension(g.Gutter)
		if err != nil {
			return nil, fmt.Errorf(IssueBadGutter, err)
		}
		opts.Gutter = d
	}
	if g.Layout != "" {
		mode, err := ParseLayoutMode(g.Layout)
		if err != nil {
			return nil, fmt.Errorf(IssueBadLayout, err)
		}
		opts.Layout = mode
	}

	selector := g.ContainerSelector()
	if selector == "" {
		return nil, errors.New(IssueGridAnonymous)
	}

	kinds := g.kinds()
	switch {
	case len(kinds) == 0:
		return nil, errors.New(IssueGridNoLayout)
	case len(kinds) > 1:
		return nil, fmt.Errorf(IssueGridManyLayouts, joinKinds(kinds))
	}

	switch kinds[0] {
	case GridRow:
		spans := make([]Dimension, len(g.Row))
		for i, raw := range g.Row {
			d, err := ParseDimension(raw)
			if err != nil {
				return nil, fmt.Errorf(IssueBadSpan, i+1, err)
			}
			spans[i] = d
		}
		return Row(selector, spans, opts), nil
	case GridOrder:
		return OrderColumns(selector, g.Order, opts), nil
	case GridGallery:
		return Gallery(selector, *g.Gallery, opts), nil
	default:
		return EqualColumns(selector, opts), nil
	}
}
