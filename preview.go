package gridcss

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// previewChrome styles the placeholder cells and page furniture. The grids
// themselves take their layout from the linked stylesheet, so a preview
// shows exactly what the generated rules do.
const previewChrome = `
body { font: 14px/1.4 sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.2rem; }
section { margin-bottom: 2.5rem; }
section h2 { font: 0.85rem monospace; color: #667; }
.cell { background: #dbe9f5; border: 1px solid #7fa8c9; padding: 1rem 0; text-align: center; box-sizing: border-box; }
`

// PreviewDocument builds a demo HTML page with one section per grid, each
// holding the grid container populated with numbered placeholder cells, and
// a stylesheet link to cssHref. Grids whose selector is not a simple class
// selector have no obvious markup to demonstrate and are skipped.
func PreviewDocument(manifests []*Manifest, cssHref string, log *zap.Logger) *etree.Document {
	if log == nil {
		log = zap.NewNop()
	}

	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")
	html := doc.CreateElement("html")
	html.CreateAttr("lang", "en")

	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText("gridcss preview")
	link := head.CreateElement("link")
	link.CreateAttr("rel", "stylesheet")
	link.CreateAttr("href", cssHref)
	head.CreateElement("style").SetText(previewChrome)

	body := html.CreateElement("body")
	body.CreateElement("h1").SetText("gridcss preview")

	for _, m := range manifests {
		for i := range m.Grids {
			g := &m.Grids[i]
			selector := g.ContainerSelector()
			class, ok := classFromSelector(selector)
			if !ok {
				log.Debug("skipping grid in preview",
					zap.String("selector", selector),
					zap.String("manifest", m.Path))
				continue
			}

			section := body.CreateElement("section")
			section.CreateElement("h2").SetText(fmt.Sprintf("%s (%s)", selector, g.Kind()))
			container := section.CreateElement("div")
			container.CreateAttr("class", class)
			for n := 1; n <= previewCells(g); n++ {
				cell := container.CreateElement("div")
				cell.CreateAttr("class", "cell")
				cell.SetText(strconv.Itoa(n))
			}
		}
	}
	return doc
}

// previewCells picks enough placeholder cells to exercise the grid: one per
// row span, one per order entry, three rows of a gallery, three for equal
// columns.
func previewCells(g *Grid) int {
	switch g.Kind() {
	case GridRow:
		return len(g.Row)
	case GridOrder:
		return len(g.Order)
	case GridGallery:
		columns := *g.Gallery
		if columns < 1 {
			columns = 1
		}
		return columns * 3
	case GridEqual:
		return 3
	default:
		return 0
	}
}

// classFromSelector extracts the class name from a simple class selector
// like ".article". Combinators, pseudo classes and extra qualifiers are
// rejected; those grids have no single container element to demonstrate.
func classFromSelector(selector string) (string, bool) {
	name, ok := strings.CutPrefix(selector, ".")
	if !ok || name == "" {
		return "", false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return "", false
		}
	}
	return name, true
}
