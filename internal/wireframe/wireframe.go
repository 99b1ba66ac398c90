// internal/wireframe/wireframe.go
package wireframe

import (
	"fmt"
	"html"
	"io"
	"math"
	"slices"

	svg "github.com/ajstarks/svgo"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/document"
)

const (
	outlineStyle  = "fill:none;stroke:#94a3b8;stroke-width:1"
	selectedStyle = "fill:rgba(37,99,235,0.08);stroke:#2563eb;stroke-width:2"
	hoveredStyle  = "fill:none;stroke:#f59e0b;stroke-width:1;stroke-dasharray:4,2"
	labelStyle    = "font-family:monospace;font-size:9px;fill:#475569"
	labelInset    = 3
	labelBaseline = 11
)

// Render writes an SVG outline of every laid-out box on the screen, in paint
// order, with selected and hovered nodes highlighted. Nodes missing from
// bounds are skipped. The output is a debugging aid and carries no styling
// from the document.
func Render(w io.Writer, screen *schemas.Screen, bounds schemas.BoundsMap, selection schemas.SelectionState) error {
	if screen == nil {
		return fmt.Errorf("cannot render a nil screen")
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width, height := screen.Size()
	canvas.Start(px(width), px(height))
	title := screen.Name
	if title == "" {
		title = screen.ID
	}
	canvas.Title(title)
	canvas.Rect(0, 0, px(width), px(height), "fill:#ffffff;stroke:none")

	document.Walk(screen.Root, func(n *schemas.ComponentNode, _ int) bool {
		b, ok := bounds[n.ID]
		if !ok {
			return true
		}
		style := outlineStyle
		switch {
		case slices.Contains(selection.SelectedNodeIDs, n.ID):
			style = selectedStyle
		case selection.HoveredNodeID != nil && *selection.HoveredNodeID == n.ID:
			style = hoveredStyle
		}
		canvas.Rect(px(b.X), px(b.Y), px(b.Width), px(b.Height), style, fmt.Sprintf(`data-node="%s"`, html.EscapeString(n.ID)))
		if b.Height >= labelBaseline {
			canvas.Text(px(b.X)+labelInset, px(b.Y)+labelBaseline, label(n), labelStyle)
		}
		return true
	})

	canvas.End()
	return ew.err
}

// label names a box by its type, followed by its text content when it has one.
func label(n *schemas.ComponentNode) string {
	if text := document.TextContent(n); text != "" {
		return fmt.Sprintf("%s: %s", n.Type, text)
	}
	return string(n.Type)
}

func px(v float64) int {
	return int(math.Round(v))
}

// errWriter keeps the first write error, since the svgo canvas does not
// report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
