// internal/layout/box.go
package layout

import (
	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/document"
	"github.com/xkilldash9x/mockup-cli/internal/style"
)

// Box is the layout counterpart of one component node. The box tree mirrors
// the component tree one to one, plus a synthetic root sized to the screen.
type Box struct {
	Node     *schemas.ComponentNode
	Style    style.Computed
	Children []*Box

	// Frame is the border box relative to the parent's border box.
	Frame Rect

	padding  Edges
	border   Edges
	maxLines int
}

func buildBox(r *style.Resolver, node *schemas.ComponentNode) *Box {
	b := &Box{Node: node, Style: r.Compute(node)}
	b.border = uniform(b.Style.Border)
	if node.Type == schemas.ComponentText {
		if p, err := document.DecodeProps(node); err == nil {
			if tp, ok := p.(*document.TextProps); ok && tp.MaxLines > 0 {
				b.maxLines = tp.MaxLines
			}
		}
	}
	if len(node.Children) > 0 {
		b.Children = make([]*Box, 0, len(node.Children))
		for _, child := range node.Children {
			if child == nil {
				continue
			}
			b.Children = append(b.Children, buildBox(r, child))
		}
	}
	return b
}

func (b *Box) absolute() bool {
	return b.Style.Position == style.PositionAbsolute
}

// inFlow returns the children that take part in flex layout.
func (b *Box) inFlow() []*Box {
	flow := make([]*Box, 0, len(b.Children))
	for _, c := range b.Children {
		if !c.absolute() {
			flow = append(flow, c)
		}
	}
	return flow
}

func (b *Box) mainAxis() Axis {
	if b.Style.Direction.IsRow() {
		return Horizontal
	}
	return Vertical
}

// resolveInsets fixes padding against the containing block width, as
// percentages on either axis refer to width.
func (b *Box) resolveInsets(refW float64) {
	b.padding = resolveEdges(b.Style.Padding, refW)
}

func (b *Box) inset() Edges {
	return b.padding.Add(b.border)
}

func (b *Box) margin(refW float64) Edges {
	return resolveEdges(b.Style.Margin, refW)
}

func resolveEdges(e style.LengthEdges, refW float64) Edges {
	return Edges{
		Top:    e.Top.ResolveOr(refW, 0),
		Right:  e.Right.ResolveOr(refW, 0),
		Bottom: e.Bottom.ResolveOr(refW, 0),
		Left:   e.Left.ResolveOr(refW, 0),
	}
}

// explicit returns the declared border-box size along axis, clamped to the
// box's limits.
func (b *Box) explicit(axis Axis, refW, refH float64) (float64, bool) {
	var v float64
	var ok bool
	if axis == Horizontal {
		v, ok = b.Style.Width.Resolve(refW)
	} else {
		v, ok = b.Style.Height.Resolve(refH)
	}
	if !ok {
		return 0, false
	}
	lo, hi := b.limits(axis, refW, refH)
	return clamp(v, lo, hi), true
}

// limits returns min and max along axis. Unset limits are NaN.
func (b *Box) limits(axis Axis, refW, refH float64) (float64, float64) {
	if axis == Horizontal {
		return b.Style.MinWidth.ResolveOr(refW, indefinite), b.Style.MaxWidth.ResolveOr(refW, indefinite)
	}
	return b.Style.MinHeight.ResolveOr(refH, indefinite), b.Style.MaxHeight.ResolveOr(refH, indefinite)
}

func (b *Box) clampTo(axis Axis, v, refW, refH float64) float64 {
	lo, hi := b.limits(axis, refW, refH)
	return clamp(v, lo, hi)
}
