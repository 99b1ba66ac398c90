// internal/style/computed.go
package style

import (
	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/document"
)

// LengthEdges holds one length per box side.
type LengthEdges struct {
	Top, Right, Bottom, Left Length
}

// Computed is the fully resolved set of properties the layout engine consumes for
// one node. Lengths that depend on the containing block stay as Length values.
type Computed struct {
	Type schemas.ComponentType

	Direction    FlexDirection
	Wrap         FlexWrap
	Justify      JustifyContent
	AlignItems   AlignItems
	AlignSelf    AlignSelf
	AlignContent AlignContent
	Gap          float64

	Padding LengthEdges
	Margin  LengthEdges
	Border  float64

	Width, Height       Length
	MinWidth, MinHeight Length
	MaxWidth, MaxHeight Length

	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Length

	Position PositionType
	Offsets  LengthEdges

	FontSize   float64
	LineHeight float64 // pixels
	Text       string
}

// Effective returns the node's layout and style after the component defaults
// have been overlaid with the node's own values.
func Effective(node *schemas.ComponentNode) (*schemas.Layout, *schemas.Style) {
	return OverlayLayout(DefaultLayout(node.Type), node.Layout),
		OverlayStyle(DefaultStyle(node.Type), node.Style)
}

// Compute resolves a node into numeric flex properties.
func (r *Resolver) Compute(node *schemas.ComponentNode) Computed {
	l, s := Effective(node)

	c := Computed{
		Type:         node.Type,
		Direction:    ParseFlexDirection(l.Direction),
		Wrap:         ParseFlexWrap(l.Wrap),
		Justify:      ParseJustifyContent(l.Justify),
		AlignItems:   ParseAlignItems(l.Align),
		AlignSelf:    ParseAlignSelf(l.AlignSelf),
		AlignContent: ParseAlignContent(l.AlignContent),
		Position:     ParsePosition(l.Position),
		Width:        r.Length(l.Width),
		Height:       r.Length(l.Height),
		MinWidth:     r.Length(l.MinWidth),
		MinHeight:    r.Length(l.MinHeight),
		MaxWidth:     r.Length(l.MaxWidth),
		MaxHeight:    r.Length(l.MaxHeight),
		FlexShrink:   1,
		Text:         document.TextContent(node),
	}

	if gap, ok := r.Number(l.Gap); ok && gap > 0 {
		c.Gap = gap
	}

	c.Padding = r.edges(l.Padding, l.PaddingHorizontal, l.PaddingVertical, l.PaddingTop, l.PaddingRight, l.PaddingBottom, l.PaddingLeft)
	c.Margin = r.edges(l.Margin, l.MarginHorizontal, l.MarginVertical, l.MarginTop, l.MarginRight, l.MarginBottom, l.MarginLeft)
	c.Offsets = LengthEdges{Top: r.Length(l.Top), Right: r.Length(l.Right), Bottom: r.Length(l.Bottom), Left: r.Length(l.Left)}

	if bw, ok := r.Number(s.BorderWidth); ok && bw > 0 {
		c.Border = bw
	}

	// flex: N expands to grow N, shrink 1, basis 0. Longhands win over it.
	if l.Flex != nil {
		c.FlexGrow = max(0, *l.Flex)
		c.FlexShrink = 1
		c.FlexBasis = PxLength(0)
	}
	if l.FlexGrow != nil {
		c.FlexGrow = max(0, *l.FlexGrow)
	}
	if l.FlexShrink != nil {
		c.FlexShrink = max(0, *l.FlexShrink)
	}
	if l.FlexBasis != nil {
		c.FlexBasis = r.Length(l.FlexBasis)
	}

	c.FontSize = r.baseFontSize
	if fs, ok := r.Number(s.FontSize); ok && fs > 0 {
		c.FontSize = fs
	}
	c.LineHeight = c.FontSize * r.lineHeight
	if lh, ok := r.Number(s.LineHeight); ok && lh > 0 {
		// Small values are multipliers, the rest are pixel heights.
		if lh <= 4 {
			c.LineHeight = c.FontSize * lh
		} else {
			c.LineHeight = lh
		}
	}
	return c
}

// edges applies the usual precedence: a specific side beats its axis shorthand,
// which beats the all-sides value.
func (r *Resolver) edges(all, horizontal, vertical, top, right, bottom, left *schemas.Value) LengthEdges {
	pick := func(values ...*schemas.Value) Length {
		for _, v := range values {
			if v != nil {
				if l := r.Length(v); !l.IsAuto() {
					return l
				}
			}
		}
		return PxLength(0)
	}
	return LengthEdges{
		Top:    pick(top, vertical, all),
		Right:  pick(right, horizontal, all),
		Bottom: pick(bottom, vertical, all),
		Left:   pick(left, horizontal, all),
	}
}
