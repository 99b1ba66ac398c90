// internal/style/overlay.go
package style

import "github.com/xkilldash9x/mockup-cli/api/schemas"

// OverlayLayout returns base with every field set in top replacing the base
// field. The merge is per property: a top-level padding does not clear a
// default paddingHorizontal, just as in the document model the more specific
// field wins at resolution time. Neither argument is modified.
func OverlayLayout(base, top *schemas.Layout) *schemas.Layout {
	out := &schemas.Layout{}
	if base != nil {
		*out = *base
	}
	if top == nil {
		return out
	}

	str(&out.Direction, top.Direction)
	str(&out.Wrap, top.Wrap)
	str(&out.Justify, top.Justify)
	str(&out.Align, top.Align)
	str(&out.AlignSelf, top.AlignSelf)
	str(&out.AlignContent, top.AlignContent)
	str(&out.Position, top.Position)

	val(&out.Gap, top.Gap)
	val(&out.Padding, top.Padding)
	val(&out.PaddingHorizontal, top.PaddingHorizontal)
	val(&out.PaddingVertical, top.PaddingVertical)
	val(&out.PaddingTop, top.PaddingTop)
	val(&out.PaddingRight, top.PaddingRight)
	val(&out.PaddingBottom, top.PaddingBottom)
	val(&out.PaddingLeft, top.PaddingLeft)
	val(&out.Margin, top.Margin)
	val(&out.MarginHorizontal, top.MarginHorizontal)
	val(&out.MarginVertical, top.MarginVertical)
	val(&out.MarginTop, top.MarginTop)
	val(&out.MarginRight, top.MarginRight)
	val(&out.MarginBottom, top.MarginBottom)
	val(&out.MarginLeft, top.MarginLeft)
	val(&out.Width, top.Width)
	val(&out.Height, top.Height)
	val(&out.MinWidth, top.MinWidth)
	val(&out.MinHeight, top.MinHeight)
	val(&out.MaxWidth, top.MaxWidth)
	val(&out.MaxHeight, top.MaxHeight)
	val(&out.FlexBasis, top.FlexBasis)
	val(&out.Top, top.Top)
	val(&out.Right, top.Right)
	val(&out.Bottom, top.Bottom)
	val(&out.Left, top.Left)

	num(&out.Flex, top.Flex)
	num(&out.FlexGrow, top.FlexGrow)
	num(&out.FlexShrink, top.FlexShrink)

	// A flex shorthand on the node outranks longhands that only came from the
	// defaults; explicit longhands on the node still win.
	if top.Flex != nil {
		if top.FlexGrow == nil {
			out.FlexGrow = nil
		}
		if top.FlexShrink == nil {
			out.FlexShrink = nil
		}
		if top.FlexBasis == nil {
			out.FlexBasis = nil
		}
	}
	return out
}

// OverlayStyle is the style counterpart of OverlayLayout.
func OverlayStyle(base, top *schemas.Style) *schemas.Style {
	out := &schemas.Style{}
	if base != nil {
		*out = *base
	}
	if top == nil {
		return out
	}

	val(&out.BackgroundColor, top.BackgroundColor)
	val(&out.Color, top.Color)
	val(&out.BorderColor, top.BorderColor)
	val(&out.BorderWidth, top.BorderWidth)
	val(&out.BorderRadius, top.BorderRadius)
	val(&out.Shadow, top.Shadow)
	val(&out.FontSize, top.FontSize)
	val(&out.FontWeight, top.FontWeight)
	val(&out.FontFamily, top.FontFamily)
	val(&out.LineHeight, top.LineHeight)
	num(&out.Opacity, top.Opacity)
	str(&out.TextAlign, top.TextAlign)
	return out
}

func str(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func val(dst **schemas.Value, src *schemas.Value) {
	if src != nil {
		*dst = src
	}
}

func num(dst **float64, src *float64) {
	if src != nil {
		*dst = src
	}
}
