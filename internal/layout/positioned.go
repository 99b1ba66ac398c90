// internal/layout/positioned.go
package layout

// layoutPositioned places absolutely positioned children against b's padding
// box. They are out of flow: nothing else moves for them and they never
// contribute to b's size.
func (e *Engine) layoutPositioned(b *Box) {
	cb := Rect{
		X:      b.border.Left,
		Y:      b.border.Top,
		Width:  max(0, b.Frame.Width-b.border.Sum(Horizontal)),
		Height: max(0, b.Frame.Height-b.border.Sum(Vertical)),
	}
	for _, c := range b.Children {
		if !c.absolute() {
			continue
		}
		c.resolveInsets(cb.Width)
		m := c.margin(cb.Width)
		x, w := e.solvePositionedHorizontalConstraints(b, c, cb, m)
		y, h := e.solvePositionedVerticalConstraints(b, c, cb, m, w)
		c.Frame = Rect{X: cb.X + x, Y: cb.Y + y, Width: w, Height: h}
	}
}

// solvePositionedHorizontalConstraints resolves left, width and right. With
// both insets set and an auto width the box stretches between them; with
// neither it sits at its static position, the start of b's content box.
func (e *Engine) solvePositionedHorizontalConstraints(b, c *Box, cb Rect, m Edges) (float64, float64) {
	left, hasLeft := c.Style.Offsets.Left.Resolve(cb.Width)
	right, hasRight := c.Style.Offsets.Right.Resolve(cb.Width)

	width, ok := c.explicit(Horizontal, cb.Width, cb.Height)
	if !ok {
		if hasLeft && hasRight {
			width = c.clampTo(Horizontal, cb.Width-left-right-m.Sum(Horizontal), cb.Width, cb.Height)
		} else {
			avail := cb.Width - m.Sum(Horizontal)
			if hasLeft {
				avail -= left
			}
			if hasRight {
				avail -= right
			}
			width, _ = e.measure(c, max(0, avail), cb.Width, cb.Height)
		}
	}

	switch {
	case hasLeft:
		return left + m.Left, width
	case hasRight:
		return cb.Width - right - m.Right - width, width
	default:
		return b.padding.Left + m.Left, width
	}
}

func (e *Engine) solvePositionedVerticalConstraints(b, c *Box, cb Rect, m Edges, width float64) (float64, float64) {
	top, hasTop := c.Style.Offsets.Top.Resolve(cb.Height)
	bottom, hasBottom := c.Style.Offsets.Bottom.Resolve(cb.Height)

	height, ok := c.explicit(Vertical, cb.Width, cb.Height)
	if !ok {
		if hasTop && hasBottom {
			height = c.clampTo(Vertical, cb.Height-top-bottom-m.Sum(Vertical), cb.Width, cb.Height)
		} else {
			height = e.heightFor(c, width, cb.Width, cb.Height)
		}
	}

	switch {
	case hasTop:
		return top + m.Top, height
	case hasBottom:
		return cb.Height - bottom - m.Bottom - height, height
	default:
		return b.padding.Top + m.Top, height
	}
}
