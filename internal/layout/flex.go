// internal/layout/flex.go
package layout

import (
	"math"

	"github.com/xkilldash9x/mockup-cli/internal/style"
)

// flexItem carries the per-item state of one flex pass.
type flexItem struct {
	box     *Box
	margin  Edges
	base    float64 // flex base size
	hypo    float64 // base clamped to min/max
	target  float64 // final main size
	minMain float64
	maxMain float64
	cross   float64
	frozen  bool
	// violation is clamped minus unclamped size from the last resolution round.
	violation float64
}

type flexLine struct {
	items      []*flexItem
	crossSize  float64
	crossStart float64
}

// layoutBox places b's children inside b's already sized frame and recurses.
func (e *Engine) layoutBox(b *Box) {
	if len(b.Children) == 0 {
		return
	}
	e.layoutFlex(b)
	e.layoutPositioned(b)
	for _, c := range b.Children {
		e.layoutBox(c)
	}
}

func (e *Engine) layoutFlex(b *Box) {
	flow := b.inFlow()
	if len(flow) == 0 {
		return
	}
	inset := b.inset()
	inner := Rect{
		Width:  max(0, b.Frame.Width-inset.Sum(Horizontal)),
		Height: max(0, b.Frame.Height-inset.Sum(Vertical)),
	}
	main := b.mainAxis()

	items := make([]*flexItem, 0, len(flow))
	for _, c := range flow {
		c.resolveInsets(inner.Width)
		items = append(items, &flexItem{box: c, margin: c.margin(inner.Width)})
	}

	// 1. Flex base and hypothetical main sizes.
	e.calculateFlexBaseSizes(b, items, main, inner)

	// 2. Lines.
	lines := collectFlexLines(items, b.Style.Wrap, inner.Size(main), b.Style.Gap, main)

	// 3. Flexible lengths, per line.
	for _, line := range lines {
		resolveFlexibleLengths(line, inner.Size(main), b.Style.Gap, main)
	}

	// 4. Cross sizes of items and lines.
	e.determineCrossSizes(b, lines, main, inner)

	// 5. align-content across lines.
	alignCrossAxis(b, lines, inner.Size(main.Cross()))

	// 6. justify-content and align-items within each line.
	for _, line := range lines {
		alignMainAxis(b, line, main, inner.Size(main))
		for _, it := range line.items {
			alignFlexItem(b, it, line, main, inner)
		}
	}

	// Frames are relative to b's border box.
	for _, it := range items {
		it.box.Frame.X += inset.Left
		it.box.Frame.Y += inset.Top
	}
}

func (e *Engine) calculateFlexBaseSizes(b *Box, items []*flexItem, main Axis, inner Rect) {
	for _, it := range items {
		c := it.box
		it.minMain, it.maxMain = c.limits(main, inner.Width, inner.Height)

		if basis, ok := c.Style.FlexBasis.Resolve(inner.Size(main)); ok {
			it.base = basis
		} else if v, ok := c.explicit(main, inner.Width, inner.Height); ok {
			it.base = v
		} else if main == Horizontal {
			it.base, _ = e.measure(c, max(0, inner.Width-it.margin.Sum(Horizontal)), inner.Width, inner.Height)
		} else {
			it.base = e.heightFor(c, e.columnWidth(b, it, inner), inner.Width, inner.Height)
		}
		it.hypo = clamp(it.base, it.minMain, it.maxMain)
	}
}

// columnWidth is the border-box width an item of a column container ends up
// with: declared, stretched to the container, or shrink-wrapped.
func (e *Engine) columnWidth(b *Box, it *flexItem, inner Rect) float64 {
	c := it.box
	if w, ok := c.explicit(Horizontal, inner.Width, inner.Height); ok {
		return w
	}
	avail := max(0, inner.Width-it.margin.Sum(Horizontal))
	if c.Style.AlignSelf.Resolve(b.Style.AlignItems) == style.AlignStretch && b.Style.Wrap == style.FlexNoWrap {
		return c.clampTo(Horizontal, avail, inner.Width, inner.Height)
	}
	w, _ := e.measure(c, avail, inner.Width, inner.Height)
	return w
}

func collectFlexLines(items []*flexItem, wrap style.FlexWrap, avail, gap float64, main Axis) []*flexLine {
	if wrap == style.FlexNoWrap {
		return []*flexLine{{items: items}}
	}
	var lines []*flexLine
	cur := &flexLine{}
	used := 0.0
	for _, it := range items {
		outer := it.hypo + it.margin.Sum(main)
		if len(cur.items) > 0 && used+gap+outer > avail+epsilon {
			lines = append(lines, cur)
			cur = &flexLine{}
			used = 0
		}
		if len(cur.items) > 0 {
			used += gap
		}
		used += outer
		cur.items = append(cur.items, it)
	}
	return append(lines, cur)
}

// resolveFlexibleLengths distributes free space by grow or scaled shrink
// factors, freezing items that hit their min or max until the line settles.
func resolveFlexibleLengths(line *flexLine, avail, gap float64, main Axis) {
	gaps := gap * float64(len(line.items)-1)
	used := gaps
	for _, it := range line.items {
		used += it.hypo + it.margin.Sum(main)
	}
	growing := used < avail

	factor := func(it *flexItem) float64 {
		if growing {
			return it.box.Style.FlexGrow
		}
		return it.box.Style.FlexShrink
	}

	for _, it := range line.items {
		it.target = it.hypo
		it.frozen = factor(it) == 0 ||
			(growing && it.base > it.hypo) ||
			(!growing && it.base < it.hypo)
	}
	initialFree := freeSpace(line, avail, gaps, main)

	for {
		var unfrozen []*flexItem
		for _, it := range line.items {
			if !it.frozen {
				unfrozen = append(unfrozen, it)
			}
		}
		if len(unfrozen) == 0 {
			return
		}

		remaining := freeSpace(line, avail, gaps, main)
		sumFlex := 0.0
		for _, it := range unfrozen {
			sumFlex += factor(it)
		}
		if sumFlex < 1 {
			if v := initialFree * sumFlex; math.Abs(v) < math.Abs(remaining) {
				remaining = v
			}
		}

		if growing {
			for _, it := range unfrozen {
				it.target = it.base + remaining*it.box.Style.FlexGrow/sumFlex
			}
		} else {
			sumScaled := 0.0
			for _, it := range unfrozen {
				sumScaled += it.box.Style.FlexShrink * it.base
			}
			for _, it := range unfrozen {
				it.target = it.base
				if sumScaled > 0 {
					it.target += remaining * it.box.Style.FlexShrink * it.base / sumScaled
				}
			}
		}

		total := 0.0
		for _, it := range unfrozen {
			clamped := clamp(it.target, it.minMain, it.maxMain)
			it.violation = clamped - it.target
			it.target = clamped
			total += it.violation
		}
		for _, it := range unfrozen {
			switch {
			case math.Abs(total) < epsilon:
				it.frozen = true
			case total > 0:
				it.frozen = it.violation > 0
			default:
				it.frozen = it.violation < 0
			}
		}
	}
}

func freeSpace(line *flexLine, avail, gaps float64, main Axis) float64 {
	free := avail - gaps
	for _, it := range line.items {
		free -= it.margin.Sum(main)
		if it.frozen {
			free -= it.target
		} else {
			free -= it.base
		}
	}
	return free
}

func (e *Engine) determineCrossSizes(b *Box, lines []*flexLine, main Axis, inner Rect) {
	cross := main.Cross()
	for _, line := range lines {
		line.crossSize = 0
		for _, it := range line.items {
			it.cross = e.hypotheticalCross(b, it, main, inner)
			line.crossSize = max(line.crossSize, it.cross+it.margin.Sum(cross))
		}
	}
	// A single-line container's line spans its whole cross size.
	if b.Style.Wrap == style.FlexNoWrap {
		lines[0].crossSize = inner.Size(cross)
	}
}

func (e *Engine) hypotheticalCross(b *Box, it *flexItem, main Axis, inner Rect) float64 {
	c := it.box
	if v, ok := c.explicit(main.Cross(), inner.Width, inner.Height); ok {
		return v
	}
	if main == Horizontal {
		return e.heightFor(c, it.target, inner.Width, inner.Height)
	}
	return e.columnWidth(b, it, inner)
}

func alignCrossAxis(b *Box, lines []*flexLine, avail float64) {
	if b.Style.Wrap == style.FlexNoWrap {
		lines[0].crossStart = 0
		return
	}
	gap := b.Style.Gap
	total := gap * float64(len(lines)-1)
	for _, line := range lines {
		total += line.crossSize
	}
	free := avail - total
	if b.Style.AlignContent == style.AlignContentStretch && free > 0 {
		extra := free / float64(len(lines))
		for _, line := range lines {
			line.crossSize += extra
		}
		free = 0
	}

	start, spacing := alignmentOffsets(len(lines), free, contentDistribution(b.Style.AlignContent))
	pos := start
	for _, line := range lines {
		line.crossStart = pos
		pos += line.crossSize + gap + spacing
	}
	if b.Style.Wrap == style.FlexWrapReverse {
		for _, line := range lines {
			line.crossStart = avail - line.crossStart - line.crossSize
		}
	}
}

// alignMainAxis writes each item's main size and content-box main offset.
func alignMainAxis(b *Box, line *flexLine, main Axis, avail float64) {
	gap := b.Style.Gap
	used := gap * float64(len(line.items)-1)
	for _, it := range line.items {
		used += it.target + it.margin.Sum(main)
	}
	start, spacing := alignmentOffsets(len(line.items), avail-used, justifyDistribution(b.Style.Justify))
	reverse := b.Style.Direction.IsReverse()

	pos := start
	for _, it := range line.items {
		lead, trail := it.margin.Start(main), it.margin.End(main)
		if reverse {
			lead, trail = trail, lead
		}
		p := pos + lead
		pos = p + it.target + trail + gap + spacing
		if reverse {
			p = avail - p - it.target
		}
		it.box.Frame.SetSize(main, it.target)
		it.box.Frame.SetStart(main, p)
	}
}

// alignFlexItem applies align-self within the item's line.
func alignFlexItem(b *Box, it *flexItem, line *flexLine, main Axis, inner Rect) {
	cross := main.Cross()
	c := it.box
	align := c.Style.AlignSelf.Resolve(b.Style.AlignItems)
	size := it.cross
	if _, ok := c.explicit(cross, inner.Width, inner.Height); !ok && align == style.AlignStretch {
		size = c.clampTo(cross, line.crossSize-it.margin.Sum(cross), inner.Width, inner.Height)
	}

	free := line.crossSize - size - it.margin.Sum(cross)
	offset := 0.0
	switch align {
	case style.AlignEnd:
		offset = free
	case style.AlignCenter:
		offset = free / 2
	}
	c.Frame.SetSize(cross, size)
	c.Frame.SetStart(cross, line.crossStart+offset+it.margin.Start(cross))
}

type distribution int

const (
	distStart distribution = iota
	distEnd
	distCenter
	distBetween
	distAround
	distEvenly
)

func justifyDistribution(j style.JustifyContent) distribution {
	switch j {
	case style.JustifyEnd:
		return distEnd
	case style.JustifyCenter:
		return distCenter
	case style.JustifySpaceBetween:
		return distBetween
	case style.JustifySpaceAround:
		return distAround
	case style.JustifySpaceEvenly:
		return distEvenly
	}
	return distStart
}

func contentDistribution(a style.AlignContent) distribution {
	switch a {
	case style.AlignContentEnd:
		return distEnd
	case style.AlignContentCenter:
		return distCenter
	case style.AlignContentSpaceBetween:
		return distBetween
	case style.AlignContentSpaceAround:
		return distAround
	case style.AlignContentSpaceEvenly:
		return distEvenly
	}
	return distStart
}

// alignmentOffsets returns where the first of count items starts and the
// extra space between neighbours. Overflowing distributions fall back to
// start (between) or center (around, evenly).
func alignmentOffsets(count int, free float64, d distribution) (start, spacing float64) {
	if free < 0 {
		switch d {
		case distBetween:
			d = distStart
		case distAround, distEvenly:
			d = distCenter
		}
	}
	switch d {
	case distEnd:
		return free, 0
	case distCenter:
		return free / 2, 0
	case distBetween:
		if count > 1 {
			return 0, free / float64(count-1)
		}
	case distAround:
		if count > 0 {
			s := free / float64(count)
			return s / 2, s
		}
		return free / 2, 0
	case distEvenly:
		s := free / float64(count+1)
		return s, s
	}
	return 0, 0
}
