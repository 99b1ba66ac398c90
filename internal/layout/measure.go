// internal/layout/measure.go
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/xkilldash9x/mockup-cli/internal/style"
)

// textMetrics approximates glyph advances from terminal cell widths: a cell is
// ratio × fontSize wide, so CJK and emoji count double.
type textMetrics struct {
	ratio float64
}

func (m textMetrics) width(s string, fontSize float64) float64 {
	return float64(runewidth.StringWidth(s)) * fontSize * m.ratio
}

// measure wraps text greedily at word boundaries when maxWidth is definite.
// A word wider than maxWidth gets a line of its own. Explicit newlines always
// break. maxLines > 0 truncates the block.
func (m textMetrics) measure(text string, fontSize, lineHeight, maxWidth float64, maxLines int) (float64, float64) {
	if text == "" {
		return 0, 0
	}
	space := m.width(" ", fontSize)
	lines := 0
	widest := 0.0
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines++
			continue
		}
		cur := m.width(words[0], fontSize)
		for _, word := range words[1:] {
			ww := m.width(word, fontSize)
			if definite(maxWidth) && cur+space+ww > maxWidth {
				widest = max(widest, cur)
				lines++
				cur = ww
				continue
			}
			cur += space + ww
		}
		widest = max(widest, cur)
		lines++
	}
	if maxLines > 0 && lines > maxLines {
		lines = maxLines
	}
	return widest, float64(lines) * lineHeight
}

// measure returns the border-box size b wants when at most availW wide (NaN
// for unconstrained). refW and refH are the containing block's content size
// and resolve percentages; absolutely positioned children are ignored.
func (e *Engine) measure(b *Box, availW, refW, refH float64) (float64, float64) {
	inset := b.padding.Add(b.border)
	w, wOK := b.explicit(Horizontal, refW, refH)
	h, hOK := b.explicit(Vertical, refW, refH)
	if wOK && hOK {
		return w, h
	}

	innerW := availW
	if wOK {
		innerW = w
	}
	if definite(innerW) {
		innerW = max(0, innerW-inset.Sum(Horizontal))
	}
	innerH := indefinite
	if hOK {
		innerH = max(0, h-inset.Sum(Vertical))
	}

	cw, ch := e.content(b, innerW, innerH)
	if !wOK {
		w = b.clampTo(Horizontal, cw+inset.Sum(Horizontal), refW, refH)
	}
	if !hOK {
		h = b.clampTo(Vertical, ch+inset.Sum(Vertical), refW, refH)
	}
	return w, h
}

// heightFor returns the border-box height of b laid out at the given border-box
// width, ignoring any declared width.
func (e *Engine) heightFor(b *Box, width, refW, refH float64) float64 {
	if h, ok := b.explicit(Vertical, refW, refH); ok {
		return h
	}
	inset := b.padding.Add(b.border)
	_, ch := e.content(b, max(0, width-inset.Sum(Horizontal)), indefinite)
	return b.clampTo(Vertical, ch+inset.Sum(Vertical), refW, refH)
}

// content measures what is inside b's content box: its in-flow children or,
// for leaves, its text.
func (e *Engine) content(b *Box, innerW, innerH float64) (float64, float64) {
	if flow := b.inFlow(); len(flow) > 0 {
		return e.measureChildren(b, flow, innerW, innerH)
	}
	if b.Style.Text != "" {
		return e.text.measure(b.Style.Text, b.Style.FontSize, b.Style.LineHeight, innerW, b.maxLines)
	}
	return 0, 0
}

// measureChildren sums in-flow children along the main axis and takes the
// largest along the cross axis, simulating line breaks for wrapping
// containers.
func (e *Engine) measureChildren(b *Box, flow []*Box, innerW, innerH float64) (float64, float64) {
	main := b.mainAxis()
	cross := main.Cross()
	gap := b.Style.Gap

	sizes := make([]Rect, len(flow))
	for i, c := range flow {
		c.resolveInsets(innerW)
		m := c.margin(innerW)
		avail := innerW
		if definite(avail) {
			avail = max(0, avail-m.Sum(Horizontal))
		}
		w, h := e.measure(c, avail, innerW, innerH)
		sizes[i] = Rect{Width: w + m.Sum(Horizontal), Height: h + m.Sum(Vertical)}
	}

	limit := Rect{Width: innerW, Height: innerH}.Size(main)
	wrapping := b.Style.Wrap != style.FlexNoWrap && definite(limit)

	var total Rect
	var lineMain, lineCross float64
	count, lines := 0, 0
	endLine := func() {
		if lines > 0 {
			total.SetSize(cross, total.Size(cross)+gap)
		}
		total.SetSize(main, max(total.Size(main), lineMain))
		total.SetSize(cross, total.Size(cross)+lineCross)
		lines++
		lineMain, lineCross, count = 0, 0, 0
	}
	for _, s := range sizes {
		sm, sc := s.Size(main), s.Size(cross)
		if wrapping && count > 0 && lineMain+gap+sm > limit+epsilon {
			endLine()
		}
		if count > 0 {
			lineMain += gap
		}
		lineMain += sm
		lineCross = max(lineCross, sc)
		count++
	}
	if count > 0 {
		endLine()
	}
	return total.Width, total.Height
}
