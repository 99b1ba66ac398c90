// internal/style/types.go
package style

// -- Flex Enumerations --
//
// The document carries these as strings. Unknown strings fall back to the CSS
// initial value so a loosely generated tree still lays out.

type FlexDirection int

const (
	FlexDirectionColumn FlexDirection = iota
	FlexDirectionColumnReverse
	FlexDirectionRow
	FlexDirectionRowReverse
)

// ParseFlexDirection maps a layout string to a direction. Column is the default.
func ParseFlexDirection(s string) FlexDirection {
	switch s {
	case "row":
		return FlexDirectionRow
	case "row-reverse":
		return FlexDirectionRowReverse
	case "column-reverse":
		return FlexDirectionColumnReverse
	default:
		return FlexDirectionColumn
	}
}

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

// IsReverse reports whether items are placed from the main-end edge.
func (d FlexDirection) IsReverse() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

type FlexWrap int

const (
	FlexNoWrap FlexWrap = iota
	FlexWrapValue
	FlexWrapReverse
)

func ParseFlexWrap(s string) FlexWrap {
	switch s {
	case "wrap":
		return FlexWrapValue
	case "wrap-reverse":
		return FlexWrapReverse
	default:
		return FlexNoWrap
	}
}

type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

func ParseJustifyContent(s string) JustifyContent {
	switch s {
	case "end":
		return JustifyEnd
	case "center":
		return JustifyCenter
	case "between":
		return JustifySpaceBetween
	case "around":
		return JustifySpaceAround
	case "evenly":
		return JustifySpaceEvenly
	default:
		return JustifyStart
	}
}

type AlignItems int

const (
	AlignStretch AlignItems = iota
	AlignStart
	AlignCenter
	AlignEnd
	AlignBaseline
)

func ParseAlignItems(s string) AlignItems {
	switch s {
	case "start":
		return AlignStart
	case "center":
		return AlignCenter
	case "end":
		return AlignEnd
	case "baseline":
		return AlignBaseline
	default:
		return AlignStretch
	}
}

type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStretch
	AlignSelfStart
	AlignSelfCenter
	AlignSelfEnd
	AlignSelfBaseline
)

func ParseAlignSelf(s string) AlignSelf {
	switch s {
	case "stretch":
		return AlignSelfStretch
	case "start":
		return AlignSelfStart
	case "center":
		return AlignSelfCenter
	case "end":
		return AlignSelfEnd
	case "baseline":
		return AlignSelfBaseline
	default:
		return AlignSelfAuto
	}
}

// Resolve combines align-self with the container's align-items.
func (a AlignSelf) Resolve(container AlignItems) AlignItems {
	switch a {
	case AlignSelfStretch:
		return AlignStretch
	case AlignSelfStart:
		return AlignStart
	case AlignSelfCenter:
		return AlignCenter
	case AlignSelfEnd:
		return AlignEnd
	case AlignSelfBaseline:
		return AlignBaseline
	default:
		return container
	}
}

type AlignContent int

const (
	AlignContentStretch AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

func ParseAlignContent(s string) AlignContent {
	switch s {
	case "start":
		return AlignContentStart
	case "end":
		return AlignContentEnd
	case "center":
		return AlignContentCenter
	case "between":
		return AlignContentSpaceBetween
	case "around":
		return AlignContentSpaceAround
	case "evenly":
		return AlignContentSpaceEvenly
	default:
		return AlignContentStretch
	}
}

type PositionType int

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

func ParsePosition(s string) PositionType {
	if s == "absolute" {
		return PositionAbsolute
	}
	return PositionRelative
}
