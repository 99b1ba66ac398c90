package schemas

import (
	"time"
)

// -- Design Document Model --

// ComponentType identifies the kind of a component node. The set is closed: the
// validator rejects anything not listed here.
type ComponentType string

const (
	// Layout containers.
	ComponentBox        ComponentType = "Box"
	ComponentRow        ComponentType = "Row"
	ComponentColumn     ComponentType = "Column"
	ComponentStack      ComponentType = "Stack"
	ComponentGrid       ComponentType = "Grid"
	ComponentCard       ComponentType = "Card"
	ComponentScrollView ComponentType = "ScrollView"
	ComponentSpacer     ComponentType = "Spacer"
	ComponentDivider    ComponentType = "Divider"

	// Content.
	ComponentText    ComponentType = "Text"
	ComponentHeading ComponentType = "Heading"
	ComponentImage   ComponentType = "Image"
	ComponentIcon    ComponentType = "Icon"
	ComponentAvatar  ComponentType = "Avatar"
	ComponentBadge   ComponentType = "Badge"

	// Form controls.
	ComponentButton   ComponentType = "Button"
	ComponentInput    ComponentType = "Input"
	ComponentTextArea ComponentType = "TextArea"
	ComponentCheckbox ComponentType = "Checkbox"
	ComponentSwitch   ComponentType = "Switch"
	ComponentSelect   ComponentType = "Select"
	ComponentSlider   ComponentType = "Slider"

	// Data display.
	ComponentList     ComponentType = "List"
	ComponentListItem ComponentType = "ListItem"

	// Navigation.
	ComponentNavBar ComponentType = "NavBar"
	ComponentTabBar ComponentType = "TabBar"
)

// ComponentTypes lists every known component kind in declaration order.
var ComponentTypes = []ComponentType{
	ComponentBox, ComponentRow, ComponentColumn, ComponentStack, ComponentGrid,
	ComponentCard, ComponentScrollView, ComponentSpacer, ComponentDivider,
	ComponentText, ComponentHeading, ComponentImage, ComponentIcon, ComponentAvatar,
	ComponentBadge, ComponentButton, ComponentInput, ComponentTextArea, ComponentCheckbox,
	ComponentSwitch, ComponentSelect, ComponentSlider, ComponentList, ComponentListItem,
	ComponentNavBar, ComponentTabBar,
}

// IsKnown reports whether t is one of the declared component kinds.
func (t ComponentType) IsKnown() bool {
	for _, known := range ComponentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ComponentNode is a single element of a screen's tree. A node is owned by exactly
// one parent (or by its Screen when it is the root) and its ID never changes.
type ComponentNode struct {
	ID       string           `json:"id" validate:"required"`
	Type     ComponentType    `json:"type" validate:"required,component"`
	Props    map[string]any   `json:"props,omitempty"`
	Style    *Style           `json:"style,omitempty"`
	Layout   *Layout          `json:"layout,omitempty"`
	Children []*ComponentNode `json:"children,omitempty" validate:"omitempty,dive,required"`
}

// Style holds visual properties. Symbolic values may reference the token table.
type Style struct {
	BackgroundColor *Value   `json:"backgroundColor,omitempty"`
	Color           *Value   `json:"color,omitempty"`
	BorderColor     *Value   `json:"borderColor,omitempty"`
	BorderWidth     *Value   `json:"borderWidth,omitempty"`
	BorderRadius    *Value   `json:"borderRadius,omitempty"`
	Shadow          *Value   `json:"shadow,omitempty"`
	Opacity         *float64 `json:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
	FontSize        *Value   `json:"fontSize,omitempty"`
	FontWeight      *Value   `json:"fontWeight,omitempty"`
	FontFamily      *Value   `json:"fontFamily,omitempty"`
	LineHeight      *Value   `json:"lineHeight,omitempty"`
	TextAlign       string   `json:"textAlign,omitempty" validate:"omitempty,oneof=left center right"`
}

// Layout holds flexbox and box-model rules for a node.
type Layout struct {
	Direction    string `json:"direction,omitempty" validate:"omitempty,oneof=row column row-reverse column-reverse"`
	Wrap         string `json:"wrap,omitempty" validate:"omitempty,oneof=nowrap wrap wrap-reverse"`
	Justify      string `json:"justify,omitempty" validate:"omitempty,oneof=start end center between around evenly"`
	Align        string `json:"align,omitempty" validate:"omitempty,oneof=start end center stretch baseline"`
	AlignSelf    string `json:"alignSelf,omitempty" validate:"omitempty,oneof=auto start end center stretch baseline"`
	AlignContent string `json:"alignContent,omitempty" validate:"omitempty,oneof=start end center stretch between around evenly"`

	Gap *Value `json:"gap,omitempty"`

	Padding           *Value `json:"padding,omitempty"`
	PaddingHorizontal *Value `json:"paddingHorizontal,omitempty"`
	PaddingVertical   *Value `json:"paddingVertical,omitempty"`
	PaddingTop        *Value `json:"paddingTop,omitempty"`
	PaddingRight      *Value `json:"paddingRight,omitempty"`
	PaddingBottom     *Value `json:"paddingBottom,omitempty"`
	PaddingLeft       *Value `json:"paddingLeft,omitempty"`

	Margin           *Value `json:"margin,omitempty"`
	MarginHorizontal *Value `json:"marginHorizontal,omitempty"`
	MarginVertical   *Value `json:"marginVertical,omitempty"`
	MarginTop        *Value `json:"marginTop,omitempty"`
	MarginRight      *Value `json:"marginRight,omitempty"`
	MarginBottom     *Value `json:"marginBottom,omitempty"`
	MarginLeft       *Value `json:"marginLeft,omitempty"`

	Width     *Value `json:"width,omitempty"`
	Height    *Value `json:"height,omitempty"`
	MinWidth  *Value `json:"minWidth,omitempty"`
	MinHeight *Value `json:"minHeight,omitempty"`
	MaxWidth  *Value `json:"maxWidth,omitempty"`
	MaxHeight *Value `json:"maxHeight,omitempty"`

	Flex       *float64 `json:"flex,omitempty" validate:"omitempty,gte=0"`
	FlexGrow   *float64 `json:"flexGrow,omitempty" validate:"omitempty,gte=0"`
	FlexShrink *float64 `json:"flexShrink,omitempty" validate:"omitempty,gte=0"`
	FlexBasis  *Value   `json:"flexBasis,omitempty"`

	Position string `json:"position,omitempty" validate:"omitempty,oneof=relative absolute"`
	Top      *Value `json:"top,omitempty"`
	Right    *Value `json:"right,omitempty"`
	Bottom   *Value `json:"bottom,omitempty"`
	Left     *Value `json:"left,omitempty"`
}

// Default screen dimensions, in pixels.
const (
	DefaultScreenWidth  = 375
	DefaultScreenHeight = 812
)

// Screen is one page of the mockup. It owns its entire node subtree.
type Screen struct {
	ID     string         `json:"id" validate:"required"`
	Name   string         `json:"name"`
	Width  float64        `json:"width" validate:"gte=0"`
	Height float64        `json:"height" validate:"gte=0"`
	Root   *ComponentNode `json:"root" validate:"required"`
}

// Size returns the screen dimensions with zero values replaced by the defaults.
func (s *Screen) Size() (float64, float64) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = DefaultScreenWidth
	}
	if h <= 0 {
		h = DefaultScreenHeight
	}
	return w, h
}

// Typography groups the font related token tables.
type Typography struct {
	FontFamily map[string]string  `json:"fontFamily,omitempty"`
	FontSize   map[string]float64 `json:"fontSize,omitempty"`
	FontWeight map[string]float64 `json:"fontWeight,omitempty"`
	LineHeight map[string]float64 `json:"lineHeight,omitempty"`
}

// DesignTokens is the named table of design values referenced as "tokens.<path>".
type DesignTokens struct {
	Colors     map[string]string  `json:"colors,omitempty"`
	Typography Typography         `json:"typography"`
	Spacing    map[string]float64 `json:"spacing,omitempty"`
	Radii      map[string]float64 `json:"radii,omitempty"`
	Shadows    map[string]string  `json:"shadows,omitempty"`
}

// InteractionTrigger names the node and event that fire an interaction.
type InteractionTrigger struct {
	NodeID string `json:"nodeId"`
	Event  string `json:"event"`
}

// InteractionAction describes what happens when the trigger fires.
type InteractionAction struct {
	Type           string `json:"type"`
	TargetScreenID string `json:"targetScreenId,omitempty"`
}

// Interaction is a navigation rule between screens. It is carried as data only.
type Interaction struct {
	ID      string             `json:"id"`
	Trigger InteractionTrigger `json:"trigger"`
	Action  InteractionAction  `json:"action"`
}

// DesignSpec is the document root.
type DesignSpec struct {
	ID           string        `json:"id" validate:"required"`
	Name         string        `json:"name"`
	Version      int           `json:"version" validate:"gte=0"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	Tokens       DesignTokens  `json:"tokens"`
	Screens      []*Screen     `json:"screens" validate:"dive,required"`
	Interactions []Interaction `json:"interactions,omitempty"`
}
