// internal/document/props.go
package document

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// Props is the typed view of a node's prop bag. Each component kind decodes into
// exactly one concrete type; Text reports the content that occupies space when the
// node is measured (empty for kinds with no text).
type Props interface {
	Text() string
}

// ContainerProps covers the structural kinds that carry no props of their own.
type ContainerProps struct{}

func (ContainerProps) Text() string { return "" }

// CardProps is the prop set of a Card.
type CardProps struct {
	Title    string `mapstructure:"title"`
	Elevated bool   `mapstructure:"elevated"`
}

func (CardProps) Text() string { return "" }

// TextProps is the prop set of a Text node.
type TextProps struct {
	Content  string `mapstructure:"content"`
	MaxLines int    `mapstructure:"maxLines"`
}

func (p TextProps) Text() string { return p.Content }

// HeadingProps is the prop set of a Heading.
type HeadingProps struct {
	Content string `mapstructure:"content"`
	Level   int    `mapstructure:"level"`
}

func (p HeadingProps) Text() string { return p.Content }

// ImageProps is the prop set of an Image.
type ImageProps struct {
	Src         string  `mapstructure:"src"`
	Alt         string  `mapstructure:"alt"`
	AspectRatio float64 `mapstructure:"aspectRatio"`
}

func (ImageProps) Text() string { return "" }

// IconProps is the prop set of an Icon.
type IconProps struct {
	Name string  `mapstructure:"name"`
	Size float64 `mapstructure:"size"`
}

func (IconProps) Text() string { return "" }

// AvatarProps is the prop set of an Avatar.
type AvatarProps struct {
	Src      string  `mapstructure:"src"`
	Initials string  `mapstructure:"initials"`
	Size     float64 `mapstructure:"size"`
}

func (AvatarProps) Text() string { return "" }

// BadgeProps is the prop set of a Badge.
type BadgeProps struct {
	Label string `mapstructure:"label"`
	Tone  string `mapstructure:"tone"`
}

func (p BadgeProps) Text() string { return p.Label }

// ButtonProps is the prop set of a Button.
type ButtonProps struct {
	Label    string `mapstructure:"label"`
	Variant  string `mapstructure:"variant"`
	Icon     string `mapstructure:"icon"`
	Disabled bool   `mapstructure:"disabled"`
}

func (p ButtonProps) Text() string { return p.Label }

// InputProps is the prop set of an Input.
type InputProps struct {
	Label       string `mapstructure:"label"`
	Placeholder string `mapstructure:"placeholder"`
	Value       string `mapstructure:"value"`
	InputType   string `mapstructure:"type"`
}

func (InputProps) Text() string { return "" }

// TextAreaProps is the prop set of a TextArea.
type TextAreaProps struct {
	Placeholder string `mapstructure:"placeholder"`
	Value       string `mapstructure:"value"`
	Rows        int    `mapstructure:"rows"`
}

func (TextAreaProps) Text() string { return "" }

// ToggleProps is shared by Checkbox and Switch.
type ToggleProps struct {
	Label   string `mapstructure:"label"`
	Checked bool   `mapstructure:"checked"`
}

func (ToggleProps) Text() string { return "" }

// SelectProps is the prop set of a Select.
type SelectProps struct {
	Placeholder string   `mapstructure:"placeholder"`
	Value       string   `mapstructure:"value"`
	Options     []string `mapstructure:"options"`
}

func (SelectProps) Text() string { return "" }

// SliderProps is the prop set of a Slider.
type SliderProps struct {
	Min   float64 `mapstructure:"min"`
	Max   float64 `mapstructure:"max"`
	Value float64 `mapstructure:"value"`
}

func (SliderProps) Text() string { return "" }

// ListItemProps is the prop set of a ListItem.
type ListItemProps struct {
	Title    string `mapstructure:"title"`
	Subtitle string `mapstructure:"subtitle"`
	Trailing string `mapstructure:"trailing"`
}

func (p ListItemProps) Text() string {
	if p.Subtitle == "" {
		return p.Title
	}
	return p.Title + "\n" + p.Subtitle
}

// NavBarProps is the prop set of a NavBar.
type NavBarProps struct {
	Title     string `mapstructure:"title"`
	BackLabel string `mapstructure:"backLabel"`
}

func (p NavBarProps) Text() string { return p.Title }

// TabBarProps is the prop set of a TabBar.
type TabBarProps struct {
	Tabs   []string `mapstructure:"tabs"`
	Active int      `mapstructure:"active"`
}

func (TabBarProps) Text() string { return "" }

// newProps maps a component kind to a fresh, zero typed prop value.
func newProps(t schemas.ComponentType) (Props, bool) {
	switch t {
	case schemas.ComponentBox, schemas.ComponentRow, schemas.ComponentColumn, schemas.ComponentStack,
		schemas.ComponentGrid, schemas.ComponentScrollView, schemas.ComponentSpacer,
		schemas.ComponentDivider, schemas.ComponentList:
		return &ContainerProps{}, true
	case schemas.ComponentCard:
		return &CardProps{}, true
	case schemas.ComponentText:
		return &TextProps{}, true
	case schemas.ComponentHeading:
		return &HeadingProps{}, true
	case schemas.ComponentImage:
		return &ImageProps{}, true
	case schemas.ComponentIcon:
		return &IconProps{}, true
	case schemas.ComponentAvatar:
		return &AvatarProps{}, true
	case schemas.ComponentBadge:
		return &BadgeProps{}, true
	case schemas.ComponentButton:
		return &ButtonProps{}, true
	case schemas.ComponentInput:
		return &InputProps{}, true
	case schemas.ComponentTextArea:
		return &TextAreaProps{}, true
	case schemas.ComponentCheckbox, schemas.ComponentSwitch:
		return &ToggleProps{}, true
	case schemas.ComponentSelect:
		return &SelectProps{}, true
	case schemas.ComponentSlider:
		return &SliderProps{}, true
	case schemas.ComponentListItem:
		return &ListItemProps{}, true
	case schemas.ComponentNavBar:
		return &NavBarProps{}, true
	case schemas.ComponentTabBar:
		return &TabBarProps{}, true
	}
	return nil, false
}

// DecodeProps decodes a node's prop bag into the typed props for its kind. Unknown
// keys are tolerated; a value of the wrong shape for a known key is an error.
func DecodeProps(node *schemas.ComponentNode) (Props, error) {
	out, ok := newProps(node.Type)
	if !ok {
		return nil, fmt.Errorf("unknown component type %q", node.Type)
	}
	if len(node.Props) == 0 {
		return out, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create props decoder: %w", err)
	}
	if err := decoder.Decode(node.Props); err != nil {
		return nil, fmt.Errorf("invalid props for %s: %w", node.Type, err)
	}
	return out, nil
}

// TextContent returns the measurable text of a node, or "" when it has none or its
// props do not decode.
func TextContent(node *schemas.ComponentNode) string {
	props, err := DecodeProps(node)
	if err != nil {
		return ""
	}
	return props.Text()
}
