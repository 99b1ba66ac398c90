// internal/style/defaults.go
package style

import "github.com/xkilldash9x/mockup-cli/api/schemas"

// Sizes shared by several component kinds.
const (
	TouchTarget   = 44.0
	IconSize      = 24.0
	AvatarSize    = 40.0
	NavBarHeight  = 44.0
	TabBarHeight  = 49.0
	SwitchWidth   = 51.0
	SwitchHeight  = 31.0
	ListItemMin   = 56.0
	ImageHeight   = 200.0
	TextAreaRows  = 96.0
	SliderHeight  = 32.0
	DividerWeight = 1.0
)

func f(v float64) *float64 { return &v }

// DefaultLayout returns the layout a component kind starts from before the node's
// own layout is overlaid. The result is freshly allocated on every call.
func DefaultLayout(t schemas.ComponentType) *schemas.Layout {
	switch t {
	case schemas.ComponentRow:
		return &schemas.Layout{Direction: "row", Align: "center", Gap: schemas.Token("spacing.sm")}
	case schemas.ComponentColumn:
		return &schemas.Layout{Direction: "column", Gap: schemas.Token("spacing.sm")}
	case schemas.ComponentGrid:
		return &schemas.Layout{Direction: "row", Wrap: "wrap", Gap: schemas.Token("spacing.sm")}
	case schemas.ComponentCard:
		return &schemas.Layout{Direction: "column", Padding: schemas.Token("spacing.md"), Gap: schemas.Token("spacing.sm")}
	case schemas.ComponentScrollView:
		return &schemas.Layout{Direction: "column", FlexGrow: f(1)}
	case schemas.ComponentSpacer:
		return &schemas.Layout{FlexGrow: f(1)}
	case schemas.ComponentDivider:
		return &schemas.Layout{Height: schemas.Num(DividerWeight), AlignSelf: "stretch", FlexShrink: f(0)}
	case schemas.ComponentText, schemas.ComponentHeading:
		return &schemas.Layout{FlexShrink: f(0)}
	case schemas.ComponentImage:
		return &schemas.Layout{Height: schemas.Num(ImageHeight), AlignSelf: "stretch"}
	case schemas.ComponentIcon:
		return &schemas.Layout{Width: schemas.Num(IconSize), Height: schemas.Num(IconSize), FlexShrink: f(0)}
	case schemas.ComponentAvatar:
		return &schemas.Layout{Width: schemas.Num(AvatarSize), Height: schemas.Num(AvatarSize), FlexShrink: f(0)}
	case schemas.ComponentBadge:
		return &schemas.Layout{
			PaddingHorizontal: schemas.Token("spacing.sm"),
			PaddingVertical:   schemas.Token("spacing.xs"),
			AlignSelf:         "start",
			FlexShrink:        f(0),
		}
	case schemas.ComponentButton:
		return &schemas.Layout{
			Direction:         "row",
			Justify:           "center",
			Align:             "center",
			MinHeight:         schemas.Num(TouchTarget),
			PaddingHorizontal: schemas.Token("spacing.md"),
		}
	case schemas.ComponentInput, schemas.ComponentSelect:
		return &schemas.Layout{Height: schemas.Num(TouchTarget), PaddingHorizontal: schemas.Token("spacing.sm")}
	case schemas.ComponentTextArea:
		return &schemas.Layout{Height: schemas.Num(TextAreaRows), Padding: schemas.Token("spacing.sm")}
	case schemas.ComponentCheckbox:
		return &schemas.Layout{Width: schemas.Num(IconSize), Height: schemas.Num(IconSize), FlexShrink: f(0)}
	case schemas.ComponentSwitch:
		return &schemas.Layout{Width: schemas.Num(SwitchWidth), Height: schemas.Num(SwitchHeight), FlexShrink: f(0)}
	case schemas.ComponentSlider:
		return &schemas.Layout{Height: schemas.Num(SliderHeight)}
	case schemas.ComponentList:
		return &schemas.Layout{Direction: "column"}
	case schemas.ComponentListItem:
		return &schemas.Layout{
			Direction:         "row",
			Align:             "center",
			MinHeight:         schemas.Num(ListItemMin),
			PaddingHorizontal: schemas.Token("spacing.md"),
			Gap:               schemas.Token("spacing.sm"),
		}
	case schemas.ComponentNavBar:
		return &schemas.Layout{
			Direction:         "row",
			Align:             "center",
			Justify:           "between",
			Height:            schemas.Num(NavBarHeight),
			PaddingHorizontal: schemas.Token("spacing.md"),
			FlexShrink:        f(0),
		}
	case schemas.ComponentTabBar:
		return &schemas.Layout{
			Direction:  "row",
			Align:      "center",
			Justify:    "around",
			Height:     schemas.Num(TabBarHeight),
			FlexShrink: f(0),
		}
	}
	return &schemas.Layout{}
}

// DefaultStyle returns the visual defaults for a component kind.
func DefaultStyle(t schemas.ComponentType) *schemas.Style {
	switch t {
	case schemas.ComponentCard:
		return &schemas.Style{
			BackgroundColor: schemas.Token("colors.surface"),
			BorderRadius:    schemas.Token("radii.md"),
			Shadow:          schemas.Token("shadows.sm"),
		}
	case schemas.ComponentDivider:
		return &schemas.Style{BackgroundColor: schemas.Token("colors.border")}
	case schemas.ComponentText:
		return &schemas.Style{
			Color:      schemas.Token("colors.text"),
			FontSize:   schemas.Token("typography.fontSize.md"),
			LineHeight: schemas.Token("typography.lineHeight.normal"),
		}
	case schemas.ComponentHeading:
		return &schemas.Style{
			Color:      schemas.Token("colors.text"),
			FontSize:   schemas.Token("typography.fontSize.xl"),
			FontWeight: schemas.Token("typography.fontWeight.bold"),
			LineHeight: schemas.Token("typography.lineHeight.tight"),
		}
	case schemas.ComponentButton:
		return &schemas.Style{
			BackgroundColor: schemas.Token("colors.primary"),
			Color:           schemas.Str("#FFFFFF"),
			BorderRadius:    schemas.Token("radii.md"),
			FontSize:        schemas.Token("typography.fontSize.md"),
			FontWeight:      schemas.Token("typography.fontWeight.semibold"),
			TextAlign:       "center",
		}
	case schemas.ComponentBadge:
		return &schemas.Style{
			BackgroundColor: schemas.Token("colors.primary"),
			BorderRadius:    schemas.Token("radii.full"),
			FontSize:        schemas.Token("typography.fontSize.xs"),
		}
	case schemas.ComponentInput, schemas.ComponentSelect, schemas.ComponentTextArea:
		return &schemas.Style{
			BorderColor:  schemas.Token("colors.border"),
			BorderWidth:  schemas.Num(1),
			BorderRadius: schemas.Token("radii.md"),
		}
	case schemas.ComponentAvatar:
		return &schemas.Style{BorderRadius: schemas.Token("radii.full")}
	case schemas.ComponentListItem, schemas.ComponentNavBar:
		return &schemas.Style{FontSize: schemas.Token("typography.fontSize.md")}
	case schemas.ComponentTabBar:
		return &schemas.Style{BorderColor: schemas.Token("colors.border")}
	}
	return &schemas.Style{}
}
