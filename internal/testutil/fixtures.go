// internal/testutil/fixtures.go
package testutil

import (
	"time"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// -- Node Builders --

// Node builds a component node with the given children.
func Node(id string, t schemas.ComponentType, children ...*schemas.ComponentNode) *schemas.ComponentNode {
	return &schemas.ComponentNode{ID: id, Type: t, Children: children}
}

// WithProps sets props on a node and returns it.
func WithProps(n *schemas.ComponentNode, props map[string]any) *schemas.ComponentNode {
	n.Props = props
	return n
}

// WithLayout sets the layout of a node and returns it.
func WithLayout(n *schemas.ComponentNode, l *schemas.Layout) *schemas.ComponentNode {
	n.Layout = l
	return n
}

// WithStyle sets the style of a node and returns it.
func WithStyle(n *schemas.ComponentNode, s *schemas.Style) *schemas.ComponentNode {
	n.Style = s
	return n
}

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Screen wraps a root node in a default-sized screen.
func Screen(id string, root *schemas.ComponentNode) *schemas.Screen {
	return &schemas.Screen{
		ID:     id,
		Name:   id,
		Width:  schemas.DefaultScreenWidth,
		Height: schemas.DefaultScreenHeight,
		Root:   root,
	}
}

// Spec builds a document from screens with the given token table.
func Spec(tokens schemas.DesignTokens, screens ...*schemas.Screen) *schemas.DesignSpec {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &schemas.DesignSpec{
		ID:        "spec-1",
		Name:      "Fixture",
		Version:   1,
		CreatedAt: ts,
		UpdatedAt: ts,
		Tokens:    tokens,
		Screens:   screens,
	}
}

// Tokens returns a small token table exercised by the fixtures.
func Tokens() schemas.DesignTokens {
	return schemas.DesignTokens{
		Colors: map[string]string{"primary": "#2563EB", "text": "#0F172A"},
		Typography: schemas.Typography{
			FontFamily: map[string]string{"body": "Inter"},
			FontSize:   map[string]float64{"md": 16, "lg": 20},
			LineHeight: map[string]float64{"normal": 1.5},
		},
		Spacing: map[string]float64{"xs": 4, "sm": 8, "md": 16, "lg": 24},
		Radii:   map[string]float64{"md": 8},
	}
}

// SampleSpec returns a two screen document used across the package tests:
//
//	home:     root(Column) > header(Row) > [title(Text), avatar(Avatar)]
//	                       > body(Column) > [card(Card) > [cardText(Text)], cta(Button)]
//	settings: sroot(Column) > [toggle(Switch), save(Button)]
func SampleSpec() *schemas.DesignSpec {
	home := Node("root", schemas.ComponentColumn,
		Node("header", schemas.ComponentRow,
			WithProps(Node("title", schemas.ComponentText), map[string]any{"content": "Welcome"}),
			Node("avatar", schemas.ComponentAvatar),
		),
		Node("body", schemas.ComponentColumn,
			Node("card", schemas.ComponentCard,
				WithProps(Node("cardText", schemas.ComponentText), map[string]any{"content": "Card body"}),
			),
			WithProps(Node("cta", schemas.ComponentButton), map[string]any{"label": "Continue"}),
		),
	)
	settings := Node("sroot", schemas.ComponentColumn,
		WithProps(Node("toggle", schemas.ComponentSwitch), map[string]any{"label": "Dark mode"}),
		WithProps(Node("save", schemas.ComponentButton), map[string]any{"label": "Save"}),
	)
	spec := Spec(Tokens(), Screen("home", home), Screen("settings", settings))
	spec.Interactions = []schemas.Interaction{{
		ID:      "nav-1",
		Trigger: schemas.InteractionTrigger{NodeID: "cta", Event: "tap"},
		Action:  schemas.InteractionAction{Type: "navigate", TargetScreenID: "settings"},
	}}
	return spec
}

// ChildIDs returns the ids of a node's children in order.
func ChildIDs(n *schemas.ComponentNode) []string {
	ids := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		ids = append(ids, c.ID)
	}
	return ids
}
