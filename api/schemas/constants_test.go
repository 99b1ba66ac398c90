package schemas_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// TestConstants verifies the wire values of the enumerations. Stored documents
// and patch lists refer to them by string.
func TestConstants(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		constant interface{}
		expected string
	}{
		// Component types
		{"ComponentBox", schemas.ComponentBox, "Box"},
		{"ComponentColumn", schemas.ComponentColumn, "Column"},
		{"ComponentScrollView", schemas.ComponentScrollView, "ScrollView"},
		{"ComponentText", schemas.ComponentText, "Text"},
		{"ComponentTextArea", schemas.ComponentTextArea, "TextArea"},
		{"ComponentListItem", schemas.ComponentListItem, "ListItem"},
		{"ComponentTabBar", schemas.ComponentTabBar, "TabBar"},

		// Patch ops
		{"OpAdd", schemas.OpAdd, "add"},
		{"OpRemove", schemas.OpRemove, "remove"},
		{"OpUpdate", schemas.OpUpdate, "update"},
		{"OpMove", schemas.OpMove, "move"},
		{"OpReparent", schemas.OpReparent, "reparent"},
		{"OpReorder", schemas.OpReorder, "reorder"},
		{"OpUpdateTokens", schemas.OpUpdateTokens, "updateTokens"},
		{"OpUpdateScreen", schemas.OpUpdateScreen, "updateScreen"},

		// Token references
		{"TokenPrefix", schemas.TokenPrefix, "tokens."},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, fmt.Sprintf("%v", tt.constant))
		})
	}
}

func TestComponentTypes(t *testing.T) {
	t.Parallel()
	assert.Len(t, schemas.ComponentTypes, 26)
	seen := make(map[schemas.ComponentType]bool)
	for _, ct := range schemas.ComponentTypes {
		assert.False(t, seen[ct], "duplicate component type %s", ct)
		seen[ct] = true
		assert.True(t, ct.IsKnown())
	}
	assert.False(t, schemas.ComponentType("Marquee").IsKnown())
	assert.False(t, schemas.ComponentType("text").IsKnown(), "component types are case sensitive")
}

func TestPatchOps(t *testing.T) {
	t.Parallel()
	assert.Len(t, schemas.PatchOps, 8)
	assert.Equal(t, 5, *schemas.IntPtr(5))
}

func TestScreenSize(t *testing.T) {
	t.Parallel()
	w, h := (&schemas.Screen{}).Size()
	assert.Equal(t, float64(schemas.DefaultScreenWidth), w)
	assert.Equal(t, float64(schemas.DefaultScreenHeight), h)

	w, h = (&schemas.Screen{Width: 1440, Height: -1}).Size()
	assert.Equal(t, 1440.0, w)
	assert.Equal(t, 812.0, h)
}

func TestBoundsEdges(t *testing.T) {
	t.Parallel()
	b := schemas.Bounds{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, 40.0, b.Right())
	assert.Equal(t, 60.0, b.Bottom())

	board := schemas.Board{ID: "b", ScreenID: "s", X: 1, Y: 2, Width: 3, Height: 4}
	assert.Equal(t, schemas.Bounds{X: 1, Y: 2, Width: 3, Height: 4}, board.Bounds())
}
