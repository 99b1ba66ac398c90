// internal/patch/patch_test.go
package patch_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/document"
	"github.com/xkilldash9x/mockup-cli/internal/patch"
	"github.com/xkilldash9x/mockup-cli/internal/testutil"
)

// -- Test Helpers --

// sequentialIDs returns an id generator producing gen-1, gen-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
}

func newEngine(opts ...patch.Option) *patch.Engine {
	return patch.NewEngine(zap.NewNop(), opts...)
}

func find(t *testing.T, spec *schemas.DesignSpec, id string) *schemas.ComponentNode {
	t.Helper()
	_, n, ok := document.Locate(spec, id)
	require.True(t, ok, "node %q not found", id)
	return n
}

// applyAndUndo applies p, checks the input was left alone, then applies the
// inverse and checks the original document comes back exactly.
func applyAndUndo(t *testing.T, e *patch.Engine, spec *schemas.DesignSpec, p schemas.Patch) patch.Result {
	t.Helper()
	before := document.CloneSpec(spec)

	res, err := e.Apply(spec, p)
	require.NoError(t, err)
	require.True(t, document.Equal(before, spec), "input was modified: %s", document.Diff(before, spec))

	undone, err := e.Apply(res.Spec, res.Inverse)
	require.NoError(t, err)
	assert.True(t, document.Equal(spec, undone.Spec), "undo mismatch: %s", document.Diff(spec, undone.Spec))
	return res
}

// -- Add --

func TestAdd_AppendsAndInverseRemoves(t *testing.T) {
	e := newEngine(patch.WithIDGenerator(sequentialIDs()))
	spec := testutil.SampleSpec()

	res := applyAndUndo(t, e, spec, schemas.Patch{
		Op:     schemas.OpAdd,
		Target: "body",
		Node:   &schemas.ComponentNode{Type: schemas.ComponentButton, Props: map[string]any{"label": "Next"}},
	})

	assert.Equal(t, []string{"card", "cta", "gen-1"}, testutil.ChildIDs(find(t, res.Spec, "body")))
	assert.Equal(t, schemas.Patch{Op: schemas.OpRemove, Target: "gen-1"}, res.Inverse)
	require.NotNil(t, res.Applied.Node)
	assert.Equal(t, "gen-1", res.Applied.Node.ID, "applied patch records the generated id")
}

func TestAdd_Targets(t *testing.T) {
	tests := []struct {
		name   string
		target string
		index  *int
		parent string
		want   []string
	}{
		{"screen id means its root", "settings", schemas.IntPtr(0), "sroot", []string{"gen-1", "toggle", "save"}},
		{"index in the middle", "body", schemas.IntPtr(1), "body", []string{"card", "gen-1", "cta"}},
		{"index clamped high", "body", schemas.IntPtr(99), "body", []string{"card", "cta", "gen-1"}},
		{"index clamped low", "body", schemas.IntPtr(-3), "body", []string{"gen-1", "card", "cta"}},
		{"leaf becomes parent", "avatar", nil, "avatar", []string{"gen-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(patch.WithIDGenerator(sequentialIDs()))
			res := applyAndUndo(t, e, testutil.SampleSpec(), schemas.Patch{
				Op:     schemas.OpAdd,
				Target: tt.target,
				Index:  tt.index,
				Node:   &schemas.ComponentNode{Type: schemas.ComponentText},
			})
			assert.Equal(t, tt.want, testutil.ChildIDs(find(t, res.Spec, tt.parent)))
		})
	}
}

func TestAdd_GeneratesMissingIDsInSubtree(t *testing.T) {
	e := newEngine(patch.WithIDGenerator(sequentialIDs()))
	res := applyAndUndo(t, e, testutil.SampleSpec(), schemas.Patch{
		Op:     schemas.OpAdd,
		Target: "body",
		Node: &schemas.ComponentNode{Type: schemas.ComponentCard, Children: []*schemas.ComponentNode{
			{Type: schemas.ComponentText},
			{ID: "keep", Type: schemas.ComponentText},
		}},
	})

	card := find(t, res.Spec, "gen-1")
	assert.Equal(t, []string{"gen-2", "keep"}, testutil.ChildIDs(card))
}

func TestAdd_Errors(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	_, err := e.Apply(spec, schemas.Patch{Op: schemas.OpAdd, Target: "body", Node: &schemas.ComponentNode{ID: "cta", Type: schemas.ComponentButton}})
	var invalidErr *patch.InvalidOperationError
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Reason, "duplicate node id")

	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpAdd, Target: "body", Node: &schemas.ComponentNode{Type: "Widget"}})
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Reason, "unknown component type")

	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpAdd, Target: "body"})
	require.ErrorAs(t, err, &invalidErr)

	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpAdd, Target: "body", Node: &schemas.ComponentNode{
		Type: schemas.ComponentCard, Children: []*schemas.ComponentNode{nil},
	}})
	require.ErrorAs(t, err, &invalidErr)

	// A node named like a screen would make screen-addressed inverses ambiguous.
	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpAdd, Target: "body", Node: &schemas.ComponentNode{ID: "settings", Type: schemas.ComponentCard}})
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Reason, "collides with a screen id")

	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpAdd, Target: "nowhere", Node: &schemas.ComponentNode{Type: schemas.ComponentText}})
	var nf *patch.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nowhere", nf.Target)
	assert.ErrorIs(t, err, patch.ErrNotFound)
}

// -- Remove --

func TestRemove(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	res := applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpRemove, Target: "card"})
	assert.Equal(t, []string{"cta"}, testutil.ChildIDs(find(t, res.Spec, "body")))
	_, _, ok := document.Locate(res.Spec, "cardText")
	assert.False(t, ok, "subtree is detached with its parent")

	assert.Equal(t, schemas.OpAdd, res.Inverse.Op)
	assert.Equal(t, "body", res.Inverse.Target)
	require.NotNil(t, res.Inverse.Index)
	assert.Equal(t, 0, *res.Inverse.Index)
	assert.True(t, document.NodesEqual(find(t, spec, "card"), res.Inverse.Node))
}

func TestRemove_Errors(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	_, err := e.Apply(spec, schemas.Patch{Op: schemas.OpRemove, Target: "root"})
	var invalidErr *patch.InvalidOperationError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "root", invalidErr.Target)

	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpRemove, Target: "ghost"})
	assert.ErrorIs(t, err, patch.ErrNotFound)
}

// -- Move --

func TestMove_FinalIndex(t *testing.T) {
	root := testutil.Node("root", schemas.ComponentColumn,
		testutil.Node("moved", schemas.ComponentText),
		testutil.Node("s1", schemas.ComponentText),
		testutil.Node("s2", schemas.ComponentText),
	)
	spec := testutil.Spec(testutil.Tokens(), testutil.Screen("s", root))
	e := newEngine()

	res := applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpMove, Target: "moved", ToIndex: 2})
	assert.Equal(t, []string{"s1", "s2", "moved"}, testutil.ChildIDs(res.Spec.Screens[0].Root))
	assert.Equal(t, schemas.Patch{Op: schemas.OpMove, Target: "moved", ToIndex: 0}, res.Inverse)

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpMove, Target: "s2", ToIndex: 0})
	assert.Equal(t, []string{"s2", "moved", "s1"}, testutil.ChildIDs(res.Spec.Screens[0].Root))

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpMove, Target: "moved", ToIndex: 42})
	assert.Equal(t, []string{"s1", "s2", "moved"}, testutil.ChildIDs(res.Spec.Screens[0].Root))

	_, err := e.Apply(spec, schemas.Patch{Op: schemas.OpMove, Target: "root", ToIndex: 1})
	var invalidErr *patch.InvalidOperationError
	assert.ErrorAs(t, err, &invalidErr)
}

// -- Reparent --

func TestReparent(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	res := applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpReparent, Target: "cta", NewParent: "header", Index: schemas.IntPtr(1)})
	assert.Equal(t, []string{"title", "cta", "avatar"}, testutil.ChildIDs(find(t, res.Spec, "header")))
	assert.Equal(t, []string{"card"}, testutil.ChildIDs(find(t, res.Spec, "body")))
	assert.Equal(t, schemas.Patch{Op: schemas.OpReparent, Target: "cta", NewParent: "body", Index: schemas.IntPtr(1)}, res.Inverse)
}

func TestReparent_AcrossScreens(t *testing.T) {
	e := newEngine()
	res := applyAndUndo(t, e, testutil.SampleSpec(), schemas.Patch{Op: schemas.OpReparent, Target: "avatar", NewParent: "settings"})

	assert.Equal(t, []string{"toggle", "save", "avatar"}, testutil.ChildIDs(res.Spec.Screens[1].Root))
	assert.Equal(t, []string{"title"}, testutil.ChildIDs(find(t, res.Spec, "header")))
}

func TestReparent_WithinSameParent(t *testing.T) {
	e := newEngine()
	res := applyAndUndo(t, e, testutil.SampleSpec(), schemas.Patch{Op: schemas.OpReparent, Target: "card", NewParent: "body"})
	assert.Equal(t, []string{"cta", "card"}, testutil.ChildIDs(find(t, res.Spec, "body")))
}

func TestReparent_Errors(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()
	var invalidErr *patch.InvalidOperationError

	_, err := e.Apply(spec, schemas.Patch{Op: schemas.OpReparent, Target: "body", NewParent: "cardText"})
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Reason, "own subtree")

	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpReparent, Target: "body", NewParent: "body"})
	require.ErrorAs(t, err, &invalidErr)

	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpReparent, Target: "root", NewParent: "settings"})
	require.ErrorAs(t, err, &invalidErr)

	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpReparent, Target: "cta", NewParent: "ghost"})
	var nf *patch.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "ghost", nf.Target)
}

// -- Reorder --

func TestReorder(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	tests := []struct {
		name  string
		order []string
		want  []string
	}{
		{"full order", []string{"body", "header"}, []string{"body", "header"}},
		{"unknown and repeated ids ignored", []string{"ghost", "body", "body"}, []string{"body", "header"}},
		{"unmentioned children keep order at the end", nil, []string{"header", "body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpReorder, Target: "root", Order: tt.order})
			assert.Equal(t, tt.want, testutil.ChildIDs(res.Spec.Screens[0].Root))
			assert.Equal(t, []string{"header", "body"}, res.Inverse.Order)
		})
	}

	_, err := e.Apply(spec, schemas.Patch{Op: schemas.OpReorder, Target: "ghost"})
	assert.ErrorIs(t, err, patch.ErrNotFound)
}

// -- Update --

func TestUpdate_Props(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	res := applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdate, Target: "cta", Path: "props.label", Value: "Go"})
	assert.Equal(t, "Go", find(t, res.Spec, "cta").Props["label"])
	assert.Equal(t, schemas.Patch{Op: schemas.OpUpdate, Target: "cta", Path: "props.label", Value: "Continue"}, res.Inverse)
	assert.Equal(t, "Continue", find(t, spec, "cta").Props["label"], "input props untouched")

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdate, Target: "cta", Path: "props.meta.icon", Value: "arrow"})
	assert.Equal(t, map[string]any{"icon": "arrow"}, find(t, res.Spec, "cta").Props["meta"])
	assert.Equal(t, schemas.Patch{Op: schemas.OpUpdate, Target: "cta", Path: "props.meta", Unset: true}, res.Inverse)

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdate, Target: "avatar", Path: "props.size", Value: 40.0})
	assert.Equal(t, 40.0, find(t, res.Spec, "avatar").Props["size"])
	assert.Equal(t, schemas.Patch{Op: schemas.OpUpdate, Target: "avatar", Path: "props", Unset: true}, res.Inverse)

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdate, Target: "cta", Path: "props.label", Unset: true})
	assert.NotContains(t, find(t, res.Spec, "cta").Props, "label")
	assert.Equal(t, "Continue", res.Inverse.Value)
}

func TestUpdate_StyleAndLayout(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	res := applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdate, Target: "card", Path: "style.backgroundColor", Value: "tokens.colors.primary"})
	card := find(t, res.Spec, "card")
	require.NotNil(t, card.Style)
	require.NotNil(t, card.Style.BackgroundColor)
	path, ok := card.Style.BackgroundColor.TokenPath()
	require.True(t, ok)
	assert.Equal(t, "colors.primary", path)
	assert.Equal(t, schemas.Patch{Op: schemas.OpUpdate, Target: "card", Path: "style", Unset: true}, res.Inverse)

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdate, Target: "body", Path: "layout.gap", Value: 12})
	body := find(t, res.Spec, "body")
	require.NotNil(t, body.Layout)
	assert.True(t, schemas.Num(12).Equal(*body.Layout.Gap))

	// A second write to an existing section restores the old value on undo.
	res2 := applyAndUndo(t, e, res.Spec, schemas.Patch{Op: schemas.OpUpdate, Target: "body", Path: "layout.gap", Value: 20})
	assert.Equal(t, schemas.Patch{Op: schemas.OpUpdate, Target: "body", Path: "layout.gap", Value: 12.0}, res2.Inverse)

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdate, Target: "body", Path: "layout", Value: map[string]any{"direction": "row"}})
	assert.Equal(t, "row", find(t, res.Spec, "body").Layout.Direction)
}

func TestUpdate_StyleKeepsSiblingValues(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()
	card := spec.Screens[0].Root.Children[1].Children[0]
	require.Equal(t, "card", card.ID)
	card.Style = &schemas.Style{
		Color:        schemas.Str("tokens.literal"),
		BorderColor:  schemas.Str("#ccc"),
		BorderRadius: schemas.Num(8),
	}

	res := applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdate, Target: "card", Path: "style.opacity", Value: 0.5})
	updated := find(t, res.Spec, "card")
	require.NotNil(t, updated.Style.Opacity)
	assert.Equal(t, 0.5, *updated.Style.Opacity)
	assert.True(t, card.Style.Color.Equal(*updated.Style.Color), "untouched fields survive the section rewrite")
	assert.True(t, card.Style.BorderColor.Equal(*updated.Style.BorderColor))
	assert.True(t, card.Style.BorderRadius.Equal(*updated.Style.BorderRadius))
}

func TestUpdate_Type(t *testing.T) {
	e := newEngine()
	res := applyAndUndo(t, e, testutil.SampleSpec(), schemas.Patch{Op: schemas.OpUpdate, Target: "avatar", Path: "type", Value: "Icon"})
	assert.Equal(t, schemas.ComponentIcon, find(t, res.Spec, "avatar").Type)
	assert.Equal(t, "Avatar", res.Inverse.Value)
}

func TestUpdate_Errors(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	tests := []struct {
		name  string
		patch schemas.Patch
	}{
		{"id is immutable", schemas.Patch{Path: "id", Value: "x"}},
		{"children are immutable", schemas.Patch{Path: "children", Value: []any{}}},
		{"empty path", schemas.Patch{Path: ""}},
		{"empty segment", schemas.Patch{Path: "props..label", Value: 1}},
		{"unknown section", schemas.Patch{Path: "meta.x", Value: 1}},
		{"unknown style field", schemas.Patch{Path: "style.glow", Value: 1}},
		{"wrong layout type", schemas.Patch{Path: "layout.flex", Value: "lots"}},
		{"descend into scalar", schemas.Patch{Path: "props.label.text", Value: "x"}},
		{"props must be an object", schemas.Patch{Path: "props", Value: "x"}},
		{"unknown type", schemas.Patch{Path: "type", Value: "Widget"}},
		{"type unset", schemas.Patch{Path: "type", Unset: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.patch
			p.Op = schemas.OpUpdate
			p.Target = "cta"
			_, err := e.Apply(spec, p)
			var invalidErr *patch.InvalidOperationError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, "cta", invalidErr.Target)
		})
	}

	_, err := e.Apply(spec, schemas.Patch{Op: schemas.OpUpdate, Target: "ghost", Path: "props.x", Value: 1})
	assert.ErrorIs(t, err, patch.ErrNotFound)
}

// -- Tokens and Screens --

func TestUpdateTokens(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	res := applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdateTokens, Path: "spacing.md", Value: 20})
	assert.Equal(t, 20.0, res.Spec.Tokens.Spacing["md"])
	assert.Equal(t, 16.0, res.Inverse.Value)
	assert.Equal(t, 16.0, spec.Tokens.Spacing["md"])

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdateTokens, Path: "typography.fontSize.xl", Value: 28})
	assert.Equal(t, 28.0, res.Spec.Tokens.Typography.FontSize["xl"])
	assert.Equal(t, schemas.Patch{Op: schemas.OpUpdateTokens, Path: "typography.fontSize.xl", Unset: true}, res.Inverse)

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdateTokens, Path: "shadows.card", Value: "0 1px 2px #0003"})
	assert.Equal(t, schemas.Patch{Op: schemas.OpUpdateTokens, Path: "shadows", Unset: true}, res.Inverse)

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdateTokens, Path: "colors.primary", Unset: true})
	assert.NotContains(t, res.Spec.Tokens.Colors, "primary")

	for _, bad := range []schemas.Patch{
		{Op: schemas.OpUpdateTokens, Path: "spacing.md", Value: "big"},
		{Op: schemas.OpUpdateTokens, Path: "gradients.hero", Value: "x"},
		{Op: schemas.OpUpdateTokens, Path: "colors.primary.dark", Value: "#000"},
	} {
		_, err := e.Apply(spec, bad)
		var invalidErr *patch.InvalidOperationError
		assert.ErrorAs(t, err, &invalidErr, bad.Path)
	}
}

func TestUpdateScreen(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	res := applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdateScreen, Target: "home", Path: "name", Value: "Home"})
	assert.Equal(t, "Home", res.Spec.Screens[0].Name)
	assert.Equal(t, "home", res.Inverse.Value)
	assert.Same(t, spec.Screens[0].Root, res.Spec.Screens[0].Root, "tree is shared")

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdateScreen, Target: "home", Path: "width", Value: 390})
	assert.Equal(t, 390.0, res.Spec.Screens[0].Width)
	assert.Equal(t, float64(schemas.DefaultScreenWidth), res.Inverse.Value)

	res = applyAndUndo(t, e, spec, schemas.Patch{Op: schemas.OpUpdateScreen, Target: "settings", Path: "height", Unset: true})
	assert.Zero(t, res.Spec.Screens[1].Height)

	var invalidErr *patch.InvalidOperationError
	_, err := e.Apply(spec, schemas.Patch{Op: schemas.OpUpdateScreen, Target: "home", Path: "id", Value: "x"})
	assert.ErrorAs(t, err, &invalidErr)
	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpUpdateScreen, Target: "home", Path: "width", Value: -1})
	assert.ErrorAs(t, err, &invalidErr)
	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpUpdateScreen, Target: "home", Path: "name", Value: 3})
	assert.ErrorAs(t, err, &invalidErr)
	_, err = e.Apply(spec, schemas.Patch{Op: schemas.OpUpdateScreen, Target: "ghost", Path: "name", Value: "x"})
	assert.ErrorIs(t, err, patch.ErrNotFound)
}

// -- Engine Behavior --

func TestApply_CopyOnWrite(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	res, err := e.Apply(spec, schemas.Patch{Op: schemas.OpUpdate, Target: "cardText", Path: "props.content", Value: "Changed"})
	require.NoError(t, err)

	assert.Same(t, spec.Screens[1], res.Spec.Screens[1], "untouched screens are shared")
	assert.Same(t, find(t, spec, "header"), find(t, res.Spec, "header"), "untouched subtrees are shared")
	assert.Same(t, find(t, spec, "cta"), find(t, res.Spec, "cta"))
	assert.NotSame(t, find(t, spec, "body"), find(t, res.Spec, "body"), "ancestors of the edit are copied")
	assert.Equal(t, "Card body", find(t, spec, "cardText").Props["content"])
	assert.Equal(t, spec.Version, res.Spec.Version, "version is left to the caller")
}

func TestApply_UnsupportedAndNil(t *testing.T) {
	e := newEngine()

	_, err := e.Apply(testutil.SampleSpec(), schemas.Patch{Op: "explode", Target: "cta"})
	var unsupported *patch.UnsupportedOpError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, schemas.PatchOp("explode"), unsupported.Op)

	_, err = e.Apply(nil, schemas.Patch{Op: schemas.OpRemove, Target: "cta"})
	assert.Error(t, err)
}

// -- Batches --

func TestApplyAll_UndoInReverse(t *testing.T) {
	e := newEngine(patch.WithIDGenerator(sequentialIDs()))
	spec := testutil.SampleSpec()
	batch := []schemas.Patch{
		{Op: schemas.OpAdd, Target: "body", Node: &schemas.ComponentNode{Type: schemas.ComponentText}},
		{Op: schemas.OpUpdate, Target: "gen-1", Path: "props.content", Value: "Hello"},
		{Op: schemas.OpMove, Target: "gen-1", ToIndex: 0},
		{Op: schemas.OpUpdateTokens, Path: "colors.primary", Value: "#111111"},
	}

	res, err := e.ApplyAll(spec, batch)
	require.NoError(t, err)
	assert.Equal(t, []string{"gen-1", "card", "cta"}, testutil.ChildIDs(find(t, res.Spec, "body")))
	require.Len(t, res.Inverses, len(batch))
	assert.Equal(t, schemas.OpUpdateTokens, res.Inverses[0].Op)
	assert.Equal(t, schemas.Patch{Op: schemas.OpRemove, Target: "gen-1"}, res.Inverses[3])
	require.Len(t, res.Applied, len(batch))
	assert.Equal(t, "gen-1", res.Applied[0].Node.ID)

	undone, err := e.ApplyAll(res.Spec, res.Inverses)
	require.NoError(t, err)
	assert.True(t, document.Equal(spec, undone.Spec), document.Diff(spec, undone.Spec))

	redone, err := e.ApplyAll(spec, res.Applied)
	require.NoError(t, err)
	assert.True(t, document.Equal(res.Spec, redone.Spec), "replaying applied patches reproduces the result")
}

func TestApplyAll_AllOrNothing(t *testing.T) {
	e := newEngine()
	spec := testutil.SampleSpec()

	res, err := e.ApplyAll(spec, []schemas.Patch{
		{Op: schemas.OpRemove, Target: "avatar"},
		{Op: schemas.OpRemove, Target: "ghost"},
		{Op: schemas.OpRemove, Target: "cta"},
	})
	require.Error(t, err)

	var batchErr *patch.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 1, batchErr.Index)
	assert.Equal(t, "ghost", batchErr.Target)
	assert.ErrorIs(t, err, patch.ErrNotFound)
	assert.Same(t, spec, res.Spec, "failed batches return the input")
	assert.Empty(t, res.Inverses)

	_, _, ok := document.Locate(spec, "avatar")
	assert.True(t, ok)
}

func TestApplyAll_Empty(t *testing.T) {
	spec := testutil.SampleSpec()
	res, err := newEngine().ApplyAll(spec, nil)
	require.NoError(t, err)
	assert.Same(t, spec, res.Spec)
	assert.Empty(t, res.Inverses)
}

func TestNewGroup(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	e := newEngine(patch.WithClock(func() time.Time { return now }))
	res, err := e.ApplyAll(testutil.SampleSpec(), []schemas.Patch{{Op: schemas.OpRemove, Target: "avatar"}})
	require.NoError(t, err)

	group := e.NewGroup("Remove avatar", res)
	assert.NotEmpty(t, group.ID)
	assert.Equal(t, "Remove avatar", group.Description)
	assert.Equal(t, now, group.Timestamp)
	assert.Equal(t, res.Applied, group.Patches)
	assert.Equal(t, res.Inverses, group.Inverses)

	other := e.NewGroup("again", res)
	assert.NotEqual(t, group.ID, other.ID)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `remove: target "x" not found`, (&patch.NotFoundError{Op: schemas.OpRemove, Target: "x"}).Error())
	assert.Equal(t, `unsupported patch op "zap"`, (&patch.UnsupportedOpError{Op: "zap"}).Error())
	assert.Equal(t, `move "root": cannot move a screen root`,
		(&patch.InvalidOperationError{Op: schemas.OpMove, Target: "root", Reason: "cannot move a screen root"}).Error())
	assert.Equal(t, `updateTokens: bad`, (&patch.InvalidOperationError{Op: schemas.OpUpdateTokens, Reason: "bad"}).Error())

	inner := errors.New("boom")
	batch := &patch.BatchError{Index: 2, Op: schemas.OpAdd, Target: "body", Err: inner}
	assert.Equal(t, `patch 2 (add "body") failed: boom`, batch.Error())
	assert.ErrorIs(t, batch, inner)
}
