// internal/spatial/selection.go
package spatial

import (
	"slices"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// Select returns the selection after clicking id. A plain click replaces the
// selection; an additive click toggles id in or out of it. An empty id clears
// the selection unless the click is additive. The input is not modified.
func Select(state schemas.SelectionState, id string, additive bool) schemas.SelectionState {
	next := schemas.SelectionState{HoveredNodeID: state.HoveredNodeID}
	switch {
	case id == "" && !additive:
		next.SelectedNodeIDs = []string{}
	case id == "":
		next.SelectedNodeIDs = slices.Clone(state.SelectedNodeIDs)
	case !additive:
		next.SelectedNodeIDs = []string{id}
	case slices.Contains(state.SelectedNodeIDs, id):
		next.SelectedNodeIDs = slices.DeleteFunc(slices.Clone(state.SelectedNodeIDs), func(s string) bool { return s == id })
	default:
		next.SelectedNodeIDs = append(slices.Clone(state.SelectedNodeIDs), id)
	}
	return next
}

// Hover sets the hovered node. An empty id clears it.
func Hover(state schemas.SelectionState, id string) schemas.SelectionState {
	next := schemas.SelectionState{SelectedNodeIDs: slices.Clone(state.SelectedNodeIDs)}
	if id != "" {
		next.HoveredNodeID = &id
	}
	return next
}

// Prune drops selected and hovered ids that no longer exist in root, for use
// after an edit removed nodes.
func Prune(state schemas.SelectionState, root *schemas.ComponentNode) schemas.SelectionState {
	present := func(id string) bool {
		_, ok := Breadcrumb(root, id)
		return ok
	}
	next := schemas.SelectionState{SelectedNodeIDs: []string{}}
	for _, id := range state.SelectedNodeIDs {
		if present(id) {
			next.SelectedNodeIDs = append(next.SelectedNodeIDs, id)
		}
	}
	if state.HoveredNodeID != nil && present(*state.HoveredNodeID) {
		h := *state.HoveredNodeID
		next.HoveredNodeID = &h
	}
	return next
}
