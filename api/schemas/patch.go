package schemas

import (
	"time"
)

// PatchOp is the discriminator of the Patch union.
type PatchOp string

const (
	OpAdd          PatchOp = "add"
	OpRemove       PatchOp = "remove"
	OpUpdate       PatchOp = "update"
	OpMove         PatchOp = "move"
	OpReparent     PatchOp = "reparent"
	OpReorder      PatchOp = "reorder"
	OpUpdateTokens PatchOp = "updateTokens"
	OpUpdateScreen PatchOp = "updateScreen"
)

// PatchOps lists every supported operation.
var PatchOps = []PatchOp{
	OpAdd, OpRemove, OpUpdate, OpMove, OpReparent, OpReorder, OpUpdateTokens, OpUpdateScreen,
}

// Patch is a single typed mutation of a DesignSpec. Which payload fields are
// meaningful depends on Op:
//
//	add          Target (screen or parent node), Node, Index
//	remove       Target
//	update       Target, Path, Value | Unset
//	move         Target, ToIndex
//	reparent     Target, NewParent, Index
//	reorder      Target (parent), Order
//	updateTokens Path, Value | Unset
//	updateScreen Target (screen), Path, Value | Unset
//
// Unset asks the engine to delete Path instead of assigning Value. The engine emits
// it in inverses when the original update created a previously absent path.
type Patch struct {
	Op        PatchOp        `json:"op"`
	Target    string         `json:"target,omitempty"`
	Node      *ComponentNode `json:"node,omitempty"`
	Index     *int           `json:"index,omitempty"`
	Path      string         `json:"path,omitempty"`
	Value     any            `json:"value,omitempty"`
	Unset     bool           `json:"unset,omitempty"`
	ToIndex   int            `json:"toIndex,omitempty"`
	NewParent string         `json:"newParent,omitempty"`
	Order     []string       `json:"order,omitempty"`
}

// IntPtr is a small helper for the optional Index field.
func IntPtr(i int) *int { return &i }

// PatchGroup is one undoable unit: a batch of patches plus their inverses, in the
// order they must be replayed to undo the batch.
type PatchGroup struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Patches     []Patch   `json:"patches"`
	Inverses    []Patch   `json:"inverses"`
}
