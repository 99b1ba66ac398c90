// internal/patch/structure.go
package patch

import (
	"fmt"
	"slices"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/document"
)

// -- Structural Operations --
// Each operation captures its inverse from the pre-state before it edits.

func (e *Engine) add(spec *schemas.DesignSpec, p schemas.Patch) (*schemas.DesignSpec, schemas.Patch, schemas.Patch, error) {
	if p.Node == nil {
		return nil, p, schemas.Patch{}, invalid(p, "node is required")
	}
	dest, ok := container(spec, p.Target)
	if !ok {
		return nil, p, schemas.Patch{}, notFound(p, p.Target)
	}

	node := document.CloneNode(p.Node)
	if err := e.prepareSubtree(spec, node); err != nil {
		return nil, p, schemas.Patch{}, invalid(p, "%v", err)
	}

	next, path := edit(spec, dest.screen, dest.path)
	parent := path[len(path)-1]
	parent.Children = slices.Insert(parent.Children, insertIndex(p.Index, len(parent.Children)), node)

	applied := p
	applied.Node = document.CloneNode(node)
	return next, applied, schemas.Patch{Op: schemas.OpRemove, Target: node.ID}, nil
}

// prepareSubtree fills missing ids in a subtree about to be inserted and
// rejects unknown component types, null children and ids that would collide.
func (e *Engine) prepareSubtree(spec *schemas.DesignSpec, node *schemas.ComponentNode) error {
	taken := make(map[string]bool)
	for _, id := range document.CollectIDs(spec) {
		taken[id] = true
	}

	var err error
	document.Walk(node, func(n *schemas.ComponentNode, _ int) bool {
		if !n.Type.IsKnown() {
			err = fmt.Errorf("unknown component type %q", n.Type)
			return false
		}
		if n.ID == "" {
			n.ID = e.newID()
		}
		if taken[n.ID] {
			err = fmt.Errorf("duplicate node id %q", n.ID)
			return false
		}
		if _, ok := document.FindScreen(spec, n.ID); ok {
			err = fmt.Errorf("node id %q collides with a screen id", n.ID)
			return false
		}
		if slices.Contains(n.Children, nil) {
			err = fmt.Errorf("node %q has a null child", n.ID)
			return false
		}
		taken[n.ID] = true
		return true
	})
	return err
}

func remove(spec *schemas.DesignSpec, p schemas.Patch) (*schemas.DesignSpec, schemas.Patch, error) {
	loc, ok := locate(spec, p.Target)
	if !ok {
		return nil, schemas.Patch{}, notFound(p, p.Target)
	}
	if loc.isRoot() {
		return nil, schemas.Patch{}, invalid(p, "cannot remove a screen root")
	}

	next, path := edit(spec, loc.screen, loc.parentPath())
	parent := path[len(path)-1]
	idx := slices.Index(parent.Children, loc.node())
	parent.Children = slices.Delete(parent.Children, idx, idx+1)

	return next, schemas.Patch{
		Op:     schemas.OpAdd,
		Target: parent.ID,
		Node:   document.CloneNode(loc.node()),
		Index:  schemas.IntPtr(idx),
	}, nil
}

// move repositions a node among its siblings. ToIndex is the index the node
// ends up at, clamped to the sibling range.
func move(spec *schemas.DesignSpec, p schemas.Patch) (*schemas.DesignSpec, schemas.Patch, error) {
	loc, ok := locate(spec, p.Target)
	if !ok {
		return nil, schemas.Patch{}, notFound(p, p.Target)
	}
	if loc.isRoot() {
		return nil, schemas.Patch{}, invalid(p, "cannot move a screen root")
	}

	next, path := edit(spec, loc.screen, loc.parentPath())
	parent := path[len(path)-1]
	from := slices.Index(parent.Children, loc.node())
	to := clampIndex(p.ToIndex, len(parent.Children)-1)
	siblings := slices.Delete(parent.Children, from, from+1)
	parent.Children = slices.Insert(siblings, to, loc.node())

	return next, schemas.Patch{Op: schemas.OpMove, Target: p.Target, ToIndex: from}, nil
}

func reparent(spec *schemas.DesignSpec, p schemas.Patch) (*schemas.DesignSpec, schemas.Patch, error) {
	loc, ok := locate(spec, p.Target)
	if !ok {
		return nil, schemas.Patch{}, notFound(p, p.Target)
	}
	if loc.isRoot() {
		return nil, schemas.Patch{}, invalid(p, "cannot reparent a screen root")
	}
	dest, ok := container(spec, p.NewParent)
	if !ok {
		return nil, schemas.Patch{}, notFound(p, p.NewParent)
	}
	node := loc.node()
	if slices.Contains(dest.path, node) {
		return nil, schemas.Patch{}, invalid(p, "cannot reparent a node into its own subtree")
	}

	// Detach, then resolve the destination again in the intermediate document
	// since its path may run through copies made by the first edit.
	next, path := edit(spec, loc.screen, loc.parentPath())
	oldParent := path[len(path)-1]
	from := slices.Index(oldParent.Children, node)
	oldParent.Children = slices.Delete(oldParent.Children, from, from+1)

	dest, _ = container(next, p.NewParent)
	next, path = edit(next, dest.screen, dest.path)
	newParent := path[len(path)-1]
	newParent.Children = slices.Insert(newParent.Children, insertIndex(p.Index, len(newParent.Children)), node)

	return next, schemas.Patch{
		Op:        schemas.OpReparent,
		Target:    p.Target,
		NewParent: oldParent.ID,
		Index:     schemas.IntPtr(from),
	}, nil
}

// reorder arranges children by Order. Ids that are not children are ignored,
// as are repeats; children Order leaves out keep their relative order after
// the listed ones. The set of children never changes.
func reorder(spec *schemas.DesignSpec, p schemas.Patch) (*schemas.DesignSpec, schemas.Patch, error) {
	loc, ok := container(spec, p.Target)
	if !ok {
		return nil, schemas.Patch{}, notFound(p, p.Target)
	}

	next, path := edit(spec, loc.screen, loc.path)
	parent := path[len(path)-1]
	original := make([]string, len(parent.Children))
	for i, c := range parent.Children {
		original[i] = c.ID
	}

	placed := make([]bool, len(parent.Children))
	ordered := make([]*schemas.ComponentNode, 0, len(parent.Children))
	for _, id := range p.Order {
		for i, c := range parent.Children {
			if !placed[i] && c.ID == id {
				placed[i] = true
				ordered = append(ordered, c)
				break
			}
		}
	}
	for i, c := range parent.Children {
		if !placed[i] {
			ordered = append(ordered, c)
		}
	}
	parent.Children = ordered

	return next, schemas.Patch{Op: schemas.OpReorder, Target: p.Target, Order: original}, nil
}
