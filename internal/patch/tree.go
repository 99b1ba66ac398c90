// internal/patch/tree.go
package patch

import (
	"slices"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/document"
)

// location pins a node inside a document: the owning screen and the chain of
// nodes from that screen's root down to the node, inclusive.
type location struct {
	screen int
	path   []*schemas.ComponentNode
}

func (l location) node() *schemas.ComponentNode { return l.path[len(l.path)-1] }

func (l location) isRoot() bool { return len(l.path) == 1 }

// parentPath is the path to the node's parent. Callers must check isRoot first.
func (l location) parentPath() []*schemas.ComponentNode { return l.path[:len(l.path)-1] }

func locate(spec *schemas.DesignSpec, id string) (location, bool) {
	for i, screen := range spec.Screens {
		if screen == nil {
			continue
		}
		if path, ok := document.FindPath(screen.Root, id); ok {
			return location{screen: i, path: path}, true
		}
	}
	return location{}, false
}

// container resolves the destination of an insertion. A screen id stands for
// that screen's root node and is checked before node ids.
func container(spec *schemas.DesignSpec, id string) (location, bool) {
	if si, ok := document.FindScreen(spec, id); ok {
		root := spec.Screens[si].Root
		if root == nil {
			return location{}, false
		}
		return location{screen: si, path: []*schemas.ComponentNode{root}}, true
	}
	return locate(spec, id)
}

// edit returns a shallow copy of spec in which screen si and every node on path
// have been copied and relinked into their copied parents. The returned nodes
// belong to the new document only and may be modified in place; everything
// off the path is shared with the input.
func edit(spec *schemas.DesignSpec, si int, path []*schemas.ComponentNode) (*schemas.DesignSpec, []*schemas.ComponentNode) {
	next := *spec
	next.Screens = slices.Clone(spec.Screens)
	screen := *spec.Screens[si]
	next.Screens[si] = &screen

	copies := make([]*schemas.ComponentNode, len(path))
	for i, n := range path {
		c := *n
		c.Children = slices.Clone(n.Children)
		copies[i] = &c
		if i == 0 {
			screen.Root = &c
			continue
		}
		parent := copies[i-1]
		parent.Children[slices.Index(parent.Children, n)] = &c
	}
	return &next, copies
}

// editScreen copies only the screen record at si.
func editScreen(spec *schemas.DesignSpec, si int) (*schemas.DesignSpec, *schemas.Screen) {
	next := *spec
	next.Screens = slices.Clone(spec.Screens)
	screen := *spec.Screens[si]
	next.Screens[si] = &screen
	return &next, &screen
}

// insertIndex resolves an optional insertion index against a list of n items.
// A missing index appends; out of range values are clamped.
func insertIndex(index *int, n int) int {
	if index == nil {
		return n
	}
	return clampIndex(*index, n)
}

func clampIndex(i, hi int) int {
	return max(0, min(i, hi))
}
