// internal/document/tree.go
package document

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// -- Structural Lookups --
//
// All lookups report absence through a boolean rather than an error. A stale id
// coming from an editor or an AI collaborator is an expected condition.

// FindNode searches depth-first and returns the first node with the given id.
// Ids are unique across a document, so the first match is the only match.
func FindNode(root *schemas.ComponentNode, id string) (*schemas.ComponentNode, bool) {
	if root == nil {
		return nil, false
	}
	if root.ID == id {
		return root, true
	}
	for _, child := range root.Children {
		if found, ok := FindNode(child, id); ok {
			return found, true
		}
	}
	return nil, false
}

// FindParent returns the parent of the node with the given id and the node's index
// among its siblings. The root itself has no parent.
func FindParent(root *schemas.ComponentNode, id string) (*schemas.ComponentNode, int, bool) {
	if root == nil {
		return nil, -1, false
	}
	for i, child := range root.Children {
		if child == nil {
			continue
		}
		if child.ID == id {
			return root, i, true
		}
		if parent, idx, ok := FindParent(child, id); ok {
			return parent, idx, true
		}
	}
	return nil, -1, false
}

// FindPath returns the chain of nodes from root to the node with the given id,
// inclusive at both ends.
func FindPath(root *schemas.ComponentNode, id string) ([]*schemas.ComponentNode, bool) {
	var path []*schemas.ComponentNode
	var visit func(n *schemas.ComponentNode) bool
	visit = func(n *schemas.ComponentNode) bool {
		if n == nil {
			return false
		}
		path = append(path, n)
		if n.ID == id {
			return true
		}
		for _, child := range n.Children {
			if visit(child) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if root == nil || !visit(root) {
		return nil, false
	}
	return path, true
}

// CountNodes returns the size of the subtree rooted at root.
func CountNodes(root *schemas.ComponentNode) int {
	if root == nil {
		return 0
	}
	count := 1
	for _, child := range root.Children {
		count += CountNodes(child)
	}
	return count
}

// MaxDepth returns the number of levels in the subtree. A lone root has depth 1.
func MaxDepth(root *schemas.ComponentNode) int {
	if root == nil {
		return 0
	}
	deepest := 0
	for _, child := range root.Children {
		if d := MaxDepth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Walk visits the subtree in pre-order. Returning false from fn skips the node's
// children.
func Walk(root *schemas.ComponentNode, fn func(node *schemas.ComponentNode, depth int) bool) {
	var visit func(n *schemas.ComponentNode, depth int)
	visit = func(n *schemas.ComponentNode, depth int) {
		if n == nil || !fn(n, depth) {
			return
		}
		for _, child := range n.Children {
			visit(child, depth+1)
		}
	}
	visit(root, 1)
}

// FindScreen returns the index of the screen with the given id.
func FindScreen(spec *schemas.DesignSpec, screenID string) (int, bool) {
	if spec == nil {
		return -1, false
	}
	for i, screen := range spec.Screens {
		if screen != nil && screen.ID == screenID {
			return i, true
		}
	}
	return -1, false
}

// Locate finds a node anywhere in the document and reports which screen owns it.
func Locate(spec *schemas.DesignSpec, nodeID string) (int, *schemas.ComponentNode, bool) {
	if spec == nil {
		return -1, nil, false
	}
	for i, screen := range spec.Screens {
		if screen == nil {
			continue
		}
		if node, ok := FindNode(screen.Root, nodeID); ok {
			return i, node, true
		}
	}
	return -1, nil, false
}

// CollectIDs returns every node id in the document in screen order, pre-order.
// Duplicates are kept so callers can detect them.
func CollectIDs(spec *schemas.DesignSpec) []string {
	var ids []string
	if spec == nil {
		return ids
	}
	for _, screen := range spec.Screens {
		if screen == nil {
			continue
		}
		Walk(screen.Root, func(n *schemas.ComponentNode, _ int) bool {
			ids = append(ids, n.ID)
			return true
		})
	}
	return ids
}

// -- Copies and Comparison --

// CloneNode deep-copies a subtree. Value and flex-factor pointers inside Style and
// Layout are shared; they are never written through.
func CloneNode(node *schemas.ComponentNode) *schemas.ComponentNode {
	if node == nil {
		return nil
	}
	clone := &schemas.ComponentNode{
		ID:    node.ID,
		Type:  node.Type,
		Props: CloneProps(node.Props),
	}
	if node.Style != nil {
		s := *node.Style
		clone.Style = &s
	}
	if node.Layout != nil {
		l := *node.Layout
		clone.Layout = &l
	}
	if node.Children != nil {
		clone.Children = make([]*schemas.ComponentNode, len(node.Children))
		for i, child := range node.Children {
			clone.Children[i] = CloneNode(child)
		}
	}
	return clone
}

// CloneProps deep-copies a prop bag, including nested maps and slices.
func CloneProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = CloneAny(v)
	}
	return out
}

// CloneAny deep-copies JSON-shaped data.
func CloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneProps(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = CloneAny(item)
		}
		return out
	default:
		return v
	}
}

// CloneSpec deep-copies an entire document.
func CloneSpec(spec *schemas.DesignSpec) *schemas.DesignSpec {
	if spec == nil {
		return nil
	}
	clone := *spec
	clone.Tokens = CloneTokens(spec.Tokens)
	if spec.Screens != nil {
		clone.Screens = make([]*schemas.Screen, len(spec.Screens))
		for i, screen := range spec.Screens {
			if screen == nil {
				continue
			}
			s := *screen
			s.Root = CloneNode(screen.Root)
			clone.Screens[i] = &s
		}
	}
	if spec.Interactions != nil {
		clone.Interactions = append([]schemas.Interaction(nil), spec.Interactions...)
	}
	return &clone
}

// CloneTokens deep-copies a token table.
func CloneTokens(t schemas.DesignTokens) schemas.DesignTokens {
	return schemas.DesignTokens{
		Colors: cloneMap(t.Colors),
		Typography: schemas.Typography{
			FontFamily: cloneMap(t.Typography.FontFamily),
			FontSize:   cloneMap(t.Typography.FontSize),
			FontWeight: cloneMap(t.Typography.FontWeight),
			LineHeight: cloneMap(t.Typography.LineHeight),
		},
		Spacing: cloneMap(t.Spacing),
		Radii:   cloneMap(t.Radii),
		Shadows: cloneMap(t.Shadows),
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// compareOptions defines structural equality: nil and empty collections are the
// same document, since neither survives JSON encoding.
var compareOptions = []cmp.Option{cmpopts.EquateEmpty()}

// Equal reports whether two documents are structurally equal.
func Equal(a, b *schemas.DesignSpec) bool {
	return cmp.Equal(a, b, compareOptions...)
}

// Diff returns a human-readable structural diff, empty when Equal.
func Diff(a, b *schemas.DesignSpec) string {
	return cmp.Diff(a, b, compareOptions...)
}

// NodesEqual reports whether two subtrees are structurally equal.
func NodesEqual(a, b *schemas.ComponentNode) bool {
	return cmp.Equal(a, b, compareOptions...)
}
