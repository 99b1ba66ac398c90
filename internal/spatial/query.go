// internal/spatial/query.go
package spatial

import "github.com/xkilldash9x/mockup-cli/api/schemas"

// Contains reports whether (x, y) lies in b. All four edges are inclusive.
func Contains(b schemas.Bounds, x, y float64) bool {
	return x >= b.X && x <= b.Right() && y >= b.Y && y <= b.Bottom()
}

// HitTest returns the id of the topmost node under (x, y). Children are
// painted after their parent and later siblings after earlier ones, so the
// search visits children last-to-first before testing the node itself.
// Nodes missing from bounds never match, but their children still can.
func HitTest(root *schemas.ComponentNode, bounds schemas.BoundsMap, x, y float64) (string, bool) {
	if root == nil {
		return "", false
	}
	for i := len(root.Children) - 1; i >= 0; i-- {
		if id, ok := HitTest(root.Children[i], bounds, x, y); ok {
			return id, true
		}
	}
	if b, ok := bounds[root.ID]; ok && Contains(b, x, y) {
		return root.ID, true
	}
	return "", false
}

// HitTestAll returns every node whose bounds contain (x, y), root to leaf and
// first to last sibling.
func HitTestAll(root *schemas.ComponentNode, bounds schemas.BoundsMap, x, y float64) []string {
	var hits []string
	var visit func(n *schemas.ComponentNode)
	visit = func(n *schemas.ComponentNode) {
		if n == nil {
			return
		}
		if b, ok := bounds[n.ID]; ok && Contains(b, x, y) {
			hits = append(hits, n.ID)
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(root)
	return hits
}

// Breadcrumb returns the nodes from root down to the node with the given id.
// The path stack is popped on backtrack, so only the chain leading to the
// match survives.
func Breadcrumb(root *schemas.ComponentNode, id string) ([]*schemas.ComponentNode, bool) {
	var path []*schemas.ComponentNode
	var search func(n *schemas.ComponentNode) bool
	search = func(n *schemas.ComponentNode) bool {
		if n == nil {
			return false
		}
		path = append(path, n)
		if n.ID == id {
			return true
		}
		for _, c := range n.Children {
			if search(c) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !search(root) {
		return nil, false
	}
	return path, true
}

// BoardAt returns the board under (x, y). Boards are flat; the one placed last
// wins where they overlap.
func BoardAt(boards []schemas.Board, x, y float64) (schemas.Board, bool) {
	for i := len(boards) - 1; i >= 0; i-- {
		if Contains(boards[i].Bounds(), x, y) {
			return boards[i], true
		}
	}
	return schemas.Board{}, false
}
