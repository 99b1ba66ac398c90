package schemas

// Bounds is a node's border box in absolute screen pixels.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (b Bounds) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b Bounds) Bottom() float64 { return b.Y + b.Height }

// BoundsMap maps a node id to its computed bounds for one screen. It is derived
// data: always regenerated in full, never patched.
type BoundsMap map[string]Bounds

// Board is a screen instance placed on the infinite canvas.
type Board struct {
	ID       string  `json:"id"`
	ScreenID string  `json:"screenId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Bounds returns the board's rectangle.
func (b Board) Bounds() Bounds {
	return Bounds{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// SelectionState is the selection and hover information handed to the renderer.
type SelectionState struct {
	SelectedNodeIDs []string `json:"selectedNodeIds"`
	HoveredNodeID   *string  `json:"hoveredNodeId"`
}
