package cart

import "github.com/angelmondragon/skinshop-backend/internal/catalog"

// Line pairs one skin with a quantity of at least 1.
type Line struct {
	Skin     catalog.Skin `json:"skin"`
	Quantity int          `json:"quantity"`
}

// Subtotal is price × quantity for the line.
func (l Line) Subtotal() int {
	return l.Skin.Price * l.Quantity
}

// State is the cart snapshot. Total and ItemCount are always the fold of
// Items and are never set independently.
type State struct {
	Items     []Line `json:"items"`
	Total     int    `json:"total"`
	ItemCount int    `json:"item_count"`
}

// Empty returns the initial cart state.
func Empty() State {
	return State{Items: []Line{}}
}

// IsEmpty reports whether the cart holds no lines.
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// Line returns the line for skinID, if present.
func (s State) Line(skinID string) (Line, bool) {
	for _, line := range s.Items {
		if line.Skin.ID == skinID {
			return line, true
		}
	}
	return Line{}, false
}

// Clone returns a copy that shares no backing array with s.
func (s State) Clone() State {
	items := make([]Line, len(s.Items))
	copy(items, s.Items)
	return State{Items: items, Total: s.Total, ItemCount: s.ItemCount}
}

func fold(lines []Line) State {
	state := State{Items: lines}
	for _, line := range lines {
		state.Total += line.Subtotal()
		state.ItemCount += line.Quantity
	}
	return state
}
