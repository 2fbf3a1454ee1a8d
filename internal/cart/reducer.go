package cart

// Reduce applies action to state and returns the next state. It is total and
// deterministic, and never mutates state.Items; every result is refolded from
// a fresh line slice.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		return addItem(state, a)
	case RemoveItem:
		return removeItem(state, a)
	case UpdateQuantity:
		return updateQuantity(state, a)
	case ClearCart:
		return Empty()
	default:
		return state
	}
}

func addItem(state State, a AddItem) State {
	lines := make([]Line, 0, len(state.Items)+1)
	found := false
	for _, line := range state.Items {
		if line.Skin.ID == a.Skin.ID {
			line.Quantity++
			found = true
		}
		lines = append(lines, line)
	}
	if !found {
		lines = append(lines, Line{Skin: a.Skin, Quantity: 1})
	}
	return fold(lines)
}

func removeItem(state State, a RemoveItem) State {
	lines := make([]Line, 0, len(state.Items))
	for _, line := range state.Items {
		if line.Skin.ID == a.SkinID {
			continue
		}
		lines = append(lines, line)
	}
	return fold(lines)
}

func updateQuantity(state State, a UpdateQuantity) State {
	qty := max(0, a.Quantity)
	lines := make([]Line, 0, len(state.Items))
	for _, line := range state.Items {
		if line.Skin.ID == a.SkinID {
			line.Quantity = qty
		}
		if line.Quantity > 0 {
			lines = append(lines, line)
		}
	}
	return fold(lines)
}
