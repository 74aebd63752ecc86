package domain

// Inventory lists the items one adopter brings to a single decision run.
type Inventory []string

// ContainsAll reports whether every item is present, ignoring order.
func (inv Inventory) ContainsAll(items []string) bool {
	held := make(map[string]struct{}, len(inv))
	for _, item := range inv {
		held[item] = struct{}{}
	}
	for _, item := range items {
		if _, ok := held[item]; !ok {
			return false
		}
	}
	return true
}

// ContainsInOrder reports whether items appear as a subsequence of the inventory.
// Unrelated items may sit between them.
func (inv Inventory) ContainsInOrder(items []string) bool {
	cursor := 0
	for _, item := range items {
		found := false
		for cursor < len(inv) {
			current := inv[cursor]
			cursor++
			if current == item {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
