package state

// Item is one rendered entry of a menu level. Label is already translated
// and Link already resolved for the active locale.
type Item struct {
	ID      string
	Label   string
	Link    string
	Branch  bool
	Current bool
}

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
