package game

import "strings"

// Room is a location holding descriptive text and the items lying in it.
type Room struct {
	Name        string
	Description string
	items       []Item
}

// NewRoom creates a room populated with the provided items in order.
func NewRoom(name, description string, items ...Item) *Room {
	r := &Room{Name: name, Description: description}
	for _, item := range items {
		r.AddItem(item)
	}
	return r
}

// AddItem places an item in the room after any existing items.
func (r *Room) AddItem(item Item) {
	r.items = append(r.items, item)
}

// RemoveItem removes the specific item instance from the room. It reports
// whether the instance was present.
func (r *Room) RemoveItem(item Item) bool {
	for i, existing := range r.items {
		if existing.id == item.id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// GetItem returns the first item whose name matches ignoring case.
func (r *Room) GetItem(name string) (Item, bool) {
	idx := firstMatch(r.items, name)
	if idx < 0 {
		return Item{}, false
	}
	return r.items[idx], true
}

// Items returns a copy of the items present in the room.
func (r *Room) Items() []Item {
	if len(r.items) == 0 {
		return nil
	}
	items := make([]Item, len(r.items))
	copy(items, r.items)
	return items
}

// Describe renders the room heading followed by the items lying here. Every
// item name is followed by ", ", including the last one.
func (r *Room) Describe() string {
	var builder strings.Builder
	builder.WriteString(r.Name)
	builder.WriteString(": ")
	builder.WriteString(r.Description)
	builder.WriteString("\nItems here: ")
	if len(r.items) == 0 {
		builder.WriteString("none")
		return builder.String()
	}
	for _, item := range r.items {
		builder.WriteString(item.name)
		builder.WriteString(", ")
	}
	return builder.String()
}
