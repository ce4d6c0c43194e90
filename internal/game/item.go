package game

import "github.com/google/uuid"

// Item represents an object that can lie in a room or be carried by a player.
// Items are immutable once created.
type Item struct {
	id   uuid.UUID
	name string
}

// NewItem creates an item with a fresh instance identity.
func NewItem(name string) Item {
	return Item{id: uuid.New(), name: name}
}

// ID returns the instance identity of the item. Two items sharing a name are
// still distinct instances.
func (i Item) ID() uuid.UUID {
	return i.id
}

// Name returns the display name of the item.
func (i Item) Name() string {
	return i.name
}

// Matches reports whether the item's name equals target ignoring case.
func (i Item) Matches(target string) bool {
	return equalFold(i.name, target)
}

// ItemNames returns the display names of items in order.
func ItemNames(items []Item) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.name
	}
	return names
}
