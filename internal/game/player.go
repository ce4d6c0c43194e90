package game

// Player represents the adventurer exploring the world.
type Player struct {
	room      *Room
	inventory []Item
}

// NewPlayer creates a player standing in room with nothing carried.
func NewPlayer(room *Room) *Player {
	return &Player{room: room}
}

// Room returns the room the player currently occupies.
func (p *Player) Room() *Room {
	return p.room
}

// AddItem appends an item to the player's inventory.
func (p *Player) AddItem(item Item) {
	p.inventory = append(p.inventory, item)
}

// Inventory returns a copy of the carried items in pickup order.
func (p *Player) Inventory() []Item {
	if len(p.inventory) == 0 {
		return nil
	}
	items := make([]Item, len(p.inventory))
	copy(items, p.inventory)
	return items
}
