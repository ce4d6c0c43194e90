package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

const (
	// StartRoomName is the title of the room every new game begins in.
	StartRoomName = "A small stone chamber"
	// StartRoomDescription describes the starting room.
	StartRoomDescription = "A dimly lit room with stone walls."
)

// StartItems lists the names of the items seeded into the starting room.
var StartItems = []string{"sword", "shield"}

// ErrItemNotFound indicates a requested item could not be located.
var ErrItemNotFound = errors.New("item not found")

// Game holds the state of a single play session: the player, the room they
// stand in and whether the command loop is still running.
type Game struct {
	id       uuid.UUID
	player   *Player
	running  bool
	out      io.Writer
	logger   *slog.Logger
	color    bool
	writeErr error
}

// Option configures a Game.
type Option func(*Game)

// WithOutput directs game text to w. Output is discarded by default.
func WithOutput(w io.Writer) Option {
	return func(g *Game) {
		if w != nil {
			g.out = w
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithColor enables ANSI styling of game text.
func WithColor(enabled bool) Option {
	return func(g *Game) {
		g.color = enabled
	}
}

// WithStartRoom places the player in room instead of the default chamber.
func WithStartRoom(room *Room) Option {
	return func(g *Game) {
		if room != nil {
			g.player = NewPlayer(room)
		}
	}
}

// NewGame creates a running game. Unless WithStartRoom is given the player
// starts in the stone chamber holding a sword and a shield.
func NewGame(opts ...Option) *Game {
	g := &Game{
		id:      uuid.New(),
		running: true,
		out:     io.Discard,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.player == nil {
		g.player = NewPlayer(DefaultStartRoom())
	}
	g.logger = g.logger.With("session", g.id.String())
	g.logger.Debug("game created", "room", g.player.Room().Name, "items", len(g.player.Room().Items()))
	return g
}

// DefaultStartRoom builds the stone chamber with its seed items.
func DefaultStartRoom() *Room {
	items := make([]Item, len(StartItems))
	for i, name := range StartItems {
		items[i] = NewItem(name)
	}
	return NewRoom(StartRoomName, StartRoomDescription, items...)
}

// ID returns the session identifier used in log records.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Player returns the player of this game.
func (g *Game) Player() *Player {
	return g.player
}

// Logger returns the session logger.
func (g *Game) Logger() *slog.Logger {
	return g.logger
}

// Running reports whether the command loop should keep reading input.
func (g *Game) Running() bool {
	return g.running
}

// Stop ends the command loop after the current command.
func (g *Game) Stop() {
	if !g.running {
		return
	}
	g.running = false
	g.logger.Debug("game stopped")
}

// TakeItem moves the first item in the player's room whose name matches
// target into the player's inventory.
func (g *Game) TakeItem(target string) (Item, error) {
	room := g.player.Room()
	item, ok := room.GetItem(target)
	if !ok {
		return Item{}, ErrItemNotFound
	}
	if !room.RemoveItem(item) {
		return Item{}, fmt.Errorf("remove %q from %s: %w", item.Name(), room.Name, ErrItemNotFound)
	}
	g.player.AddItem(item)
	g.logger.Debug("item picked up", "item", item.Name(), "item_id", item.ID().String())
	return item, nil
}

// Send writes each line followed by a newline.
func (g *Game) Send(lines ...string) {
	for _, line := range lines {
		if g.color {
			line = Ansi(line)
		}
		g.write(line + "\n")
	}
}

// write emits raw text. The first write failure is kept and reported by Run.
func (g *Game) write(text string) {
	if g.writeErr != nil {
		return
	}
	if _, err := io.WriteString(g.out, text); err != nil {
		g.writeErr = err
		g.logger.Error("write failed", "error", err)
	}
}
