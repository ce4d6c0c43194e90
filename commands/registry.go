package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"StoneChamber/internal/game"
)

// Definition describes a single command's metadata.
type Definition struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	// Order positions the command in the help listing.
	Order int
}

// Handler executes a command.
// Returning true indicates the session should terminate.
type Handler func(*Context) bool

// Command couples metadata with the executable handler.
type Command struct {
	Definition
	Handler Handler
}

// Context provides the runtime data available to a command handler.
type Context struct {
	Game    *game.Game
	Raw     string
	Arg     string
	Input   string
	Command *Command
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Command)
	ordered    []*Command
)

// Define registers a new command using the provided definition and handler.
// It panics when metadata is incomplete or duplicates an existing command.
func Define(def Definition, handler Handler) *Command {
	if handler == nil {
		panic("commands: handler must not be nil")
	}
	if strings.TrimSpace(def.Name) == "" {
		panic("commands: command must have a name")
	}

	cmd := &Command{Definition: def, Handler: handler}

	registryMu.Lock()
	defer registryMu.Unlock()

	registerName := func(name string) {
		key := strings.ToLower(name)
		if _, exists := registry[key]; exists {
			panic(fmt.Sprintf("commands: duplicate registration for %q", name))
		}
		registry[key] = cmd
	}

	registerName(def.Name)
	for _, alias := range def.Aliases {
		if strings.TrimSpace(alias) == "" {
			continue
		}
		registerName(alias)
	}

	ordered = append(ordered, cmd)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Order != ordered[j].Order {
			return ordered[i].Order < ordered[j].Order
		}
		return ordered[i].Name < ordered[j].Name
	})

	return cmd
}

// All returns the registered commands in help order.
func All() []*Command {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]*Command, len(ordered))
	copy(out, ordered)
	return out
}

// Find looks up a command by name or alias.
func Find(name string) (*Command, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	cmd, ok := registry[strings.ToLower(name)]
	return cmd, ok
}

// Dispatch parses the input line, looks up the command, and executes it.
// The line is expected to be trimmed; blank lines are ignored.
func Dispatch(g *game.Game, line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	input, arg := game.SplitCommand(line)

	cmd, ok := Find(input)
	if !ok {
		g.Logger().Debug("unknown command", "command", input)
		g.Send("Unknown command. Type 'help' for a list of commands.")
		return false
	}

	ctx := &Context{
		Game:    g,
		Raw:     line,
		Arg:     arg,
		Input:   input,
		Command: cmd,
	}
	return cmd.Handler(ctx)
}
