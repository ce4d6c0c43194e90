package game

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	welcomeMessage  = "Welcome to the MUD game! Type 'help' for a list of commands."
	farewellMessage = "Thanks for playing!"
)

// DispatchFunc executes a single non-empty command line against the game.
// Returning true indicates the session should end.
type DispatchFunc func(g *Game, line string) bool

// Run drives the command loop, reading one line at a time from in until the
// game is stopped or input ends. The farewell line is always written last.
func Run(g *Game, in io.Reader, dispatch DispatchFunc) error {
	reader := bufio.NewReader(in)

	g.Send(g.Style(welcomeMessage, AnsiMagenta, AnsiBold))
	g.logger.Info("session started")

	var readErr error
	for g.running && g.writeErr == nil {
		g.write(g.Prompt())
		raw, err := reader.ReadString('\n')
		if err != nil && raw == "" {
			if !errors.Is(err, io.EOF) {
				readErr = err
				g.logger.Error("read failed", "error", err)
			}
			g.Stop()
			break
		}

		line := NormalizeInput(raw)
		if line != "" {
			g.logger.Debug("command received", "line", line)
			if quit := dispatch(g, line); quit {
				g.Stop()
			}
		}

		if err != nil {
			// The final unterminated line has been handled; nothing follows it.
			if !errors.Is(err, io.EOF) {
				readErr = err
				g.logger.Error("read failed", "error", err)
			}
			g.Stop()
		}
	}

	g.Send(farewellMessage)
	g.logger.Info("session ended")
	if readErr != nil {
		return readErr
	}
	return g.writeErr
}

// SplitCommand separates the command token from its argument at the first
// space. The token is lower-cased; the argument is returned untouched.
func SplitCommand(line string) (string, string) {
	name, arg, _ := strings.Cut(line, " ")
	return strings.ToLower(name), arg
}
