package commands

import (
	"fmt"
	"strings"

	"StoneChamber/internal/game"
)

var Help = Define(Definition{
	Name:        "help",
	Usage:       "help",
	Description: "Show this menu.",
	Order:       50,
}, func(ctx *Context) bool {
	ctx.Game.Send(helpLines(ctx.Game, "Available commands:", All())...)
	return false
})

func helpLines(g *game.Game, title string, commands []*Command) []string {
	lines := make([]string, 0, len(commands)+1)
	lines = append(lines, g.Style(title, game.AnsiBold, game.AnsiUnderline))
	for _, cmd := range commands {
		usage := cmd.Usage
		if strings.TrimSpace(usage) == "" {
			usage = cmd.Name
		}
		lines = append(lines, fmt.Sprintf("%s - %s", usage, cmd.Description))
	}
	return lines
}
