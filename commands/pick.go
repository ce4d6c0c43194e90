package commands

import (
	"errors"
	"fmt"
	"strings"

	"StoneChamber/internal/game"
)

const pickPrefix = "up "

var Pick = Define(Definition{
	Name:        "pick",
	Usage:       "pick up <itemName>",
	Description: "Pick up an item.",
	Order:       30,
}, func(ctx *Context) bool {
	if !strings.HasPrefix(ctx.Arg, pickPrefix) {
		ctx.Game.Send(ctx.Game.Style("Invalid command format! Use: pick up <itemName>", game.AnsiYellow))
		return false
	}
	target := ctx.Arg[len(pickPrefix):]
	_, err := ctx.Game.TakeItem(target)
	switch {
	case err == nil:
		ctx.Game.Send(fmt.Sprintf("You picked up %s.", ctx.Game.HighlightItemName(target)))
	case errors.Is(err, game.ErrItemNotFound):
		ctx.Game.Send(ctx.Game.Style(fmt.Sprintf("No item named '%s' here!", target), game.AnsiYellow))
	default:
		ctx.Game.Send(ctx.Game.Style(err.Error(), game.AnsiYellow))
	}
	return false
})
