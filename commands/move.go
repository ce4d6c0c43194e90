package commands

import "StoneChamber/internal/game"

// Move accepts any direction but the world has a single room, so the player
// always stays put.
var Move = Define(Definition{
	Name:        "move",
	Usage:       "move <forward|back|left|right>",
	Description: "Move in a direction.",
	Order:       20,
}, func(ctx *Context) bool {
	ctx.Game.Logger().Debug("movement refused", "direction", ctx.Arg)
	ctx.Game.Send(ctx.Game.Style("You can't move in this version yet!", game.AnsiYellow))
	return false
})
