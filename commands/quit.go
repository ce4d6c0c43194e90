package commands

var Quit = Define(Definition{
	Name:        "quit",
	Aliases:     []string{"exit"},
	Usage:       "quit/exit",
	Description: "End the game.",
	Order:       60,
}, func(ctx *Context) bool {
	ctx.Game.Stop()
	return true
})
