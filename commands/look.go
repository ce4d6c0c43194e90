package commands

var Look = Define(Definition{
	Name:        "look",
	Usage:       "look",
	Description: "Describe the current room.",
	Order:       10,
}, func(ctx *Context) bool {
	ctx.Game.Send(ctx.Game.Player().Room().Describe())
	return false
})
