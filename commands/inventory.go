package commands

var Inventory = Define(Definition{
	Name:        "inventory",
	Usage:       "inventory",
	Description: "List items in your inventory.",
	Order:       40,
}, func(ctx *Context) bool {
	items := ctx.Game.Player().Inventory()
	if len(items) == 0 {
		ctx.Game.Send("Your inventory is empty.")
		return false
	}
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, "You are carrying:")
	for _, item := range items {
		lines = append(lines, "- "+ctx.Game.HighlightItemName(item.Name()))
	}
	ctx.Game.Send(lines...)
	return false
})
