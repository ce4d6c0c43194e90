package game

import "strings"

const (
	AnsiReset     = "\x1b[0m"
	AnsiBold      = "\x1b[1m"
	AnsiDim       = "\x1b[2m"
	AnsiItalic    = "\x1b[3m"
	AnsiUnderline = "\x1b[4m"
	AnsiCyan      = "\x1b[36m"
	AnsiYellow    = "\x1b[33m"
	AnsiGreen     = "\x1b[32m"
	AnsiMagenta   = "\x1b[35m"
)

// Style wraps text with the provided ANSI attributes.
func Style(text string, attrs ...string) string {
	if len(attrs) == 0 {
		return text
	}
	return strings.Join(attrs, "") + text + AnsiReset
}

// Ansi ensures output strings end with a reset sequence.
func Ansi(c string) string {
	if strings.Contains(c, "\x1b[") && !strings.HasSuffix(c, AnsiReset) {
		return c + AnsiReset
	}
	return c
}

// Style applies attrs only when the game was created with colour enabled.
func (g *Game) Style(text string, attrs ...string) string {
	if !g.color {
		return text
	}
	return Style(text, attrs...)
}

// HighlightItemName formats item names consistently.
func (g *Game) HighlightItemName(name string) string {
	return g.Style(name, AnsiBold, AnsiGreen)
}

// Prompt renders the standard player prompt.
func (g *Game) Prompt() string {
	return Ansi(g.Style("> ", AnsiBold, AnsiYellow))
}
