package game

import "golang.org/x/text/cases"

// equalFold compares two names using full Unicode case folding. Unlike the
// prefix matching used for player-facing lookups elsewhere, item pickup
// requires the whole name to match.
func equalFold(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

// firstMatch returns the index of the first item whose name folds to target,
// or -1 when none does. Earlier items win when names repeat.
func firstMatch(items []Item, target string) int {
	fold := cases.Fold()
	normalized := fold.String(target)
	for i, item := range items {
		if fold.String(item.name) == normalized {
			return i
		}
	}
	return -1
}
