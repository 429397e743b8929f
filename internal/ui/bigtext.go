package ui

import "strings"

const bigTextRows = 5

// glyphs is a 5-row block font covering everything a formatted temperature
// can contain apart from NaN and Inf.
var glyphs = map[rune][bigTextRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	'-': {"   ", "   ", "███", "   ", "   "},
	'+': {"   ", " █ ", "███", " █ ", "   "},
	'.': {" ", " ", " ", " ", "█"},
}

// bigText renders s in the block font. It reports false when s holds a
// character the font lacks, in which case the caller draws plain text.
func bigText(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	var rows [bigTextRows]strings.Builder
	for i, r := range s {
		g, ok := glyphs[r]
		if !ok {
			return "", false
		}
		for row := range rows {
			if i > 0 {
				rows[row].WriteByte(' ')
			}
			rows[row].WriteString(g[row])
		}
	}
	lines := make([]string, bigTextRows)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n"), true
}
