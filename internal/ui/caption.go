package ui

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caption turns a met.no symbol code into words: "clearsky_day" becomes
// "Clearsky Day".
func caption(iconID string) string {
	words := strings.FieldsFunc(iconID, func(r rune) bool {
		return r == '_' || r == '-'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
