package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Label turns a stored enum value like "deep_focus" or "pdf" into a display
// label: underscores become spaces and each word is title-cased. Empty input
// stays empty.
func Label(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "_", " ")
	return titleCaser.String(value)
}

// UpperLabel renders short type codes like "pdf" or "ppt" in upper case for
// table columns.
func UpperLabel(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
