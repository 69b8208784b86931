package render

import (
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// NextLanguage returns the successor of current in supported, wrapping to the first.
// An unknown current yields the first supported language.
func NextLanguage(supported []string, current string) string {
	if len(supported) == 0 {
		return current
	}
	i := slices.Index(supported, current)
	return supported[(i+1)%len(supported)]
}

// LanguageName returns the name of code in its own language, or code itself when
// no name is known.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}
