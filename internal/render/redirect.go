package render

import "html"

// RedirectHTML returns a page that immediately navigates to target.
func RedirectHTML(target string) string {
	return `<html><head><meta http-equiv="refresh" content="0; url=` + html.EscapeString(target) + `" /></head></html>`
}
