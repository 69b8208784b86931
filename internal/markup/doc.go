// Package markup holds the small set of golang.org/x/net/html tree operations shared
// by the component registry, the content loader and the page renderer.
//
// Every helper works on detached or attached *html.Node values without touching
// global state, so callers can compose them into pure tree rewrites.
package markup
