// Package render turns the content tree into output pages.
//
// A page is produced by substituting the placeholders of the page template
// (%app.content%, %app.sections%, %head.title%, ...) in a single pass, so text
// inserted for one placeholder is never scanned for another. Rendering is a pure
// function of the tree, the site configuration and the frozen component
// stylesheet; pages are rendered concurrently.
package render
