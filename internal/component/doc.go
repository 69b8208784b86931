// Package component loads reusable HTML components and expands <component> references.
//
// A component is a file components/<name>.html holding a template fragment with at
// most one <slot> marker and at most one <style> block. Rendering a component
// re-parses its template, renames the template's classes to the component's scoped
// names, splices the caller's slot content and drops the style block. The scoped
// stylesheet of each component is computed once, on first render, and collected into
// a Stylesheet that is read after every page has been expanded.
package component
