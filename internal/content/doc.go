// Package content loads the documentation tree: docs/<category>/category.yml plus
// one HTML file per page.
//
// Every page is parsed, its Markdown sections are converted, its <component>
// references are expanded through the component registry and its per-language
// <section> bodies and <title> texts are extracted. The resulting Tree is read-only.
package content
