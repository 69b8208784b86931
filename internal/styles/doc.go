// Package styles scopes a component's stylesheet by renaming its class selectors to
// component-unique names.
//
// The stylesheet is parsed into a rule list with github.com/aymerick/douceur and each
// selector is tokenized with github.com/gorilla/css, so multi-line rules, compound
// selectors and nested @media blocks are handled structurally. Only class selectors
// are renamed; ids, attribute selectors, pseudo-classes and declaration values are
// left alone.
//
// Replacement names are derived from a hash of the component name and the class, so
// the same input always produces the same output:
//
//	scoped, err := styles.Scope("callout", ".box{color:red}")
//	// scoped.Classes["box"] == "box-" + styles.Suffix("callout", "box", "")
package styles
