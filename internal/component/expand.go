package component

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/markup"
)

const componentTag = "component"

// Expand returns a copy of root in which every <component name="..."> element has
// been replaced by its rendering, transitively. root is not modified.
func (r *Registry) Expand(root *html.Node) (*html.Node, error) {
	out := markup.Clone(root)
	if err := r.expandChildren(out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Registry) expandChildren(parent *html.Node, stack []string) error {
	for c := parent.FirstChild; c != nil; {
		next := c.NextSibling
		if err := r.expandNode(c, stack); err != nil {
			return err
		}
		c = next
	}
	return nil
}

func (r *Registry) expandNode(n *html.Node, stack []string) error {
	if n.Type != html.ElementNode || n.Data != componentTag {
		return r.expandChildren(n, stack)
	}

	name := strings.TrimSpace(markup.Attr(n, "name"))
	if name == "" {
		return errors.ResolutionError("component element without name").Build()
	}
	if slices.Contains(stack, name) {
		return errors.ResolutionError("component cycle").
			WithContext("component", name).
			WithContext("cycle", strings.Join(append(slices.Clone(stack), name), " -> ")).
			Build()
	}

	// Slot content belongs to the caller, so it is expanded in the caller's scope.
	if err := r.expandChildren(n, stack); err != nil {
		return err
	}

	rendered, err := r.Render(name, markup.Children(n))
	if err != nil {
		return err
	}

	holder := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	markup.AppendAll(holder, rendered)
	inner := append(slices.Clone(stack), name)
	if err := r.expandChildren(holder, inner); err != nil {
		return err
	}

	markup.ReplaceWith(n, markup.Children(holder))
	return nil
}
