package component

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/markup"
	"git.home.luguber.info/inful/docweaver/internal/styles"
)

const (
	slotTag  = "slot"
	styleTag = "style"
)

// Render expands component name with slot as caller content and returns the
// resulting top-level nodes. Slot nodes are moved into the result.
//
// Only template-owned nodes get their classes rewritten; slot content keeps the
// caller's class names. When slot is blank the slot marker's own children are kept.
func (r *Registry) Render(name string, slot []*html.Node) ([]*html.Node, error) {
	def, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	r.scope(def)
	if def.err != nil {
		return nil, def.err
	}

	nodes, err := markup.ParseFragment(def.source)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryResolution, "parse component template").
			WithContext("component", name).
			Build()
	}

	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	markup.AppendAll(root, nodes)

	for _, s := range markup.FindAll(root, styleTag) {
		markup.Remove(s)
	}
	if len(def.scoped.Classes) > 0 {
		rewriteClasses(root, def.scoped.Classes)
	}

	if marker := markup.FindFirst(root, slotTag); marker != nil {
		if isBlank(slot) {
			markup.ReplaceWith(marker, markup.Children(marker))
		} else {
			markup.ReplaceWith(marker, slot)
		}
	}

	return markup.Children(root), nil
}

func rewriteClasses(root *html.Node, mapping map[string]string) {
	markup.Walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || !markup.HasAttr(n, "class") {
			return
		}
		markup.SetAttr(n, "class", styles.RewriteClassAttr(markup.Attr(n, "class"), mapping))
	})
}

// isBlank reports whether nodes carry no content beyond whitespace and comments.
func isBlank(nodes []*html.Node) bool {
	for _, n := range nodes {
		switch n.Type {
		case html.CommentNode:
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// extractStyle returns the concatenated text of every <style> element in source.
func extractStyle(source string) (string, error) {
	nodes, err := markup.ParseFragment(source)
	if err != nil {
		return "", err
	}
	var parts []string
	for _, n := range nodes {
		for _, s := range markup.FindAll(n, styleTag) {
			if text := markup.TextContent(s); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, "\n"), nil
}
