package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseDocument parses a full HTML document.
func ParseDocument(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

// ParseFragment parses src as if it appeared inside <body>. The returned nodes are detached.
func ParseFragment(src string) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(src), bodyContext())
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	return nodes, nil
}

func bodyContext() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
}

// RenderNodes serializes nodes in order.
func RenderNodes(nodes []*html.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("render %s: %w", describe(n), err)
		}
	}
	return b.String(), nil
}

// InnerHTML serializes the children of n.
func InnerHTML(n *html.Node) (string, error) {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("render %s: %w", describe(c), err)
		}
	}
	return b.String(), nil
}

// RawSource serializes the children of n with text nodes written verbatim instead of
// escaped. It recovers authored text (for example Markdown) that the HTML parser
// has already decoded.
func RawSource(n *html.Node) (string, error) {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			continue
		}
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("render %s: %w", describe(c), err)
		}
	}
	return b.String(), nil
}

func describe(n *html.Node) string {
	if n.Type == html.ElementNode {
		return "<" + n.Data + ">"
	}
	return "node"
}
