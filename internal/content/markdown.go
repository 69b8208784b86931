package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docweaver/internal/markup"
)

const (
	formatAttr     = "format"
	formatMarkdown = "markdown"
)

// Raw HTML is kept so <component> references inside Markdown survive conversion.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

func isMarkdownSection(n *html.Node) bool {
	return strings.EqualFold(strings.TrimSpace(markup.Attr(n, formatAttr)), formatMarkdown)
}

// convertMarkdown replaces the children of a Markdown section with the rendered HTML.
func convertMarkdown(section *html.Node) error {
	raw, err := markup.RawSource(section)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(markup.Dedent(raw)), &buf); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	nodes, err := markup.ParseFragment(buf.String())
	if err != nil {
		return err
	}
	markup.RemoveChildren(section)
	markup.AppendAll(section, nodes)
	markup.RemoveAttr(section, formatAttr)
	return nil
}
