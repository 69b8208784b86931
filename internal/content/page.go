package content

import (
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docweaver/internal/component"
	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/logfields"
	"git.home.luguber.info/inful/docweaver/internal/markup"
)

const (
	sectionTag    = "section"
	titleTag      = "title"
	componentTag  = "component"
	langAttr      = "lang"
	sectionMarker = "data-docweaver-section"
)

type parseOptions struct {
	strict bool
	logger *slog.Logger
}

// ParseOption configures ParsePage.
type ParseOption func(*parseOptions)

// WithStrict turns duplicate section or title languages into a ConfigError instead
// of a warning.
func WithStrict(strict bool) ParseOption {
	return func(o *parseOptions) { o.strict = strict }
}

// WithLogger sets the logger used for warnings.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(o *parseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ParsePage parses one page, expands its components and extracts the localized
// titles and section bodies. Sections and titles without a lang attribute belong to
// defaultLang. When a language repeats, the last occurrence wins.
//
// Only top-level <section> elements authored in the page become bodies. Sections
// nested in another section or in a <component> element, and sections produced by
// component templates, are part of the enclosing body.
func ParsePage(id string, r io.Reader, registry *component.Registry, defaultLang string, opts ...ParseOption) (*Page, error) {
	o := parseOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	doc, err := markup.ParseDocument(r)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "malformed page").
			WithContext("page", id).
			Build()
	}

	// Page sections are the ones authored directly in the page; sections produced by
	// components are part of a body, not bodies themselves.
	for _, sec := range markup.FindAll(doc, sectionTag) {
		if markup.HasAncestor(sec, sectionTag, componentTag) {
			continue
		}
		if isMarkdownSection(sec) {
			if err := convertMarkdown(sec); err != nil {
				return nil, errors.WrapError(err, errors.CategoryConfig, "invalid markdown section").
					WithContext("page", id).
					Build()
			}
		}
		markup.SetAttr(sec, sectionMarker, "")
	}

	expanded, err := registry.Expand(doc)
	if err != nil {
		return nil, withContext(err, "page", id)
	}

	page := &Page{ID: id, Titles: Localized{}, Bodies: map[string]string{}}

	for _, n := range markup.FindAll(expanded, titleTag) {
		lang := languageOf(n, defaultLang)
		if err := o.duplicate(page.Titles, id, "title", lang); err != nil {
			return nil, err
		}
		page.Titles[lang] = markup.TextContent(n)
	}

	var sections []*html.Node
	markup.Walk(expanded, func(n *html.Node) {
		if n.Type == html.ElementNode && markup.HasAttr(n, sectionMarker) {
			sections = append(sections, n)
		}
	})
	for _, sec := range sections {
		lang := languageOf(sec, defaultLang)
		if err := o.duplicate(page.Bodies, id, "section", lang); err != nil {
			return nil, err
		}
		body, err := markup.InnerHTML(sec)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryInternal, "render section").
				WithContext("page", id).
				Build()
		}
		page.Bodies[lang] = body
	}

	return page, nil
}

func languageOf(n *html.Node, defaultLang string) string {
	if lang := strings.TrimSpace(markup.Attr(n, langAttr)); lang != "" {
		return lang
	}
	return defaultLang
}

func (o *parseOptions) duplicate(existing map[string]string, page, kind, lang string) error {
	if _, ok := existing[lang]; !ok {
		return nil
	}
	if o.strict {
		return errors.ConfigError("duplicate "+kind+" language").
			WithContext("page", page).
			WithContext("language", lang).
			Build()
	}
	o.logger.Warn("Duplicate "+kind+" language, last one wins",
		logfields.Page(page),
		logfields.Language(lang))
	return nil
}
