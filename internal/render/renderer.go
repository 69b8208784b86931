package render

import (
	"context"
	"html"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/docweaver/internal/component"
	"git.home.luguber.info/inful/docweaver/internal/config"
	"git.home.luguber.info/inful/docweaver/internal/content"
	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/icon"
	"git.home.luguber.info/inful/docweaver/internal/logfields"
	"git.home.luguber.info/inful/docweaver/internal/nav"
)

// Placeholders recognised in the page template.
const (
	PlaceholderSections     = "%app.sections%"
	PlaceholderHistory      = "%app.history%"
	PlaceholderNavButtons   = "%app.nav_buttons%"
	PlaceholderContent      = "%app.content%"
	PlaceholderLang         = "%app.lang%"
	PlaceholderNextLang     = "%app.next_lang%"
	PlaceholderLangName     = "%app.lang_name%"
	PlaceholderNextLangName = "%app.next_lang_name%"
	PlaceholderTitle        = "%head.title%"
	PlaceholderHeadOther    = "%head.other%"
	PlaceholderIcon         = "%head.icon%"
)

const indexFile = "index.html"

// Renderer renders every page of a tree. Create it with NewRenderer.
type Renderer struct {
	Site       *config.Site
	Tree       *content.Tree
	Stylesheet component.Stylesheet
	Template   *Template
	// Concurrency bounds parallel page rendering; <= 0 means unbounded.
	Concurrency int
	Logger      *slog.Logger

	buttons   string
	headStyle string
	siteIcon  string
	startCat  string
	startPage string
}

// NewRenderer validates the start page against tree and precomputes the
// language-independent parts of every page.
func NewRenderer(site *config.Site, tree *content.Tree, sheet component.Stylesheet, tmpl *Template) (*Renderer, error) {
	r := &Renderer{
		Site:       site,
		Tree:       tree,
		Stylesheet: sheet,
		Template:   tmpl,
		Logger:     slog.Default(),
		headStyle:  sheet.HeadHTML(),
	}
	if icon.IsAsset(site.Icon) {
		r.siteIcon = icon.AssetPath(site.Icon)
	}

	buttons, err := ButtonsHTML(site.Links)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "render link buttons").Build()
	}
	r.buttons = buttons

	r.startCat, r.startPage = site.StartPageParts()
	if r.startCat == "" {
		if len(tree.Categories) == 0 {
			return nil, errors.ConfigError("no categories found").Build()
		}
		first := tree.Categories[0]
		r.startCat, r.startPage = first.ID, first.FirstPage().ID
	}
	if tree.Page(r.startCat, r.startPage) == nil {
		return nil, errors.ConfigError("start-page does not exist").
			WithContext("start_page", r.startCat+"/"+r.startPage).
			Build()
	}
	return r, nil
}

// Pages enumerates every (language, category, page) target in output order.
func (r *Renderer) Pages() []nav.Target {
	targets := make([]nav.Target, 0, len(r.Site.Languages.Supported)*r.Tree.PageCount())
	for _, lang := range r.Site.Languages.Supported {
		for _, cat := range r.Tree.Categories {
			for _, page := range cat.Pages {
				targets = append(targets, nav.Target{Language: lang, Category: cat.ID, Page: page.ID})
			}
		}
	}
	return targets
}

// RenderPage renders one page.
func (r *Renderer) RenderPage(target nav.Target) (string, error) {
	cat := r.Tree.Category(target.Category)
	if cat == nil {
		return "", errors.ResolutionError("unknown category").
			WithContext("category", target.Category).
			Build()
	}
	page := cat.Page(target.Page)
	if page == nil {
		return "", errors.ResolutionError("unknown page").
			WithContext("category", target.Category).
			WithContext("page", target.Page).
			Build()
	}

	def := r.Tree.DefaultLanguage
	title, err := page.Title(target.Language, def)
	if err != nil {
		return "", err
	}
	if r.Site.TitleWithCategory {
		name, err := cat.DisplayName(target.Language, def)
		if err != nil {
			return "", err
		}
		title = name + " - " + title
	}

	sections, err := nav.BuildSidebar(r.Tree, target)
	if err != nil {
		return "", err
	}
	sidebar, err := nav.RenderSidebar(sections)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryInternal, "render sidebar").Build()
	}
	history, err := nav.RenderBreadcrumb(nav.BuildBreadcrumb(target))
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryInternal, "render breadcrumb").Build()
	}

	next := NextLanguage(r.Site.Languages.Supported, target.Language)
	replacer := strings.NewReplacer(
		PlaceholderSections, sidebar,
		PlaceholderHistory, history,
		PlaceholderNavButtons, r.buttons,
		PlaceholderContent, page.Body(target.Language),
		PlaceholderLang, html.EscapeString(target.Language),
		PlaceholderNextLang, html.EscapeString(next),
		PlaceholderLangName, html.EscapeString(LanguageName(target.Language)),
		PlaceholderNextLangName, html.EscapeString(LanguageName(next)),
		PlaceholderTitle, html.EscapeString(title),
		PlaceholderHeadOther, r.headStyle,
		PlaceholderIcon, html.EscapeString(r.siteIcon),
	)
	return replacer.Replace(r.Template.Page), nil
}

// OutputFile returns the output path of target.
func OutputFile(target nav.Target) string {
	return path.Join(target.Language, target.Category, target.Page, indexFile)
}

// RenderAll renders every page and redirect stub into w. The first failure cancels
// the remaining work.
func (r *Renderer) RenderAll(ctx context.Context, w Writer) error {
	g, gctx := errgroup.WithContext(ctx)
	if r.Concurrency > 0 {
		g.SetLimit(r.Concurrency)
	}

	for _, target := range r.Pages() {
		target := target
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := r.RenderPage(target)
			if err != nil {
				return withTarget(err, target)
			}
			if err := w.WriteFile(OutputFile(target), []byte(out)); err != nil {
				return err
			}
			r.logger().Debug("Rendered page",
				logfields.Language(target.Language),
				logfields.Category(target.Category),
				logfields.Page(target.Page))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for rel, dest := range r.Redirects() {
		if err := w.WriteFile(rel, []byte(RedirectHTML(dest))); err != nil {
			return err
		}
	}
	return nil
}

// Redirects maps each redirect stub path to its destination URL path.
func (r *Renderer) Redirects() map[string]string {
	out := map[string]string{
		indexFile: nav.PagePath(r.Tree.DefaultLanguage, r.startCat, r.startPage),
	}
	for _, lang := range r.Site.Languages.Supported {
		out[path.Join(lang, indexFile)] = nav.PagePath(lang, r.startCat, r.startPage)
		for _, cat := range r.Tree.Categories {
			out[path.Join(lang, cat.ID, indexFile)] = nav.PagePath(lang, cat.ID, cat.FirstPage().ID)
		}
	}
	return out
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func withTarget(err error, target nav.Target) error {
	ce, ok := errors.AsClassified(err)
	if !ok {
		return err
	}
	return ce.WithContext("language", target.Language).
		WithContext("category", target.Category).
		WithContext("page", target.Page)
}
