package site

import (
	"context"
	"sync/atomic"

	"git.home.luguber.info/inful/docweaver/internal/component"
	"git.home.luguber.info/inful/docweaver/internal/config"
	"git.home.luguber.info/inful/docweaver/internal/content"
	"git.home.luguber.info/inful/docweaver/internal/logfields"
	"git.home.luguber.info/inful/docweaver/internal/render"
	"git.home.luguber.info/inful/docweaver/internal/vcs"
)

// stageLoadConfig reads config.yml, the page template and the source revision.
func stageLoadConfig(_ context.Context, bs *BuildState) error {
	b := bs.Builder
	site, err := config.LoadSite(b.path(config.SiteFile))
	if err != nil {
		return err
	}
	bs.Site = site
	bs.Report.Languages = len(site.Languages.Supported)

	tmpl, err := render.LoadTemplate(b.path(config.TemplatesDir))
	if err != nil {
		return err
	}
	bs.Template = tmpl
	for name, source := range tmpl.Sources {
		bs.Report.Templates[name] = source
	}

	rev, err := vcs.ReadRevision(b.projectDir)
	if err != nil {
		b.logger.Warn("Failed to read source revision", logfields.Error(err))
	}
	bs.Report.Revision = rev
	if rev.Commit != "" {
		b.logger.Debug("Resolved source revision", logfields.Revision(rev.String()))
	}
	return nil
}

func stageLoadComponents(_ context.Context, bs *BuildState) error {
	b := bs.Builder
	reg, err := component.LoadRegistry(b.path(config.ComponentsDir),
		component.WithSalt(bs.Site.Scoping.Salt),
		component.WithLogger(b.logger))
	if err != nil {
		return err
	}
	bs.Registry = reg
	bs.Report.Components = reg.Len()
	return nil
}

// stageLoadContent parses every page, expanding components. Once it returns, the
// tree and stylesheet are frozen.
func stageLoadContent(ctx context.Context, bs *BuildState) error {
	b := bs.Builder
	loader := &content.Loader{
		Registry:        bs.Registry,
		DefaultLanguage: bs.Site.Languages.Default,
		Strict:          b.strict,
		Concurrency:     b.concurrency,
		Logger:          b.logger,
	}
	tree, err := loader.Load(ctx, b.path(config.DocsDir))
	if err != nil {
		return err
	}
	bs.Tree = tree
	bs.Stylesheet = bs.Registry.Stylesheet()
	bs.Report.Categories = len(tree.Categories)
	bs.Report.ScopedStyles = bs.Stylesheet.Len()

	r, err := render.NewRenderer(bs.Site, tree, bs.Stylesheet, bs.Template)
	if err != nil {
		return err
	}
	r.Concurrency = b.concurrency
	r.Logger = b.logger
	bs.Renderer = r
	return nil
}

func stageRenderPages(ctx context.Context, bs *BuildState) error {
	if err := bs.Renderer.RenderAll(ctx, bs.writer); err != nil {
		return err
	}
	bs.Report.Pages = len(bs.Renderer.Pages())
	return nil
}

// discardWriter counts files without storing them.
type discardWriter struct {
	files atomic.Int64
}

func (w *discardWriter) WriteFile(string, []byte) error {
	w.files.Add(1)
	return nil
}

// stageVerifyPages renders every page and redirect in memory.
func stageVerifyPages(ctx context.Context, bs *BuildState) error {
	w := &discardWriter{}
	if err := bs.Renderer.RenderAll(ctx, w); err != nil {
		return err
	}
	bs.Report.Pages = len(bs.Renderer.Pages())
	return nil
}
