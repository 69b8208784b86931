package content

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/docweaver/internal/component"
	"git.home.luguber.info/inful/docweaver/internal/config"
	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/logfields"
)

const pageExt = ".html"

// Loader builds a Tree from a docs directory.
type Loader struct {
	Registry        *component.Registry
	DefaultLanguage string
	// Strict makes duplicate section or title languages fatal.
	Strict bool
	// Concurrency bounds parallel page parsing; <= 0 means unbounded.
	Concurrency int
	Logger      *slog.Logger
}

type pageJob struct {
	category *Category
	index    int
	id       string
	path     string
}

// Load reads every category and page under docsDir. Categories and pages keep
// directory listing order. Any failure aborts the whole load.
func (l *Loader) Load(ctx context.Context, docsDir string) (*Tree, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := os.ReadDir(docsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("docs directory not found").
				WithContext("path", docsDir).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read docs directory").
			WithContext("path", docsDir).
			Build()
	}

	tree := &Tree{DefaultLanguage: l.DefaultLanguage}
	var jobs []pageJob

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		cat, catJobs, err := l.loadCategory(filepath.Join(docsDir, entry.Name()), entry.Name())
		if err != nil {
			return nil, err
		}
		tree.Categories = append(tree.Categories, cat)
		jobs = append(jobs, catJobs...)
	}

	g, gctx := errgroup.WithContext(ctx)
	if l.Concurrency > 0 {
		g.SetLimit(l.Concurrency)
	}
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			page, err := l.loadPage(job, logger)
			if err != nil {
				return err
			}
			job.category.Pages[job.index] = page
			logger.Debug("Loaded page",
				logfields.Category(job.category.ID),
				logfields.Page(job.id),
				logfields.Count(len(page.Bodies)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Loaded content tree",
		logfields.Path(docsDir),
		slog.Int("categories", len(tree.Categories)),
		slog.Int("pages", tree.PageCount()))
	return tree, nil
}

func (l *Loader) loadCategory(dir, id string) (*Category, []pageJob, error) {
	meta, err := config.LoadCategory(filepath.Join(dir, config.CategoryFile))
	if err != nil {
		return nil, nil, withContext(err, "category", id)
	}
	if err := meta.Validate(l.DefaultLanguage); err != nil {
		return nil, nil, withContext(err, "category", id)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, errors.WrapError(err, errors.CategoryFileSystem, "read category directory").
			WithContext("category", id).
			WithContext("path", dir).
			Build()
	}

	cat := &Category{ID: id, Config: *meta}
	var jobs []pageJob
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != pageExt {
			continue
		}
		jobs = append(jobs, pageJob{
			category: cat,
			index:    len(jobs),
			id:       strings.TrimSuffix(entry.Name(), pageExt),
			path:     filepath.Join(dir, entry.Name()),
		})
	}
	if len(jobs) == 0 {
		return nil, nil, errors.ConfigError("category has no pages").
			WithContext("category", id).
			WithContext("path", dir).
			Build()
	}
	cat.Pages = make([]*Page, len(jobs))
	return cat, jobs, nil
}

func (l *Loader) loadPage(job pageJob, logger *slog.Logger) (*Page, error) {
	f, err := os.Open(job.path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read page").
			WithContext("category", job.category.ID).
			WithContext("page", job.id).
			WithContext("path", job.path).
			Build()
	}
	defer func() { _ = f.Close() }()

	page, err := ParsePage(job.id, f, l.Registry, l.DefaultLanguage,
		WithStrict(l.Strict),
		WithLogger(logger.With(logfields.Category(job.category.ID))))
	if err != nil {
		return nil, withContext(err, "category", job.category.ID)
	}
	page.Source = job.path
	return page, nil
}
