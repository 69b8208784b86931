package content

import (
	"git.home.luguber.info/inful/docweaver/internal/config"
	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

// Localized maps a language code to text.
type Localized map[string]string

// Resolve returns the value for lang, else the value for fallback. Empty values
// count as absent. Neither present is a ResolutionError.
func (l Localized) Resolve(lang, fallback string) (string, error) {
	if v := l[lang]; v != "" {
		return v, nil
	}
	if v := l[fallback]; v != "" {
		return v, nil
	}
	return "", errors.ResolutionError("missing localized value").
		WithContext("language", lang).
		WithContext("fallback", fallback).
		Build()
}

// Page is one authored page.
type Page struct {
	ID     string
	Source string
	Titles Localized
	Bodies map[string]string
}

// Title resolves the page title for lang with fallback to def.
func (p *Page) Title(lang, def string) (string, error) {
	title, err := p.Titles.Resolve(lang, def)
	if err != nil {
		return "", withContext(err, "page", p.ID)
	}
	return title, nil
}

// Body returns the page body for lang, or "" when the page has none in that language.
func (p *Page) Body(lang string) string {
	return p.Bodies[lang]
}

// Category is one docs/<category>/ folder.
type Category struct {
	ID     string
	Config config.Category
	Pages  []*Page
}

// DisplayName resolves the category name for lang with fallback to def.
func (c *Category) DisplayName(lang, def string) (string, error) {
	name, err := Localized(c.Config.DisplayName).Resolve(lang, def)
	if err != nil {
		return "", withContext(err, "category", c.ID)
	}
	return name, nil
}

// FirstPage returns the category's redirect target.
func (c *Category) FirstPage() *Page {
	if len(c.Pages) == 0 {
		return nil
	}
	return c.Pages[0]
}

// Page returns the page with id, or nil.
func (c *Category) Page(id string) *Page {
	for _, p := range c.Pages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Tree is the full, ordered documentation tree.
type Tree struct {
	DefaultLanguage string
	Categories      []*Category
}

// Category returns the category with id, or nil.
func (t *Tree) Category(id string) *Category {
	for _, c := range t.Categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Page returns the page pageID of category catID, or nil.
func (t *Tree) Page(catID, pageID string) *Page {
	if c := t.Category(catID); c != nil {
		return c.Page(pageID)
	}
	return nil
}

// PageCount returns the number of pages across all categories.
func (t *Tree) PageCount() int {
	n := 0
	for _, c := range t.Categories {
		n += len(c.Pages)
	}
	return n
}

func withContext(err error, key, value string) error {
	if ce, ok := errors.AsClassified(err); ok {
		return ce.WithContext(key, value)
	}
	return err
}
