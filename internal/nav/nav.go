// Package nav derives the sidebar and breadcrumb of a page from the content tree.
package nav

import (
	"git.home.luguber.info/inful/docweaver/internal/content"
)

// Target identifies one output page.
type Target struct {
	Language string
	Category string
	Page     string
}

// Link is a page entry of a sidebar section.
type Link struct {
	ID     string
	Title  string
	Href   string
	Active bool
}

// Section is a category entry of the sidebar.
type Section struct {
	ID     string
	Name   string
	Icon   string
	Href   string
	Active bool
	Links  []Link
}

// Crumb is one breadcrumb segment.
type Crumb struct {
	Label string
	Href  string
}

// LanguagePath returns the URL path of a language root.
func LanguagePath(lang string) string {
	return "/" + lang
}

// CategoryPath returns the URL path of a category root.
func CategoryPath(lang, category string) string {
	return LanguagePath(lang) + "/" + category
}

// PagePath returns the URL path of a page.
func PagePath(lang, category, page string) string {
	return CategoryPath(lang, category) + "/" + page
}

// BuildSidebar lists every category with its pages in source order. Names use the
// target language with fallback to the tree's default language.
func BuildSidebar(tree *content.Tree, target Target) ([]Section, error) {
	sections := make([]Section, 0, len(tree.Categories))
	for _, cat := range tree.Categories {
		name, err := cat.DisplayName(target.Language, tree.DefaultLanguage)
		if err != nil {
			return nil, err
		}

		sec := Section{
			ID:     cat.ID,
			Name:   name,
			Icon:   cat.Config.Icon,
			Active: cat.ID == target.Category,
			Links:  make([]Link, 0, len(cat.Pages)),
		}
		if first := cat.FirstPage(); first != nil {
			sec.Href = PagePath(target.Language, cat.ID, first.ID)
		}

		for _, page := range cat.Pages {
			title, err := page.Title(target.Language, tree.DefaultLanguage)
			if err != nil {
				return nil, err
			}
			sec.Links = append(sec.Links, Link{
				ID:     page.ID,
				Title:  title,
				Href:   PagePath(target.Language, cat.ID, page.ID),
				Active: sec.Active && page.ID == target.Page,
			})
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

// BuildBreadcrumb returns [language, category, page], each linking to its
// cumulative path. Empty segments are dropped.
func BuildBreadcrumb(target Target) []Crumb {
	var crumbs []Crumb
	href := ""
	for _, seg := range []string{target.Language, target.Category, target.Page} {
		if seg == "" {
			break
		}
		href += "/" + seg
		crumbs = append(crumbs, Crumb{Label: seg, Href: href})
	}
	return crumbs
}
