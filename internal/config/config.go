package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

// Project layout.
const (
	SiteFile      = "config.yml"
	CategoryFile  = "category.yml"
	DocsDir       = "docs"
	ComponentsDir = "components"
	AssetsDir     = "assets"
	TemplatesDir  = "templates"
)

// Site is the project-wide configuration read from config.yml.
type Site struct {
	Languages         Languages `yaml:"languages"`
	StartPage         string    `yaml:"start-page,omitempty"`
	Links             []Link    `yaml:"links,omitempty"`
	Icon              string    `yaml:"icon,omitempty"`
	TitleWithCategory bool      `yaml:"title-with-category,omitempty"`
	Scoping           Scoping   `yaml:"scoping,omitempty"`
}

// Languages lists the site languages. Supported is ordered; Default must be one of them.
type Languages struct {
	Default   string   `yaml:"default"`
	Supported []string `yaml:"supported"`
}

// Link is an external link button.
type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon,omitempty"`
}

// Scoping controls component class renaming.
type Scoping struct {
	// Salt is mixed into every scoped class suffix; change it to rename all classes.
	Salt string `yaml:"salt,omitempty"`
}

// StartPageParts splits StartPage into category and page ids. Both are empty when
// no start page is configured.
func (s *Site) StartPageParts() (category, page string) {
	category, page, _ = strings.Cut(s.StartPage, "/")
	return category, page
}

// LoadSite reads, expands and validates the site configuration at path.
func LoadSite(path string) (*Site, error) {
	if err := loadEnvFile(filepath.Dir(path)); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read configuration").
			WithContext("path", path).
			Build()
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var site Site
	if err := yaml.Unmarshal([]byte(expanded), &site); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "malformed configuration").
			WithContext("path", path).
			Build()
	}

	applyDefaults(&site)
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &site, nil
}

func applyDefaults(s *Site) {
	s.Languages.Default = strings.TrimSpace(s.Languages.Default)
	for i, code := range s.Languages.Supported {
		s.Languages.Supported[i] = strings.TrimSpace(code)
	}
	if len(s.Languages.Supported) == 0 && s.Languages.Default != "" {
		s.Languages.Supported = []string{s.Languages.Default}
	}
	s.StartPage = strings.Trim(strings.TrimSpace(s.StartPage), "/")
}
