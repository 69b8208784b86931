package config

import (
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

// Validate checks the site configuration. Every violation is a ConfigError.
func (s *Site) Validate() error {
	if err := s.validateLanguages(); err != nil {
		return err
	}
	if err := s.validateStartPage(); err != nil {
		return err
	}
	return s.validateLinks()
}

func (s *Site) validateLanguages() error {
	if s.Languages.Default == "" {
		return errors.ConfigError("languages.default is required").Build()
	}

	seen := make(map[string]bool, len(s.Languages.Supported))
	for _, code := range s.Languages.Supported {
		if code == "" {
			return errors.ConfigError("languages.supported contains an empty code").Build()
		}
		if _, err := language.Parse(code); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "invalid language code").
				WithContext("language", code).
				Build()
		}
		if seen[code] {
			return errors.ConfigError("duplicate supported language").
				WithContext("language", code).
				Build()
		}
		seen[code] = true
	}

	if !seen[s.Languages.Default] {
		return errors.ConfigError("default language is not in languages.supported").
			WithContext("language", s.Languages.Default).
			Build()
	}
	return nil
}

func (s *Site) validateStartPage() error {
	if s.StartPage == "" {
		return nil
	}
	category, page, ok := strings.Cut(s.StartPage, "/")
	if !ok || category == "" || page == "" || strings.Contains(page, "/") {
		return errors.ConfigError("start-page must have the form <category>/<page>").
			WithContext("start_page", s.StartPage).
			Build()
	}
	return nil
}

func (s *Site) validateLinks() error {
	for i, link := range s.Links {
		if strings.TrimSpace(link.Name) == "" || strings.TrimSpace(link.URL) == "" {
			return errors.ConfigError("link requires name and url").
				WithContext("index", i).
				Build()
		}
	}
	return nil
}
