package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

// Category is the metadata of one docs/<category>/ folder.
type Category struct {
	DisplayName map[string]string `yaml:"display-name"`
	Icon        string            `yaml:"icon,omitempty"`
}

// LoadCategory reads a category.yml file.
func LoadCategory(path string) (*Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("missing category metadata").
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read category metadata").
			WithContext("path", path).
			Build()
	}

	var cat Category
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "malformed category metadata").
			WithContext("path", path).
			Build()
	}
	return &cat, nil
}

// Validate requires a display name for the default language.
func (c *Category) Validate(defaultLanguage string) error {
	if c.DisplayName[defaultLanguage] == "" {
		return errors.ConfigError("category display-name missing for default language").
			WithContext("language", defaultLanguage).
			Build()
	}
	return nil
}
