package render

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

// Template file names, looked up in the project templates directory first.
const (
	PageFile   = "index.html"
	StyleFile  = "index.css"
	ScriptFile = "index.js"
)

// Sources of a template file.
const (
	SourceFile     = "file"
	SourceEmbedded = "embedded"
)

//go:embed defaults/*
var embeddedDefaults embed.FS

// Template holds the page template and the shared stylesheet and script.
type Template struct {
	Page   string
	Style  []byte
	Script []byte
	// Sources records for each file name whether it came from the project or the
	// embedded defaults.
	Sources map[string]string
}

// LoadTemplate reads index.html, index.css and index.js from dir, falling back to the
// embedded defaults for each missing file. dir may be empty.
func LoadTemplate(dir string) (*Template, error) {
	t := &Template{Sources: map[string]string{}}

	page, err := t.load(dir, PageFile)
	if err != nil {
		return nil, err
	}
	t.Page = string(page)
	if strings.TrimSpace(t.Page) == "" {
		return nil, errors.ConfigError("page template is empty").
			WithContext("path", filepath.Join(dir, PageFile)).
			Build()
	}

	if t.Style, err = t.load(dir, StyleFile); err != nil {
		return nil, err
	}
	if t.Script, err = t.load(dir, ScriptFile); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Template) load(dir, name string) ([]byte, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			t.Sources[name] = SourceFile
			return data, nil
		case !os.IsNotExist(err):
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "read template").
				WithContext("path", path).
				Build()
		}
	}

	data, err := embeddedDefaults.ReadFile("defaults/" + name)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "embedded default template missing").
			WithContext("path", name).
			Build()
	}
	t.Sources[name] = SourceEmbedded
	return data, nil
}
