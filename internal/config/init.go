package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

const (
	scaffoldCategory = `display-name:
  en: Guide
icon: menu_book
`
	scaffoldIntro = `<title lang="en">Introduction</title>
<section lang="en">
  <h1>Welcome</h1>
  <component name="callout">Edit docs/guide/intro.html to get started.</component>
</section>
`
	scaffoldSetup = `<title lang="en">Setup</title>
<section lang="en" format="markdown">
  # Setup

  Run ` + "`docweaver build`" + ` and open ` + "`out/index.html`" + `.
</section>
`
	scaffoldCallout = `<div class="box"><slot>Note</slot></div>
<style>
.box {
  border-left: 4px solid #3b82f6;
  padding: 0.5rem 1rem;
}
</style>
`
)

// Init scaffolds an example project in projectDir. It refuses to overwrite an
// existing config.yml unless force is set.
func Init(projectDir string, force bool) error {
	cfgPath := filepath.Join(projectDir, SiteFile)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return errors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", cfgPath).
			Build()
	}

	example := Site{
		Languages: Languages{Default: "en", Supported: []string{"en"}},
		StartPage: "guide/intro",
		Links: []Link{
			{Name: "Source", URL: "https://example.com/repo", Icon: "code"},
		},
		Icon: "description",
	}
	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	files := []struct {
		path    string
		content []byte
	}{
		{cfgPath, data},
		{filepath.Join(projectDir, DocsDir, "guide", CategoryFile), []byte(scaffoldCategory)},
		{filepath.Join(projectDir, DocsDir, "guide", "intro.html"), []byte(scaffoldIntro)},
		{filepath.Join(projectDir, DocsDir, "guide", "setup.html"), []byte(scaffoldSetup)},
		{filepath.Join(projectDir, ComponentsDir, "callout.html"), []byte(scaffoldCallout)},
		{filepath.Join(projectDir, AssetsDir, ".keep"), nil},
	}
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "create directory").
				WithContext("path", filepath.Dir(f.path)).
				Build()
		}
		if err := os.WriteFile(f.path, f.content, 0o644); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "write file").
				WithContext("path", f.path).
				Build()
		}
	}
	return nil
}
