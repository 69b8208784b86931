package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadSite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SiteFile)
	writeFile(t, path, `
languages:
  default: en
  supported: [en, fr, de]
start-page: /guide/intro/
links:
  - name: GitHub
    url: https://github.com/example
    icon: code
icon: assets://logo.svg
title-with-category: true
scoping:
  salt: v1
`)

	site, err := LoadSite(path)
	require.NoError(t, err)
	require.Equal(t, "en", site.Languages.Default)
	require.Equal(t, []string{"en", "fr", "de"}, site.Languages.Supported)
	require.Equal(t, "guide/intro", site.StartPage)
	require.Len(t, site.Links, 1)
	require.Equal(t, "code", site.Links[0].Icon)
	require.Equal(t, "assets://logo.svg", site.Icon)
	require.True(t, site.TitleWithCategory)
	require.Equal(t, "v1", site.Scoping.Salt)

	cat, page := site.StartPageParts()
	require.Equal(t, "guide", cat)
	require.Equal(t, "intro", page)
}

func TestLoadSite_SupportedDefaultsToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SiteFile)
	writeFile(t, path, "languages:\n  default: en\n")

	site, err := LoadSite(path)
	require.NoError(t, err)
	require.Equal(t, []string{"en"}, site.Languages.Supported)
	require.Empty(t, site.StartPage)
}

func TestLoadSite_ExpandsEnvFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "DOCWEAVER_TEST_REPO_URL=https://git.example.com/docs\n")
	path := filepath.Join(dir, SiteFile)
	writeFile(t, path, `
languages:
  default: en
links:
  - name: Repo
    url: ${DOCWEAVER_TEST_REPO_URL}
`)
	t.Cleanup(func() { _ = os.Unsetenv("DOCWEAVER_TEST_REPO_URL") })

	site, err := LoadSite(path)
	require.NoError(t, err)
	require.Equal(t, "https://git.example.com/docs", site.Links[0].URL)
}

func TestLoadSite_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "languages: [unclosed"},
		{"missing default", "languages:\n  supported: [en]\n"},
		{"default not supported", "languages:\n  default: en\n  supported: [fr]\n"},
		{"duplicate language", "languages:\n  default: en\n  supported: [en, fr, en]\n"},
		{"invalid language tag", "languages:\n  default: en\n  supported: [en, '???']\n"},
		{"bad start page", "languages:\n  default: en\nstart-page: guide\n"},
		{"nested start page", "languages:\n  default: en\nstart-page: a/b/c\n"},
		{"link without url", "languages:\n  default: en\nlinks:\n  - name: x\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, SiteFile)
			writeFile(t, path, tc.content)

			_, err := LoadSite(path)
			require.Error(t, err)
			require.True(t, errors.HasCategory(err, errors.CategoryConfig), "got %v", err)
		})
	}
}

func TestLoadSite_Missing(t *testing.T) {
	_, err := LoadSite(filepath.Join(t.TempDir(), SiteFile))
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoadCategory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CategoryFile)
	writeFile(t, path, "display-name:\n  en: Guide\n  fr: Guide FR\nicon: menu_book\n")

	cat, err := LoadCategory(path)
	require.NoError(t, err)
	require.Equal(t, "Guide", cat.DisplayName["en"])
	require.Equal(t, "menu_book", cat.Icon)
	require.NoError(t, cat.Validate("en"))
	require.Error(t, cat.Validate("de"))
}

func TestLoadCategory_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCategory(filepath.Join(dir, "missing", CategoryFile))
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))

	path := filepath.Join(dir, CategoryFile)
	writeFile(t, path, "display-name: [broken")
	_, err = LoadCategory(path)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, false))

	site, err := LoadSite(filepath.Join(dir, SiteFile))
	require.NoError(t, err)
	require.Equal(t, "guide/intro", site.StartPage)

	for _, rel := range []string{
		filepath.Join(DocsDir, "guide", CategoryFile),
		filepath.Join(DocsDir, "guide", "intro.html"),
		filepath.Join(DocsDir, "guide", "setup.html"),
		filepath.Join(ComponentsDir, "callout.html"),
	} {
		require.FileExists(t, filepath.Join(dir, rel))
	}

	cat, err := LoadCategory(filepath.Join(dir, DocsDir, "guide", CategoryFile))
	require.NoError(t, err)
	require.NoError(t, cat.Validate(site.Languages.Default))

	err = Init(dir, false)
	require.Error(t, err)
	require.NoError(t, Init(dir, true))
}
