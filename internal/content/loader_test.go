package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docweaver/internal/component"
	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func writeCategory(t *testing.T, docs, id string, pages ...string) {
	t.Helper()
	writeFile(t, filepath.Join(docs, id, "category.yml"), fmt.Sprintf("display-name:\n  en: %s\n", id))
	for _, p := range pages {
		writeFile(t, filepath.Join(docs, id, p+".html"),
			fmt.Sprintf(`<title lang="en">%s</title><section lang="en"><p>%s body</p></section>`, p, p))
	}
}

func TestLoader_LoadsInListingOrder(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "docs")
	writeCategory(t, docs, "guide", "intro", "setup", "advanced")
	writeCategory(t, docs, "api", "ref")
	writeFile(t, filepath.Join(docs, "README.txt"), "not a category")
	writeFile(t, filepath.Join(docs, "guide", "notes.txt"), "not a page")

	loader := &Loader{Registry: component.NewRegistry(nil), DefaultLanguage: "en", Concurrency: 2}
	tree, err := loader.Load(context.Background(), docs)
	require.NoError(t, err)

	require.Equal(t, "en", tree.DefaultLanguage)
	require.Len(t, tree.Categories, 2)
	require.Equal(t, "api", tree.Categories[0].ID)
	require.Equal(t, "guide", tree.Categories[1].ID)

	guide := tree.Category("guide")
	var ids []string
	for _, p := range guide.Pages {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{"advanced", "intro", "setup"}, ids)
	require.Equal(t, "<p>intro body</p>", tree.Page("guide", "intro").Body("en"))
	require.Equal(t, filepath.Join(docs, "guide", "intro.html"), tree.Page("guide", "intro").Source)
	require.Equal(t, "guide", guide.Config.DisplayName["en"])
}

func TestLoader_MissingCategoryMetadata(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "docs")
	writeFile(t, filepath.Join(docs, "guide", "intro.html"), `<section>x</section>`)

	loader := &Loader{Registry: component.NewRegistry(nil), DefaultLanguage: "en"}
	_, err := loader.Load(context.Background(), docs)
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
	require.Contains(t, err.Error(), "category=guide")
}

func TestLoader_DisplayNameRequiredForDefault(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "docs")
	writeCategory(t, docs, "guide", "intro")

	loader := &Loader{Registry: component.NewRegistry(nil), DefaultLanguage: "fr"}
	_, err := loader.Load(context.Background(), docs)
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoader_EmptyCategory(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "docs")
	writeCategory(t, docs, "empty")

	loader := &Loader{Registry: component.NewRegistry(nil), DefaultLanguage: "en"}
	_, err := loader.Load(context.Background(), docs)
	require.Error(t, err)
	require.Contains(t, err.Error(), "category has no pages")
}

func TestLoader_MissingDocsDirectory(t *testing.T) {
	loader := &Loader{Registry: component.NewRegistry(nil), DefaultLanguage: "en"}
	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "docs"))
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoader_UnknownComponentAbortsLoad(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "docs")
	writeCategory(t, docs, "guide", "intro")
	writeFile(t, filepath.Join(docs, "guide", "broken.html"), `<section><component name="ghost"></component></section>`)

	loader := &Loader{Registry: component.NewRegistry(nil), DefaultLanguage: "en"}
	tree, err := loader.Load(context.Background(), docs)
	require.Nil(t, tree)
	require.True(t, errors.HasCategory(err, errors.CategoryResolution))
	require.Contains(t, err.Error(), "page=broken")
	require.Contains(t, err.Error(), "category=guide")
}

func TestLoader_CancelledContext(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "docs")
	writeCategory(t, docs, "guide", "intro")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := &Loader{Registry: component.NewRegistry(nil), DefaultLanguage: "en"}
	_, err := loader.Load(ctx, docs)
	require.ErrorIs(t, err, context.Canceled)
}
