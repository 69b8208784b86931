package content

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docweaver/internal/component"
	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/styles"
)

func newRegistry() *component.Registry {
	return component.NewRegistry(map[string]string{
		"callout": `<div class="box"><slot>Note</slot></div><style>.box{color:red}</style>`,
		"panel":   `<section class="panel"><slot></slot></section>`,
	})
}

func TestParsePage_SectionsAndTitles(t *testing.T) {
	src := `<title lang="en">Intro</title>
<title lang="fr">Intro FR</title>
<title>Default title</title>
<section lang="en"><p>English</p></section>
<section lang="fr"><p>French</p></section>`

	page, err := ParsePage("intro", strings.NewReader(src), newRegistry(), "de")
	require.NoError(t, err)

	require.Equal(t, Localized{"en": "Intro", "fr": "Intro FR", "de": "Default title"}, page.Titles)
	require.Equal(t, "<p>English</p>", page.Body("en"))
	require.Equal(t, "<p>French</p>", page.Body("fr"))
	require.Empty(t, page.Body("de"))
}

func TestParsePage_SectionWithoutLangUsesDefault(t *testing.T) {
	page, err := ParsePage("p", strings.NewReader(`<section><p>x</p></section>`), newRegistry(), "en")
	require.NoError(t, err)
	require.Equal(t, "<p>x</p>", page.Body("en"))
}

func TestParsePage_ExpandsComponents(t *testing.T) {
	src := `<title>T</title><section lang="en"><component name="callout">Careful</component></section>`

	page, err := ParsePage("p", strings.NewReader(src), newRegistry(), "en")
	require.NoError(t, err)

	box := "box-" + styles.Suffix("callout", "box", "")
	require.Equal(t, `<div class="`+box+`">Careful</div>`, page.Body("en"))
}

func TestParsePage_ComponentSectionsAreNotBodies(t *testing.T) {
	src := `<section lang="en"><component name="panel">inner</component></section>`

	page, err := ParsePage("p", strings.NewReader(src), newRegistry(), "en")
	require.NoError(t, err)
	require.Len(t, page.Bodies, 1)
	require.Equal(t, `<section class="panel">inner</section>`, page.Body("en"))
}

func TestParsePage_NestedSectionsStayInBody(t *testing.T) {
	src := `<section lang="en"><p>outer</p><section lang="fr">inner</section></section>`

	page, err := ParsePage("p", strings.NewReader(src), newRegistry(), "en")
	require.NoError(t, err)
	require.Len(t, page.Bodies, 1)
	require.Empty(t, page.Body("fr"))
	require.Equal(t, `<p>outer</p><section lang="fr">inner</section>`, page.Body("en"))
}

func TestParsePage_UnknownComponent(t *testing.T) {
	src := `<section lang="en"><component name="ghost"></component></section>`

	_, err := ParsePage("intro", strings.NewReader(src), newRegistry(), "en")
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryResolution))
	require.Contains(t, err.Error(), "component=ghost")
	require.Contains(t, err.Error(), "page=intro")
}

func TestParsePage_DuplicateLanguageLastWins(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	src := `<section lang="en">first</section><section lang="en">second</section>`

	page, err := ParsePage("p", strings.NewReader(src), newRegistry(), "en", WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, "second", page.Body("en"))
	require.Contains(t, logs.String(), "Duplicate section language")
}

func TestParsePage_DuplicateLanguageStrict(t *testing.T) {
	src := `<title lang="en">a</title><title lang="en">b</title><section>x</section>`

	_, err := ParsePage("p", strings.NewReader(src), newRegistry(), "en", WithStrict(true))
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestParsePage_MarkdownSection(t *testing.T) {
	src := `<title>Setup</title>
<section lang="en" format="markdown">
    # Setup

    Run the *build* & enjoy.

    > quoted

    <component name="callout">Heads up</component>
</section>`

	page, err := ParsePage("setup", strings.NewReader(src), newRegistry(), "en")
	require.NoError(t, err)

	body := page.Body("en")
	box := "box-" + styles.Suffix("callout", "box", "")
	require.Contains(t, body, "<h1>Setup</h1>")
	require.Contains(t, body, "<em>build</em> &amp; enjoy.")
	require.Contains(t, body, "<blockquote>")
	require.Contains(t, body, `<div class="`+box+`">Heads up</div>`)
	require.NotContains(t, body, "<component")
	require.NotContains(t, body, "# Setup")
	require.NotContains(t, body, "Run the *build*")
}
