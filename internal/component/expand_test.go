package component

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/markup"
	"git.home.luguber.info/inful/docweaver/internal/styles"
)

func expandBody(t *testing.T, r *Registry, page string) (string, error) {
	t.Helper()
	doc, err := markup.ParseDocument(strings.NewReader(page))
	require.NoError(t, err)

	out, err := r.Expand(doc)
	if err != nil {
		return "", err
	}
	body := markup.FindFirst(out, "body")
	require.NotNil(t, body)
	return markup.InnerHTML(body)
}

func TestExpand_ReplacesComponents(t *testing.T) {
	r := NewRegistry(map[string]string{"callout": calloutSource})
	box := "box-" + styles.Suffix("callout", "box", "")

	got, err := expandBody(t, r, `<p>before</p><component name="callout"><b>Hi</b></component><p>after</p>`)
	require.NoError(t, err)
	require.Equal(t, `<p>before</p><div class="`+box+` note"><b>Hi</b></div>`+"\n"+`<p>after</p>`, got)
}

func TestExpand_Transitive(t *testing.T) {
	r := NewRegistry(map[string]string{
		"outer": `<section class="o"><component name="inner"><slot></slot></component></section><style>.o{margin:0}</style>`,
		"inner": `<em class="i"><slot></slot></em><style>.i{color:red}</style>`,
	})
	o := "o-" + styles.Suffix("outer", "o", "")
	i := "i-" + styles.Suffix("inner", "i", "")

	got, err := expandBody(t, r, `<component name="outer">text</component>`)
	require.NoError(t, err)
	require.Equal(t, `<section class="`+o+`"><em class="`+i+`">text</em></section>`, got)
	require.Equal(t, 2, r.Stylesheet().Len())
}

func TestExpand_SlotContentMayUseComponents(t *testing.T) {
	r := NewRegistry(map[string]string{
		"box":  `<div><slot></slot></div>`,
		"chip": `<span>chip</span>`,
	})

	got, err := expandBody(t, r, `<component name="box"><component name="chip"></component></component>`)
	require.NoError(t, err)
	require.Equal(t, `<div><span>chip</span></div>`, got)
}

func TestExpand_RepeatedUseIsNotACycle(t *testing.T) {
	r := NewRegistry(map[string]string{
		"pair": `<div><component name="chip"></component><component name="chip"></component></div>`,
		"chip": `<span>c</span>`,
	})

	got, err := expandBody(t, r, `<component name="pair"></component>`)
	require.NoError(t, err)
	require.Equal(t, `<div><span>c</span><span>c</span></div>`, got)
}

func TestExpand_CycleFails(t *testing.T) {
	r := NewRegistry(map[string]string{
		"a": `<div><component name="b"></component></div>`,
		"b": `<div><component name="a"></component></div>`,
	})

	_, err := expandBody(t, r, `<component name="a"></component>`)
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryResolution))
	require.Contains(t, err.Error(), "a -> b -> a")
}

func TestExpand_SelfReferenceFails(t *testing.T) {
	r := NewRegistry(map[string]string{"loop": `<component name="loop"></component>`})
	_, err := expandBody(t, r, `<component name="loop"></component>`)
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryResolution))
}

func TestExpand_MissingNameFails(t *testing.T) {
	r := NewRegistry(nil)
	_, err := expandBody(t, r, `<component>x</component>`)
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryResolution))
}

func TestExpand_UnknownComponentFails(t *testing.T) {
	r := NewRegistry(nil)
	_, err := expandBody(t, r, `<component name="ghost"></component>`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown component")
}

func TestExpand_DoesNotModifyInput(t *testing.T) {
	r := NewRegistry(map[string]string{"chip": `<span>chip</span>`})
	doc, err := markup.ParseDocument(strings.NewReader(`<component name="chip"></component>`))
	require.NoError(t, err)

	_, err = r.Expand(doc)
	require.NoError(t, err)
	require.Len(t, markup.FindAll(doc, "component"), 1)
}
