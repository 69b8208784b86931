package icon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssetPath(t *testing.T) {
	require.Equal(t, "/~/assets/logo.svg", AssetPath("assets://logo.svg"))
	require.Equal(t, "/~/assets/img/a.png", AssetPath("assets:///img/a.png"))
	require.Equal(t, "home", AssetPath("home"))
}

func TestHTML(t *testing.T) {
	require.Equal(t,
		`<img class="icon" src="/~/assets/logo.svg" alt="icon" height="24" />`,
		string(HTML("assets://logo.svg")))
	require.Equal(t,
		`<span class="material-symbols-outlined icon">menu_book</span>`,
		string(HTML("menu_book")))
	require.Equal(t,
		`<span class="material-symbols-outlined icon">&lt;b&gt;</span>`,
		string(HTML("<b>")))
	require.Empty(t, string(HTML("  ")))
}
