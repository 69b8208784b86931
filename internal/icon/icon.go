// Package icon implements the icon reference convention: "assets://<path>" names a
// project asset rendered as an image, anything else names a Material Symbols glyph.
package icon

import (
	"html/template"
	"strings"
)

const (
	assetScheme = "assets://"
	// AssetsURLPrefix is where project assets are published.
	AssetsURLPrefix = "/~/assets/"
)

var (
	imageTmpl = template.Must(template.New("image").Parse(
		`<img class="icon" src="{{.}}" alt="icon" height="24" />`))
	glyphTmpl = template.Must(template.New("glyph").Parse(
		`<span class="material-symbols-outlined icon">{{.}}</span>`))
)

// IsAsset reports whether ref points at a project asset.
func IsAsset(ref string) bool {
	return strings.HasPrefix(ref, assetScheme)
}

// AssetPath resolves ref to its published URL path. Non-asset references are
// returned unchanged.
func AssetPath(ref string) string {
	if !IsAsset(ref) {
		return ref
	}
	return AssetsURLPrefix + strings.TrimLeft(strings.TrimPrefix(ref, assetScheme), "/")
}

// HTML renders ref as an <img> for assets or a glyph <span> otherwise. An empty
// reference renders nothing.
func HTML(ref string) template.HTML {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	var b strings.Builder
	var err error
	if IsAsset(ref) {
		err = imageTmpl.Execute(&b, AssetPath(ref))
	} else {
		err = glyphTmpl.Execute(&b, ref)
	}
	if err != nil {
		return ""
	}
	//nolint:gosec // both templates escape their input
	return template.HTML(b.String())
}
