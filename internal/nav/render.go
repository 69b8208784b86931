package nav

import (
	"html/template"
	"strings"

	"git.home.luguber.info/inful/docweaver/internal/icon"
)

var funcs = template.FuncMap{"icon": icon.HTML}

var sidebarTmpl = template.Must(template.New("sidebar").Funcs(funcs).Parse(`<ul class="sidebar">
{{- range .}}
<li class="category{{if .Active}} active expanded{{end}}">
<a class="category-link" href="{{.Href}}">{{with .Icon}}{{icon .}}{{end}}<span>{{.Name}}</span></a>
<ul class="pages">
{{- range .Links}}
<li class="page{{if .Active}} active{{end}}"><a href="{{.Href}}"{{if .Active}} aria-current="page"{{end}}>{{.Title}}</a></li>
{{- end}}
</ul>
</li>
{{- end}}
</ul>`))

var breadcrumbTmpl = template.Must(template.New("breadcrumb").Parse(`<nav class="history">
{{- range $i, $c := .}}{{if $i}}<span class="separator">/</span>{{end}}<a href="{{$c.Href}}">{{$c.Label}}</a>{{end -}}
</nav>`))

// RenderSidebar renders the sidebar markup. All text is HTML-escaped.
func RenderSidebar(sections []Section) (string, error) {
	var b strings.Builder
	if err := sidebarTmpl.Execute(&b, sections); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderBreadcrumb renders the breadcrumb markup with "/" separators.
func RenderBreadcrumb(crumbs []Crumb) (string, error) {
	var b strings.Builder
	if err := breadcrumbTmpl.Execute(&b, crumbs); err != nil {
		return "", err
	}
	return b.String(), nil
}
