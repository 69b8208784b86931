package render

import (
	"html/template"
	"strings"

	"git.home.luguber.info/inful/docweaver/internal/config"
	"git.home.luguber.info/inful/docweaver/internal/icon"
)

var buttonsTmpl = template.Must(template.New("buttons").Funcs(template.FuncMap{"icon": icon.HTML}).Parse(
	`{{range .}}<a class="button" href="{{.URL}}" target="_blank" rel="noopener">{{icon .Icon}}<span>{{.Name}}</span></a>{{end}}`))

// ButtonsHTML renders the external link buttons. The result does not depend on the
// page language.
func ButtonsHTML(links []config.Link) (string, error) {
	var b strings.Builder
	if err := buttonsTmpl.Execute(&b, links); err != nil {
		return "", err
	}
	return b.String(), nil
}
