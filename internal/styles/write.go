package styles

import (
	"strings"

	"github.com/aymerick/douceur/css"
)

const indentWidth = 2

func writeRules(b *strings.Builder, rules []*css.Rule, mapping map[string]string, depth int) {
	for _, rule := range rules {
		writeRule(b, rule, mapping, depth)
	}
}

func writeRule(b *strings.Builder, rule *css.Rule, mapping map[string]string, depth int) {
	pad := strings.Repeat(" ", depth*indentWidth)
	b.WriteString(pad)

	if rule.Kind == css.QualifiedRule {
		selectors := make([]string, 0, len(rule.Selectors))
		for _, sel := range rule.Selectors {
			selectors = append(selectors, RewriteSelector(sel, mapping))
		}
		b.WriteString(strings.Join(selectors, ", "))
		writeDeclarations(b, rule.Declarations, depth)
		return
	}

	b.WriteString(rule.Name)
	if rule.Prelude != "" {
		b.WriteString(" ")
		b.WriteString(rule.Prelude)
	}

	switch {
	case rule.EmbedsRules():
		b.WriteString(" {\n")
		nested := mapping
		if isKeyframes(rule) {
			nested = nil
		}
		writeRules(b, rule.Rules, nested, depth+1)
		b.WriteString(pad)
		b.WriteString("}\n")
	case len(rule.Declarations) > 0:
		writeDeclarations(b, rule.Declarations, depth)
	default:
		b.WriteString(";\n")
	}
}

func writeDeclarations(b *strings.Builder, decls []*css.Declaration, depth int) {
	pad := strings.Repeat(" ", depth*indentWidth)
	inner := strings.Repeat(" ", (depth+1)*indentWidth)

	b.WriteString(" {\n")
	for _, decl := range decls {
		b.WriteString(inner)
		b.WriteString(decl.String())
		b.WriteString("\n")
	}
	b.WriteString(pad)
	b.WriteString("}\n")
}
