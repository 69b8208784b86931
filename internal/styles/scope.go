package styles

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

const suffixLength = 8

// Scoped is the result of scoping one component stylesheet.
type Scoped struct {
	// CSS is the rewritten stylesheet, empty when the input had no rules.
	CSS string
	// Classes maps each declared class to its replacement name.
	Classes map[string]string
}

type options struct {
	salt string
}

// Option configures Scope.
type Option func(*options)

// WithSalt mixes salt into every suffix. Changing it renames every scoped class.
func WithSalt(salt string) Option {
	return func(o *options) { o.salt = salt }
}

// Suffix returns the hash suffix used for class in component.
func Suffix(component, class, salt string) string {
	sum := sha256.Sum256([]byte(salt + "\x00" + component + "\x00" + class))
	return hex.EncodeToString(sum[:])[:suffixLength]
}

// Scope parses styleText, renames every class selector and returns the rewritten
// stylesheet together with the original to replacement mapping.
func Scope(component, styleText string, opts ...Option) (*Scoped, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	result := &Scoped{Classes: map[string]string{}}
	if strings.TrimSpace(styleText) == "" {
		return result, nil
	}

	sheet, err := parser.Parse(styleText)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "invalid component style").
			WithContext("component", component).
			Build()
	}

	for _, class := range collectClasses(sheet.Rules) {
		result.Classes[class] = class + "-" + Suffix(component, class, o.salt)
	}

	var b strings.Builder
	writeRules(&b, sheet.Rules, result.Classes, 0)
	result.CSS = b.String()
	return result, nil
}

// collectClasses lists declared classes in first-appearance order.
func collectClasses(rules []*css.Rule) []string {
	var classes []string
	seen := map[string]bool{}

	var visit func([]*css.Rule)
	visit = func(rules []*css.Rule) {
		for _, rule := range rules {
			switch {
			case rule.Kind == css.QualifiedRule:
				for _, sel := range rule.Selectors {
					for _, class := range selectorClasses(sel) {
						if !seen[class] {
							seen[class] = true
							classes = append(classes, class)
						}
					}
				}
			case isKeyframes(rule):
				// step selectors, nothing to scope
			case rule.EmbedsRules():
				visit(rule.Rules)
			}
		}
	}
	visit(rules)
	return classes
}

func isKeyframes(rule *css.Rule) bool {
	return rule.Kind == css.AtRule && strings.HasSuffix(strings.ToLower(rule.Name), "keyframes")
}

// selectorClasses returns the class names referenced by a single selector.
func selectorClasses(selector string) []string {
	var classes []string
	s := scanner.New(selector)
	afterDot := false
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF || tok.Type == scanner.TokenError {
			return classes
		}
		if afterDot && tok.Type == scanner.TokenIdent {
			classes = append(classes, tok.Value)
		}
		afterDot = tok.Type == scanner.TokenChar && tok.Value == "."
	}
}

// RewriteSelector renames class tokens of selector found in mapping.
func RewriteSelector(selector string, mapping map[string]string) string {
	var b strings.Builder
	s := scanner.New(selector)
	afterDot := false
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF || tok.Type == scanner.TokenError {
			return strings.TrimSpace(b.String())
		}
		value := tok.Value
		if afterDot && tok.Type == scanner.TokenIdent {
			if renamed, ok := mapping[value]; ok {
				value = renamed
			}
		}
		b.WriteString(value)
		afterDot = tok.Type == scanner.TokenChar && tok.Value == "."
	}
}

// RewriteClassAttr rewrites a class attribute value token by token. Tokens without a
// mapping are kept; separators are normalized to single spaces.
func RewriteClassAttr(value string, mapping map[string]string) string {
	tokens := strings.Fields(value)
	for i, tok := range tokens {
		if renamed, ok := mapping[tok]; ok {
			tokens[i] = renamed
		}
	}
	return strings.Join(tokens, " ")
}
