// Package optimize post-processes rendered output with a table of named
// text rewriting rules.
package optimize

import (
	"log/slog"
	"regexp"
)

// Rule rewrites rendered output. Rules must be safe on arbitrary text.
type Rule struct {
	Name  string
	Apply func(code string) (string, error)
}

var redundantParens = regexp.MustCompile(`\(\(([^()]+)\)\)`)

// DefaultRules returns the standard rule table in application order.
// Only the parenthesis rule rewrites anything today; the others are
// placeholders keeping their slots in the pipeline.
func DefaultRules() []Rule {
	passthrough := func(code string) (string, error) { return code, nil }
	return []Rule{
		{Name: "remove_redundant_parentheses", Apply: func(code string) (string, error) {
			return redundantParens.ReplaceAllString(code, "($1)"), nil
		}},
		{Name: "simplify_expressions", Apply: passthrough},
		{Name: "optimize_string_concatenation", Apply: passthrough},
		{Name: "remove_unused_imports", Apply: passthrough},
	}
}

// Optimizer applies its rules in order, skipping any that fail.
type Optimizer struct {
	rules []Rule
	log   *slog.Logger
}

// New builds an optimizer with the default rule table. A nil logger falls
// back to slog.Default().
func New(log *slog.Logger) *Optimizer {
	if log == nil {
		log = slog.Default()
	}
	return &Optimizer{rules: DefaultRules(), log: log}
}

// Optimize runs all rules over the code. A failing rule leaves the code
// from the previous rule intact.
func (o *Optimizer) Optimize(code string) string {
	for _, rule := range o.rules {
		out, err := rule.Apply(code)
		if err != nil {
			o.log.Warn("optimizer rule failed", "rule", rule.Name, "error", err)
			continue
		}
		code = out
	}
	return code
}
