package optimize

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRedundantParentheses(t *testing.T) {
	o := New(quiet())
	cases := []struct {
		in, want string
	}{
		{"x = ((a + b));", "x = (a + b);"},
		{"x = (a + b);", "x = (a + b);"},
		{"System.out.println(((\"hi\")));", "System.out.println((\"hi\"));"},
		{"plain text", "plain text"},
	}
	for _, c := range cases {
		if got := o.Optimize(c.in); got != c.want {
			t.Errorf("Optimize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFailingRuleSkipped(t *testing.T) {
	o := &Optimizer{
		log: quiet(),
		rules: []Rule{
			{Name: "boom", Apply: func(string) (string, error) { return "", errors.New("boom") }},
			{Name: "suffix", Apply: func(code string) (string, error) { return code + ";", nil }},
		},
	}
	if got := o.Optimize("x"); got != "x;" {
		t.Errorf("Optimize = %q, want failing rule skipped", got)
	}
}

func TestDefaultRuleOrder(t *testing.T) {
	rules := DefaultRules()
	want := []string{
		"remove_redundant_parentheses",
		"simplify_expressions",
		"optimize_string_concatenation",
		"remove_unused_imports",
	}
	if len(rules) != len(want) {
		t.Fatalf("rule count = %d", len(rules))
	}
	for i, r := range rules {
		if r.Name != want[i] {
			t.Errorf("rule[%d] = %q, want %q", i, r.Name, want[i])
		}
	}
}
