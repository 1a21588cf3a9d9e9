package mapper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapType(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"int", "int"},
		{"float", "double"},
		{"str", "String"},
		{"bool", "boolean"},
		{"list", "List"},
		{"dict", "Map"},
		{"tuple", "List"},
		{"set", "Set"},
		{"None", "null"},
		{"True", "true"},
		{"False", "false"},
		{"MyClass", "Object"},
		{"", "Object"},
	}
	for _, c := range cases {
		if got := MapType(c.in); got != c.want {
			t.Errorf("MapType(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMapBuiltin(t *testing.T) {
	if got := MapBuiltin("print"); got != "System.out.println" {
		t.Errorf("MapBuiltin(print) = %q", got)
	}
	if got := MapBuiltin("range"); got != "IntStream.range" {
		t.Errorf("MapBuiltin(range) = %q", got)
	}
	if got := MapBuiltin("my_helper"); got != "my_helper" {
		t.Errorf("MapBuiltin passthrough = %q", got)
	}
}

func TestMapSpecialMethod(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"__init__", "constructor"},
		{"__str__", "toString"},
		{"__repr__", "toString"},
		{"__eq__", "equals"},
		{"__lt__", "compareTo"},
		{"__ge__", "compareTo"},
		{"__truediv__", "divide"},
		{"regular_method", "regular_method"},
	}
	for _, c := range cases {
		if got := MapSpecialMethod(c.in); got != c.want {
			t.Errorf("MapSpecialMethod(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNeedsImport(t *testing.T) {
	for _, name := range []string{"List", "Map", "Set", "ArrayList", "HashMap", "HashSet", "Arrays", "Collections", "IntStream"} {
		if !NeedsImport(name) {
			t.Errorf("NeedsImport(%q) = false", name)
		}
	}
	for _, name := range []string{"String", "int", "Object", ""} {
		if NeedsImport(name) {
			t.Errorf("NeedsImport(%q) = true", name)
		}
	}
}

func TestRequiredImports(t *testing.T) {
	rendered := "List items = Arrays.asList(1, 2, 3);\nMap config = new HashMap<>();\n"
	want := []string{
		"import java.util.ArrayList;",
		"import java.util.Arrays;",
		"import java.util.HashMap;",
		"import java.util.List;",
		"import java.util.Map;",
	}
	got := RequiredImports(rendered)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RequiredImports mismatch (-want +got):\n%s", diff)
	}
}

func TestRequiredImportsEmpty(t *testing.T) {
	if got := RequiredImports("int x = 10;"); len(got) != 0 {
		t.Errorf("RequiredImports on plain code = %v", got)
	}
}

func TestRequiredImportsDeduplicates(t *testing.T) {
	rendered := "List a;\nList b;\nList c;"
	got := RequiredImports(rendered)
	want := []string{"import java.util.ArrayList;", "import java.util.List;"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RequiredImports mismatch (-want +got):\n%s", diff)
	}
}
