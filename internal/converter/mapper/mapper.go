// Package mapper holds the static lexical mapping tables consulted by the
// renderers: Python type names, builtin functions and special ("dunder")
// methods mapped to their Java-side spellings, plus the import derivation
// for collection types. All lookups are pure and total.
package mapper

import (
	"sort"
	"strings"
)

// typeMapping maps Python builtin type names to Java type names.
// Tuples are rendered as lists; the distinction is dropped on purpose.
var typeMapping = map[string]string{
	"int":   "int",
	"float": "double",
	"str":   "String",
	"bool":  "boolean",
	"list":  "List",
	"dict":  "Map",
	"tuple": "List",
	"set":   "Set",
	"None":  "null",
	"True":  "true",
	"False": "false",
}

// MapType maps a Python type name to its Java counterpart. Unrecognized
// names map to Object; the function never fails.
func MapType(pythonType string) string {
	if t, ok := typeMapping[pythonType]; ok {
		return t
	}
	return "Object"
}

// functionMapping maps common Python builtins to Java static-call spellings.
var functionMapping = map[string]string{
	"print":     "System.out.println",
	"len":       "Collection.size",
	"range":     "IntStream.range",
	"enumerate": "List.of",
	"zip":       "List.of",
	"sum":       "Collection.sum",
	"max":       "Collections.max",
	"min":       "Collections.min",
	"abs":       "Math.abs",
	"round":     "Math.round",
}

// MapBuiltin maps a Python builtin function name to a Java spelling.
// Unknown names pass through unchanged; most calls are simply copied.
func MapBuiltin(name string) string {
	if f, ok := functionMapping[name]; ok {
		return f
	}
	return name
}

// specialMethods maps Python dunder methods to conventional Java method
// names. All ordering comparisons collapse to compareTo.
var specialMethods = map[string]string{
	"__init__":    "constructor",
	"__str__":     "toString",
	"__repr__":    "toString",
	"__len__":     "size",
	"__getitem__": "get",
	"__setitem__": "set",
	"__iter__":    "iterator",
	"__next__":    "next",
	"__eq__":      "equals",
	"__lt__":      "compareTo",
	"__le__":      "compareTo",
	"__gt__":      "compareTo",
	"__ge__":      "compareTo",
	"__add__":     "plus",
	"__sub__":     "minus",
	"__mul__":     "multiply",
	"__truediv__": "divide",
}

// MapSpecialMethod maps a dunder method name to its Java counterpart,
// falling back to the name itself.
func MapSpecialMethod(name string) string {
	if m, ok := specialMethods[name]; ok {
		return m
	}
	return name
}

// importRequired lists the Java types whose use requires an import line.
var importRequired = map[string]struct{}{
	"List":        {},
	"Map":         {},
	"Set":         {},
	"ArrayList":   {},
	"HashMap":     {},
	"HashSet":     {},
	"Arrays":      {},
	"Collections": {},
	"IntStream":   {},
}

// NeedsImport reports whether a Java type name requires an import line.
func NeedsImport(javaType string) bool {
	_, ok := importRequired[javaType]
	return ok
}

// importsByType pairs each scanned type name with the declarations it pulls
// in (interface plus its default concrete implementation).
var importsByType = map[string][]string{
	"List":        {"import java.util.List;", "import java.util.ArrayList;"},
	"Map":         {"import java.util.Map;", "import java.util.HashMap;"},
	"Set":         {"import java.util.Set;", "import java.util.HashSet;"},
	"Arrays":      {"import java.util.Arrays;"},
	"Collections": {"import java.util.Collections;"},
}

// RequiredImports scans rendered output for Java collection type names and
// returns the import declarations they require, deduplicated and sorted.
// This is substring matching over text, not tree analysis: a string literal
// containing "List" counts as a use. Accepted limitation.
func RequiredImports(rendered string) []string {
	seen := make(map[string]struct{})
	for typeName, decls := range importsByType {
		if strings.Contains(rendered, typeName) {
			for _, d := range decls {
				seen[d] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
