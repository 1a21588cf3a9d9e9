package pyparse

import "strings"

// ExpandFStrings rewrites f-string literals into parenthesized string
// concatenations: f"Hello, {name}!" becomes ("Hello, " + name + "!").
// Literal fragments keep their original escape spelling; embedded
// expressions are copied verbatim with any :format suffix dropped.
// Sources without f-prefixed strings pass through unchanged.
func ExpandFStrings(source string) string {
	var out strings.Builder
	i := 0
	n := len(source)

	for i < n {
		c := source[i]

		// Comments run to end of line and may contain quote characters.
		if c == '#' {
			j := strings.IndexByte(source[i:], '\n')
			if j < 0 {
				out.WriteString(source[i:])
				break
			}
			out.WriteString(source[i : i+j+1])
			i += j + 1
			continue
		}

		if p := stringPrefixLen(source, i); p >= 0 && !identBefore(source, i) {
			prefix := source[i : i+p]
			if (prefix == "f" || prefix == "F") && !tripleQuoted(source, i+p) {
				end, body, quote := scanStringBody(source, i+p)
				out.WriteString(expandOne(body, quote))
				i = end
				continue
			}
			end := skipString(source, i+p)
			out.WriteString(source[i:end])
			i = end
			continue
		}

		if isQuote(c) {
			end := skipString(source, i)
			out.WriteString(source[i:end])
			i = end
			continue
		}

		out.WriteByte(c)
		i++
	}

	return out.String()
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// identBefore reports whether position i sits inside an identifier, which
// rules out treating the letters at i as a string prefix (e.g. "shelf'").
func identBefore(source string, i int) bool {
	return i > 0 && isIdentChar(source[i-1])
}

// stringPrefixLen returns the length of the string-prefix letters (r, b, u,
// f in any case, up to two of them) at position i when they are immediately
// followed by a quote, or -1 when there is no prefixed string here.
func stringPrefixLen(source string, i int) int {
	n := len(source)
	p := 0
	for i+p < n && p < 2 && strings.IndexByte("rbufRBUF", source[i+p]) >= 0 {
		p++
	}
	if p == 0 || i+p >= n || !isQuote(source[i+p]) {
		return -1
	}
	return p
}

func tripleQuoted(source string, i int) bool {
	q := source[i]
	return i+2 < len(source) && source[i+1] == q && source[i+2] == q
}

// skipString consumes a plain (or triple-quoted) string literal starting at
// the opening quote and returns the index just past the closing quote.
func skipString(source string, i int) int {
	quote := source[i]
	n := len(source)

	if tripleQuoted(source, i) {
		j := i + 3
		for j+2 < n {
			if source[j] == '\\' {
				j += 2
				continue
			}
			if source[j] == quote && source[j+1] == quote && source[j+2] == quote {
				return j + 3
			}
			j++
		}
		return n
	}

	j := i + 1
	for j < n {
		if source[j] == '\\' {
			j += 2
			continue
		}
		if source[j] == quote {
			return j + 1
		}
		j++
	}
	return n
}

// scanStringBody consumes the single-quoted string literal starting at the
// opening quote (position i) and returns the index past the closing quote,
// the raw body between the quotes, and the quote character.
func scanStringBody(source string, i int) (end int, body string, quote byte) {
	quote = source[i]
	end = skipString(source, i)
	if end-1 > i && source[end-1] == quote {
		body = source[i+1 : end-1]
	} else {
		body = source[i+1 : end]
	}
	return end, body, quote
}

// expandOne turns one f-string body into a parenthesized concatenation.
// Braces split the body into literal fragments (re-quoted) and embedded
// expressions (verbatim, :format suffix stripped); {{ and }} are literal
// braces.
func expandOne(body string, quote byte) string {
	var parts []string
	var lit strings.Builder
	n := len(body)
	i := 0

	flushLit := func() {
		if lit.Len() > 0 {
			parts = append(parts, string(quote)+lit.String()+string(quote))
			lit.Reset()
		}
	}

	for i < n {
		c := body[i]

		if c == '{' && i+1 < n && body[i+1] == '{' {
			lit.WriteByte('{')
			i += 2
			continue
		}
		if c == '}' && i+1 < n && body[i+1] == '}' {
			lit.WriteByte('}')
			i += 2
			continue
		}

		if c == '{' {
			flushLit()
			depth := 1
			j := i + 1
			for j < n && depth > 0 {
				switch body[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				j++
			}
			expr := body[i+1 : j-1]
			if colon := strings.LastIndexByte(expr, ':'); colon >= 0 && !strings.ContainsAny(expr[colon:], "()[]") {
				expr = expr[:colon]
			}
			parts = append(parts, strings.TrimSpace(expr))
			i = j
			continue
		}

		lit.WriteByte(c)
		i++
	}
	flushLit()

	if len(parts) == 0 {
		return string(quote) + string(quote)
	}
	return "(" + strings.Join(parts, " + ") + ")"
}
