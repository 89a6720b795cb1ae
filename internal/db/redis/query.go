package redis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saintgiong/discovery/internal/domain/search"
)

// BuildQuery translates a composed boolean query into an FT.SEARCH query
// string. A match-all query translates to "*".
func BuildQuery(q search.Query) string {
	if q.IsMatchAll() {
		return "*"
	}

	parts := make([]string, 0, len(q.Must()))
	for _, c := range q.Must() {
		if s := buildClause(c); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "*"
	}

	return strings.Join(parts, " ")
}

func buildClause(c search.Clause) string {
	switch c.Kind() {
	case search.KindFuzzyText:
		return buildFuzzyText(c)
	case search.KindTag:
		return buildTag(c)
	case search.KindAnyTag:
		return buildAnyTag(c)
	case search.KindCountRange:
		return buildCountRange(c)
	case search.KindOrGroup:
		return buildOrGroup(c)
	default:
		return ""
	}
}

// buildFuzzyText emits a per-token fuzzy match over one or more TEXT fields,
// e.g. "@firstName|lastName:(%john% %doe%)". All tokens must match; any
// listed field satisfies a token.
func buildFuzzyText(c search.Clause) string {
	tokens := strings.Fields(c.Text())
	if len(tokens) == 0 || len(c.Fields()) == 0 {
		return ""
	}

	terms := make([]string, len(tokens))
	for i, tok := range tokens {
		terms[i] = "%" + escapeQuery(tok) + "%"
	}

	return fmt.Sprintf("@%s:(%s)", strings.Join(c.Fields(), "|"), strings.Join(terms, " "))
}

func buildTag(c search.Clause) string {
	if len(c.Fields()) == 0 || len(c.Values()) == 0 {
		return ""
	}
	return fmt.Sprintf("@%s:{%s}", c.Fields()[0], tagEscaper.Replace(c.Values()[0]))
}

func buildAnyTag(c search.Clause) string {
	if len(c.Fields()) == 0 || len(c.Values()) == 0 {
		return ""
	}

	escaped := make([]string, len(c.Values()))
	for i, v := range c.Values() {
		escaped[i] = tagEscaper.Replace(v)
	}

	return fmt.Sprintf("@%s:{%s}", c.Fields()[0], strings.Join(escaped, "|"))
}

func buildCountRange(c search.Clause) string {
	if len(c.Fields()) == 0 {
		return ""
	}

	minBound := "-inf"
	maxBound := "+inf"
	if c.Min() != nil {
		minBound = strconv.Itoa(*c.Min())
	}
	if c.Max() != nil {
		maxBound = strconv.Itoa(*c.Max())
	}

	return fmt.Sprintf("@%s:[%s %s]", c.Fields()[0], minBound, maxBound)
}

func buildOrGroup(c search.Clause) string {
	parts := make([]string, 0, len(c.Children()))
	for _, child := range c.Children() {
		if s := buildClause(child); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// --- Query helpers ---

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)
