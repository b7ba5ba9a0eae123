package feed

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	PreviewLength           = 100
	DetailDescriptionLength = 200
	ellipsis                = "..."
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// entityReplacer decodes the entities the news CMS emits in a single pass,
// so "&amp;lt;" becomes "&lt;" and not "<".
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&#039;", "'",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&mdash;", "—",
	"&ndash;", "–",
	"&amp;", "&",
)

// SanitizeContent strips markup, decodes common entities and collapses whitespace.
func SanitizeContent(raw string) string {
	s := tagPattern.ReplaceAllString(raw, " ")
	s = entityReplacer.Replace(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Truncate cuts text to n characters and appends an ellipsis when it was longer.
func Truncate(text string, n int) string {
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:n]), " ") + ellipsis
}

// Preview is the sanitized, truncated text shown on article cards.
func Preview(description string, n int) string {
	return Truncate(SanitizeContent(description), n)
}
