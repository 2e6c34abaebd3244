// Package format turns backend text into page markup.
//
// Description text comes from the site's own backend and may contain HTML.
// It is emitted unescaped: the backend is trusted, and escaping or
// sanitizing here would change what authors see.
package format

import (
	"html/template"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// ExcerptLength is the number of runes shown on a card
const ExcerptLength = 100

var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// Description renders line breaks as <br /> and bare URLs as links that
// open in a new tab.
func Description(text string) template.HTML {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = Linkify(strings.TrimSuffix(line, "\r"))
	}
	return template.HTML(strings.Join(lines, "<br />"))
}

// Linkify wraps every bare http(s) URL in line with an anchor. URLs in an
// attribute value or inside an existing <a> element are left alone.
func Linkify(line string) string {
	var b strings.Builder
	last := 0
	for _, m := range urlPattern.FindAllStringIndex(line, -1) {
		start, end := m[0], m[1]
		if inAttribute(line[:start]) || inAnchor(line[:start]) {
			continue
		}
		u := line[start:end]
		b.WriteString(line[last:start])
		b.WriteString(`<a href="` + u + `" target="_blank" rel="noopener noreferrer">` + u + `</a>`)
		last = end
	}
	b.WriteString(line[last:])
	return b.String()
}

// inAttribute reports whether before ends with an opening attribute quote,
// as in href=" or src = '
func inAttribute(before string) bool {
	if before == "" {
		return false
	}
	if q := before[len(before)-1]; q != '"' && q != '\'' {
		return false
	}
	return strings.HasSuffix(strings.TrimRight(before[:len(before)-1], " \t"), "=")
}

// inAnchor reports whether before leaves an <a> element open
func inAnchor(before string) bool {
	lower := strings.ToLower(before)
	open := max(strings.LastIndex(lower, "<a "), strings.LastIndex(lower, "<a>"))
	return open >= 0 && open > strings.LastIndex(lower, "</a>")
}

// Excerpt shortens text to n runes, marking the cut with "..."
func Excerpt(text string, n int) string {
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "..."
}

// Date formats t the way cards show it, e.g. "May 1, 2024"
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
