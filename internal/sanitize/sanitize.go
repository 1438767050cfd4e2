// Package sanitize cleans free-form user fields before they reach a prompt.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
)

// Text strips markup from s and collapses whitespace to single spaces.
// Content of script, style and noscript elements is dropped.
func Text(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return compactWhitespace(s)
	}
	node, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return compactWhitespace(s)
	}
	var b strings.Builder
	extractText(node, &b, false)
	return compactWhitespace(b.String())
}

// Truncate cuts s to at most limit runes.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit]))
}

func extractText(n *html.Node, b *strings.Builder, inHidden bool) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript":
			inHidden = true
		case "br", "p", "div", "li", "tr":
			b.WriteString(" ")
		}
	}
	if !inHidden && n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, b, inHidden)
	}
}

func compactWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
