package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExtractText flattens HTML or inline SVG into whitespace-normalised text.
// Input without markup is returned with whitespace collapsed.
func ExtractText(markup string) (string, error) {
	if !strings.Contains(markup, "<") {
		return strings.Join(strings.Fields(markup), " "), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, title, desc").Remove()

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range doc.Find("body").Nodes {
		walk(node)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " "), nil
}

// IsImageURL reports whether content is an http(s) link rather than inline markup.
func IsImageURL(content string) bool {
	return strings.HasPrefix(content, "http://") || strings.HasPrefix(content, "https://")
}
