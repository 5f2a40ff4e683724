package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ReadHTML collects the text of every list item in a page, such as a
// backlog export. Pages without list items fall back to paragraphs.
func ReadHTML(r io.Reader) (*Batch, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	items := collectText(doc, "li")
	if len(items) == 0 {
		items = collectText(doc, "p")
	}
	return &Batch{Items: items}, nil
}

// collectText returns the visible text of every element named tag.
// Nested matches are read as part of their outermost match.
func collectText(root *html.Node, tag string) []string {
	var items []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "template":
				return
			case tag:
				if text := visibleText(n); text != "" {
					items = append(items, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)
	return items
}

// visibleText concatenates the text nodes under n and collapses whitespace
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "template":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}
