package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// cellText flattens a cell's contents into one line: every descendant
// text node trimmed, empty pieces dropped, the rest joined with single
// spaces. Nested links, spans, and line breaks inside a cell all
// collapse the way the source pages render them.
func cellText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*parts = append(*parts, s)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// cellTexts extracts the flattened text of every cell in the row that
// matches the selector, in document order.
func cellTexts(tr *goquery.Selection, selector string) []string {
	var texts []string
	tr.Find(selector).Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, cellText(cell))
	})
	return texts
}
