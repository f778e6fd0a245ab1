// Package htmltext extracts plain text from HTML documents so they can be
// fed to the sentence pipeline. Block boundaries become line breaks, which
// the paragraph tracker then treats as paragraph boundaries.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "section": {}, "article": {}, "li": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"blockquote": {}, "br": {}, "tr": {}, "pre": {},
}

// Extract parses HTML and returns its visible text. Script and style
// contents are dropped; each block element ends a line.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			if _, ok := blockTags[n.Data]; ok {
				buf.WriteByte('\n')
			}
		}
	}
	walk(doc)

	// Collapse runs of blank lines left by nested blocks.
	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
