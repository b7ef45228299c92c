package textkeys

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLText returns the textual content of an HTML fragment. It does no
// interpretation of layout and styling, but extracts the pure text. Content of
// script and style elements is skipped. Block-level structure is not
// preserved; text nodes are separated by a single space.
func HTMLText(input io.Reader) (string, error) {
	if input == nil {
		return "", ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return b.String(), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	}
	if n.Type == html.TextNode {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
