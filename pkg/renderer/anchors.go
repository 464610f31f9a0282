package renderer

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Anchors parses an HTML document and returns the element ids it declares
// and the in-page fragment links it contains, both in document order. A bare
// "#" is a placeholder and is not reported as a fragment link.
func Anchors(r io.Reader) (ids []string, fragmentLinks []string, err error) {
	var doc *html.Node
	doc, err = html.Parse(r)
	if err != nil {
		err = errors.Wrap(err, "failed to parse html")
		return ids, fragmentLinks, err
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				switch {
				case attr.Key == "id" && attr.Val != "":
					ids = append(ids, attr.Val)
				case attr.Key == "href" && n.Data == "a" && strings.HasPrefix(attr.Val, "#") && len(attr.Val) > 1:
					fragmentLinks = append(fragmentLinks, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return ids, fragmentLinks, err
}

// Dangling returns the fragment links whose target id is not declared.
func Dangling(ids []string, fragmentLinks []string) (dangling []string) {
	declared := make(map[string]bool, len(ids))
	for _, id := range ids {
		declared[id] = true
	}

	for _, link := range fragmentLinks {
		if !declared[strings.TrimPrefix(link, "#")] {
			dangling = append(dangling, link)
		}
	}

	return dangling
}
