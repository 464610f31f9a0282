// Package renderer turns view trees into HTML and writes pages to disk.
package renderer

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/nikogura/portfolio/pkg/icons"
	"github.com/nikogura/portfolio/pkg/view"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Meta is the document-level information of a page.
type Meta struct {
	Lang        string
	Title       string
	Description string
	Stylesheets []string
	Scripts     []string
}

//nolint:gochecknoglobals // Element mapping
var containerTags = map[string]string{
	"header":      "header",
	"main":        "main",
	"footer":      "footer",
	"desktop-nav": "nav",
	"mobile-nav":  "nav",
}

// Node renders a view tree as an HTML fragment.
func Node(tree *view.Node) (component templ.Component) {
	component = templ.ComponentFunc(func(_ context.Context, w io.Writer) (err error) {
		err = html.Render(w, Build(tree))
		if err != nil {
			err = errors.Wrap(err, "failed to render html fragment")
			return err
		}
		return err
	})
	return component
}

// Page renders a view tree as a complete HTML document.
func Page(tree *view.Node, meta Meta) (component templ.Component) {
	component = templ.ComponentFunc(func(_ context.Context, w io.Writer) (err error) {
		err = html.Render(w, Document(tree, meta))
		if err != nil {
			err = errors.Wrap(err, "failed to render html document")
			return err
		}
		return err
	})
	return component
}

// RenderString renders a component to a string.
func RenderString(ctx context.Context, component templ.Component) (out string, err error) {
	var b strings.Builder
	err = component.Render(ctx, &b)
	if err != nil {
		err = errors.Wrap(err, "failed to render component")
		return out, err
	}
	out = b.String()
	return out, err
}

// Document builds the HTML document tree for a page.
func Document(tree *view.Node, meta Meta) (doc *html.Node) {
	doc = &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element("html", optional("lang", meta.Lang)...)
	doc.AppendChild(root)

	head := element("head")
	appendBlock(head, element("meta", attr("charset", "utf-8")))
	appendBlock(head, element("meta",
		attr("name", "viewport"),
		attr("content", "width=device-width, initial-scale=1"),
	))
	title := element("title")
	title.AppendChild(text(meta.Title))
	appendBlock(head, title)
	if meta.Description != "" {
		appendBlock(head, element("meta", attr("name", "description"), attr("content", meta.Description)))
	}
	for _, href := range meta.Stylesheets {
		appendBlock(head, element("link", attr("rel", "stylesheet"), attr("href", safeURL(href))))
	}

	body := element("body")
	appendBlock(body, Build(tree))
	for _, src := range meta.Scripts {
		appendBlock(body, element("script", attr("defer", ""), attr("src", safeURL(src))))
	}

	root.AppendChild(text("\n"))
	appendBlock(root, head)
	appendBlock(root, body)

	return doc
}

// Build maps a view tree to an HTML element tree.
func Build(tree *view.Node) (n *html.Node) {
	n = build(tree, false)
	return n
}

func build(v *view.Node, inline bool) (n *html.Node) {
	switch v.Kind {
	case view.KindContainer:
		tag, ok := containerTags[v.Role]
		if !ok {
			tag = "div"
		}
		n = element(tag, common(v)...)
		appendChildren(n, v, false)

	case view.KindSection:
		n = element("section", append(optional("id", v.ID), optional("class", v.Role)...)...)
		n.AppendChild(text("\n"))
		appendChildren(n, v, false)

	case view.KindHeading:
		n = element("h" + strconv.Itoa(clampLevel(v.Level)))
		appendChildren(n, v, true)

	case view.KindText:
		tag := "p"
		if inline {
			tag = "span"
		}
		n = element(tag, optional("class", v.Role)...)
		n.AppendChild(text(v.Text))

	case view.KindImage:
		attrs := optional("class", v.Role)
		attrs = append(attrs, optional("src", safeURL(v.Src))...)
		attrs = append(attrs, attr("alt", v.Alt), attr("loading", "lazy"))
		n = element("img", attrs...)

	case view.KindLink:
		attrs := append(common(v), optional("href", safeURL(v.Href))...)
		if v.External {
			attrs = append(attrs, attr("target", "_blank"), attr("rel", "noreferrer"))
		}
		n = element("a", attrs...)
		appendChildren(n, v, true)

	case view.KindButton:
		// With a fallback href the control still works without a script.
		if v.Href != "" {
			attrs := append(common(v), attr("href", safeURL(v.Href)), attr("role", "button"))
			n = element("a", attrs...)
		} else {
			n = element("button", append(common(v), attr("type", "button"))...)
		}
		appendChildren(n, v, true)

	case view.KindIcon:
		n = element("i", attr("data-lucide", icons.LucideNameOrDefault(v.Icon)), attr("aria-hidden", "true"))

	case view.KindBadge:
		class := "badge"
		if v.Variant != "" {
			class += " badge-" + v.Variant
		}
		n = element("span", attr("class", class))
		n.AppendChild(text(v.Text))

	case view.KindSlot:
		n = element("div", optional("data-slot", v.Role)...)

	default:
		n = element("div")
	}

	return n
}

func appendChildren(parent *html.Node, v *view.Node, inline bool) {
	for _, child := range v.Children {
		if inline || !isBlock(child.Kind) {
			parent.AppendChild(build(child, inline))
			continue
		}
		appendBlock(parent, build(child, false))
	}
}

// appendBlock appends child followed by a line break.
func appendBlock(parent, child *html.Node) {
	parent.AppendChild(child)
	parent.AppendChild(text("\n"))
}

func isBlock(kind view.Kind) (block bool) {
	switch kind {
	case view.KindContainer, view.KindSection, view.KindHeading, view.KindText:
		block = true
	}
	return block
}

// common returns the class, key and event attributes of v.
func common(v *view.Node) (attrs []html.Attribute) {
	class := v.Role
	if v.Variant != "" {
		class = strings.TrimSpace(class + " variant-" + v.Variant)
	}
	attrs = optional("class", class)
	attrs = append(attrs, optional("data-key", v.Key)...)
	attrs = append(attrs, optional("data-event", v.Event)...)
	return attrs
}

func element(tag string, attrs ...html.Attribute) (n *html.Node) {
	n = &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	return n
}

func text(data string) (n *html.Node) {
	n = &html.Node{Type: html.TextNode, Data: data}
	return n
}

func attr(key, val string) (a html.Attribute) {
	a = html.Attribute{Key: key, Val: val}
	return a
}

// optional yields the attribute only when val is set.
func optional(key, val string) (attrs []html.Attribute) {
	if val != "" {
		attrs = []html.Attribute{attr(key, val)}
	}
	return attrs
}

// safeURL replaces URLs with unsafe schemes such as javascript:.
func safeURL(href string) (safe string) {
	if href == "" {
		return safe
	}
	safe = string(templ.URL(href))
	return safe
}

func clampLevel(level int) (clamped int) {
	clamped = level
	if clamped < 1 {
		clamped = 1
	}
	if clamped > 6 {
		clamped = 6
	}
	return clamped
}
