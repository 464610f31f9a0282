// Package view defines the typed tree that page components emit.
//
// A Node is a plain value: containers, sections, headings, text, images,
// links, buttons, icons, badges and reserved slots. Nothing in this package
// knows how a tree is displayed; see package renderer for the HTML surface.
package view

import (
	"reflect"
	"strings"

	"github.com/nikogura/portfolio/pkg/icons"
)

// Kind is the type of a view node.
type Kind string

// Node kinds.
const (
	KindContainer Kind = "container"
	KindSection   Kind = "section"
	KindHeading   Kind = "heading"
	KindText      Kind = "text"
	KindImage     Kind = "image"
	KindLink      Kind = "link"
	KindButton    Kind = "button"
	KindIcon      Kind = "icon"
	KindBadge     Kind = "badge"
	KindSlot      Kind = "slot"
)

// Node is one element of a view tree.
type Node struct {
	Kind Kind
	// Role names what the node is on the page, e.g. "header" or "project-card".
	Role string
	// ID is the in-page address of a section.
	ID string
	// Key identifies a node among its siblings.
	Key      string
	Text     string
	Level    int
	Href     string
	Src      string
	Alt      string
	Icon     icons.ID
	External bool
	Variant  string
	// Event is the input event a control raises when activated.
	Event    string
	Children []*Node
}

// Container groups children under a role.
func Container(role string, children ...*Node) (n *Node) {
	n = &Node{Kind: KindContainer, Role: role, Children: compact(children)}
	return n
}

// Section is a landmark addressable by id.
func Section(id, role string, children ...*Node) (n *Node) {
	n = &Node{Kind: KindSection, ID: id, Role: role, Children: compact(children)}
	return n
}

// Heading is a titled heading of the given level.
func Heading(level int, children ...*Node) (n *Node) {
	n = &Node{Kind: KindHeading, Level: level, Children: compact(children)}
	return n
}

// Text is a run of text.
func Text(role, text string) (n *Node) {
	n = &Node{Kind: KindText, Role: role, Text: text}
	return n
}

// Image is an image with alternative text.
func Image(role, src, alt string) (n *Node) {
	n = &Node{Kind: KindImage, Role: role, Src: src, Alt: alt}
	return n
}

// Link is an in-page link.
func Link(href string, children ...*Node) (n *Node) {
	n = &Node{Kind: KindLink, Href: href, Children: compact(children)}
	return n
}

// ExternalLink opens its target in a new browsing context.
func ExternalLink(href string, children ...*Node) (n *Node) {
	n = Link(href, children...)
	n.External = true
	return n
}

// Button is an interactive control raising event.
func Button(event string, children ...*Node) (n *Node) {
	n = &Node{Kind: KindButton, Event: event, Children: compact(children)}
	return n
}

// Icon draws an icon.
func Icon(id icons.ID) (n *Node) {
	n = &Node{Kind: KindIcon, Icon: id}
	return n
}

// Badge is a short label.
func Badge(text, variant string) (n *Node) {
	n = &Node{Kind: KindBadge, Text: text, Key: text, Variant: variant}
	return n
}

// Slot reserves a place for a control owned elsewhere.
func Slot(role string) (n *Node) {
	n = &Node{Kind: KindSlot, Role: role}
	return n
}

// WithKey sets the sibling key and returns the node.
func (n *Node) WithKey(key string) (self *Node) {
	n.Key = key
	self = n
	return self
}

// WithRole sets the role and returns the node.
func (n *Node) WithRole(role string) (self *Node) {
	n.Role = role
	self = n
	return self
}

// WithVariant sets the variant and returns the node.
func (n *Node) WithVariant(variant string) (self *Node) {
	n.Variant = variant
	self = n
	return self
}

// WithEvent sets the event and returns the node.
func (n *Node) WithEvent(event string) (self *Node) {
	n.Event = event
	self = n
	return self
}

func compact(children []*Node) (out []*Node) {
	for _, child := range children {
		if child != nil {
			out = append(out, child)
		}
	}
	return out
}

// Walk visits n and its descendants depth first in document order. Returning
// false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// FindAll returns every node matching pred in document order.
func FindAll(root *Node, pred func(*Node) bool) (found []*Node) {
	Walk(root, func(n *Node) bool {
		if pred(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// FindRole returns the first node with the given role, or nil.
func FindRole(root *Node, role string) (found *Node) {
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Role == role {
			found = n
			return false
		}
		return true
	})
	return found
}

// ByRole returns every node with the given role.
func ByRole(root *Node, role string) (found []*Node) {
	found = FindAll(root, func(n *Node) bool { return n.Role == role })
	return found
}

// ByKind returns every node of the given kind.
func ByKind(root *Node, kind Kind) (found []*Node) {
	found = FindAll(root, func(n *Node) bool { return n.Kind == kind })
	return found
}

// TextContent concatenates the text of n and its descendants.
func TextContent(n *Node) (text string) {
	var builder strings.Builder
	Walk(n, func(node *Node) bool {
		builder.WriteString(node.Text)
		return true
	})
	text = builder.String()
	return text
}

// Equal reports whether two trees are structurally identical.
func Equal(a, b *Node) (equal bool) {
	equal = reflect.DeepEqual(a, b)
	return equal
}
