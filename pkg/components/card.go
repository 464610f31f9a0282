package components

import (
	"github.com/nikogura/portfolio/pkg/view"
)

// Card groups children in a keyed container.
func Card(role, key string, children ...*view.Node) (n *view.Node) {
	n = view.Container(role, children...).WithKey(key)
	return n
}

// BadgeList renders items as badges in list order. Each badge is keyed by its
// text, so items should be unique within one list.
func BadgeList(items []string, variant string) (n *view.Node) {
	badges := make([]*view.Node, len(items))
	for i, item := range items {
		badges[i] = view.Badge(item, variant)
	}

	n = view.Container("badges", badges...)
	return n
}
