package header

import (
	"github.com/nikogura/portfolio/pkg/content"
	"github.com/nikogura/portfolio/pkg/icons"
	"github.com/nikogura/portfolio/pkg/view"
)

// Roles emitted by the header.
const (
	RoleHeader      = "header"
	RoleDesktopNav  = "desktop-nav"
	RoleMobileNav   = "mobile-nav"
	RoleMenuToggle  = "menu-toggle"
	RoleThemeToggle = "theme-toggle"
)

// Props is everything the header reads.
type Props struct {
	Name        string
	Contact     content.Contact
	Links       []content.NavLink
	ThemeToggle bool
}

// Render builds the header for state. The mobile navigation panel is part of
// the output only while the menu is Open.
func Render(props Props, state State) (n *view.Node) {
	desktop := make([]*view.Node, len(props.Links))
	for i, link := range props.Links {
		desktop[i] = navLink(link)
	}

	var themeSlot *view.Node
	if props.ThemeToggle {
		themeSlot = view.Slot(RoleThemeToggle)
	}

	toggle := view.Button(ToggleEventName, view.Icon(icons.Menu)).WithRole(RoleMenuToggle)
	// Without a script the toggle falls back to a link to the next state.
	toggle.Href = "?menu=" + Transition(state, Toggle).String()

	var panel *view.Node
	if state == Open {
		// Without a script a mobile link reloads the page closed, then scrolls.
		closed := "?menu=" + Transition(state, Navigate).String()
		mobile := make([]*view.Node, len(props.Links))
		for i, link := range props.Links {
			mobile[i] = navLink(link).WithEvent(NavigateEventName)
			mobile[i].Href = closed + link.Href
		}
		panel = view.Container(RoleMobileNav, mobile...)
	}

	n = view.Container(RoleHeader,
		view.Container("header-bar",
			view.Link("/", view.Icon(icons.Code), view.Text("brand-name", props.Name)).WithRole("brand"),
			view.Container(RoleDesktopNav, desktop...),
			view.Container("header-actions",
				view.ExternalLink(props.Contact.GitHub, view.Icon(icons.GitHub)).WithRole("github-link").WithVariant("ghost"),
				view.ExternalLink(props.Contact.LinkedIn, view.Icon(icons.LinkedIn)).WithRole("linkedin-link").WithVariant("ghost"),
				view.Link(props.Contact.MailTo(), view.Icon(icons.Mail)).WithRole("mail-link").WithVariant("ghost"),
				themeSlot,
				toggle,
			),
		),
		panel,
	)
	return n
}

func navLink(link content.NavLink) (n *view.Node) {
	n = view.Link(link.Href, view.Text("", link.Label)).WithKey(link.Href).WithRole("nav-link")
	return n
}

// Header is a mounted header: its props plus the menu it owns.
type Header struct {
	props Props
	menu  *Menu
}

// New mounts a header with the menu Closed.
func New(props Props) (h *Header) {
	h = &Header{props: props, menu: NewMenu()}
	return h
}

// State returns the menu state.
func (h *Header) State() (s State) {
	s = h.menu.State()
	return s
}

// Render builds the header subtree for the current state.
func (h *Header) Render() (n *view.Node) {
	n = Render(h.props, h.menu.State())
	return n
}

// Handle applies a user event and returns the re-rendered subtree.
func (h *Header) Handle(e Event) (n *view.Node) {
	h.menu.Dispatch(e)
	n = h.Render()
	return n
}
