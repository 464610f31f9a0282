// Package components holds the stateless presentation functions of the page.
// Every function maps content values to a view tree and nothing else.
package components

import (
	"github.com/nikogura/portfolio/pkg/content"
	"github.com/nikogura/portfolio/pkg/icons"
	"github.com/nikogura/portfolio/pkg/view"
)

// Roles of the top-level page regions.
const (
	RoleHeader   = "header"
	RoleMain     = "main"
	RoleHero     = "hero"
	RoleAbout    = "about"
	RoleProjects = "projects"
	RoleSkills   = "skills"
	RoleExtra    = "extra"
	RoleFooter   = "footer"
)

// Section ids used as in-page navigation targets.
const (
	AboutID    = "about"
	ProjectsID = "projects"
	SkillsID   = "skills"
)

// SectionWrapper wraps children in a landmark section addressable by id, with
// a heading made of icon and title.
func SectionWrapper(id, title string, icon icons.ID, children ...*view.Node) (n *view.Node) {
	heading := view.Heading(2, view.Icon(icon), view.Text("section-title", title))

	all := make([]*view.Node, 0, len(children)+1)
	all = append(all, heading)
	all = append(all, children...)

	n = view.Section(id, "section", all...)
	return n
}

// About renders the long-form introduction.
func About(profile content.Profile, labels content.Labels) (n *view.Node) {
	n = SectionWrapper(AboutID, labels.AboutTitle, icons.User,
		view.Text("about-text", profile.About),
	).WithRole(RoleAbout)
	return n
}

// Extra renders an additional static section.
func Extra(section content.Section) (n *view.Node) {
	paragraphs := make([]*view.Node, len(section.Paragraphs))
	for i, paragraph := range section.Paragraphs {
		paragraphs[i] = view.Text("paragraph", paragraph)
	}

	n = SectionWrapper(section.ID, section.Title, icons.ParseOrDefault(section.Icon), paragraphs...).WithRole(RoleExtra)
	return n
}
