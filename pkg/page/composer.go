// Package page composes the full portfolio page from a content model.
package page

import (
	"time"

	"github.com/nikogura/portfolio/pkg/components"
	"github.com/nikogura/portfolio/pkg/content"
	"github.com/nikogura/portfolio/pkg/header"
	"github.com/nikogura/portfolio/pkg/view"
)

// RolePage is the role of the composed root.
const RolePage = "page"

// Options are the per-deployment extension points of the page.
type Options struct {
	// ThemeToggle reserves a slot in the header for a theme control.
	ThemeToggle bool
	// Year printed in the footer. Zero means the current year at New.
	Year int
}

// Composer turns one content model into the page tree. It never changes after
// New and may be shared between goroutines.
type Composer struct {
	model content.Model
	opts  Options
	links []content.NavLink
}

// New builds a Composer for model.
func New(model content.Model, opts Options) (c *Composer) {
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}

	c = &Composer{
		model: model,
		opts:  opts,
		links: buildNavLinks(model),
	}
	return c
}

func buildNavLinks(model content.Model) (links []content.NavLink) {
	links = []content.NavLink{
		{Href: "#" + components.AboutID, Label: model.Labels.NavAbout},
		{Href: "#" + components.ProjectsID, Label: model.Labels.NavProjects},
		{Href: "#" + components.SkillsID, Label: model.Labels.NavSkills},
	}

	for _, section := range model.Extras {
		if section.Nav {
			links = append(links, content.NavLink{Href: "#" + section.ID, Label: section.Title})
		}
	}

	return links
}

// Model returns the content model the page is built from.
func (c *Composer) Model() (model content.Model) {
	model = c.model
	return model
}

// Options returns the composer options.
func (c *Composer) Options() (opts Options) {
	opts = c.opts
	return opts
}

// NavLinks returns the navigation links in display order.
func (c *Composer) NavLinks() (links []content.NavLink) {
	links = make([]content.NavLink, len(c.links))
	copy(links, c.links)
	return links
}

// SectionIDs returns the ids of the addressable sections in page order.
func (c *Composer) SectionIDs() (ids []string) {
	ids = []string{components.AboutID, components.ProjectsID, components.SkillsID}
	for _, section := range c.model.Extras {
		ids = append(ids, section.ID)
	}
	return ids
}

// HeaderProps returns the props the page header is rendered with.
func (c *Composer) HeaderProps() (props header.Props) {
	props = header.Props{
		Name:        c.model.Profile.Name,
		Contact:     c.model.Contact,
		Links:       c.NavLinks(),
		ThemeToggle: c.opts.ThemeToggle,
	}
	return props
}

// Compose builds the page for the given menu state: header, then hero,
// about, projects, skills and any extra sections, then footer.
func (c *Composer) Compose(state header.State) (root *view.Node) {
	m := c.model

	sections := []*view.Node{
		components.Hero(m.Profile, m.Contact, m.Labels),
		components.About(m.Profile, m.Labels),
		components.Projects(m.Projects, m.Labels),
		components.Skills(m.Skills, m.Labels),
	}
	for _, extra := range m.Extras {
		sections = append(sections, components.Extra(extra))
	}

	root = view.Container(RolePage,
		header.Render(c.HeaderProps(), state),
		view.Container(components.RoleMain, sections...),
		components.Footer(m.Profile.Name, c.opts.Year, m.Labels),
	)
	return root
}
