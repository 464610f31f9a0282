package components

import (
	"github.com/nikogura/portfolio/pkg/content"
	"github.com/nikogura/portfolio/pkg/icons"
	"github.com/nikogura/portfolio/pkg/view"
)

// ProjectCard renders one project. Links are emitted as given; a placeholder
// target such as "#" still yields a link.
func ProjectCard(project content.Project, labels content.Labels) (n *view.Node) {
	n = Card("project-card", project.Title,
		view.Image("project-image", project.Image, project.Title),
		view.Heading(3, view.Text("project-title", project.Title)),
		view.Text("project-description", project.Description),
		BadgeList(project.Tags, "secondary"),
		view.Container("project-links",
			view.ExternalLink(project.LiveURL,
				view.Icon(icons.ExternalLink),
				view.Text("", labels.LiveLink),
			).WithRole("live-link").WithVariant("outline"),
			view.ExternalLink(project.RepoURL,
				view.Icon(icons.GitHub),
				view.Text("", labels.SourceLink),
			).WithRole("repo-link"),
		),
	)
	return n
}

// Projects renders the project gallery, one card per project in input order.
func Projects(projects []content.Project, labels content.Labels) (n *view.Node) {
	cards := make([]*view.Node, len(projects))
	for i, project := range projects {
		cards[i] = ProjectCard(project, labels)
	}

	n = SectionWrapper(ProjectsID, labels.ProjectsTitle, icons.Briefcase,
		view.Container("project-grid", cards...),
	).WithRole(RoleProjects)
	return n
}
