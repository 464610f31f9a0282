package components

import (
	"fmt"

	"github.com/nikogura/portfolio/pkg/content"
	"github.com/nikogura/portfolio/pkg/icons"
	"github.com/nikogura/portfolio/pkg/view"
)

// Hero renders the welcome banner: avatar, name, title, bio and the two calls
// to action.
func Hero(profile content.Profile, contact content.Contact, labels content.Labels) (n *view.Node) {
	n = view.Section("", RoleHero,
		view.Container("avatar",
			view.Image("avatar-image", profile.AvatarURL, profile.Name),
			view.Text("avatar-fallback", Initial(profile.Name)),
		),
		view.Heading(1, view.Text("name", profile.Name)),
		view.Text("title", profile.Title),
		view.Text("bio", profile.Bio),
		view.Container("cta",
			view.Link(contact.MailTo(),
				view.Icon(icons.Mail),
				view.Text("", labels.ContactCTA),
			).WithRole("contact-cta"),
			view.Link("#"+ProjectsID,
				view.Text("", labels.ProjectsCTA),
			).WithRole("projects-cta").WithVariant("outline"),
		),
	)
	return n
}

// Initial returns the first character of name, or an empty string.
func Initial(name string) (initial string) {
	for _, r := range name {
		initial = string(r)
		return initial
	}
	return initial
}

// Footer renders the copyright line and credits.
func Footer(name string, year int, labels content.Labels) (n *view.Node) {
	n = view.Container(RoleFooter,
		view.Text("copyright", fmt.Sprintf("© %d %s. %s", year, name, labels.Rights)),
		view.Text("credits", labels.Credits),
	)
	return n
}
