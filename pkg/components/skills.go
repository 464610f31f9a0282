package components

import (
	"github.com/nikogura/portfolio/pkg/content"
	"github.com/nikogura/portfolio/pkg/icons"
	"github.com/nikogura/portfolio/pkg/view"
)

// SkillsBlock renders each category label followed by its skill badges.
// Category order and skill order follow the input exactly.
func SkillsBlock(skills content.Skills) (n *view.Node) {
	blocks := make([]*view.Node, len(skills))
	for i, category := range skills {
		blocks[i] = Card("skill-category", category.Name,
			view.Heading(3, view.Text("category-name", category.Name)),
			BadgeList(category.Skills, "outline"),
		)
	}

	n = view.Container("skills-block", blocks...)
	return n
}

// Skills renders the skills section.
func Skills(skills content.Skills, labels content.Labels) (n *view.Node) {
	n = SectionWrapper(SkillsID, labels.SkillsTitle, icons.Lightbulb, SkillsBlock(skills)).WithRole(RoleSkills)
	return n
}
