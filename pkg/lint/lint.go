// Package lint reports authoring errors in a content model. None of them stop
// a page from rendering; they void the navigation and key-stability
// guarantees the page otherwise gives.
package lint

import (
	"fmt"
	"strings"

	"github.com/nikogura/portfolio/pkg/content"
	"github.com/nikogura/portfolio/pkg/icons"
)

// Input is what the linter inspects.
type Input struct {
	Model      content.Model
	SectionIDs []string
	NavLinks   []content.NavLink
}

// Violation is one broken rule.
type Violation struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Location string `json:"location"`
	Detail   string `json:"detail"`
}

// Report is the outcome of a lint run.
type Report struct {
	Violations []Violation `json:"violations"`
	Score      int         `json:"score"`
}

// HasCritical reports whether any violation is critical.
func (r Report) HasCritical() (critical bool) {
	for _, v := range r.Violations {
		if v.Severity == "critical" {
			critical = true
			return critical
		}
	}
	return critical
}

// Check runs every rule over input. Violations come out in a stable order.
func Check(input Input) (report Report) {
	var violations []Violation
	add := func(rule, location, detail string) {
		violations = append(violations, Violation{
			Rule:     rule,
			Severity: Rules[rule].Severity,
			Location: location,
			Detail:   detail,
		})
	}

	ids := make(map[string]bool, len(input.SectionIDs))
	for _, id := range input.SectionIDs {
		if ids[id] {
			add(DuplicateSectionID, "section "+id, fmt.Sprintf("section id %q is used more than once", id))
		}
		ids[id] = true
	}

	for _, link := range input.NavLinks {
		target := strings.TrimPrefix(link.Href, "#")
		if !ids[target] {
			add(DanglingNavLink, "nav "+link.Label, fmt.Sprintf("link %q has no matching section", link.Href))
		}
	}

	titles := make(map[string]bool, len(input.Model.Projects))
	for i, project := range input.Model.Projects {
		location := fmt.Sprintf("projects[%d]", i)
		if titles[project.Title] {
			add(DuplicateProjectTitle, location, fmt.Sprintf("project title %q is used more than once", project.Title))
		}
		titles[project.Title] = true

		for _, tag := range duplicates(project.Tags) {
			add(DuplicateTag, location, fmt.Sprintf("tag %q repeats in project %q", tag, project.Title))
		}

		if isPlaceholder(project.LiveURL) {
			add(PlaceholderLink, location+".live_url", fmt.Sprintf("project %q has no live link", project.Title))
		}
		if isPlaceholder(project.RepoURL) {
			add(PlaceholderLink, location+".repo_url", fmt.Sprintf("project %q has no source link", project.Title))
		}
	}

	for _, category := range input.Model.Skills {
		location := "skills." + category.Name
		if len(category.Skills) == 0 {
			add(EmptySkillCategory, location, fmt.Sprintf("category %q is empty", category.Name))
		}
		for _, skill := range duplicates(category.Skills) {
			add(DuplicateSkill, location, fmt.Sprintf("skill %q repeats in category %q", skill, category.Name))
		}
	}

	for i, section := range input.Model.Extras {
		if _, ok := icons.Parse(section.Icon); !ok {
			add(UnknownIcon, fmt.Sprintf("extras[%d].icon", i), fmt.Sprintf("icon %q of section %q is unknown", section.Icon, section.Title))
		}
	}

	report = Report{
		Violations: violations,
		Score:      score(violations),
	}
	return report
}

func score(violations []Violation) (total int) {
	total = 100
	for _, v := range violations {
		rule, exists := Rules[v.Rule]
		if !exists {
			continue
		}
		total -= rule.Weight
	}

	if total < 0 {
		total = 0
	}

	return total
}

func duplicates(items []string) (dups []string) {
	seen := make(map[string]int, len(items))
	for _, item := range items {
		seen[item]++
		if seen[item] == 2 {
			dups = append(dups, item)
		}
	}
	return dups
}

func isPlaceholder(href string) (placeholder bool) {
	href = strings.TrimSpace(href)
	placeholder = href == "" || href == "#"
	return placeholder
}
