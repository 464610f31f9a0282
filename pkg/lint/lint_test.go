package lint

import (
	"testing"

	"github.com/nikogura/portfolio/pkg/content"
)

func cleanInput() (input Input) {
	input = Input{
		Model: content.Model{
			Projects: []content.Project{
				{Title: "A", Tags: []string{"Go"}, LiveURL: "https://a.dev", RepoURL: "https://github.com/x/a"},
				{Title: "B", Tags: []string{"Rust"}, LiveURL: "https://b.dev", RepoURL: "https://github.com/x/b"},
			},
			Skills: content.Skills{
				{Name: "Languages", Skills: []string{"Go", "Rust"}},
			},
		},
		SectionIDs: []string{"about", "projects", "skills"},
		NavLinks: []content.NavLink{
			{Href: "#about", Label: "About"},
			{Href: "#projects", Label: "Projects"},
			{Href: "#skills", Label: "Skills"},
		},
	}
	return input
}

func rulesOf(report Report) (names []string) {
	for _, v := range report.Violations {
		names = append(names, v.Rule)
	}
	return names
}

func TestCheckClean(t *testing.T) {
	report := Check(cleanInput())

	if len(report.Violations) != 0 {
		t.Errorf("Expected no violations, got %v", rulesOf(report))
	}

	if report.Score != 100 {
		t.Errorf("Expected score 100, got %d", report.Score)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		want   string
	}{
		{
			name:   "duplicate project title",
			mutate: func(in *Input) { in.Model.Projects[1].Title = "A" },
			want:   DuplicateProjectTitle,
		},
		{
			name:   "duplicate section id",
			mutate: func(in *Input) { in.SectionIDs = append(in.SectionIDs, "about") },
			want:   DuplicateSectionID,
		},
		{
			name:   "dangling nav link",
			mutate: func(in *Input) { in.NavLinks = append(in.NavLinks, content.NavLink{Href: "#talks", Label: "Talks"}) },
			want:   DanglingNavLink,
		},
		{
			name:   "duplicate tag",
			mutate: func(in *Input) { in.Model.Projects[0].Tags = []string{"Go", "Go"} },
			want:   DuplicateTag,
		},
		{
			name:   "duplicate skill",
			mutate: func(in *Input) { in.Model.Skills[0].Skills = []string{"Go", "Go", "Go"} },
			want:   DuplicateSkill,
		},
		{
			name:   "empty skill category",
			mutate: func(in *Input) { in.Model.Skills[0].Skills = nil },
			want:   EmptySkillCategory,
		},
		{
			name:   "placeholder link",
			mutate: func(in *Input) { in.Model.Projects[0].LiveURL = "#" },
			want:   PlaceholderLink,
		},
		{
			name: "unknown extra icon",
			mutate: func(in *Input) {
				in.Model.Extras = []content.Section{{ID: "talks", Title: "Talks", Icon: "rocket"}}
				in.SectionIDs = append(in.SectionIDs, "talks")
			},
			want: UnknownIcon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := cleanInput()
			tt.mutate(&input)

			report := Check(input)
			if len(report.Violations) != 1 {
				t.Fatalf("Expected exactly 1 violation, got %v", rulesOf(report))
			}

			if report.Violations[0].Rule != tt.want {
				t.Errorf("Expected rule %s, got %s", tt.want, report.Violations[0].Rule)
			}

			if report.Score != 100-Rules[tt.want].Weight {
				t.Errorf("Expected score %d, got %d", 100-Rules[tt.want].Weight, report.Score)
			}
		})
	}
}

func TestHasCritical(t *testing.T) {
	input := cleanInput()
	if Check(input).HasCritical() {
		t.Error("Expected no critical violations for clean input")
	}

	input.SectionIDs = append(input.SectionIDs, "skills")
	if !Check(input).HasCritical() {
		t.Error("Expected duplicate section id to be critical")
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	input := cleanInput()
	for i := 0; i < 10; i++ {
		input.SectionIDs = append(input.SectionIDs, "about")
	}

	report := Check(input)
	if report.Score != 0 {
		t.Errorf("Expected score 0, got %d", report.Score)
	}
}

func TestDefaultContentPlaceholders(t *testing.T) {
	model := content.Default()
	report := Check(Input{Model: model, SectionIDs: []string{"about", "projects", "skills"}})

	// Every sample project uses "#" for both links.
	if len(report.Violations) != 2*len(model.Projects) {
		t.Errorf("Expected %d placeholder violations, got %v", 2*len(model.Projects), rulesOf(report))
	}
}

func TestKnownExtraIcons(t *testing.T) {
	input := cleanInput()
	input.Model.Extras = []content.Section{
		{ID: "awards", Title: "Awards", Icon: "award"},
		{ID: "notes", Title: "Notes"},
	}
	input.SectionIDs = append(input.SectionIDs, "awards", "notes")

	report := Check(input)
	if len(report.Violations) != 0 {
		t.Errorf("Expected no violations for known or empty icons, got %v", rulesOf(report))
	}
}
