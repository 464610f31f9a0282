package lint

// Rule represents an authoring rule.
type Rule struct {
	Name        string
	Category    string // key_stability, navigation, content
	Severity    string // critical, major, minor
	Description string
	Weight      int // Points deducted for violation
}

// Rule names.
const (
	DuplicateSectionID    = "DUPLICATE_SECTION_ID"
	DuplicateProjectTitle = "DUPLICATE_PROJECT_TITLE"
	DanglingNavLink       = "DANGLING_NAV_LINK"
	DuplicateTag          = "DUPLICATE_TAG"
	DuplicateSkill        = "DUPLICATE_SKILL"
	EmptySkillCategory    = "EMPTY_SKILL_CATEGORY"
	PlaceholderLink       = "PLACEHOLDER_LINK"
	UnknownIcon           = "UNKNOWN_ICON"
)

//nolint:gochecknoglobals // Lint configuration constants
var Rules = map[string]Rule{
	// Key stability rules
	DuplicateSectionID: {
		Name:        DuplicateSectionID,
		Category:    "navigation",
		Severity:    "critical",
		Description: "Two sections share an id, so in-page navigation cannot reach both",
		Weight:      30,
	},
	DuplicateProjectTitle: {
		Name:        DuplicateProjectTitle,
		Category:    "key_stability",
		Severity:    "major",
		Description: "Two projects share a title, which is their rendering key",
		Weight:      20,
	},
	DuplicateTag: {
		Name:        DuplicateTag,
		Category:    "key_stability",
		Severity:    "minor",
		Description: "A project lists the same tag twice",
		Weight:      5,
	},
	DuplicateSkill: {
		Name:        DuplicateSkill,
		Category:    "key_stability",
		Severity:    "minor",
		Description: "A skill category lists the same skill twice",
		Weight:      5,
	},

	// Navigation rules
	DanglingNavLink: {
		Name:        DanglingNavLink,
		Category:    "navigation",
		Severity:    "major",
		Description: "A navigation link targets a fragment no section carries",
		Weight:      20,
	},

	// Content rules
	EmptySkillCategory: {
		Name:        EmptySkillCategory,
		Category:    "content",
		Severity:    "minor",
		Description: "A skill category has no skills",
		Weight:      5,
	},
	PlaceholderLink: {
		Name:        PlaceholderLink,
		Category:    "content",
		Severity:    "minor",
		Description: "A project link is a placeholder and navigates nowhere",
		Weight:      2,
	},
	UnknownIcon: {
		Name:        UnknownIcon,
		Category:    "content",
		Severity:    "minor",
		Description: "An extra section names an icon that does not exist and shows the default",
		Weight:      2,
	},
}
