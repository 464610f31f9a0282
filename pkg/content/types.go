package content

// Model is the complete content of one portfolio page.
type Model struct {
	Lang     string    `yaml:"lang" json:"lang" validate:"required"`
	Profile  Profile   `yaml:"profile" json:"profile"`
	Contact  Contact   `yaml:"contact" json:"contact"`
	Projects []Project `yaml:"projects" json:"projects" validate:"dive"`
	Skills   Skills    `yaml:"skills" json:"skills" validate:"dive"`
	Extras   []Section `yaml:"extras,omitempty" json:"extras,omitempty" validate:"dive"`
	Labels   Labels    `yaml:"labels" json:"labels"`
}

// Profile represents personal information.
type Profile struct {
	Name      string `yaml:"name" json:"name" validate:"required"`
	Title     string `yaml:"title" json:"title" validate:"required"`
	Bio       string `yaml:"bio" json:"bio" validate:"required"`
	About     string `yaml:"about" json:"about" validate:"required"`
	AvatarURL string `yaml:"avatar_url" json:"avatar_url" validate:"required,url"`
}

// Contact holds the outbound contact points.
type Contact struct {
	Email    string `yaml:"email" json:"email" validate:"required,email"`
	GitHub   string `yaml:"github" json:"github" validate:"required,url"`
	LinkedIn string `yaml:"linkedin" json:"linkedin" validate:"required,url"`
}

// MailTo returns the mail link target for the contact email.
func (c Contact) MailTo() (href string) {
	href = "mailto:" + c.Email
	return href
}

// Project represents a showcased project. Title is the rendering key.
// LiveURL and RepoURL may hold a placeholder such as "#".
type Project struct {
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Tags        []string `yaml:"tags" json:"tags"`
	LiveURL     string   `yaml:"live_url" json:"live_url"`
	RepoURL     string   `yaml:"repo_url" json:"repo_url"`
	Image       string   `yaml:"image" json:"image" validate:"required"`
}

// SkillCategory is one named group of skills.
type SkillCategory struct {
	Name   string   `yaml:"name" json:"name" validate:"required"`
	Skills []string `yaml:"skills" json:"skills"`
}

// Skills is an ordered mapping of category name to skill names. In a content
// file it is written as a YAML mapping; document order is kept.
type Skills []SkillCategory

// Section is an optional extra static section placed after the skills.
type Section struct {
	ID         string   `yaml:"id,omitempty" json:"id,omitempty"`
	Title      string   `yaml:"title" json:"title" validate:"required"`
	Icon       string   `yaml:"icon,omitempty" json:"icon,omitempty"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs"`
	Nav        bool     `yaml:"nav,omitempty" json:"nav,omitempty"`
}

// NavLink is an in-page navigation target.
type NavLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Labels holds every fixed user-visible string on the page.
type Labels struct {
	NavAbout      string `yaml:"nav_about,omitempty" json:"nav_about"`
	NavProjects   string `yaml:"nav_projects,omitempty" json:"nav_projects"`
	NavSkills     string `yaml:"nav_skills,omitempty" json:"nav_skills"`
	AboutTitle    string `yaml:"about_title,omitempty" json:"about_title"`
	ProjectsTitle string `yaml:"projects_title,omitempty" json:"projects_title"`
	SkillsTitle   string `yaml:"skills_title,omitempty" json:"skills_title"`
	ContactCTA    string `yaml:"contact_cta,omitempty" json:"contact_cta"`
	ProjectsCTA   string `yaml:"projects_cta,omitempty" json:"projects_cta"`
	LiveLink      string `yaml:"live_link,omitempty" json:"live_link"`
	SourceLink    string `yaml:"source_link,omitempty" json:"source_link"`
	Rights        string `yaml:"rights,omitempty" json:"rights"`
	Credits       string `yaml:"credits,omitempty" json:"credits"`
}
