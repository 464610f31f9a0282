package icons

import (
	"strings"
)

// ID identifies an icon.
type ID string

// Icons referenced by the page.
const (
	Code         ID = "code"
	GitHub       ID = "github"
	LinkedIn     ID = "linkedin"
	Mail         ID = "mail"
	ExternalLink ID = "external-link"
	Briefcase    ID = "briefcase"
	User         ID = "user"
	Lightbulb    ID = "lightbulb"
	Menu         ID = "menu"
	Theme        ID = "theme"
	Sparkle      ID = "sparkle"
	Book         ID = "book"
	Award        ID = "award"
)

// lucideNames maps every known icon to its Lucide name.
//
//nolint:gochecknoglobals // Icon catalog
var lucideNames = map[ID]string{
	Code:         "code",
	GitHub:       "github",
	LinkedIn:     "linkedin",
	Mail:         "mail",
	ExternalLink: "external-link",
	Briefcase:    "briefcase",
	User:         "user",
	Lightbulb:    "lightbulb",
	Menu:         "menu",
	Theme:        "sun-moon",
	Sparkle:      "sparkle",
	Book:         "book-open",
	Award:        "award",
}

// Parse resolves a user-supplied icon name. Empty names resolve to Sparkle.
func Parse(name string) (id ID, ok bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		id, ok = Sparkle, true
		return id, ok
	}
	_, ok = lucideNames[ID(name)]
	if ok {
		id = ID(name)
	}
	return id, ok
}

// ParseOrDefault resolves an icon name, falling back to Sparkle.
func ParseOrDefault(name string) (id ID) {
	id, ok := Parse(name)
	if !ok {
		id = Sparkle
	}
	return id
}

// LucideNameOrDefault provides a stable Lucide name even when the id is unknown.
func LucideNameOrDefault(id ID) (name string) {
	name, ok := lucideNames[id]
	if !ok {
		name = lucideNames[Sparkle]
	}
	return name
}
