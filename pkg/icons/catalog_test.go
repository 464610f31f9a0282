package icons

import "testing"

func TestConstantsHaveLucideNames(t *testing.T) {
	ids := []ID{Code, GitHub, LinkedIn, Mail, ExternalLink, Briefcase, User, Lightbulb, Menu, Theme, Sparkle, Book, Award}
	for _, id := range ids {
		if _, ok := lucideNames[id]; !ok {
			t.Errorf("Expected Lucide name for icon %s", id)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		want   ID
		wantOK bool
	}{
		{name: "", want: Sparkle, wantOK: true},
		{name: "Award", want: Award, wantOK: true},
		{name: " book ", want: Book, wantOK: true},
		{name: "unknown", want: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parse(%q): expected (%s, %v), got (%s, %v)", tt.name, tt.want, tt.wantOK, got, ok)
		}
	}

	if ParseOrDefault("unknown") != Sparkle {
		t.Error("Expected unknown icon names to fall back to Sparkle")
	}
}

func TestLucideNameOrDefault(t *testing.T) {
	if LucideNameOrDefault(Theme) != "sun-moon" {
		t.Errorf("Expected 'sun-moon', got '%s'", LucideNameOrDefault(Theme))
	}

	if LucideNameOrDefault(ID("nope")) != "sparkle" {
		t.Errorf("Expected 'sparkle', got '%s'", LucideNameOrDefault(ID("nope")))
	}
}
