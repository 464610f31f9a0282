package header

import (
	"testing"

	"github.com/nikogura/portfolio/pkg/content"
	"github.com/nikogura/portfolio/pkg/view"
)

func testProps() (props Props) {
	props = Props{
		Name: "Ada",
		Contact: content.Contact{
			Email:    "a@b.com",
			GitHub:   "https://github.com/ada",
			LinkedIn: "https://linkedin.com/in/ada",
		},
		Links: []content.NavLink{
			{Href: "#about", Label: "About"},
			{Href: "#projects", Label: "Projects"},
			{Href: "#skills", Label: "Skills"},
		},
	}
	return props
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name  string
		state State
		event Event
		want  State
	}{
		{name: "toggle opens", state: Closed, event: Toggle, want: Open},
		{name: "toggle closes", state: Open, event: Toggle, want: Closed},
		{name: "navigate closes", state: Open, event: Navigate, want: Closed},
		{name: "navigate keeps closed", state: Closed, event: Navigate, want: Closed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(tt.state, tt.event)
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestToggleRoundTrip(t *testing.T) {
	for _, state := range []State{Closed, Open} {
		got := Transition(Transition(state, Toggle), Toggle)
		if got != state {
			t.Errorf("Expected toggle twice to return %s, got %s", state, got)
		}
	}
}

func TestMenuCycles(t *testing.T) {
	menu := NewMenu()
	if menu.State() != Closed {
		t.Fatalf("Expected new menu to be closed, got %s", menu.State())
	}

	for i := 0; i < 5; i++ {
		if menu.Dispatch(Toggle) != Open {
			t.Fatalf("Cycle %d: expected open", i)
		}
		if menu.Dispatch(Toggle) != Closed {
			t.Fatalf("Cycle %d: expected closed", i)
		}
	}
}

func TestParseState(t *testing.T) {
	if ParseState("open") != Open {
		t.Error("Expected 'open' to parse as Open")
	}
	if ParseState("") != Closed || ParseState("garbage") != Closed {
		t.Error("Expected anything else to parse as Closed")
	}
	if ParseState(Open.String()) != Open || ParseState(Closed.String()) != Closed {
		t.Error("Expected String and ParseState to agree")
	}
}

func TestRenderClosedHasNoMobileNav(t *testing.T) {
	tree := Render(testProps(), Closed)

	if view.FindRole(tree, RoleMobileNav) != nil {
		t.Error("Expected no mobile nav while closed")
	}

	desktop := view.FindRole(tree, RoleDesktopNav)
	if desktop == nil || len(desktop.Children) != 3 {
		t.Fatalf("Expected desktop nav with 3 links, got %+v", desktop)
	}

	toggle := view.FindRole(tree, RoleMenuToggle)
	if toggle == nil || toggle.Event != ToggleEventName || toggle.Href != "?menu=open" {
		t.Errorf("Expected toggle control pointing at the open state, got %+v", toggle)
	}

	mail := view.FindRole(tree, "mail-link")
	if mail == nil || mail.Href != "mailto:a@b.com" {
		t.Errorf("Expected mail link 'mailto:a@b.com', got %+v", mail)
	}

	github := view.FindRole(tree, "github-link")
	if github == nil || !github.External {
		t.Errorf("Expected external GitHub link, got %+v", github)
	}
}

func TestRenderOpenHasMobileNav(t *testing.T) {
	tree := Render(testProps(), Open)

	panel := view.FindRole(tree, RoleMobileNav)
	if panel == nil {
		t.Fatal("Expected mobile nav while open")
	}

	if len(panel.Children) != 3 {
		t.Fatalf("Expected 3 mobile links, got %d", len(panel.Children))
	}

	for i, link := range panel.Children {
		if link.Event != NavigateEventName {
			t.Errorf("Expected mobile link %s to raise navigate, got '%s'", link.Href, link.Event)
		}

		// The fallback href closes the menu and keeps the fragment.
		want := "?menu=closed" + testProps().Links[i].Href
		if link.Href != want {
			t.Errorf("Expected mobile link href '%s', got '%s'", want, link.Href)
		}
	}

	desktop := view.FindRole(tree, RoleDesktopNav)
	for i, link := range desktop.Children {
		if link.Href != testProps().Links[i].Href {
			t.Errorf("Expected desktop link href '%s', got '%s'", testProps().Links[i].Href, link.Href)
		}
	}

	toggle := view.FindRole(tree, RoleMenuToggle)
	if toggle.Href != "?menu=closed" {
		t.Errorf("Expected toggle fallback '?menu=closed', got '%s'", toggle.Href)
	}
}

func TestThemeToggleSlot(t *testing.T) {
	props := testProps()

	if view.FindRole(Render(props, Closed), RoleThemeToggle) != nil {
		t.Error("Expected no theme slot by default")
	}

	props.ThemeToggle = true
	slot := view.FindRole(Render(props, Closed), RoleThemeToggle)
	if slot == nil || slot.Kind != view.KindSlot {
		t.Errorf("Expected theme toggle slot, got %+v", slot)
	}
}

func TestHeaderScenario(t *testing.T) {
	h := New(testProps())

	if h.State() != Closed {
		t.Fatalf("Expected header to start closed, got %s", h.State())
	}

	tree := h.Handle(Toggle)
	if h.State() != Open {
		t.Fatalf("Expected open after toggle, got %s", h.State())
	}
	if view.FindRole(tree, RoleMobileNav) == nil {
		t.Error("Expected mobile nav after toggle")
	}

	tree = h.Handle(Navigate)
	if h.State() != Closed {
		t.Fatalf("Expected closed after navigating, got %s", h.State())
	}
	if view.FindRole(tree, RoleMobileNav) != nil {
		t.Error("Expected mobile nav gone after navigating")
	}
}

func TestRenderIdempotent(t *testing.T) {
	h := New(testProps())
	h.Handle(Toggle)

	if !view.Equal(h.Render(), h.Render()) {
		t.Error("Expected re-rendering with unchanged state to be identical")
	}
}
