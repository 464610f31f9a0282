package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nikogura/portfolio/pkg/content"
	"github.com/nikogura/portfolio/pkg/page"
	"github.com/nikogura/portfolio/pkg/renderer"
	"golang.org/x/net/html"
)

func newTestServer(t *testing.T, assets ...string) (srv *httptest.Server) {
	t.Helper()

	model := content.Default()
	composer := page.New(model, page.Options{Year: 2025})
	handler := New(composer, Options{
		Meta:   renderer.Meta{Lang: model.Lang, Title: model.Profile.Name},
		Assets: assets,
		Quiet:  true,
	})

	srv = httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (status int, body string) {
	t.Helper()

	resp, err := http.Get(url) //nolint:gosec,noctx // Test server URL
	if err != nil {
		t.Fatalf("Failed to GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}

	status = resp.StatusCode
	body = string(data)
	return status, body
}

func TestIndex(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}

	if !strings.Contains(body, `id="projects"`) {
		t.Error("Expected projects section in page")
	}

	if strings.Contains(body, `class="mobile-nav"`) {
		t.Error("Expected menu closed by default")
	}
}

func TestIndexMenuOpen(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/?menu=open")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}

	if !strings.Contains(body, `<nav class="mobile-nav">`) {
		t.Error("Expected open mobile panel")
	}
}

// mobileLinks returns the hrefs of the links in the mobile nav panel.
func mobileLinks(t *testing.T, body string) (hrefs []string) {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to parse page: %v", err)
	}

	var walk func(n *html.Node, inPanel bool)
	walk = func(n *html.Node, inPanel bool) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "class" && a.Val == "mobile-nav" {
					inPanel = true
				}
				if inPanel && n.Data == "a" && a.Key == "href" {
					hrefs = append(hrefs, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inPanel)
		}
	}
	walk(doc, false)

	return hrefs
}

func TestMobileLinkClosesMenu(t *testing.T) {
	srv := newTestServer(t)

	pageURL, err := url.Parse(srv.URL + "/?menu=open")
	if err != nil {
		t.Fatalf("Failed to parse url: %v", err)
	}

	_, body := get(t, pageURL.String())
	hrefs := mobileLinks(t, body)
	if len(hrefs) == 0 {
		t.Fatal("Expected links in the open mobile panel")
	}

	for _, href := range hrefs {
		ref, parseErr := url.Parse(href)
		if parseErr != nil {
			t.Fatalf("Failed to parse href %s: %v", href, parseErr)
		}

		target := pageURL.ResolveReference(ref)
		if target.Fragment == "" {
			t.Errorf("Expected link %s to keep its fragment", href)
		}

		// The browser drops the fragment when requesting the page.
		target.Fragment = ""
		status, next := get(t, target.String())
		if status != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", status)
		}

		if strings.Contains(next, `class="mobile-nav"`) {
			t.Errorf("Expected menu closed after following %s", href)
		}
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/healthz")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}

	if !strings.Contains(body, `"ok"`) {
		t.Errorf("Expected ok status, got %s", body)
	}
}

func TestContentAPI(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/api/content")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}

	var model content.Model
	err := json.Unmarshal([]byte(body), &model)
	if err != nil {
		t.Fatalf("Failed to decode content: %v", err)
	}

	if model.Profile.Name != "王大明" {
		t.Errorf("Expected name 王大明, got %s", model.Profile.Name)
	}

	if len(model.Projects) != 3 {
		t.Errorf("Expected 3 projects, got %d", len(model.Projects))
	}
}

func TestAssets(t *testing.T) {
	asset := filepath.Join(t.TempDir(), "site.css")
	err := os.WriteFile(asset, []byte("body{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to create asset: %v", err)
	}

	srv := newTestServer(t, asset)

	status, body := get(t, srv.URL+"/site.css")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}

	if body != "body{}" {
		t.Errorf("Expected 'body{}', got '%s'", body)
	}
}

func TestRunShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- Run(ctx, "127.0.0.1:0", http.NotFoundHandler())
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
