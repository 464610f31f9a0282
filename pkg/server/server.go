// Package server serves the composed portfolio page over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikogura/portfolio/pkg/header"
	"github.com/nikogura/portfolio/pkg/page"
	"github.com/nikogura/portfolio/pkg/renderer"
	"github.com/pkg/errors"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Options configure the HTTP surface.
type Options struct {
	Meta renderer.Meta
	// Assets are local files served at "/<base name>".
	Assets []string
	// Quiet disables request logging.
	Quiet bool
}

// New returns the router for composer.
func New(composer *page.Composer, opts Options) (handler http.Handler) {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	if !opts.Quiet {
		r.Use(middleware.Logger)
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		state := header.ParseState(req.URL.Query().Get("menu"))
		templ.Handler(renderer.Page(composer.Compose(state), opts.Meta)).ServeHTTP(w, req)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/content", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, composer.Model())
	})

	for _, asset := range opts.Assets {
		path := asset
		r.Get("/"+filepath.Base(path), func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, path)
		})
	}

	handler = r
	return handler
}

// Run serves handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, handler http.Handler) (err error) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
			return err
		}
		err = errors.Wrapf(err, "failed to serve on %s", addr)
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		err = srv.Shutdown(shutdownCtx)
		if err != nil {
			err = errors.Wrap(err, "failed to shut down server")
			return err
		}
		return err
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		fmt.Printf("failed to encode response: %s\n", err)
	}
}
