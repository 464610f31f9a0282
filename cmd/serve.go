package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikogura/portfolio/pkg/server"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Serve the portfolio page over HTTP.

Routes:
  GET /                the page; ?menu=open renders the mobile menu open
  GET /healthz         liveness check
  GET /api/content     the content model as JSON
  GET /<asset>         configured asset files by base name

The server shuts down gracefully on SIGINT or SIGTERM.

Example:
  portfolio serve
  portfolio serve --addr 127.0.0.1:3000`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var s site
	s, err = loadSite()
	if err != nil {
		return err
	}

	printViolations(lintSite(s))

	addr := serveAddr
	if addr == "" {
		addr = s.cfg.Server.Addr
	}

	handler := server.New(s.composer, server.Options{
		Meta:   s.meta,
		Assets: s.cfg.Site.Assets,
	})

	fmt.Printf("Serving portfolio on %s\n", addr)

	err = server.Run(ctx, addr, handler)
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Println("Server stopped")
	}

	return err
}
