package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nikogura/portfolio/pkg/header"
	"github.com/nikogura/portfolio/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// IndexFile is the name of the built page.
const IndexFile = "index.html"

//nolint:gochecknoglobals // Cobra boilerplate
var buildOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var buildCheck bool

//nolint:gochecknoglobals // Cobra boilerplate
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the portfolio to static HTML",
	Long: `Render the portfolio page to index.html in the output directory and copy
configured assets next to it.

The page is rendered with the mobile menu closed. Content lint findings are
printed as warnings; they never stop the build.

Use --check to compare against an existing build instead of writing. The
command prints a line diff and fails if the page is stale.

Example:
  portfolio build
  portfolio build --output-dir ./dist
  portfolio build --check`,
	RunE: runBuild,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildOutputDir, "output-dir", "", "Output directory (default from config)")
	buildCmd.Flags().BoolVar(&buildCheck, "check", false, "Fail if the existing build differs from a fresh render")
}

func runBuild(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var s site
	s, err = loadSite()
	if err != nil {
		return err
	}

	printViolations(lintSite(s))

	// Use output dir from flag or config
	outDir := getOutputDir(buildOutputDir, s.cfg.Defaults.OutputDir)

	if buildCheck {
		err = checkBuild(ctx, s, outDir)
		return err
	}

	err = writeBuild(ctx, s, outDir)
	return err
}

func getOutputDir(flagValue, configValue string) (outDir string) {
	outDir = flagValue
	if outDir == "" {
		outDir = configValue
	}
	return outDir
}

func renderIndex(ctx context.Context, s site) (html string, err error) {
	html, err = renderer.RenderString(ctx, renderer.Page(s.composer.Compose(header.Closed), s.meta))
	if err != nil {
		err = errors.Wrap(err, "failed to render page")
		return html, err
	}
	return html, err
}

func writeBuild(ctx context.Context, s site, outDir string) (err error) {
	var html string
	html, err = renderIndex(ctx, s)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(outDir, IndexFile)
	if getVerbose() {
		fmt.Printf("Writing %s...\n", indexPath)
	}

	err = renderer.WriteHTML(html, indexPath)
	if err != nil {
		err = errors.Wrap(err, "failed to write page")
		return err
	}

	var copied []string
	copied, err = renderer.CopyAssets(outDir, s.cfg.Site.Assets...)
	if err != nil {
		err = errors.Wrap(err, "failed to copy assets")
		// A page without its assets is not a build.
		cleanupErr := renderer.Cleanup(append(copied, indexPath)...)
		if cleanupErr != nil {
			fmt.Printf("Warning: Failed to clean up partial build: %v\n", cleanupErr)
		}
		return err
	}

	if getVerbose() {
		for _, path := range copied {
			fmt.Printf("Copied asset: %s\n", path)
		}
	}

	fmt.Printf("Portfolio saved at: %s\n", indexPath)

	return err
}

func checkBuild(ctx context.Context, s site, outDir string) (err error) {
	var html string
	html, err = renderIndex(ctx, s)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(outDir, IndexFile)

	var existing string
	existing, err = renderer.ReadHTML(indexPath)
	if err != nil {
		return err
	}

	diff, changed := renderer.Diff(existing, html)
	if changed {
		fmt.Print(diff)
		err = errors.Errorf("%s is stale: run 'portfolio build' to update", indexPath)
		return err
	}

	fmt.Printf("%s is up to date\n", indexPath)

	return err
}
