package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikogura/portfolio/pkg/lint"
	"github.com/nikogura/portfolio/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var checkHTML string

//nolint:gochecknoglobals // Cobra boilerplate
var checkStrict bool

//nolint:gochecknoglobals // Cobra boilerplate
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint portfolio content for authoring errors",
	Long: `Check the content model for authoring errors the renderer tolerates:

- Duplicate section ids (critical)
- Duplicate project titles (major)
- Navigation links without a matching section (major)
- Repeated tags or skills, empty skill categories (minor)
- Placeholder project links such as "#" (minor)

Prints each finding and a score out of 100. Fails on critical findings, or on
any finding with --strict.

Use --html to also check a built page for fragment links with no target.

Examples:
  portfolio check
  portfolio check --strict
  portfolio check --html ./public/index.html`,
	RunE: runCheck,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkHTML, "html", "", "Built page to check for dangling in-page links")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Fail on any finding")
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
	var s site
	s, err = loadSite()
	if err != nil {
		return err
	}

	report := lintSite(s)
	printReport(report)

	if checkHTML != "" {
		var dangling []string
		dangling, err = danglingAnchors(checkHTML)
		if err != nil {
			return err
		}

		for _, link := range dangling {
			fmt.Printf("Dangling link in %s: %s\n", filepath.Base(checkHTML), link)
		}

		if len(dangling) > 0 {
			err = errors.Errorf("%d dangling in-page links in %s", len(dangling), checkHTML)
			return err
		}
	}

	switch {
	case report.HasCritical():
		err = errors.New("content has critical findings")
	case checkStrict && len(report.Violations) > 0:
		err = errors.Errorf("content has %d findings", len(report.Violations))
	}

	return err
}

func printReport(report lint.Report) {
	if len(report.Violations) == 0 {
		fmt.Println("No findings")
	}

	for _, v := range report.Violations {
		fmt.Printf("[%s] %s at %s: %s\n", v.Severity, v.Rule, v.Location, v.Detail)
		if getVerbose() {
			fmt.Printf("    %s\n", lint.Rules[v.Rule].Description)
		}
	}

	fmt.Printf("Score: %d/100\n", report.Score)
}

func danglingAnchors(path string) (dangling []string, err error) {
	var f *os.File
	f, err = os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open %s", path)
		return dangling, err
	}
	defer f.Close()

	var ids, links []string
	ids, links, err = renderer.Anchors(f)
	if err != nil {
		return dangling, err
	}

	if getVerbose() {
		fmt.Printf("Found %d ids and %d in-page links in %s\n", len(ids), len(links), path)
	}

	dangling = renderer.Dangling(ids, links)
	return dangling, err
}
