package cmd

import (
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/nikogura/portfolio/pkg/header"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var dumpMenu string

//nolint:gochecknoglobals // Cobra boilerplate
var dumpContent bool

//nolint:gochecknoglobals // Cobra boilerplate
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the composed page tree",
	Long: `Print the composed view tree for debugging, before any HTML is produced.

Examples:
  portfolio dump
  portfolio dump --menu open
  portfolio dump --content`,
	RunE: runDump,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVar(&dumpMenu, "menu", "closed", "Menu state to compose: open or closed")
	dumpCmd.Flags().BoolVar(&dumpContent, "content", false, "Dump the loaded content model instead of the tree")
}

func runDump(cmd *cobra.Command, args []string) (err error) {
	var s site
	s, err = loadSite()
	if err != nil {
		return err
	}

	dumpSite(os.Stdout, s, dumpMenu, dumpContent)
	return err
}

// dumpSite writes the composed tree for menu, or the content model, to w.
func dumpSite(w io.Writer, s site, menu string, contentOnly bool) {
	printer := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	if contentOnly {
		printer.Fdump(w, s.model)
		return
	}

	printer.Fdump(w, s.composer.Compose(header.ParseState(menu)))
}
