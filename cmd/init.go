package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikogura/portfolio/pkg/config"
	"github.com/nikogura/portfolio/pkg/content"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ContentFile is the name of the sample content file written by init.
const ContentFile = "content.yaml"

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config and sample content file",
	Long: `Create a default config file and a sample content file next to it.

Edit the content file with your profile, projects and skills, then run
'portfolio build'.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	configPath := getConfigFile()
	if configPath == "" {
		configPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	contentPath := filepath.Join(filepath.Dir(configPath), ContentFile)

	err = initFiles(configPath, contentPath)
	if err != nil {
		return err
	}

	fmt.Printf("Config written to: %s\n", configPath)
	fmt.Printf("Sample content written to: %s\n", contentPath)

	return err
}

// initFiles writes the config and the sample content, or neither when either
// file already exists.
func initFiles(configPath, contentPath string) (err error) {
	for _, path := range []string{configPath, contentPath} {
		_, err = os.Stat(path)
		if err == nil {
			err = errors.Errorf("file already exists: %s", path)
			return err
		}
	}

	err = config.InitConfig(configPath, contentPath)
	if err != nil {
		err = errors.Wrap(err, "failed to create config")
		return err
	}

	err = content.WriteSample(contentPath)
	if err != nil {
		err = errors.Wrap(err, "failed to create sample content")
		return err
	}

	return err
}
