package renderer

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteHTML writes a rendered page to a file, creating its directory.
func WriteHTML(content, outputPath string) (err error) {
	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write html file: %s", outputPath)
		return err
	}

	return err
}

// ReadHTML reads a previously written page. A missing file yields an empty
// page and no error.
func ReadHTML(path string) (content string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
			return content, err
		}
		err = errors.Wrapf(err, "failed to read html file: %s", path)
		return content, err
	}

	content = string(data)
	return content, err
}

// Cleanup removes previously written files.
func Cleanup(paths ...string) (err error) {
	for _, path := range paths {
		err = os.Remove(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to remove file: %s", path)
			return err
		}
	}
	return err
}

// CopyAssets copies local asset files (stylesheets, scripts, images) into
// outputDir, keeping their base names.
func CopyAssets(outputDir string, assets ...string) (copied []string, err error) {
	err = validateFiles(assets...)
	if err != nil {
		return copied, err
	}

	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return copied, err
	}

	for _, asset := range assets {
		var data []byte
		data, err = os.ReadFile(asset)
		if err != nil {
			err = errors.Wrapf(err, "failed to read asset: %s", asset)
			return copied, err
		}

		target := filepath.Join(outputDir, filepath.Base(asset))
		err = os.WriteFile(target, data, 0600)
		if err != nil {
			err = errors.Wrapf(err, "failed to write asset: %s", target)
			return copied, err
		}
		copied = append(copied, target)
	}

	return copied, err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}
