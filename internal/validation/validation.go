// Package validation checks user-supplied paths before they reach the pipeline.
package validation

import (
	"fmt"
	"os"
)

// ValidateInputFile checks that path exists and is a regular file.
// A missing file yields an error wrapping os.ErrNotExist.
func ValidateInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("input file path is empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %w", err)
		}
		return fmt.Errorf("error checking input file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory, expected a CSV file", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path %s is not a regular file", path)
	}
	return nil
}

// ValidateOutputFile checks that path can be created or replaced as a file.
func ValidateOutputFile(path string) error {
	if path == "" {
		return fmt.Errorf("output file path is empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking output file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}
	return nil
}
