package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apispect/apispect/internal/fileutil"
)

// WriteFiles writes all generated files into the output directory, creating
// it when missing. File names must be bare names; anything carrying a path
// separator is rejected before any file is written.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	for i := range r.Files {
		if filepath.Base(r.Files[i].Name) != r.Files[i].Name {
			return fmt.Errorf("invalid file name %q: must not contain path separators", r.Files[i].Name)
		}
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i := range r.Files {
		f := &r.Files[i]
		if err := os.WriteFile(filepath.Join(outputDir, f.Name), f.Content, fileutil.ReadableByAll); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Name, err)
		}
	}
	return nil
}

// WriteFile writes a single generated file to the given path, creating
// parent directories as needed.
func (f *GeneratedFile) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, f.Content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
