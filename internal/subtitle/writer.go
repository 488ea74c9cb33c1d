package subtitle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrWriteOutput = errors.New("failed to write output")

// WriteOutput writes rendered paragraphs to path, creating parent
// directories as needed.
func WriteOutput(path, content string) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
