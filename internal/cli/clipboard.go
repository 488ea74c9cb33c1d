package cli

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrClipboard = errors.New("failed to copy output to clipboard")

// replaced in tests, the system clipboard is not available there
var writeClipboard = clipboard.WriteAll

func copyToClipboard(text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return nil
}
