package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// reports whether stream is an *os.File attached to a terminal
func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
