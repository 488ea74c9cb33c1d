package subtitle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrReadSource      = errors.New("failed to read subtitle source")
	ErrInvalidEncoding = errors.New("subtitle source is not valid UTF-8")
)

// path argument selecting standard input
const StdinName = "-"

// Open reads the transcript at path as UTF-8 text.
func Open(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrReadSource, path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	text, err := ReadSource(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// ReadSource reads all of r. A leading byte order mark selects UTF-8 or
// UTF-16 decoding and is dropped; without one the input must already be
// valid UTF-8.
func ReadSource(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	decoded, _, err := transform.Bytes(
		unicode.BOMOverride(encoding.Nop.NewDecoder()),
		data,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if !utf8.Valid(decoded) {
		return "", ErrInvalidEncoding
	}

	return string(decoded), nil
}
