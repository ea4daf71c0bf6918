// Package puzzle reads puzzle input files for the aoc2020 commands.
package puzzle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyInput indicates an input with no non-blank lines.
var ErrEmptyInput = errors.New("puzzle: input is empty")

// Read loads the whole of path. "-" reads standard input.
func Read(path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("puzzle: read %s: %w", path, err)
	}

	return Normalize(string(b))
}

// Normalize converts CRLF to LF, drops blank lines and trailing spaces, and
// returns the remaining lines joined by "\n".
func Normalize(text string) (string, error) {
	lines := Lines(text)
	if len(lines) == 0 {
		return "", ErrEmptyInput
	}

	return strings.Join(lines, "\n"), nil
}

// Lines splits text into its non-blank lines with trailing whitespace removed.
func Lines(text string) []string {
	var out []string
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		l = strings.TrimRight(l, " \t\r")
		if l != "" {
			out = append(out, l)
		}
	}

	return out
}
