package reader

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/pdk/whilst/fault"
)

var errInvalidUTF8 = errors.New("invalid UTF-8 encoding")

// ReadLines reads everything from r into a slice of strings.
func ReadLines(r io.Reader) ([]string, error) {

	var lines []string

	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}

	if err := s.Err(); err != nil {
		return lines, fault.IOf("reading input: %s", err)
	}

	return lines, nil
}
