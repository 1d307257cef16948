package reader

import (
	"os"
	"unicode/utf8"

	"github.com/pdk/whilst/fault"
)

// a ReadFile func that reads a whole file and decodes it into lines. Scripts
// are small, so there is no reason to stream.

const bom = 0xFEFF // byte order mark, only permitted as very first character

// ReadFile reads a file and returns its contents as lines, without line
// terminators. "\n", "\r\n" and a lone "\r" all end a line.
func ReadFile(path string) ([]string, error) {

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.IOf("cannot read %s: %s", path, err)
	}

	return Decode(content)
}

// Decode splits raw bytes into lines, dropping a leading byte order mark.
func Decode(content []byte) ([]string, error) {

	result := make([]string, 0)

	if len(content) > 0 {
		r, l := utf8.DecodeRune(content)
		if r == bom {
			content = content[l:]
		}
	}

	lineNo := 1
	for len(content) > 0 {

		nextLine, consumed, err := scanLine(content)
		if err != nil {
			return nil, fault.IOf("line %d: %s", lineNo, err)
		}
		content = content[consumed:]

		result = append(result, nextLine)
		lineNo++
	}

	return result, nil
}

// hacked from pkg/bytes.Runes()
func scanLine(content []byte) (string, int, error) {

	var t []rune

	consumed := 0
	for len(content) > 0 {

		r, c := utf8.DecodeRune(content)
		if r == utf8.RuneError && c <= 1 {
			return "", consumed, errInvalidUTF8
		}
		content = content[c:]
		consumed += c

		if r == '\r' {
			// check if "\r\n"
			if len(content) > 0 && content[0] == '\n' {
				return string(t), consumed + 1, nil
			}
			return string(t), consumed, nil
		}

		if r == '\n' {
			return string(t), consumed, nil
		}

		t = append(t, r)
	}

	return string(t), consumed, nil
}
