package u

import "sort"

// KeysOf returns the string keys of a map, sorted.
func KeysOf[V any](m map[string]V) []string {
	x := []string{}
	for k := range m {
		x = append(x, k)
	}
	sort.Strings(x)
	return x
}

// AllDigits returns true IFF s is non-empty and every rune is an ASCII digit.
func AllDigits(s string) bool {
	return s != "" && all(s, isDigit)
}

// AllLetters returns true IFF s is non-empty and every rune is an ASCII letter.
func AllLetters(s string) bool {
	return s != "" && all(s, isLetter)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func all(s string, pred func(rune) bool) bool {
	for _, c := range s {
		if !pred(c) {
			return false
		}
	}
	return true
}
