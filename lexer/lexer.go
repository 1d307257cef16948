package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/log"

	"github.com/pdk/whilst/fault"
	"github.com/pdk/whilst/token"
	"github.com/pdk/whilst/u"
)

// Lexeme contains a lex'd token and the literal value.
type Lexeme struct {
	token      token.Token
	literal    string
	value      int
	charNumber int
}

// newLexeme makes a new Lexeme, with literal.
func newLexeme(tok token.Token, lit string) Lexeme {
	return Lexeme{
		token:   tok,
		literal: lit,
	}
}

// at sets a Lexeme's location
func (lex Lexeme) at(charNo int) Lexeme {

	lex.charNumber = charNo

	return lex
}

// Token returns the token.Token of the Lexeme.
func (lex Lexeme) Token() token.Token {
	return lex.token
}

// CharNo returns the character number the token was found in the line.
func (lex Lexeme) CharNo() int {
	return lex.charNumber
}

// Literal returns the string of the actual value found in the input.
func (lex Lexeme) Literal() string {
	return lex.literal
}

// Value returns the numeric value of an INT lexeme. Zero for anything else.
func (lex Lexeme) Value() int {
	return lex.value
}

// String returns a string representation of a Lexeme for user-friendly viewing.
func (lex Lexeme) String() string {
	return fmt.Sprintf("%3d %-10s %s", lex.charNumber, lex.token.String(), lex.literal)
}

// Join renders lexemes back into space separated source form.
func Join(xems []Lexeme) string {
	lits := make([]string, len(xems))
	for i, x := range xems {
		lits[i] = x.literal
	}
	return strings.Join(lits, " ")
}

// LogDump writes each lexeme to the verbose log.
func LogDump(xems []Lexeme) {
	for _, x := range xems {
		log.LogVf("%s", x.String())
	}
}

// Tokenize splits an expression into Lexemes. Tokens must be separated by
// single spaces; each piece is trimmed before it is classified, and a piece
// that trims to nothing is an empty token.
func Tokenize(line string) ([]Lexeme, error) {

	if line == "" {
		return nil, nil
	}

	var xems []Lexeme

	start := 0
	for _, piece := range strings.Split(line, " ") {
		charNo := start + 1
		start += len(piece) + 1

		lit := strings.TrimSpace(piece)
		if lit == "" {
			return nil, fault.Syntaxf("empty token at column %d", charNo)
		}

		xem, err := classify(lit, charNo)
		if err != nil {
			return nil, err
		}
		xems = append(xems, xem.at(charNo))
	}

	return xems, nil
}

func classify(lit string, charNo int) (Lexeme, error) {

	if u.AllDigits(lit) {
		n, err := strconv.Atoi(lit)
		if err != nil {
			return Lexeme{}, fault.Syntaxf("integer literal %s out of range at column %d", lit, charNo)
		}
		xem := newLexeme(token.INT, lit)
		xem.value = n
		return xem, nil
	}

	if u.AllLetters(lit) {
		return newLexeme(token.IDENT, lit), nil
	}

	if tok := token.CheckSymbol(lit); tok != token.ILLEGAL {
		return newLexeme(tok, lit), nil
	}

	return Lexeme{}, fault.Syntaxf("unrecognized token %q at column %d", lit, charNo)
}
