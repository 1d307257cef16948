package token

import "strconv"

// Token is what particular type of token found.
type Token int

// The list of tokens
const (
	ILLEGAL     Token = iota
	LiteralBeg        // start of literals
	IDENT             // main
	INT               // 12345
	LiteralEnd        // end of literals
	OperatorBeg       // start of binary operators
	MULT              // *
	DIV               // /
	MODULO            // %
	PLUS              // +
	MINUS             // -
	GRTR              // >
	LESS              // <
	GRTR_EQUAL        // >=
	LESS_EQUAL        // <=
	EQUAL             // ==
	NOT_EQUAL         // !=
	LOG_AND           // &&
	LOG_OR            // ||
	OperatorEnd       // end of binary operators
	LPAREN            // (
	RPAREN            // )
)

var tokens = [...]string{
	ILLEGAL:    "ILLEGAL",
	IDENT:      "IDENT",
	INT:        "INT",
	MULT:       "MULT",
	DIV:        "DIV",
	MODULO:     "MODULO",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	GRTR:       "GRTR",
	LESS:       "LESS",
	GRTR_EQUAL: "GRTR_EQUAL",
	LESS_EQUAL: "LESS_EQUAL",
	EQUAL:      "EQUAL",
	NOT_EQUAL:  "NOT_EQUAL",
	LOG_AND:    "LOG_AND",
	LOG_OR:     "LOG_OR",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
}

// String returns a string of a Token.
func (t Token) String() string {
	s := ""
	if 0 <= t && t < Token(len(tokens)) {
		s = tokens[t]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(t)) + ")"
	}
	return s
}

var symbols = map[string]Token{
	"*":  MULT,
	"/":  DIV,
	"%":  MODULO,
	"+":  PLUS,
	"-":  MINUS,
	">":  GRTR,
	"<":  LESS,
	">=": GRTR_EQUAL,
	"<=": LESS_EQUAL,
	"==": EQUAL,
	"!=": NOT_EQUAL,
	"&&": LOG_AND,
	"||": LOG_OR,
	"(":  LPAREN,
	")":  RPAREN,
}

// CheckSymbol returns the operator or parenthesis token spelled by sym, or
// ILLEGAL if sym is not one.
func CheckSymbol(sym string) Token {

	if tok, ok := symbols[sym]; ok {
		return tok
	}

	return ILLEGAL
}

// IsOperator returns true IFF the token is one of the binary operators.
func (t Token) IsOperator() bool {
	return OperatorBeg < t && t < OperatorEnd
}

// IsLiteral returns true IFF the token is an integer or an identifier.
func (t Token) IsLiteral() bool {
	return LiteralBeg < t && t < LiteralEnd
}

// IsParen returns true for both parentheses.
func (t Token) IsParen() bool {
	return t == LPAREN || t == RPAREN
}

// Ordered precedence values. Higher binds tighter.
const (
	P_NONE = iota - 1
	P_LOGIC
	P_COMPARE
	P_PLUSMINUS
	P_MULTDIV
)

var precedence = [OperatorEnd]int{
	MULT:       P_MULTDIV,
	DIV:        P_MULTDIV,
	MODULO:     P_MULTDIV,
	PLUS:       P_PLUSMINUS,
	MINUS:      P_PLUSMINUS,
	GRTR:       P_COMPARE,
	LESS:       P_COMPARE,
	GRTR_EQUAL: P_COMPARE,
	LESS_EQUAL: P_COMPARE,
	EQUAL:      P_COMPARE,
	NOT_EQUAL:  P_COMPARE,
	LOG_AND:    P_LOGIC,
	LOG_OR:     P_LOGIC,
}

// Precedence returns the binding strength of an operator. Anything that is
// not an operator (parentheses included) gets P_NONE.
func (t Token) Precedence() int {
	if !t.IsOperator() {
		return P_NONE
	}
	return precedence[t]
}
