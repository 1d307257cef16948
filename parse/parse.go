package parse

import (
	"github.com/pdk/whilst/fault"
	"github.com/pdk/whilst/lexer"
	"github.com/pdk/whilst/token"
	"github.com/pdk/whilst/u"
)

// ToPostfix reorders an infix expression into postfix (RPN) order using the
// shunting-yard algorithm. Operators of equal precedence associate to the
// left. Parentheses are consumed and never appear in the result.
func ToPostfix(infix []lexer.Lexeme) ([]lexer.Lexeme, error) {

	ops := u.NewStack[lexer.Lexeme]()
	result := make([]lexer.Lexeme, 0, len(infix))

	for _, lex := range infix {

		tok := lex.Token()

		switch {
		case tok.IsLiteral():
			result = append(result, lex)

		case tok.IsOperator():
			for {
				top, ok := ops.Top()
				if !ok || top.Token().Precedence() < tok.Precedence() {
					break
				}
				ops.Pop()
				result = append(result, top)
			}
			ops.Push(lex)

		case tok == token.LPAREN:
			ops.Push(lex)

		case tok == token.RPAREN:
			matched := false
			for !matched {
				top, ok := ops.Pop()
				if !ok {
					return nil, fault.Syntaxf("unmatched ) at column %d", lex.CharNo())
				}
				if top.Token() == token.LPAREN {
					matched = true
					continue
				}
				result = append(result, top)
			}

		default:
			return nil, fault.Syntaxf("unexpected %s %q at column %d", tok, lex.Literal(), lex.CharNo())
		}
	}

	for !ops.Empty() {
		top, _ := ops.Pop()
		if top.Token().IsParen() {
			return nil, fault.Syntaxf("unmatched ( at column %d", top.CharNo())
		}
		result = append(result, top)
	}

	return result, nil
}
