package compile

import (
	"fortio.org/log"

	"github.com/pdk/whilst/fault"
	"github.com/pdk/whilst/lexer"
	"github.com/pdk/whilst/parse"
	"github.com/pdk/whilst/token"
	"github.com/pdk/whilst/u"
)

// binaryOp combines the two topmost stack values. num1 was pushed first.
type binaryOp func(num1, num2 int) (int, error)

var binaryOps [token.OperatorEnd]binaryOp

func init() {
	binaryOps = [token.OperatorEnd]binaryOp{
		token.PLUS:       func(a, b int) (int, error) { return a + b, nil },
		token.MINUS:      func(a, b int) (int, error) { return a - b, nil },
		token.MULT:       func(a, b int) (int, error) { return a * b, nil },
		token.DIV:        Divide,
		token.MODULO:     Modulo,
		token.GRTR:       compare(func(a, b int) bool { return a > b }),
		token.LESS:       compare(func(a, b int) bool { return a < b }),
		token.GRTR_EQUAL: compare(func(a, b int) bool { return a >= b }),
		token.LESS_EQUAL: compare(func(a, b int) bool { return a <= b }),
		token.EQUAL:      compare(func(a, b int) bool { return a == b }),
		token.NOT_EQUAL:  compare(func(a, b int) bool { return a != b }),
		token.LOG_AND:    LogicalAnd,
		token.LOG_OR:     LogicalOr,
	}
}

// Divide truncates toward zero.
func Divide(num1, num2 int) (int, error) {
	if num2 == 0 {
		return 0, fault.Evalf("division by zero")
	}
	return num1 / num2, nil
}

// Modulo takes the sign of num1.
func Modulo(num1, num2 int) (int, error) {
	if num2 == 0 {
		return 0, fault.Evalf("modulo by zero")
	}
	return num1 % num2, nil
}

// LogicalAnd is the product of its operands, not a boolean AND: 2 && 3 is 6.
// Scripts rely on zero meaning false, so any zero operand still gives zero.
func LogicalAnd(num1, num2 int) (int, error) {
	return num1 * num2, nil
}

// LogicalOr is the sum of its operands, not a boolean OR: 1 || 1 is 2, and
// -1 || 1 is 0.
func LogicalOr(num1, num2 int) (int, error) {
	return num1 + num2, nil
}

func compare(test func(int, int) bool) binaryOp {
	return func(num1, num2 int) (int, error) {
		if test(num1, num2) {
			return 1, nil
		}
		return 0, nil
	}
}

// Evaluate computes the value of a postfix expression.
func Evaluate(rpn []lexer.Lexeme, vars *Variables) (int, error) {

	stack := u.NewStack[int]()

	for _, lex := range rpn {

		switch tok := lex.Token(); {
		case tok == token.INT:
			stack.Push(lex.Value())

		case tok == token.IDENT:
			val, err := vars.Value(lex.Literal())
			if err != nil {
				return 0, err
			}
			stack.Push(val)

		case tok.IsOperator():
			if stack.Len() < 2 {
				return 0, fault.Evalf("operator %s at column %d is missing an operand", lex.Literal(), lex.CharNo())
			}
			num2, _ := stack.Pop()
			num1, _ := stack.Pop()

			val, err := binaryOps[tok](num1, num2)
			if err != nil {
				return 0, err
			}
			stack.Push(val)

		default:
			return 0, fault.Evalf("unexpected %s %q in postfix expression", tok, lex.Literal())
		}
	}

	if stack.Len() != 1 {
		return 0, fault.Evalf("malformed expression leaves %d values", stack.Len())
	}

	result, _ := stack.Pop()
	return result, nil
}

// EvalString runs an infix expression through the whole pipeline.
func EvalString(expr string, vars *Variables) (int, error) {

	infix, err := lexer.Tokenize(expr)
	if err != nil {
		return 0, err
	}
	lexer.LogDump(infix)

	rpn, err := parse.ToPostfix(infix)
	if err != nil {
		return 0, err
	}

	log.LogVf("postfix of %q: %s", expr, lexer.Join(rpn))

	return Evaluate(rpn, vars)
}
