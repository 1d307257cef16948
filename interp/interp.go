// Package interp executes statements and while blocks against a variable
// scope.
package interp

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
	"github.com/pkg/errors"

	"github.com/pdk/whilst/compile"
	"github.com/pdk/whilst/config"
	"github.com/pdk/whilst/fault"
	"github.com/pdk/whilst/reader"
	"github.com/pdk/whilst/u"
)

const (
	commentPrefix = "#"
	assignOp      = " = "
)

// Interpreter runs statements one at a time. Values of print statements are
// written to its output, one per line.
type Interpreter struct {
	vars          *compile.Variables
	out           io.Writer
	maxIterations int
}

// New returns an Interpreter that reads and writes vars.
func New(vars *compile.Variables, out io.Writer, cfg config.Config) *Interpreter {

	limit := cfg.MaxIterations
	if limit <= 0 {
		limit = config.DefaultMaxIterations
	}

	return &Interpreter{
		vars:          vars,
		out:           out,
		maxIterations: limit,
	}
}

// Variables returns the scope the interpreter works on.
func (in *Interpreter) Variables() *compile.Variables {
	return in.vars
}

// ExecuteLine runs a single statement. If the statement prints, printed is
// true and val holds the value; nothing is written to the output.
//
// Statements are classified in order: comment, assignment, bare
// identifier, expression.
func (in *Interpreter) ExecuteLine(line string) (val int, printed bool, err error) {

	if IsComment(line) {
		return 0, false, nil
	}

	if reader.IsWhileHeader(line) {
		return 0, false, fault.Syntaxf("while header not allowed here")
	}

	if name, expr, ok := SplitAssignment(line); ok {
		if !u.AllLetters(name) {
			return 0, false, fault.Syntaxf("cannot assign to %q", name)
		}

		val, err := compile.EvalString(expr, in.vars)
		if err != nil {
			return 0, false, err
		}

		log.LogVf("%s <- %d", name, val)
		in.vars.Set(name, val)
		return 0, false, nil
	}

	if u.AllLetters(line) {
		if !in.vars.Defined(line) {
			return 0, false, fault.Evalf("undefined identifier %s", line)
		}
		val, _ := in.vars.Value(line)
		return val, true, nil
	}

	val, err = compile.EvalString(line, in.vars)
	return val, err == nil, err
}

// IsComment reports whether a statement is a comment.
func IsComment(line string) bool {
	return strings.HasPrefix(line, commentPrefix)
}

// SplitAssignment splits a statement at the first " = ". The name is
// trimmed; the expression is everything after the operator.
func SplitAssignment(line string) (name, expr string, ok bool) {

	i := strings.Index(line, assignOp)
	if i < 0 {
		return "", "", false
	}

	return strings.TrimSpace(line[:i]), line[i+len(assignOp):], true
}

// exec runs one line and prints its value, if it has one.
func (in *Interpreter) exec(line reader.Line) error {

	log.LogVf("line %d: %s", line.LineNo, line.Text)

	val, printed, err := in.ExecuteLine(line.Text)
	if err != nil {
		return errors.Wrapf(err, "line %d", line.LineNo)
	}

	if !printed {
		return nil
	}

	if _, err := fmt.Fprintf(in.out, "%d\n", val); err != nil {
		return fault.IOf("writing output: %s", err)
	}

	return nil
}

// Run executes logical lines top to bottom, stopping at the first error.
// Output written before the error stays written.
func (in *Interpreter) Run(lines []reader.LogicalLine) error {

	for _, l := range lines {

		if l.IsWhile() {
			if err := in.RunWhile(l); err != nil {
				return err
			}
			continue
		}

		if err := in.exec(l.Line); err != nil {
			return err
		}
	}

	return nil
}

// Condition extracts the condition from a while header: everything after
// the first space, trimmed.
func Condition(header string) (string, error) {

	i := strings.Index(header, " ")
	if i < 0 {
		return "", fault.Syntaxf("malformed while header %q", header)
	}

	cond := strings.TrimSpace(header[i+1:])
	if cond == "" {
		return "", fault.Syntaxf("while loop missing condition")
	}

	return cond, nil
}

// RunWhile re-evaluates the block's condition and runs its body until the
// condition is zero. A body that runs more than the iteration cap is an
// infinite loop.
func (in *Interpreter) RunWhile(block reader.LogicalLine) error {

	cond, err := Condition(block.Text)
	if err != nil {
		return errors.Wrapf(err, "line %d", block.LineNo)
	}

	for _, l := range block.Body {
		if reader.IsWhileHeader(l.Text) {
			return errors.Wrapf(fault.Syntaxf("while loops cannot be nested"), "line %d", l.LineNo)
		}
	}

	iteration := 0
	for {
		c, err := compile.EvalString(cond, in.vars)
		if err != nil {
			return errors.Wrapf(err, "line %d", block.LineNo)
		}

		if c == 0 {
			log.LogVf("line %d: loop done after %d iterations", block.LineNo, iteration)
			return nil
		}

		iteration++
		if iteration > in.maxIterations {
			return errors.Wrapf(
				fault.Runtimef("infinite loop detected (more than %d iterations)", in.maxIterations),
				"line %d", block.LineNo)
		}

		for _, l := range block.Body {
			if err := in.exec(l); err != nil {
				return err
			}
		}
	}
}
