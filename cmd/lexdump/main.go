package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/pdk/whilst/interp"
	"github.com/pdk/whilst/lexer"
	"github.com/pdk/whilst/parse"
	"github.com/pdk/whilst/reader"
)

// lexdump shows how each statement of a script is tokenized and reordered
// into postfix, without running anything.
func main() {

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: lexdump FILE")
		os.Exit(1)
	}

	result, err := reader.ReadFile(os.Args[1])
	if err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}

	lines, err := reader.Group(result)
	if err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}

	for _, l := range lines {
		dumpLine(os.Stdout, l.Line, l.IsWhile())
		for _, b := range l.Body {
			dumpLine(os.Stdout, b, false)
		}
	}
}

func dumpLine(w io.Writer, l reader.Line, isHeader bool) {

	fmt.Fprintf(w, "%3d. %s\n", l.LineNo, l.Text)

	expr := statementExpr(l.Text, isHeader)
	if expr == "" {
		return
	}

	lexed, err := lexer.Tokenize(expr)
	if err != nil {
		color.New(color.FgRed).Fprintf(w, "     %s\n", err)
		return
	}
	for _, t := range lexed {
		fmt.Fprintf(w, "     %s\n", t.String())
	}

	rpn, err := parse.ToPostfix(lexed)
	if err != nil {
		color.New(color.FgRed).Fprintf(w, "     %s\n", err)
		return
	}
	fmt.Fprintf(w, "     rpn: %s\n", lexer.Join(rpn))
}

// statementExpr picks out the expression part of a statement: the condition
// of a while header, the right side of an assignment, or the whole line.
func statementExpr(text string, isHeader bool) string {

	if isHeader {
		cond, err := interp.Condition(text)
		if err != nil {
			return ""
		}
		return cond
	}

	if interp.IsComment(text) {
		return ""
	}

	if _, expr, ok := interp.SplitAssignment(text); ok {
		return expr
	}

	return text
}
