package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/pdk/whilst/compile"
	"github.com/pdk/whilst/config"
	"github.com/pdk/whilst/interp"
	"github.com/pdk/whilst/reader"
)

// Prompt is show when waiting for input.
var Prompt = ">>> "

// ContinuePrompt is shown while reading the body of a while loop. An empty
// line ends the body.
var ContinuePrompt = "... "

// Evaluate runs a whole script. Errors carry the input name and line number.
func Evaluate(inputName string, input []string, vars *compile.Variables, out io.Writer, cfg config.Config) error {

	lines, err := reader.Group(input)
	if err != nil {
		return errors.Wrap(err, inputName)
	}

	if err := interp.New(vars, out, cfg).Run(lines); err != nil {
		return errors.Wrap(err, inputName)
	}

	return nil
}

// Start reads statements interactively. Stops when no more input. Errors are
// reported and reading continues; variables survive across statements.
func Start(in io.Reader, out, errout io.Writer, vars *compile.Variables, cfg config.Config) {

	scanner := bufio.NewScanner(in)
	it := interp.New(vars, out, cfg)

	lineNo := 0
	var block *reader.LogicalLine

	for {
		if block == nil {
			fmt.Fprint(out, Prompt)
		} else {
			fmt.Fprint(out, ContinuePrompt)
		}

		scanned := scanner.Scan()
		if !scanned {
			if block != nil {
				report(errout, it.RunWhile(*block))
			}
			return
		}

		lineNo++
		text := strings.TrimSpace(scanner.Text())
		line := reader.Line{Text: text, LineNo: lineNo}

		if block != nil {
			if text != "" {
				block.Body = append(block.Body, line)
				continue
			}
			report(errout, it.RunWhile(*block))
			block = nil
			continue
		}

		switch {
		case text == "":
			continue
		case reader.IsWhileHeader(text):
			block = &reader.LogicalLine{Line: line}
		default:
			report(errout, it.Run([]reader.LogicalLine{{Line: line}}))
		}
	}
}

func report(errout io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(errout, "%s\n", err)
	}
}
