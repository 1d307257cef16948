package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdk/whilst/compile"
	"github.com/pdk/whilst/config"
	"github.com/pdk/whilst/fault"
	"github.com/pdk/whilst/reader"
	"github.com/pdk/whilst/repl"
)

func TestEvaluate(t *testing.T) {

	input, err := reader.ReadLines(strings.NewReader("x = 5\nx\nwhile x > 3\n  x = x - 1\nx\n"))
	if err != nil {
		t.Fatalf("ReadLines: %s", err)
	}

	var out bytes.Buffer
	err = repl.Evaluate("testing", input, compile.GlobalScope(), &out, config.Default())
	if err != nil {
		t.Fatalf("Evaluate: %s", err)
	}

	if out.String() != "5\n3\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestEvaluateErrorNamesInput(t *testing.T) {

	var out bytes.Buffer
	err := repl.Evaluate("prog.txt", []string{"1", "y"}, compile.GlobalScope(), &out, config.Default())

	if !fault.Is(err, fault.Eval) {
		t.Fatalf("expected eval error, got %v", err)
	}
	if err.Error() != "prog.txt: line 2: eval error: undefined identifier y" {
		t.Errorf("unexpected message %q", err)
	}
	if out.String() != "1\n" {
		t.Errorf("unexpected output %q", out.String())
	}

	err = repl.Evaluate("prog.txt", []string{"  x"}, compile.GlobalScope(), &out, config.Default())
	if !fault.Is(err, fault.Syntax) {
		t.Errorf("expected syntax error, got %v", err)
	}
}

func TestStart(t *testing.T) {

	in := strings.NewReader("x = 2\nx\ny\nwhile x < 4\n  x = x + 1\n  x\n\nx * 10\n")

	var out, errout bytes.Buffer
	vars := compile.GlobalScope()
	repl.Start(in, &out, &errout, vars, config.Default())

	got := strings.ReplaceAll(out.String(), repl.Prompt, "")
	got = strings.ReplaceAll(got, repl.ContinuePrompt, "")

	if got != "2\n3\n4\n40\n" {
		t.Errorf("unexpected output %q", got)
	}

	if !strings.Contains(errout.String(), "undefined identifier y") {
		t.Errorf("expected the error to be reported, got %q", errout.String())
	}

	if x, _ := vars.Value("x"); x != 4 {
		t.Errorf("expected x == 4, got %d", x)
	}
}

func TestStartRunsTrailingBlock(t *testing.T) {

	in := strings.NewReader("n = 2\nwhile n\nn\nn = n - 1")

	var out, errout bytes.Buffer
	repl.Start(in, &out, &errout, compile.GlobalScope(), config.Default())

	got := strings.ReplaceAll(out.String(), repl.Prompt, "")
	got = strings.ReplaceAll(got, repl.ContinuePrompt, "")

	if got != "2\n1\n" {
		t.Errorf("unexpected output %q", got)
	}
	if errout.Len() != 0 {
		t.Errorf("unexpected errors %q", errout.String())
	}
}
