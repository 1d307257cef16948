package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func runWhilst(t *testing.T, stdin *os.File, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"whilst", "-C"}, args...), stdin, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunScriptFile(t *testing.T) {

	path := writeScript(t, "x = 5\nx\nwhile x > 3\n  x = x - 1\n  x\n")

	code, stdout, stderr := runWhilst(t, os.Stdin, path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if stdout != "5\n4\n3\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRunFailureKeepsOutput(t *testing.T) {

	path := writeScript(t, "1 + 1\n10 / 0\n3\n")

	code, stdout, stderr := runWhilst(t, os.Stdin, path)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stdout != "2\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "line 2: eval error: division by zero") {
		t.Errorf("stderr = %q", stderr)
	}
	if strings.Count(stderr, "\n") != 1 {
		t.Errorf("expected a single diagnostic line, got %q", stderr)
	}
}

func TestRunInfiniteLoop(t *testing.T) {

	path := writeScript(t, "while 1\n  x = 1\n")

	code, _, stderr := runWhilst(t, os.Stdin, path)
	if code != 1 || !strings.Contains(stderr, "infinite loop detected") {
		t.Errorf("exit code = %d, stderr %q", code, stderr)
	}

	code, _, stderr = runWhilst(t, os.Stdin, "-n", "5", path)
	if code != 1 || !strings.Contains(stderr, "more than 5 iterations") {
		t.Errorf("exit code = %d, stderr %q", code, stderr)
	}
}

func TestRunConfigFile(t *testing.T) {

	path := writeScript(t, "i = 0\nwhile i < 20\n  i = i + 1\ni\n")

	cfgPath := filepath.Join(t.TempDir(), "whilst.yml")
	if err := os.WriteFile(cfgPath, []byte("max_iterations: 10\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	code, _, stderr := runWhilst(t, os.Stdin, "-c", cfgPath, path)
	if code != 1 || !strings.Contains(stderr, "more than 10 iterations") {
		t.Errorf("exit code = %d, stderr %q", code, stderr)
	}

	code, stdout, _ := runWhilst(t, os.Stdin, "-c", cfgPath, "-n", "50", path)
	if code != 0 || stdout != "20\n" {
		t.Errorf("flags should override the config: exit code = %d, stdout %q", code, stdout)
	}
}

func TestRunStdin(t *testing.T) {

	stdin, err := os.Open(writeScript(t, "a = 6\na * 7\n"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer stdin.Close()

	code, stdout, stderr := runWhilst(t, stdin, "-")
	if code != 0 || stdout != "42\n" {
		t.Errorf("exit code = %d, stdout %q, stderr %q", code, stdout, stderr)
	}
}

func TestRunBadInvocation(t *testing.T) {

	code, _, stderr := runWhilst(t, os.Stdin)
	if code != 1 || !strings.Contains(stderr, "expected exactly one script file") {
		t.Errorf("no args: exit code = %d, stderr %q", code, stderr)
	}

	code, _, _ = runWhilst(t, os.Stdin, "a.txt", "b.txt")
	if code != 1 {
		t.Errorf("two args: exit code = %d", code)
	}

	code, _, stderr = runWhilst(t, os.Stdin, filepath.Join(t.TempDir(), "missing.txt"))
	if code != 1 || !strings.Contains(stderr, "io error") {
		t.Errorf("missing file: exit code = %d, stderr %q", code, stderr)
	}

	code, _, _ = runWhilst(t, os.Stdin, "-n", "zero", "a.txt")
	if code != 1 {
		t.Errorf("bad -n: exit code = %d", code)
	}

	code, stdout, _ := runWhilst(t, os.Stdin, "-h")
	if code != 0 || !strings.HasPrefix(stdout, "usage:") {
		t.Errorf("-h: exit code = %d, stdout %q", code, stdout)
	}
}
