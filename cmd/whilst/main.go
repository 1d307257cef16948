package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"fortio.org/log"
	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/pdk/whilst/compile"
	"github.com/pdk/whilst/config"
	"github.com/pdk/whilst/fault"
	"github.com/pdk/whilst/reader"
	"github.com/pdk/whilst/repl"
)

const version = "whilst 0.1.x"

const usage = `usage: whilst [options] FILE

Runs the script in FILE. A FILE of - reads standard input.

options:
  -c FILE  read settings from a YAML config file
  -n N     allow at most N iterations per while loop (default 1000)
  -v       log each statement as it runs
  -C       never color diagnostics
  -h       show this help
`

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {

	opts, optind, err := getopt.Getopts(args, "c:n:vCh")
	if err != nil {
		diagnose(stderr, fault.IOf("%s", err))
		fmt.Fprint(stderr, usage)
		return 1
	}
	args = args[optind:]

	cfg := config.Default()
	for _, opt := range opts {
		if opt.Option != 'c' {
			continue
		}
		cfg, err = config.Load(opt.Value)
		if err != nil {
			diagnose(stderr, err)
			return 1
		}
	}

	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			fmt.Fprint(stdout, usage)
			return 0
		case 'n':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n <= 0 {
				diagnose(stderr, fault.IOf("-n wants a positive number, got %q", opt.Value))
				return 1
			}
			cfg.MaxIterations = n
		case 'v':
			cfg.Verbose = true
		case 'C':
			cfg.Color = false
		}
	}

	if !cfg.Color {
		color.NoColor = true
	}

	if cfg.Verbose {
		log.SetLogLevel(log.Verbose)
	} else {
		log.SetLogLevel(log.Warning)
	}

	if len(args) != 1 {
		diagnose(stderr, fault.IOf("expected exactly one script file, got %d arguments", len(args)))
		fmt.Fprint(stderr, usage)
		return 1
	}

	inputName := args[0]
	vars := compile.GlobalScope()

	var input []string
	if inputName == "-" {
		if terminal.IsTerminal(int(stdin.Fd())) {
			fmt.Fprintln(stdout, version)
			repl.Start(stdin, stdout, stderr, vars, cfg)
			return 0
		}
		inputName = "stdin"
		input, err = reader.ReadLines(stdin)
	} else {
		input, err = reader.ReadFile(inputName)
	}

	if err != nil {
		diagnose(stderr, err)
		return 1
	}

	if err := repl.Evaluate(inputName, input, vars, stdout, cfg); err != nil {
		diagnose(stderr, err)
		return 1
	}

	for _, name := range vars.Names() {
		val, _ := vars.Value(name)
		log.LogVf("final %s = %d", name, val)
	}

	return 0
}

// diagnose prints the single line reported for a failed run.
func diagnose(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "%s\n", err)
}
