// Package main implements the glint command-line interface: an `eval`
// subcommand for one-off expressions, `run` for files, and `repl` for an
// interactive session.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/glint-lang/glint/internal/diag"
	"github.com/glint-lang/glint/pkg/eval"
	"github.com/glint-lang/glint/pkg/lexer"
	"github.com/glint-lang/glint/pkg/parser"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

var cmdRoot = &cobra.Command{
	Use:           "glint",
	Short:         "glint evaluates the Glint expression language",
	Version:       version.Short(),
	SilenceErrors: true,
	SilenceUsage:  true,
}

// reportErr prints err to stderr. When err is one of the pipeline's
// Diagnosable error types (lexer.Error, parser.Error, eval.Error), it prints
// the flattened Diagnostic instead, including its correlation ID, so a
// failure that surfaced through several layers of wrapping (an ImportParse
// that embeds a parse error from a different file) can be traced back to
// the diagnostic that produced it.
func reportErr(err error) {
	if d, ok := err.(diag.Diagnosable); ok {
		diagnostic := d.Diagnostic()
		fmt.Fprintf(os.Stderr, "[%s] %s\n", diagnostic.ID, diagnostic.Error())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

var cmdEval = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a single expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSource("<eval>", args[0], ".")
	},
}

var cmdRun = &cobra.Command{
	Use:   "run <file>",
	Short: "Evaluate a Glint source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return runSource(path, string(content), filepath.Dir(path))
	},
}

var cmdRepl = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		startRepl()
		return nil
	},
}

func init() {
	cmdRoot.AddCommand(cmdEval, cmdRun, cmdRepl)
}

// runSource lexes, parses, and evaluates one source unit, printing its
// result's display form to stdout.
func runSource(sourceName, text, baseDir string) error {
	l := lexer.New(sourceName, text)
	p := parser.New(l, sourceName)
	expr, err := p.Parse()
	if err != nil {
		reportErr(err)
		return err
	}

	e := eval.New(baseDir, sourceName)
	result, err := e.Eval(expr)
	if err != nil {
		reportErr(err)
		return err
	}
	fmt.Println(result.String())
	return nil
}

// startRepl reads expressions line by line, evaluating each in a fresh
// top-level environment; bindings do not persist across lines, since the
// language has no top-level mutable session state.
func startRepl() {
	fmt.Println("glint repl - Ctrl+D to exit")
	scanner := bufio.NewScanner(os.Stdin)
	e := eval.New(".", "<repl>")

	for {
		fmt.Print("glint> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		l := lexer.New("<repl>", line)
		p := parser.New(l, "<repl>")
		expr, err := p.Parse()
		if err != nil {
			reportErr(err)
			continue
		}

		result, err := e.Eval(expr)
		if err != nil {
			reportErr(err)
			continue
		}
		fmt.Println(result.String())
	}
}
