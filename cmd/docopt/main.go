// Command docopt validates usage documents, prints their pattern trees, and matches argument vectors against them.
package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/docopt"
	"github.com/saylorsolutions/docopt/cli"
	flag "github.com/spf13/pflag"
	"io"
	"log/slog"
	"os"
	"strings"
)

const version = "docopt 0.1.0"

const rootDoc = `docopt validates usage documents and matches argument vectors against them.

Usage:
  docopt [options] <command> [<args>...]

Options:
  -h --help  Show this screen.
  --version  Show the version.
  --debug    Log debug information to STDERR.
`

const checkDoc = `Validate one or more usage documents, reporting every grammar error.
A file name of "-" reads the document from STDIN.

Usage:
  docopt check <file>...

Options:
  -h --help  Show this screen.
`

const treeDoc = `Print the normalized pattern tree of a usage document.

Usage:
  docopt tree [--leaves] <file>

Options:
  -h --help  Show this screen.
  --leaves   Also list every leaf with its default value.
`

const matchDoc = `Match an argument vector against a usage document, and print the bindings.
Put "--" before the argument vector if it contains options.

Usage:
  docopt match [options] <file> [<argv>...]

Options:
  -h --help        Show this screen.
  --format=<fmt>   Output format: text, json, yaml or shell [env: DOCOPT_FORMAT].
  --options-first  Stop option parsing at the first positional argument.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		level = new(slog.LevelVar)
		log   = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
		tool  = &tool{stdin: stdin, stdout: stdout, log: log}
	)
	set := cli.NewCommandSet(rootDoc, docopt.WithLogger(log)).Version(version)
	set.Printer().Redirect(stderr)
	set.PreExec(func(root docopt.Values) error {
		if cli.MustGet(root.Bool("--debug")) {
			level.Set(slog.LevelDebug)
		}
		return nil
	})
	set.AddCommand("check", "Validate usage documents", checkDoc, "c").Does(tool.check)
	set.AddCommand("tree", "Print the pattern tree of a usage document", treeDoc, "t").Does(tool.tree)
	matchCmd := set.AddCommand("match", "Match arguments against a usage document", matchDoc, "m").Does(tool.match)
	matchCmd.Flags().String("format", "", "Output format")
	matchCmd.Flags().Bool("options-first", false, "Stop option parsing at the first positional argument")

	if set.RespondInteractive(args) {
		return 0
	}
	err := set.Exec(args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, docopt.ErrGrammar):
		log.Debug("Grammar error", "error", err)
		return 2
	default:
		log.Debug("Command failed", "error", err)
		return 1
	}
}

type tool struct {
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
}

func (t *tool) readDoc(file string) (string, error) {
	if file == "-" {
		data, err := io.ReadAll(t.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read STDIN: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (t *tool) compile(file string) (*docopt.Grammar, error) {
	doc, err := t.readDoc(file)
	if err != nil {
		return nil, err
	}
	g, err := docopt.Compile(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	t.log.Debug("Compiled usage document", "file", file, "leaves", len(g.Tree().Leaves()))
	return g, nil
}

func (t *tool) check(vals docopt.Values, _ *flag.FlagSet, p *cli.Printer) error {
	var errs []error
	for _, file := range cli.MustGet(vals.Strings("<file>")) {
		if _, err := t.compile(file); err != nil {
			p.Println(err)
			errs = append(errs, err)
			continue
		}
		_, _ = fmt.Fprintf(t.stdout, "ok: %s\n", file)
	}
	return errors.Join(errs...)
}

func (t *tool) tree(vals docopt.Values, _ *flag.FlagSet, _ *cli.Printer) error {
	g, err := t.compile(cli.MustGet(vals.String("<file>")))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(t.stdout, g.Tree())
	if cli.MustGet(vals.Bool("--leaves")) {
		for _, leaf := range g.Tree().Leaves() {
			_, _ = fmt.Fprintf(t.stdout, "%-9s %s = %s\n", leaf.Kind, leaf.Name, formatValue(leaf.Value))
		}
	}
	return nil
}

func (t *tool) match(vals docopt.Values, flags *flag.FlagSet, p *cli.Printer) error {
	g, err := t.compile(cli.MustGet(vals.String("<file>")))
	if err != nil {
		return err
	}
	format := strings.ToLower(cli.MustGet(flags.GetString("format")))
	if len(format) == 0 {
		format = defaultFormat(t.stdout)
	}
	result, err := g.Match(cli.MustGet(vals.Strings("<argv>")),
		docopt.WithOptionsFirst(cli.MustGet(flags.GetBool("options-first"))),
		docopt.WithHelp(false),
		docopt.WithLogger(t.log),
	)
	if err != nil {
		if docopt.IsUsageError(err) {
			p.Printf("%s\n\n%s\n", err, g.Usage())
		}
		return err
	}
	return render(t.stdout, format, result)
}
