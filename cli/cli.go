package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/docopt"
	flag "github.com/spf13/pflag"
	"regexp"
	"slices"
	"strings"
	"sync"
)

var (
	ErrUnknownCommand = errors.New("unknown command")

	CommandKey = "<command>" // CommandKey is the argument in the root usage document that names the sub-command.
	ArgsKey    = "<args>"    // ArgsKey is the repeated argument in the root usage document that collects the sub-command's arguments.

	keyCleansePattern = regexp.MustCompile(`\s`)
)

// CommandFunc is a function that may be executed within a [Command].
// The flags have been set from vals by the time this is called.
type CommandFunc = func(vals docopt.Values, flags *flag.FlagSet, printer *Printer) error

// Command is an executable function in a CLI, described by a usage document.
// It should be linked to a [CommandSet] with [CommandSet.AddCommand].
type Command struct {
	key          string
	shortUsage   string
	doc          string
	flags        *flag.FlagSet
	exec         CommandFunc
	printer      *Printer
	aliases      []string
	optionsFirst bool

	compileOnce sync.Once
	grammar     *docopt.Grammar
	compileErr  error
}

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

func newCommand(key, shortUsage, doc string, printer *Printer) *Command {
	key = cleanseKey(key)
	fs := flag.NewFlagSet(key, flag.ContinueOnError)
	cmd := &Command{key: key, shortUsage: shortUsage, doc: doc, flags: fs, printer: printer}
	cmd.exec = func(_ docopt.Values, _ *flag.FlagSet, p *Printer) error {
		p.Println(strings.TrimSpace(cmd.doc))
		return nil
	}
	return cmd
}

// Does specifies the [CommandFunc] that should be executed by this [Command].
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc == nil {
		return c
	}
	c.exec = commandFunc
	return c
}

// OptionsFirst sets whether options after the first positional argument are passed through as arguments.
// The command name is the first argument given to [Command.Exec], so every argument after it is passed through verbatim.
// This suits commands that wrap another program.
func (c *Command) OptionsFirst(optionsFirst bool) *Command {
	c.optionsFirst = optionsFirst
	return c
}

// Key returns the cleansed name of this [Command].
func (c *Command) Key() string {
	return c.key
}

// Flags returns the [flag.FlagSet] for this [Command].
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// Printer returns the [Printer] for this [Command].
func (c *Command) Printer() *Printer {
	return c.printer
}

// Grammar compiles the usage document of this [Command] the first time it's called.
func (c *Command) Grammar() (*docopt.Grammar, error) {
	c.compileOnce.Do(func() {
		c.grammar, c.compileErr = docopt.Compile(c.doc)
	})
	return c.grammar, c.compileErr
}

// Exec matches the arguments against the usage document, and executes the command.
// The first argument is expected to be the command name, if the document includes it.
func (c *Command) Exec(args []string, opts ...docopt.MatchOption) error {
	g, err := c.Grammar()
	if err != nil {
		return fmt.Errorf("command %s: %w", c.key, err)
	}
	opts = append([]docopt.MatchOption{docopt.WithOptionsFirst(c.optionsFirst)}, opts...)
	vals, err := g.Match(args, opts...)
	if err != nil {
		if errors.Is(err, docopt.ErrHelp) {
			c.printer.Println(strings.TrimSpace(g.Doc()))
			return nil
		}
		if docopt.IsUsageError(err) {
			c.printer.Printf("%s\n\n%s\n", err, g.Usage())
			return &UsageError{wrapped: err}
		}
		return err
	}
	resetFlags(c.flags)
	if err := vals.Apply(c.flags); err != nil {
		return err
	}
	if err := c.exec(vals, c.flags, c.printer); err != nil {
		if errors.Is(err, &UsageError{}) {
			c.printer.Printf("%s\n\n%s\n", err, g.Usage())
		}
		return err
	}
	return nil
}

// resetFlags returns every changed flag to its default, so that repeated executions don't accumulate values.
func resetFlags(flags *flag.FlagSet) {
	flags.VisitAll(func(f *flag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(flag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

// CommandSet is the root of a CLI, which dispatches to a group of [Command].
type CommandSet struct {
	doc      string
	commands map[string]*Command
	aliases  map[string]*Command
	printer  *Printer
	preExec  []PreExec
	version  string
	opts     []docopt.MatchOption

	compileOnce sync.Once
	grammar     *docopt.Grammar
	compileErr  error
}

// NewCommandSet is used to set up a top level [CommandSet] as the root of a CLI's command structure.
// The doc must bind [CommandKey] and [ArgsKey] in its usage patterns.
//
// The opts are passed along when matching the root document and every sub-command document.
func NewCommandSet(doc string, opts ...docopt.MatchOption) *CommandSet {
	return &CommandSet{doc: doc, printer: NewPrinter(), opts: opts}
}

// AddCommand adds a sub-command to this [CommandSet].
// The key parameter will be cleansed to remove spaces, and normalize to lower-case.
// Aliases may be added as a way to support shorter variants of the same [Command].
func (s *CommandSet) AddCommand(key, shortUsage, doc string, aliases ...string) *Command {
	cmd := newCommand(key, shortUsage, doc, s.Printer())
	if s.commands == nil {
		s.commands = map[string]*Command{}
	}
	s.commands[cmd.key] = cmd
	if len(aliases) > 0 {
		_aliases := make([]string, 0, len(aliases))
		for _, alias := range aliases {
			alias = cleanseKey(alias)
			if len(alias) == 0 {
				continue
			}
			if s.aliases == nil {
				s.aliases = map[string]*Command{}
			}
			s.aliases[alias] = cmd
			_aliases = append(_aliases, alias)
		}
		slices.Sort(_aliases)
		cmd.aliases = _aliases
	}
	return cmd
}

// Version sets the text printed when "--version" is given to the root command.
func (s *CommandSet) Version(version string) *CommandSet {
	s.version = version
	return s
}

// Printer returns the cached [Printer] for this [CommandSet].
func (s *CommandSet) Printer() *Printer {
	if s.printer == nil {
		s.printer = NewPrinter()
	}
	return s.printer
}

// Grammar compiles the root usage document the first time it's called.
func (s *CommandSet) Grammar() (*docopt.Grammar, error) {
	s.compileOnce.Do(func() {
		s.grammar, s.compileErr = docopt.Compile(s.doc)
	})
	return s.grammar, s.compileErr
}

// Lookup finds a [Command] by key or alias, case-insensitive.
func (s *CommandSet) Lookup(key string) (*Command, bool) {
	key = cleanseKey(key)
	if cmd, ok := s.commands[key]; ok {
		return cmd, true
	}
	cmd, ok := s.aliases[key]
	return cmd, ok
}

// Exec matches args, usually os.Args[1:], against the root document and executes the selected sub-command.
func (s *CommandSet) Exec(args []string) error {
	g, err := s.Grammar()
	if err != nil {
		return err
	}
	opts := append(slices.Clone(s.opts), docopt.WithOptionsFirst(true))
	if len(s.version) > 0 {
		opts = append(opts, docopt.WithVersion(s.version))
	}
	vals, err := g.Match(args, opts...)
	switch {
	case errors.Is(err, docopt.ErrHelp):
		s.printer.Printf("%s\n\nCOMMANDS:\n%s", strings.TrimSpace(g.Doc()), s.CommandUsages())
		return nil
	case errors.Is(err, docopt.ErrVersion):
		s.printer.Println(s.version)
		return nil
	case docopt.IsUsageError(err):
		s.printer.Printf("%s\n\n%s\n", err, g.Usage())
		return &UsageError{wrapped: err}
	case err != nil:
		return err
	}

	key, err := vals.String(CommandKey)
	if err != nil {
		return err
	}
	cmd, ok := s.Lookup(key)
	if !ok {
		s.printer.Printf("%s: %s\n\nCOMMANDS:\n%s", ErrUnknownCommand, key, s.CommandUsages())
		return fmt.Errorf("%w: %s", ErrUnknownCommand, key)
	}
	if err := s.runPreExec(vals); err != nil {
		return err
	}
	rest, err := vals.Strings(ArgsKey)
	if err != nil {
		return err
	}
	return cmd.Exec(append([]string{cmd.key}, rest...), s.opts...)
}

// CommandUsages returns a string including the usage information for sub-commands in this [CommandSet].
//
// The sub-command keys will be sorted alphabetically before output.
func (s *CommandSet) CommandUsages() string {
	var (
		buf         strings.Builder
		cmds        []*Command
		keys        = make([]string, len(s.commands))
		withAliases = make([]string, len(s.commands))
		maxLen      int
		i           int
	)
	for key := range s.commands {
		keys[i] = key
		i++
	}
	slices.Sort(keys)

	cmds = make([]*Command, len(keys))
	for i, key := range keys {
		cmd := s.commands[key]
		cmds[i] = cmd
		withAliases[i] = key
		if len(cmd.aliases) > 0 {
			withAliases[i] = strings.Join(append([]string{key}, cmd.aliases...), ", ")
		}
		l := len(withAliases[i])
		if l > maxLen {
			maxLen = l
		}
	}
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for i, cmd := range cmds {
		buf.WriteString(fmt.Sprintf(fmtStr, withAliases[i], cmd.shortUsage))
	}
	return buf.String()
}
