/*
Package docopt parses command-line arguments using the usage text of a program as the grammar.

The usage text is written for humans first, and it already describes every valid invocation, so there is no need to describe the same thing again with code.

	const doc = `Naval Fate.

	Usage:
	  naval_fate ship new <name>...
	  naval_fate ship <name> move <x> <y> [--speed=<kn>]
	  naval_fate (-h | --help)

	Options:
	  -h --help     Show this screen.
	  --speed=<kn>  Speed in knots [default: 10].
	`

	vals, err := docopt.Parse(doc, os.Args[1:])

The returned [Values] maps every command, argument, and option named in the usage patterns to its value.

  - Commands and flags are booleans, or counts if they can repeat.
  - Arguments and options that take a value are strings, nil if they were not given, or lists if they can repeat.

# Grammars

A document is compiled once with [Compile], and the [Grammar] may be matched against many argument vectors, concurrently if needed.
Errors in the document itself are reported as a [parser.GrammarError] which matches [ErrGrammar].

# Matching

[Grammar.Match] never exits the process or prints anything.
Requests for help or version information are reported as [ErrHelp] and [ErrVersion], and input that doesn't satisfy the usage patterns is reported as a [UsageError], which carries the usage section so that it can be shown to the user.

Options in the options section may name an environment variable that provides their default, like this:

	--speed=<kn>  Speed in knots [default: 10] [env: SHIP_SPEED].

# Interop

[Values.Apply] copies matched options into a [pflag.FlagSet], for programs that would rather use typed flag getters.

[pflag.FlagSet]: https://pkg.go.dev/github.com/spf13/pflag#FlagSet
*/
package docopt
