/*
Package cli provides an opinionated way to structure a CLI with sub-commands, where every command is described by its own usage document.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - The usage text is the grammar. Each [Command] is matched with [docopt], so the help text and the parser can't disagree.
  - The root [CommandSet] matches options first, so everything after the sub-command name belongs to the sub-command.
  - Sub-command aliases are often very convenient, so they're supported as additional, optional parameters to [CommandSet.AddCommand].

# Invocation

The root document of a [CommandSet] must have a usage pattern that binds [CommandKey] and [ArgsKey], like this:

	Usage:
	  my-cli [options] <command> [<args>...]

The matched command name, followed by the remaining arguments, is matched against the usage document of that [Command].
Sub-command documents should therefore include the command name after the program name:

	Usage:
	  my-cli sub-command [--do-something] <file>

# Usage by default

The '-h' and '--help' flags print the full document of the root or sub-command, along with a list of sub-commands for the root.
Input that doesn't match prints the error and the usage section, and is returned as a [UsageError].

# Typed flags

Each [Command] has a [pflag.FlagSet].
Flags defined on it with the same name as options in the command's document are set from the matched values before the [CommandFunc] runs, so typed getters like GetInt and GetDuration can be used.

# Prioritizing Dev UX

If your CLI calls [CommandSet.RespondInteractive], then you're enabling the use of the [InteractiveFlag] (which can be changed) to enter interactive mode.
Each line read is split on spaces and executed as if it was given on the command line.

Use the [UseCommand] to push a string of sub-commands to an invocation stack, and [BackCommand] to pop it.
To exit interactive mode, use one of the [InteractiveQuitCommands] at the prompt.

[docopt]: https://github.com/saylorsolutions/docopt
[pflag.FlagSet]: https://pkg.go.dev/github.com/spf13/pflag#FlagSet
*/
package cli
