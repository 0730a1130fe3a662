package cli

import (
	"bufio"
	"io"
	"os"
	"slices"
	"strings"
)

const (
	UseCommand  = "$use"  // This is used in interactive mode to indicate that a set of sub-commands should be pushed to the invocation stack.
	BackCommand = "$back" // This is used in interactive mode to indicate that the last element on the invocation stack should be popped.
)

var (
	InteractiveFlag         = "-i"                  // InteractiveFlag specifies the argument that the user should pass to trigger [CommandSet.RespondInteractive].
	InteractiveQuitCommands = []string{"quit", "x"} // InteractiveQuitCommands is a slice of strings that should escape from interactive mode.
)

// RespondInteractive will run an interactive "shell" version of the [CommandSet] reading from STDIN if the [InteractiveFlag] is the first argument.
// Returns false if interactive mode was not requested by the user.
//
// This loop may be interrupted with one of the [InteractiveQuitCommands].
func (s *CommandSet) RespondInteractive(args []string) bool {
	if len(args) == 0 || args[0] != InteractiveFlag {
		return false
	}
	if err := s.Interactive(os.Stdin); err != nil {
		s.Printer().Println("Error running interactively:", err)
	}
	return true
}

// Interactive reads lines from in, executing each as if it was given on the command line, until a quit command or the end of input.
// Errors from commands are printed and don't end the loop.
func (s *CommandSet) Interactive(in io.Reader) error {
	var (
		commandStack [][]string
		scanner      = bufio.NewScanner(in)
		p            = s.Printer()
	)
	prefixCommands := func() []string {
		if len(commandStack) == 0 {
			return nil
		}
		return commandStack[len(commandStack)-1]
	}
	p.Printf(`Running interactively. Enter %s to exit.
Use the %s command with one or more sub-commands to push them to the execution stack, and %s to pop and return.
`, strings.Join(InteractiveQuitCommands, " or "), UseCommand, BackCommand)
	for {
		p.Printf("%s> ", strings.Join(prefixCommands(), " "))
		if !scanner.Scan() {
			return scanner.Err()
		}
		segments := strings.Fields(scanner.Text())
		switch {
		case len(segments) == 0:
			continue
		case len(segments) == 1 && slices.Contains(InteractiveQuitCommands, strings.ToLower(segments[0])):
			return nil
		case segments[0] == UseCommand:
			newStack := append(slices.Clone(prefixCommands()), segments[1:]...)
			p.Printf("Using '%s'\n", strings.Join(newStack, " "))
			commandStack = append(commandStack, newStack)
			continue
		case segments[0] == BackCommand:
			if len(commandStack) == 0 {
				p.Println("Already at root command")
				continue
			}
			commandStack = commandStack[:len(commandStack)-1]
			continue
		case segments[0] == InteractiveFlag:
			p.Println("Cannot run interactively twice")
			continue
		}
		if err := s.Exec(append(slices.Clone(prefixCommands()), segments...)); err != nil {
			p.Println("Error running command:", err)
		}
	}
}
