package cli

import (
	"github.com/saylorsolutions/docopt"
)

// PreExec is a function that runs after the root document matches, and before the selected [Command] runs.
// It receives the root values, which makes it a good place to act on global options like a debug flag.
type PreExec func(root docopt.Values) error

// PreExec registers a function that will be executed right before a [Command] runs.
// If an error is returned from a [PreExec], then the [Command] will not be executed, and the error will be returned from Exec instead.
// Note that no [PreExec] functions run if the root document responds with help or version information.
//
// Passing a nil [PreExec] function to this method will panic.
func (s *CommandSet) PreExec(fn PreExec) *CommandSet {
	if fn == nil {
		panic("nil pre-exec function")
	}
	s.preExec = append(s.preExec, fn)
	return s
}

func (s *CommandSet) runPreExec(root docopt.Values) error {
	for _, fn := range s.preExec {
		if err := fn(root); err != nil {
			return err
		}
	}
	return nil
}
