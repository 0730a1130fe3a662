package docopt

import (
	"errors"
	"github.com/saylorsolutions/docopt/parser"
)

var (
	ErrGrammar = parser.ErrGrammar
	ErrNoMatch = parser.ErrMatch
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
	ErrNoKey   = errors.New("no such key")
	ErrType    = errors.New("value has a different type")
)

// UsageError is returned when an argument vector doesn't satisfy the usage patterns of a [Grammar].
// The usage section is attached so that it can be shown to the user.
type UsageError struct {
	Usage   string
	wrapped error
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	return "usage error: " + e.wrapped.Error()
}

func (e *UsageError) Is(err error) bool {
	if err == ErrNoMatch {
		return true
	}
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}
