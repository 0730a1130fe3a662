package parser

import (
	"errors"
	"fmt"
)

var (
	ErrGrammar = errors.New("invalid usage grammar")
	ErrMatch   = errors.New("input does not satisfy usage")
)

// GrammarError reports a problem with a usage document.
// It matches [ErrGrammar] with [errors.Is].
type GrammarError struct {
	wrapped error
}

// NewGrammarError is used to create a [GrammarError].
// The format and args parameters are passed to [fmt.Errorf] to create the underlying error.
func NewGrammarError(format string, args ...any) error {
	return &GrammarError{wrapped: fmt.Errorf(format, args...)}
}

func (e *GrammarError) Error() string {
	if e.wrapped == nil {
		return ErrGrammar.Error()
	}
	return ErrGrammar.Error() + ": " + e.wrapped.Error()
}

func (e *GrammarError) Is(err error) bool {
	if err == ErrGrammar {
		return true
	}
	_, ok := err.(*GrammarError)
	return ok
}

func (e *GrammarError) Unwrap() error {
	return e.wrapped
}

// MatchError reports an argument vector that could not be resolved against a valid document.
// It matches [ErrMatch] with [errors.Is].
type MatchError struct {
	wrapped error
}

// NewMatchError is used to create a [MatchError].
// The format and args parameters are passed to [fmt.Errorf] to create the underlying error.
func NewMatchError(format string, args ...any) error {
	return &MatchError{wrapped: fmt.Errorf(format, args...)}
}

func (e *MatchError) Error() string {
	if e.wrapped == nil {
		return ErrMatch.Error()
	}
	return e.wrapped.Error()
}

func (e *MatchError) Is(err error) bool {
	if err == ErrMatch {
		return true
	}
	_, ok := err.(*MatchError)
	return ok
}

func (e *MatchError) Unwrap() error {
	return e.wrapped
}
