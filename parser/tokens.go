package parser

type mode uint8

const (
	grammarMode mode = iota
	argvMode
)

// tokens is a cursor over a token list.
// The mode decides whether errors are reported as grammar errors or match errors.
type tokens struct {
	items []string
	pos   int
	mode  mode
}

func (ts *tokens) current() (string, bool) {
	if ts.pos >= len(ts.items) {
		return "", false
	}
	return ts.items[ts.pos], true
}

// at reports whether the current token is one of values.
func (ts *tokens) at(values ...string) bool {
	cur, ok := ts.current()
	if !ok {
		return false
	}
	for _, v := range values {
		if cur == v {
			return true
		}
	}
	return false
}

func (ts *tokens) atEnd() bool {
	return ts.pos >= len(ts.items)
}

func (ts *tokens) move() string {
	cur, _ := ts.current()
	if ts.pos < len(ts.items) {
		ts.pos++
	}
	return cur
}

// rest consumes and returns every remaining token.
func (ts *tokens) rest() []string {
	remaining := ts.items[ts.pos:]
	ts.pos = len(ts.items)
	return remaining
}

func (ts *tokens) errorf(format string, args ...any) error {
	if ts.mode == argvMode {
		return NewMatchError(format, args...)
	}
	return NewGrammarError(format, args...)
}
