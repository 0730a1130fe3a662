package parser

import (
	"github.com/saylorsolutions/docopt/option"
	"strings"
	"unicode/utf8"
)

// placeholderAllowed reports whether the current token may be consumed as the value of an option.
// In a usage pattern, grouping tokens close the option's group instead, so the option is referenced without a placeholder.
func placeholderAllowed(ts *tokens) bool {
	next, ok := ts.current()
	if !ok || next == "--" {
		return false
	}
	if ts.mode == grammarMode {
		switch next {
		case ")", "]", "|", "...":
			return false
		}
	}
	return true
}

// parseLong resolves a token like "--name" or "--name=value".
//
//	long ::= '--' chars [ ( ' ' | '=' ) chars ] ;
func parseLong(ts *tokens, reg *option.Registry) (option.Option, error) {
	long, value, hasValue := strings.Cut(ts.move(), "=")
	similar := reg.Long(long)
	if ts.mode == argvMode && len(similar) == 0 {
		similar = reg.LongPrefix(long)
	}
	if len(similar) > 1 {
		names := make([]string, len(similar))
		for i, o := range similar {
			names[i] = o.Long
		}
		return option.Option{}, ts.errorf("%s is not a unique prefix: %s?", long, strings.Join(names, ", "))
	}

	if len(similar) == 0 {
		arity := 0
		if hasValue {
			arity = 1
		}
		o := option.New("", long, arity)
		reg.Add(o)
		if ts.mode == argvMode {
			if arity > 0 {
				o.Value = value
			} else {
				o.Value = true
			}
		}
		return o, nil
	}

	o := similar[0]
	if o.Arity == 0 {
		if hasValue {
			return option.Option{}, ts.errorf("%s must not have an argument", o.Long)
		}
	} else if !hasValue {
		switch {
		case placeholderAllowed(ts):
			value, hasValue = ts.move(), true
		case ts.mode == argvMode || ts.at("--"):
			return option.Option{}, ts.errorf("%s requires argument", o.Long)
		}
	}
	if ts.mode == argvMode {
		if hasValue {
			o.Value = value
		} else {
			o.Value = true
		}
	}
	return o, nil
}

// parseShorts resolves a cluster of short options like "-abc", where an option that takes a value consumes the rest of the cluster or the next token.
//
//	shorts ::= '-' ( chars )* [ [ ' ' ] chars ] ;
func parseShorts(ts *tokens, reg *option.Registry) ([]option.Option, error) {
	left := strings.TrimLeft(ts.move(), "-")
	var parsed []option.Option
	for len(left) > 0 {
		r, size := utf8.DecodeRuneInString(left)
		short := "-" + string(r)
		left = left[size:]

		similar := reg.Short(short)
		if len(similar) > 1 {
			return nil, ts.errorf("%s is specified ambiguously %d times", short, len(similar))
		}
		if len(similar) == 0 {
			o := option.New(short, "", 0)
			reg.Add(o)
			if ts.mode == argvMode {
				o.Value = true
			}
			parsed = append(parsed, o)
			continue
		}

		o := similar[0]
		var (
			value    string
			hasValue bool
		)
		if o.Arity > 0 {
			switch {
			case len(left) > 0:
				value, hasValue = left, true
				left = ""
			case placeholderAllowed(ts):
				value, hasValue = ts.move(), true
			case ts.mode == argvMode || ts.at("--"):
				return nil, ts.errorf("%s requires argument", short)
			}
		}
		if ts.mode == argvMode {
			if hasValue {
				o.Value = value
			} else {
				o.Value = true
			}
		}
		parsed = append(parsed, o)
	}
	return parsed, nil
}
