package parser

import (
	"github.com/saylorsolutions/docopt/option"
	"github.com/saylorsolutions/docopt/pattern"
	"strings"
)

// ParseArgv resolves an argument vector into occurrences, using the options in reg.
// The registry is not modified; options that are not declared still produce occurrences, which will be left over when matching.
//
// If optionsFirst is true, then the first positional argument ends option parsing and every remaining token is positional.
//
//	argv ::= [ long | shorts | argument ]* [ '--' [ argument ]* ] ;
func ParseArgv(argv []string, reg *option.Registry, optionsFirst bool) ([]pattern.Occurrence, error) {
	var (
		ts     = &tokens{items: argv, mode: argvMode}
		known  = reg.Clone()
		parsed []pattern.Occurrence
	)
	for !ts.atEnd() {
		token, _ := ts.current()
		switch {
		case token == "--":
			ts.move()
			return appendPositional(parsed, ts.rest()), nil
		case strings.HasPrefix(token, "--"):
			o, err := parseLong(ts, known)
			if err != nil {
				return nil, err
			}
			parsed = append(parsed, pattern.Flag(o.Name(), o.Value))
		case strings.HasPrefix(token, "-") && token != "-":
			opts, err := parseShorts(ts, known)
			if err != nil {
				return nil, err
			}
			for _, o := range opts {
				parsed = append(parsed, pattern.Flag(o.Name(), o.Value))
			}
		case optionsFirst:
			return appendPositional(parsed, ts.rest()), nil
		default:
			parsed = append(parsed, pattern.Positional(ts.move()))
		}
	}
	return parsed, nil
}

func appendPositional(parsed []pattern.Occurrence, values []string) []pattern.Occurrence {
	for _, v := range values {
		parsed = append(parsed, pattern.Positional(v))
	}
	return parsed
}
