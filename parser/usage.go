package parser

import (
	"github.com/saylorsolutions/docopt/option"
	"github.com/saylorsolutions/docopt/pattern"
	"regexp"
	"strings"
	"unicode"
)

var (
	groupingPattern   = regexp.MustCompile(`([\[\]()|]|\.\.\.)`)
	usageTokenPattern = regexp.MustCompile(`\S*<.*?>|\S+`)
)

// TokenizeUsage splits a formal usage pattern into grammar tokens.
// Brackets, parentheses, pipes, and ellipses are always separate tokens, and an argument in angle brackets is kept whole even if it contains spaces.
func TokenizeUsage(source string) []string {
	spaced := groupingPattern.ReplaceAllString(source, " $1 ")
	return usageTokenPattern.FindAllString(spaced, -1)
}

type grammarParser struct {
	ts  *tokens
	reg *option.Registry
}

// ParsePattern parses a formal usage pattern, as produced by [FormalUsage], into an implicit [pattern.Required] root.
// Options that are used in the pattern but were not declared in reg are added to it.
func ParsePattern(source string, reg *option.Registry) (*pattern.Node, error) {
	p := &grammarParser{
		ts:  &tokens{items: TokenizeUsage(source), mode: grammarMode},
		reg: reg,
	}
	result, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !p.ts.atEnd() {
		return nil, p.ts.errorf("unexpected ending: %s", strings.Join(p.ts.rest(), " "))
	}
	return pattern.NewRequired(result...), nil
}

// expr ::= seq ( '|' seq )* ;
func (p *grammarParser) expr() ([]*pattern.Node, error) {
	seq, err := p.seq()
	if err != nil {
		return nil, err
	}
	if !p.ts.at("|") {
		return seq, nil
	}
	alternatives := group(seq)
	for p.ts.at("|") {
		p.ts.move()
		seq, err = p.seq()
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, group(seq)...)
	}
	if len(alternatives) > 1 {
		return []*pattern.Node{pattern.NewEither(alternatives...)}, nil
	}
	return alternatives, nil
}

// group wraps a multi-element sequence so that it is a single alternative.
func group(seq []*pattern.Node) []*pattern.Node {
	if len(seq) > 1 {
		return []*pattern.Node{pattern.NewRequired(seq...)}
	}
	return seq
}

// seq ::= ( atom [ '...' ] )* ;
func (p *grammarParser) seq() ([]*pattern.Node, error) {
	var result []*pattern.Node
	for !p.ts.atEnd() && !p.ts.at("]", ")", "|") {
		atom, err := p.atom()
		if err != nil {
			return nil, err
		}
		if p.ts.at("...") {
			atom = []*pattern.Node{pattern.NewOneOrMore(atom...)}
			p.ts.move()
		}
		result = append(result, atom...)
	}
	return result, nil
}

// atom ::= '(' expr ')' | '[' expr ']' | 'options' | long | shorts | argument | command ;
func (p *grammarParser) atom() ([]*pattern.Node, error) {
	token, _ := p.ts.current()
	switch {
	case token == "(" || token == "[":
		p.ts.move()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		closing, node := ")", pattern.NewRequired(inner...)
		if token == "[" {
			closing, node = "]", pattern.NewOptional(inner...)
		}
		if !p.ts.at(closing) {
			return nil, p.ts.errorf("unmatched '%s'", token)
		}
		p.ts.move()
		return []*pattern.Node{node}, nil
	case token == "options":
		p.ts.move()
		return []*pattern.Node{pattern.NewOptionsShortcut()}, nil
	case strings.HasPrefix(token, "--") && token != "--":
		o, err := parseLong(p.ts, p.reg)
		if err != nil {
			return nil, err
		}
		return []*pattern.Node{pattern.NewOption(o)}, nil
	case strings.HasPrefix(token, "-") && token != "-" && token != "--":
		opts, err := parseShorts(p.ts, p.reg)
		if err != nil {
			return nil, err
		}
		nodes := make([]*pattern.Node, len(opts))
		for i, o := range opts {
			nodes[i] = pattern.NewOption(o)
		}
		return nodes, nil
	case strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">"), isUpper(token):
		return []*pattern.Node{pattern.NewArgument(p.ts.move(), nil)}, nil
	default:
		return []*pattern.Node{pattern.NewCommand(p.ts.move())}, nil
	}
}

// isUpper reports whether s has at least one letter and no lower-case letters.
func isUpper(s string) bool {
	var cased bool
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		cased = true
	}
	return cased
}
