package docopt

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/docopt/env"
	"github.com/saylorsolutions/docopt/option"
	"github.com/saylorsolutions/docopt/parser"
	"github.com/saylorsolutions/docopt/pattern"
)

var (
	helpNames = []string{"-h", "--help"}
)

// Grammar is a compiled usage document.
// It's safe to call [Grammar.Match] from multiple goroutines.
type Grammar struct {
	doc      string
	usage    string
	registry *option.Registry
	tree     *pattern.Tree
}

// Compile reads the usage and options sections of doc.
// An error matching [ErrGrammar] is returned if the document is malformed.
func Compile(doc string) (*Grammar, error) {
	usage, err := parser.Usage(doc)
	if err != nil {
		return nil, err
	}
	registry := option.NewRegistry(parser.Defaults(doc)...)
	root, err := parser.ParsePattern(parser.FormalUsage(usage), registry)
	if err != nil {
		return nil, err
	}
	return &Grammar{
		doc:      doc,
		usage:    usage,
		registry: registry,
		tree:     pattern.Fix(root, registry.Options()),
	}, nil
}

// MustCompile is like [Compile], but panics if the document is malformed.
// This is intended for documents that are constants in a program.
func MustCompile(doc string) *Grammar {
	g, err := Compile(doc)
	if err != nil {
		panic(fmt.Sprintf("docopt: %v", err))
	}
	return g
}

// Doc returns the full document the Grammar was compiled from.
func (g *Grammar) Doc() string {
	return g.doc
}

// Usage returns the usage section of the document.
func (g *Grammar) Usage() string {
	return g.usage
}

// Options returns every option known to the Grammar, in declaration order.
func (g *Grammar) Options() []option.Option {
	return g.registry.Options()
}

// Tree returns the normalized pattern tree.
func (g *Grammar) Tree() *pattern.Tree {
	return g.tree
}

// Match matches an argument vector, usually os.Args[1:], against the Grammar.
//
// Help and version requests are checked before matching, so that they work even if the rest of the input is invalid.
// Input that doesn't satisfy the usage patterns returns a [*UsageError].
func (g *Grammar) Match(argv []string, opts ...MatchOption) (Values, error) {
	conf := newMatchConfig(opts)
	log := conf.log.With("usage", g.usage)

	occurrences, err := parser.ParseArgv(argv, g.registry, conf.optionsFirst)
	if err != nil {
		log.Debug("Failed to resolve arguments", "error", err)
		return nil, &UsageError{Usage: g.usage, wrapped: err}
	}
	log.Debug("Resolved arguments", "occurrences", len(occurrences))

	if conf.help && isSet(occurrences, helpNames...) {
		return nil, ErrHelp
	}
	if len(conf.version) > 0 && isSet(occurrences, "--version") {
		return nil, ErrVersion
	}

	tree := g.tree
	if conf.env {
		if defaults := env.Defaults(g.registry.Options()); len(defaults) > 0 {
			log.Debug("Applying environment defaults", "count", len(defaults))
			tree = tree.WithDefaults(defaults)
		}
	}

	bindings, left, ok := tree.Match(occurrences)
	if !ok {
		log.Debug("Arguments do not match usage", "left", len(left))
		return nil, &UsageError{Usage: g.usage, wrapped: ErrNoMatch}
	}
	log.Debug("Matched usage", "bindings", len(bindings))
	return bindings, nil
}

func isSet(occurrences []pattern.Occurrence, names ...string) bool {
	for _, occ := range occurrences {
		if occ.Kind != pattern.Option {
			continue
		}
		for _, name := range names {
			if occ.Name == name && truthy(occ.Value) {
				return true
			}
		}
	}
	return false
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return len(v) > 0
	default:
		return true
	}
}

// Parse compiles doc and matches argv against it in one step.
func Parse(doc string, argv []string, opts ...MatchOption) (Values, error) {
	g, err := Compile(doc)
	if err != nil {
		return nil, err
	}
	return g.Match(argv, opts...)
}

// IsUsageError reports whether err was caused by user input rather than the document.
func IsUsageError(err error) bool {
	var target *UsageError
	return errors.As(err, &target)
}
