package docopt

import (
	"io"
	"log/slog"
)

// MatchOption configures [Grammar.Match].
type MatchOption func(conf *matchConfig)

type matchConfig struct {
	optionsFirst bool
	help         bool
	version      string
	env          bool
	log          *slog.Logger
}

func newMatchConfig(opts []MatchOption) *matchConfig {
	conf := &matchConfig{
		help: true,
		env:  true,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(conf)
	}
	return conf
}

// WithOptionsFirst stops option parsing at the first positional argument, so that options after it are passed through as arguments.
// This is useful for programs that hand the rest of the argument vector to a sub-command.
func WithOptionsFirst(optionsFirst bool) MatchOption {
	return func(conf *matchConfig) {
		conf.optionsFirst = optionsFirst
	}
}

// WithHelp sets whether "-h" or "--help" in the argument vector is reported as [ErrHelp].
// This is enabled by default.
func WithHelp(help bool) MatchOption {
	return func(conf *matchConfig) {
		conf.help = help
	}
}

// WithVersion sets a version string, which enables reporting "--version" in the argument vector as [ErrVersion].
func WithVersion(version string) MatchOption {
	return func(conf *matchConfig) {
		conf.version = version
	}
}

// WithEnv sets whether environment variables named with "[env: NAME]" in option descriptions override defaults.
// This is enabled by default.
func WithEnv(env bool) MatchOption {
	return func(conf *matchConfig) {
		conf.env = env
	}
}

// WithLogger sets a logger for debug information about matching.
// Nothing is logged by default.
func WithLogger(log *slog.Logger) MatchOption {
	return func(conf *matchConfig) {
		if log != nil {
			conf.log = log
		}
	}
}
