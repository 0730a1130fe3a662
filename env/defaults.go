package env

import (
	"github.com/saylorsolutions/docopt/option"
)

// Defaults returns the environment-provided default of every option with an [option.Option.Env] name, keyed by option name.
// Options that take an argument get a string, and flags get a boolean.
// Options whose variable is unset or unusable are left out.
func Defaults(opts []option.Option) map[string]any {
	defaults := map[string]any{}
	for _, o := range opts {
		if len(o.Env) == 0 {
			continue
		}
		if o.Arity > 0 {
			if val, ok := Lookup(o.Env); ok {
				defaults[o.Name()] = val
			}
			continue
		}
		if val, ok := Bool(o.Env); ok {
			defaults[o.Name()] = val
		}
	}
	return defaults
}
