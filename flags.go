package docopt

import (
	"errors"
	"fmt"
	flag "github.com/spf13/pflag"
	"strconv"
	"strings"
)

// Apply copies every option value that was given into flags with the same name.
// The long form of an option is looked up by name without leading dashes, and a short-only option is looked up as a shorthand.
// Options without a matching flag are skipped, as are arguments and commands.
//
// Lists are set one element at a time, so slice flags accumulate them.
// Counts are set with their decimal value, which suits both count and int flags, and set a bool flag to true if above zero.
func (v Values) Apply(flags *flag.FlagSet) error {
	var errs []error
	for _, key := range v.Keys() {
		if !strings.HasPrefix(key, "-") || !v.Has(key) {
			continue
		}
		f := lookupFlag(flags, key)
		if f == nil {
			continue
		}
		for _, s := range flagStrings(v[key], f.Value.Type()) {
			if err := flags.Set(f.Name, s); err != nil {
				errs = append(errs, fmt.Errorf("failed to apply %s: %w", key, err))
				break
			}
		}
	}
	return errors.Join(errs...)
}

func lookupFlag(flags *flag.FlagSet, key string) *flag.Flag {
	if strings.HasPrefix(key, "--") {
		return flags.Lookup(strings.TrimPrefix(key, "--"))
	}
	short := strings.TrimPrefix(key, "-")
	if len(short) != 1 {
		return nil
	}
	return flags.ShorthandLookup(short)
}

func flagStrings(val any, flagType string) []string {
	switch v := val.(type) {
	case bool:
		return []string{strconv.FormatBool(v)}
	case int:
		if flagType == "bool" {
			return []string{strconv.FormatBool(v > 0)}
		}
		return []string{strconv.Itoa(v)}
	case string:
		return []string{v}
	case []string:
		return v
	default:
		return nil
	}
}
