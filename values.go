package docopt

import (
	"fmt"
	"slices"
	"sort"
)

// Values maps every command, argument, and option name in a usage pattern to its matched or default value.
//
// Values are one of nil, bool, int, string, or []string.
type Values map[string]any

func (v Values) get(key string) (any, error) {
	val, ok := v[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoKey, key)
	}
	return val, nil
}

func typeError(key string, val any, want string) error {
	return fmt.Errorf("%w: %s is %T, not %s", ErrType, key, val, want)
}

// Bool gets a command or flag value.
// Counted values are true if the count is above zero.
func (v Values) Bool(key string) (bool, error) {
	val, err := v.get(key)
	if err != nil {
		return false, err
	}
	switch b := val.(type) {
	case bool:
		return b, nil
	case int:
		return b > 0, nil
	default:
		return false, typeError(key, val, "bool")
	}
}

// Int gets a counted command or flag value.
// A boolean value counts as 1 if it's true.
func (v Values) Int(key string) (int, error) {
	val, err := v.get(key)
	if err != nil {
		return 0, err
	}
	switch n := val.(type) {
	case int:
		return n, nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, typeError(key, val, "int")
	}
}

// String gets an argument or option value.
// An empty string is returned if the value was not given and has no default.
func (v Values) String(key string) (string, error) {
	val, err := v.get(key)
	if err != nil {
		return "", err
	}
	switch s := val.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	default:
		return "", typeError(key, val, "string")
	}
}

// Strings gets a repeatable argument or option value.
// A single string value is returned as a list of one.
func (v Values) Strings(key string) ([]string, error) {
	val, err := v.get(key)
	if err != nil {
		return nil, err
	}
	switch s := val.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{s}, nil
	case []string:
		return slices.Clone(s), nil
	default:
		return nil, typeError(key, val, "[]string")
	}
}

// Has reports whether the key was given a value by matching or by a default.
// Flags that are false, zero counts, and empty lists are not considered given.
func (v Values) Has(key string) bool {
	switch val := v[key].(type) {
	case nil:
		return false
	case bool:
		return val
	case int:
		return val > 0
	case []string:
		return len(val) > 0
	default:
		return true
	}
}

// Keys returns the keys of Values, sorted.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
