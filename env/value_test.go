package env

import (
	"github.com/saylorsolutions/docopt/option"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestVal(t *testing.T) {
	const key = "DOCOPT_TEST_VAL"

	tests := []struct {
		name     string
		value    string
		expected string
		unset    bool
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: "default",
		},
		{
			name:     "Empty",
			value:    "",
			expected: "default",
		},
		{
			name:     "Trimmed",
			value:    "\n\t abc \t\n",
			expected: "abc",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				t.Setenv(key, tc.value)
			}
			assert.Equal(t, tc.expected, Val(key, "default"))
		})
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	t.Setenv("DOCOPT_TEST_CASE", "value")
	val, ok := Lookup("docopt_test_case")
	assert.True(t, ok)
	assert.Equal(t, "value", val)
}

func TestBool(t *testing.T) {
	const key = "DOCOPT_TEST_BOOL"
	tests := map[string]struct {
		value    string
		expected bool
		ok       bool
	}{
		"Yes":        {value: "yes", expected: true, ok: true},
		"Upper true": {value: "TRUE", expected: true, ok: true},
		"Off":        {value: "off", expected: false, ok: true},
		"Zero":       {value: "0", expected: false, ok: true},
		"Not a bool": {value: "maybe", expected: false, ok: false},
		"Blank":      {value: "  ", expected: false, ok: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(key, tc.value)
			val, ok := Bool(key)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, val)
		})
	}
}

func TestDefaults(t *testing.T) {
	t.Setenv("DOCOPT_TEST_SPEED", "20")
	t.Setenv("DOCOPT_TEST_MOORED", "yes")
	t.Setenv("DOCOPT_TEST_DRIFTING", "sometimes")

	opts := []option.Option{
		option.Parse("--speed=<kn>  Speed in knots [default: 10] [env: DOCOPT_TEST_SPEED]."),
		option.Parse("--moored  Moored mine [env: DOCOPT_TEST_MOORED]."),
		option.Parse("--drifting  Drifting mine [env: DOCOPT_TEST_DRIFTING]."),
		option.Parse("--depth=<m>  Depth [env: DOCOPT_TEST_UNSET_DEPTH]."),
		option.Parse("-q --quiet  No variable."),
	}
	assert.Equal(t, map[string]any{
		"--speed":  "20",
		"--moored": true,
	}, Defaults(opts))
}
