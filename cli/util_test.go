package cli

import (
	"github.com/saylorsolutions/docopt"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMustGet(t *testing.T) {
	vals := docopt.Values{"--name": "Bob"}
	assert.Equal(t, "Bob", MustGet(vals.String("--name")))
	assert.Panics(t, func() {
		MustGet(vals.String("--missing"))
	})
	assert.Panics(t, func() {
		MustGet(vals.Bool("--name"))
	})

	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Int("count", 3, "")
	assert.Equal(t, 3, MustGet(flags.GetInt("count")))
	assert.Panics(t, func() {
		MustGet(flags.GetString("count"))
	})
}
