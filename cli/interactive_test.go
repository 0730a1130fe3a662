package cli

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestCommandSet_Interactive(t *testing.T) {
	var greetings []greeting
	set, buf := testCommandSet(t, &greetings)
	input := strings.Join([]string{
		"greet --name=Ann",
		"",
		"$use greet",
		"--shout",
		"$back",
		"$back",
		"-i",
		"nope",
		"x",
		"greet --name=Never",
	}, "\n")

	assert.NoError(t, set.Interactive(strings.NewReader(input)))
	assert.Equal(t, []greeting{
		{name: "Ann"},
		{name: "world", shout: true},
	}, greetings)
	out := buf.String()
	assert.Contains(t, out, "Using 'greet'")
	assert.Contains(t, out, "greet> ")
	assert.Contains(t, out, "Already at root command")
	assert.Contains(t, out, "Cannot run interactively twice")
	assert.Contains(t, out, "Error running command: unknown command: nope")
}

func TestCommandSet_RespondInteractive(t *testing.T) {
	set := NewCommandSet(testRootDoc)
	assert.False(t, set.RespondInteractive(nil))
	assert.False(t, set.RespondInteractive([]string{"greet", "-i"}))
}
