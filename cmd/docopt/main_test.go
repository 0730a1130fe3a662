package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const shipDoc = `Usage: naval_fate ship <name> move <x> <y> [--speed=<kn>]

Options:
  --speed=<kn>  Speed in knots [default: 10].
`

func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "usage.txt")
	require.NoError(t, os.WriteFile(file, []byte(doc), 0600))
	return file
}

func runTool(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Check(t *testing.T) {
	good := writeDoc(t, shipDoc)
	bad := writeDoc(t, "Usage: prog (a | b")

	code, stdout, _ := runTool(t, "", "check", good)
	assert.Equal(t, 0, code)
	assert.Equal(t, "ok: "+good+"\n", stdout)

	code, stdout, stderr := runTool(t, "", "c", good, bad)
	assert.Equal(t, 2, code)
	assert.Equal(t, "ok: "+good+"\n", stdout)
	assert.Contains(t, stderr, bad+": invalid usage grammar: unmatched '('")

	code, _, _ = runTool(t, "", "check", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)

	code, stdout, _ = runTool(t, shipDoc, "check", "-")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ok: -\n", stdout)
}

func TestRun_Tree(t *testing.T) {
	file := writeDoc(t, "Usage: prog [-v...] <file>...")

	code, stdout, _ := runTool(t, "", "tree", file)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Required(Required(Optional(OneOrMore(Option(-v, -, 0, 0))), OneOrMore(Argument(<file>, []))))\n", stdout)

	code, stdout, _ = runTool(t, "", "tree", "--leaves", file)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Option    -v = 0\n")
	assert.Contains(t, stdout, "Argument  <file> = []\n")
}

func TestRun_Match(t *testing.T) {
	file := writeDoc(t, shipDoc)
	argv := []string{"--", "ship", "Guardian", "move", "1", "2"}

	code, stdout, _ := runTool(t, "", append([]string{"match", "--format=json", file}, argv...)...)
	assert.Equal(t, 0, code)
	assert.JSONEq(t, `{
  "ship": true,
  "<name>": "Guardian",
  "move": true,
  "<x>": "1",
  "<y>": "2",
  "--speed": "10"
}`, stdout)

	code, stdout, _ = runTool(t, "", append([]string{"m", "--format", "shell", file}, argv...)...)
	assert.Equal(t, 0, code)
	assert.Equal(t, "speed='10'\nname='Guardian'\nx='1'\ny='2'\nmove=true\nship=true\n", stdout)

	code, stdout, _ = runTool(t, "", append([]string{"match", "--format=YAML", file}, argv...)...)
	assert.Equal(t, 0, code)
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, map[string]any{
		"ship":    true,
		"<name>":  "Guardian",
		"move":    true,
		"<x>":     "1",
		"<y>":     "2",
		"--speed": "10",
	}, decoded)

	code, stdout, _ = runTool(t, "", append([]string{"match", "--format=text", file}, argv...)...)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "--speed  \"10\"\n")
	assert.Contains(t, stdout, "<name>   \"Guardian\"\n")
	assert.Contains(t, stdout, "ship     true\n")
}

func TestRun_Match_Env(t *testing.T) {
	file := writeDoc(t, shipDoc)
	t.Setenv("DOCOPT_FORMAT", "shell")
	code, stdout, _ := runTool(t, "", "match", file, "ship", "Guardian", "move", "1", "2")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "name='Guardian'\n")
}

func TestRun_Match_Errors(t *testing.T) {
	file := writeDoc(t, shipDoc)

	code, stdout, stderr := runTool(t, "", "match", "--format=json", file, "ship")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "usage error: input does not satisfy usage\n\nUsage: naval_fate ship")

	code, _, _ = runTool(t, "", "match", "--format=xml", file, "ship", "a", "move", "1", "2")
	assert.Equal(t, 1, code)

	code, _, _ = runTool(t, "", "match", writeDoc(t, "no usage"), "a")
	assert.Equal(t, 2, code)
}

func TestRun_Root(t *testing.T) {
	code, _, stderr := runTool(t, "", "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, version+"\n", stderr)

	code, _, stderr = runTool(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "COMMANDS:\n")
	assert.Contains(t, stderr, "check, c")

	code, _, stderr = runTool(t, "", "check", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "Validate one or more usage documents")

	code, _, _ = runTool(t, "")
	assert.Equal(t, 1, code)

	code, _, stderr = runTool(t, "", "unknown")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command: unknown")
}

func TestRun_Debug(t *testing.T) {
	file := writeDoc(t, shipDoc)
	code, _, stderr := runTool(t, "", "--debug", "check", file)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "Compiled usage document")

	code, _, stderr = runTool(t, "", "check", file)
	assert.Equal(t, 0, code)
	assert.NotContains(t, stderr, "Compiled usage document")
}
