package pattern

import (
	"github.com/saylorsolutions/docopt/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func args(values ...string) []Occurrence {
	occs := make([]Occurrence, len(values))
	for i, v := range values {
		occs[i] = Positional(v)
	}
	return occs
}

func flag(short, long string) *Node {
	return NewOption(option.New(short, long, 0))
}

func TestTree_Match_Leaves(t *testing.T) {
	tests := map[string]struct {
		root     *Node
		input    []Occurrence
		expected map[string]any
		ok       bool
	}{
		"Argument": {
			root:     NewRequired(NewArgument("N", nil)),
			input:    args("9"),
			expected: map[string]any{"N": "9"},
			ok:       true,
		},
		"Argument ignores options": {
			root:  NewRequired(NewArgument("N", nil)),
			input: []Occurrence{Flag("-x", true)},
		},
		"Command": {
			root:     NewRequired(NewCommand("c")),
			input:    args("c"),
			expected: map[string]any{"c": true},
			ok:       true,
		},
		"Command only considers first positional": {
			root:  NewRequired(NewCommand("b"), NewArgument("<a>", nil)),
			input: args("a", "b"),
		},
		"Command after an option": {
			root:     NewRequired(NewCommand("c"), NewOptional(flag("-x", ""))),
			input:    []Occurrence{Flag("-x", true), Positional("c")},
			expected: map[string]any{"c": true, "-x": true},
			ok:       true,
		},
		"Option": {
			root:     NewRequired(flag("-a", "")),
			input:    []Occurrence{Flag("-a", true)},
			expected: map[string]any{"-a": true},
			ok:       true,
		},
		"Option with value": {
			root:     NewRequired(NewOption(option.New("-o", "--output", 1))),
			input:    []Occurrence{Flag("--output", "out.txt")},
			expected: map[string]any{"--output": "out.txt"},
			ok:       true,
		},
		"Missing option": {
			root:  NewRequired(flag("-a", "")),
			input: []Occurrence{Flag("-x", true)},
		},
		"Leftover": {
			root:  NewRequired(NewArgument("<a>", nil)),
			input: args("1", "2"),
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tree := Fix(tc.root, nil)
			bindings, _, ok := tree.Match(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, bindings)
			}
		})
	}
}

func TestTree_Match_RequiredRollback(t *testing.T) {
	tree := Fix(NewRequired(flag("-a", ""), flag("-x", "")), nil)
	input := []Occurrence{Flag("-a", true), Positional("z")}
	matched, left, collected := tree.match(tree.root, input, nil)
	assert.False(t, matched)
	assert.Equal(t, input, left, "Partial consumption must be discarded")
	assert.Empty(t, collected)
}

func TestTree_Match_Optional(t *testing.T) {
	tree := Fix(NewRequired(NewOptional(flag("-a", ""), flag("-b", ""))), nil)

	bindings, _, ok := tree.Match([]Occurrence{Flag("-b", true)})
	require.True(t, ok)
	assert.Equal(t, map[string]any{"-a": false, "-b": true}, bindings)

	bindings, _, ok = tree.Match(nil)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"-a": false, "-b": false}, bindings)
}

func TestTree_Match_EitherGreedy(t *testing.T) {
	tree := Fix(NewRequired(NewEither(
		NewCommand("a"),
		NewRequired(NewCommand("a"), NewCommand("b")),
	)), nil)
	bindings, _, ok := tree.Match(args("a", "b"))
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": true, "b": true}, bindings)
}

func TestTree_Match_EitherFirstWinsTies(t *testing.T) {
	tree := Fix(NewRequired(NewEither(
		NewArgument("<x>", nil),
		NewArgument("<y>", nil),
	)), nil)
	bindings, _, ok := tree.Match(args("1"))
	require.True(t, ok)
	assert.Equal(t, map[string]any{"<x>": "1", "<y>": nil}, bindings)
}

func TestTree_Match_EitherNoAlternative(t *testing.T) {
	tree := Fix(NewRequired(NewEither(flag("-a", ""), flag("-b", ""))), nil)
	_, left, ok := tree.Match([]Occurrence{Flag("-c", true)})
	assert.False(t, ok)
	assert.Len(t, left, 1)
}

func TestTree_Match_OneOrMore(t *testing.T) {
	tree := Fix(NewRequired(NewOneOrMore(NewArgument("<name>", nil))), nil)

	bindings, _, ok := tree.Match(args("x", "y", "z"))
	require.True(t, ok)
	assert.Equal(t, map[string]any{"<name>": []string{"x", "y", "z"}}, bindings)

	_, _, ok = tree.Match(nil)
	assert.False(t, ok, "One or more requires at least one match")
}

func TestTree_Match_OneOrMoreNoProgress(t *testing.T) {
	tree := Fix(NewRequired(NewOneOrMore(NewOptional(NewArgument("<x>", nil)))), nil)
	bindings, _, ok := tree.Match(nil)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"<x>": []string{}}, bindings)
}

func TestTree_Match_Counting(t *testing.T) {
	tree := Fix(NewRequired(NewOneOrMore(flag("-v", ""))), nil)
	bindings, _, ok := tree.Match([]Occurrence{Flag("-v", true), Flag("-v", true), Flag("-v", true)})
	require.True(t, ok)
	assert.Equal(t, map[string]any{"-v": 3}, bindings)

	tree = Fix(NewRequired(NewCommand("go"), NewCommand("go")), nil)
	bindings, _, ok = tree.Match(args("go", "go"))
	require.True(t, ok)
	assert.Equal(t, map[string]any{"go": 2}, bindings)

	_, _, ok = tree.Match(args("go", "go", "go"))
	assert.False(t, ok)
}

func TestTree_Match_RepeatedOptionDefault(t *testing.T) {
	path := option.New("", "--path", 1).WithValue("a b")
	tree := Fix(NewRequired(NewOneOrMore(NewOptional(NewOption(path)))), nil)

	bindings, _, ok := tree.Match(nil)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"--path": []string{"a", "b"}}, bindings)

	bindings, _, ok = tree.Match([]Occurrence{Flag("--path", "c"), Flag("--path", "d")})
	require.True(t, ok)
	assert.Equal(t, map[string]any{"--path": []string{"c", "d"}}, bindings)
}

func TestTree_Match_SharedIdentity(t *testing.T) {
	tree := Fix(NewRequired(NewArgument("<x>", nil), NewOptional(NewArgument("<x>", nil))), nil)
	assert.Len(t, tree.Leaves(), 1)

	bindings, _, ok := tree.Match(args("1", "2"))
	require.True(t, ok)
	assert.Equal(t, map[string]any{"<x>": []string{"1", "2"}}, bindings)

	bindings, _, ok = tree.Match(args("1"))
	require.True(t, ok)
	assert.Equal(t, map[string]any{"<x>": []string{"1"}}, bindings)
}

func TestTree_Match_DoesNotLeakState(t *testing.T) {
	tree := Fix(NewRequired(NewOneOrMore(NewArgument("<name>", nil))), nil)
	bindings, _, ok := tree.Match(args("x"))
	require.True(t, ok)
	bindings["<name>"] = append(bindings["<name>"].([]string), "mutated")

	bindings, _, ok = tree.Match(args("y"))
	require.True(t, ok)
	assert.Equal(t, []string{"y"}, bindings["<name>"])
	leaf, found := tree.Leaf(Argument, "<name>")
	require.True(t, found)
	assert.Equal(t, []string{}, leaf.Value)
}

func TestTree_Match_Concurrent(t *testing.T) {
	tree := Fix(NewRequired(NewEither(
		NewRequired(NewCommand("add"), NewOneOrMore(NewArgument("<file>", nil))),
		NewRequired(NewCommand("rm"), NewArgument("<file>", nil)),
	)), nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := args("add", "a", "b")
			expected := []string{"a", "b"}
			if i%2 == 1 {
				input = args("rm", "c")
				expected = []string{"c"}
			}
			bindings, _, ok := tree.Match(input)
			assert.True(t, ok)
			assert.Equal(t, expected, bindings["<file>"])
		}(i)
	}
	wg.Wait()
}
