package pattern

import (
	"fmt"
	"github.com/saylorsolutions/docopt/option"
	"slices"
	"strings"
)

// Leaf is the shared state of every terminal in a [Tree] with the same kind and name.
type Leaf struct {
	Kind   Kind
	Name   string
	Option option.Option // Option is only set for [Option] leaves.
	Value  any           // Value is the default bound when the leaf is not matched.
}

type leafKey struct {
	kind Kind
	name string
}

// Tree is a normalized pattern tree.
// Terminal nodes refer to a slot in a flat table of leaves, so that two nodes with the same name are the same leaf.
//
// A Tree is read-only once created by [Fix].
type Tree struct {
	root   *Node
	leaves []Leaf
}

// Fix normalizes a freshly parsed pattern into a [Tree].
// The declared options are used to expand every [OptionsShortcut] node into the options that are not already mentioned elsewhere in the pattern.
//
// Fix takes ownership of root, which must not be modified afterward.
func Fix(root *Node, declared []option.Option) *Tree {
	expandShortcuts(root, declared)
	t := &Tree{root: root}
	t.unifyLeaves()
	t.markRepeating()
	return t
}

func expandShortcuts(root *Node, declared []option.Option) {
	var (
		mentioned []option.Option
		shortcuts []*Node
	)
	root.Walk(func(n *Node) bool {
		switch n.Kind {
		case Option:
			mentioned = append(mentioned, n.opt)
		case OptionsShortcut:
			shortcuts = append(shortcuts, n)
		}
		return true
	})
	if len(shortcuts) == 0 {
		return
	}
	var remaining []option.Option
	for _, o := range declared {
		if slices.ContainsFunc(mentioned, o.Same) || slices.ContainsFunc(remaining, o.Same) {
			continue
		}
		remaining = append(remaining, o)
	}
	for _, shortcut := range shortcuts {
		shortcut.Children = make([]*Node, len(remaining))
		for i, o := range remaining {
			shortcut.Children[i] = NewOption(o)
		}
	}
}

func (t *Tree) unifyLeaves() {
	slots := map[leafKey]int{}
	t.root.Walk(func(n *Node) bool {
		if !n.Kind.IsLeaf() {
			return true
		}
		key := leafKey{kind: n.Kind, name: n.name}
		slot, ok := slots[key]
		if !ok {
			slot = len(t.leaves)
			slots[key] = slot
			t.leaves = append(t.leaves, Leaf{Kind: n.Kind, Name: n.name, Option: n.opt, Value: n.value})
		}
		n.slot = slot
		return false
	})
}

// markRepeating switches the default of every leaf that can be matched more than once within a single alternative of the pattern.
// Arguments and options that take a value collect a list, while commands and flags count occurrences.
func (t *Tree) markRepeating() {
	for _, alternative := range t.alternatives() {
		counts := map[int]int{}
		for _, slot := range alternative {
			counts[slot]++
		}
		for slot, count := range counts {
			if count < 2 {
				continue
			}
			leaf := &t.leaves[slot]
			switch {
			case leaf.Kind == Argument || (leaf.Kind == Option && leaf.Option.Arity > 0):
				switch v := leaf.Value.(type) {
				case nil:
					leaf.Value = []string{}
				case string:
					leaf.Value = strings.Fields(v)
				}
			case leaf.Kind == Command || leaf.Kind == Option:
				leaf.Value = 0
			}
		}
	}
}

// alternatives expands the tree into the flat sequences of leaf slots it could describe.
// One-or-more nodes are expanded to two copies of their child, which is enough to detect repetition.
func (t *Tree) alternatives() [][]int {
	var (
		result [][]int
		groups = [][]*Node{{t.root}}
	)
	for len(groups) > 0 {
		children := groups[0]
		groups = groups[1:]
		i := slices.IndexFunc(children, func(n *Node) bool {
			return !n.Kind.IsLeaf()
		})
		if i < 0 {
			slots := make([]int, len(children))
			for j, child := range children {
				slots[j] = child.slot
			}
			result = append(result, slots)
			continue
		}
		branch := children[i]
		rest := slices.Delete(slices.Clone(children), i, i+1)
		switch branch.Kind {
		case Either:
			for _, alt := range branch.Children {
				groups = append(groups, append([]*Node{alt}, rest...))
			}
		case OneOrMore:
			groups = append(groups, slices.Concat(branch.Children, branch.Children, rest))
		case Required, Optional, OptionsShortcut:
			groups = append(groups, slices.Concat(branch.Children, rest))
		default:
			panic(fmt.Sprintf("unknown pattern kind %s", branch.Kind))
		}
	}
	return result
}

// Root returns the root node of the Tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Leaves returns a copy of the leaf table in the order leaves first appear in the pattern.
func (t *Tree) Leaves() []Leaf {
	leaves := make([]Leaf, len(t.leaves))
	for i, leaf := range t.leaves {
		leaf.Value = cloneValue(leaf.Value)
		leaves[i] = leaf
	}
	return leaves
}

// Leaf looks up a leaf by kind and name.
func (t *Tree) Leaf(kind Kind, name string) (Leaf, bool) {
	for _, leaf := range t.leaves {
		if leaf.Kind == kind && leaf.Name == name {
			leaf.Value = cloneValue(leaf.Value)
			return leaf, true
		}
	}
	return Leaf{}, false
}

// WithDefaults returns a copy of the Tree with different default values for the named leaves.
// A string default for a list-valued leaf is split on whitespace, and a boolean default for a counting leaf counts as one occurrence.
// Names that are not in the Tree are ignored.
func (t *Tree) WithDefaults(defaults map[string]any) *Tree {
	if len(defaults) == 0 {
		return t
	}
	cp := &Tree{root: t.root, leaves: slices.Clone(t.leaves)}
	for i := range cp.leaves {
		leaf := &cp.leaves[i]
		def, ok := defaults[leaf.Name]
		if !ok {
			continue
		}
		switch leaf.Value.(type) {
		case []string:
			switch v := def.(type) {
			case string:
				def = strings.Fields(v)
			case []string:
				def = slices.Clone(v)
			}
		case int:
			if b, isBool := def.(bool); isBool {
				def = 0
				if b {
					def = 1
				}
			}
		}
		leaf.Value = def
	}
	return cp
}

// String renders the Tree with the default value of each leaf.
func (t *Tree) String() string {
	return t.root.format(func(n *Node) any {
		return t.leaves[n.slot].Value
	})
}

func cloneValue(value any) any {
	if list, ok := value.([]string); ok {
		return slices.Clone(list)
	}
	return value
}
