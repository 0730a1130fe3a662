package pattern

import (
	"fmt"
	"slices"
)

// Occurrence is one resolved element of an argument vector.
// Positional arguments have the [Argument] kind, an empty name, and a string value.
// Options have the [Option] kind, the option's name, and either true or the string given to the option.
type Occurrence struct {
	Kind  Kind
	Name  string
	Value any
}

// Positional creates an [Occurrence] for a positional argument.
func Positional(value string) Occurrence {
	return Occurrence{Kind: Argument, Value: value}
}

// Flag creates an [Occurrence] for an option.
func Flag(name string, value any) Occurrence {
	return Occurrence{Kind: Option, Name: name, Value: value}
}

type binding struct {
	slot  int
	value any
}

// Match matches occurrences against the Tree.
// If every occurrence is consumed, then the bindings for every leaf in the Tree are returned with true.
// Otherwise, the occurrences that could not be matched are returned with false.
func (t *Tree) Match(occurrences []Occurrence) (map[string]any, []Occurrence, bool) {
	matched, left, collected := t.match(t.root, occurrences, nil)
	if !matched {
		return nil, occurrences, false
	}
	if len(left) > 0 {
		return nil, left, false
	}
	bindings := make(map[string]any, len(t.leaves))
	for _, leaf := range t.leaves {
		bindings[leaf.Name] = cloneValue(leaf.Value)
	}
	for _, b := range collected {
		bindings[t.leaves[b.slot].Name] = b.value
	}
	return bindings, nil, true
}

func (t *Tree) match(n *Node, left []Occurrence, collected []binding) (bool, []Occurrence, []binding) {
	switch n.Kind {
	case Argument, Command, Option:
		return t.matchLeaf(n, left, collected)
	case Required:
		l, c := left, collected
		for _, child := range n.Children {
			var matched bool
			matched, l, c = t.match(child, l, c)
			if !matched {
				return false, left, collected
			}
		}
		return true, l, c
	case Optional, OptionsShortcut:
		for _, child := range n.Children {
			_, left, collected = t.match(child, left, collected)
		}
		return true, left, collected
	case OneOrMore:
		var (
			l, c    = left, collected
			times   int
			lastLen = -1
		)
		for {
			var matched bool
			matched, l, c = t.match(n.Children[0], l, c)
			if !matched {
				break
			}
			times++
			if len(l) == lastLen {
				break
			}
			lastLen = len(l)
		}
		if times == 0 {
			return false, left, collected
		}
		return true, l, c
	case Either:
		var (
			found         bool
			bestLeft      []Occurrence
			bestCollected []binding
		)
		for _, alt := range n.Children {
			matched, l, c := t.match(alt, left, collected)
			if !matched {
				continue
			}
			if !found || len(l) < len(bestLeft) {
				found, bestLeft, bestCollected = true, l, c
			}
		}
		if !found {
			return false, left, collected
		}
		return true, bestLeft, bestCollected
	default:
		panic(fmt.Sprintf("unknown pattern kind %s", n.Kind))
	}
}

func (t *Tree) matchLeaf(n *Node, left []Occurrence, collected []binding) (bool, []Occurrence, []binding) {
	pos, value, ok := t.find(n, left)
	if !ok {
		return false, left, collected
	}
	remaining := slices.Delete(slices.Clone(left), pos, pos+1)

	var increment any
	switch t.leaves[n.slot].Value.(type) {
	case int:
		increment = 1
	case []string:
		switch v := value.(type) {
		case string:
			increment = []string{v}
		case []string:
			increment = v
		default:
			increment = []string{}
		}
	default:
		return true, remaining, append(slices.Clip(collected), binding{slot: n.slot, value: value})
	}

	i := slices.IndexFunc(collected, func(b binding) bool {
		return b.slot == n.slot
	})
	if i < 0 {
		return true, remaining, append(slices.Clip(collected), binding{slot: n.slot, value: increment})
	}
	updated := slices.Clone(collected)
	switch acc := updated[i].value.(type) {
	case int:
		updated[i].value = acc + 1
	case []string:
		updated[i].value = slices.Concat(acc, increment.([]string))
	}
	return true, remaining, updated
}

// find locates the first occurrence that n can consume, returning its position and the value n binds.
func (t *Tree) find(n *Node, left []Occurrence) (int, any, bool) {
	switch n.Kind {
	case Argument:
		for i, occ := range left {
			if occ.Kind == Argument {
				return i, occ.Value, true
			}
		}
	case Command:
		for i, occ := range left {
			if occ.Kind != Argument {
				continue
			}
			if occ.Value == n.name {
				return i, true, true
			}
			break
		}
	case Option:
		for i, occ := range left {
			if occ.Kind == Option && occ.Name == n.name {
				return i, occ.Value, true
			}
		}
	}
	return -1, nil, false
}
