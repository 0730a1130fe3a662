package pattern

import (
	"fmt"
	"github.com/saylorsolutions/docopt/option"
	"strings"
)

// Kind identifies the variant of a [Node].
type Kind uint8

const (
	Argument Kind = iota + 1
	Command
	Option
	Required
	Optional
	Either
	OneOrMore
	OptionsShortcut
)

var kindNames = map[Kind]string{
	Argument:        "Argument",
	Command:         "Command",
	Option:          "Option",
	Required:        "Required",
	Optional:        "Optional",
	Either:          "Either",
	OneOrMore:       "OneOrMore",
	OptionsShortcut: "OptionsShortcut",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsLeaf reports whether nodes of this Kind are terminals.
func (k Kind) IsLeaf() bool {
	switch k {
	case Argument, Command, Option:
		return true
	default:
		return false
	}
}

// Node is one vertex of a pattern tree.
// Terminal nodes carry a name and value, branch nodes carry children.
type Node struct {
	Kind     Kind
	Children []*Node

	name  string
	opt   option.Option
	value any
	slot  int
}

// NewArgument creates a positional argument terminal such as "<name>" or "FILE".
func NewArgument(name string, value any) *Node {
	return &Node{Kind: Argument, name: name, value: value, slot: -1}
}

// NewCommand creates a literal word terminal.
func NewCommand(name string) *Node {
	return &Node{Kind: Command, name: name, value: false, slot: -1}
}

// NewOption creates a terminal that refers to a declared option.
func NewOption(o option.Option) *Node {
	return &Node{Kind: Option, name: o.Name(), opt: o, value: o.Value, slot: -1}
}

func newBranch(kind Kind, children []*Node) *Node {
	return &Node{Kind: kind, Children: children, slot: -1}
}

// NewRequired creates a sequence where every child must match.
func NewRequired(children ...*Node) *Node {
	return newBranch(Required, children)
}

// NewOptional creates a sequence where every child may match.
func NewOptional(children ...*Node) *Node {
	return newBranch(Optional, children)
}

// NewEither creates a set of alternatives.
func NewEither(children ...*Node) *Node {
	return newBranch(Either, children)
}

// NewOneOrMore creates a repetition of children, which are wrapped in a [Required] node if there is more than one.
func NewOneOrMore(children ...*Node) *Node {
	if len(children) == 1 {
		return newBranch(OneOrMore, children)
	}
	return newBranch(OneOrMore, []*Node{NewRequired(children...)})
}

// NewOptionsShortcut creates the placeholder for "[options]".
// Its children are filled in by [Fix].
func NewOptionsShortcut() *Node {
	return newBranch(OptionsShortcut, nil)
}

// Name returns the name of a terminal node, or an empty string for branches.
func (n *Node) Name() string {
	return n.name
}

// Option returns the referenced option of an [Option] node.
func (n *Node) Option() option.Option {
	return n.opt
}

// Value returns the value a terminal node was created with.
func (n *Node) Value() any {
	return n.value
}

func (n *Node) String() string {
	return n.format(func(n *Node) any { return n.value })
}

func (n *Node) format(valueOf func(*Node) any) string {
	switch n.Kind {
	case Argument, Command:
		return fmt.Sprintf("%s(%s, %s)", n.Kind, n.name, option.FormatValue(valueOf(n)))
	case Option:
		return n.opt.WithValue(valueOf(n)).String()
	case Required, Optional, Either, OneOrMore, OptionsShortcut:
		parts := make([]string, len(n.Children))
		for i, child := range n.Children {
			parts[i] = child.format(valueOf)
		}
		return fmt.Sprintf("%s(%s)", n.Kind, strings.Join(parts, ", "))
	default:
		panic(fmt.Sprintf("unknown pattern kind %s", n.Kind))
	}
}

// Walk calls fn for n and every node below it, depth first.
// Children of a node are not visited if fn returns false for it.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
