/*
Package pattern implements the usage pattern tree and the backtracking matcher that runs argument vectors against it.

A tree is built from [Node] values by a parser, then normalized once with [Fix].
Normalization expands every options shortcut, gives every same-named terminal one shared slot in the [Tree], and marks terminals that can repeat so that they accumulate lists or counts.

# Matching

[Tree.Match] consumes a flat list of [Occurrence] values produced from an argument vector.
Matching never modifies the [Tree]; all state lives in the slices threaded through the recursion, so a single [Tree] may be matched from many goroutines at once.

  - Required matches every child in order, and rolls back entirely if one child fails.
  - Optional and OptionsShortcut match whatever children they can, and always succeed.
  - OneOrMore repeats its child until it fails or stops consuming occurrences.
  - Either tries every alternative from the same state and keeps the one that leaves the fewest occurrences. The first alternative wins ties.

A match succeeds only when the root matches and no occurrence is left over.
*/
package pattern
