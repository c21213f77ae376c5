// Package argv assembles the argument vector handed to the patch-stack
// engine. Arguments are built as a tagged tree of literals and nested
// groups so call sites can compose option fragments without caring about
// nesting depth, then flattened once into the final vector.
package argv

// Node is either a literal argument or a nested group. Construct nodes
// with Lit and Group; the zero value flattens to nothing.
type Node struct {
	literal string
	group   []Node
	leaf    bool
}

// Lit wraps a single literal argument.
func Lit(arg string) Node {
	return Node{literal: arg, leaf: true}
}

// Group nests the given nodes under one node.
func Group(nodes ...Node) Node {
	return Node{group: nodes}
}

// Strings builds a group of literals, one per argument.
func Strings(args ...string) Node {
	nodes := make([]Node, len(args))
	for i, arg := range args {
		nodes[i] = Lit(arg)
	}
	return Group(nodes...)
}

// If returns a literal group when the condition holds and an empty node
// otherwise, so optional flags can be composed inline.
func If(cond bool, args ...string) Node {
	if !cond {
		return Node{}
	}
	return Strings(args...)
}

// Flatten spreads the nodes depth-first into one ordered token sequence.
// Relative order is preserved and no element is dropped, whatever the
// nesting depth.
func Flatten(nodes ...Node) []string {
	out := make([]string, 0, len(nodes))
	return appendFlat(out, nodes)
}

func appendFlat(out []string, nodes []Node) []string {
	for _, node := range nodes {
		if node.leaf {
			out = append(out, node.literal)
			continue
		}
		out = appendFlat(out, node.group)
	}
	return out
}
