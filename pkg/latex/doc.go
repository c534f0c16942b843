// Package latex holds the markup primitives the rest of aastex is built from.
//
// Every value that can appear in a document implements [Node]. Serializing a
// node yields a [Fragment]: the LaTeX text plus the set of packages that text
// needs. Containers concatenate their children's fragments with [Concat],
// which also unions the package sets, so the document can declare every
// package exactly once without any shared mutable state.
//
// It prints commands, environments, labels and references. It does not
// parse or compile LaTeX.
package latex
