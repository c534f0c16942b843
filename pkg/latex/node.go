package latex

import "strings"

// Separator joins sibling fragments. The trailing % swallows the newline so
// that LaTeX does not see spurious whitespace between commands.
const Separator = "%\n"

// Node is anything that can print itself as LaTeX.
type Node interface {
	Serialize() Fragment
}

// Referencer is implemented by nodes that can be cited inline.
// Reference returns the cross-reference markup, never the anchor.
type Referencer interface {
	Reference() (string, error)
}

// Fragment is the output of a single Serialize call.
type Fragment struct {
	Text     string
	Packages PackageSet
}

// String returns the fragment text.
func (f Fragment) String() string {
	return f.Text
}

// Concat joins fragments with sep and unions their package sets.
// Fragments with empty text are skipped so they do not leave stray separators.
func Concat(sep string, frags ...Fragment) Fragment {
	var (
		parts []string
		pkgs  PackageSet
	)
	for _, f := range frags {
		pkgs = pkgs.Union(f.Packages)
		if f.Text == "" {
			continue
		}
		parts = append(parts, f.Text)
	}
	return Fragment{Text: strings.Join(parts, sep), Packages: pkgs}
}

// SerializeAll serializes each node in order.
func SerializeAll(nodes []Node) []Fragment {
	frags := make([]Fragment, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		frags = append(frags, n.Serialize())
	}
	return frags
}

// Raw is markup emitted verbatim.
type Raw string

// Serialize implements Node.
func (r Raw) Serialize() Fragment {
	return Fragment{Text: string(r)}
}

// Text is plain prose; it is escaped on serialization.
type Text string

// Serialize implements Node.
func (t Text) Serialize() Fragment {
	return Fragment{Text: Escape(string(t))}
}

// Requires attaches package requirements to a node that does not declare any
// itself, e.g. a Raw block using a command from a contributed package.
func Requires(n Node, pkgs ...Package) Node {
	return requiring{node: n, pkgs: NewPackageSet(pkgs...)}
}

type requiring struct {
	node Node
	pkgs PackageSet
}

func (r requiring) Serialize() Fragment {
	f := r.node.Serialize()
	f.Packages = f.Packages.Union(r.pkgs)
	return f
}
