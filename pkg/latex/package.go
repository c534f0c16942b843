package latex

import (
	"slices"
	"strings"
)

// Package is a \usepackage declaration.
type Package struct {
	Name    string
	Options []string
}

// NewPackage creates a package declaration.
func NewPackage(name string, options ...string) Package {
	return Package{Name: name, Options: options}
}

// key identifies a package for deduplication.
func (p Package) key() string {
	if len(p.Options) == 0 {
		return p.Name
	}
	return p.Name + "[" + strings.Join(p.Options, ",") + "]"
}

// Serialize implements Node.
func (p Package) Serialize() Fragment {
	return Fragment{Text: Command{Name: "usepackage", Options: p.Options, Arguments: []string{p.Name}}.Text()}
}

// PackageSet is a deduplicated, unordered set of packages.
// The zero value is an empty set ready to use with Union.
type PackageSet map[string]Package

// NewPackageSet builds a set from the given packages.
func NewPackageSet(pkgs ...Package) PackageSet {
	if len(pkgs) == 0 {
		return nil
	}
	s := make(PackageSet, len(pkgs))
	for _, p := range pkgs {
		s[p.key()] = p
	}
	return s
}

// Union returns a set holding the packages of both s and other.
// Neither operand is modified.
func (s PackageSet) Union(other PackageSet) PackageSet {
	if len(other) == 0 {
		return s
	}
	if len(s) == 0 {
		return other
	}
	out := make(PackageSet, len(s)+len(other))
	for k, p := range s {
		out[k] = p
	}
	for k, p := range other {
		out[k] = p
	}
	return out
}

// Has reports whether a package with the given name is in the set,
// regardless of its options.
func (s PackageSet) Has(name string) bool {
	for _, p := range s {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Sorted returns the packages ordered by name, then by options.
func (s PackageSet) Sorted() []Package {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]Package, 0, len(keys))
	for _, k := range keys {
		out = append(out, s[k])
	}
	return out
}
