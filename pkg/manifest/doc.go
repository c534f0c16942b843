// Package manifest describes a paper declaratively in YAML or JSON and builds
// it into a paper.Document.
//
// A minimal aastex.yaml:
//
//	title: A Survey of Nearby Dwarfs
//	affiliations:
//	  cfa: Center for Astrophysics
//	authors:
//	  - name: Jane Doe
//	    affiliation: cfa
//	sections:
//	  - title: Introduction
//	    text: Dwarf galaxies are ...
//	bibliography: sources
package manifest
