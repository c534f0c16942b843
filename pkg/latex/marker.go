package latex

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MarkerSeparator splits a marker's prefix from its name.
const MarkerSeparator = ":"

// Marker identifies a referenceable location, e.g. fig:data.
type Marker struct {
	Prefix string
	Name   string
}

// NewMarker creates a marker. The name is used verbatim.
func NewMarker(name, prefix string) Marker {
	return Marker{Prefix: prefix, Name: name}
}

// ParseMarker reads "prefix:name" or a bare "name". A bare name is placed
// under defaultPrefix. Only the first separator splits, so "fig:a:b" has the
// name "a:b".
func ParseMarker(text, defaultPrefix string) Marker {
	if prefix, name, ok := strings.Cut(text, MarkerSeparator); ok {
		return Marker{Prefix: prefix, Name: name}
	}
	return Marker{Prefix: defaultPrefix, Name: text}
}

// String returns the key used inside \label and \ref.
func (m Marker) String() string {
	if m.Prefix == "" {
		return m.Name
	}
	return m.Prefix + MarkerSeparator + m.Name
}

// Label anchors a marker at its position in the document.
type Label struct {
	Marker Marker
}

// NewLabel creates a label for the marker.
func NewLabel(m Marker) Label {
	return Label{Marker: m}
}

// Serialize implements Node.
func (l Label) Serialize() Fragment {
	return NewCommand("label", l.Marker.String()).Serialize()
}

// Ref is a cross-reference to a marker.
type Ref struct {
	Marker Marker
}

// NewRef creates a reference to the marker.
func NewRef(m Marker) Ref {
	return Ref{Marker: m}
}

// Serialize implements Node.
func (r Ref) Serialize() Fragment {
	return NewCommand("ref", r.Marker.String()).Serialize()
}

// SanitizeMarkerName turns free text (usually a heading) into a name that is
// safe inside \label: accents are stripped, and every run of characters
// other than ASCII letters, digits, '-' and '_' becomes a single '-'.
func SanitizeMarkerName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range folded {
		if isMarkerRune(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

func isMarkerRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_':
		return true
	}
	return false
}
