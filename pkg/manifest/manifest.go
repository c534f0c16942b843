package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultOutput is the output name, without extension, used when the
// manifest does not set one.
const DefaultOutput = "paper"

// Manifest is the on-disk description of a paper.
type Manifest struct {
	Class        string            `yaml:"class,omitempty" json:"class,omitempty"`
	ClassOptions []string          `yaml:"class_options,omitempty" json:"class_options,omitempty"`
	FontSize     string            `yaml:"font_size,omitempty" json:"font_size,omitempty"`
	PageNumbers  *bool             `yaml:"page_numbers,omitempty" json:"page_numbers,omitempty"`
	Indent       *bool             `yaml:"indent,omitempty" json:"indent,omitempty"`
	Microtype    bool              `yaml:"microtype,omitempty" json:"microtype,omitempty"`
	Geometry     map[string]string `yaml:"geometry,omitempty" json:"geometry,omitempty"`
	// Output is the .tex path relative to the manifest, without extension.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	Title        string              `yaml:"title" json:"title"`
	ShortTitle   string              `yaml:"short_title,omitempty" json:"short_title,omitempty"`
	Affiliations map[string]string   `yaml:"affiliations,omitempty" json:"affiliations,omitempty"`
	Authors      []Author            `yaml:"authors,omitempty" json:"authors,omitempty"`
	Acronyms     []Acronym           `yaml:"acronyms,omitempty" json:"acronyms,omitempty"`
	Variables    map[string]string   `yaml:"variables,omitempty" json:"variables,omitempty"`
	Quantities   map[string]Quantity `yaml:"quantities,omitempty" json:"quantities,omitempty"`
	Preamble     []string            `yaml:"preamble,omitempty" json:"preamble,omitempty"`
	Abstract     string              `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	Sections     []Section           `yaml:"sections,omitempty" json:"sections,omitempty"`
	Bibliography string              `yaml:"bibliography,omitempty" json:"bibliography,omitempty"`
}

// Author refers to its affiliation by key in Manifest.Affiliations.
type Author struct {
	Name        string `yaml:"name" json:"name"`
	Affiliation string `yaml:"affiliation,omitempty" json:"affiliation,omitempty"`
	Email       string `yaml:"email,omitempty" json:"email,omitempty"`
	ORCID       string `yaml:"orcid,omitempty" json:"orcid,omitempty"`
}

type Acronym struct {
	Acronym   string `yaml:"acronym" json:"acronym"`
	Full      string `yaml:"full" json:"full"`
	Short     string `yaml:"short,omitempty" json:"short,omitempty"`
	Plural    bool   `yaml:"plural,omitempty" json:"plural,omitempty"`
	ShortOnly bool   `yaml:"short_only,omitempty" json:"short_only,omitempty"`
}

// Quantity is a value with a unit, e.g. {value: 5800, unit: K}. Unit is
// parsed as SI base symbols ("kg m^2 s^-2"); anything else is printed as
// given.
type Quantity struct {
	Value      Values `yaml:"value" json:"value"`
	Unit       string `yaml:"unit,omitempty" json:"unit,omitempty"`
	Digits     *int   `yaml:"digits,omitempty" json:"digits,omitempty"`
	Scientific *bool  `yaml:"scientific,omitempty" json:"scientific,omitempty"`
}

// Section nests up to subsubsections.
type Section struct {
	Title       string    `yaml:"title" json:"title"`
	Label       Label     `yaml:"label,omitempty" json:"label,omitzero"`
	Numbered    *bool     `yaml:"numbered,omitempty" json:"numbered,omitempty"`
	Text        string    `yaml:"text,omitempty" json:"text,omitempty"`
	Figures     []Figure  `yaml:"figures,omitempty" json:"figures,omitempty"`
	Subsections []Section `yaml:"subsections,omitempty" json:"subsections,omitempty"`
}

type Figure struct {
	Label    string `yaml:"label,omitempty" json:"label,omitempty"`
	Star     bool   `yaml:"star,omitempty" json:"star,omitempty"`
	Position string `yaml:"position,omitempty" json:"position,omitempty"`
	// Images are paths or doublestar globs relative to the manifest.
	Images   []string `yaml:"images,omitempty" json:"images,omitempty"`
	Width    string   `yaml:"width,omitempty" json:"width,omitempty"`
	Gridline []Panel  `yaml:"gridline,omitempty" json:"gridline,omitempty"`
	Caption  string   `yaml:"caption,omitempty" json:"caption,omitempty"`
}

// Panel is one image of a gridline. Align is "left", "right" or empty.
type Panel struct {
	File    string `yaml:"file" json:"file"`
	Width   string `yaml:"width" json:"width"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
	Align   string `yaml:"align,omitempty" json:"align,omitempty"`
}

// Label is either false (no label) or an id. Absent or true derives one
// from the title.
type Label struct {
	Disabled bool
	ID       string
}

func (l *Label) set(v any) error {
	switch v := v.(type) {
	case bool:
		*l = Label{Disabled: !v}
	case string:
		*l = Label{ID: v}
	case nil:
		*l = Label{}
	default:
		return fmt.Errorf("label must be a string or a boolean, got %T", v)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Label) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	return l.set(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Label) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return l.set(v)
}

// MarshalYAML implements yaml.Marshaler.
func (l Label) MarshalYAML() (any, error) {
	if l.Disabled {
		return false, nil
	}
	return l.ID, nil
}

// MarshalJSON implements json.Marshaler.
func (l Label) MarshalJSON() ([]byte, error) {
	if l.Disabled {
		return []byte("false"), nil
	}
	return json.Marshal(l.ID)
}

// IsZero lets omitempty skip the default label.
func (l Label) IsZero() bool {
	return !l.Disabled && l.ID == ""
}

// Values accepts a number or a list of numbers.
type Values []float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var list []float64
		if err := node.Decode(&list); err != nil {
			return err
		}
		*v = list
		return nil
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return err
	}
	*v = Values{f}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Values) UnmarshalJSON(data []byte) error {
	if strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		var list []float64
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*v = list
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Values{f}
	return nil
}
