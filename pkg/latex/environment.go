package latex

import "strings"

// Environment is a \begin{name} ... \end{name} block.
type Environment struct {
	Name      string
	Star      bool
	Options   []string
	Arguments []string
	Packages  PackageSet
	Children  []Node
}

// NewEnvironment creates an empty environment.
func NewEnvironment(name string) *Environment {
	return &Environment{Name: name}
}

// Append adds children in order.
func (e *Environment) Append(nodes ...Node) {
	e.Children = append(e.Children, nodes...)
}

func (e *Environment) fullName() string {
	if e.Star {
		return e.Name + "*"
	}
	return e.Name
}

// Serialize implements Node.
func (e *Environment) Serialize() Fragment {
	begin := Command{Name: "begin", Arguments: []string{e.fullName()}}.Text()
	begin += optionsAndArguments(e.Options, e.Arguments)
	end := Command{Name: "end", Arguments: []string{e.fullName()}}.Text()

	frags := []Fragment{{Text: begin, Packages: e.Packages}}
	frags = append(frags, SerializeAll(e.Children)...)
	frags = append(frags, Fragment{Text: end})
	return Concat(Separator, frags...)
}

func optionsAndArguments(opts, args []string) string {
	var b strings.Builder
	writeOptions(&b, opts)
	writeArguments(&b, args)
	return b.String()
}
