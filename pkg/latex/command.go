package latex

import "strings"

// Command is a LaTeX macro invocation.
//
// Without extra arguments it prints as \name[options]{arg}...; with extra
// arguments the options move between the two argument groups, which is the
// shape \newacro{A}[short]{long} needs.
type Command struct {
	Name           string
	Options        []string
	Arguments      []string
	ExtraArguments []string
	Packages       PackageSet
}

// NewCommand creates a command with positional arguments.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Arguments: args}
}

// Text renders the command without its package requirements.
func (c Command) Text() string {
	var b strings.Builder
	b.WriteString(`\`)
	b.WriteString(c.Name)
	if len(c.ExtraArguments) == 0 {
		writeOptions(&b, c.Options)
		writeArguments(&b, c.Arguments)
		return b.String()
	}
	writeArguments(&b, c.Arguments)
	writeOptions(&b, c.Options)
	writeArguments(&b, c.ExtraArguments)
	return b.String()
}

// Serialize implements Node.
func (c Command) Serialize() Fragment {
	return Fragment{Text: c.Text(), Packages: c.Packages}
}

func writeOptions(b *strings.Builder, opts []string) {
	if len(opts) == 0 {
		return
	}
	b.WriteByte('[')
	b.WriteString(strings.Join(opts, ","))
	b.WriteByte(']')
}

func writeArguments(b *strings.Builder, args []string) {
	for _, a := range args {
		b.WriteByte('{')
		b.WriteString(a)
		b.WriteByte('}')
	}
}
