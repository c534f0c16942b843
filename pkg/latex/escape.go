package latex

import "strings"

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\^{}`,
	`[`, `{[}`,
	`]`, `{]}`,
	"\n", `\newline`+Separator,
	"\u00a0", `~`,
)

// Escape makes plain text safe to embed in LaTeX.
func Escape(s string) string {
	return escaper.Replace(s)
}
