package emit

import (
	"io"
	"strings"

	"github.com/heartmarshall/dictgen/internal/domain"
)

func init() {
	Register(domain.TargetRust, func(opts Options) Emitter {
		return &rustEmitter{fn: symbolOr(opts, "get_dictionary")}
	})
}

var rustEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\x00", `\0`,
)

// rustEmitter writes a single function returning the table. The plain layout
// matches the dictionary.rs consumed by the typo checker.
type rustEmitter struct {
	fn string
}

func (e *rustEmitter) Plain(w io.Writer, t domain.Table) error {
	ew := &errWriter{w: w}
	ew.printf("pub fn %s() -> Vec<Vec<&'static str>> {\n", e.fn)
	ew.printf("    vec![\n")
	for _, g := range t.Groups {
		ew.printf("        vec![\n")
		for _, entry := range g.Entries {
			ew.printf("            \"%s\",\n", rustEscaper.Replace(entry))
		}
		ew.printf("        ],\n")
	}
	ew.printf("    ]\n")
	ew.printf("}\n")
	return ew.err
}

func (e *rustEmitter) Padded(w io.Writer, t domain.PaddedTable) error {
	ew := &errWriter{w: w}
	ew.printf("pub fn %s() -> [[Option<&'static str>; %d]; %d] {\n", e.fn, t.Width, len(t.Rows))
	ew.printf("    [\n")
	for _, r := range t.Rows {
		ew.printf("        [\n")
		for _, s := range r.Slots {
			if s.Present {
				ew.printf("            Some(\"%s\"),\n", rustEscaper.Replace(s.Text))
			} else {
				ew.printf("            None,\n")
			}
		}
		ew.printf("        ],\n")
	}
	ew.printf("    ]\n")
	ew.printf("}\n")
	return ew.err
}
