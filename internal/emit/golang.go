package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"

	"github.com/heartmarshall/dictgen/internal/domain"
)

func init() {
	Register(domain.TargetGo, func(opts Options) Emitter {
		pkg := opts.Package
		if pkg == "" {
			pkg = "dictionary"
		}
		return &goEmitter{pkg: pkg, name: symbolOr(opts, "Dictionary")}
	})
}

// goEmitter writes a package-level variable holding the table. The output is
// run through go/format before it is written.
type goEmitter struct {
	pkg  string
	name string
}

func (e *goEmitter) header(ew *errWriter) {
	ew.printf("// Code generated by dictgen. DO NOT EDIT.\n\n")
	ew.printf("package %s\n\n", e.pkg)
}

func (e *goEmitter) Plain(w io.Writer, t domain.Table) error {
	var buf bytes.Buffer
	ew := &errWriter{w: &buf}
	e.header(ew)

	ew.printf("// %s holds dictionary entries grouped by length in ascending order.\n", e.name)
	if len(t.Groups) == 0 {
		ew.printf("var %s = [][]string{}\n", e.name)
		return e.flush(w, buf.Bytes())
	}

	ew.printf("var %s = [][]string{\n", e.name)
	for _, g := range t.Groups {
		if len(g.Entries) == 0 {
			ew.printf("\t{},\n")
			continue
		}
		ew.printf("\t{\n")
		for _, entry := range g.Entries {
			ew.printf("\t\t%s,\n", strconv.Quote(entry))
		}
		ew.printf("\t},\n")
	}
	ew.printf("}\n")
	if ew.err != nil {
		return ew.err
	}
	return e.flush(w, buf.Bytes())
}

func (e *goEmitter) Padded(w io.Writer, t domain.PaddedTable) error {
	var buf bytes.Buffer
	ew := &errWriter{w: &buf}
	e.header(ew)

	ew.printf("// Word is one slot of %s. Ok is false for padding.\n", e.name)
	ew.printf("type Word struct {\n\tText string\n\tOk   bool\n}\n\n")

	ew.printf("// %s holds words grouped by length, one row per length, each row\n", e.name)
	ew.printf("// padded to %d slots.\n", t.Width)
	if len(t.Rows) == 0 {
		ew.printf("var %s = [0][%d]Word{}\n", e.name, t.Width)
		return e.flush(w, buf.Bytes())
	}

	ew.printf("var %s = [%d][%d]Word{\n", e.name, len(t.Rows), t.Width)
	for _, r := range t.Rows {
		ew.printf("\t{\n")
		for _, s := range r.Slots {
			if s.Present {
				ew.printf("\t\t{%s, true},\n", strconv.Quote(s.Text))
			} else {
				ew.printf("\t\t{},\n")
			}
		}
		ew.printf("\t},\n")
	}
	ew.printf("}\n")
	if ew.err != nil {
		return ew.err
	}
	return e.flush(w, buf.Bytes())
}

func (e *goEmitter) flush(w io.Writer, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("format go source: %w", err)
	}
	_, err = w.Write(formatted)
	return err
}
