// Package emit renders dictionary tables as source text for a target
// language. Emitters register themselves by target name.
package emit

import (
	"fmt"
	"io"

	"github.com/heartmarshall/dictgen/internal/domain"
)

// Emitter renders a plain or padded table.
type Emitter interface {
	Plain(w io.Writer, t domain.Table) error
	Padded(w io.Writer, t domain.PaddedTable) error
}

// Options customizes the generated symbol names. Empty fields fall back to
// target defaults.
type Options struct {
	Package string // go only
	Symbol  string
}

type factory = func(Options) Emitter

var registry = map[domain.Target]factory{}

// Register makes an emitter available under target. It panics on a duplicate
// registration.
func Register(target domain.Target, f factory) {
	if _, dup := registry[target]; dup {
		panic(fmt.Sprintf("emit: duplicate emitter %q", target))
	}
	registry[target] = f
}

// New returns the emitter registered for target.
func New(target domain.Target, opts Options) (Emitter, error) {
	f, ok := registry[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTarget, target)
	}
	return f(opts), nil
}

func symbolOr(opts Options, def string) string {
	if opts.Symbol != "" {
		return opts.Symbol
	}
	return def
}

// errWriter remembers the first write error so emitters can write
// line by line and check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
