package emit

import (
	"encoding/json"
	"io"

	"github.com/heartmarshall/dictgen/internal/domain"
)

func init() {
	Register(domain.TargetJSON, func(Options) Emitter { return jsonEmitter{} })
}

// jsonEmitter writes the table as nested arrays. Absent slots are null.
type jsonEmitter struct{}

func (jsonEmitter) Plain(w io.Writer, t domain.Table) error {
	groups := make([][]string, len(t.Groups))
	for i, g := range t.Groups {
		groups[i] = g.Entries
		if groups[i] == nil {
			groups[i] = []string{}
		}
	}
	return writeJSON(w, groups)
}

func (jsonEmitter) Padded(w io.Writer, t domain.PaddedTable) error {
	rows := make([][]*string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = make([]*string, len(r.Slots))
		for j := range r.Slots {
			if r.Slots[j].Present {
				rows[i][j] = &r.Slots[j].Text
			}
		}
	}
	return writeJSON(w, rows)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
