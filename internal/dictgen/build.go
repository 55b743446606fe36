package dictgen

import (
	"github.com/heartmarshall/dictgen/internal/domain"
)

// FillGaps inserts empty groups for every length missing between the
// smallest and largest key, so row i always holds length first+i.
func FillGaps(t domain.Table) domain.Table {
	if len(t.Groups) < 2 {
		return t
	}

	first := t.Groups[0].Length
	last := t.Groups[len(t.Groups)-1].Length
	groups := make([]domain.Group, 0, last-first+1)

	next := 0
	for length := first; length <= last; length++ {
		if t.Groups[next].Length == length {
			groups = append(groups, t.Groups[next])
			next++
			continue
		}
		groups = append(groups, domain.Group{Length: length, Entries: []string{}})
	}
	return domain.Table{Groups: groups}
}

// BuildPadded pads every group with absent slots up to the size of the
// largest group and drops the group with the smallest key. The dropped group
// still counts towards the width.
//
// Returns domain.ErrNoEntries when the table holds no entries.
func BuildPadded(t domain.Table) (domain.PaddedTable, error) {
	if t.EntryCount() == 0 {
		return domain.PaddedTable{}, domain.ErrNoEntries
	}

	width := t.MaxGroupSize()
	rows := make([]domain.PaddedRow, 0, len(t.Groups)-1)

	for _, g := range t.Groups[1:] {
		slots := make([]domain.Slot, width)
		for i, e := range g.Entries {
			slots[i] = domain.Slot{Text: e, Present: true}
		}
		rows = append(rows, domain.PaddedRow{Length: g.Length, Slots: slots})
	}

	return domain.PaddedTable{Width: width, Rows: rows}, nil
}
