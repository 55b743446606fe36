package domain

// Group holds all entries of one character length, sorted ascending.
type Group struct {
	Length  int
	Entries []string
}

// Size returns the number of entries in the group.
func (g Group) Size() int { return len(g.Entries) }

// Table is the grouped dictionary, ordered ascending by group length.
type Table struct {
	Groups []Group
}

// EntryCount returns the total number of entries across all groups.
func (t Table) EntryCount() int {
	n := 0
	for _, g := range t.Groups {
		n += len(g.Entries)
	}
	return n
}

// MaxGroupSize returns the size of the largest group, or 0 for an empty table.
func (t Table) MaxGroupSize() int {
	maxSize := 0
	for _, g := range t.Groups {
		maxSize = max(maxSize, len(g.Entries))
	}
	return maxSize
}

// Slot is one position of a padded row. Present is false for padding.
type Slot struct {
	Text    string
	Present bool
}

// PaddedRow is a group extended with absent slots to the table width.
type PaddedRow struct {
	Length int
	Slots  []Slot
}

// PaddedTable is a fixed-width grid: every row has exactly Width slots.
type PaddedTable struct {
	Width int
	Rows  []PaddedRow
}

// EntryCount returns the number of present slots.
func (t PaddedTable) EntryCount() int {
	n := 0
	for _, r := range t.Rows {
		for _, s := range r.Slots {
			if s.Present {
				n++
			}
		}
	}
	return n
}
