package domain

import "testing"

func TestTable_Counts(t *testing.T) {
	t.Parallel()

	table := Table{Groups: []Group{
		{Length: 1, Entries: []string{"a", "I"}},
		{Length: 2, Entries: []string{}},
		{Length: 3, Entries: []string{"cat", "dog", "dog"}},
	}}

	if got := table.EntryCount(); got != 5 {
		t.Errorf("EntryCount() = %d, want 5", got)
	}
	if got := table.MaxGroupSize(); got != 3 {
		t.Errorf("MaxGroupSize() = %d, want 3", got)
	}
	if got := (Table{}).MaxGroupSize(); got != 0 {
		t.Errorf("empty MaxGroupSize() = %d, want 0", got)
	}
}

func TestPaddedTable_EntryCount(t *testing.T) {
	t.Parallel()

	pt := PaddedTable{Width: 3, Rows: []PaddedRow{
		{Length: 2, Slots: []Slot{{Text: "ox", Present: true}, {}, {}}},
		{Length: 3, Slots: []Slot{{Text: "cat", Present: true}, {Text: "dog", Present: true}, {}}},
	}}

	if got := pt.EntryCount(); got != 3 {
		t.Errorf("EntryCount() = %d, want 3", got)
	}
}
