// Package dictgen turns raw dictionary records into a length-grouped table
// and renders it through an emitter. Pure data flow: records in, bytes out;
// file and database access live behind Source.
package dictgen

import (
	"slices"

	"github.com/heartmarshall/dictgen/internal/domain"
)

// CollectStats holds collector statistics for logging.
type CollectStats struct {
	Lines    int // records seen
	Empty    int // records with an empty first column
	Kept     int // entries added to a group
	Rejected int // candidates or sub-entries dropped by the mode filter
}

// Collector groups dictionary entries by character length. The filter
// applied to each record depends on the mode.
type Collector struct {
	mode   domain.Mode
	groups map[int][]string
	stats  CollectStats
}

// NewCollector creates a Collector for the given mode.
func NewCollector(mode domain.Mode) *Collector {
	return &Collector{
		mode:   mode,
		groups: make(map[int][]string),
	}
}

// Add processes one raw dictionary record.
func (c *Collector) Add(record string) {
	c.stats.Lines++

	candidate := domain.FirstColumn(record)
	if candidate == "" {
		c.stats.Empty++
		return
	}

	if c.mode == domain.ModePadded && !domain.IsSingleToken(candidate) {
		c.stats.Rejected++
		return
	}

	for _, entry := range domain.SplitEntries(candidate) {
		if c.mode == domain.ModePadded && !domain.IsLatinLetters(entry) {
			c.stats.Rejected++
			continue
		}
		n := domain.EntryLength(entry)
		c.groups[n] = append(c.groups[n], entry)
		c.stats.Kept++
	}
}

// Stats returns the statistics gathered so far.
func (c *Collector) Stats() CollectStats {
	return c.stats
}

// Table returns the collected entries as groups ordered ascending by length,
// each group sorted ascending. Duplicates are preserved.
func (c *Collector) Table() domain.Table {
	keys := make([]int, 0, len(c.groups))
	for k := range c.groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	groups := make([]domain.Group, 0, len(keys))
	for _, k := range keys {
		entries := slices.Clone(c.groups[k])
		slices.Sort(entries)
		groups = append(groups, domain.Group{Length: k, Entries: entries})
	}
	return domain.Table{Groups: groups}
}
