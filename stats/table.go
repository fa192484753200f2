package stats

import "github.com/cespare/xxhash/v2"

// initialSlots keeps the table under half load at the ~10k distinct stations
// real inputs top out at, so the hot path essentially never rehashes.
const initialSlots = 1 << 14

type entry struct {
	hash  uint64
	name  string
	stats Stats
	used  bool
}

// Table maps station names to their accumulators. It is open-addressed with
// linear probing and owned by exactly one goroutine. Observe takes the name
// as a borrowed slice and copies it to an owned key only on first sight, so
// the per-record path does not allocate.
type Table struct {
	entries []entry
	n       int
}

func NewTable() *Table {
	return newTable(initialSlots)
}

// newTable builds a table with the given slot count, which must be a power
// of two.
func newTable(slots int) *Table {
	return &Table{entries: make([]entry, slots)}
}

// Len reports the number of distinct stations seen.
func (t *Table) Len() int {
	return t.n
}

// Observe folds one record into the table.
func (t *Table) Observe(name []byte, tenths int32) {
	h := xxhash.Sum64(name)
	i := t.probe(h, name)

	e := &t.entries[i]
	if e.used {
		e.stats.Add(tenths)
		return
	}

	*e = entry{hash: h, name: string(name), stats: New(tenths), used: true}
	t.grew()
}

// Merge folds every entry of o into t. Runs once per worker table after the
// parallel phase; o is left untouched.
func (t *Table) Merge(o *Table) {
	for i := range o.entries {
		oe := &o.entries[i]
		if !oe.used {
			continue
		}

		j := oe.hash & uint64(len(t.entries)-1)
		for {
			e := &t.entries[j]
			if !e.used {
				*e = *oe
				t.grew()
				break
			}
			if e.hash == oe.hash && e.name == oe.name {
				e.stats.Merge(oe.stats)
				break
			}
			j = (j + 1) & uint64(len(t.entries)-1)
		}
	}
}

// Range calls f for every station in unspecified order.
func (t *Table) Range(f func(name string, s Stats)) {
	for i := range t.entries {
		if t.entries[i].used {
			f(t.entries[i].name, t.entries[i].stats)
		}
	}
}

// probe returns the slot holding name or the empty slot where it belongs.
// The name comparison compiles down to a byte compare without allocating.
func (t *Table) probe(h uint64, name []byte) int {
	mask := uint64(len(t.entries) - 1)
	i := h & mask
	for {
		e := &t.entries[i]
		if !e.used || (e.hash == h && e.name == string(name)) {
			return int(i)
		}
		i = (i + 1) & mask
	}
}

// grew records an insertion and doubles the table past half load, keeping
// probe chains short and at least one slot always empty.
func (t *Table) grew() {
	t.n++
	if t.n*2 <= len(t.entries) {
		return
	}

	old := t.entries
	t.entries = make([]entry, len(old)*2)
	mask := uint64(len(t.entries) - 1)
	for i := range old {
		if !old[i].used {
			continue
		}
		j := old[i].hash & mask
		for t.entries[j].used {
			j = (j + 1) & mask
		}
		t.entries[j] = old[i]
	}
}
