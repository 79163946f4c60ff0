package domain

import (
	"sync"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// GroupTable accumulates occurrences by (name, digest). Keys and the
// occurrences within each key keep insertion order. Safe for concurrent use.
type GroupTable struct {
	mu     sync.Mutex
	order  []m.GroupKey
	groups map[m.GroupKey][]m.Occurrence
}

// NewGroupTable returns an empty table.
func NewGroupTable() *GroupTable {
	return &GroupTable{groups: make(map[m.GroupKey][]m.Occurrence)}
}

// Add records occ under key.
func (t *GroupTable) Add(key m.GroupKey, occ m.Occurrence) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.groups[key]; !ok {
		t.order = append(t.order, key)
	}

	t.groups[key] = append(t.groups[key], occ)
}

// AddBlock hashes block and records its occurrence.
func (t *GroupTable) AddBlock(block m.Block) {
	t.Add(KeyOf(block), block.Occurrence())
}

// Len returns the number of distinct keys.
func (t *GroupTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.order)
}

// Groups returns every group in discovery order.
func (t *GroupTable) Groups() []m.DuplicateGroup {
	return t.collect(1)
}

// Duplicates returns the groups with at least two occurrences.
func (t *GroupTable) Duplicates() []m.DuplicateGroup {
	return t.collect(2)
}

func (t *GroupTable) collect(minOccurrences int) []m.DuplicateGroup {
	t.mu.Lock()
	defer t.mu.Unlock()

	groups := make([]m.DuplicateGroup, 0, len(t.order))

	for _, key := range t.order {
		occurrences := t.groups[key]
		if len(occurrences) < minOccurrences {
			continue
		}

		groups = append(groups, m.DuplicateGroup{
			Key:         key,
			Occurrences: append([]m.Occurrence(nil), occurrences...),
		})
	}

	return groups
}
