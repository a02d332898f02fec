package memory

import (
	"maps"
	"slices"
)

// table keeps rows keyed by id together with their display order.
// Rows are never mutated in place: writers store a fresh copy, which is what
// lets a transaction work on a shallow clone of the table.
type table[T any] struct {
	ids  []string
	rows map[string]T
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[string]T)}
}

func (t table[T]) clone() table[T] {
	return table[T]{
		ids:  slices.Clone(t.ids),
		rows: maps.Clone(t.rows),
	}
}

func (t *table[T]) get(id string) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) has(id string) bool {
	_, ok := t.rows[id]
	return ok
}

// add inserts a new row at the end, or at the front when front is set.
func (t *table[T]) add(id string, row T, front bool) {
	if front {
		t.ids = slices.Insert(t.ids, 0, id)
	} else {
		t.ids = append(t.ids, id)
	}
	t.rows[id] = row
}

// put replaces an existing row and keeps its position.
func (t *table[T]) put(id string, row T) {
	t.rows[id] = row
}

// each visits rows in display order until fn returns false.
func (t *table[T]) each(fn func(row T) bool) {
	for _, id := range t.ids {
		if !fn(t.rows[id]) {
			return
		}
	}
}

func (t *table[T]) len() int {
	return len(t.ids)
}
