package model

import "github.com/dreamkeep/dreamkeep/dreamkeep_errors"

// Collection is an ordered snapshot of Records plus one preference Kind.
// It is a value type: every mutator returns a fresh snapshot and never
// touches the receiver's backing array. Only append-to-end, remove-from-end
// and replace-at-index are exposed, so two snapshots handed to the differ
// can differ in length by at most one.
type Collection struct {
	preference Kind
	items      []Record
}

func NewCollection(preference Kind, items ...Record) Collection {
	own := make([]Record, len(items))
	copy(own, items)
	return Collection{preference: preference, items: own}
}

func (c Collection) Preference() Kind { return c.preference }
func (c Collection) Len() int { return len(c.items) }

// At panics on an out-of-range index, same as a slice.
func (c Collection) At(i int) Record { return c.items[i] }

func (c Collection) Last() Record { return c.items[len(c.items)-1] }

// Records returns a copy of the item sequence.
func (c Collection) Records() []Record {
	out := make([]Record, len(c.items))
	copy(out, c.items)
	return out
}

func (c Collection) Append(r Record) Collection {
	items := make([]Record, len(c.items)+1)
	copy(items, c.items)
	items[len(c.items)] = r
	return Collection{preference: c.preference, items: items}
}

func (c Collection) RemoveLast() (Collection, Record, error) {
	if len(c.items) == 0 {
		return c, Record{}, dreamkeep_errors.ErrEmptyCollection
	}
	last := c.items[len(c.items)-1]
	items := make([]Record, len(c.items)-1)
	copy(items, c.items[:len(c.items)-1])
	return Collection{preference: c.preference, items: items}, last, nil
}

func (c Collection) Replace(i int, r Record) Collection {
	items := make([]Record, len(c.items))
	copy(items, c.items)
	items[i] = r
	return Collection{preference: c.preference, items: items}
}

func (c Collection) WithPreference(k Kind) Collection {
	return Collection{preference: k, items: c.items}
}
