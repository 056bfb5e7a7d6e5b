// Package dreamkeep reconciles two snapshots of an ordered dream collection
// into a structural Change and translates it into flat key-value writes, so
// the collection can be rebuilt later without full rewrites on every edit.
package dreamkeep

import (
	"fmt"

	"github.com/dreamkeep/dreamkeep/dreamkeep_errors"
	"github.com/dreamkeep/dreamkeep/model"
)

type ChangeKind int

const (
	Inserted ChangeKind = iota + 1
	Removed
	Updated
)

func (k ChangeKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case Updated:
		return "updated"
	}
	return fmt.Sprintf("ChangeKind(%d)", int(k))
}

// Change describes the single structural difference between two snapshots.
// Record is set for Inserted/Removed; Indices is set for Updated and is
// ascending and duplicate-free by construction.
type Change struct {
	Kind    ChangeKind
	Record  model.Record
	Indices []int
}

// Diff is the result of comparing two snapshots. Change is nil when the
// item lists are structurally identical; the preference is tracked
// independently of the list.
type Diff struct {
	Change            *Change
	PreferenceChanged bool
	From, To          model.Collection
}

// Compare is pure. The snapshots must come from the three permitted
// mutators, one mutation between calls, so their lengths differ by at most
// one; anything else returns ErrLengthDiscipline. An append is trusted, not
// re-verified: a +1 length with rewritten middle items is a caller bug.
func Compare(old, new model.Collection) (Diff, error) {
	d := Diff{
		PreferenceChanged: old.Preference().Name() != new.Preference().Name(),
		From:              old,
		To:                new,
	}
	m, n := old.Len(), new.Len()
	switch {
	case n == m+1:
		d.Change = &Change{Kind: Inserted, Record: new.Last()}
	case m == n+1:
		d.Change = &Change{Kind: Removed, Record: old.Last()}
	case m == n:
		var indices []int
		for i := 0; i < n; i++ {
			a, b := old.At(i), new.At(i)
			if a.Fingerprint() == b.Fingerprint() && a.Equal(b) {
				continue
			}
			indices = append(indices, i)
		}
		if len(indices) > 0 {
			d.Change = &Change{Kind: Updated, Indices: indices}
		}
	default:
		return Diff{}, dreamkeep_errors.ErrLengthDiscipline
	}
	return d, nil
}
