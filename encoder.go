package dreamkeep

import (
	"context"
	"errors"
	"sync/atomic"

	pkgerrors "github.com/pkg/errors"

	"github.com/dreamkeep/dreamkeep/model"
	"github.com/dreamkeep/dreamkeep/store"
	"github.com/dreamkeep/dreamkeep/utils"
)

// Write is one planned key-value assignment.
type Write struct {
	Key   string
	Value store.Value
}

// Plan translates a Diff into an ordered write list. It is pure: the
// bootstrap state is an explicit input and output, never ambient.
//
// Inserted/Removed invalidate every per-index key downstream of the edit,
// so both plan a full rewrite of the destination snapshot. Updated plans
// field-level writes only for the fields that actually differ at the
// changed indices — except the very first update against an uninitialized
// store, which first rewrites the pre-update snapshot as a baseline. Any
// full rewrite leaves a complete baseline behind, so all of them flip the
// bootstrap state.
func Plan(d Diff, bootstrapped bool) ([]Write, bool) {
	var ops []Write
	if d.Change != nil {
		switch d.Change.Kind {
		case Inserted, Removed:
			ops = appendRewrite(ops, d.To)
			if !bootstrapped {
				ops = append(ops, Write{Key: initializedKey, Value: store.Bool(true)})
				bootstrapped = true
			}
		case Updated:
			if !bootstrapped {
				ops = appendRewrite(ops, d.From)
				ops = append(ops, Write{Key: initializedKey, Value: store.Bool(true)})
				bootstrapped = true
			}
			for _, i := range d.Change.Indices {
				ops = appendFieldWrites(ops, i, d.From.At(i), d.To.At(i))
			}
		}
	}
	if d.PreferenceChanged {
		ops = append(ops, Write{Key: favoriteKey, Value: store.Str(d.To.Preference().Name())})
	}
	return ops, bootstrapped
}

// appendRewrite serializes a whole snapshot: the zero-based last index
// first, then every field of every item.
func appendRewrite(ops []Write, c model.Collection) []Write {
	ops = append(ops, Write{Key: rowsQuantityKey, Value: store.Int(int64(c.Len() - 1))})
	for k := 0; k < c.Len(); k++ {
		ops = appendRecord(ops, k, c.At(k))
	}
	return ops
}

func appendRecord(ops []Write, k int, r model.Record) []Write {
	ops = append(ops,
		Write{Key: descriptionKey(k), Value: store.Str(r.Description)},
		Write{Key: creatureKey(k), Value: store.Str(r.Kind.Name())},
		Write{Key: countKey(k), Value: store.Int(int64(r.Count))},
	)
	return appendEffects(ops, k, r.Effects)
}

func appendEffects(ops []Write, k int, s model.EffectSet) []Write {
	names := s.Names()
	for j, name := range names {
		ops = append(ops, Write{Key: effectKey(k, j), Value: store.Str(name)})
	}
	return append(ops, Write{Key: setSizeKey(k), Value: store.Int(int64(len(names)))})
}

// appendFieldWrites plans writes for index i, touching only fields that
// differ between the old and new record.
func appendFieldWrites(ops []Write, i int, old, new model.Record) []Write {
	if old.Description != new.Description {
		ops = append(ops, Write{Key: descriptionKey(i), Value: store.Str(new.Description)})
	}
	if old.Kind.Name() != new.Kind.Name() {
		ops = append(ops, Write{Key: creatureKey(i), Value: store.Str(new.Kind.Name())})
	}
	if old.Count != new.Count {
		ops = append(ops, Write{Key: countKey(i), Value: store.Int(int64(new.Count))})
	}
	if !old.Effects.Equal(new.Effects) {
		ops = appendEffects(ops, i, new.Effects)
	}
	return ops
}

// Encoder applies plans to an injected Store. Writes are best-effort: a
// failed key is reported (wrapped with its key) without rolling back or
// skipping the keys after it, so each one stays independently retryable.
type Encoder struct {
	store store.Store
	log   utils.Logger

	keysWritten      atomic.Uint64
	fullRewrites     atomic.Uint64
	fieldUpdates     atomic.Uint64
	baselineRewrites atomic.Uint64
	writeFailures    atomic.Uint64
}

func NewEncoder(st store.Store, log utils.Logger) *Encoder {
	return &Encoder{store: st, log: log}
}

// Bootstrapped reads the persisted bootstrap flag. An absent flag means an
// uninitialized store.
func (e *Encoder) Bootstrapped() (bool, error) {
	v, ok, err := e.store.Get(initializedKey)
	if err != nil || !ok {
		return false, err
	}
	b, _ := v.Bool()
	return b, nil
}

// Encode plans and applies d. It returns the number of keys written; the
// returned error joins one wrapped error per failed key.
func (e *Encoder) Encode(ctx context.Context, d Diff) (int, error) {
	bootstrapped, err := e.Bootstrapped()
	if err != nil {
		return 0, err
	}
	ops, now := Plan(d, bootstrapped)
	if d.Change != nil {
		switch d.Change.Kind {
		case Inserted, Removed:
			e.fullRewrites.Add(1)
		case Updated:
			e.fieldUpdates.Add(1)
			if now && !bootstrapped {
				e.baselineRewrites.Add(1)
				e.log.InfoCtx(ctx, "writing one-time model baseline", "items", d.From.Len())
			}
		}
	}
	written := 0
	var errs []error
	for _, op := range ops {
		if err := e.store.Set(op.Key, op.Value); err != nil {
			e.writeFailures.Add(1)
			e.log.WarnCtx(ctx, "store write failed", "key", op.Key, "error", err)
			errs = append(errs, pkgerrors.Wrapf(err, "write %s", op.Key))
			continue
		}
		written++
	}
	e.keysWritten.Add(uint64(written))
	e.log.DebugCtx(ctx, "diff encoded", "planned", len(ops), "written", written)
	return written, errors.Join(errs...)
}
