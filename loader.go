package dreamkeep

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/dreamkeep/dreamkeep/dreamkeep_errors"
	"github.com/dreamkeep/dreamkeep/model"
	"github.com/dreamkeep/dreamkeep/store"
)

// DefaultPreference is used when no preference was ever persisted.
var DefaultPreference = model.Unicorn(model.ColorWhite)

// Load rebuilds a collection snapshot from the persisted key scheme.
// rowsQuantity holds the zero-based last index, so its absence (or -1)
// means an empty item list. Creature kinds come back with their canonical
// color; color is not part of the persisted layout.
func Load(st store.Store) (model.Collection, error) {
	pref := DefaultPreference
	if name, ok, err := getStr(st, favoriteKey); err != nil {
		return model.Collection{}, err
	} else if ok {
		k, found := model.KindByName(name)
		if !found {
			return model.Collection{}, pkgerrors.Wrap(dreamkeep_errors.ErrUnknownKind, name)
		}
		pref = k
	}

	last, ok, err := getInt(st, rowsQuantityKey)
	if err != nil {
		return model.Collection{}, err
	}
	if !ok || last < 0 {
		return model.NewCollection(pref), nil
	}

	items := make([]model.Record, 0, last+1)
	for k := 0; k <= int(last); k++ {
		r, err := loadRecord(st, k)
		if err != nil {
			return model.Collection{}, pkgerrors.Wrapf(err, "item %d", k)
		}
		items = append(items, r)
	}
	return model.NewCollection(pref, items...), nil
}

func loadRecord(st store.Store, k int) (r model.Record, err error) {
	if r.Description, _, err = getStr(st, descriptionKey(k)); err != nil {
		return r, err
	}
	name, ok, err := getStr(st, creatureKey(k))
	if err != nil {
		return r, err
	}
	if !ok {
		return r, pkgerrors.Wrap(dreamkeep_errors.ErrBadValue, creatureKey(k))
	}
	kind, found := model.KindByName(name)
	if !found {
		return r, pkgerrors.Wrap(dreamkeep_errors.ErrUnknownKind, name)
	}
	r.Kind = kind

	count, _, err := getInt(st, countKey(k))
	if err != nil {
		return r, err
	}
	r.Count = int(count)

	size, _, err := getInt(st, setSizeKey(k))
	if err != nil {
		return r, err
	}
	for j := 0; j < int(size); j++ {
		ename, ok, err := getStr(st, effectKey(k, j))
		if err != nil {
			return r, err
		}
		if !ok {
			return r, pkgerrors.Wrap(dreamkeep_errors.ErrBadValue, effectKey(k, j))
		}
		e, found := model.EffectByResourceName(ename)
		if !found {
			return r, pkgerrors.Wrap(dreamkeep_errors.ErrUnknownEffect, ename)
		}
		r.Effects = r.Effects.With(e)
	}
	return r, nil
}

func getStr(st store.Store, key string) (string, bool, error) {
	v, ok, err := st.Get(key)
	if err != nil || !ok {
		return "", ok, err
	}
	s, isStr := v.Str()
	if !isStr {
		return "", false, pkgerrors.Wrap(dreamkeep_errors.ErrBadValue, key)
	}
	return s, true, nil
}

func getInt(st store.Store, key string) (int64, bool, error) {
	v, ok, err := st.Get(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	i, isInt := v.Int()
	if !isInt {
		return 0, false, pkgerrors.Wrap(dreamkeep_errors.ErrBadValue, key)
	}
	return i, true, nil
}
