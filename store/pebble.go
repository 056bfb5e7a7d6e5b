package store

import (
	"github.com/cockroachdb/pebble"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/dreamkeep/dreamkeep/dreamkeep_errors"
)

const readCacheSize = 1024

// Pebble is the durable backend. Reads go through an LRU cache that Set
// keeps current, so hot keys never touch the database.
type Pebble struct {
	db    *pebble.DB
	dir   string
	wo    *pebble.WriteOptions
	cache *lru.Cache[string, Value]
}

func OpenPebble(dir string) (*Pebble, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open store at %s", dir)
	}
	cache, err := lru.New[string, Value](readCacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Pebble{db: db, dir: dir, wo: pebble.Sync, cache: cache}, nil
}

func (p *Pebble) Dir() string { return p.dir }

func (p *Pebble) Get(key string) (Value, bool, error) {
	if p.db == nil {
		return Value{}, false, dreamkeep_errors.ErrClosed
	}
	if v, ok := p.cache.Get(key); ok {
		return v, true, nil
	}
	bulk, closer, err := p.db.Get([]byte(key))
	if err == pebble.ErrNotFound {
		return Value{}, false, nil
	}
	if err != nil {
		return Value{}, false, errors.Wrapf(err, "get %s", key)
	}
	v, err := Decode(bulk)
	_ = closer.Close()
	if err != nil {
		return Value{}, false, errors.Wrapf(err, "get %s", key)
	}
	p.cache.Add(key, v)
	return v, true, nil
}

func (p *Pebble) Set(key string, v Value) error {
	if p.db == nil {
		return dreamkeep_errors.ErrClosed
	}
	if err := p.db.Set([]byte(key), Encode(v), p.wo); err != nil {
		return errors.Wrapf(err, "set %s", key)
	}
	p.cache.Add(key, v)
	return nil
}

func (p *Pebble) Close() error {
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	p.cache.Purge()
	return err
}
