package store

import "github.com/puzpuzpuz/xsync/v3"

// Memory keeps values in process. Safe for concurrent use.
type Memory struct {
	kv *xsync.MapOf[string, Value]
}

func NewMemory() *Memory {
	return &Memory{kv: xsync.NewMapOf[string, Value]()}
}

func (m *Memory) Get(key string) (Value, bool, error) {
	v, ok := m.kv.Load(key)
	return v, ok, nil
}

func (m *Memory) Set(key string, v Value) error {
	m.kv.Store(key, v)
	return nil
}

func (m *Memory) Len() int { return m.kv.Size() }

func (m *Memory) Range(f func(key string, v Value) bool) {
	m.kv.Range(f)
}
