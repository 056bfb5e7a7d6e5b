// Package store is the flat string-keyed key-value boundary the persistence
// encoder writes through. Values are booleans, integers or strings.
package store

import (
	"encoding/binary"
	"fmt"

	"github.com/dreamkeep/dreamkeep/dreamkeep_errors"
)

type ValueKind byte

const (
	KindBool   ValueKind = 'B'
	KindInt    ValueKind = 'I'
	KindString ValueKind = 'S'
)

// Value is a tagged union over the three storable types.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	s    string
}

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Int(i int64) Value { return Value{kind: KindInt, i: i} }
func Str(s string) Value { return Value{kind: KindString, s: s} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindString:
		return v.s
	}
	return "<unset>"
}

// Store is the abstract backend. Get reports absence via the second return;
// absence is not an error.
type Store interface {
	Get(key string) (Value, bool, error)
	Set(key string, v Value) error
}

// Encode frames a Value as its kind lit byte followed by the payload.
func Encode(v Value) []byte {
	switch v.kind {
	case KindBool:
		if v.b {
			return []byte{byte(KindBool), 1}
		}
		return []byte{byte(KindBool), 0}
	case KindInt:
		return binary.BigEndian.AppendUint64([]byte{byte(KindInt)}, uint64(v.i))
	case KindString:
		return append([]byte{byte(KindString)}, v.s...)
	}
	return nil
}

func Decode(bulk []byte) (Value, error) {
	if len(bulk) == 0 {
		return Value{}, dreamkeep_errors.ErrBadValue
	}
	switch ValueKind(bulk[0]) {
	case KindBool:
		if len(bulk) != 2 {
			return Value{}, dreamkeep_errors.ErrBadValue
		}
		return Bool(bulk[1] != 0), nil
	case KindInt:
		if len(bulk) != 9 {
			return Value{}, dreamkeep_errors.ErrBadValue
		}
		return Int(int64(binary.BigEndian.Uint64(bulk[1:]))), nil
	case KindString:
		return Str(string(bulk[1:])), nil
	}
	return Value{}, dreamkeep_errors.ErrBadValue
}
