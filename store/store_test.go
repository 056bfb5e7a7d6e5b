package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamkeep/dreamkeep/dreamkeep_errors"
)

func TestValueAccessors(t *testing.T) {
	b, ok := Bool(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	i, ok := Int(-42).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(-42), i)

	s, ok := Str("pink").Str()
	assert.True(t, ok)
	assert.Equal(t, "pink", s)

	_, ok = Bool(true).Int()
	assert.False(t, ok)
	assert.Equal(t, "<unset>", Value{}.String())
}

func TestValueCodec(t *testing.T) {
	for _, v := range []Value{Bool(true), Bool(false), Int(0), Int(-7), Int(1 << 40), Str(""), Str("Dream 1")} {
		got, err := Decode(Encode(v))
		require.Nil(t, err)
		assert.Equal(t, v, got)
	}

	_, err := Decode(nil)
	assert.ErrorIs(t, err, dreamkeep_errors.ErrBadValue)
	_, err = Decode([]byte{'Q', 1})
	assert.ErrorIs(t, err, dreamkeep_errors.ErrBadValue)
	_, err = Decode([]byte{byte(KindInt), 1, 2})
	assert.ErrorIs(t, err, dreamkeep_errors.ErrBadValue)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	_, ok, err := m.Get("missing")
	require.Nil(t, err)
	assert.False(t, ok)

	require.Nil(t, m.Set("favoriteCreatureName", Str("Unicorn")))
	v, ok, err := m.Get("favoriteCreatureName")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, Str("Unicorn"), v)
	assert.Equal(t, 1, m.Len())
}

func TestPebbleStoreReopen(t *testing.T) {
	dir := t.TempDir()

	p, err := OpenPebble(dir)
	require.Nil(t, err)
	require.Nil(t, p.Set("rowsQuantity", Int(1)))
	require.Nil(t, p.Set("modelInitialized", Bool(true)))
	require.Nil(t, p.Close())

	p, err = OpenPebble(dir)
	require.Nil(t, err)
	defer p.Close()

	v, ok, err := p.Get("rowsQuantity")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, Int(1), v)

	_, ok, err = p.Get("missing")
	require.Nil(t, err)
	assert.False(t, ok)
}

func TestPebbleStoreClosed(t *testing.T) {
	p, err := OpenPebble(t.TempDir())
	require.Nil(t, err)
	require.Nil(t, p.Close())

	_, _, err = p.Get("rowsQuantity")
	assert.ErrorIs(t, err, dreamkeep_errors.ErrClosed)
	err = p.Set("rowsQuantity", Int(0))
	assert.ErrorIs(t, err, dreamkeep_errors.ErrClosed)
	assert.Nil(t, p.Close())
}
