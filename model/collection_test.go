package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dreamkeep/dreamkeep/dreamkeep_errors"
)

func rec(desc string, count int) Record {
	return Record{Description: desc, Kind: Unicorn(ColorPink), Effects: Effects(Magic), Count: count}
}

func TestAppendIsCopyOnWrite(t *testing.T) {
	c0 := NewCollection(Unicorn(ColorWhite), rec("Dream 1", 1))
	c1 := c0.Append(rec("Dream 2", 2))

	assert.Equal(t, 1, c0.Len())
	assert.Equal(t, 2, c1.Len())
	assert.Equal(t, "Dream 2", c1.Last().Description)
}

func TestRemoveLast(t *testing.T) {
	c0 := NewCollection(Unicorn(ColorWhite), rec("Dream 1", 1), rec("Dream 2", 2))
	c1, last, err := c0.RemoveLast()
	assert.Nil(t, err)
	assert.Equal(t, "Dream 2", last.Description)
	assert.Equal(t, 1, c1.Len())
	assert.Equal(t, 2, c0.Len())

	empty := NewCollection(Unicorn(ColorWhite))
	_, _, err = empty.RemoveLast()
	assert.ErrorIs(t, err, dreamkeep_errors.ErrEmptyCollection)
}

func TestReplace(t *testing.T) {
	c0 := NewCollection(Unicorn(ColorWhite), rec("Dream 1", 1), rec("Dream 2", 2))
	c1 := c0.Replace(0, rec("Dream 1b", 3))

	assert.Equal(t, "Dream 1b", c1.At(0).Description)
	assert.Equal(t, "Dream 1", c0.At(0).Description)
	assert.True(t, c0.At(1).Equal(c1.At(1)))
}

func TestWithPreference(t *testing.T) {
	c0 := NewCollection(Unicorn(ColorWhite), rec("Dream 1", 1))
	c1 := c0.WithPreference(Dragon(ColorGreen))

	assert.Equal(t, "Unicorn", c0.Preference().Name())
	assert.Equal(t, "Dragon", c1.Preference().Name())
	assert.Equal(t, c0.Len(), c1.Len())
}

func TestRecordsReturnsCopy(t *testing.T) {
	c := NewCollection(Unicorn(ColorWhite), rec("Dream 1", 1))
	items := c.Records()
	items[0].Description = "mutated"
	assert.Equal(t, "Dream 1", c.At(0).Description)
}
