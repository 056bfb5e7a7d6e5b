package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectSetSemantics(t *testing.T) {
	s := Effects(Magic, Magic, FireBreathing)
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Has(Magic))
	assert.True(t, s.Has(FireBreathing))
	assert.False(t, s.Has(LaserFocus))

	s = s.Without(Magic)
	assert.False(t, s.Has(Magic))
	assert.Equal(t, 1, s.Size())

	assert.True(t, Effects(Magic, LaserFocus).Equal(Effects(LaserFocus, Magic)))
	assert.Equal(t, 0, EffectSet{}.Size())
}

func TestEffectNamesOrder(t *testing.T) {
	s := Effects(Magic, FireBreathing, LaserFocus)
	want := []string{"fireBreathing", "laserFocus", "magic"}
	assert.Equal(t, want, s.Names())
	// stable across repeated calls
	assert.Equal(t, s.Names(), s.Names())
}

func TestEffectByResourceName(t *testing.T) {
	for e := Effect(0); e < numEffects; e++ {
		got, ok := EffectByResourceName(e.ResourceName())
		assert.True(t, ok)
		assert.Equal(t, e, got)
	}
	_, ok := EffectByResourceName("shapeshifting")
	assert.False(t, ok)
}

func TestKindByName(t *testing.T) {
	for _, k := range []Kind{Unicorn(ColorPink), Dragon(ColorGreen), Pegasus(ColorBlue)} {
		got, ok := KindByName(k.Name())
		assert.True(t, ok)
		assert.Equal(t, k.Name(), got.Name())
	}
	_, ok := KindByName("Gryphon")
	assert.False(t, ok)
}

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("yellow")
	assert.True(t, ok)
	assert.Equal(t, ColorYellow, c)
	_, ok = ColorByName("mauve")
	assert.False(t, ok)
}

func TestRecordEqual(t *testing.T) {
	a := Record{Description: "Dream 1", Kind: Unicorn(ColorPink), Effects: Effects(Magic, LaserFocus), Count: 1}
	b := Record{Description: "Dream 1", Kind: Unicorn(ColorPink), Effects: Effects(LaserFocus, Magic), Count: 1}
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(Record{Description: "Dream 2", Kind: a.Kind, Effects: a.Effects, Count: a.Count}))
	assert.False(t, a.Equal(Record{Description: a.Description, Kind: Unicorn(ColorYellow), Effects: a.Effects, Count: a.Count}))
	assert.False(t, a.Equal(Record{Description: a.Description, Kind: a.Kind, Effects: a.Effects.Without(Magic), Count: a.Count}))
	assert.False(t, a.Equal(Record{Description: a.Description, Kind: a.Kind, Effects: a.Effects, Count: 2}))
}

func TestRecordFingerprint(t *testing.T) {
	a := Record{Description: "Dream 1", Kind: Unicorn(ColorPink), Effects: Effects(FireBreathing), Count: 1}
	b := a
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Count = 2
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	c := a
	c.Kind = Dragon(ColorPink)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
