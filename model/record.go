// Package model holds the immutable value types of a dream collection:
// records, creature kinds and dream effects.
package model

import (
	"sort"

	"github.com/cespare/xxhash"
)

type Color byte

const (
	ColorPink Color = iota + 1
	ColorYellow
	ColorBlue
	ColorGreen
	ColorWhite
)

func (c Color) String() string {
	switch c {
	case ColorPink:
		return "pink"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorWhite:
		return "white"
	}
	return "unknown"
}

func ColorByName(name string) (Color, bool) {
	for c := ColorPink; c <= ColorWhite; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Kind is a closed tagged variant: one of the creature constructors below.
// Name is the stable persistence identity; the image reference is
// rendering-only and never persisted.
type Kind struct {
	name  string
	color Color
	image string
}

func Unicorn(c Color) Kind { return Kind{name: "Unicorn", color: c, image: "unicorn.png"} }
func Dragon(c Color) Kind { return Kind{name: "Dragon", color: c, image: "dragon.png"} }
func Pegasus(c Color) Kind { return Kind{name: "Pegasus", color: c, image: "pegasus.png"} }

func (k Kind) Name() string { return k.name }
func (k Kind) Color() Color { return k.color }
func (k Kind) Image() string { return k.image }

// KindByName resolves a persisted creature name back to its variant.
// Color is not part of the persisted layout, so the canonical color is used.
func KindByName(name string) (Kind, bool) {
	switch name {
	case "Unicorn":
		return Unicorn(ColorWhite), true
	case "Dragon":
		return Dragon(ColorGreen), true
	case "Pegasus":
		return Pegasus(ColorBlue), true
	}
	return Kind{}, false
}

type Effect byte

const (
	FireBreathing Effect = iota
	LaserFocus
	Magic
	Invisibility
	NightVision

	numEffects
)

// ResourceName is the stable serialization identity of an effect.
func (e Effect) ResourceName() string {
	switch e {
	case FireBreathing:
		return "fireBreathing"
	case LaserFocus:
		return "laserFocus"
	case Magic:
		return "magic"
	case Invisibility:
		return "invisibility"
	case NightVision:
		return "nightVision"
	}
	return "unknown"
}

func EffectByResourceName(name string) (Effect, bool) {
	for e := Effect(0); e < numEffects; e++ {
		if e.ResourceName() == name {
			return e, true
		}
	}
	return 0, false
}

// EffectSet is a set over the closed Effect enumeration. The zero value is
// the empty set.
type EffectSet struct {
	bits uint8
}

func Effects(list ...Effect) (s EffectSet) {
	for _, e := range list {
		s = s.With(e)
	}
	return s
}

func (s EffectSet) With(e Effect) EffectSet { return EffectSet{bits: s.bits | 1<<e} }
func (s EffectSet) Without(e Effect) EffectSet { return EffectSet{bits: s.bits &^ (1 << e)} }
func (s EffectSet) Has(e Effect) bool { return s.bits&(1<<e) != 0 }
func (s EffectSet) Equal(o EffectSet) bool { return s.bits == o.bits }

func (s EffectSet) Size() (n int) {
	for e := Effect(0); e < numEffects; e++ {
		if s.Has(e) {
			n++
		}
	}
	return n
}

// Names returns the members' resource names in lexicographic order. The
// positional effect keys are assigned from this order, so it must stay
// deterministic across processes.
func (s EffectSet) Names() []string {
	names := make([]string, 0, numEffects)
	for e := Effect(0); e < numEffects; e++ {
		if s.Has(e) {
			names = append(names, e.ResourceName())
		}
	}
	sort.Strings(names)
	return names
}

// Record is one collection entry. Count is non-negative.
type Record struct {
	Description string
	Kind        Kind
	Effects     EffectSet
	Count       int
}

// Equal is structural over all four fields; effect sets compare as sets.
func (r Record) Equal(o Record) bool {
	return r.Description == o.Description &&
		r.Kind == o.Kind &&
		r.Effects.Equal(o.Effects) &&
		r.Count == o.Count
}

// Fingerprint is a content hash used as a cheap inequality pre-check.
// Equal records always share a fingerprint; the differ still confirms with
// Equal before reporting a match.
func (r Record) Fingerprint() uint64 {
	buf := make([]byte, 0, len(r.Description)+len(r.Kind.name)+8)
	buf = append(buf, r.Description...)
	buf = append(buf, 0)
	buf = append(buf, r.Kind.name...)
	buf = append(buf, 0, byte(r.Kind.color), r.Effects.bits)
	buf = append(buf,
		byte(r.Count), byte(r.Count>>8), byte(r.Count>>16), byte(r.Count>>24))
	return xxhash.Sum64(buf)
}
