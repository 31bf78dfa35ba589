package main

import "math"

// MoodSource produces an endless sequence of moods, one per call.
type MoodSource interface {
	Next() Mood
}

// Horo is a xorshift64 generator whose output is bucketed into moods.
// Two Horo values built from the same seed produce the same sequence; there
// is no way to rewind one in place.
type Horo struct {
	state uint64
}

// NewHoro seeds a generator. The seed goes through a splitmix64 finalizer
// first so that neighbouring seeds (consecutive years) give unrelated streams.
func NewHoro(seed uint64) *Horo {
	seed += 0x9e3779b97f4a7c15
	seed ^= seed >> 30
	seed *= 0xbf58476d1ce4e5b9
	seed ^= seed >> 27
	seed *= 0x94d049bb133111eb
	seed ^= seed >> 31
	return &Horo{state: seed}
}

// Rand advances the generator and returns the new raw state.
func (h *Horo) Rand() uint64 {
	x := h.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	h.state = x
	return x
}

// Next draws one value and maps it onto the mood distribution.
func (h *Horo) Next() Mood {
	return MoodFromUnit(float32(h.Rand()) / float32(math.MaxUint64))
}

// TakeMoods draws exactly n moods from src, in order.
func TakeMoods(src MoodSource, n int) []Mood {
	if n <= 0 {
		return nil
	}
	moods := make([]Mood, n)
	for i := range moods {
		moods[i] = src.Next()
	}
	return moods
}
