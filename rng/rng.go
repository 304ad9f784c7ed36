package rng

import (
	"math"
	"math/bits"
	"sync"
)

// Default state words. The generator starts here before Seed is applied,
// so New(a, b) is a pure function of (a, b).
const (
	defaultState0 uint64 = 0x9e3779b97f4a7c15
	defaultState1 uint64 = 0xbf58476d1ce4e5b9
)

// warmupDraws is the number of outputs discarded after every Seed call.
const warmupDraws = 64

// Random is the set of draws consumed by generators and placers.
// *Source and *Locked implement it.
type Random interface {
	Uint64() uint64
	Float64() float64
	IntRange(low, high int) int
	Chance(p float64) bool
}

// Source is a xoroshiro128+ generator.
//
// The zero value is not useful; construct with New.
type Source struct {
	s0, s1 uint64
}

// New returns a Source at the fixed default state, seeded with (a, b).
func New(a, b uint64) *Source {
	s := &Source{s0: defaultState0, s1: defaultState1}
	s.Seed(a, b)
	return s
}

// Seed XORs (a, b) into the current state and discards 64 draws.
// An all-zero state is a fixed point of the recurrence, so it is nudged
// back to a non-zero word before warming up.
func (s *Source) Seed(a, b uint64) {
	s.s0 ^= a
	s.s1 ^= b
	if s.s0 == 0 && s.s1 == 0 {
		s.s1 = defaultState1
	}
	for i := 0; i < warmupDraws; i++ {
		s.Uint64()
	}
}

// State returns the raw state pair. Useful for logging a reproducible point.
func (s *Source) State() (uint64, uint64) {
	return s.s0, s.s1
}

// Uint64 advances the generator one step and returns s0+s1 of the
// pre-step state.
func (s *Source) Uint64() uint64 {
	s0, s1 := s.s0, s.s1
	result := s0 + s1
	s1 ^= s0
	s.s0 = bits.RotateLeft64(s0, 55) ^ s1 ^ (s1 << 14)
	s.s1 = bits.RotateLeft64(s1, 36)
	return result
}

// Float64 returns Uint64()/MaxUint64, a value in [0, 1].
// Both ends are reachable: 1.0 appears when the draw rounds up to 2^64.
func (s *Source) Float64() float64 {
	return float64(s.Uint64()) / float64(math.MaxUint64)
}

// IntRange returns an integer in [low, high], inclusive on both ends,
// computed as floor(Float64()*(high-low+1)) + low. The bounds may be given
// in either order. The result is clamped to the upper bound for the rare
// Float64()==1 draw.
//
// This reuses the float draw on purpose; it is not exactly uniform for
// very large ranges.
func (s *Source) IntRange(low, high int) int {
	return intRange(s.Float64(), low, high)
}

// Chance reports whether Float64() <= p.
func (s *Source) Chance(p float64) bool {
	return s.Float64() <= p
}

// Derive returns an independent child Source for the given stream id.
// It consumes exactly one draw from s, so successive derivations differ
// even when the same stream id is reused.
//
// Call during setup, not in hot loops.
func (s *Source) Derive(stream uint64) *Source {
	parent := s.Uint64()
	return New(mix(parent, stream), mix(parent, ^stream))
}

func intRange(f float64, low, high int) int {
	if high < low {
		low, high = high, low
	}
	d := high - low + 1
	v := int(f*float64(d)) + low
	if v > high {
		v = high
	}
	return v
}

// mix is a SplitMix64-style finalizer over a parent word and a stream id.
func mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Locked wraps a Source with a mutex so it can be shared by goroutines.
// Draw order across goroutines is not deterministic; prefer Derive.
type Locked struct {
	mu  sync.Mutex
	src *Source
}

// NewLocked wraps src.
func NewLocked(src *Source) *Locked {
	return &Locked{src: src}
}

// Uint64 implements Random.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Uint64()
}

// Float64 implements Random.
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// IntRange implements Random.
func (l *Locked) IntRange(low, high int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntRange(low, high)
}

// Chance implements Random.
func (l *Locked) Chance(p float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Chance(p)
}
