// Package randutil builds the random sources handed to the scenario generator.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"
	"sync"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both 64-bit PCG seeds are derived from the one value so that all call sites
// get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewUnseeded returns a source seeded from crypto/rand, for callers that do not
// need replay.
func NewUnseeded() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("failed to seed PRNG: " + err.Error())
	}
	return New(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewFromClock returns a source seeded from the clock's current time along with
// the seed used, so the run can be replayed later.
func NewFromClock(clock quartz.Clock) (*rand.Rand, int64) {
	seed := clock.Now().UnixNano()
	return New(seed), seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Float64Source is the minimal interface shared by all sources in this package.
type Float64Source interface {
	Float64() float64
}

// Sequence replays a fixed list of values in [0, 1), wrapping around at the end.
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence validates values and returns a replaying source.
func NewSequence(values ...float64) (*Sequence, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("sequence requires at least one value")
	}
	for i, v := range values {
		if v < 0 || v >= 1 {
			return nil, fmt.Errorf("sequence value %d out of range [0,1): %v", i, v)
		}
	}
	return &Sequence{values: append([]float64(nil), values...)}, nil
}

// Float64 returns the next value, wrapping to the start once the values run out.
func (s *Sequence) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Drawn returns how many values have been consumed.
func (s *Sequence) Drawn() int {
	return s.pos
}

// Recorder wraps a source and keeps every value it hands out.
type Recorder struct {
	mu     sync.Mutex
	src    Float64Source
	values []float64
}

// NewRecorder wraps src.
func NewRecorder(src Float64Source) *Recorder {
	return &Recorder{src: src}
}

// Float64 draws from the wrapped source and records the value.
func (r *Recorder) Float64() float64 {
	v := r.src.Float64()
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
	return v
}

// Replay returns a Sequence that yields the recorded values again.
func (r *Recorder) Replay() (*Sequence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return NewSequence(r.values...)
}
