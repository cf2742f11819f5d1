// Package rng provides the random source the engine draws from.
package rng

import (
	"io"
	"math/rand/v2"
	"sync"
)

// Source yields uniformly distributed floats in [0,1).
type Source interface {
	Float64() float64
}

type entropy struct{}

func (entropy) Float64() float64 { return rand.Float64() }

// NewEntropy returns a source backed by the runtime's auto-seeded generator.
func NewEntropy() Source {
	return entropy{}
}

type seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// NewSeeded returns a deterministic source. Two sources with the same seed
// produce the same sequence.
func NewSeeded(seed int64) Source {
	u := uint64(seed)
	return &seeded{r: rand.New(rand.NewPCG(u, u^0x9e3779b97f4a7c15))}
}

// Intn returns a uniform int in [0,n). It returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Between returns a uniform int in [lo,hi].
func Between(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + Intn(src, hi-lo+1)
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[Intn(src, len(items))], true
}

type reader struct {
	src Source
}

func (r reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(Intn(r.src, 256))
	}
	return len(p), nil
}

// Reader exposes src as an endless byte stream.
func Reader(src Source) io.Reader {
	return reader{src: src}
}
