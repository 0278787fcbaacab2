package matching

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"wep_bot/catalog"
)

// Fallback policy names accepted by ParseFallback.
const (
	FallbackPrefix = "prefix"
	FallbackRandom = "random"
)

// FallbackPolicy picks n schemes from the whole catalog when filtering finds too few.
type FallbackPolicy interface {
	Select(all []catalog.Scheme, n int) []catalog.Scheme
}

// PrefixFallback takes the first n schemes in catalog order.
type PrefixFallback struct{}

func (PrefixFallback) Select(all []catalog.Scheme, n int) []catalog.Scheme {
	if n > len(all) {
		n = len(all)
	}
	out := make([]catalog.Scheme, n)
	copy(out, all[:n])
	return out
}

// RandomFallback samples n distinct schemes. The sequence is fixed by the seed,
// so a run is reproducible but two calls within it may differ.
type RandomFallback struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomFallback(seed uint64) *RandomFallback {
	return &RandomFallback{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (f *RandomFallback) Select(all []catalog.Scheme, n int) []catalog.Scheme {
	if n > len(all) {
		n = len(all)
	}

	f.mu.Lock()
	perm := f.rng.Perm(len(all))
	f.mu.Unlock()

	out := make([]catalog.Scheme, n)
	for i := 0; i < n; i++ {
		out[i] = all[perm[i]]
	}
	return out
}

// ParseFallback builds the policy registered under name.
func ParseFallback(name string, seed uint64) (FallbackPolicy, error) {
	switch name {
	case "", FallbackPrefix:
		return PrefixFallback{}, nil
	case FallbackRandom:
		return NewRandomFallback(seed), nil
	default:
		return nil, fmt.Errorf("unknown fallback policy %q", name)
	}
}
