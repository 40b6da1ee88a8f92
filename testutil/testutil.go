package testutil

import (
	"math/rand"
	"sync"
)

// OpKind identifies a single-bit mutation.
type OpKind uint8

const (
	OpSet OpKind = iota
	OpClear
	OpToggle
)

func (k OpKind) String() string {
	switch k {
	case OpSet:
		return "set"
	case OpClear:
		return "clear"
	case OpToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Op is one mutation applied at Pos.
type Op struct {
	Kind OpKind
	Pos  uint64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64n returns a pseudo-random number in [0,n). n must be > 0.
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uint64nLocked(n)
}

func (r *RNG) uint64nLocked(n uint64) uint64 {
	if n&(n-1) == 0 {
		return r.rand.Uint64() & (n - 1)
	}
	// Rejection sampling keeps the distribution uniform.
	limit := ^uint64(0) - ^uint64(0)%n
	for {
		v := r.rand.Uint64()
		if v < limit {
			return v % n
		}
	}
}

// Positions returns num positions drawn uniformly from [0, size).
// Duplicates are possible.
func (r *RNG) Positions(num int, size uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, num)
	for i := range out {
		out[i] = r.uint64nLocked(size)
	}
	return out
}

// RandomOps generates num set/clear/toggle operations over [0, size).
// Set is twice as likely as clear or toggle so vectors fill up over time.
func (r *RNG) RandomOps(num int, size uint64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, num)
	for i := range ops {
		var kind OpKind
		switch r.rand.Intn(4) {
		case 0, 1:
			kind = OpSet
		case 2:
			kind = OpClear
		default:
			kind = OpToggle
		}
		ops[i] = Op{Kind: kind, Pos: r.uint64nLocked(size)}
	}
	return ops
}
