package vmath

// FastRand is a xorshift64 generator for procedural content
// Deterministic for a given seed, not for cryptographic use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float returns a uniform value in [0, 1)
func (r *FastRand) Float() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
