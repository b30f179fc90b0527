package render

// FastRand is a xorshift64 generator; not for cryptographic use
type FastRand struct {
	state uint64
}

// NewFastRand seeds the generator; zero is replaced since it is a fixed point
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next advances the generator and returns the new state
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uint64 implements math/rand/v2.Source
func (r *FastRand) Uint64() uint64 {
	return r.Next()
}
