package rough

import "math/rand/v2"

// pcgStream is the fixed second PCG state word for seeded streams.
const pcgStream = 0x9e3779b97f4a7c15

// RNG is the pseudo-random stream consumed by the generators of one draw call.
// It is not safe for concurrent use; give every draw call its own RNG.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns a PCG stream determined entirely by seed, or a stream seeded
// from runtime entropy when seed is nil.
func NewRNG(seed *uint64) *RNG {
	if seed == nil {
		return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &RNG{r: rand.New(rand.NewPCG(*seed, pcgStream))}
}

// Float64 returns the next value in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// offset returns roughness*gain times a uniform value in [lo, hi).
func (g *RNG) offset(lo, hi float64, o *Options, gain float64) float64 {
	return o.Roughness * gain * (g.Float64()*(hi-lo) + lo)
}

// offsetOpt returns a symmetric offset in [-x, x) scaled like offset.
func (g *RNG) offsetOpt(x float64, o *Options, gain float64) float64 {
	return g.offset(-x, x, o, gain)
}
