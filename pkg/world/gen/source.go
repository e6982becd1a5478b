package gen

import "math/rand/v2"

// pcgIncrement is the fixed second PCG word; only the seed varies between runs.
const pcgIncrement = 0x9E3779B97F4A7C15

// Source is the seeded random stream shared by every generation step.
// It satisfies rand.Source so distributions can draw from it directly.
// Source is not safe for concurrent use.
type Source struct {
	pcg *rand.PCG
	rnd *rand.Rand
}

// NewSource creates a Source whose output is fully determined by seed.
func NewSource(seed int64) *Source {
	pcg := rand.NewPCG(uint64(seed), pcgIncrement)
	return &Source{pcg: pcg, rnd: rand.New(pcg)}
}

// Uint64 returns the next raw 64-bit value of the stream.
func (s *Source) Uint64() uint64 {
	return s.pcg.Uint64()
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rnd.Float64()
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.rnd.IntN(n)
}
