package problemgen

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// maxResampleAttempts caps every rejection-sampling loop. Once exhausted a
// generator falls back to a deterministic value.
const maxResampleAttempts = 32

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// rngReader adapts a *rand.Rand to io.Reader so uuids follow the seed.
type rngReader struct{ rng *rand.Rand }

func (r rngReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Uint32())
	}
	return len(p), nil
}

func newID(rng *rand.Rand) string {
	return uuid.Must(uuid.NewRandomFromReader(rngReader{rng})).String()
}

// distractors returns n distinct non-negative values near answer, none equal
// to it. Offsets are drawn from [-spread, spread]; when sampling runs out of
// attempts the remaining values walk upward from answer.
func distractors(rng *rand.Rand, answer, n, spread int) []int {
	out := make([]int, 0, n)
	taken := map[int]bool{answer: true}
	for attempt := 0; attempt < maxResampleAttempts && len(out) < n; attempt++ {
		off := between(rng, -spread, spread)
		v := answer + off
		if off == 0 || v < 0 || taken[v] {
			continue
		}
		taken[v] = true
		out = append(out, v)
	}
	for k := 1; len(out) < n; k++ {
		if v := answer + k; !taken[v] {
			taken[v] = true
			out = append(out, v)
		}
	}
	return out
}

func shuffle(rng *rand.Rand, opts []Option) {
	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
}
