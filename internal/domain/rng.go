package domain

import "math/rand/v2"

type seededRNG struct {
	r *rand.Rand
}

// NewSeededRNG returns a reproducible RNG. Equal seeds yield equal sequences.
func NewSeededRNG(seed uint64) RNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

// shuffle is a Fisher-Yates shuffle driven by rng.
func shuffle(ids []CardID, rng RNG) {
	for i := len(ids) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}
