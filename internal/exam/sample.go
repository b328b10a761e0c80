package exam

import (
	"math/rand/v2"
	"sort"
)

// Drawn is one sampled question tagged with the index of the pool file it
// came from.
type Drawn struct {
	FileIndex int
	Text      string
	Answer    string
}

// NewRand returns a generator seeded from system entropy.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Sample draws DrawCount questions uniformly without replacement from the
// pool's combined fragments, then groups the result by origin file in
// configured file order. Within a file the draw order is kept as-is. The pool
// must already have passed Validate.
func Sample(pool Pool, rng *rand.Rand) []Drawn {
	if pool.DrawCount <= 0 {
		return nil
	}
	candidates := make([]Drawn, 0, pool.TotalFragments())
	for fileIndex, file := range pool.Files {
		for _, fragment := range file.Fragments {
			candidates = append(candidates, Drawn{
				FileIndex: fileIndex,
				Text:      fragment.Text,
				Answer:    fragment.Answer,
			})
		}
	}

	// Partial Fisher-Yates: after i swaps the first i entries are a uniform
	// draw without replacement.
	for i := 0; i < pool.DrawCount; i++ {
		j := i + rng.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	drawn := candidates[:pool.DrawCount:pool.DrawCount]

	sort.SliceStable(drawn, func(a, b int) bool {
		return drawn[a].FileIndex < drawn[b].FileIndex
	})
	return drawn
}
