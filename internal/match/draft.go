// Package match runs active matches: the random team draft, the
// captain-driven result state machine and the atomic finalize that
// feeds the scoring ledger and the history ledger.
package match

import "math/rand"

// Draft shuffles the queued players, splits them positionally into blue
// and red teams and draws one captain per team. The draft is uniform
// random, not skill-aware. The RNG is injected so drafts are
// reproducible in tests.
func Draft(rng *rand.Rand, ids []string, teamSize int) (blue, red []string, capBlue, capRed string) {
	pool := append([]string(nil), ids...)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	blue = pool[:teamSize]
	red = pool[teamSize : teamSize*2]
	capBlue = blue[rng.Intn(len(blue))]
	capRed = red[rng.Intn(len(red))]
	return blue, red, capBlue, capRed
}
