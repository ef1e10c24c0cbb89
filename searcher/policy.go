package searcher

import (
	"math"

	"numcross/game"
)

// Rewards for terminal outcomes, relative to the player to move at the
// node being updated.
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

// epsilon is the tolerance under which two selection scores count as
// tied.
var epsilon = math.Nextafter(1, 2) - 1

// ucb scores one visited action: a UCB1 exploration term plus a
// Krichevsky-Trofimov smoothed mean of the reward, which lies in
// [-1, 1]. totalVisits is the visit sum over every candidate at the
// node.
func ucb(v Visit, totalVisits uint64) float64 {
	explore := math.Sqrt(2 * math.Log(float64(totalVisits)) / float64(v.Count))
	exploit := (v.Rewards + 1) / (float64(v.Count) + 2)
	return explore + exploit
}

// chooseChild picks the next action to descend from a node. Unvisited
// actions score +Inf and are always preferred; exact ties among
// finite scores are broken uniformly by reservoir sampling, replacing
// the incumbent with probability 1/k on the k-th tie, so equally
// scored actions need not be collected first.
func chooseChild(tally *ActionScores, actions []game.Action, rng Rand) game.Action {
	var totalVisits uint64
	for _, action := range actions {
		totalVisits += tally.GetVisit(action).Count
	}

	var choice game.Action
	chosen := false
	numOptimal := 0
	best := math.Inf(-1)
	for _, action := range actions {
		v := tally.GetVisit(action)
		score := math.Inf(1)
		if v.Count > 0 {
			score = ucb(v, totalVisits)
		}
		if score > best {
			choice = action
			chosen = true
			numOptimal = 1
			best = score
		} else if math.Abs(score-best) < epsilon {
			numOptimal++
			if rng.Float64() < 1/float64(numOptimal) {
				choice = action
			}
		}
	}
	if !chosen {
		panic("cannot choose from an empty action list")
	}
	return choice
}
