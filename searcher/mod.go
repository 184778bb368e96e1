package searcher

import (
	"math"

	"hearts/game"
)

// Hyperparameters for UCT

const CSquared = 2.0 // Exploration constant

// Loss is the virtual loss applied while an episode is in flight: a visit
// with zero reward, discouraging other goroutines from piling onto the same
// branch. Rewards are normalized to [0, 1].
const Loss = 0.0

type Node interface {
	SelectOrExpand(state game.State) (child Node, childState game.State, expanded bool)
	Backup(reward func(game.PlayerID) float64) Node
	Visits() int
	applyLoss()
	score(normalizer float64) float64
}

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}
