package ai

import (
	"fmt"

	"hearts/game"
)

// maxPenalty is the total penalty in a standard deal: 13 Hearts plus the
// Queen of Spades.
const maxPenalty = 26

// simulationEnv drives determinized games: real move validation, a
// dispatcher that never answers (all seats are moved by the search itself),
// and no auto play.
var simulationEnv = game.BuildEnvironment(game.WithAuto(false))

// searchState adapts a fully-observed game to the search contract.
type searchState struct {
	game game.Game
}

func (s searchState) Player() game.PlayerID {
	return s.game.CurrentPlayer().ID
}

func (s searchState) LegalMoves() []game.Move {
	if s.IsFinal() {
		return nil
	}
	player := s.game.CurrentPlayer()
	return game.ValidMoves(s.game.PublicState(), player.PublicState())
}

// Play applies a move through the state machine. A validation failure here is
// a programming error, not a normal outcome: only moves drawn from
// LegalMoves are ever submitted.
func (s searchState) Play(move game.Move) game.State {
	next, err := s.game.Played(simulationEnv, s.Player(), move)
	if err != nil {
		panic(fmt.Sprintf("illegal move during simulation: %v", err))
	}
	return searchState{game: next}
}

func (s searchState) IsFinal() bool {
	for _, p := range s.game.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// Reward inverts the penalty score: Hearts is a loss-avoidance game, so a
// seat's reward is (26 - score) / 26, higher is better.
func (s searchState) Reward(player game.PlayerID) float64 {
	score, err := s.game.PlayerScore(player)
	if err != nil {
		return 0
	}
	return float64(maxPenalty-score) / maxPenalty
}
