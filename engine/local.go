package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hearts/ai"
	"hearts/game"
)

// Brain answers lifecycle events for one seat; it returns a move only for a
// PlayEvent it wants to act on.
type Brain func(event game.PlayerEvent) game.Move

// RandomBrain plays a uniformly random legal card.
func RandomBrain(rng *rand.Rand) Brain {
	return func(event game.PlayerEvent) game.Move {
		play, ok := event.(game.PlayEvent)
		if !ok {
			return nil
		}
		moves := game.ValidMoves(play.GameState, play.PlayerState)
		if len(moves) == 0 {
			return nil
		}
		return moves[rng.Intn(len(moves))]
	}
}

// SearchBrain plays the move recommended by a determinized search agent.
func SearchBrain(agent *ai.Agent) Brain {
	return func(event game.PlayerEvent) game.Move {
		play, ok := event.(game.PlayEvent)
		if !ok {
			return nil
		}
		return agent.FindBestMove(play.GameState, play.PlayerState)
	}
}

// Engine drives one full hand locally: it wires the seats' brains into the
// game's event dispatcher and advances play until the game ends.
type Engine struct {
	env     game.Environment
	players []game.Player
}

func New(players []game.Player, brains map[game.PlayerID]Brain, options ...game.EnvOption) *Engine {
	dispatcher := func(id game.PlayerID, event game.PlayerEvent) game.Move {
		if brain, ok := brains[id]; ok {
			return brain(event)
		}
		return nil
	}

	options = append([]game.EnvOption{
		game.WithDispatcher(dispatcher),
		game.WithAuto(false),
	}, options...)

	return &Engine{
		env:     game.BuildEnvironment(options...),
		players: players,
	}
}

// Run plays a hand to the end and returns the final game.
func (e *Engine) Run() (game.Game, error) {
	g := game.Create(e.env, e.players)
	g, err := g.Start(e.env)
	if err != nil {
		return g, err
	}

	for g.Stage == game.Playing {
		next, err := g.NextPlay(e.env)
		if err != nil {
			return g, err
		}
		if next.TricksPlayed == g.TricksPlayed &&
			len(next.CurrentTrick.Cards) == len(g.CurrentTrick.Cards) {
			return g, fmt.Errorf("seat %s returned no move", g.CurrentPlayer().ID)
		}
		if next.TricksPlayed > g.TricksPlayed {
			log.Debug().
				Int("trick", next.TricksPlayed).
				Str("cards", game.CardList(next.LastTrick.Cards)).
				Int("winner", next.CurrentPlayerIndex).
				Msg("trick finished")
		}
		g = next
	}

	for _, p := range g.Players {
		score, err := g.PlayerScore(p.ID)
		if err != nil {
			return g, err
		}
		log.Info().Str("player", string(p.ID)).Int("score", score).Msg("game over")
	}
	return g, nil
}
