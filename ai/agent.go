package ai

import (
	"time"

	"github.com/rs/zerolog/log"

	"hearts/game"
	"hearts/searcher"
)

type Option func(a *Agent)

// Agent chooses moves under hidden information: it repeatedly determinizes
// the public view into a fully-observed game, searches each sample with UCT,
// and sums the visit counts per root move across samples.
type Agent struct {
	dealer     game.Dealer
	samples    int
	episodes   int
	goroutines int
	duration   time.Duration
}

func WithDealer(dealer game.Dealer) Option {
	return func(a *Agent) {
		if dealer != nil {
			a.dealer = dealer
		}
	}
}

// WithSamples sets how many determinizations are searched per decision.
func WithSamples(samples int) Option {
	return func(a *Agent) {
		if samples > 0 {
			a.samples = samples
		}
	}
}

// WithEpisodes sets the search episodes spent on each determinization.
func WithEpisodes(episodes int) Option {
	return func(a *Agent) {
		if episodes > 0 {
			a.episodes = episodes
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(a *Agent) {
		if goroutines > 0 {
			a.goroutines = goroutines
		}
	}
}

// WithDuration bounds the whole decision by wall-clock time instead of a
// fixed sample count; the budget is checked between samples only.
func WithDuration(duration time.Duration) Option {
	return func(a *Agent) {
		if duration > 0 {
			a.duration = duration
		}
	}
}

func NewAgent(options ...Option) *Agent {
	a := &Agent{ // Default values
		dealer:     game.NewDealer(nil),
		samples:    1,
		episodes:   500,
		goroutines: 1,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// FindBestMove returns the recommended move for the viewing player. With
// exactly one legal move it is returned immediately without any search; with
// none (not the player's turn, or terminal) it returns nil.
func (a *Agent) FindBestMove(gs game.GamePublicState, ps game.PlayerPublicState) game.Move {
	legal := game.ValidMoves(gs, ps)
	if len(legal) == 0 {
		return nil
	}
	if len(legal) == 1 {
		return legal[0]
	}

	visits := make(map[game.Move]int, len(legal))
	deadline := time.Time{}
	if a.duration > 0 {
		deadline = time.Now().Add(a.duration)
	}

	for sample := 0; a.keepSearching(sample, deadline); sample++ {
		g := Determinize(a.dealer, gs, ps)
		u := searcher.NewUCT(
			searcher.WithEpisodes(a.episodes),
			searcher.WithGoroutines(a.goroutines),
			searcher.WithMetrics(),
		)
		policy, metrics := u.Search(searchState{game: g})
		for move, count := range policy {
			visits[move] += count
		}

		log.Debug().
			Int("sample", sample).
			Int64("episodes", metrics.Episodes).
			Int64("playouts", metrics.FullPlayouts).
			Dur("took", metrics.Duration).
			Msg("searched determinization")
	}

	best := legal[0]
	maxVisits := -1
	for _, move := range legal {
		if v := visits[move]; v > maxVisits {
			best = move
			maxVisits = v
		}
	}
	return best
}

func (a *Agent) keepSearching(sample int, deadline time.Time) bool {
	if sample == 0 {
		return true
	}
	if a.duration > 0 {
		return time.Now().Before(deadline)
	}
	return sample < a.samples
}
