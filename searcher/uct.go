package searcher

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"hearts/game"
)

type Option func(u *UCT)

// UCT runs Monte Carlo tree search over any game.State: tree parallelization
// with virtual loss, bounded by an episode count or a wall-clock budget. The
// budget is only checked between episodes; there is no mid-episode
// cancellation.
type UCT struct {
	goroutines int
	episodes   int
	duration   time.Duration
	metrics    MetricsCollector
}

func WithGoroutines(goroutines int) Option {
	return func(u *UCT) {
		if goroutines > 0 {
			u.goroutines = goroutines
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(u *UCT) {
		if episodes > 0 {
			u.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(u *UCT) {
		if duration > 0 {
			u.duration = duration
		}
	}
}

func WithMetrics() Option {
	return func(u *UCT) {
		u.metrics = NewMetricsCollector()
	}
}

func NewUCT(options ...Option) *UCT {
	u := &UCT{ // Default values
		goroutines: 1,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(u)
	}
	if u.episodes <= 0 && u.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return u
}

// Search collects statistics from the configured number of episodes and
// returns the visit count per root move.
func (u *UCT) Search(state game.State) (map[game.Move]int, MoveMetrics) {
	root := newDecision(nil, "", state)

	u.metrics.Start()
	if u.episodes > 0 {
		u.iterate(root, state)
	} else {
		u.countdown(root, state)
	}
	metrics := u.metrics.Complete()

	return root.policy(), metrics
}

// FindNextMove returns the most visited root move.
func (u *UCT) FindNextMove(state game.State) game.Move {
	root := newDecision(nil, "", state)

	u.metrics.Start()
	if u.episodes > 0 {
		u.iterate(root, state)
	} else {
		u.countdown(root, state)
	}
	u.metrics.Complete()

	return root.findBestMove()
}

func (u *UCT) iterate(root Node, state game.State) {
	task := make(chan any, u.episodes)
	for i := 0; i < u.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < u.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				u.simulate(root, state)
				u.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (u *UCT) countdown(root Node, state game.State) {
	start := time.Now()
	var wg sync.WaitGroup

	for i := 0; i < u.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for time.Since(start) < u.duration {
				u.simulate(root, state)
				u.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (u *UCT) simulate(root Node, state game.State) {
	newNode, newState := selectThenExpand(root, state)
	terminal := rollout(newState, u.metrics)
	backup(newNode, terminal)
}

func selectThenExpand(root Node, state game.State) (Node, game.State) {
	parent := root
	child, state, expanded := parent.SelectOrExpand(state)
	for child != parent && !expanded {
		parent = child
		child, state, expanded = parent.SelectOrExpand(state)
	}
	return child, state
}

// rollout plays uniformly random legal moves until the game is over and
// returns the terminal state.
func rollout(state game.State, metrics MetricsCollector) game.State {
	moves := state.LegalMoves()
	for len(moves) > 0 {
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
	}
	metrics.AddFullPlayout()
	return state
}

func backup(newNode Node, terminal game.State) {
	node := newNode
	for node != nil {
		node = node.Backup(terminal.Reward)
	}
}
