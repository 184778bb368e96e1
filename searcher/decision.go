package searcher

import (
	"math"
	"sync"

	"hearts/game"
)

// decision is a search tree node. mover is the seat whose move led to this
// node, so sibling nodes always accumulate rewards from the same seat's
// perspective; the root has no mover and only counts visits.
type decision struct {
	sync.RWMutex
	parent   Node
	mover    game.PlayerID
	moves    []game.Move
	children []Node
	rewards  float64
	visits   int
}

func newDecision(parent Node, mover game.PlayerID, state game.State) *decision {
	moves := state.LegalMoves()
	return &decision{
		parent:   parent,
		mover:    mover,
		moves:    moves,
		children: make([]Node, 0, len(moves)),
	}
}

// SelectOrExpand returns the node itself at a terminal, a brand new child
// when the node still has unexplored moves, or the max-UCB child otherwise.
// The chosen child takes a virtual loss until Backup reverses it.
func (d *decision) SelectOrExpand(state game.State) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.children) < len(d.moves) { // Expandable node
		child, childState := d.addChild(state)
		child.applyLoss()
		return child, childState, true
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	child.applyLoss()
	return child, state.Play(d.moves[ith]), false
}

func (d *decision) addChild(state game.State) (*decision, game.State) {
	move := d.moves[len(d.children)]
	childState := state.Play(move)
	child := newDecision(d, state.Player(), childState)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) pickChild() int {
	// Parallel episodes can fully expand a node before any backup has landed,
	// so zero visits is a valid state here: exploration falls away and
	// unvisited children still score +Inf.
	normalizer := 0.0
	if d.visits > 0 {
		normalizer = CSquared * math.Log(float64(d.visits))
	}

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) score(normalizer float64) float64 {
	d.RLock()
	defer d.RUnlock()

	return ucb1(d.rewards, d.visits, normalizer)
}

// Backup reverses the virtual loss, credits the mover's reward and returns
// the parent so the caller can walk up to the root.
func (d *decision) Backup(reward func(game.PlayerID) float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
		d.rewards += reward(d.mover)
	}
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) Visits() int {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// policy maps each explored root move to its child's visit count.
func (d *decision) policy() map[game.Move]int {
	d.RLock()
	defer d.RUnlock()

	visits := make(map[game.Move]int, len(d.children))
	for i, child := range d.children {
		visits[d.moves[i]] = child.Visits()
	}
	return visits
}

func (d *decision) findBestMove() game.Move {
	d.RLock()
	defer d.RUnlock()

	if len(d.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxVisits := d.children[0].Visits()
	for i, child := range d.children[1:] {
		if v := child.Visits(); v > maxVisits {
			maxVisits = v
			bestIndex = i + 1
		}
	}
	return d.moves[bestIndex]
}
