// Package search picks moves with a depth-limited negamax over a cached
// game tree, extended along checks and recaptures.
package search

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
	"github.com/bhataktaBhai/ShallowRed/internal/worker"
)

// Defaults.
const (
	DefaultDepth         = 3
	DefaultMaxExtensions = 2
)

// Config controls a Searcher.
type Config struct {
	Depth         int   // nominal plies below the root
	MaxExtensions int   // forcing extensions allowed along one path
	Workers       int   // >1 searches root moves in parallel
	ReuseTree     bool  // keep the subtree of the played move between calls
	Seed          int64 // seeds the tie-break source when Rand is nil
	Rand          *rand.Rand
	Trace         io.Writer // per-move statistics; nil for none
}

// DefaultConfig returns the default search settings.
func DefaultConfig() Config {
	return Config{
		Depth:         DefaultDepth,
		MaxExtensions: DefaultMaxExtensions,
		Workers:       1,
		ReuseTree:     true,
	}
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("search depth %d must be at least 1: %w", c.Depth, errors.ErrInvalidConfig)
	}
	if c.MaxExtensions < 0 {
		return fmt.Errorf("max extensions %d must not be negative: %w", c.MaxExtensions, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// Stats describes the most recent SelectMove call.
type Stats struct {
	Nodes      int // tree nodes created
	Leaves     int // static evaluations
	Extensions int // forcing extensions granted
	Reused     bool
	Best       chess.Move
	Score      float64
}

func (st *Stats) add(other Stats) {
	st.Nodes += other.Nodes
	st.Leaves += other.Leaves
	st.Extensions += other.Extensions
}

// Searcher selects moves for one player across a game.
// A Searcher is not safe for concurrent use.
type Searcher struct {
	cfg   Config
	rng   *rand.Rand
	root  *node
	stats Stats
}

// New returns a Searcher for cfg.
func New(cfg Config) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	return &Searcher{cfg: cfg, rng: rng}, nil
}

// Stats returns the statistics of the last SelectMove call.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// Reset drops any tree kept from earlier calls.
func (s *Searcher) Reset() {
	s.root = nil
}

// SelectMove returns the move the searcher plays in pos.
func (s *Searcher) SelectMove(pos *engine.Position) (chess.Move, error) {
	if pos.IsStuck() {
		return chess.NullMove, fmt.Errorf("%s to move: %w", pos.Turn(), errors.ErrNoLegalMoves)
	}

	s.stats = Stats{}
	root := s.adopt(pos)
	w := &walker{}
	children := w.expand(root)

	var scores []float64
	if s.cfg.Workers > 1 && len(children) > 1 {
		scores = s.scoreParallel(children)
	} else {
		scores = make([]float64, len(children))
		for i, c := range children {
			scores[i] = w.childValue(c, s.cfg.Depth, s.cfg.MaxExtensions)
		}
	}
	s.stats.add(w.stats)

	pick := s.pickBest(scores)
	best := children[pick]
	s.stats.Best = best.move
	s.stats.Score = scores[pick]

	if s.cfg.ReuseTree {
		s.root = best
	} else {
		s.root = nil
	}
	if s.cfg.Trace != nil {
		fmt.Fprintf(s.cfg.Trace, "search: %s plays %s score %.2f nodes %d leaves %d extensions %d reused %v\n",
			pos.Turn(), best.move, s.stats.Score, s.stats.Nodes, s.stats.Leaves, s.stats.Extensions, s.stats.Reused)
	}
	return best.move, nil
}

// adopt returns the tree node for pos: the kept subtree when pos follows
// from it, otherwise a fresh node.
func (s *Searcher) adopt(pos *engine.Position) *node {
	if s.cfg.ReuseTree && s.root != nil {
		if s.root.pos.Equal(pos) {
			s.stats.Reused = true
			return s.root
		}
		for _, reply := range s.root.children {
			if reply.pos.Equal(pos) {
				s.stats.Reused = true
				return reply
			}
		}
	}
	s.stats.Nodes++
	return newNode(pos, chess.NullMove, chess.NoSquare)
}

// pickBest returns the index of the highest score. Ties are broken by
// reservoir sampling: the i-th tied score replaces the pick with
// probability 1/i.
func (s *Searcher) pickBest(scores []float64) int {
	best := math.Inf(-1)
	pick, ties := 0, 0
	for i, v := range scores {
		switch {
		case v > best:
			best, pick, ties = v, i, 1
		case v == best:
			ties++
			if s.rng.Intn(ties) == 0 {
				pick = i
			}
		}
	}
	return pick
}

// scoreParallel values each root child on its own worker. Subtrees share
// no mutable state, and results come back in generation order.
func (s *Searcher) scoreParallel(children []*node) []float64 {
	process := func(item worker.WorkItem) worker.ProcessResult {
		w := &walker{}
		score := w.childValue(children[item.Index], s.cfg.Depth, s.cfg.MaxExtensions)
		return worker.ProcessResult{
			Index:      item.Index,
			Score:      score,
			Nodes:      w.stats.Nodes,
			Leaves:     w.stats.Leaves,
			Extensions: w.stats.Extensions,
		}
	}

	items := make([]worker.WorkItem, len(children))
	for i := range children {
		items[i] = worker.WorkItem{Index: i}
	}
	pool := worker.NewPoolWithOptions(process,
		worker.WithWorkers(s.cfg.Workers), worker.WithBufferSize(len(children)))

	scores := make([]float64, len(children))
	for _, r := range pool.Run(items) {
		scores[r.Index] = r.Score
		s.stats.add(Stats{Nodes: r.Nodes, Leaves: r.Leaves, Extensions: r.Extensions})
	}
	return scores
}
