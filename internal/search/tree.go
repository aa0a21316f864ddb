package search

import (
	"math"

	"github.com/bhataktaBhai/ShallowRed/internal/chess"
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
	"github.com/bhataktaBhai/ShallowRed/internal/eval"
)

// node is one position of the game tree.
type node struct {
	pos  *engine.Position
	move chess.Move // move that led here

	// captureOn is the destination of move when it captured and the
	// capturing piece can be taken back there; NoSquare otherwise.
	captureOn chess.Square

	children []*node // every legal reply, once expanded
	expanded bool

	static float64 // eval.Evaluate of pos, once scored
	scored bool
}

func newNode(pos *engine.Position, move chess.Move, captureOn chess.Square) *node {
	return &node{pos: pos, move: move, captureOn: captureOn}
}

// walker evaluates a subtree and counts what it does.
// Each goroutine uses its own walker.
type walker struct {
	stats Stats
}

// child builds the node reached by m from parent.
func (w *walker) child(parent *engine.Position, m chess.Move) *node {
	w.stats.Nodes++
	next := parent.Apply(m)
	captureOn := chess.NoSquare
	if parent.IsCapture(m) && next.Attacked(m.To, next.Turn()) {
		captureOn = m.To
	}
	return newNode(next, m, captureOn)
}

// expand returns every child of n, generating them on first use.
func (w *walker) expand(n *node) []*node {
	if !n.expanded {
		moves := n.pos.AllLegalMoves()
		n.children = make([]*node, len(moves))
		for i, m := range moves {
			n.children[i] = w.child(n.pos, m)
		}
		n.expanded = true
	}
	return n.children
}

// recaptures returns the children of n that take back on sq. They are
// built on demand rather than cached, so a later full expansion of n
// starts clean.
func (w *walker) recaptures(n *node, sq chess.Square) []*node {
	if n.expanded {
		var out []*node
		for _, c := range n.children {
			if c.move.To == sq {
				out = append(out, c)
			}
		}
		return out
	}
	var out []*node
	for _, m := range n.pos.AllLegalMoves() {
		if m.To == sq {
			out = append(out, w.child(n.pos, m))
		}
	}
	return out
}

// leaf statically scores n, evaluating its position at most once.
func (w *walker) leaf(n *node) float64 {
	w.stats.Leaves++
	if !n.scored {
		n.static = eval.Evaluate(n.pos)
		n.scored = true
	}
	return n.static
}

// childValue scores c, created one ply below a node searched to depth,
// granting a forcing extension when c lands on the horizon.
func (w *walker) childValue(c *node, depth, extLeft int) float64 {
	remaining := depth - 1
	only := chess.NoSquare
	if remaining == 0 && extLeft > 0 {
		switch {
		case c.pos.InCheck():
			remaining = 1
		case c.captureOn != chess.NoSquare:
			remaining = 1
			only = c.captureOn
		}
		if remaining == 1 {
			w.stats.Extensions++
			extLeft--
		}
	}
	return w.value(c, remaining, extLeft, only)
}

// value is the negamax score of n from the point of view of the side
// that moved into it. When only is a square, just the recaptures there
// are searched.
func (w *walker) value(n *node, depth, extLeft int, only chess.Square) float64 {
	if depth <= 0 || n.pos.IsStuck() {
		return w.leaf(n)
	}

	var children []*node
	if only != chess.NoSquare {
		children = w.recaptures(n, only)
	} else {
		children = w.expand(n)
	}
	if len(children) == 0 {
		return w.leaf(n)
	}

	best := math.Inf(-1)
	for _, c := range children {
		if v := w.childValue(c, depth, extLeft); v > best {
			best = v
		}
	}
	return -best
}
