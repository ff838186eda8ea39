// SPDX-License-Identifier: MIT
// Package: randgraph/dfs
//
// dfs.go — full-graph depth-first traversal with pre/post timestamps.
//
// Determinism:
//   - Roots iterate the vertex catalog in construction order.
//   - Neighbors iterate in insertion order.
// Implementation note: the walk keeps an explicit stack of
// (vertex, neighbor-cursor) frames instead of recursing, so the deepest
// possible input (a path graph) costs heap, not call stack.

package dfs

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/randgraph/core"
)

// walker encapsulates the shared state of one traversal.
type walker[V comparable] struct {
	graph   *core.Graph[V]
	opts    Options[V]
	res     *Result[V]
	visited map[V]bool
	pre     map[V]int // Pre timestamps held back until Post pairs them
	counter int
}

// frame is one explicit-stack entry: a vertex and how far through its
// neighbor list the walk has advanced.
type frame[V comparable] struct {
	vertex V
	nbs    []V
	next   int
}

// Run performs depth-first search over the whole graph. Every vertex is
// reached: the outer loop restarts from each not-yet-visited vertex in
// construction order, covering all components.
//
// Returns the timestamps, post-order, parent links, and tree roots, or an
// error if the context expires or a hook aborts (the partially filled
// Result is returned alongside, with Order cleared).
func Run[V comparable](g *core.Graph[V], opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize result with capacity hints.
	verts := g.Vertices()
	res := &Result[V]{
		PrePost: make(map[V]Interval, len(verts)),
		Order:   make([]V, 0, len(verts)),
		Parent:  make(map[V]V, len(verts)),
	}
	w := &walker[V]{
		graph:   g,
		opts:    o,
		res:     res,
		visited: make(map[V]bool, len(verts)),
		pre:     make(map[V]int, len(verts)),
	}

	// 4. Forest loop: one tree per unvisited root.
	for _, root := range verts {
		if w.visited[root] {
			continue
		}
		res.Roots = append(res.Roots, root)
		if err := w.explore(root); err != nil {
			res.Order = nil

			return res, err
		}
	}

	return res, nil
}

// explore walks one DFS tree from root using the explicit frame stack.
func (w *walker[V]) explore(root V) error {
	stack := make([]frame[V], 0, 16)

	if err := w.enter(root, &stack); err != nil {
		return err
	}

	for len(stack) > 0 {
		// Cancellation check once per step.
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next < len(top.nbs) {
			u := top.nbs[top.next]
			top.next++
			if w.visited[u] {
				continue
			}
			w.res.Parent[u] = top.vertex
			if err := w.enter(u, &stack); err != nil {
				return err
			}

			continue
		}

		// Neighbors exhausted: close the interval and pop.
		if err := w.leave(top.vertex); err != nil {
			return err
		}
		stack = stack[:len(stack)-1]
	}

	return nil
}

// enter marks v visited, stamps Pre, runs the pre-order hook, and pushes
// v's frame.
func (w *walker[V]) enter(v V, stack *[]frame[V]) error {
	w.visited[v] = true
	w.pre[v] = w.counter
	w.counter++

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return errors.Wrapf(err, "dfs: OnVisit hook for %v", v)
		}
	}

	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return errors.Wrapf(err, "dfs: Neighbors(%v)", v)
	}
	*stack = append(*stack, frame[V]{vertex: v, nbs: nbs})

	return nil
}

// leave runs the post-order hook, stamps Post, and records the finish.
func (w *walker[V]) leave(v V) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return errors.Wrapf(err, "dfs: OnExit hook for %v", v)
		}
	}

	w.res.PrePost[v] = Interval{Pre: w.pre[v], Post: w.counter}
	w.counter++
	w.res.Order = append(w.res.Order, v)

	return nil
}
