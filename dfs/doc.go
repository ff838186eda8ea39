// Package dfs implements depth-first traversal with visitation timestamps
// on a core.Graph, plus the two derivations built on it: spanning forests
// and connected components.
//
// What:
//
//   - Run: full-graph DFS. Roots are taken in vertex construction order,
//     so disconnected components are always covered. Every vertex receives
//     one Interval{Pre, Post} from a single shared counter: Pre on first
//     visit, Post after its neighbors are exhausted.
//   - SpanningForest (undirected): the tree edges discovered by the
//     traversal, collected into a fresh graph over the same vertex catalog
//     — one tree per component, nv − #components edges, no cycles.
//   - ConnectedComponents (undirected): the induced subgraph of each
//     root's reachable set; the vertex sets partition the catalog exactly.
//
// Interval nesting law: for any two vertices the [Pre, Post] intervals are
// either disjoint or strictly nested, never partially overlapping. Sibling
// order follows the neighbor insertion order; callers should rely on the
// nesting property, not on a particular sibling order.
//
// The walk uses an explicit frame stack, not call-stack recursion, so
// graphs with thousands of vertices (and path-shaped worst cases) traverse
// without recursion-depth risk.
//
// Options:
//
//   - WithContext(ctx)   cancellation between steps
//   - WithOnVisit(fn)    pre-order hook; an error aborts the traversal
//   - WithOnExit(fn)     post-order hook; an error aborts the traversal
//
// Errors:
//
//   - ErrGraphNil        nil graph
//   - ErrDirectedGraph   SpanningForest/ConnectedComponents on a digraph
//   - context.Canceled   ctx expired mid-walk
//   - hook errors        propagated from OnVisit/OnExit, wrapped
//
// Complexity: Time O(V+E), Memory O(V) for all three entry points.
package dfs
