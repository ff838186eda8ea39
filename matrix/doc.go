// Package matrix exports a core.Graph as a dense 0/1 adjacency matrix.
//
// The export is only defined for graphs whose labels are the dense
// integer range 0..nv−1: row i, column j is 1 exactly when the edge i→j
// exists. This is a documented limitation, not a general-label feature —
// any other label type or range is rejected with ErrUnsupportedLabel
// instead of silently producing a wrong matrix.
//
// Undirected graphs yield symmetric matrices; the diagonal is always
// zero (the core type admits no self-loops).
//
// Errors:
//
//   - ErrGraphNil          nil graph
//   - ErrUnsupportedLabel  labels are not int, or not exactly 0..nv−1
package matrix
