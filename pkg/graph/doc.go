// Package graph builds random graphs for stress-testing solutions to graph
// problems.
//
// A [Graph] is an edge list over the nodes 1..n. It keeps insertion order,
// allows duplicate edges and self-loops, and tracks connected components
// with a [DisjointSet] as edges are added. Graphs only grow.
//
// # Generators
//
// Every random generator takes an explicit [rnd.Source], so a fixed seed
// reproduces the same graph:
//
//	r := rnd.New(42)
//	g, err := graph.Connected(r, 10, 15)
//
// Available shapes:
//
//   - [RandomTree], [ElongatedTree]: random spanning trees
//   - [Halin], [TreeWithoutDegree2]: trees without degree-2 nodes, with or
//     without a leaf cycle
//   - [Cactus]: every edge on at most one cycle
//   - [Connected], [Random]: simple graphs with a given edge count
//   - [Path], [Complete], [Star], [Skeleton]: fixed shapes
//
// Optional parameters use functional options such as [WithElongation]:
//
//	g, err := graph.RandomTree(r, 1000, graph.WithElongation(50)) // long and thin
//
// # Trees
//
// [Tree] wraps a graph known to be a tree. It offers no way to add edges,
// so the tree property holds for its whole lifetime.
//
// # Shuffling
//
// Judge inputs should not leak generator structure. [Graph.ShuffleAll]
// relabels nodes and permutes edges, and [Graph.ShuffleAllUndir] also flips
// edge directions.
//
// # Errors
//
// Contract violations, such as an out-of-range node or an impossible edge
// count, return errors with code errors.ErrCodeInvalidArgument.
//
// # Concurrency
//
// Graph, Tree and rnd.Source are not safe for concurrent use.
package graph
