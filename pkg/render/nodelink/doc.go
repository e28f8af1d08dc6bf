// Package nodelink renders generated graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT, then render it:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Options
//
//   - Directed: emit a digraph with arrows instead of an undirected graph
//   - Label: caption under the diagram
//   - Detailed: include node degrees in labels
//
// The DOT output uses the neato layout with small circular nodes, which
// reads well for the sparse graphs typical of test inputs. Isolated nodes
// are drawn dashed.
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which embeds Graphviz as
// WebAssembly, so no system install is required.
package nodelink
