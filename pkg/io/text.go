package io

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ryansmg/graphgen/pkg/graph"
)

// WritePlain writes "V E" followed by one "u v" line per edge. With
// zeroBased, node ids are printed as id-1.
func WritePlain(w io.Writer, g *graph.Graph, zeroBased bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, g.NodeCount(), g.EdgeCount())
	writeEdges(bw, g, offset(zeroBased))
	return bw.Flush()
}

// WriteCSAcademy writes every node id on its own line, then the edges.
func WriteCSAcademy(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for i := 1; i <= g.NodeCount(); i++ {
		fmt.Fprintln(bw, i)
	}
	writeEdges(bw, g, 0)
	return bw.Flush()
}

// WriteEdges writes one "u v" line per edge with no header.
func WriteEdges(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	writeEdges(bw, g, 0)
	return bw.Flush()
}

func writeEdges(w *bufio.Writer, g *graph.Graph, shift int) {
	for _, e := range g.Edges() {
		fmt.Fprintln(w, e.From-shift, e.To-shift)
	}
}

func offset(zeroBased bool) int {
	if zeroBased {
		return 1
	}
	return 0
}
