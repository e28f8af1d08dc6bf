package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ryansmg/graphgen/pkg/graph"
)

type document struct {
	Nodes int          `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// WriteJSON encodes g as indented JSON and writes it to w.
// Edges keep their order and direction, so [ReadJSON] rebuilds an equal
// graph.
func WriteJSON(w io.Writer, g *graph.Graph) error {
	out := document{Nodes: g.NodeCount(), Edges: g.Edges()}
	if out.Edges == nil {
		out.Edges = []graph.Edge{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, g)
}
