package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/graph"
)

// ReadJSON decodes a graph written by [WriteJSON].
//
// It returns an error if the JSON is malformed, if "nodes" is not in
// 1..[graph.MaxNodes], or if an edge references a node outside 1..nodes.
// Edge errors name the offending edge. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g, err := graph.New(data.Nodes)
	if err != nil {
		return nil, err
	}
	for i, e := range data.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidArgument, err, "edge %d (%d->%d)", i, e.From, e.To)
		}
	}
	return g, nil
}

// ImportJSON reads a JSON graph file at path. A missing file is reported
// with code ErrCodeFileNotFound.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
