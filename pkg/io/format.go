package io

import (
	"io"
	"slices"
	"strings"

	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/graph"
	"github.com/ryansmg/graphgen/pkg/render/nodelink"
)

// Format names an output layout.
type Format string

const (
	FormatPlain     Format = "plain"
	FormatPlain0    Format = "plain0"
	FormatCSAcademy Format = "csacademy"
	FormatEdges     Format = "edges"
	FormatJSON      Format = "json"
	FormatDOT       Format = "dot"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatPlain, FormatPlain0, FormatCSAcademy, FormatEdges, FormatJSON, FormatDOT}

// ParseFormat resolves a case-insensitive format name. An empty name
// selects [FormatPlain].
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatPlain, nil
	}
	f := Format(strings.ToLower(s))
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want one of %s)", s, FormatNames())
	}
	return f, nil
}

// FormatNames returns the supported names joined by ", ".
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Write renders g to w in the given format. DOT output treats the graph as
// undirected.
func Write(w io.Writer, g *graph.Graph, format Format) error {
	switch format {
	case FormatPlain, "":
		return WritePlain(w, g, false)
	case FormatPlain0:
		return WritePlain(w, g, true)
	case FormatCSAcademy:
		return WriteCSAcademy(w, g)
	case FormatEdges:
		return WriteEdges(w, g)
	case FormatJSON:
		return WriteJSON(w, g)
	case FormatDOT:
		_, err := io.WriteString(w, nodelink.ToDOT(g, nodelink.Options{}))
		return err
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
}
