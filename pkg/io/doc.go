// Package io writes generated graphs in the text formats judges and graph
// visualizers expect, and round-trips them through JSON.
//
// # Text Formats
//
// [WritePlain] emits the common problem-setter layout, a header line with
// the node and edge counts followed by one edge per line:
//
//	4 3
//	1 2
//	2 3
//	2 4
//
// With zeroBased set, every node id is shifted down by one. [WriteCSAcademy]
// lists each node on its own line before the edges, which is what the
// CS Academy graph editor accepts. [WriteEdges] prints only the edges.
//
// # JSON Format
//
//	{
//	  "nodes": 4,
//	  "edges": [
//	    {"from": 1, "to": 2},
//	    {"from": 2, "to": 3}
//	  ]
//	}
//
// Use [ExportJSON]/[ImportJSON] for files and [WriteJSON]/[ReadJSON] for
// streams. Import re-validates every edge, so a file with an out-of-range
// node id is rejected.
//
// # Dispatch
//
// [Write] selects a writer by [Format], which is how the CLI and the
// pipeline render output. [FormatDOT] goes through pkg/render/nodelink.
package io
