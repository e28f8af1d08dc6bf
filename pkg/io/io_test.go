package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/graph"
)

func sampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range [][2]int{{1, 2}, {2, 3}, {4, 2}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestTextWriters(t *testing.T) {
	tests := []struct {
		name  string
		write func(*bytes.Buffer, *graph.Graph) error
		want  string
	}{
		{
			name:  "Plain",
			write: func(b *bytes.Buffer, g *graph.Graph) error { return WritePlain(b, g, false) },
			want:  "4 3\n1 2\n2 3\n4 2\n",
		},
		{
			name:  "PlainZeroBased",
			write: func(b *bytes.Buffer, g *graph.Graph) error { return WritePlain(b, g, true) },
			want:  "4 3\n0 1\n1 2\n3 1\n",
		},
		{
			name:  "CSAcademy",
			write: func(b *bytes.Buffer, g *graph.Graph) error { return WriteCSAcademy(b, g) },
			want:  "1\n2\n3\n4\n1 2\n2 3\n4 2\n",
		},
		{
			name:  "Edges",
			write: func(b *bytes.Buffer, g *graph.Graph) error { return WriteEdges(b, g) },
			want:  "1 2\n2 3\n4 2\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.write(&buf, sampleGraph(t)); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlainSingleNode(t *testing.T) {
	g, _ := graph.New(1)
	var buf bytes.Buffer
	if err := WritePlain(&buf, g, false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "1 0\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := sampleGraph(t)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, g); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"nodes": 4`) {
		t.Errorf("missing node count in %s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.NodeCount() != 4 || got.EdgeCount() != 3 {
		t.Fatalf("got %d nodes, %d edges", got.NodeCount(), got.EdgeCount())
	}
	for i, e := range got.Edges() {
		if e != g.Edges()[i] {
			t.Errorf("edge %d = %v, want %v", i, e, g.Edges()[i])
		}
	}
}

func TestWriteJSONEmptyEdges(t *testing.T) {
	g, _ := graph.New(2)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, g); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"edges": []`) {
		t.Errorf("edges should encode as an empty array: %s", buf.String())
	}
}

func TestReadJSONInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"NoNodes", `{"nodes": 0, "edges": []}`, errors.ErrCodeInvalidArgument},
		{"EdgeOutOfRange", `{"nodes": 2, "edges": [{"from": 1, "to": 3}]}`, errors.ErrCodeInvalidArgument},
		{"Malformed", `{"nodes": `, ""},
		{"HugeNodeCount", `{"nodes": 9223372036854775807, "edges": []}`, errors.ErrCodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.code != "" && !errors.Is(err, tt.code) {
				t.Errorf("error %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestExportImportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	if err := ExportJSON(sampleGraph(t), path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not written: %v", err)
	}
	g, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}

	_, err = ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPlain, false},
		{"plain0", FormatPlain0, false},
		{"CSAcademy", FormatCSAcademy, false},
		{"dot", FormatDOT, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want INVALID_FORMAT", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestWriteDispatch(t *testing.T) {
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, sampleGraph(t), f); err != nil {
				t.Fatalf("Write(%s): %v", f, err)
			}
			if buf.Len() == 0 {
				t.Error("empty output")
			}
		})
	}

	var buf bytes.Buffer
	if err := Write(&buf, sampleGraph(t), Format("bogus")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Write(bogus) error = %v", err)
	}
	if err := Write(&buf, sampleGraph(t), FormatDOT); err != nil || !strings.Contains(buf.String(), "4 -- 2;") {
		t.Errorf("Write(dot) = %q, %v", buf.String(), err)
	}
}
