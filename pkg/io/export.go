package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	pkgerrors "github.com/matzehuels/notegraph/pkg/errors"
	"github.com/matzehuels/notegraph/pkg/graph"
)

// Encode serializes g as indented JSON.
// See [WriteJSON] for how edges are translated.
func Encode(g *graph.Graph, opts Options) ([]byte, Report, error) {
	var buf bytes.Buffer
	rep, err := WriteJSON(g, &buf, opts)
	if err != nil {
		return nil, rep, err
	}
	return buf.Bytes(), rep, nil
}

// WriteJSON encodes g as JSON and writes it to w.
//
// Nodes are written in creation order and edges become [source, target]
// index pairs into that order. With [Options.ResolveByGeometry], endpoints
// are recovered from edge segments and unresolved edges are omitted and
// listed in [Report.Dropped].
func WriteJSON(g *graph.Graph, w io.Writer, opts Options) (Report, error) {
	out, rep, err := toFile(g, opts)
	if err != nil {
		return rep, err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return rep, pkgerrors.Wrap(pkgerrors.ErrCodeIO, err, "encode graph")
	}
	return rep, nil
}

// ExportJSON writes g to a JSON file at path.
//
// The graph is written to a temporary file in the same directory which is
// then renamed over path, so readers see either the old or the new graph.
// The file is created with 0644 permissions.
func ExportJSON(g *graph.Graph, path string, opts Options) (Report, error) {
	if err := pkgerrors.ValidatePath(path); err != nil {
		return Report{}, err
	}

	data, rep, err := Encode(g, opts)
	if err != nil {
		return rep, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return rep, pkgerrors.Wrap(pkgerrors.ErrCodeIO, err, "create %s", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return rep, pkgerrors.Wrap(pkgerrors.ErrCodeIO, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return rep, pkgerrors.Wrap(pkgerrors.ErrCodeIO, err, "write %s", path)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return rep, pkgerrors.Wrap(pkgerrors.ErrCodeIO, err, "chmod %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return rep, pkgerrors.Wrap(pkgerrors.ErrCodeIO, err, "rename into %s", path)
	}
	return rep, nil
}

func toFile(g *graph.Graph, opts Options) (file, Report, error) {
	nodes := g.Nodes().Nodes()
	out := file{
		Nodes: make([]fileNode, len(nodes)),
		Edges: make([][2]int, 0, g.EdgeCount()),
	}
	index := make(map[graph.NodeID]int, len(nodes))
	for i, n := range nodes {
		out.Nodes[i] = fileNode{X: n.Pos.X, Y: n.Pos.Y, Text: n.Text}
		index[n.ID] = i
	}

	var rep Report
	for _, e := range g.Edges().Edges() {
		src, dst := e.Source, e.Target
		if opts.ResolveByGeometry {
			var err error
			src, dst, err = g.Edges().ResolveEndpointsByPosition(g.Nodes(), e.Segment)
			// Overlapping nodes resolve both ends to the first of them.
			if err != nil || src == dst {
				rep.Dropped = append(rep.Dropped, e.ID)
				continue
			}
		}
		si, okS := index[src]
		ti, okT := index[dst]
		if !okS || !okT {
			return file{}, rep, pkgerrors.New(pkgerrors.ErrCodeInternal, "edge %s references a missing node", e.ID)
		}
		out.Edges = append(out.Edges, [2]int{si, ti})
	}

	if n := len(rep.Dropped); n > 0 {
		rep.warnf("%d edge(s) not saved: their endpoints no longer match distinct node positions", n)
	}
	rep.Nodes = len(out.Nodes)
	rep.Edges = len(out.Edges)
	return out, rep, nil
}
