package io

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	pkgerrors "github.com/matzehuels/notegraph/pkg/errors"
	"github.com/matzehuels/notegraph/pkg/graph"
)

// Decode parses a JSON graph into a freshly created graph.
func Decode(data []byte, opts Options) (*graph.Graph, Report, error) {
	g := graph.New()
	rep, err := DecodeInto(g, data, opts)
	if err != nil {
		return nil, rep, err
	}
	return g, rep, nil
}

// DecodeInto parses a JSON graph and replaces the contents of g with it.
//
// For each entry in "nodes" a node is created at the given position with the
// given text, in file order. For each [i, j] in "edges" an edge is created
// from the i-th to the j-th decoded node.
//
// Returns a FORMAT error if the JSON is malformed, a required field is
// missing, an edge is not a pair, or an index is out of range or repeated.
// On error g is left untouched.
func DecodeInto(g *graph.Graph, data []byte, opts Options) (Report, error) {
	var rep Report

	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return rep, pkgerrors.Wrap(pkgerrors.ErrCodeFormat, err, "decode graph")
	}
	if err := validate.Struct(raw); err != nil {
		return rep, pkgerrors.Wrap(pkgerrors.ErrCodeFormat, err, "invalid graph: %s", describeValidation(err))
	}

	fresh := g.NewEmpty()
	ids := make([]graph.NodeID, len(raw.Nodes))
	for i, n := range raw.Nodes {
		if err := pkgerrors.ValidateNoteText(*n.Text); err != nil {
			if opts.Strict {
				return rep, pkgerrors.Wrap(pkgerrors.ErrCodeFormat, err, "node %d", i)
			}
			rep.warnf("node %d: %s", i, pkgerrors.UserMessage(err))
		}
		ids[i] = fresh.Nodes().RestoreNode(*n.Text, graph.Point{X: *n.X, Y: *n.Y})
	}

	for k, pair := range raw.Edges {
		i, j := pair[0], pair[1]
		if i < 0 || i >= len(ids) || j < 0 || j >= len(ids) {
			return rep, pkgerrors.New(pkgerrors.ErrCodeFormat, "edge %d: index [%d, %d] out of range for %d nodes", k, i, j, len(ids))
		}
		if _, err := fresh.Edges().CreateEdge(ids[i], ids[j]); err != nil {
			return rep, pkgerrors.Wrap(pkgerrors.ErrCodeFormat, err, "edge %d", k)
		}
	}

	g.Replace(fresh)
	rep.Nodes = g.NodeCount()
	rep.Edges = g.EdgeCount()
	return rep, nil
}

// ReadJSON reads a JSON graph from r and replaces the contents of g with it.
// ReadJSON does not close r.
func ReadJSON(r io.Reader, g *graph.Graph, opts Options) (Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Report{}, pkgerrors.Wrap(pkgerrors.ErrCodeIO, err, "read graph")
	}
	return DecodeInto(g, data, opts)
}

// ImportJSON reads the JSON file at path into g, replacing its contents.
//
// A missing file is reported with a FILE_NOT_FOUND error and leaves g
// untouched; other open failures are IO errors. Decoding errors are the
// same as for [DecodeInto].
func ImportJSON(path string, g *graph.Graph, opts Options) (Report, error) {
	if err := pkgerrors.ValidatePath(path); err != nil {
		return Report{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Report{}, pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "no saved graph found at %s", path)
		}
		return Report{}, pkgerrors.Wrap(pkgerrors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f, g, opts)
}
