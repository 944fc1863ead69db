// Package io provides JSON encoding and decoding of note graphs.
//
// # JSON Format
//
// A graph file has two required top-level arrays:
//
//	{
//	  "nodes": [
//	    {"x": 0, "y": 0, "text": "Meeting notes"},
//	    {"x": 100, "y": 50, "text": "Follow up"}
//	  ],
//	  "edges": [
//	    [0, 1]
//	  ]
//	}
//
// Nodes are written in creation order. Each edge is a [source, target] pair
// of zero-based indices into the nodes array of the same file. Node and edge
// identities are not persisted: they are translated to positional indices on
// encode and freshly allocated on decode. There is no schema version field.
//
// # Encoding
//
// Use [Encode] for bytes, [WriteJSON] for any io.Writer, or [ExportJSON]
// to write a file. ExportJSON writes to a temporary file in the target
// directory and renames it into place, so a failed save never leaves a
// truncated graph behind.
//
// By default edge endpoints come from the identities each edge carries.
// Setting [Options.ResolveByGeometry] reproduces the legacy editor instead:
// endpoints are recovered from the segment drawn at edge creation, and edges
// whose nodes were moved since are left out of the file. Dropped edges are
// listed in the returned [Report].
//
// # Decoding
//
// Use [Decode] to build a fresh graph from bytes, or [DecodeInto],
// [ReadJSON] and [ImportJSON] to replace the contents of an existing graph.
// Decoding is never a merge: the target is cleared first. It is also atomic:
// on error the target graph is left untouched.
//
// Decoding fails with a FORMAT error when:
//   - The JSON is malformed, or "nodes" / "edges" is missing
//   - A node lacks "x", "y" or "text"
//   - An edge is not exactly two indices
//   - An index is outside the decoded nodes array, or both indices are equal
//
// Note text is not re-validated unless [Options.Strict] is set; out-of-policy
// text is accepted and reported as a warning in the [Report].
//
// ImportJSON reports a missing file with a FILE_NOT_FOUND error so callers
// can treat it as an empty graph.
package io
