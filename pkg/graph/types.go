package graph

import (
	"fmt"
	"math"
	"sync/atomic"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Display width constants for [NodeWidth].
const (
	minNodeWidth  = 60
	charNodeWidth = 7
)

// NodeID identifies a node within one graph.
type NodeID string

// EdgeID identifies an edge within one graph.
type EdgeID string

// Point is a 2D scene coordinate.
type Point struct {
	X float64
	Y float64
}

// String formats the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// IsFinite reports whether both coordinates are finite numbers.
// The file format cannot represent NaN or infinities.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Segment is the line drawn between two node positions when an edge was created.
type Segment struct {
	A Point // First endpoint (source position at draw time)
	B Point // Second endpoint (target position at draw time)
}

// Node is a positioned text note.
// Values returned by the store are copies; use the store to mutate.
type Node struct {
	ID   NodeID
	Pos  Point
	Text string
}

// Width returns the display width of the node. See [NodeWidth].
func (n Node) Width() float64 { return NodeWidth(n.Text) }

// NodeWidth returns the display width for a note with the given text:
// max(60, 7 × characters). It is derived, never persisted.
func NodeWidth(text string) float64 {
	return float64(max(minNodeWidth, charNodeWidth*utf8.RuneCountInString(text)))
}

// Edge connects two nodes. Source and Target are authoritative; Segment is
// the geometry drawn at creation and goes stale when either node moves.
type Edge struct {
	ID      EdgeID
	Source  NodeID
	Target  NodeID
	Segment Segment
}

// IDFunc generates a fresh identity string.
type IDFunc func() string

// RandomIDs generates UUIDv4 identities. It is the default generator.
func RandomIDs() string { return uuid.NewString() }

// SequentialIDs returns a generator producing prefix1, prefix2, ...
// It is safe for concurrent use and mainly useful for deterministic tests.
func SequentialIDs(prefix string) IDFunc {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s%d", prefix, n.Add(1))
	}
}
