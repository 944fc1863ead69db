package io

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/notegraph/pkg/graph"
)

// Options controls encoding and decoding. The zero value is the default.
type Options struct {
	// ResolveByGeometry recovers edge endpoints from each edge's drawn
	// segment instead of its identities, dropping edges that no longer
	// match a node position.
	ResolveByGeometry bool

	// Strict re-validates note text on decode and rejects files holding
	// blank or over-long notes.
	Strict bool
}

// Report summarizes an encode or decode.
type Report struct {
	Nodes    int            // Nodes written or read
	Edges    int            // Edges written or read
	Dropped  []graph.EdgeID // Edges left out on encode because endpoints were unresolved
	Warnings []string       // Non-fatal problems worth showing to the user
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// file is the on-disk shape written by the encoder.
type file struct {
	Nodes []fileNode `json:"nodes"`
	Edges [][2]int   `json:"edges"`
}

type fileNode struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// rawFile is the shape read by the decoder. Pointers distinguish missing
// fields from zero values.
type rawFile struct {
	Nodes []rawNode `json:"nodes" validate:"required,dive"`
	Edges [][]int   `json:"edges" validate:"required,dive,len=2"`
}

type rawNode struct {
	X    *float64 `json:"x" validate:"required"`
	Y    *float64 `json:"y" validate:"required"`
	Text *string  `json:"text" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return v
}

// describeValidation turns validator errors into "nodes[1].x is required".
func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		_, field, _ := strings.Cut(e.Namespace(), ".")
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "len":
			msgs = append(msgs, fmt.Sprintf("%s must have exactly %s elements", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}
