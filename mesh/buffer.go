/*
Package mesh builds vertex and index buffers for the surfaces of a tube
track: tubes around a centerline, tori, strips between the contours of a
swept pipe, and a few primitives (spheres, cuboids, line loops).

A Buffer is renderer-agnostic. It carries vertices with position, normal
and texture coordinates, optional indices, and the topology the indices (or
the plain vertex sequence) are to be read with. Renderers implement Sink to
receive buffers; Interleaved flattens a buffer into the usual
position/normal/uv layout of 8 floats per vertex.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tubular"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'mesh'
func tracer() tracing.Trace {
	return tracing.Select("mesh")
}

var (
	// ErrInvalidParameter indicates generator arguments out of range.
	ErrInvalidParameter = errors.New("invalid mesh parameter")
	// ErrEmptyBuffer indicates a buffer without vertices.
	ErrEmptyBuffer = errors.New("mesh buffer has no vertices")
	// ErrIndexOutOfRange indicates an index which does not address a vertex.
	ErrIndexOutOfRange = errors.New("mesh index out of range")
)

// Topology tells how to assemble vertices into primitives.
type Topology int8

// Topologies, matching the usual primitive modes of graphics APIs.
const (
	Points Topology = iota
	Lines
	LineLoop
	Triangles
	TriangleStrip
)

func (t Topology) String() string {
	switch t {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineLoop:
		return "line-loop"
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle-strip"
	}
	return fmt.Sprintf("topology(%d)", int(t))
}

// Vertex is a mesh vertex.
type Vertex struct {
	Position vec3.T
	Normal   vec3.T
	UV       tubular.Pair // texture coordinates
}

// FloatsPerVertex is the stride of Interleaved, in floats.
const FloatsPerVertex = 8

// Buffer holds the vertices of a mesh, and optionally indices into them.
type Buffer struct {
	Vertices []Vertex
	Indices  []uint32
	Topology Topology
}

// Sink receives mesh buffers, e.g. to upload them to a GPU.
type Sink interface {
	Upload(*Buffer) error
}

// Upload validates buffers and hands them to sink, stopping at the first
// error.
func Upload(sink Sink, buffers ...*Buffer) error {
	for i, b := range buffers {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("buffer #%d: %w", i, err)
		}
		if err := sink.Upload(b); err != nil {
			return fmt.Errorf("buffer #%d: %w", i, err)
		}
	}
	return nil
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int {
	return len(b.Vertices)
}

// IsIndexed is a predicate: is the buffer to be drawn by its indices?
func (b *Buffer) IsIndexed() bool {
	return len(b.Indices) > 0
}

// Validate checks that the buffer has vertices and that every index
// addresses one of them.
func (b *Buffer) Validate() error {
	if b == nil || len(b.Vertices) == 0 {
		return ErrEmptyBuffer
	}
	n := uint32(len(b.Vertices))
	for i, inx := range b.Indices {
		if inx >= n {
			return fmt.Errorf("%w: index #%d = %d, have %d vertices", ErrIndexOutOfRange, i, inx, n)
		}
	}
	return nil
}

// Interleaved returns the vertices as consecutive runs of position,
// normal and texture coordinates, FloatsPerVertex floats each.
func (b *Buffer) Interleaved() []float32 {
	data := make([]float32, 0, len(b.Vertices)*FloatsPerVertex)
	for _, v := range b.Vertices {
		u, w := v.UV.F()
		data = append(data,
			float32(v.Position[0]), float32(v.Position[1]), float32(v.Position[2]),
			float32(v.Normal[0]), float32(v.Normal[1]), float32(v.Normal[2]),
			float32(u), float32(w))
	}
	return data
}

// Bounds returns the axis-aligned bounding box of all valid vertex
// positions.
func (b *Buffer) Bounds() vec3.Box {
	box := vec3.Box{Min: vec3.MaxVal, Max: vec3.MinVal}
	for _, v := range b.Vertices {
		if !tubular.IsValid(v.Position) {
			continue
		}
		box.Min = vec3.Min(&box.Min, &v.Position)
		box.Max = vec3.Max(&box.Max, &v.Position)
	}
	return box
}

// BoundingSphere returns a sphere enclosing all valid vertex positions,
// centered at the center of Bounds. It is meant for frustum culling.
func (b *Buffer) BoundingSphere() (vec3.T, float64) {
	box := b.Bounds()
	center := box.Center()
	r := 0.0
	for _, v := range b.Vertices {
		if !tubular.IsValid(v.Position) {
			continue
		}
		r = math.Max(r, vec3.Distance(&center, &v.Position))
	}
	return center, r
}

// IsVisible is a predicate: may the buffer be visible within frustum f?
func (b *Buffer) IsVisible(f *tubular.Frustum) bool {
	center, r := b.BoundingSphere()
	return f.CheckSphere(center, r)
}

// InvalidVertices counts vertices with a position or normal which could not
// be computed.
func (b *Buffer) InvalidVertices() int {
	count := 0
	for _, v := range b.Vertices {
		if !tubular.IsValid(v.Position) || !tubular.IsValid(v.Normal) {
			count++
		}
	}
	return count
}
