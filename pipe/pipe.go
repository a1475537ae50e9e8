/*
Package pipe sweeps a cross-section contour along a 3D path.

The contour is given in local coordinates, lying in the XY-plane around the
origin and facing +Z. It is first rotated to face the initial direction of
the path and moved to the first path point. Every following contour is the
previous one, projected along the incoming path segment onto the miter plane
at the next path point. The normal of a miter plane is the sum of the
incoming and outgoing segment directions, so the plane bisects the joint.

For each path point a Pipe keeps the projected contour and the outward
normals of its vertices. Vertices which cannot be projected, e.g. because
the path folds back onto itself, are set to tubular.Invalid().

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pipe

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tubular"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'pipe'
func tracer() tracing.Trace {
	return tracing.Select("pipe")
}

// ErrIndexOutOfRange indicates access to a path point or contour beyond the
// current size of the pipe.
var ErrIndexOutOfRange = errors.New("pipe index out of range")

// Pipe is a contour swept along a path.
//
// After every change to path or contour, contours and normals hold one
// entry per path point. A Pipe is not safe for concurrent use.
type Pipe struct {
	path     []vec3.T
	contour  []vec3.T   // base contour, in local coordinates
	contours [][]vec3.T // contours[i] belongs to path[i]
	normals  [][]vec3.T // normals[i][j] is the unit vector from path[i] to contours[i][j]
}

// New creates a pipe for a path and a contour. Both may be empty.
func New(path, contour []vec3.T) *Pipe {
	p := &Pipe{}
	p.Set(path, contour)
	return p
}

// Set replaces path and contour and regenerates all contours.
// The pipe keeps copies of the arguments.
func (p *Pipe) Set(path, contour []vec3.T) {
	p.path = append([]vec3.T(nil), path...)
	p.contour = append([]vec3.T(nil), contour...)
	p.generateContours()
}

// SetPath replaces the path and regenerates all contours.
func (p *Pipe) SetPath(path []vec3.T) {
	p.path = append([]vec3.T(nil), path...)
	p.generateContours()
}

// SetContour replaces the base contour and regenerates all contours.
func (p *Pipe) SetContour(contour []vec3.T) {
	p.contour = append([]vec3.T(nil), contour...)
	p.generateContours()
}

// AddPathPoint appends a point to the path. Only the contour at the former
// end of the path is recomputed, as its outgoing direction has changed;
// then the contour for the new point is appended. The result is identical
// to regenerating all contours for the extended path.
func (p *Pipe) AddPathPoint(point vec3.T) {
	p.path = append(p.path, point)
	count := len(p.path)
	switch count {
	case 1:
		p.contours = append(p.contours, p.transformFirstContour())
		p.normals = append(p.normals, p.computeContourNormal(0))
	case 2:
		// the first contour now has a direction to face
		p.contours[0] = p.transformFirstContour()
		p.normals[0] = p.computeContourNormal(0)
		p.contours = append(p.contours, p.projectContour(0, 1))
		p.normals = append(p.normals, p.computeContourNormal(1))
	default:
		p.contours[count-2] = p.projectContour(count-3, count-2)
		p.normals[count-2] = p.computeContourNormal(count - 2)
		p.contours = append(p.contours, p.projectContour(count-2, count-1))
		p.normals = append(p.normals, p.computeContourNormal(count-1))
	}
}

// generateContours rebuilds contours and normals for the whole path.
func (p *Pipe) generateContours() {
	count := len(p.path)
	p.contours = make([][]vec3.T, 0, count)
	p.normals = make([][]vec3.T, 0, count)
	if count == 0 {
		return
	}
	p.contours = append(p.contours, p.transformFirstContour())
	p.normals = append(p.normals, p.computeContourNormal(0))
	for i := 1; i < count; i++ {
		p.contours = append(p.contours, p.projectContour(i-1, i))
		p.normals = append(p.normals, p.computeContourNormal(i))
	}
	tracer().Debugf("generated %d contours of %d vertices", count, len(p.contour))
}

// transformFirstContour rotates the base contour to face the direction
// from path[0] to path[1] and moves it to path[0]. A single-point path
// does not rotate the contour.
func (p *Pipe) transformFirstContour() []vec3.T {
	m := mat4.Ident
	if len(p.path) > 1 {
		dir := vec3.Sub(&p.path[1], &p.path[0])
		var err error
		if m, err = tubular.LookAtDirection(dir); err != nil {
			tracer().Errorf("first path segment is degenerate: %v", err)
			return invalidContour(len(p.contour))
		}
	}
	first := make([]vec3.T, len(p.contour))
	for i, v := range p.contour {
		r := tubular.Rotational(&m, v)
		first[i] = vec3.Add(&r, &p.path[0])
	}
	return first
}

// projectContour projects contours[from] along path[to]-path[from] onto
// the miter plane at path[to].
func (p *Pipe) projectContour(from, to int) []vec3.T {
	dir1 := vec3.Sub(&p.path[to], &p.path[from])
	dir2 := dir1
	if to < len(p.path)-1 {
		dir2 = vec3.Sub(&p.path[to+1], &p.path[to])
	}
	normal := vec3.Add(&dir1, &dir2)
	src := p.contours[from]
	projected := make([]vec3.T, len(src))
	plane, err := tubular.NewPlane(normal, p.path[to])
	if err != nil {
		tracer().Errorf("no miter plane at path point %d: %v", to, err)
		return invalidContour(len(src))
	}
	invalid := 0
	for i, v := range src {
		line := tubular.NewLine(dir1, v)
		if projected[i], err = plane.IntersectLine(line); err != nil {
			invalid++
		}
	}
	if invalid > 0 {
		tracer().Errorf("%d vertices of contour %d could not be projected", invalid, to)
	}
	return projected
}

// computeContourNormal returns the unit vectors from path[i] to each vertex
// of contours[i].
func (p *Pipe) computeContourNormal(i int) []vec3.T {
	center := p.path[i]
	normals := make([]vec3.T, len(p.contours[i]))
	for j, v := range p.contours[i] {
		normals[j] = tubular.Unit(vec3.Sub(&v, &center))
	}
	return normals
}

func invalidContour(n int) []vec3.T {
	c := make([]vec3.T, n)
	for i := range c {
		c[i] = tubular.Invalid()
	}
	return c
}

// --- Accessors -------------------------------------------------------------

// PathCount returns the number of path points.
func (p *Pipe) PathCount() int {
	return len(p.path)
}

// PathPoints returns the path. Clients must not modify it.
func (p *Pipe) PathPoints() []vec3.T {
	return p.path
}

// PathPoint returns path point i.
func (p *Pipe) PathPoint(i int) (vec3.T, error) {
	if i < 0 || i >= len(p.path) {
		return vec3.T{}, fmt.Errorf("%w: path point %d of %d", ErrIndexOutOfRange, i, len(p.path))
	}
	return p.path[i], nil
}

// BaseContour returns the contour in local coordinates. Clients must not
// modify it.
func (p *Pipe) BaseContour() []vec3.T {
	return p.contour
}

// ContourCount returns the number of contours, which equals PathCount.
func (p *Pipe) ContourCount() int {
	return len(p.contours)
}

// Contours returns all contours. Clients must not modify them.
func (p *Pipe) Contours() [][]vec3.T {
	return p.contours
}

// Contour returns the contour at path point i.
func (p *Pipe) Contour(i int) ([]vec3.T, error) {
	if i < 0 || i >= len(p.contours) {
		return nil, fmt.Errorf("%w: contour %d of %d", ErrIndexOutOfRange, i, len(p.contours))
	}
	return p.contours[i], nil
}

// Normals returns the vertex normals of all contours. Clients must not
// modify them.
func (p *Pipe) Normals() [][]vec3.T {
	return p.normals
}

// Normal returns the vertex normals of the contour at path point i.
func (p *Pipe) Normal(i int) ([]vec3.T, error) {
	if i < 0 || i >= len(p.normals) {
		return nil, fmt.Errorf("%w: normals %d of %d", ErrIndexOutOfRange, i, len(p.normals))
	}
	return p.normals[i], nil
}

// IsValid is a predicate: could every vertex of contour i be computed?
func (p *Pipe) IsValid(i int) bool {
	if i < 0 || i >= len(p.contours) {
		return false
	}
	return tubular.AllValid(p.contours[i])
}
