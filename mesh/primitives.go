package mesh

import (
	"fmt"
	"math"

	"github.com/npillmayer/tubular"
	"github.com/ungerik/go3d/float64/vec3"
)

// Sphere creates a UV-sphere around the origin, with its poles on the
// Z-axis. Each of the stacks+1 rows holds slices+1 vertices; the first and
// last vertex of a row share position and normal but not texture
// coordinates. The pole rows are connected by a single triangle per
// sector, all other rows by two.
func Sphere(stacks, slices int, radius float64) (*Buffer, error) {
	if stacks < 2 || slices < 3 || radius <= 0 {
		return nil, fmt.Errorf("%w: sphere stacks %d, slices %d, radius %g",
			ErrInvalidParameter, stacks, slices, radius)
	}
	sliceStep := 2 * math.Pi / float64(slices)
	stackStep := math.Pi / float64(stacks)
	b := &Buffer{
		Vertices: make([]Vertex, 0, (stacks+1)*(slices+1)),
		Topology: Triangles,
	}
	for i := 0; i <= stacks; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep // from π/2 to -π/2
		xy := radius * math.Cos(stackAngle)
		z := radius * math.Sin(stackAngle)
		for j := 0; j <= slices; j++ {
			sliceAngle := float64(j) * sliceStep
			pos := vec3.T{xy * math.Cos(sliceAngle), xy * math.Sin(sliceAngle), z}
			b.Vertices = append(b.Vertices, Vertex{
				Position: pos,
				Normal:   pos.Scaled(1 / radius),
				UV:       tubular.P(float64(i)/float64(stacks), 1-float64(j)/float64(slices)),
			})
		}
	}
	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (slices + 1))
		k2 := k1 + uint32(slices+1)
		for j := 0; j < slices; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				b.Indices = append(b.Indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				b.Indices = append(b.Indices, k1+1, k2, k2+1)
			}
		}
	}
	return b, nil
}

var cuboidFaces = [6]struct {
	normal  vec3.T
	corners [4]vec3.T
}{
	{vec3.T{0, 0, 1}, [4]vec3.T{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},     // front
	{vec3.T{1, 0, 0}, [4]vec3.T{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},     // right
	{vec3.T{0, 0, -1}, [4]vec3.T{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}}, // back
	{vec3.T{-1, 0, 0}, [4]vec3.T{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}}, // left
	{vec3.T{0, 1, 0}, [4]vec3.T{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},     // top
	{vec3.T{0, -1, 0}, [4]vec3.T{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}}, // bottom
}

var quadUV = [4]tubular.Pair{tubular.P(0, 0), tubular.P(1, 0), tubular.P(1, 1), tubular.P(0, 1)}

// Cuboid creates an axis-aligned box around the origin, with four vertices
// and two triangles per face. With inwards set, normals point into the box,
// e.g. for rooms or sky boxes.
func Cuboid(halfExtents vec3.T, inwards bool) (*Buffer, error) {
	if halfExtents[0] <= 0 || halfExtents[1] <= 0 || halfExtents[2] <= 0 {
		return nil, fmt.Errorf("%w: cuboid extents %v", ErrInvalidParameter, halfExtents)
	}
	orientation := 1.0
	if inwards {
		orientation = -1
	}
	b := &Buffer{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
		Topology: Triangles,
	}
	for f, face := range cuboidFaces {
		normal := face.normal.Scaled(orientation)
		for k, c := range face.corners {
			b.Vertices = append(b.Vertices, Vertex{
				Position: vec3.Mul(&c, &halfExtents),
				Normal:   normal,
				UV:       quadUV[k],
			})
		}
		base := uint32(4 * f)
		b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return b, nil
}

// Line creates a closed line loop through points.
func Line(points []vec3.T) (*Buffer, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: line loop needs 2 points, have %d", ErrInvalidParameter, len(points))
	}
	return &Buffer{Vertices: plainVertices(points), Topology: LineLoop}, nil
}

// Centerline creates an open polyline through points, as line segments
// between consecutive points. It is meant for visualizing a track's
// centerline.
func Centerline(points []vec3.T) (*Buffer, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: centerline needs 2 points, have %d", ErrInvalidParameter, len(points))
	}
	b := &Buffer{
		Vertices: plainVertices(points),
		Indices:  make([]uint32, 0, 2*(len(points)-1)),
		Topology: Lines,
	}
	for i := 1; i < len(points); i++ {
		b.Indices = append(b.Indices, uint32(i-1), uint32(i))
	}
	return b, nil
}

// plainVertices wraps points into vertices without meaningful normal or
// texture coordinates.
func plainVertices(points []vec3.T) []Vertex {
	vertices := make([]Vertex, len(points))
	for i, p := range points {
		vertices[i] = Vertex{Position: p, Normal: vec3.UnitXYZ}
	}
	return vertices
}
