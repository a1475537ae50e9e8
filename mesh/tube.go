package mesh

import (
	"fmt"
	"math"

	"github.com/npillmayer/tubular"
	"github.com/npillmayer/tubular/catmull"
	"github.com/ungerik/go3d/float64/vec3"
)

// Tube creates the inner surface of a tube of the given radius around a
// centerline. For every point except the last one a ring of stacks+1
// vertices is generated; the last vertex of a ring duplicates the first one
// with a different texture coordinate. Normals point inwards, towards the
// centerline.
//
// The ring at points[i] lies in the plane spanned by a bitangent
// B = cross(T, points[i+1]+points[i]) and N = cross(B, T), where T is the
// direction to the next point. B is an approximation which holds for
// centerlines circling the origin; it is not a true Frenet frame. Rings
// whose B cannot be normalized, e.g. for a straight centerline through the
// origin, consist of invalid vertices.
//
// Texture coordinate u runs around a ring, v along the centerline by arc
// length. Consecutive rings are connected by triangles.
func Tube(points []vec3.T, radius float64, stacks int) (*Buffer, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: tube needs 2 points, have %d", ErrInvalidParameter, len(points))
	}
	if radius <= 0 || stacks < 3 {
		return nil, fmt.Errorf("%w: tube radius %g, stacks %d", ErrInvalidParameter, radius, stacks)
	}
	circle := make([]tubular.Pair, stacks+1)
	da := 2 * math.Pi / float64(stacks)
	for k := range circle {
		circle[k] = tubular.P(radius*math.Cos(float64(k)*da), radius*math.Sin(float64(k)*da))
	}
	table := catmull.NewArcLengthTable(points, false)
	rings := len(points) - 1
	b := &Buffer{
		Vertices: make([]Vertex, 0, rings*len(circle)),
		Topology: Triangles,
	}
	invalid := 0
	for i := 0; i < rings; i++ {
		curr, next := points[i], points[i+1]
		T := tubular.Unit(vec3.Sub(&next, &curr))
		sum := vec3.Add(&next, &curr)
		B := tubular.Unit(vec3.Cross(&T, &sum))
		N := tubular.Unit(vec3.Cross(&B, &T))
		if !tubular.IsValid(B) || !tubular.IsValid(N) {
			invalid++
		}
		v := 0.0
		if table.Total() > 0 {
			v = table.At(i) / table.Total()
		}
		for k, p := range circle {
			x, y := p.F()
			bx := B.Scaled(x)
			ny := N.Scaled(y)
			offset := vec3.Add(&bx, &ny)
			b.Vertices = append(b.Vertices, Vertex{
				Position: vec3.Add(&curr, &offset),
				Normal:   tubular.Unit(offset.Scaled(-1)),
				UV:       tubular.P(float64(k)/float64(stacks), v),
			})
		}
	}
	if invalid > 0 {
		tracer().Errorf("tube: %d of %d rings are degenerate", invalid, rings)
	}
	b.Indices = ringIndices(rings, len(circle))
	tracer().Infof("tube: %d rings of %d vertices", rings, len(circle))
	return b, nil
}

// ringIndices connects rings of ringSize vertices, stored one after the
// other, by two triangles per quad.
func ringIndices(rings, ringSize int) []uint32 {
	if rings < 2 {
		return nil
	}
	indices := make([]uint32, 0, (rings-1)*(ringSize-1)*6)
	for i := 0; i < rings-1; i++ {
		k1 := uint32(i * ringSize)
		k2 := k1 + uint32(ringSize)
		for j := 0; j < ringSize-1; j, k1, k2 = j+1, k1+1, k2+1 {
			indices = append(indices, k1, k2, k1+1, k1+1, k2, k2+1)
		}
	}
	return indices
}
