package mesh

import (
	"fmt"
	"math"

	"github.com/npillmayer/tubular"
	"github.com/ungerik/go3d/float64/vec3"
)

// Torus creates a torus around the Z-axis. radius is the distance from the
// center to the middle of the tube, csRadius the radius of the tube's cross
// section. The ring around the Z-axis is divided into sides steps, the cross
// section into csSides steps.
//
// Vertices are stored as csSides+1 rows of sides+1 vertices. Indices form a
// single triangle strip; rows are separated by degenerate triangles.
func Torus(sides, csSides int, radius, csRadius float64) (*Buffer, error) {
	if sides < 3 || csSides < 3 {
		return nil, fmt.Errorf("%w: torus sides %d, cross-section sides %d", ErrInvalidParameter, sides, csSides)
	}
	if radius <= 0 || csRadius <= 0 {
		return nil, fmt.Errorf("%w: torus radii %g, %g", ErrInvalidParameter, radius, csRadius)
	}
	nextrow := sides + 1
	b := &Buffer{
		Vertices: make([]Vertex, 0, nextrow*(csSides+1)),
		Indices:  make([]uint32, 0, (2*sides+4)*csSides),
		Topology: TriangleStrip,
	}
	for j := 0; j <= csSides; j++ {
		phi := 2 * math.Pi * float64(j) / float64(csSides)
		r := radius + csRadius*math.Cos(phi)
		z := csRadius * math.Sin(phi)
		v := math.Abs(2*float64(j)/float64(csSides) - 1)
		for i := 0; i <= sides; i++ {
			theta := 2 * math.Pi * float64(i) / float64(sides)
			cos, sin := math.Cos(theta), math.Sin(theta)
			pos := vec3.T{r * cos, r * sin, z}
			center := vec3.T{radius * cos, radius * sin, 0}
			b.Vertices = append(b.Vertices, Vertex{
				Position: pos,
				Normal:   tubular.Unit(vec3.Sub(&pos, &center)),
				UV:       tubular.P(float64(i)/float64(sides), v),
			})
		}
	}
	for i := 0; i < csSides; i++ {
		j := 0
		for ; j < sides; j++ {
			b.Indices = append(b.Indices, uint32((i+1)*nextrow+j), uint32(i*nextrow+j))
		}
		// degenerate triangle, so the next row starts a fresh strip
		dummy := uint32(i*nextrow + j)
		next := dummy + uint32(nextrow)
		b.Indices = append(b.Indices, next, dummy, next, next)
	}
	tracer().Infof("torus: %d vertices, %d indices", len(b.Vertices), len(b.Indices))
	return b, nil
}
