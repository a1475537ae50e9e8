package mesh

import (
	"fmt"

	"github.com/npillmayer/tubular"
	"github.com/npillmayer/tubular/pipe"
)

// PipeStrip creates the surface of a swept pipe as a triangle strip. For
// each pair of consecutive contours, vertices alternate between the later
// and the earlier contour. Pairs involving an invalid contour are left out.
//
// Texture coordinate u runs around the contour, v along the path.
func PipeStrip(p *pipe.Pipe) (*Buffer, error) {
	if p == nil || p.ContourCount() < 2 {
		return nil, fmt.Errorf("%w: pipe strip needs 2 contours", ErrInvalidParameter)
	}
	count := p.ContourCount()
	contours, normals := p.Contours(), p.Normals()
	b := &Buffer{Topology: TriangleStrip}
	skipped := 0
	for i := 0; i < count-1; i++ {
		if !p.IsValid(i) || !p.IsValid(i+1) {
			skipped++
			continue
		}
		c1, c2 := contours[i], contours[i+1]
		n1, n2 := normals[i], normals[i+1]
		v1 := float64(i) / float64(count-1)
		v2 := float64(i+1) / float64(count-1)
		for j := range c2 {
			u := float64(j) / float64(len(c2))
			b.Vertices = append(b.Vertices,
				Vertex{Position: c2[j], Normal: n2[j], UV: tubular.P(u, v2)},
				Vertex{Position: c1[j], Normal: n1[j], UV: tubular.P(u, v1)},
			)
		}
	}
	if skipped > 0 {
		tracer().Errorf("pipe strip: skipped %d of %d contour pairs with invalid vertices", skipped, count-1)
	}
	if len(b.Vertices) == 0 {
		return nil, fmt.Errorf("%w: pipe has no valid contour pair", ErrInvalidParameter)
	}
	return b, nil
}
