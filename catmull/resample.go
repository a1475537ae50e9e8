package catmull

import (
	"fmt"
	"math"

	"github.com/npillmayer/tubular"
	"github.com/ungerik/go3d/float64/vec3"
)

// Resampler samples a closed Catmull-Rom curve by distance along its
// control polygon. Optionally it carries up-vectors, one per control
// point, which are interpolated with the same spline weights as the points.
//
// A Resampler is not safe for concurrent use.
type Resampler struct {
	points []vec3.T
	ups    []vec3.T // nil, or one per point
	table  *ArcLengthTable
}

// NewResampler creates a resampler for a closed curve through points.
// ups is optional. If its length differs from the number of points,
// up-vectors are ignored.
func NewResampler(points, ups []vec3.T) (*Resampler, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need 2, have %d", ErrInsufficientPoints, len(points))
	}
	r := &Resampler{points: points}
	if len(ups) == len(points) {
		r.ups = ups
	} else if len(ups) > 0 {
		tracer().Infof("ignoring %d up-vectors for %d control points", len(ups), len(points))
	}
	r.table = NewArcLengthTable(points, true)
	return r, nil
}

// Table returns the arc length table of the control polygon.
func (r *Resampler) Table() *ArcLengthTable {
	return r.table
}

// HasUpVectors is a predicate: does r interpolate up-vectors?
func (r *Resampler) HasUpVectors() bool {
	return r.ups != nil
}

// Sample returns the curve point at distance d along the control polygon,
// and the interpolated unit up-vector if r carries up-vectors. Distances
// beyond the total length wrap around the loop. Negative distances and
// curves of zero length have no samples and result in ErrNoSample.
func (r *Resampler) Sample(d float64) (p vec3.T, up vec3.T, err error) {
	if d < 0 {
		return p, up, fmt.Errorf("%w: negative distance %g", ErrNoSample, d)
	}
	total := r.table.Total()
	if total == 0 {
		return p, up, fmt.Errorf("%w: curve has zero length", ErrNoSample)
	}
	length := math.Mod(d, total)
	if length < 0 || length >= total {
		length = 0
	}
	j, t, err := r.table.Locate(length)
	if err != nil {
		return p, up, err
	}
	n := len(r.points)
	i0, i1, i2, i3 := window(j, n)
	p = Eval(r.points[i0], r.points[i1], r.points[i2], r.points[i3], t)
	if r.ups != nil {
		up = tubular.Unit(Eval(r.ups[i0], r.ups[i1], r.ups[i2], r.ups[i3], t))
	}
	return p, up, nil
}

// pass spreads m samples evenly over the control polygon. Distances
// without a sample are skipped.
func (r *Resampler) pass(m int) (points, ups []vec3.T) {
	spacing := r.table.Total() / float64(m)
	points = make([]vec3.T, 0, m)
	if r.ups != nil {
		ups = make([]vec3.T, 0, m)
	}
	for k := 0; k < m; k++ {
		p, up, err := r.Sample(float64(k) * spacing)
		if err != nil {
			tracer().Debugf("sample %d skipped: %v", k, err)
			continue
		}
		points = append(points, p)
		if r.ups != nil {
			ups = append(ups, up)
		}
	}
	return
}

// Resample produces m centerline points, spaced approximately equally by
// arc length along the curve, and the corresponding up-vectors (nil if r
// carries none).
//
// The first pass samples by distance along the control polygon. Its output
// then serves as the control polygon of a second pass, which corrects the
// spacing.
func (r *Resampler) Resample(m int) (centerline, ups []vec3.T, err error) {
	if m < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidSampleCount, m)
	}
	centerline, ups = r.pass(m)
	if len(centerline) == 0 {
		return nil, nil, fmt.Errorf("%w: curve has zero length", ErrNoSample)
	}
	if len(centerline) < 2 {
		return centerline, ups, nil
	}
	refine, err := NewResampler(centerline, ups)
	if err != nil {
		return nil, nil, err
	}
	centerline, ups = refine.pass(m)
	tracer().Infof("resampled %d control points to %d centerline points", len(r.points), len(centerline))
	return centerline, ups, nil
}

// Resample is a shortcut for creating a Resampler and resampling to m
// points. ups may be nil.
func Resample(points, ups []vec3.T, m int) ([]vec3.T, []vec3.T, error) {
	r, err := NewResampler(points, ups)
	if err != nil {
		return nil, nil, err
	}
	return r.Resample(m)
}
