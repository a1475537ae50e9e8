package catmull

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
)

// ArcLengthTable holds cumulative chord lengths along a control polygon.
// Entry 0 is 0, entry i is the distance from point 0 to point i along the
// polygon, and the final entry is the total length. For closed polygons the
// total includes the segment from the last point back to the first one.
//
// Entries are non-decreasing. Segments of zero length are never reported by
// Locate.
type ArcLengthTable struct {
	dist   []float64
	starts *treemap.Map // segment start distance → segment index
	closed bool
}

// NewArcLengthTable measures the control polygon through points.
func NewArcLengthTable(points []vec3.T, closed bool) *ArcLengthTable {
	n := len(points)
	var chords []float64
	if n > 0 {
		chords = make([]float64, 0, n)
		for i := 1; i < n; i++ {
			chords = append(chords, vec3.Distance(&points[i-1], &points[i]))
		}
		if closed {
			chords = append(chords, vec3.Distance(&points[n-1], &points[0]))
		}
	}
	dist := make([]float64, len(chords)+1)
	floats.CumSum(dist[1:], chords)
	starts := treemap.NewWith(utils.Float64Comparator)
	for j := 0; j < len(chords); j++ {
		// a later segment with equal start overwrites a zero-length predecessor
		starts.Put(dist[j], j)
	}
	return &ArcLengthTable{dist: dist, starts: starts, closed: closed}
}

// Len returns the number of entries, i.e. the number of segments plus one.
func (tab *ArcLengthTable) Len() int {
	return len(tab.dist)
}

// At returns entry i of the table.
func (tab *ArcLengthTable) At(i int) float64 {
	return tab.dist[i]
}

// Total returns the length of the control polygon.
func (tab *ArcLengthTable) Total() float64 {
	return tab.dist[len(tab.dist)-1]
}

// Closed is a predicate: does the table include the closing segment?
func (tab *ArcLengthTable) Closed() bool {
	return tab.closed
}

// Locate finds the segment j with At(j) ≤ d < At(j+1) and the local
// parameter t of d within this segment. It is equivalent to a linear scan
// from the start of the table.
func (tab *ArcLengthTable) Locate(d float64) (int, float64, error) {
	if d < 0 || math.IsNaN(d) {
		return -1, 0, fmt.Errorf("%w: invalid distance %g", ErrNoSample, d)
	}
	key, value := tab.starts.Floor(d)
	if key == nil {
		return -1, 0, fmt.Errorf("%w: %g", ErrNoSample, d)
	}
	j := value.(int)
	if d >= tab.dist[j+1] {
		return -1, 0, fmt.Errorf("%w: %g beyond length %g", ErrNoSample, d, tab.Total())
	}
	t := (d - tab.dist[j]) / (tab.dist[j+1] - tab.dist[j])
	return j, t, nil
}
