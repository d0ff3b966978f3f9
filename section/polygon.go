package section

import (
	"fmt"
	"math"
)

// CustomShape is the contract a user-defined section must satisfy to ride in
// a Shape of KindCustom. The geometry is described in a local frame whose
// origin is the shape's own centroid; the wrapping Shape then places that
// frame in the shared reference frame through its center of gravity. All
// methods must be pure: shapes are copied by value and queried concurrently.
type CustomShape interface {
	// Area returns the cross-sectional area, which must be positive.
	Area() float64
	// CentroidalMomentOfInertiaX returns the second moment of area about
	// the horizontal axis through the centroid.
	CentroidalMomentOfInertiaX() float64
	// CentroidalMomentOfInertiaY returns the second moment of area about
	// the vertical axis through the centroid.
	CentroidalMomentOfInertiaY() float64
	// Bounds returns the axis-aligned extent in the local frame.
	Bounds() (lo, hi Point)
	// Contains reports whether a local-frame point lies in the material.
	Contains(p Point) bool
}

// Polygon is a simple closed polygon usable as a custom section. The
// constructor re-expresses the vertices about the polygon's own centroid, so
// its local origin is the centroid no matter what frame the input came in.
// A Polygon is immutable after construction.
type Polygon struct {
	vertices []Point
	area     float64
}

// NewPolygon builds a polygon from at least three vertices given in boundary
// order, either winding. The outline must not self-intersect; that is not
// detected, but a zero enclosed area is rejected.
func NewPolygon(vertices []Point) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, fmt.Errorf("%w: polygon: need at least 3 vertices, got %d",
			ErrInvalidGeometry, len(vertices))
	}
	signedArea, cx, cy := shoelace(vertices)
	if signedArea == 0 {
		return Polygon{}, fmt.Errorf("%w: polygon: vertices enclose no area", ErrInvalidGeometry)
	}

	// Shift the loop so the shoelace centroid lands on the local origin.
	centered := make([]Point, len(vertices))
	for i, v := range vertices {
		centered[i] = Point{X: v.X - cx, Y: v.Y - cy}
	}
	return Polygon{vertices: centered, area: math.Abs(signedArea)}, nil
}

// shoelace returns the signed area and centroid of a vertex loop. The sign
// follows the winding direction.
func shoelace(vertices []Point) (signedArea, cx, cy float64) {
	n := len(vertices)
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
		signedArea += cross
		sumX += (vertices[i].X + vertices[j].X) * cross
		sumY += (vertices[i].Y + vertices[j].Y) * cross
	}

	signedArea /= 2
	if signedArea != 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}
	return signedArea, cx, cy
}

// Vertices returns a copy of the centroid-centered vertex loop.
func (p Polygon) Vertices() []Point {
	out := make([]Point, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Area returns the enclosed area.
func (p Polygon) Area() float64 {
	return p.area
}

// CentroidalMomentOfInertiaX returns the second moment about the horizontal
// centroidal axis, from the cross-product sum over the edges.
func (p Polygon) CentroidalMomentOfInertiaX() float64 {
	n := len(p.vertices)
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.vertices[i], p.vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		sum += cross * (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y)
	}
	return math.Abs(sum) / 12
}

// CentroidalMomentOfInertiaY returns the second moment about the vertical
// centroidal axis.
func (p Polygon) CentroidalMomentOfInertiaY() float64 {
	n := len(p.vertices)
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.vertices[i], p.vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		sum += cross * (vi.X*vi.X + vi.X*vj.X + vj.X*vj.X)
	}
	return math.Abs(sum) / 12
}

// Bounds returns the axis-aligned extent of the vertex loop in the local
// frame.
func (p Polygon) Bounds() (lo, hi Point) {
	lo = p.vertices[0]
	hi = p.vertices[0]
	for _, v := range p.vertices {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi
}

// Contains reports whether q lies inside the outline, by walking the edges
// that cross q's horizontal line and counting crossings to its right.
func (p Polygon) Contains(q Point) bool {
	inside := false
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		v1, v2 := p.vertices[i], p.vertices[j]
		if (v1.Y <= q.Y && v2.Y > q.Y) || (v2.Y <= q.Y && v1.Y > q.Y) {
			t := (q.Y - v1.Y) / (v2.Y - v1.Y)
			if q.X < v1.X+t*(v2.X-v1.X) {
				inside = !inside
			}
		}
	}
	return inside
}

func (p Polygon) String() string {
	return fmt.Sprintf("polygon(%d vertices)", len(p.vertices))
}
