package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolygonValidation(t *testing.T) {
	_, err := NewPolygon([]Point{Pt(0, 0), Pt(1, 0)})
	require.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = NewPolygon([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)})
	require.ErrorIs(t, err, ErrInvalidGeometry, "collinear vertices enclose no area")
}

func TestPolygonMatchesRectangle(t *testing.T) {
	// A 2x2 square given counterclockwise, deliberately off-center: the
	// constructor must re-express it about its centroid.
	poly, err := NewPolygon([]Point{Pt(4, 7), Pt(6, 7), Pt(6, 9), Pt(4, 9)})
	require.NoError(t, err)

	rect := Must(NewRectangle(2, 2))
	assert.InDelta(t, rect.Area(), poly.Area(), tol)
	assert.InDelta(t, rect.MomentOfInertiaX(), poly.CentroidalMomentOfInertiaX(), tol)
	assert.InDelta(t, rect.MomentOfInertiaY(), poly.CentroidalMomentOfInertiaY(), tol)

	lo, hi := poly.Bounds()
	assert.Equal(t, Pt(-1, -1), lo)
	assert.Equal(t, Pt(1, 1), hi)
}

func TestPolygonWindingInsensitive(t *testing.T) {
	ccw, err := NewPolygon([]Point{Pt(0, 0), Pt(3, 0), Pt(3, 1), Pt(0, 1)})
	require.NoError(t, err)
	cw, err := NewPolygon([]Point{Pt(0, 0), Pt(0, 1), Pt(3, 1), Pt(3, 0)})
	require.NoError(t, err)

	assert.InDelta(t, ccw.Area(), cw.Area(), tol)
	assert.InDelta(t, ccw.CentroidalMomentOfInertiaX(), cw.CentroidalMomentOfInertiaX(), tol)
	assert.InDelta(t, ccw.CentroidalMomentOfInertiaY(), cw.CentroidalMomentOfInertiaY(), tol)
}

func TestPolygonTriangle(t *testing.T) {
	// Right triangle with legs 6 and 3: area b*h/2, centroidal moments
	// b*h^3/36 and h*b^3/36.
	tri, err := NewPolygon([]Point{Pt(0, 0), Pt(6, 0), Pt(0, 3)})
	require.NoError(t, err)

	assert.InDelta(t, 9.0, tri.Area(), tol)
	assert.InDelta(t, 6.0*27.0/36.0, tri.CentroidalMomentOfInertiaX(), tol)
	assert.InDelta(t, 3.0*216.0/36.0, tri.CentroidalMomentOfInertiaY(), tol)

	// Centroid sits a third of the way up each leg, so after centering the
	// right-angle corner lands at (-2, -1).
	lo, hi := tri.Bounds()
	assert.InDelta(t, -2.0, lo.X, tol)
	assert.InDelta(t, -1.0, lo.Y, tol)
	assert.InDelta(t, 4.0, hi.X, tol)
	assert.InDelta(t, 2.0, hi.Y, tol)
}

func TestPolygonLSection(t *testing.T) {
	// An L expressed two ways: as one polygon outline and as two stacked
	// rectangles. Both routes must land on the same centroid and the same
	// centroidal moments.
	poly, err := NewPolygon([]Point{
		Pt(0, 0), Pt(4, 0), Pt(4, 1), Pt(1, 1), Pt(1, 4), Pt(0, 4),
	})
	require.NoError(t, err)

	c := NewComposite().
		Add(Must(NewRectangle(4, 1)).At(Pt(2, 0.5))).
		Add(Must(NewRectangle(1, 3)).At(Pt(0.5, 2.5)))

	assert.InDelta(t, c.Area(), poly.Area(), tol)

	cog, err := c.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, 19.0/14.0, cog.X, tol)
	assert.InDelta(t, 19.0/14.0, cog.Y, tol)

	require.NoError(t, c.Recenter())
	assert.InDelta(t, c.MomentOfInertiaX(), poly.CentroidalMomentOfInertiaX(), tol)
	assert.InDelta(t, c.MomentOfInertiaY(), poly.CentroidalMomentOfInertiaY(), tol)
}

func TestPolygonContains(t *testing.T) {
	tri, err := NewPolygon([]Point{Pt(0, 0), Pt(6, 0), Pt(0, 3)})
	require.NoError(t, err)

	assert.True(t, tri.Contains(Pt(0, 0)), "centroid is inside")
	assert.True(t, tri.Contains(Pt(-1.5, -0.5)))
	assert.False(t, tri.Contains(Pt(3, 1.5)), "beyond the hypotenuse")
	assert.False(t, tri.Contains(Pt(-3, 0)))
}

func TestPolygonVerticesCopied(t *testing.T) {
	poly, err := NewPolygon([]Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)})
	require.NoError(t, err)

	verts := poly.Vertices()
	require.Len(t, verts, 4)
	verts[0] = Pt(99, 99)
	assert.Equal(t, Pt(-1, -1), poly.Vertices()[0])
}

func TestCustomShapeWrapping(t *testing.T) {
	poly, err := NewPolygon([]Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)})
	require.NoError(t, err)

	s, err := NewCustom(poly)
	require.NoError(t, err)
	assert.Equal(t, KindCustom, s.Kind)
	assert.Equal(t, "polygon(4 vertices)", s.String())

	rect := Must(NewRectangle(2, 2))
	assert.InDelta(t, rect.Area(), s.Area(), tol)
	assert.InDelta(t, rect.MomentOfInertiaX(), s.MomentOfInertiaX(), tol)
	assert.InDelta(t, rect.MomentOfInertiaY(), s.MomentOfInertiaY(), tol)

	// Placement applies the parallel axis term and shifts bounds and the
	// containment frame along with the shape.
	placed := s.At(Pt(0, 2))
	assert.InDelta(t, rect.MomentOfInertiaX()+4*4, placed.MomentOfInertiaX(), tol)
	lo, hi := placed.Bounds()
	assert.Equal(t, Pt(-1, 1), lo)
	assert.Equal(t, Pt(1, 3), hi)
	assert.True(t, placed.Contains(Pt(0, 2)))
	assert.False(t, placed.Contains(Pt(0, 0)))
}

func TestCustomShapeInComposite(t *testing.T) {
	tri, err := NewPolygon([]Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)})
	require.NoError(t, err)
	gusset, err := NewCustom(tri)
	require.NoError(t, err)

	c := NewComposite().
		Add(Must(NewRectangle(4, 1)).At(Pt(0, -0.5))).
		Add(gusset.At(Pt(0, 2)))

	assert.InDelta(t, 4.0+8.0, c.Area(), tol)

	cog, err := c.Centroid()
	require.NoError(t, err)
	wantY := (4*(-0.5) + 8*2.0) / 12.0
	assert.InDelta(t, wantY, cog.Y, tol)

	require.NoError(t, c.Recenter())
	cog, err = c.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cog.X, tol)
	assert.InDelta(t, 0.0, cog.Y, tol)
}

type flatShape struct{}

func (flatShape) Area() float64                       { return 0 }
func (flatShape) CentroidalMomentOfInertiaX() float64 { return 0 }
func (flatShape) CentroidalMomentOfInertiaY() float64 { return 0 }
func (flatShape) Bounds() (Point, Point)              { return Point{}, Point{} }
func (flatShape) Contains(Point) bool                 { return false }

func TestCustomShapeMustHaveArea(t *testing.T) {
	_, err := NewCustom(flatShape{})
	require.ErrorIs(t, err, ErrInvalidGeometry)
}
