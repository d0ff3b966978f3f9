package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeMatchesHollowShapes(t *testing.T) {
	t.Run("pipe", func(t *testing.T) {
		pipe := Must(NewPipe(2, 1))
		c := NewComposite().
			Add(Must(NewRod(2))).
			Sub(Must(NewRod(1)))
		assert.InDelta(t, pipe.Area(), c.Area(), tol)
		assert.InDelta(t, pipe.MomentOfInertiaX(), c.MomentOfInertiaX(), tol)
		assert.InDelta(t, pipe.MomentOfInertiaY(), c.MomentOfInertiaY(), tol)
		assert.InDelta(t, pipe.PolarMomentOfInertia(), c.PolarMomentOfInertia(), tol)
	})

	t.Run("box-beam", func(t *testing.T) {
		box := Must(NewBoxBeam(3, 3, 1))
		c := NewComposite().
			Add(Must(NewRectangle(3, 3))).
			Sub(Must(NewRectangle(1, 1)))
		assert.InDelta(t, box.Area(), c.Area(), tol)
		assert.InDelta(t, box.MomentOfInertiaX(), c.MomentOfInertiaX(), tol)
		assert.InDelta(t, box.MomentOfInertiaY(), c.MomentOfInertiaY(), tol)
	})

	t.Run("i-beam", func(t *testing.T) {
		beam := Must(NewIBeam(0.5, 0.25, 0.025, 0.05))
		flange := Must(NewRectangle(0.5, 0.05))
		web := Must(NewRectangle(0.025, 0.15))
		c := NewComposite().
			Add(flange.At(Pt(0, 0.1))).
			Add(flange.At(Pt(0, -0.1))).
			Add(web)
		assert.InDelta(t, beam.Area(), c.Area(), tol)
		assert.InDelta(t, beam.MomentOfInertiaX(), c.MomentOfInertiaX(), tol)
		assert.InDelta(t, beam.MomentOfInertiaY(), c.MomentOfInertiaY(), tol)
	})
}

func TestCompositeCentroid(t *testing.T) {
	c := NewComposite().
		Add(Must(NewRectangle(1, 1)).At(Pt(1, 1))).
		Add(Must(NewRectangle(1, 1)).At(Pt(3, 2)))

	cog, err := c.Centroid()
	require.NoError(t, err)
	assert.Equal(t, Pt(2, 1.5), cog)
}

func TestHollowSquareCentroidRoundTrip(t *testing.T) {
	// Solid square minus a smaller concentric square, both away from the
	// origin: the signed weighting must land on the shared center, and
	// recentering must bring it home.
	c := NewComposite().
		Add(Must(NewRectangle(2, 2)).At(Pt(2, 1.5))).
		Sub(Must(NewRectangle(1, 1)).At(Pt(2, 1.5)))

	cog, err := c.Centroid()
	require.NoError(t, err)
	assert.Equal(t, Pt(2, 1.5), cog)

	require.NoError(t, c.Recenter())
	cog, err = c.Centroid()
	require.NoError(t, err)
	assert.Equal(t, Pt(0, 0), cog)
}

func TestCompositeCentroidWeighting(t *testing.T) {
	// A void pulls the centroid away from itself.
	c := NewComposite().
		Add(Must(NewRectangle(4, 2))).
		Sub(Must(NewRod(0.5)).At(Pt(1, 0)))

	cog, err := c.Centroid()
	require.NoError(t, err)
	assert.Less(t, cog.X, 0.0)
	assert.InDelta(t, 0.0, cog.Y, tol)

	holeArea := math.Pi * 0.25
	wantX := (8*0 - holeArea*1) / (8 - holeArea)
	assert.InDelta(t, wantX, cog.X, tol)
}

func TestRecenter(t *testing.T) {
	c := NewComposite().
		Add(Must(NewRectangle(1, 1)).At(Pt(1, 1))).
		Add(Must(NewRectangle(1, 1)).At(Pt(3, 2)))

	require.NoError(t, c.Recenter())

	members := c.Members()
	require.Len(t, members, 2)
	assert.Equal(t, Pt(-1, -0.5), members[0].Shape.Centroid())
	assert.Equal(t, Pt(1, 0.5), members[1].Shape.Centroid())

	cog, err := c.Centroid()
	require.NoError(t, err)
	assert.Equal(t, Pt(0, 0), cog)

	// Recentering an already centered assembly is a no-op.
	require.NoError(t, c.Recenter())
	again := c.Members()
	assert.Equal(t, members[0].Shape.Centroid(), again[0].Shape.Centroid())
	assert.Equal(t, members[1].Shape.Centroid(), again[1].Shape.Centroid())
}

func TestRecenterMakesMomentsCentroidal(t *testing.T) {
	c := NewComposite().
		Add(Must(NewRectangle(2, 1)).At(Pt(0, 0.5))).
		Add(Must(NewRectangle(1, 2)).At(Pt(0, 2)))
	require.NoError(t, c.Recenter())

	// With the centroid on the origin, shifting the whole assembly must obey
	// the parallel axis theorem against the recentered values.
	base := c.MomentOfInertiaX()
	shifted := NewComposite()
	for _, m := range c.Members() {
		s := m.Shape
		s.SetCentroid(s.Centroid().Add(Pt(0, 2)))
		shifted.Add(s)
	}
	assert.InDelta(t, base+c.Area()*4, shifted.MomentOfInertiaX(), tol)
}

func TestDegenerateComposite(t *testing.T) {
	square := Must(NewRectangle(2, 2))

	t.Run("cancelled members", func(t *testing.T) {
		c := NewComposite().Add(square).Sub(square)
		assert.Equal(t, 0.0, c.Area())
		_, err := c.Centroid()
		require.ErrorIs(t, err, ErrDegenerateComposite)
	})

	t.Run("empty composite", func(t *testing.T) {
		c := NewComposite()
		assert.Equal(t, 0.0, c.Area())
		assert.Equal(t, 0.0, c.PolarMomentOfInertia())
		_, err := c.Centroid()
		require.ErrorIs(t, err, ErrDegenerateComposite)
	})

	t.Run("recenter leaves members untouched", func(t *testing.T) {
		c := NewComposite().
			Add(square.At(Pt(5, 5))).
			Sub(square.At(Pt(-5, -5)))
		err := c.Recenter()
		require.ErrorIs(t, err, ErrDegenerateComposite)
		members := c.Members()
		assert.Equal(t, Pt(5, 5), members[0].Shape.Centroid())
		assert.Equal(t, Pt(-5, -5), members[1].Shape.Centroid())
	})
}

func TestCompositeOrderIndependence(t *testing.T) {
	a := Must(NewRectangle(0.3, 0.5)).At(Pt(0, 0.25))
	b := Must(NewRod(0.2)).At(Pt(0.5, 0))
	hole := Must(NewRod(0.05)).At(Pt(0, 0.4))

	c1 := NewComposite().Add(a).Add(b).Sub(hole)
	c2 := NewComposite().Sub(hole).Add(b).Add(a)

	assert.InDelta(t, c1.Area(), c2.Area(), tol)
	assert.InDelta(t, c1.MomentOfInertiaX(), c2.MomentOfInertiaX(), tol)
	assert.InDelta(t, c1.MomentOfInertiaY(), c2.MomentOfInertiaY(), tol)

	cog1, err := c1.Centroid()
	require.NoError(t, err)
	cog2, err := c2.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, cog1.X, cog2.X, tol)
	assert.InDelta(t, cog1.Y, cog2.Y, tol)
}

func TestCompositeOwnsItsMembers(t *testing.T) {
	s := Must(NewRectangle(1, 1))
	c := NewComposite().Add(s)

	// Mutating the caller's shape after Add must not reach the composite.
	s.SetCentroid(Pt(100, 100))
	cog, err := c.Centroid()
	require.NoError(t, err)
	assert.Equal(t, Pt(0, 0), cog)

	// Mutating the returned member list must not either.
	members := c.Members()
	members[0].Shape.SetCentroid(Pt(-7, 0))
	cog, err = c.Centroid()
	require.NoError(t, err)
	assert.Equal(t, Pt(0, 0), cog)
}

func TestCompositeBoundsAndContains(t *testing.T) {
	c := NewComposite().
		Add(Must(NewRectangle(2, 2)).At(Pt(0, 1))).
		Add(Must(NewRectangle(2, 2)).At(Pt(0, 3))).
		Sub(Must(NewRod(0.5)).At(Pt(0, 1)))

	lo, hi := c.Bounds()
	assert.Equal(t, Pt(-1, 0), lo)
	assert.Equal(t, Pt(1, 4), hi)

	assert.True(t, c.Contains(Pt(0, 0.3)))
	assert.True(t, c.Contains(Pt(0, 3)))
	assert.False(t, c.Contains(Pt(0, 1)), "drilled hole is void")
	assert.False(t, c.Contains(Pt(0, 4.5)))
}

func TestCompositeLen(t *testing.T) {
	c := NewComposite()
	assert.Equal(t, 0, c.Len())
	c.Add(Must(NewRod(1))).Sub(Must(NewRod(0.5)))
	assert.Equal(t, 2, c.Len())
}
