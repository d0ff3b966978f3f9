package section

import (
	"fmt"
	"math"
)

// Member is one signed constituent of a composite: a shape together with
// whether it contributes material or carves it away.
type Member struct {
	// Sign is +1 for added material and -1 for a subtracted void.
	Sign  float64
	Shape Shape
}

// Composite is a cross-section assembled by signed superposition: material is
// built up with Add and carved away with Sub. Area and the moments of inertia
// aggregate over the signed members, each member contributing about the
// shared frame from wherever its centroid sits.
//
// Members are stored by value in insertion order; a composite owns its copies
// and later changes to the caller's shapes do not leak in. A composite is
// safe for concurrent property queries once assembly is done, but Add, Sub,
// and Recenter must not race with readers.
type Composite struct {
	members []Member
}

// NewComposite creates an empty composite. With no members every property is
// zero and the centroid is undefined.
func NewComposite() *Composite {
	return &Composite{}
}

// Add appends s as positive material and returns the composite for chaining.
func (c *Composite) Add(s Shape) *Composite {
	c.members = append(c.members, Member{Sign: 1, Shape: s})
	return c
}

// Sub appends s as a subtracted void and returns the composite for chaining.
// Subtracted regions are assumed to lie within previously added material;
// nothing enforces overlap.
func (c *Composite) Sub(s Shape) *Composite {
	c.members = append(c.members, Member{Sign: -1, Shape: s})
	return c
}

// Len returns the number of members.
func (c *Composite) Len() int {
	return len(c.members)
}

// Members returns a copy of the member list in insertion order.
func (c *Composite) Members() []Member {
	out := make([]Member, len(c.members))
	copy(out, c.members)
	return out
}

// Area returns the signed sum of the member areas. It can be negative if
// more material is subtracted than added.
func (c *Composite) Area() float64 {
	var a float64
	for _, m := range c.members {
		a += m.Sign * m.Shape.Area()
	}
	return a
}

// MomentOfInertiaX returns the signed sum of the member moments about the
// frame's x-axis, each member carrying its own parallel-axis term.
func (c *Composite) MomentOfInertiaX() float64 {
	var moi float64
	for _, m := range c.members {
		moi += m.Sign * m.Shape.MomentOfInertiaX()
	}
	return moi
}

// MomentOfInertiaY returns the signed sum of the member moments about the
// frame's y-axis.
func (c *Composite) MomentOfInertiaY() float64 {
	var moi float64
	for _, m := range c.members {
		moi += m.Sign * m.Shape.MomentOfInertiaY()
	}
	return moi
}

// PolarMomentOfInertia returns the polar second moment about the frame
// origin, the sum of the two in-plane moments.
func (c *Composite) PolarMomentOfInertia() float64 {
	return c.MomentOfInertiaX() + c.MomentOfInertiaY()
}

// Centroid returns the signed-area-weighted centroid of the assembly. It
// fails with ErrDegenerateComposite when the net area is exactly zero, since
// dividing the weighted sum by it is meaningless.
func (c *Composite) Centroid() (Point, error) {
	area := c.Area()
	if area == 0 {
		return Point{}, fmt.Errorf("%w (%d members)", ErrDegenerateComposite, len(c.members))
	}
	var sx, sy float64
	for _, m := range c.members {
		a := m.Sign * m.Shape.Area()
		sx += a * m.Shape.cg.X
		sy += a * m.Shape.cg.Y
	}
	return Point{X: sx / area, Y: sy / area}, nil
}

// Recenter translates every member so the composite's centroid lands on the
// frame origin, re-expressing the assembly about its own neutral axes. Only
// the direct members move; it mutates the composite in place and is
// idempotent once centered. It fails with ErrDegenerateComposite when the
// centroid is undefined, leaving the members untouched.
func (c *Composite) Recenter() error {
	cog, err := c.Centroid()
	if err != nil {
		return err
	}
	for i := range c.members {
		c.members[i].Shape.cg = c.members[i].Shape.cg.Sub(cog)
	}
	return nil
}

// Bounds returns the axis-aligned extent of the added material. Voids do not
// extend it. An empty composite collapses to the origin.
func (c *Composite) Bounds() (lo, hi Point) {
	first := true
	for _, m := range c.members {
		if m.Sign < 0 {
			continue
		}
		mlo, mhi := m.Shape.Bounds()
		if first {
			lo, hi = mlo, mhi
			first = false
			continue
		}
		lo = Point{X: math.Min(lo.X, mlo.X), Y: math.Min(lo.Y, mlo.Y)}
		hi = Point{X: math.Max(hi.X, mhi.X), Y: math.Max(hi.Y, mhi.Y)}
	}
	return lo, hi
}

// Contains reports whether p lies in net material: covered by more added
// members than subtracted ones.
func (c *Composite) Contains(p Point) bool {
	var depth int
	for _, m := range c.members {
		if !m.Shape.Contains(p) {
			continue
		}
		if m.Sign > 0 {
			depth++
		} else {
			depth--
		}
	}
	return depth > 0
}

// transposed returns a copy with every member rotated a quarter turn about
// the frame origin. Only shape decompositions use it, so the members are
// guaranteed to be rods and rectangles, which transpose exactly.
func (c *Composite) transposed() *Composite {
	t := &Composite{members: make([]Member, len(c.members))}
	for i, m := range c.members {
		t.members[i] = Member{Sign: m.Sign, Shape: m.Shape.transposed()}
	}
	return t
}
