package section

import "math"

// Area returns the cross-sectional area. Hollow shapes report the material
// area: the enclosing outline minus the void.
func (s Shape) Area() float64 {
	switch s.Kind {
	case KindRod:
		return math.Pi * s.Radius * s.Radius
	case KindPipe:
		inner := s.OuterRadius - s.Thickness
		return math.Pi * (s.OuterRadius*s.OuterRadius - inner*inner)
	case KindRectangle:
		return s.Width * s.Height
	case KindBoxBeam:
		return s.Width*s.Height - (s.Width-2*s.Thickness)*(s.Height-2*s.Thickness)
	case KindIBeam:
		return s.Width*s.Height - (s.Width-s.WebThickness)*(s.Height-2*s.FlangeThickness)
	case KindCustom:
		return s.Custom.Area()
	}
	return 0
}

// MomentOfInertiaX returns the second moment of area about the reference
// frame's x-axis. The stored centroid supplies the parallel-axis term, so a
// shape away from the origin reports its moment about the frame axis, not
// about its own centroid. Hollow and compound kinds are evaluated through
// their signed decomposition into solid primitives.
func (s Shape) MomentOfInertiaX() float64 {
	switch s.Kind {
	case KindRod:
		return math.Pi*math.Pow(s.Radius, 4)/4 + s.Area()*s.cg.Y*s.cg.Y
	case KindRectangle:
		return s.Width*math.Pow(s.Height, 3)/12 + s.Area()*s.cg.Y*s.cg.Y
	case KindCustom:
		return s.Custom.CentroidalMomentOfInertiaX() + s.Area()*s.cg.Y*s.cg.Y
	default:
		return s.decompose().MomentOfInertiaX()
	}
}

// MomentOfInertiaY returns the second moment of area about the reference
// frame's y-axis, including the parallel-axis term from the stored centroid.
// It is evaluated by rotating the section a quarter turn and reusing the
// x-axis computation, which keeps the two axes from ever disagreeing.
func (s Shape) MomentOfInertiaY() float64 {
	switch s.Kind {
	case KindRod, KindRectangle:
		return s.transposed().MomentOfInertiaX()
	case KindCustom:
		return s.Custom.CentroidalMomentOfInertiaY() + s.Area()*s.cg.X*s.cg.X
	default:
		return s.decompose().transposed().MomentOfInertiaX()
	}
}

// PolarMomentOfInertia returns the polar second moment about the axis through
// the frame origin, perpendicular to the section plane. By the perpendicular
// axis theorem it is the sum of the two in-plane moments.
func (s Shape) PolarMomentOfInertia() float64 {
	return s.MomentOfInertiaX() + s.MomentOfInertiaY()
}

// MomentOfInertiaXAbout returns the second moment about an axis parallel to
// x at distance d from the shape's own centroid, per the parallel axis
// theorem: the centroidal moment plus area times d squared.
func (s Shape) MomentOfInertiaXAbout(d float64) float64 {
	centered := s
	centered.cg = Point{}
	return centered.MomentOfInertiaX() + s.Area()*d*d
}

// MomentOfInertiaYAbout returns the second moment about an axis parallel to
// y at distance d from the shape's own centroid.
func (s Shape) MomentOfInertiaYAbout(d float64) float64 {
	centered := s
	centered.cg = Point{}
	return centered.MomentOfInertiaY() + s.Area()*d*d
}

// decompose expresses a hollow or compound shape as a signed sum of solid
// primitives sharing its placement. The decomposition is the single source of
// the hollow-section formulas: pipe, box-beam, and i-beam inertias all flow
// through it instead of through separate closed forms. Inner primitives are
// built as literals because a degenerate shape may carry a zero-sized void
// the constructors would reject.
func (s Shape) decompose() *Composite {
	c := NewComposite()
	switch s.Kind {
	case KindPipe:
		c.Add(Shape{Kind: KindRod, Radius: s.OuterRadius, cg: s.cg})
		c.Sub(Shape{Kind: KindRod, Radius: s.OuterRadius - s.Thickness, cg: s.cg})
	case KindBoxBeam:
		c.Add(Shape{Kind: KindRectangle, Width: s.Width, Height: s.Height, cg: s.cg})
		c.Sub(Shape{
			Kind:   KindRectangle,
			Width:  s.Width - 2*s.Thickness,
			Height: s.Height - 2*s.Thickness,
			cg:     s.cg,
		})
	case KindIBeam:
		// Full rectangle minus the two notches beside the web. Each notch
		// spans from the web face to the flange tip, so its center sits a
		// quarter of (width + web) out from the section centroid.
		notchW := (s.Width - s.WebThickness) / 2
		notchH := s.Height - 2*s.FlangeThickness
		dx := (s.Width + s.WebThickness) / 4
		c.Add(Shape{Kind: KindRectangle, Width: s.Width, Height: s.Height, cg: s.cg})
		c.Sub(Shape{
			Kind:   KindRectangle,
			Width:  notchW,
			Height: notchH,
			cg:     Point{X: s.cg.X - dx, Y: s.cg.Y},
		})
		c.Sub(Shape{
			Kind:   KindRectangle,
			Width:  notchW,
			Height: notchH,
			cg:     Point{X: s.cg.X + dx, Y: s.cg.Y},
		})
	default:
		c.Add(s)
	}
	return c
}

// transposed returns the shape rotated a quarter turn about the frame origin:
// the centroid coordinates swap, and width and height swap for the
// rectangular kinds. I-beams are never transposed directly; their rotation
// happens member-wise on the decomposition, which holds only rods and
// rectangles.
func (s Shape) transposed() Shape {
	t := s
	t.cg = Point{X: s.cg.Y, Y: s.cg.X}
	switch s.Kind {
	case KindRectangle, KindBoxBeam:
		t.Width, t.Height = s.Height, s.Width
	}
	return t
}

// Bounds returns the axis-aligned extent of the section as its lower-left
// and upper-right corners in the shared frame.
func (s Shape) Bounds() (lo, hi Point) {
	switch s.Kind {
	case KindRod:
		r := s.Radius
		return Point{X: s.cg.X - r, Y: s.cg.Y - r}, Point{X: s.cg.X + r, Y: s.cg.Y + r}
	case KindPipe:
		r := s.OuterRadius
		return Point{X: s.cg.X - r, Y: s.cg.Y - r}, Point{X: s.cg.X + r, Y: s.cg.Y + r}
	case KindRectangle, KindBoxBeam, KindIBeam:
		hw, hh := s.Width/2, s.Height/2
		return Point{X: s.cg.X - hw, Y: s.cg.Y - hh}, Point{X: s.cg.X + hw, Y: s.cg.Y + hh}
	case KindCustom:
		clo, chi := s.Custom.Bounds()
		return s.cg.Add(clo), s.cg.Add(chi)
	}
	return s.cg, s.cg
}

// Contains reports whether p lies in the section material. Points on the
// outline count as material, including the inner wall of a hollow shape.
func (s Shape) Contains(p Point) bool {
	q := p.Sub(s.cg)
	switch s.Kind {
	case KindRod:
		return q.X*q.X+q.Y*q.Y <= s.Radius*s.Radius
	case KindPipe:
		rr := q.X*q.X + q.Y*q.Y
		inner := s.OuterRadius - s.Thickness
		return rr <= s.OuterRadius*s.OuterRadius && rr >= inner*inner
	case KindRectangle:
		return math.Abs(q.X) <= s.Width/2 && math.Abs(q.Y) <= s.Height/2
	case KindBoxBeam:
		if math.Abs(q.X) > s.Width/2 || math.Abs(q.Y) > s.Height/2 {
			return false
		}
		return math.Abs(q.X) >= s.Width/2-s.Thickness || math.Abs(q.Y) >= s.Height/2-s.Thickness
	case KindIBeam:
		if math.Abs(q.X) > s.Width/2 || math.Abs(q.Y) > s.Height/2 {
			return false
		}
		// Inside the envelope; material unless in one of the open notches
		// beside the web.
		return math.Abs(q.Y) >= s.Height/2-s.FlangeThickness || math.Abs(q.X) <= s.WebThickness/2
	case KindCustom:
		return s.Custom.Contains(q)
	}
	return false
}
