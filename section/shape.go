package section

import (
	"fmt"
	"math"
)

// Kind identifies the cross-section family of a Shape.
type Kind int

const (
	// KindRod is a solid circular section.
	KindRod Kind = iota
	// KindPipe is a hollow circular section.
	KindPipe
	// KindRectangle is a solid rectangular section.
	KindRectangle
	// KindBoxBeam is a hollow rectangular section with uniform wall thickness.
	KindBoxBeam
	// KindIBeam is an I-shaped section: two flanges joined by a web.
	KindIBeam
	// KindCustom is a user-supplied section implementing CustomShape.
	KindCustom
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRod:
		return "rod"
	case KindPipe:
		return "pipe"
	case KindRectangle:
		return "rectangle"
	case KindBoxBeam:
		return "box-beam"
	case KindIBeam:
		return "i-beam"
	case KindCustom:
		return "custom"
	}
	return "unknown"
}

// Shape is one cross-section primitive placed in the shared reference frame.
// Kind selects the family and which dimension fields apply; the fields of the
// other families are ignored. The zero Shape is a rod of radius zero and is
// not valid; build shapes through the constructors, which validate dimensions
// up front so property queries never fail.
//
// All dimensions are in consistent but unspecified length units. Areas come
// out in those units squared and moments of inertia in those units to the
// fourth power.
type Shape struct {
	Kind Kind

	Radius          float64 // rod: outer radius
	OuterRadius     float64 // pipe: outer radius
	Thickness       float64 // pipe, box-beam: wall thickness
	Width           float64 // rectangle, box-beam, i-beam: overall width
	Height          float64 // rectangle, box-beam, i-beam: overall height
	WebThickness    float64 // i-beam: width of the vertical web
	FlangeThickness float64 // i-beam: height of each horizontal flange

	// Custom carries the geometry for KindCustom. Implementations must be
	// immutable after construction; shapes are copied freely by value.
	Custom CustomShape

	cg Point
}

// NewRod creates a solid circular section of the given radius, centered at
// the reference-frame origin.
func NewRod(radius float64) (Shape, error) {
	s := Shape{Kind: KindRod, Radius: radius}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// NewPipe creates a hollow circular section with the given outer radius and
// wall thickness, centered at the reference-frame origin. A thickness equal
// to the outer radius degenerates to a solid rod and is allowed.
func NewPipe(outerRadius, thickness float64) (Shape, error) {
	s := Shape{Kind: KindPipe, OuterRadius: outerRadius, Thickness: thickness}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// NewRectangle creates a solid rectangular section of the given overall width
// and height, centered at the reference-frame origin.
func NewRectangle(width, height float64) (Shape, error) {
	s := Shape{Kind: KindRectangle, Width: width, Height: height}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// NewBoxBeam creates a hollow rectangular section with the given overall
// width and height and uniform wall thickness, centered at the
// reference-frame origin. Walls meeting in the middle degenerate to a solid
// rectangle and are allowed.
func NewBoxBeam(width, height, thickness float64) (Shape, error) {
	s := Shape{Kind: KindBoxBeam, Width: width, Height: height, Thickness: thickness}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// NewIBeam creates an I-shaped section with the given overall width and
// height, web thickness, and flange thickness, centered at the
// reference-frame origin. Flanges meeting at mid-height, or a web as wide as
// the flanges, degenerate to a solid rectangle and are allowed.
func NewIBeam(width, height, webThickness, flangeThickness float64) (Shape, error) {
	s := Shape{
		Kind:            KindIBeam,
		Width:           width,
		Height:          height,
		WebThickness:    webThickness,
		FlangeThickness: flangeThickness,
	}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// NewCustom wraps a user-supplied geometry as a shape centered at the
// reference-frame origin. The geometry's local origin must be its own
// centroid; Polygon arranges this automatically.
func NewCustom(c CustomShape) (Shape, error) {
	s := Shape{Kind: KindCustom, Custom: c}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// Must unwraps a constructor result, panicking on error. It is intended for
// dimensions known to be valid at compile time:
//
//	beam := section.Must(section.NewIBeam(0.5, 0.25, 0.025, 0.05))
func Must(s Shape, err error) Shape {
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks the dimensions for physical consistency. Constructors call
// it automatically; it is exported for shapes assembled field by field.
// Dimensions must be strictly positive, and subtractive dimensions (walls,
// webs, flanges) must not exceed the extent they are carved from. Equality is
// allowed: the void vanishes and the shape degenerates to a solid one.
func (s Shape) Validate() error {
	switch s.Kind {
	case KindRod:
		if s.Radius <= 0 {
			return fmt.Errorf("%w: rod: radius %g must be positive", ErrInvalidGeometry, s.Radius)
		}
	case KindPipe:
		if s.OuterRadius <= 0 {
			return fmt.Errorf("%w: pipe: outer radius %g must be positive", ErrInvalidGeometry, s.OuterRadius)
		}
		if s.Thickness <= 0 || s.Thickness > s.OuterRadius {
			return fmt.Errorf("%w: pipe: thickness %g must be positive and at most the outer radius %g",
				ErrInvalidGeometry, s.Thickness, s.OuterRadius)
		}
	case KindRectangle:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: rectangle: width %g and height %g must be positive",
				ErrInvalidGeometry, s.Width, s.Height)
		}
	case KindBoxBeam:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: box-beam: width %g and height %g must be positive",
				ErrInvalidGeometry, s.Width, s.Height)
		}
		if s.Thickness <= 0 || 2*s.Thickness > math.Min(s.Width, s.Height) {
			return fmt.Errorf("%w: box-beam: wall thickness %g must be positive and fit twice inside %g x %g",
				ErrInvalidGeometry, s.Thickness, s.Width, s.Height)
		}
	case KindIBeam:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: i-beam: width %g and height %g must be positive",
				ErrInvalidGeometry, s.Width, s.Height)
		}
		if s.WebThickness <= 0 || s.WebThickness > s.Width {
			return fmt.Errorf("%w: i-beam: web thickness %g must be positive and at most the width %g",
				ErrInvalidGeometry, s.WebThickness, s.Width)
		}
		if s.FlangeThickness <= 0 || 2*s.FlangeThickness > s.Height {
			return fmt.Errorf("%w: i-beam: flange thickness %g must be positive and fit twice inside the height %g",
				ErrInvalidGeometry, s.FlangeThickness, s.Height)
		}
	case KindCustom:
		if s.Custom == nil {
			return fmt.Errorf("%w: custom: no geometry supplied", ErrInvalidGeometry)
		}
		if a := s.Custom.Area(); a <= 0 {
			return fmt.Errorf("%w: custom: area %g must be positive", ErrInvalidGeometry, a)
		}
	default:
		return fmt.Errorf("%w: unknown shape kind %d", ErrInvalidGeometry, int(s.Kind))
	}
	return nil
}

// Centroid returns the shape's center of gravity in the shared frame.
func (s Shape) Centroid() Point {
	return s.cg
}

// SetCentroid moves the shape's center of gravity to p, carrying the whole
// outline with it.
func (s *Shape) SetCentroid(p Point) {
	s.cg = p
}

// At returns a copy of the shape with its center of gravity at p. The
// original is untouched, so placed variants of one prototype can be handed to
// several composites:
//
//	hole := section.Must(section.NewRod(0.1))
//	c.Sub(hole.At(section.Pt(-0.5, 0))).Sub(hole.At(section.Pt(0.5, 0)))
func (s Shape) At(p Point) Shape {
	s.cg = p
	return s
}

// String describes the shape kind and its dimensions.
func (s Shape) String() string {
	switch s.Kind {
	case KindRod:
		return fmt.Sprintf("rod(r=%g)", s.Radius)
	case KindPipe:
		return fmt.Sprintf("pipe(r=%g, t=%g)", s.OuterRadius, s.Thickness)
	case KindRectangle:
		return fmt.Sprintf("rectangle(w=%g, h=%g)", s.Width, s.Height)
	case KindBoxBeam:
		return fmt.Sprintf("box-beam(w=%g, h=%g, t=%g)", s.Width, s.Height, s.Thickness)
	case KindIBeam:
		return fmt.Sprintf("i-beam(w=%g, h=%g, web=%g, flange=%g)",
			s.Width, s.Height, s.WebThickness, s.FlangeThickness)
	case KindCustom:
		if str, ok := s.Custom.(fmt.Stringer); ok {
			return str.String()
		}
		return "custom"
	}
	return "unknown"
}
