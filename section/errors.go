package section

import "errors"

var (
	// ErrInvalidGeometry reports shape dimensions that cannot form a real
	// cross-section, such as a wall thickness that consumes more than the
	// full section. Constructors wrap it with the offending values.
	ErrInvalidGeometry = errors.New("section: invalid geometry")

	// ErrDegenerateComposite reports a centroid query on a composite whose
	// signed areas cancel to exactly zero, leaving the centroid undefined.
	ErrDegenerateComposite = errors.New("section: composite has zero net area")
)
