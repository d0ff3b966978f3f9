// Package section computes the geometric properties structural engineers
// size beams and shafts with: cross-sectional area, centroid, second moments
// of area about both in-plane axes, and the polar moment for torsion.
//
// Five primitive families are built in (rod, pipe, rectangle, box-beam,
// i-beam) plus an extension point for arbitrary sections, including simple
// polygons. Hollow primitives are evaluated through a signed decomposition
// into solid ones: a pipe is a rod minus a smaller rod, a box-beam a
// rectangle minus a rectangle, an i-beam a rectangle minus the two notches
// beside its web. The same superposition is available directly through
// Composite for built-up or perforated sections:
//
//	c := section.NewComposite().
//		Add(section.Must(section.NewRectangle(0.3, 0.5)).At(section.Pt(0, 0.25))).
//		Sub(section.Must(section.NewRod(0.05)).At(section.Pt(0, 0.4)))
//	a := c.Area()
//
// Every shape carries a center of gravity in a shared reference frame, and
// moment queries include the parallel-axis contribution from that placement
// automatically. Composite.Recenter shifts an assembly so its own centroid
// coincides with the frame origin, which makes the moments centroidal.
//
// The package is units-free: feed dimensions in any consistent length unit
// and read areas in that unit squared, moments in it to the fourth power.
package section
