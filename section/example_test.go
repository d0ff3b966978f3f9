package section_test

import (
	"fmt"

	"github.com/cmccomb/structural-shapes/section"
)

// Check the extreme-fiber bending stress of an I-beam girder under a design
// moment: sigma = M*y/I about the strong axis.
func ExampleShape_MomentOfInertiaX() {
	beam := section.Must(section.NewIBeam(0.5, 0.25, 0.025, 0.05))

	moment := 1000.0
	fiber := 0.125
	stress := moment * fiber / beam.MomentOfInertiaX()

	fmt.Printf("bending stress: %.3g\n", stress)
	// Output:
	// bending stress: 2.42e+05
}

// Size a hollow drive shaft in torsion: tau = T*r/J at the outer surface.
func ExampleShape_PolarMomentOfInertia() {
	shaft := section.Must(section.NewPipe(0.25, 0.05))

	torque := 500.0
	stress := torque * 0.25 / shaft.PolarMomentOfInertia()

	fmt.Printf("shear stress: %.3g\n", stress)
	// Output:
	// shear stress: 3.45e+04
}

func ExampleNewPipe() {
	pipe := section.Must(section.NewPipe(2, 1))

	fmt.Printf("area: %.4f\n", pipe.Area())
	fmt.Printf("moi:  %.4f\n", pipe.MomentOfInertiaX())
	// Output:
	// area: 9.4248
	// moi:  11.7810
}

// Drill two bolt holes through a base plate and read the net area.
func ExampleNewComposite() {
	hole := section.Must(section.NewRod(0.25))
	plate := section.NewComposite().
		Add(section.Must(section.NewRectangle(4, 2))).
		Sub(hole.At(section.Pt(-1, 0))).
		Sub(hole.At(section.Pt(1, 0)))

	fmt.Printf("net area: %.4f\n", plate.Area())
	// Output:
	// net area: 7.6073
}

// Assemble two offset plates, then re-express the pair about its own
// centroid so the moments become centroidal.
func ExampleComposite_Recenter() {
	c := section.NewComposite().
		Add(section.Must(section.NewRectangle(1, 1)).At(section.Pt(1, 1))).
		Add(section.Must(section.NewRectangle(1, 1)).At(section.Pt(3, 2)))

	cog, _ := c.Centroid()
	fmt.Println("before:", cog)

	if err := c.Recenter(); err != nil {
		panic(err)
	}
	cog, _ = c.Centroid()
	fmt.Println("after: ", cog)
	// Output:
	// before: (2, 1.5)
	// after:  (0, 0)
}
