package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmccomb/structural-shapes/section"
)

func TestDrawSection(t *testing.T) {
	out := DrawSection(section.Must(section.NewRod(1)))

	assert.Contains(t, out, "SECTION SKETCH")
	assert.Contains(t, out, "░", "material fill")
	assert.Contains(t, out, "●", "centroid marker")
	assert.Contains(t, out, "◄─ centroid")
	assert.Contains(t, out, "extents: x -1 to 1, y -1 to 1")
}

func TestDrawSectionShowsVoid(t *testing.T) {
	// A thin-walled box: the centroid row crosses the hollow core, so it
	// must hold blanks between the wall fills.
	out := DrawSection(section.Must(section.NewBoxBeam(4, 4, 0.5)))

	var centroidRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "◄─ centroid") {
			centroidRow = line
			break
		}
	}
	require.NotEmpty(t, centroidRow)
	assert.Contains(t, centroidRow, "░ ", "wall beside the core")
	assert.Contains(t, centroidRow, "  ", "hollow core")
}

func TestDrawComposite(t *testing.T) {
	c := section.NewComposite().
		Add(section.Must(section.NewRectangle(2, 1)).At(section.Pt(0, 0.5))).
		Sub(section.Must(section.NewRod(0.2)).At(section.Pt(0, 0.5)))

	out := DrawComposite(c)
	assert.Contains(t, out, "░")
	assert.Contains(t, out, "◄─ centroid")
}

func TestDrawCompositeDegenerate(t *testing.T) {
	square := section.Must(section.NewRectangle(1, 1))
	c := section.NewComposite().Add(square).Sub(square)

	// No centroid to mark, but the outline still renders.
	out := DrawComposite(c)
	assert.NotContains(t, out, "◄─ centroid")
	assert.Contains(t, out, "SECTION SKETCH")

	assert.Contains(t, DrawComposite(section.NewComposite()), "empty composite")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("SECTION PROPERTIES", []string{"Area = 4", "Ix = 1.333"})

	assert.Contains(t, out, "SECTION PROPERTIES")
	assert.Contains(t, out, "Area = 4")
	assert.Contains(t, out, "Ix = 1.333")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╚")
}
