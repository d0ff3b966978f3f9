package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmccomb/structural-shapes/section"
)

func TestExportSectionWritesFile(t *testing.T) {
	shapes := []section.Shape{
		section.Must(section.NewRod(1)),
		section.Must(section.NewPipe(2, 0.25)),
		section.Must(section.NewBoxBeam(3, 2, 0.3)),
		section.Must(section.NewIBeam(0.5, 0.25, 0.025, 0.05)),
	}
	dir := t.TempDir()
	for _, s := range shapes {
		t.Run(s.Kind.String(), func(t *testing.T) {
			fn := filepath.Join(dir, s.Kind.String()+".png")
			require.NoError(t, ExportSection(s, fn))

			info, err := os.Stat(fn)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestExportSectionDefaultsToPNG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "rod")
	require.NoError(t, ExportSection(section.Must(section.NewRod(1)), fn))

	_, err := os.Stat(fn + ".png")
	require.NoError(t, err)
}

func TestExportSectionSVG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beam.svg")
	beam := section.Must(section.NewIBeam(0.5, 0.25, 0.025, 0.05))
	require.NoError(t, ExportSection(beam, fn))

	info, err := os.Stat(fn)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportComposite(t *testing.T) {
	poly, err := section.NewPolygon([]section.Point{
		section.Pt(0, 0), section.Pt(2, 0), section.Pt(1, 1.5),
	})
	require.NoError(t, err)

	c := section.NewComposite().
		Add(section.Must(section.NewRectangle(4, 1)).At(section.Pt(0, -0.5))).
		Add(section.Must(section.NewCustom(poly)).At(section.Pt(0, 0.5))).
		Sub(section.Must(section.NewRod(0.2)).At(section.Pt(0, -0.5)))

	fn := filepath.Join(t.TempDir(), "nested", "composite.png")
	require.NoError(t, ExportComposite(c, fn), "export creates missing directories")

	info, err := os.Stat(fn)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
