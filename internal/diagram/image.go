package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cmccomb/structural-shapes/section"
)

var (
	materialFill = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	voidFill     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	axisColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	centroidInk  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportSection renders a single shape with its voids and centroidal axes to
// an image file. The format follows the extension (png, svg, pdf); anything
// else gets ".png" appended.
func ExportSection(s section.Shape, filename string) error {
	p := plot.New()
	p.Title.Text = "Cross-Section: " + s.String()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if err := addShape(p, s, true); err != nil {
		return err
	}

	lo, hi := s.Bounds()
	if err := addCentroidAxes(p, s.Centroid(), lo, hi); err != nil {
		return err
	}
	if err := addCentroidMarker(p, s.Centroid()); err != nil {
		return err
	}

	return savePlot(p, filename)
}

// ExportComposite renders every member of an assembly, added material filled
// and subtracted members blanked out, in insertion order so later voids
// punch through earlier material. The centroid and its axes are drawn when
// the net area is nonzero.
func ExportComposite(c *section.Composite, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Composite Section (%d members)", c.Len())
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, m := range c.Members() {
		if err := addShape(p, m.Shape, m.Sign > 0); err != nil {
			return err
		}
	}

	if cog, err := c.Centroid(); err == nil {
		lo, hi := c.Bounds()
		if err := addCentroidAxes(p, cog, lo, hi); err != nil {
			return err
		}
		if err := addCentroidMarker(p, cog); err != nil {
			return err
		}
	}

	return savePlot(p, filename)
}

// addShape fills and outlines one shape. Material shapes are filled and
// drawn solid; subtracted ones are blanked white and outlined dashed.
func addShape(p *plot.Plot, s section.Shape, material bool) error {
	outer, voids := outlineRings(s)

	fill := materialFill
	if !material {
		fill = voidFill
	}

	for _, ring := range outer {
		poly, err := plotter.NewPolygon(ring)
		if err != nil {
			return err
		}
		poly.Color = fill
		poly.LineStyle.Color = color.Transparent
		p.Add(poly)
	}
	for _, ring := range voids {
		poly, err := plotter.NewPolygon(ring)
		if err != nil {
			return err
		}
		poly.Color = voidFill
		poly.LineStyle.Color = color.Transparent
		p.Add(poly)
	}

	for _, ring := range outer {
		line, err := plotter.NewLine(closeRing(ring))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		if !material {
			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}
		p.Add(line)
	}
	for _, ring := range voids {
		line, err := plotter.NewLine(closeRing(ring))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.Black
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)
	}

	return nil
}

// addCentroidAxes draws the dashed horizontal and vertical axes through the
// centroid, extended a tenth of the section span past the bounds.
func addCentroidAxes(p *plot.Plot, cog, lo, hi section.Point) error {
	margin := 0.1 * math.Max(hi.X-lo.X, hi.Y-lo.Y)

	horizontal, err := plotter.NewLine(plotter.XYs{
		{X: lo.X - margin, Y: cog.Y},
		{X: hi.X + margin, Y: cog.Y},
	})
	if err != nil {
		return err
	}
	horizontal.LineStyle.Width = vg.Points(1.5)
	horizontal.LineStyle.Color = axisColor
	horizontal.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(horizontal)

	vertical, err := plotter.NewLine(plotter.XYs{
		{X: cog.X, Y: lo.Y - margin},
		{X: cog.X, Y: hi.Y + margin},
	})
	if err != nil {
		return err
	}
	vertical.LineStyle.Width = vg.Points(1.5)
	vertical.LineStyle.Color = axisColor
	vertical.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(vertical)

	return nil
}

func addCentroidMarker(p *plot.Plot, cog section.Point) error {
	marker, err := plotter.NewScatter(plotter.XYs{{X: cog.X, Y: cog.Y}})
	if err != nil {
		return err
	}
	marker.GlyphStyle.Color = centroidInk
	marker.GlyphStyle.Radius = vg.Points(4)
	marker.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marker)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: cog.X, Y: cog.Y}},
		Labels: []string{fmt.Sprintf("  C (%.4g, %.4g)", cog.X, cog.Y)},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	return nil
}

// outlineRings returns the boundary loops of a shape: outer material loops
// and interior void loops, unclosed.
func outlineRings(s section.Shape) (outer, voids []plotter.XYs) {
	cg := s.Centroid()
	switch s.Kind {
	case section.KindRod:
		outer = append(outer, circleRing(cg, s.Radius))
	case section.KindPipe:
		outer = append(outer, circleRing(cg, s.OuterRadius))
		if inner := s.OuterRadius - s.Thickness; inner > 0 {
			voids = append(voids, circleRing(cg, inner))
		}
	case section.KindRectangle:
		outer = append(outer, rectRing(cg, s.Width, s.Height))
	case section.KindBoxBeam:
		outer = append(outer, rectRing(cg, s.Width, s.Height))
		iw, ih := s.Width-2*s.Thickness, s.Height-2*s.Thickness
		if iw > 0 && ih > 0 {
			voids = append(voids, rectRing(cg, iw, ih))
		}
	case section.KindIBeam:
		outer = append(outer, iBeamRing(s))
	case section.KindCustom:
		if pg, ok := s.Custom.(interface{ Vertices() []section.Point }); ok {
			verts := pg.Vertices()
			ring := make(plotter.XYs, len(verts))
			for i, v := range verts {
				ring[i] = plotter.XY{X: cg.X + v.X, Y: cg.Y + v.Y}
			}
			outer = append(outer, ring)
		} else {
			lo, hi := s.Bounds()
			outer = append(outer, rectRing(
				section.Pt((lo.X+hi.X)/2, (lo.Y+hi.Y)/2), hi.X-lo.X, hi.Y-lo.Y))
		}
	}
	return outer, voids
}

func circleRing(c section.Point, r float64) plotter.XYs {
	const segments = 64
	ring := make(plotter.XYs, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		ring[i] = plotter.XY{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return ring
}

func rectRing(c section.Point, w, h float64) plotter.XYs {
	hw, hh := w/2, h/2
	return plotter.XYs{
		{X: c.X - hw, Y: c.Y - hh},
		{X: c.X + hw, Y: c.Y - hh},
		{X: c.X + hw, Y: c.Y + hh},
		{X: c.X - hw, Y: c.Y + hh},
	}
}

// iBeamRing walks the twelve corners of an I outline counterclockwise from
// the bottom-left flange tip.
func iBeamRing(s section.Shape) plotter.XYs {
	cg := s.Centroid()
	hw, hh := s.Width/2, s.Height/2
	webHalf := s.WebThickness / 2
	f := s.FlangeThickness
	return plotter.XYs{
		{X: cg.X - hw, Y: cg.Y - hh},
		{X: cg.X + hw, Y: cg.Y - hh},
		{X: cg.X + hw, Y: cg.Y - hh + f},
		{X: cg.X + webHalf, Y: cg.Y - hh + f},
		{X: cg.X + webHalf, Y: cg.Y + hh - f},
		{X: cg.X + hw, Y: cg.Y + hh - f},
		{X: cg.X + hw, Y: cg.Y + hh},
		{X: cg.X - hw, Y: cg.Y + hh},
		{X: cg.X - hw, Y: cg.Y + hh - f},
		{X: cg.X - webHalf, Y: cg.Y + hh - f},
		{X: cg.X - webHalf, Y: cg.Y - hh + f},
		{X: cg.X - hw, Y: cg.Y - hh + f},
	}
}

func closeRing(ring plotter.XYs) plotter.XYs {
	if len(ring) == 0 {
		return ring
	}
	closed := make(plotter.XYs, len(ring)+1)
	copy(closed, ring)
	closed[len(ring)] = ring[0]
	return closed
}

// savePlot writes the plot in the format named by the extension. Unknown
// extensions fall back to PNG. The target directory is created if missing.
func savePlot(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
