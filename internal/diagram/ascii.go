// Package diagram renders cross-sections for the terminal and for image
// files: a character raster with the centroid marked, and a gonum/plot export
// with outlines, voids, and the centroidal axes.
package diagram

import (
	"fmt"
	"strings"

	"github.com/cmccomb/structural-shapes/section"
)

// Raster size in characters. Rows are fixed; columns follow the section's
// aspect ratio, corrected for terminal glyphs being about twice as tall as
// they are wide.
const (
	rasterRows = 21
	minCols    = 10
	maxCols    = 62
)

// DrawSection renders a terminal sketch of a single shape with its centroid
// marked, followed by a legend of the extents.
func DrawSection(s section.Shape) string {
	lo, hi := s.Bounds()
	return drawRaster(lo, hi, s.Contains, s.Centroid())
}

// DrawComposite renders a terminal sketch of an assembly. Voids carved by
// subtracted members show up as gaps in the fill. The centroid marker is
// omitted when the net area is zero.
func DrawComposite(c *section.Composite) string {
	if c.Len() == 0 {
		return "\n  (empty composite)\n"
	}
	lo, hi := c.Bounds()
	cog, err := c.Centroid()
	if err != nil {
		return drawRasterNoCog(lo, hi, c.Contains)
	}
	return drawRaster(lo, hi, c.Contains, cog)
}

func drawRaster(lo, hi section.Point, contains func(section.Point) bool, cog section.Point) string {
	return raster(lo, hi, contains, cog, true)
}

func drawRasterNoCog(lo, hi section.Point, contains func(section.Point) bool) string {
	return raster(lo, hi, contains, section.Point{}, false)
}

func raster(lo, hi section.Point, contains func(section.Point) bool, cog section.Point, markCog bool) string {
	spanX := hi.X - lo.X
	spanY := hi.Y - lo.Y
	if spanX <= 0 || spanY <= 0 {
		return "\n  (section has no extent)\n"
	}

	// Terminal characters are roughly twice as tall as wide.
	cols := int(2*float64(rasterRows)*spanX/spanY + 0.5)
	if cols < minCols {
		cols = minCols
	}
	if cols > maxCols {
		cols = maxCols
	}

	dx := spanX / float64(cols)
	dy := spanY / float64(rasterRows)

	// Centroid cell, row 0 at the top.
	cogCol := int((cog.X - lo.X) / dx)
	cogRow := rasterRows - 1 - int((cog.Y-lo.Y)/dy)
	if cogCol < 0 {
		cogCol = 0
	}
	if cogCol >= cols {
		cogCol = cols - 1
	}
	if cogRow < 0 {
		cogRow = 0
	}
	if cogRow >= rasterRows {
		cogRow = rasterRows - 1
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  SECTION SKETCH\n")
	sb.WriteString("  ──────────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))

	for row := 0; row < rasterRows; row++ {
		y := hi.Y - (float64(row)+0.5)*dy
		line := make([]rune, cols)
		for col := 0; col < cols; col++ {
			x := lo.X + (float64(col)+0.5)*dx
			if contains(section.Pt(x, y)) {
				line[col] = '░'
			} else {
				line[col] = ' '
			}
		}
		if markCog && row == cogRow {
			line[cogCol] = '●'
			sb.WriteString(fmt.Sprintf("  │%s│ ◄─ centroid\n", string(line)))
		} else {
			sb.WriteString(fmt.Sprintf("  │%s│\n", string(line)))
		}
	}

	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = material\n")
	if markCog {
		sb.WriteString(fmt.Sprintf("  ●   = centroid at (%.4g, %.4g)\n", cog.X, cog.Y))
	}
	sb.WriteString(fmt.Sprintf("  extents: x %.4g to %.4g, y %.4g to %.4g\n", lo.X, hi.X, lo.Y, hi.Y))

	return sb.String()
}

// DrawSummaryBox frames a title and result lines in a double-ruled box.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
