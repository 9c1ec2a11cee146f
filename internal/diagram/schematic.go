package diagram

import (
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Schematic canvas layout. The drawing is symbolic, so the canvas uses
// fixed coordinates regardless of the actual span.
const (
	canvasWidth  = 10.0
	canvasHeight = 3.0

	beamLeft  = 1.0
	beamRight = 9.0
	beamY     = 2.0

	supportY     = 1.75
	overhangPinX = 2.5

	wallWidth  = 0.22
	wallHeight = 1.2
)

// Output sizes follow the report layout: a wide, short strip for the
// schematic.
const (
	schematicWidth  = 7 * vg.Inch
	schematicHeight = 2 * vg.Inch
)

var (
	beamColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	wallColor = color.RGBA{R: 105, G: 105, B: 105, A: 255}
)

// glyphMark is a point symbol on the support row (pin or roller).
type glyphMark struct {
	x, y   float64
	shape  draw.GlyphDrawer
	radius vg.Length
}

// wall is a filled rectangle anchored at its lower-left corner,
// representing a fixed end.
type wall struct {
	x, y float64
	w, h float64
}

// supportLayout returns the support symbols for a beam variant: glyph
// markers for pins and rollers, walls for fixed ends. Unknown variants
// get no supports, leaving just the bare beam bar.
func supportLayout(v beam.Variant) (marks []glyphMark, walls []wall) {
	pin := func(x float64) glyphMark {
		return glyphMark{x: x, y: supportY, shape: draw.PyramidGlyph{}, radius: vg.Points(6)}
	}
	roller := func(x float64) glyphMark {
		return glyphMark{x: x, y: supportY, shape: draw.CircleGlyph{}, radius: vg.Points(5)}
	}
	fixedWall := func(x float64) wall {
		return wall{x: x, y: beamY - wallHeight/2, w: wallWidth, h: wallHeight}
	}

	switch v {
	case beam.SimplySupported:
		marks = []glyphMark{pin(beamLeft), roller(beamRight)}
	case beam.FixedEnd:
		walls = []wall{fixedWall(beamLeft - wallWidth), fixedWall(beamRight)}
	case beam.Cantilever:
		walls = []wall{fixedWall(beamLeft - wallWidth)}
	case beam.Overhang:
		marks = []glyphMark{pin(overhangPinX), roller(beamRight)}
	}
	return marks, walls
}

// Schematic builds the support-condition sketch for a beam variant.
func Schematic(v beam.Variant) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = v.String() + " Beam"
	p.HideAxes()
	p.X.Min, p.X.Max = 0, canvasWidth
	p.Y.Min, p.Y.Max = 0, canvasHeight

	bar, err := plotter.NewLine(plotter.XYs{
		{X: beamLeft, Y: beamY},
		{X: beamRight, Y: beamY},
	})
	if err != nil {
		return nil, err
	}
	bar.LineStyle.Width = vg.Points(6)
	bar.LineStyle.Color = beamColor
	p.Add(bar)

	marks, walls := supportLayout(v)

	for _, m := range marks {
		s, err := plotter.NewScatter(plotter.XYs{{X: m.x, Y: m.y}})
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = m.shape
		s.GlyphStyle.Radius = m.radius
		s.GlyphStyle.Color = color.Black
		p.Add(s)
	}

	for _, w := range walls {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: w.x, Y: w.y},
			{X: w.x + w.w, Y: w.y},
			{X: w.x + w.w, Y: w.y + w.h},
			{X: w.x, Y: w.y + w.h},
		})
		if err != nil {
			return nil, err
		}
		poly.Color = wallColor
		poly.LineStyle.Color = color.Black
		p.Add(poly)
	}

	return p, nil
}

// WriteSchematic renders the schematic for a beam variant as PNG.
func WriteSchematic(v beam.Variant, w io.Writer) error {
	p, err := Schematic(v)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(schematicWidth, schematicHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// ExportSchematic writes the schematic to an image file, inferring the
// format from the file extension.
func ExportSchematic(v beam.Variant, filename string) error {
	p, err := Schematic(v)
	if err != nil {
		return err
	}
	return save(p, schematicWidth, schematicHeight, filename)
}

// save writes a plot to disk. Unrecognized extensions fall back to PNG.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
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
