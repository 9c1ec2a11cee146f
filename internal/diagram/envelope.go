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
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// envelopeSamples is the number of stations used to trace the shear and
// moment curves.
const envelopeSamples = 100

const (
	envelopeWidth  = 7 * vg.Inch
	envelopeHeight = 5 * vg.Inch
)

var (
	shearColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	momentColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

// EnvelopePlots builds the shear force and bending moment diagrams as
// two separate plots, ready for stacking or standalone export.
func EnvelopePlots(env beam.Envelope) (shear, moment *plot.Plot, err error) {
	xs, shears, moments := env.Sample(envelopeSamples)

	shear = plot.New()
	shear.Title.Text = "Shear Force Diagram"
	shear.Y.Label.Text = "Shear (kN)"
	shear.Add(plotter.NewGrid())

	shearLine, err := plotter.NewLine(pairs(xs, shears))
	if err != nil {
		return nil, nil, err
	}
	shearLine.LineStyle.Width = vg.Points(2)
	shearLine.LineStyle.Color = shearColor
	shear.Add(shearLine)

	moment = plot.New()
	moment.Title.Text = "Bending Moment Diagram"
	moment.X.Label.Text = "Length (m)"
	moment.Y.Label.Text = "Moment (kN·m)"
	moment.Add(plotter.NewGrid())

	momentLine, err := plotter.NewLine(pairs(xs, moments))
	if err != nil {
		return nil, nil, err
	}
	momentLine.LineStyle.Width = vg.Points(2)
	momentLine.LineStyle.Color = momentColor
	moment.Add(momentLine)

	return shear, moment, nil
}

// WriteEnvelopeDiagrams renders the shear and moment diagrams stacked
// in a single PNG image, shear on top.
func WriteEnvelopeDiagrams(env beam.Envelope, w io.Writer) error {
	shear, moment, err := EnvelopePlots(env)
	if err != nil {
		return err
	}

	img := vgimg.New(envelopeWidth, envelopeHeight)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 1,
		PadY: vg.Millimeter * 4,
	}

	plots := [][]*plot.Plot{{shear}, {moment}}
	canvases := plot.Align(plots, tiles, draw.New(img))
	shear.Draw(canvases[0][0])
	moment.Draw(canvases[1][0])

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	return err
}

// ExportEnvelopeDiagrams writes the stacked shear and moment diagrams
// to a PNG file. The stacked layout is rasterized, so PNG is the only
// supported format.
func ExportEnvelopeDiagrams(env beam.Envelope, filename string) error {
	if filepath.Ext(filename) != ".png" {
		filename += ".png"
	}
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteEnvelopeDiagrams(env, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func pairs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}
