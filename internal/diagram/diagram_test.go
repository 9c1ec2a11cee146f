package diagram

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

const pngMagic = "\x89PNG\r\n\x1a\n"

func TestSupportLayoutSimplySupported(t *testing.T) {
	marks, walls := supportLayout(beam.SimplySupported)

	require.Len(t, marks, 2)
	require.Empty(t, walls)

	assert.Equal(t, beamLeft, marks[0].x)
	assert.Equal(t, supportY, marks[0].y)
	assert.IsType(t, draw.PyramidGlyph{}, marks[0].shape)

	assert.Equal(t, beamRight, marks[1].x)
	assert.IsType(t, draw.CircleGlyph{}, marks[1].shape)
}

func TestSupportLayoutFixedEnd(t *testing.T) {
	marks, walls := supportLayout(beam.FixedEnd)

	require.Empty(t, marks)
	require.Len(t, walls, 2)

	assert.InDelta(t, 0.78, walls[0].x, 1e-12)
	assert.Equal(t, beamRight, walls[1].x)
	for _, w := range walls {
		assert.InDelta(t, 1.4, w.y, 1e-12)
		assert.Equal(t, wallWidth, w.w)
		assert.Equal(t, wallHeight, w.h)
	}
}

func TestSupportLayoutCantilever(t *testing.T) {
	marks, walls := supportLayout(beam.Cantilever)

	require.Empty(t, marks)
	require.Len(t, walls, 1)
	assert.InDelta(t, 0.78, walls[0].x, 1e-12)
}

func TestSupportLayoutOverhang(t *testing.T) {
	marks, walls := supportLayout(beam.Overhang)

	require.Len(t, marks, 2)
	require.Empty(t, walls)
	assert.Equal(t, overhangPinX, marks[0].x)
	assert.IsType(t, draw.PyramidGlyph{}, marks[0].shape)
	assert.Equal(t, beamRight, marks[1].x)
}

func TestSupportLayoutUnknownVariant(t *testing.T) {
	marks, walls := supportLayout(beam.Variant(99))
	assert.Empty(t, marks)
	assert.Empty(t, walls)
}

func TestWriteSchematicProducesPNG(t *testing.T) {
	for _, v := range beam.Variants() {
		var buf bytes.Buffer
		err := WriteSchematic(v, &buf)
		require.NoError(t, err, v.String())
		assert.True(t, strings.HasPrefix(buf.String(), pngMagic), v.String())
	}
}

func TestWriteEnvelopeDiagramsProducesPNG(t *testing.T) {
	for _, v := range beam.Variants() {
		env, err := beam.NewEnvelope(v, 30, 20)
		require.NoError(t, err)

		var buf bytes.Buffer
		err = WriteEnvelopeDiagrams(env, &buf)
		require.NoError(t, err, v.String())
		assert.True(t, strings.HasPrefix(buf.String(), pngMagic), v.String())
	}
}

func TestASCIISchematicSymbols(t *testing.T) {
	ss := ASCIISchematic(beam.SimplySupported)
	assert.Contains(t, ss, "▲")
	assert.Contains(t, ss, "○")
	assert.Contains(t, ss, "═")
	assert.NotContains(t, ss, "█")

	fe := ASCIISchematic(beam.FixedEnd)
	assert.Contains(t, fe, "█")
	assert.NotContains(t, fe, "▲")

	ca := ASCIISchematic(beam.Cantilever)
	assert.Contains(t, ca, "█")
	assert.NotContains(t, ca, "○")

	oh := ASCIISchematic(beam.Overhang)
	assert.Contains(t, oh, "▲")
	assert.Contains(t, oh, "○")

	// The overhang pin sits inboard of the left end.
	ssPin := strings.Index(lastRow(ss), "▲")
	ohPin := strings.Index(lastRow(oh), "▲")
	assert.Greater(t, ohPin, ssPin)
}

func lastRow(sketch string) string {
	rows := strings.Split(strings.TrimSpace(sketch), "\n")
	return rows[len(rows)-1]
}

func TestASCIIEnvelopeCaptions(t *testing.T) {
	env, err := beam.NewEnvelope(beam.SimplySupported, 30, 20)
	require.NoError(t, err)

	out := ASCIIEnvelope(env)
	assert.Contains(t, out, "Shear Force Diagram (kN)")
	assert.Contains(t, out, "Bending Moment Diagram (kN·m)")
}

func TestSummaryBoxAlignment(t *testing.T) {
	box := SummaryBox("FLEXURAL DESIGN", []string{
		"Mu = 1500.00 kN·m",
		"As = 8818.34 mm²",
	})

	assert.Contains(t, box, "╔")
	assert.Contains(t, box, "╚")
	assert.Contains(t, box, "FLEXURAL DESIGN")

	// Multibyte symbols must not break the right border alignment.
	var widths []int
	for _, row := range strings.Split(strings.TrimSpace(box), "\n") {
		widths = append(widths, len([]rune(strings.TrimSpace(row))))
	}
	for _, w := range widths[1:] {
		assert.Equal(t, widths[0], w)
	}
}
