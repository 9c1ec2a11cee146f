package diagram

import (
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

const asciiSpanChars = 40

// ASCIISchematic draws a terminal sketch of the beam bar and its
// supports: triangles for pins, circles for rollers, solid walls for
// fixed ends.
func ASCIISchematic(v beam.Variant) string {
	var sb strings.Builder
	bar := strings.Repeat("═", asciiSpanChars)
	blank := strings.Repeat(" ", asciiSpanChars)

	sb.WriteString("\n")
	switch v {
	case beam.SimplySupported:
		row := []rune(blank)
		row[0] = '▲'
		row[asciiSpanChars-1] = '○'
		sb.WriteString("  " + bar + "\n")
		sb.WriteString("  " + string(row) + "\n")
	case beam.FixedEnd:
		sb.WriteString("  █" + blank + "█\n")
		sb.WriteString("  █" + bar + "█\n")
		sb.WriteString("  █" + blank + "█\n")
	case beam.Cantilever:
		sb.WriteString("  █\n")
		sb.WriteString("  █" + bar + "\n")
		sb.WriteString("  █\n")
	case beam.Overhang:
		// Pin sits inboard, leaving the left segment overhanging.
		row := []rune(blank)
		row[asciiSpanChars*3/16] = '▲'
		row[asciiSpanChars-1] = '○'
		sb.WriteString("  " + bar + "\n")
		sb.WriteString("  " + string(row) + "\n")
	default:
		sb.WriteString("  " + bar + "\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

// ASCIIEnvelope renders the shear and moment curves as terminal charts.
func ASCIIEnvelope(env beam.Envelope) string {
	_, shears, moments := env.Sample(envelopeSamples)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(shears,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("Shear Force Diagram (kN)")))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(moments,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("Bending Moment Diagram (kN·m)")))
	sb.WriteString("\n")

	return sb.String()
}

// SummaryBox frames a titled block of result lines in a double-line
// box.
func SummaryBox(title string, lines []string) string {
	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	width += 2

	pad := func(s string) string {
		return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
	}

	var sb strings.Builder
	border := strings.Repeat("═", width+2)
	sb.WriteString("  ╔" + border + "╗\n")
	sb.WriteString("  ║ " + pad(title) + " ║\n")
	sb.WriteString("  ╠" + border + "╣\n")
	for _, line := range lines {
		sb.WriteString("  ║ " + pad(line) + " ║\n")
	}
	sb.WriteString("  ╚" + border + "╝\n")

	return sb.String()
}
