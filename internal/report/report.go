package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
)

// Meta carries the title block of a design report.
type Meta struct {
	Project  string
	Engineer string
	Title    string
}

const (
	pageMargin = 15.0
	labelW     = 70.0
	valueW     = 60.0
	rowH       = 6.0
	imageW     = 180.0
)

type kv struct {
	label, value string
}

// Generate designs the beam, renders its diagrams, and writes the full
// PDF report.
func Generate(meta Meta, b *beam.Beam, w io.Writer) error {
	res, err := b.Design()
	if err != nil {
		return err
	}
	env, err := b.Envelope()
	if err != nil {
		return err
	}

	var schematic, envelope bytes.Buffer
	if err := diagram.WriteSchematic(b.Variant, &schematic); err != nil {
		return err
	}
	if err := diagram.WriteEnvelopeDiagrams(env, &envelope); err != nil {
		return err
	}

	return Build(meta, b, res, &schematic, &envelope, w)
}

// Build composes a PDF design report from already-computed results. The
// schematic and envelope readers supply PNG images; either may be nil
// to omit that figure.
func Build(meta Meta, b *beam.Beam, res *beam.DesignResult, schematic, envelope io.Reader, w io.Writer) error {
	if meta.Title == "" {
		meta.Title = "RC Beam Design Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Core fonts are cp1252, so translate the units (·, ²) and keep
	// phi spelled out.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(meta.Title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)), "", 1, "L", false, 0, "")
	}
	if meta.Engineer != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Engineer: %s", meta.Engineer)), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	section(pdf, "Design Input")
	table(pdf, tr, []kv{
		{"Beam type", b.Variant.String()},
		{"Uniform load w", fmt.Sprintf("%.2f kN/m", b.W)},
		{"Span L", fmt.Sprintf("%.2f m", b.L)},
		{"Width b", fmt.Sprintf("%.0f mm", b.Width)},
		{"Effective depth d", fmt.Sprintf("%.0f mm", b.EffectiveDepth)},
		{"Concrete strength f'c", fmt.Sprintf("%.1f MPa", b.Fc)},
		{"Steel yield strength fy", fmt.Sprintf("%.1f MPa", b.Fy)},
	})
	pdf.Ln(4)

	section(pdf, "Design Results")
	table(pdf, tr, []kv{
		{"Ultimate moment Mu", fmt.Sprintf("%.2f kN·m", res.Mu)},
		{"Required steel area As", fmt.Sprintf("%.2f mm²", res.As)},
		{"Ultimate shear Vu", fmt.Sprintf("%.2f kN", res.Vu)},
		{"Concrete capacity phi·Vc", fmt.Sprintf("%.2f kN", res.PhiVc)},
		{"Shear check", res.ShearStatus.String()},
	})
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	verdict := "Concrete alone carries the factored shear."
	if res.ShearStatus == beam.StirrupsRequired {
		verdict = "Provide shear stirrups: factored shear exceeds the concrete capacity."
	}
	pdf.MultiCell(0, 6, tr(verdict), "", "L", false)
	pdf.Ln(4)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	if schematic != nil {
		pdf.RegisterImageOptionsReader("schematic", opts, schematic)
		pdf.ImageOptions("schematic", pageMargin, 0, imageW, 0, true, opts, 0, "")
		pdf.Ln(4)
	}
	if envelope != nil {
		pdf.RegisterImageOptionsReader("envelope", opts, envelope)
		pdf.ImageOptions("envelope", pageMargin, 0, imageW, 0, true, opts, 0, "")
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(labelW+valueW, 7, title, "1", 1, "L", true, 0, "")
}

func table(pdf *gofpdf.Fpdf, tr func(string) string, rows []kv) {
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(labelW, rowH, tr(r.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, rowH, tr(r.value), "1", 1, "R", false, 0, "")
	}
}
