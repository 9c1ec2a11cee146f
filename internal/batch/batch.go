package batch

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Header is the expected column order of a batch workbook. The first
// sheet is read, the first row is the header, and every following
// non-blank row is one beam.
var Header = []string{"beam_type", "w_kn_m", "span_m", "width_mm", "depth_mm", "fc_mpa", "fy_mpa"}

var resultHeader = []string{"mu_knm", "as_mm2", "vu_kn", "phi_vc_kn", "status"}

// Row is one line of a batch workbook: the echoed input cells plus the
// design outcome. A row that fails to parse or design carries its
// error and nil results.
type Row struct {
	Line   int      // 1-based sheet row
	Cells  []string // raw input cells
	Beam   *beam.Beam
	Result *beam.DesignResult
	Err    error
}

// Process reads a batch workbook and designs every row. One bad row
// never aborts the batch; it is reported in its Row. Sheet-level
// problems (unreadable file, no data rows) return an error.
func Process(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	out := make([]Row, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		if blankRow(rows[i]) {
			continue
		}
		row := Row{Line: i + 1, Cells: rows[i]}
		row.Beam, row.Err = parseRow(rows[i])
		if row.Err == nil {
			row.Result, row.Err = row.Beam.Design()
		}
		out = append(out, row)
	}
	return out, nil
}

func parseRow(cells []string) (*beam.Beam, error) {
	if len(cells) < len(Header) {
		return nil, fmt.Errorf("want %d columns, got %d", len(Header), len(cells))
	}
	variant, err := beam.ParseVariant(cells[0])
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(Header)-1)
	for i := range vals {
		v, err := strconv.ParseFloat(strings.TrimSpace(cells[i+1]), 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", Header[i+1], err)
		}
		vals[i] = v
	}
	return beam.New(variant, vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]), nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteResults writes a results workbook: the echoed inputs plus the
// design columns, one line per processed row. Failed rows get an
// "ERROR: ..." status.
func WriteResults(rows []Row, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := append(append([]string{}, Header...), resultHeader...)
	for col, name := range header {
		if err := setCell(f, sheet, col+1, 1, name); err != nil {
			return err
		}
	}

	for i, row := range rows {
		for col, v := range cellValues(row) {
			if err := setCell(f, sheet, col+1, i+2, v); err != nil {
				return err
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// WriteTemplate writes an empty batch workbook: the header row plus one
// example line.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	example := []any{"Simply Supported", 30.0, 20.0, 300.0, 500.0, 30.0, 420.0}
	for col, name := range Header {
		if err := setCell(f, sheet, col+1, 1, name); err != nil {
			return err
		}
		if err := setCell(f, sheet, col+1, 2, example[col]); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func cellValues(row Row) []any {
	vals := make([]any, 0, len(Header)+len(resultHeader))
	for i := range Header {
		if i < len(row.Cells) {
			vals = append(vals, row.Cells[i])
		} else {
			vals = append(vals, "")
		}
	}
	if row.Err != nil {
		return append(vals, "", "", "", "", "ERROR: "+row.Err.Error())
	}
	res := row.Result
	return append(vals, res.Mu, res.As, res.Vu, res.PhiVc, res.ShearStatus.String())
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}
