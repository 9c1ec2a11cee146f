package batch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return &buf
}

func headerRow() []any {
	row := make([]any, len(Header))
	for i, h := range Header {
		row[i] = h
	}
	return row
}

func TestProcessDesignsEveryRow(t *testing.T) {
	buf := workbook(t, [][]any{
		headerRow(),
		{"Simply Supported", 30, 20, 300, 500, 30, 420},
		{"Cantilever", 12, 4, 300, 500, 28, 415},
	})

	rows, err := Process(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NoError(t, rows[0].Err)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, beam.SimplySupported, rows[0].Beam.Variant)
	assert.Equal(t, 1500.00, rows[0].Result.Mu)
	assert.Equal(t, 104.75, rows[0].Result.PhiVc)

	require.NoError(t, rows[1].Err)
	assert.Equal(t, beam.Cantilever, rows[1].Beam.Variant)
	// 12·4²/2
	assert.Equal(t, 96.00, rows[1].Result.Mu)
}

func TestProcessKeepsBadRows(t *testing.T) {
	buf := workbook(t, [][]any{
		headerRow(),
		{"Continuous", 30, 20, 300, 500, 30, 420},     // unknown type
		{"Fixed End", "abc", 20, 300, 500, 30, 420},   // bad number
		{"Simply Supported", 30, 20, 300, 0, 30, 420}, // zero depth
		{"Simply Supported", 30, 20, 300, 500, 30, 420},
	})

	rows, err := Process(buf)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.ErrorIs(t, rows[0].Err, beam.ErrUnknownVariant)
	assert.Nil(t, rows[0].Result)

	require.Error(t, rows[1].Err)
	assert.Contains(t, rows[1].Err.Error(), "w_kn_m")

	assert.ErrorIs(t, rows[2].Err, beam.ErrDomain)

	require.NoError(t, rows[3].Err)
	assert.NotNil(t, rows[3].Result)
}

func TestProcessSkipsBlankRows(t *testing.T) {
	buf := workbook(t, [][]any{
		headerRow(),
		{"Simply Supported", 30, 20, 300, 500, 30, 420},
		{"", "", "", "", "", "", ""},
		{"Overhang", 30, 20, 300, 500, 30, 420},
	})

	rows, err := Process(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, 4, rows[1].Line)
}

func TestProcessRejectsEmptySheet(t *testing.T) {
	buf := workbook(t, [][]any{headerRow()})

	_, err := Process(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}

func TestWriteResultsRoundTrip(t *testing.T) {
	buf := workbook(t, [][]any{
		headerRow(),
		{"Simply Supported", 30, 20, 300, 500, 30, 420},
		{"Continuous", 30, 20, 300, 500, 30, 420},
	})

	rows, err := Process(buf)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteResults(rows, &out))

	f, err := excelize.OpenReader(&out)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, append(append([]string{}, Header...), resultHeader...), got[0])

	assert.Equal(t, "Simply Supported", got[1][0])
	assert.Equal(t, "1500", got[1][7])
	assert.Equal(t, "STIRRUPS REQUIRED", got[1][11])

	assert.Contains(t, got[2][11], "ERROR:")
}

func TestWriteTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Header, got[0])
	assert.Equal(t, "Simply Supported", got[1][0])
}
