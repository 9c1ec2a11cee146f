package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

func TestGenerateProducesPDF(t *testing.T) {
	b := beam.New(beam.SimplySupported, 30, 20, 300, 500, 30, 420)

	var buf bytes.Buffer
	err := Generate(Meta{Project: "Warehouse B2", Engineer: "A. Reyes"}, b, &buf)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "%%EOF")
}

func TestBuildWithoutImages(t *testing.T) {
	b := beam.New(beam.Cantilever, 12, 4, 300, 500, 28, 415)
	res, err := b.Design()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Build(Meta{Title: "Canopy Beam"}, b, res, nil, nil, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestGenerateRejectsInvalidSection(t *testing.T) {
	b := beam.New(beam.SimplySupported, 30, 20, 300, 500, -5, 420)

	var buf bytes.Buffer
	err := Generate(Meta{}, b, &buf)
	require.ErrorIs(t, err, beam.ErrDomain)
	assert.Zero(t, buf.Len())
}
