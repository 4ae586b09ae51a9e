package extract

import (
	"context"
	"errors"
	"lapchart-scraper/internal/components/telemetry"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	answer string
	err    error
	calls  []string
}

func (m *fakeModel) Generate(ctx context.Context, pdfPath, prompt string) (string, error) {
	m.calls = append(m.calls, pdfPath)
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func writePDF(t *testing.T, dir string) string {
	path := filepath.Join(dir, "2021_abu_dhabi_grand_prix_lap_chart.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))
	return path
}

func TestExtractCSV(t *testing.T) {
	dir := t.TempDir()
	pdf := writePDF(t, dir)
	model := &fakeModel{answer: "```csv\nPOS,1\nGRID,1\n```"}
	extractor := NewExtractor(model, dir, telemetry.SlogAPI{})

	path, err := extractor.ExtractCSV(context.Background(), pdf, 2021, "abu_dhabi_grand_prix")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "2021_abu_dhabi_grand_prix.csv"), path)
	require.Equal(t, []string{pdf}, model.calls)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "POS,1\nGRID,1", string(contents))

	// a second run replaces the same file
	model.answer = "POS,1\nGRID,2"
	_, err = extractor.ExtractCSV(context.Background(), pdf, 2021, "abu_dhabi_grand_prix")
	require.NoError(t, err)
	contents, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "POS,1\nGRID,2", string(contents))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestExtractCSVMissingPDF(t *testing.T) {
	dir := t.TempDir()
	model := &fakeModel{answer: "POS"}
	extractor := NewExtractor(model, dir, telemetry.SlogAPI{})

	path, err := extractor.ExtractCSV(context.Background(), filepath.Join(dir, "missing.pdf"), 2021, "abu_dhabi_grand_prix")
	require.ErrorIs(t, err, ErrPDFNotFound)
	require.Empty(t, path)
	require.Empty(t, model.calls)
}

func TestExtractCSVModelError(t *testing.T) {
	dir := t.TempDir()
	pdf := writePDF(t, dir)
	quota := errors.New("429 resource exhausted")
	extractor := NewExtractor(&fakeModel{err: quota}, dir, telemetry.SlogAPI{})

	_, err := extractor.ExtractCSV(context.Background(), pdf, 2021, "abu_dhabi_grand_prix")
	require.ErrorIs(t, err, quota)
	require.NotErrorIs(t, err, ErrPDFNotFound)

	_, err = os.Stat(filepath.Join(dir, CSVFilename(2021, "abu_dhabi_grand_prix")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewGeminiModelRequiresKey(t *testing.T) {
	_, err := NewGeminiModel(context.Background(), GeminiOptions{}, telemetry.SlogAPI{})
	require.ErrorIs(t, err, ErrMissingAPIKey)
}
