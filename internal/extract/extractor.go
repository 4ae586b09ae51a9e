// Package extract turns a downloaded lap chart into csv by handing it to a
// document understanding model.
package extract

import (
	"context"
	"errors"
	"fmt"
	"lapchart-scraper/internal/components/assert"
	"lapchart-scraper/internal/components/telemetry"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	report_extractor_extract_csv = "extractor.extract-csv"
)

var ErrPDFNotFound = errors.New("pdf not found")

// Model is a document understanding model that answers `prompt` about the pdf
// at `pdfPath`.
//
// note: fault injection point
type Model interface {
	Generate(ctx context.Context, pdfPath, prompt string) (string, error)
}

// CSVFilename is the name a race's extracted chart is saved under,
// `raceName` being the formatted race name.
func CSVFilename(year int, raceName string) string {
	return fmt.Sprintf("%d_%s.csv", year, raceName)
}

type Extractor struct {
	model     Model
	outputDir string
	tel       telemetry.API
}

func NewExtractor(model Model, outputDir string, tel telemetry.API) Extractor {
	assert.NotNil("model", model)
	if outputDir == "" {
		outputDir = "."
	}
	return Extractor{
		model:     model,
		outputDir: outputDir,
		tel:       telemetry.NewScopedAPI("extract", tel),
	}
}

// ExtractCSV sends the chart at `pdfPath` to the model once and writes the
// answer, minus any code fence, to the output directory. The answer is not
// checked in any way.
//
// A missing pdf returns ErrPDFNotFound without contacting the model, model
// errors are returned as is.
func (e Extractor) ExtractCSV(ctx context.Context, pdfPath string, year int, raceName string) (string, error) {
	info, err := os.Stat(pdfPath)
	if err != nil || info.IsDir() {
		e.tel.ReportWarning(report_extractor_extract_csv, "path", pdfPath, "err", err)
		return "", fmt.Errorf("%w: %s", ErrPDFNotFound, pdfPath)
	}

	requestId := uuid.NewString()
	e.tel.ReportInfo("extracting lap chart", "request_id", requestId, "pdf", pdfPath)

	raw, err := e.model.Generate(ctx, pdfPath, LapChartPrompt)
	if err != nil {
		e.tel.ReportBroken(report_extractor_extract_csv, "err", err, "request_id", requestId)
		return "", err
	}
	content := StripCodeFence(raw)

	path := filepath.Join(e.outputDir, CSVFilename(year, raceName))
	err = os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		e.tel.ReportBroken(report_extractor_extract_csv, "err", err, "path", path)
		return "", fmt.Errorf("write csv: %w", err)
	}

	e.tel.ReportInfo(
		"generated csv",
		"request_id", requestId,
		"path", path,
		"rows", strings.Count(content, "\n")+1,
	)
	return path, nil
}
