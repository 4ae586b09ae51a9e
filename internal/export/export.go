// Package export bundles the csv charts of a season into one workbook, one
// sheet per race plus an index sheet.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"lapchart-scraper/internal/extract"
	"lapchart-scraper/internal/season"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const indexSheet = "Races"

// excel rejects longer sheet names
const maxSheetName = 31

type Summary struct {
	Exported []string
	// Missing lists the races without a csv in the source directory.
	Missing []string
}

// Season reads every `{year}_{race}.csv` of `year` from `dir` and writes the
// resulting workbook to `w`. Races without a csv are listed in
// Summary.Missing, a season with no csv at all is still exported with an
// empty index.
func Season(dir string, year int, w io.Writer) (Summary, error) {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName("Sheet1", indexSheet)
	if err != nil {
		return Summary{}, err
	}
	for col, h := range []string{"Race ID", "Race", "Laps", "File"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(indexSheet, cell, h)
	}

	var summary Summary
	row := 2
	for i, race := range season.Events(year) {
		filename := extract.CSVFilename(year, season.FormatRaceName(race))
		records, err := readChart(filepath.Join(dir, filename))
		if errors.Is(err, os.ErrNotExist) {
			summary.Missing = append(summary.Missing, race)
			continue
		}
		if err != nil {
			return summary, fmt.Errorf("read %s: %w", filename, err)
		}

		sheet := sheetName(f, race)
		_, err = f.NewSheet(sheet)
		if err != nil {
			return summary, fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		err = writeRecords(f, sheet, records)
		if err != nil {
			return summary, fmt.Errorf("write sheet %s: %w", sheet, err)
		}

		laps := max(len(records)-2, 0)
		for col, v := range []any{i + 1, race, laps, filename} {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(indexSheet, cell, v)
		}
		row++
		summary.Exported = append(summary.Exported, race)
	}

	_ = f.SetColWidth(indexSheet, "B", "B", 28)
	_ = f.SetColWidth(indexSheet, "D", "D", 40)

	err = f.Write(w)
	if err != nil {
		return summary, fmt.Errorf("xlsx write: %w", err)
	}
	return summary, nil
}

func readChart(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func writeRecords(f *excelize.File, sheet string, records [][]string) error {
	for r, record := range records {
		for c, field := range record {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			var value any = field
			if n, err := strconv.Atoi(strings.TrimSpace(field)); err == nil {
				value = n
			}
			err = f.SetCellValue(sheet, cell, value)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// truncateRunes cuts `s` to at most `n` characters.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// sheetName names a race's sheet, sheet names are limited to maxSheetName
// characters and must be unique within the workbook.
func sheetName(f *excelize.File, race string) string {
	name := truncateRunes(strings.TrimSuffix(race, " Grand Prix"), maxSheetName)
	candidate := name
	for n := 2; ; n++ {
		index, _ := f.GetSheetIndex(candidate)
		if index == -1 {
			return candidate
		}
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncateRunes(name, maxSheetName-len(suffix)) + suffix
	}
}
