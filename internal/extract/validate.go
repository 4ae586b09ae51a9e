package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const chartColumns = 21

// Issue is a single defect found by ValidateCSV, Line is 1-based.
type Issue struct {
	Line    int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s", i.Line, i.Message)
}

// ValidateCSV checks the shape of an extracted lap chart:
//
//   - the header is POS,1,2,...,20
//   - the rows are GRID, LAP 1, LAP 2, ... in that order
//   - every row has 21 fields
//   - every cell is blank or a car number (1-99) that appears once in its row
//
// It never modifies the content, an empty result means the chart looks sane.
func ValidateCSV(r io.Reader) ([]Issue, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var issues []Issue
	report := func(line int, format string, args ...any) {
		issues = append(issues, Issue{Line: line, Message: fmt.Sprintf(format, args...)})
	}

	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return issues, fmt.Errorf("read csv: %w", err)
		}
		line++

		if len(record) != chartColumns {
			report(line, "expected %d fields, got %d", chartColumns, len(record))
		}

		if line == 1 {
			validateHeader(record, func(format string, args ...any) {
				report(line, format, args...)
			})
			continue
		}

		label := strings.TrimSpace(record[0])
		expected := "GRID"
		if line > 2 {
			expected = fmt.Sprintf("LAP %d", line-2)
		}
		if label != expected {
			report(line, "expected row %q, got %q", expected, label)
		}

		seen := map[int]bool{}
		for col, cell := range record[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			n, err := strconv.Atoi(cell)
			if err != nil || n < 1 || n > 99 {
				report(line, "position %d: %q is not a car number", col+1, cell)
				continue
			}
			if seen[n] {
				report(line, "position %d: car %d appears twice", col+1, n)
			}
			seen[n] = true
		}
	}

	switch line {
	case 0:
		report(1, "empty chart")
	case 1:
		report(1, "no rows after the header")
	}
	return issues, nil
}

func validateHeader(record []string, report func(format string, args ...any)) {
	for i, field := range record {
		expected := "POS"
		if i > 0 {
			expected = strconv.Itoa(i)
		}
		field = strings.TrimSpace(field)
		if field != expected {
			report("header column %d: expected %q, got %q", i+1, expected, field)
		}
	}
}
