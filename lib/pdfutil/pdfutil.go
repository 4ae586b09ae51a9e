package pdfutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

var ErrEmpty = errors.New("empty pdf content")

// PageCount parses `content` as a PDF document and returns its number of pages.
func PageCount(content []byte) (count int, err error) {
	if len(content) == 0 {
		return 0, ErrEmpty
	}

	// the parser panics on some truncated documents
	defer func() {
		if r := recover(); r != nil {
			count = 0
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return r.NumPage(), nil
}
