package workbook

import (
	"errors"
	"fmt"
)

// ErrMissingSheet indicates the workbook lacks an expected tab.
var ErrMissingSheet = errors.New("missing sheet")

// ErrNoDefaultCountry indicates ReadCompanies was called without a default country.
var ErrNoDefaultCountry = errors.New("need a default country")

// SheetError represents a failure reading or preparing a workbook tab.
type SheetError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("workbook %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("workbook %q, sheet %q: %v", e.Path, e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

func newSheetError(path, sheet string, err error) *SheetError {
	return &SheetError{Path: path, Sheet: sheet, Err: err}
}
