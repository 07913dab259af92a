package workbook

import (
	"github.com/xuri/excelize/v2"
)

// OpenOutput opens the report workbook and removes every tab except the
// first one, which is the template.
func OpenOutput(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newSheetError(path, "", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, newSheetError(path, "", ErrMissingSheet)
	}
	for _, name := range sheets[1:] {
		if err := f.DeleteSheet(name); err != nil {
			f.Close()
			return nil, newSheetError(path, name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// ReportCount returns the number of tabs added after the template.
func ReportCount(f *excelize.File) int {
	n := len(f.GetSheetList()) - 1
	if n < 0 {
		return 0
	}
	return n
}

// Save writes the report workbook to path.
func Save(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return newSheetError(path, "", err)
	}
	return nil
}
