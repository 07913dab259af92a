package report

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/models"
	"github.com/xuri/excelize/v2"
)

// ErrPrecondition indicates Write was called with incomplete data or an
// unusable workbook.
var ErrPrecondition = errors.New("precondition violated")

// Writer adds company tabs to a report workbook whose first tab is the template.
type Writer struct {
	f          *excelize.File
	layout     Layout
	chain      []Lookup
	labelStyle int
}

// NewWriter prepares a writer for f.
func NewWriter(f *excelize.File, layout Layout) (*Writer, error) {
	if f == nil || len(f.GetSheetList()) == 0 {
		return nil, fmt.Errorf("%w: report workbook has no template sheet", ErrPrecondition)
	}
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: layout.LabelFont, Size: layout.LabelFontSize},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}
	return &Writer{
		f:          f,
		layout:     layout,
		chain:      DefaultChain,
		labelStyle: style,
	}, nil
}

// Write clones the template into a tab named after the company and fills it.
// It returns the new tab name, which differs from the company key when the key
// is not a valid tab name or is already taken.
func (w *Writer) Write(profile models.CompanyProfile, bundle *models.FinancialBundle) (string, error) {
	if err := checkInputs(w.f, profile, bundle); err != nil {
		return "", err
	}

	sheet, err := w.sheetName(profile.Key())
	if err != nil {
		return "", err
	}
	if err := w.cloneTemplate(sheet); err != nil {
		return "", err
	}
	if err := w.f.SetCellValue(sheet, w.layout.NameCell, profile.DisplayName()); err != nil {
		return "", err
	}

	tags, err := w.rowTags(sheet)
	if err != nil {
		return "", err
	}
	series := Series{Statements: bundle.Statements, Local: bundle.LocalStatements}
	for year := 0; year < w.layout.Years; year++ {
		col := w.layout.LatestYearColumn - year
		for i, tag := range tags {
			var v interface{}
			switch {
			case tag == w.layout.EmployeesTag:
				v = EmployeeCount(bundle.Employees, year)
			case strings.HasPrefix(tag, w.layout.SkipMarker):
				continue
			default:
				v = Resolve(w.chain, series, year, tag)
			}
			if err := w.setCell(sheet, col, w.layout.FirstTagRow+i, v); err != nil {
				return "", err
			}
		}
	}

	if err := w.writeGroup(sheet, bundle.Group); err != nil {
		return "", err
	}
	return sheet, nil
}

func checkInputs(f *excelize.File, profile models.CompanyProfile, bundle *models.FinancialBundle) error {
	switch {
	case profile.ID == "":
		return fmt.Errorf("%w: no company data", ErrPrecondition)
	case bundle == nil || len(bundle.Statements) == 0:
		return fmt.Errorf("%w: no financial data", ErrPrecondition)
	case len(bundle.LocalStatements) == 0:
		return fmt.Errorf("%w: no local financial data", ErrPrecondition)
	case len(bundle.Employees) == 0:
		return fmt.Errorf("%w: no employee data", ErrPrecondition)
	case len(f.GetSheetList()) == 0:
		return fmt.Errorf("%w: incorrect results excel file", ErrPrecondition)
	}
	return nil
}

var invalidSheetChars = strings.NewReplacer(
	":", "_", `\`, "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// sheetName turns key into a valid tab name that is not in use yet. A taken
// name gets a " (n)" suffix starting at 2.
func (w *Writer) sheetName(key string) (string, error) {
	base := strings.Trim(invalidSheetChars.Replace(key), "'")
	if base == "" {
		base = "Company"
	}
	name := clip(base, excelize.MaxSheetNameLength)
	for n := 2; ; n++ {
		index, err := w.f.GetSheetIndex(name)
		if err != nil {
			return "", err
		}
		if index == -1 {
			return name, nil
		}
		suffix := fmt.Sprintf(" (%d)", n)
		name = clip(base, excelize.MaxSheetNameLength-len(suffix)) + suffix
	}
}

// clip cuts s to at most units UTF-16 code units, the way Excel counts tab
// name length, and drops a trailing quote left by the cut.
func clip(s string, units int) string {
	n := 0
	for i, r := range s {
		n += utf16.RuneLen(r)
		if n > units {
			return strings.TrimRight(s[:i], "'")
		}
	}
	return s
}

func (w *Writer) cloneTemplate(sheet string) error {
	template := w.f.GetSheetList()[0]
	src, err := w.f.GetSheetIndex(template)
	if err != nil {
		return err
	}
	dst, err := w.f.NewSheet(sheet)
	if err != nil {
		return err
	}
	return w.f.CopySheet(src, dst)
}

// rowTags reads the tag column down to the first empty cell.
func (w *Writer) rowTags(sheet string) ([]string, error) {
	var tags []string
	for row := w.layout.FirstTagRow; ; row++ {
		cell, err := excelize.CoordinatesToCellName(w.layout.TagColumn, row)
		if err != nil {
			return nil, err
		}
		tag, err := w.f.GetCellValue(sheet, cell)
		if err != nil {
			return nil, err
		}
		if tag == "" {
			return tags, nil
		}
		tags = append(tags, tag)
	}
}

func (w *Writer) writeGroup(sheet string, g *models.GroupStructure) error {
	if err := w.f.SetCellValue(sheet, w.layout.UltimateParentCell, DescribeCompany(ultimateParent(g))); err != nil {
		return err
	}
	if err := w.f.SetCellValue(sheet, w.layout.ImmediateParentCell, DescribeCompany(immediateParent(g))); err != nil {
		return err
	}

	row, err := w.writeList(sheet, subsidiaries(g), w.layout.GroupStartRow)
	if err != nil {
		return err
	}

	label, err := excelize.CoordinatesToCellName(w.layout.GroupLabelColumn, row)
	if err != nil {
		return err
	}
	if err := w.f.SetCellValue(sheet, label, w.layout.AffiliatesLabel); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(sheet, label, label, w.labelStyle); err != nil {
		return err
	}

	_, err = w.writeList(sheet, affiliates(g), row)
	return err
}

// writeList writes up to GroupListLimit companies from row downwards and
// returns the row after the last one written.
func (w *Writer) writeList(sheet string, list []models.GroupCompany, row int) (int, error) {
	for _, c := range limit(list, w.layout.GroupListLimit) {
		if err := w.setCell(sheet, w.layout.GroupColumn, row, c.String()); err != nil {
			return row, err
		}
		row++
	}
	return row, nil
}

func (w *Writer) setCell(sheet string, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.f.SetCellValue(sheet, cell, v)
}
