// Package workbook reads the connector input workbook and prepares the
// report workbook.
package workbook

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/models"
	"github.com/xuri/excelize/v2"
)

const (
	// CompanySheetIndex is the tab holding the company list.
	CompanySheetIndex = 0
	// ConfigSheetIndex is the tab holding the fixed configuration cells.
	ConfigSheetIndex = 1

	// FirstCompanyRow is the first row of the company list.
	FirstCompanyRow = 3
	// RegNoColumn and CountryColumn are the 1-based company list columns.
	RegNoColumn   = 2
	CountryColumn = 4

	// DefaultMarker at the start of a country cell selects the default country.
	DefaultMarker = "#"
)

// configCells maps the configuration tab. Credentials are taken verbatim;
// every other cell is trimmed.
var configCells = []struct {
	cell     string
	verbatim bool
	field    func(*models.Config) *string
}{
	{"C2", true, func(c *models.Config) *string { return &c.User }},
	{"C3", true, func(c *models.Config) *string { return &c.Password }},
	{"C5", false, func(c *models.Config) *string { return &c.AuthURL }},
	{"C6", false, func(c *models.Config) *string { return &c.CompaniesURL }},
	{"C8", false, func(c *models.Config) *string { return &c.DefaultCountry }},
	{"C10", false, func(c *models.Config) *string { return &c.ExeFile }},
	{"C11", false, func(c *models.Config) *string { return &c.OutputFile }},
}

var validate = validator.New()

// ReadConfig reads the configuration tab of the input workbook.
func ReadConfig(path string) (models.Config, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Config{}, newSheetError(path, "", err)
	}
	defer f.Close()

	sheet, err := sheetAt(f, path, ConfigSheetIndex)
	if err != nil {
		return models.Config{}, err
	}

	var cfg models.Config
	for _, c := range configCells {
		v, err := f.GetCellValue(sheet, c.cell)
		if err != nil {
			return models.Config{}, newSheetError(path, sheet, fmt.Errorf("cell %s: %w", c.cell, err))
		}
		if !c.verbatim {
			v = strings.TrimSpace(v)
		}
		*c.field(&cfg) = v
	}

	if err := validate.Struct(cfg); err != nil {
		return models.Config{}, newSheetError(path, sheet, fmt.Errorf("invalid configuration: %w", err))
	}
	return cfg, nil
}

// ReadCompanies reads the company list, stopping at the first empty
// registration number cell. Order follows the sheet rows.
func ReadCompanies(path, defaultCountry string) ([]models.CompanyRequest, error) {
	if defaultCountry == "" {
		return nil, ErrNoDefaultCountry
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newSheetError(path, "", err)
	}
	defer f.Close()

	sheet, err := sheetAt(f, path, CompanySheetIndex)
	if err != nil {
		return nil, err
	}

	var companies []models.CompanyRequest
	for row := FirstCompanyRow; ; row++ {
		regNo, err := rawCell(f, sheet, RegNoColumn, row)
		if err != nil {
			return nil, newSheetError(path, sheet, err)
		}
		if regNo == "" {
			break
		}
		country, err := rawCell(f, sheet, CountryColumn, row)
		if err != nil {
			return nil, newSheetError(path, sheet, err)
		}
		companies = append(companies, models.CompanyRequest{
			RegNo:   regNo,
			Country: EffectiveCountry(country, defaultCountry),
		})
	}
	return companies, nil
}

// EffectiveCountry applies the default-country rule to a country cell.
func EffectiveCountry(cell, defaultCountry string) string {
	if cell == "" || strings.HasPrefix(cell, DefaultMarker) {
		return defaultCountry
	}
	return cell
}

func sheetAt(f *excelize.File, path string, index int) (string, error) {
	sheets := f.GetSheetList()
	if index >= len(sheets) {
		return "", newSheetError(path, "", fmt.Errorf("%w: tab %d of %d", ErrMissingSheet, index+1, len(sheets)))
	}
	return sheets[index], nil
}

// rawCell returns the unformatted value so numeric registration numbers keep all digits.
func rawCell(f *excelize.File, sheet string, col, row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
}
