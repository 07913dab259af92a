package workbook

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/models"
	"github.com/xuri/excelize/v2"
)

type companyRow struct {
	regNo   interface{}
	country string
}

func writeInput(t *testing.T, cfg map[string]string, rows []companyRow) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Creditsafe"))
	if cfg != nil {
		_, err := f.NewSheet("Config")
		require.NoError(t, err)
		for cell, v := range cfg {
			require.NoError(t, f.SetCellValue("Config", cell, v))
		}
	}
	for i, r := range rows {
		row := FirstCompanyRow + i
		b, _ := excelize.CoordinatesToCellName(RegNoColumn, row)
		d, _ := excelize.CoordinatesToCellName(CountryColumn, row)
		require.NoError(t, f.SetCellValue("Creditsafe", b, r.regNo))
		if r.country != "" {
			require.NoError(t, f.SetCellValue("Creditsafe", d, r.country))
		}
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func validConfigCells() map[string]string {
	return map[string]string{
		"C2":  "user@example.com",
		"C3":  "secret",
		"C5":  "https://connect.creditsafe.com/v1/authenticate",
		"C6":  "https://connect.creditsafe.com/v1/companies",
		"C8":  "GB",
		"C10": "CreditSafe.exe",
		"C11": "Results.xlsx",
	}
}

func TestReadConfig(t *testing.T) {
	path := writeInput(t, validConfigCells(), nil)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, models.Config{
		User:           "user@example.com",
		Password:       "secret",
		AuthURL:        "https://connect.creditsafe.com/v1/authenticate",
		CompaniesURL:   "https://connect.creditsafe.com/v1/companies",
		DefaultCountry: "GB",
		ExeFile:        "CreditSafe.exe",
		OutputFile:     "Results.xlsx",
	}, cfg)
}

func TestReadConfig_CredentialsVerbatim(t *testing.T) {
	cells := validConfigCells()
	cells["C2"] = " user@example.com"
	cells["C3"] = " pass word "
	cells["C11"] = " Results.xlsx "
	path := writeInput(t, cells, nil)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, " user@example.com", cfg.User)
	assert.Equal(t, " pass word ", cfg.Password)
	assert.Equal(t, "Results.xlsx", cfg.OutputFile)
}

func TestReadConfig_MissingTab(t *testing.T) {
	path := writeInput(t, nil, nil)

	_, err := ReadConfig(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSheet))

	var sheetErr *SheetError
	assert.ErrorAs(t, err, &sheetErr)
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
}

func TestReadConfig_Invalid(t *testing.T) {
	cells := validConfigCells()
	delete(cells, "C3")
	cells["C5"] = "not a url"
	path := writeInput(t, cells, nil)

	_, err := ReadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestReadCompanies(t *testing.T) {
	path := writeInput(t, validConfigCells(), []companyRow{
		{"01234567", "GB"},
		{"12345678", ""},
		{"B-998", "#default"},
		{98765432, "DE"},
	})

	companies, err := ReadCompanies(path, "FR")
	require.NoError(t, err)
	assert.Equal(t, []models.CompanyRequest{
		{RegNo: "01234567", Country: "GB"},
		{RegNo: "12345678", Country: "FR"},
		{RegNo: "B-998", Country: "FR"},
		{RegNo: "98765432", Country: "DE"},
	}, companies)
}

func TestReadCompanies_StopsAtFirstBlank(t *testing.T) {
	path := writeInput(t, validConfigCells(), []companyRow{{"1", "US"}})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	// Row 5 is populated but row 4 is blank.
	require.NoError(t, f.SetCellValue("Creditsafe", "B5", "2"))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	companies, err := ReadCompanies(path, "US")
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestReadCompanies_Empty(t *testing.T) {
	path := writeInput(t, validConfigCells(), nil)

	companies, err := ReadCompanies(path, "US")
	require.NoError(t, err)
	assert.Empty(t, companies)
}

func TestReadCompanies_NeedsDefaultCountry(t *testing.T) {
	_, err := ReadCompanies("unused.xlsx", "")
	assert.ErrorIs(t, err, ErrNoDefaultCountry)
}

func TestEffectiveCountry(t *testing.T) {
	tests := []struct {
		cell     string
		expected string
	}{
		{"", "GB"},
		{"#", "GB"},
		{"#N/A", "GB"},
		{"US", "US"},
		{"u#s", "u#s"},
		{" ", " "},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EffectiveCountry(tt.cell, "GB"), "cell %q", tt.cell)
	}
}

func TestOpenOutput_KeepsOnlyTemplate(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Template"))
	require.NoError(t, f.SetCellValue("Template", "A1", "revenue"))
	for _, name := range []string{"US-1", "GB-2"} {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	out, err := OpenOutput(path)
	require.NoError(t, err)
	defer out.Close()

	assert.Equal(t, []string{"Template"}, out.GetSheetList())
	assert.Equal(t, 0, ReportCount(out))
	v, err := out.GetCellValue("Template", "A1")
	require.NoError(t, err)
	assert.Equal(t, "revenue", v)
}

func TestOpenOutput_Missing(t *testing.T) {
	_, err := OpenOutput(filepath.Join(t.TempDir(), "missing.xlsx"))
	var sheetErr *SheetError
	assert.ErrorAs(t, err, &sheetErr)
}

func TestSave(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("US-1")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "saved.xlsx")
	require.NoError(t, Save(f, path))

	g, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer g.Close()
	assert.Equal(t, 1, ReportCount(g))
}
