// Package models defines data structures exchanged between the workbook,
// the provider client and the report writer.
package models

// Config holds the provider credentials and run parameters read from the
// configuration tab of the input workbook. It is immutable for the run.
type Config struct {
	// User is the provider account name.
	User string `validate:"required"`
	// Password is the provider account password.
	Password string `validate:"required"`
	// AuthURL is the authentication endpoint.
	AuthURL string `validate:"required,url"`
	// CompaniesURL is the company search endpoint; per-company reports live below it.
	CompaniesURL string `validate:"required,url"`
	// DefaultCountry replaces empty or marked country cells in the company list.
	DefaultCountry string `validate:"required"`
	// ExeFile is the connector executable name recorded in the workbook (informational).
	ExeFile string
	// OutputFile is the report workbook file name.
	OutputFile string `validate:"required"`
}
