package models

import "fmt"

// CompanyRequest is one row of the company list.
type CompanyRequest struct {
	// RegNo is the registration number as found in the sheet.
	RegNo string
	// Country is the effective country code after default substitution.
	Country string
}

// Key returns the "{country}-{regno}" identifier used in log tags.
func (r CompanyRequest) Key() string {
	return fmt.Sprintf("%s-%s", r.Country, r.RegNo)
}

// CompanyProfile is the provider's basic record for a resolved company.
type CompanyProfile struct {
	// ID is the provider company identifier required for the report call.
	ID string `json:"id"`
	// Name is the company display name (empty if the provider omits it).
	Name string `json:"name,omitempty"`
	// Country is the country code reported by the provider.
	Country string `json:"country"`
	// RegNo is the registration number reported by the provider.
	RegNo string `json:"regNo"`
	// SafeNo is the provider's own company number, when present.
	SafeNo string `json:"safeNo,omitempty"`
	// Status is the provider's trading status, when present.
	Status string `json:"status,omitempty"`
}

// Key returns the "{country}-{regno}" identifier, which is also the report sheet name.
func (p CompanyProfile) Key() string {
	return fmt.Sprintf("%s-%s", p.Country, p.RegNo)
}

// DisplayName returns the company name, or "n/a" when unknown.
func (p CompanyProfile) DisplayName() string {
	if p.Name == "" {
		return "n/a"
	}
	return p.Name
}
