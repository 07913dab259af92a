package models

import "fmt"

// GroupCompany is a related company within a group structure.
type GroupCompany struct {
	Name               string `json:"name"`
	Country            string `json:"country,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
}

// String renders the company as "Name (Country - RegNo)".
func (c GroupCompany) String() string {
	return fmt.Sprintf("%s (%s - %s)", c.Name, c.Country, c.RegistrationNumber)
}

// GroupStructure is the parent/subsidiary/affiliate hierarchy of a company.
type GroupStructure struct {
	UltimateParent  *GroupCompany  `json:"ultimateParent,omitempty"`
	ImmediateParent *GroupCompany  `json:"immediateParent,omitempty"`
	Subsidiaries    []GroupCompany `json:"subsidiaryCompanies,omitempty"`
	Affiliates      []GroupCompany `json:"affiliatedCompanies,omitempty"`
}
