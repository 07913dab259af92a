package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/models"
)

// FetchFinancials retrieves the credit report of a resolved company.
func (c *Client) FetchFinancials(ctx context.Context, token string, profile models.CompanyProfile) (*models.FinancialBundle, error) {
	if token == "" || c.companiesURL == "" || profile.ID == "" {
		return nil, fmt.Errorf("%w: report request needs a token, an endpoint and a company id", ErrPrecondition)
	}

	resp, err := c.request(ctx, token).
		SetPathParam("companyId", profile.ID).
		Get(c.companiesURL + "/{companyId}")
	if err != nil {
		return nil, &TransportError{URL: c.companiesURL, Err: err}
	}
	logResponse(ctx, "report", resp)

	if rejected(resp.StatusCode()) {
		return nil, &RejectedError{StatusCode: resp.StatusCode(), Reason: http.StatusText(resp.StatusCode())}
	}

	doc, err := parseObject(resp)
	if err != nil {
		return nil, err
	}
	return ParseReport(doc), nil
}

// ParseReport extracts the financial series from a report document. The
// payload may sit under "report" or at the top level. Absent or mistyped
// sections come back empty.
func ParseReport(doc gjson.Result) *models.FinancialBundle {
	if rep := doc.Get("report"); rep.IsObject() {
		doc = rep
	}

	return &models.FinancialBundle{
		Statements:      statements(doc.Get("financialStatements")),
		LocalStatements: statements(doc.Get("localFinancialStatements")),
		Group:           groupStructure(doc.Get("groupStructure")),
		Employees:       employees(doc.Get("otherInformation.employeesInformation")),
	}
}

func statements(v gjson.Result) []models.Statement {
	if !v.IsArray() {
		return nil
	}
	var out []models.Statement
	for _, s := range v.Array() {
		out = append(out, models.NewStatement(s))
	}
	return out
}

func employees(v gjson.Result) []models.EmployeeEntry {
	if !v.IsArray() {
		return nil
	}
	var out []models.EmployeeEntry
	for _, e := range v.Array() {
		var entry models.EmployeeEntry
		if e.IsObject() {
			entry.Count = e.Get("numberOfEmployees")
		}
		out = append(out, entry)
	}
	return out
}

func groupStructure(v gjson.Result) *models.GroupStructure {
	if !v.IsObject() {
		return nil
	}
	return &models.GroupStructure{
		UltimateParent:  groupCompany(v.Get("ultimateParent")),
		ImmediateParent: groupCompany(v.Get("immediateParent")),
		Subsidiaries:    groupCompanies(v.Get("subsidiaryCompanies")),
		Affiliates:      groupCompanies(v.Get("affiliatedCompanies")),
	}
}

func groupCompany(v gjson.Result) *models.GroupCompany {
	if !v.IsObject() {
		return nil
	}
	return &models.GroupCompany{
		Name:               v.Get("name").String(),
		Country:            v.Get("country").String(),
		RegistrationNumber: v.Get("registrationNumber").String(),
	}
}

func groupCompanies(v gjson.Result) []models.GroupCompany {
	if !v.IsArray() {
		return nil
	}
	var out []models.GroupCompany
	for _, e := range v.Array() {
		if c := groupCompany(e); c != nil {
			out = append(out, *c)
		}
	}
	return out
}
