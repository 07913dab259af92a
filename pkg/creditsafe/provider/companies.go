package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/models"
)

// ResolveCompany searches the company by country and registration number and
// returns the first match.
func (c *Client) ResolveCompany(ctx context.Context, token string, req models.CompanyRequest) (*models.CompanyProfile, error) {
	if token == "" || c.companiesURL == "" || req.RegNo == "" || req.Country == "" {
		return nil, fmt.Errorf("%w: company search needs a token, an endpoint and a company", ErrPrecondition)
	}

	resp, err := c.request(ctx, token).
		SetQueryParams(map[string]string{
			"countries": req.Country,
			"regNo":     strings.TrimSpace(req.RegNo),
		}).
		Get(c.companiesURL)
	if err != nil {
		return nil, &TransportError{URL: c.companiesURL, Err: err}
	}
	logResponse(ctx, "search", resp)

	if rejected(resp.StatusCode()) {
		return nil, &RejectedError{StatusCode: resp.StatusCode(), Reason: http.StatusText(resp.StatusCode())}
	}

	doc, err := parseObject(resp)
	if err != nil {
		return nil, err
	}

	companies := doc.Get("companies")
	if !companies.Exists() {
		reason := doc.Get("details").String()
		if reason == "" {
			reason = "no companies in response"
		}
		return nil, &RejectedError{StatusCode: resp.StatusCode(), Reason: reason}
	}

	first := companies.Get("0")
	if !first.IsObject() {
		return nil, &RejectedError{StatusCode: resp.StatusCode(), Reason: "no companies in response"}
	}

	profile := decodeProfile(first, req)
	if profile.ID == "" {
		return nil, fmt.Errorf("%w: company entry has no id", ErrMalformed)
	}
	return &profile, nil
}

// decodeProfile reads a search entry. Country and registration number fall
// back to the request when the provider leaves them out.
func decodeProfile(entry gjson.Result, req models.CompanyRequest) models.CompanyProfile {
	p := models.CompanyProfile{
		ID:      entry.Get("id").String(),
		Name:    entry.Get("name").String(),
		Country: entry.Get("country").String(),
		RegNo:   entry.Get("regNo").String(),
		SafeNo:  entry.Get("safeNo").String(),
		Status:  entry.Get("status").String(),
	}
	if p.Country == "" {
		p.Country = req.Country
	}
	if p.RegNo == "" {
		p.RegNo = strings.TrimSpace(req.RegNo)
	}
	return p
}
