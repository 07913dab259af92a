package models

import "github.com/tidwall/gjson"

// Statement is one year of a financial statement series. Keys are provider
// line-item tags; the set varies per country and per company.
type Statement struct {
	raw gjson.Result
}

// NewStatement wraps a decoded JSON object. Non-object values yield an empty statement.
func NewStatement(raw gjson.Result) Statement {
	if !raw.IsObject() {
		return Statement{}
	}
	return Statement{raw: raw}
}

// Field returns the value stored directly under tag.
func (s Statement) Field(tag string) (gjson.Result, bool) {
	if tag == "" || !s.raw.IsObject() {
		return gjson.Result{}, false
	}
	var (
		found gjson.Result
		ok    bool
	)
	// Keys are compared literally; tags may contain gjson path characters.
	s.raw.ForEach(func(key, value gjson.Result) bool {
		if key.String() == tag {
			found, ok = value, true
			return false
		}
		return true
	})
	return found, ok
}

// Raw returns the statement's JSON text.
func (s Statement) Raw() string {
	return s.raw.Raw
}

// Section returns the nested statement stored under name (e.g. "profitAndLoss").
func (s Statement) Section(name string) (Statement, bool) {
	v, ok := s.Field(name)
	if !ok || !v.IsObject() {
		return Statement{}, false
	}
	return Statement{raw: v}, true
}

// EmployeeEntry is one year of the employee information series.
type EmployeeEntry struct {
	// Count is the numberOfEmployees value; it does not exist when the provider left it out.
	Count gjson.Result
}

// FinancialBundle groups the four series returned by the company report call.
// Each series is indexed by years ago (0 = most recent). Any of them may be empty.
type FinancialBundle struct {
	Statements      []Statement
	LocalStatements []Statement
	// Group is nil when the provider sent no group structure.
	Group     *GroupStructure
	Employees []EmployeeEntry
}

// Empty reports whether no financial statements were returned.
func (b *FinancialBundle) Empty() bool {
	return b == nil || len(b.Statements) == 0
}
