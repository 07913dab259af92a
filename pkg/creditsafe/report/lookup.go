package report

import (
	"github.com/tidwall/gjson"
	"github.com/ukaji3/creditsafe-go/pkg/creditsafe/models"
)

// ProfitAndLoss is the statement section searched after the top-level fields.
const ProfitAndLoss = "profitAndLoss"

// Series is the pair of statement series a row tag is resolved against.
type Series struct {
	Statements []models.Statement
	Local      []models.Statement
}

// Lookup finds tag in one year of the series.
type Lookup func(s Series, year int, tag string) (gjson.Result, bool)

// DefaultChain tries, in order: the consolidated statement, the local
// statement, then the profit and loss section of each.
var DefaultChain = []Lookup{
	Field(consolidated),
	Field(local),
	SectionField(consolidated, ProfitAndLoss),
	SectionField(local, ProfitAndLoss),
}

func consolidated(s Series) []models.Statement { return s.Statements }

func local(s Series) []models.Statement { return s.Local }

// Field looks tag up directly on the year's statement of the picked series.
func Field(pick func(Series) []models.Statement) Lookup {
	return func(s Series, year int, tag string) (gjson.Result, bool) {
		st, ok := yearOf(pick(s), year)
		if !ok {
			return gjson.Result{}, false
		}
		return st.Field(tag)
	}
}

// SectionField looks tag up inside a named section of the year's statement.
func SectionField(pick func(Series) []models.Statement, section string) Lookup {
	return func(s Series, year int, tag string) (gjson.Result, bool) {
		st, ok := yearOf(pick(s), year)
		if !ok {
			return gjson.Result{}, false
		}
		sec, ok := st.Section(section)
		if !ok {
			return gjson.Result{}, false
		}
		return sec.Field(tag)
	}
}

func yearOf(list []models.Statement, year int) (models.Statement, bool) {
	if year < 0 || year >= len(list) {
		return models.Statement{}, false
	}
	return list[year], true
}

// Resolve returns the cell value of the first lookup that finds tag, or "".
func Resolve(chain []Lookup, s Series, year int, tag string) interface{} {
	for _, lookup := range chain {
		if v, ok := lookup(s, year, tag); ok {
			return CellValue(v)
		}
	}
	return ""
}

// EmployeeCount returns the employee count for a year, or "" when unknown.
func EmployeeCount(employees []models.EmployeeEntry, year int) interface{} {
	if year < 0 || year >= len(employees) || !employees[year].Count.Exists() {
		return ""
	}
	return CellValue(employees[year].Count)
}
