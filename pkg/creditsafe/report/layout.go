// Package report fills one report tab per company from a template tab.
package report

// Layout describes where the writer reads tags and writes values.
// Columns and rows are 1-based.
type Layout struct {
	// TagColumn holds the row tags; scanning stops at the first empty cell.
	TagColumn   int
	FirstTagRow int
	// LatestYearColumn receives year index 0; older years move one column left.
	LatestYearColumn int
	Years            int

	// EmployeesTag selects the employee count instead of a statement field.
	EmployeesTag string
	// SkipMarker starts tags that are section headers or comments.
	SkipMarker string

	NameCell            string
	UltimateParentCell  string
	ImmediateParentCell string

	// GroupColumn lists subsidiaries from GroupStartRow, then affiliates.
	GroupColumn      int
	GroupLabelColumn int
	GroupStartRow    int
	// GroupListLimit caps each of the subsidiary and affiliate lists.
	GroupListLimit  int
	AffiliatesLabel string
	LabelFont       string
	LabelFontSize   float64
}

// DefaultLayout returns the layout of the Creditsafe report template.
func DefaultLayout() Layout {
	return Layout{
		TagColumn:           1,
		FirstTagRow:         1,
		LatestYearColumn:    8,
		Years:               5,
		EmployeesTag:        "#employees",
		SkipMarker:          "#",
		NameCell:            "D14",
		UltimateParentCell:  "K14",
		ImmediateParentCell: "K15",
		GroupColumn:         11,
		GroupLabelColumn:    10,
		GroupStartRow:       16,
		GroupListLimit:      10,
		AffiliatesLabel:     "Affiliates",
		LabelFont:           "Arial",
		LabelFontSize:       14,
	}
}
