package report

import "github.com/ukaji3/creditsafe-go/pkg/creditsafe/models"

// DescribeCompany renders a group member, or "n/a" when absent.
func DescribeCompany(c *models.GroupCompany) string {
	if c == nil {
		return "n/a"
	}
	return c.String()
}

// ultimateParent and immediateParent tolerate a missing group structure.
func ultimateParent(g *models.GroupStructure) *models.GroupCompany {
	if g == nil {
		return nil
	}
	return g.UltimateParent
}

func immediateParent(g *models.GroupStructure) *models.GroupCompany {
	if g == nil {
		return nil
	}
	return g.ImmediateParent
}

func subsidiaries(g *models.GroupStructure) []models.GroupCompany {
	if g == nil {
		return nil
	}
	return g.Subsidiaries
}

func affiliates(g *models.GroupStructure) []models.GroupCompany {
	if g == nil {
		return nil
	}
	return g.Affiliates
}

func limit(list []models.GroupCompany, n int) []models.GroupCompany {
	if len(list) > n {
		return list[:n]
	}
	return list
}
