package listview

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// CriteriaFromRequest extracts filter criteria from the list query
// parameters shared by every list endpoint: q, status, category, range.
// Missing status/category default to "all"; page parameters are handled
// separately by pkg/pagination.
func CriteriaFromRequest(c echo.Context) Criteria {
	status := strings.TrimSpace(c.QueryParam("status"))
	if status == "" {
		status = All
	}
	category := strings.TrimSpace(c.QueryParam("category"))
	if category == "" {
		category = All
	}
	return Criteria{
		Query:     c.QueryParam("q"),
		Status:    status,
		Category:  category,
		DateRange: ParseDateRange(c.QueryParam("range")),
	}
}
