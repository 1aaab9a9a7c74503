package query

import "github.com/spec-kit/roster-service/internal/domain"

// Params are the inputs of one query execution.
type Params struct {
	Filters  Criteria
	Search   string
	Sort     SortSpec
	Page     int
	PageSize int
}

// Result is one ordered page plus the aggregate counts. Total counts records
// after filtering and before pagination.
type Result struct {
	Items     []domain.Employee
	Total     int
	Page      int
	PageSize  int
	PageCount int
}

// Execute runs the fixed pipeline: per-field filters, global free-text
// filter, sort, pagination. It only reads its inputs, so concurrent calls
// over the same snapshot are safe.
func Execute(records []domain.Employee, p Params) Result {
	filtered := Filter(records, p.Filters)
	filtered = GlobalSearch(filtered, p.Search)
	sorted := Sort(filtered, p.Sort)

	page := p.Page
	if page < 1 {
		page = 1
	}
	return Result{
		Items:     Page(sorted, page, p.PageSize),
		Total:     len(sorted),
		Page:      page,
		PageSize:  p.PageSize,
		PageCount: PageCount(len(sorted), p.PageSize),
	}
}
