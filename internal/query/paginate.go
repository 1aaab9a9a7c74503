package query

import "github.com/spec-kit/roster-service/internal/domain"

// Page slices out the 1-based page of the given size. A page past the end
// yields an empty slice, never an error.
func Page(records []domain.Employee, page, pageSize int) []domain.Employee {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return []domain.Employee{}
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []domain.Employee{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// PageCount is ceil(total / pageSize).
func PageCount(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
