package query

// State is the immutable current-view value: active filters, free-text term,
// sort and page. Every transition returns a new value; changing a filter or
// the search term resets the page to 1.
type State struct {
	Filters  Criteria
	Search   string
	Sort     SortSpec
	Page     int
	PageSize int
}

// NewState starts on page 1 with no constraints.
func NewState(pageSize int) State {
	return State{Filters: Criteria{}, Page: 1, PageSize: pageSize}
}

// WithFilters replaces the filter mapping and resets the page.
func (s State) WithFilters(filters Criteria) State {
	next := s
	next.Filters = cloneCriteria(filters)
	next.Page = 1
	return next
}

// WithSearch replaces the free-text term and resets the page.
func (s State) WithSearch(term string) State {
	next := s
	next.Search = term
	next.Page = 1
	return next
}

// WithSortToggle applies a header click on key.
func (s State) WithSortToggle(key string) State {
	next := s
	next.Sort = s.Sort.Toggle(key)
	return next
}

// WithSort sets an explicit sort spec.
func (s State) WithSort(spec SortSpec) State {
	next := s
	next.Sort = spec
	return next
}

// WithPage moves to the requested page.
func (s State) WithPage(page int) State {
	next := s
	if page < 1 {
		page = 1
	}
	next.Page = page
	return next
}

// WithPageSize changes the window size and resets the page.
func (s State) WithPageSize(size int) State {
	next := s
	if size > 0 {
		next.PageSize = size
	}
	next.Page = 1
	return next
}

// Params converts the state into execution inputs.
func (s State) Params() Params {
	return Params{
		Filters:  s.Filters,
		Search:   s.Search,
		Sort:     s.Sort,
		Page:     s.Page,
		PageSize: s.PageSize,
	}
}

func cloneCriteria(criteria Criteria) Criteria {
	out := make(Criteria, len(criteria))
	for field, values := range criteria {
		out[field] = append([]string{}, values...)
	}
	return out
}
