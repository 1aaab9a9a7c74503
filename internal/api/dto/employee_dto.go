package dto

// Records go over the wire in their domain shape: the same field names are
// embedded in the search instruction template, so there is exactly one
// serialization of an employee in the system.

// SearchRequest carries the natural-language query.
type SearchRequest struct {
	Query string `json:"query"`
}

// QueryMeta describes one result page.
type QueryMeta struct {
	Total     int `json:"total"`
	Page      int `json:"page"`
	PageSize  int `json:"page_size"`
	PageCount int `json:"page_count"`
}

// SearchMeta describes the outcome of one search invocation.
type SearchMeta struct {
	Outcome  string `json:"outcome"`
	Count    int    `json:"count"`
	Rejected int    `json:"rejected"`
	Message  string `json:"message"`
}
