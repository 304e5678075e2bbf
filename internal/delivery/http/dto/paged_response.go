package dto

// PagedResponse wraps offset-paginated admin listings.
type PagedResponse struct {
	Items  any   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
