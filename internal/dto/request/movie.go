package request

// MovieListRequest carries the query params of the movie listing.
// Sort uses the "column-direction" form, e.g. "rating-desc"; the
// service validates column and direction against its whitelist.
type MovieListRequest struct {
	PaginatedRequest
	Sort string `json:"sort"`
}
