package gateway

// Envelope is the uniform wrapper returned by every backend endpoint.
type Envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Code    int  `json:"code"`
}

// PageLinks carries optional cursor links of a paginated response.
type PageLinks struct {
	Next *string `json:"next,omitempty"`
	Prev *string `json:"prev,omitempty"`
}

// Pagination is the page block attached to list responses.
type Pagination struct {
	Count       int        `json:"count"`
	Total       int        `json:"total"`
	PerPage     int        `json:"perPage"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
	Links       *PageLinks `json:"links,omitempty"`
}

// PaginatedEnvelope is the envelope for list endpoints.
type PaginatedEnvelope[T any] struct {
	Success    bool       `json:"success"`
	Data       []T        `json:"data"`
	Code       int        `json:"code"`
	Pagination Pagination `json:"pagination"`
}

// errorEnvelope is the backend failure shape.
type errorEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Code    int                 `json:"code"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
