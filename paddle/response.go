package paddle

// Meta carries information about an API response.
type Meta struct {
	// RequestID uniquely identifies the request. Provide it when contacting
	// Paddle support about a specific call.
	RequestID string `json:"request_id"`
}

// Pagination holds the keys Paddle returns for working with paginated results.
type Pagination struct {
	// PerPage is the number of entities per page for this response. May differ
	// from the number requested if the requested number exceeds the maximum.
	PerPage int `json:"per_page"`

	// Next is a URL containing the query parameters of the original request
	// along with the `after` cursor for the next page. Always returned, even
	// when HasMore is false.
	Next string `json:"next"`

	// HasMore reports whether the collection has another page.
	HasMore bool `json:"has_more"`

	// EstimatedTotal is the estimated number of entities in the collection.
	EstimatedTotal int `json:"estimated_total"`
}

// entityResponse is the envelope Paddle wraps single-entity responses in.
type entityResponse[T any] struct {
	Data T    `json:"data"`
	Meta Meta `json:"meta"`
}

// listMeta is the meta object on list responses, which adds pagination keys.
type listMeta struct {
	RequestID  string     `json:"request_id"`
	Pagination Pagination `json:"pagination"`
}

// listResponse is the envelope Paddle wraps collection responses in.
type listResponse[T any] struct {
	Data []T      `json:"data"`
	Meta listMeta `json:"meta"`
}
