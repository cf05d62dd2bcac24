package paddle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
)

// ListParams holds the query parameters shared by all paginated list endpoints.
// Resource-specific list params embed it and add their own filters.
type ListParams struct {
	// After is the cursor marking the starting point for the page. Usually
	// handled automatically by the Paginator.
	After string `url:"after,omitempty"`

	// OrderBy orders returned entities, formatted as "<field>[ASC]" or
	// "<field>[DESC]".
	OrderBy string `url:"order_by,omitempty"`

	// PerPage is a hint for how many entities to return per page.
	// Paddle caps this at 200 and may return fewer; termination of a
	// traversal is signaled by the response pagination keys, never by
	// page length.
	PerPage int `url:"per_page,omitempty"`
}

// Page is one fetched page of a paginated collection.
type Page[T any] struct {
	// Data holds the page's entities in API order.
	Data []T

	// RequestID identifies the request that produced this page.
	RequestID string

	// Pagination carries the raw pagination keys from the response.
	Pagination Pagination
}

// Paginator walks a paginated list endpoint one page at a time.
//
// A Paginator is bound to a single request and is strictly forward and
// single-use: once the final page has been fetched, further Next calls
// return nil. It is not safe for concurrent use; create one Paginator per
// traversal.
type Paginator[T any] struct {
	client *Client
	path   string
	query  url.Values
	done   bool
	err    error
}

// newPaginator binds a paginator to a list endpoint and its encoded filters.
// params may be nil or any struct with `url` tags.
func newPaginator[T any](c *Client, path string, params any) *Paginator[T] {
	p := &Paginator[T]{client: c, path: path}
	p.query, p.err = query.Values(params)
	return p
}

// Next fetches the next page of results.
//
// It returns (nil, nil) once the traversal is exhausted, i.e. after a page
// reported has_more=false or carried no usable next cursor. A page with zero
// items but has_more=true does not end the traversal. Errors from the
// transport or envelope decoding are returned unchanged and leave the cursor
// where it was.
func (p *Paginator[T]) Next(ctx context.Context) (*Page[T], error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.done {
		return nil, nil
	}

	u := p.client.baseURL + p.path
	if len(p.query) > 0 {
		u += "?" + p.query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var env listResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode list envelope: %w", err)
	}

	p.advance(env.Meta.Pagination)

	return &Page[T]{
		Data:       env.Data,
		RequestID:  env.Meta.RequestID,
		Pagination: env.Meta.Pagination,
	}, nil
}

// advance moves the cursor to the next page, or marks the traversal done.
// Paddle returns the next page as a full URL whose query carries the `after`
// cursor along with the original filters.
func (p *Paginator[T]) advance(pg Pagination) {
	if !pg.HasMore || pg.Next == "" {
		p.done = true
		return
	}

	next, err := url.Parse(pg.Next)
	if err != nil || next.Query().Get("after") == "" {
		// No usable cursor; treat the collection as exhausted rather than
		// refetching the same page forever.
		p.done = true
		return
	}

	p.path = next.Path
	p.query = next.Query()
}

// All fetches every remaining page and returns the concatenated items in
// page order.
//
// If any page fetch fails, the error is returned and partial results are
// discarded. Callers that need partial results should drive Next directly.
func (p *Paginator[T]) All(ctx context.Context) ([]T, error) {
	var items []T
	for {
		page, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return items, nil
		}
		items = append(items, page.Data...)
	}
}
