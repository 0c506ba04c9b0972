package paging

import (
	"context"
	"fmt"
)

// Source is a countable, sliceable sequence
type Source[T any] interface {
	Count(ctx context.Context) (int64, error)
	Fetch(ctx context.Context, offset, limit int) ([]T, error)
}

// PagedList is one page of a sequence plus the metadata needed to navigate it
type PagedList[T any] struct {
	Items       []T
	CurrentPage int
	PageSize    int
	TotalCount  int
	TotalPages  int
}

// HasPrevious reports whether a page exists before the current one
func (p *PagedList[T]) HasPrevious() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a page exists after the current one
func (p *PagedList[T]) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// Metadata is the navigation summary serialized for clients
type Metadata struct {
	TotalCount       int    `json:"totalCount"`
	PageSize         int    `json:"pageSize"`
	CurrentPage      int    `json:"currentPage"`
	TotalPages       int    `json:"totalPages"`
	PreviousPageLink string `json:"previousPageLink,omitempty"`
	NextPageLink     string `json:"nextPageLink,omitempty"`
}

// Metadata returns the navigation summary without links
func (p *PagedList[T]) Metadata() Metadata {
	return Metadata{
		TotalCount:  p.TotalCount,
		PageSize:    p.PageSize,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
	}
}

// InvalidPageError is returned for a page number or size below one
type InvalidPageError struct {
	PageNumber int
	PageSize   int
}

func (e *InvalidPageError) Error() string {
	return fmt.Sprintf("invalid page request: pageNumber=%d pageSize=%d", e.PageNumber, e.PageSize)
}

// Create counts src, then fetches the requested 1-based page. Count and fetch are
// separate operations and may observe different states of a live store.
func Create[T any](ctx context.Context, src Source[T], pageNumber, pageSize int) (*PagedList[T], error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, &InvalidPageError{PageNumber: pageNumber, PageSize: pageSize}
	}

	total, err := src.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	items, err := src.Fetch(ctx, (pageNumber-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", pageNumber, err)
	}
	if items == nil {
		items = []T{}
	}

	return &PagedList[T]{
		Items:       items,
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		TotalCount:  int(total),
		TotalPages:  int((total + int64(pageSize) - 1) / int64(pageSize)),
	}, nil
}

// Map converts the items of a page, keeping its metadata
func Map[T, R any](p *PagedList[T], fn func(T) R) *PagedList[R] {
	items := make([]R, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return &PagedList[R]{
		Items:       items,
		CurrentPage: p.CurrentPage,
		PageSize:    p.PageSize,
		TotalCount:  p.TotalCount,
		TotalPages:  p.TotalPages,
	}
}
