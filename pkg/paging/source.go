package paging

import (
	"context"

	"gorm.io/gorm"
)

// SliceSource pages over an in-memory slice
type SliceSource[T any] struct {
	items []T
}

func NewSliceSource[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

func (s *SliceSource[T]) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *SliceSource[T]) Fetch(_ context.Context, offset, limit int) ([]T, error) {
	if offset >= len(s.items) {
		return []T{}, nil
	}
	end := min(offset+limit, len(s.items))
	return s.items[offset:end], nil
}

// GormSource pages over a filtered, ordered gorm query. The query is wrapped in a
// new session so the count and the fetch each start from the same conditions.
type GormSource[T any] struct {
	query *gorm.DB
}

func NewGormSource[T any](query *gorm.DB) *GormSource[T] {
	return &GormSource[T]{query: query.Session(&gorm.Session{})}
}

func (s *GormSource[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.query.WithContext(ctx).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *GormSource[T]) Fetch(ctx context.Context, offset, limit int) ([]T, error) {
	var items []T
	if err := s.query.WithContext(ctx).Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
