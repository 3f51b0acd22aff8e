// Package repository translates service calls into database queries, one repo
// per entity. Every database failure is wrapped into an apperr Access error
// carrying the entity and the attempted operation, so raw driver errors never
// travel past this layer. A nil result (without error) means "not found".
package repository

import (
	"errors"

	"github.com/solifood/foodlink/internal/apperr"
	"gorm.io/gorm"
)

// perPage is the fixed page size of every paginated listing.
const perPage = 8

// Page is one page of a paginated listing.
type Page[T any] struct {
	MaxPages int
	Items    []T
}

// selectOne runs First over an already-filtered query, mapping
// ErrRecordNotFound to a nil result.
func selectOne[T any](query *gorm.DB, entity string, id any) (*T, error) {
	var item T
	err := query.First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Access(entity, id, "getting", err)
	}
	return &item, nil
}

// selectAll runs Find over an already-filtered query; an empty result is
// reported as nil, distinct from a populated slice.
func selectAll[T any](query *gorm.DB, entity string) ([]T, error) {
	var items []T
	if err := query.Find(&items).Error; err != nil {
		return nil, apperr.Access(entity, nil, "getting", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

// selectPage runs the shared pagination sequence over an already-filtered
// query: count, bound-check the page, then fetch. Out-of-range pages return
// nil rather than an error.
func selectPage[T any](query *gorm.DB, model any, page int, entity string, preloads ...string) (*Page[T], error) {
	// count and fetch run on fresh sessions; reusing a statement after a
	// finisher is unsafe
	var total int64
	if err := query.Session(&gorm.Session{}).Model(model).Count(&total).Error; err != nil {
		return nil, apperr.Access(entity, nil, "getting", err)
	}
	if total == 0 || page < 1 {
		return nil, nil
	}
	pages := int((total + perPage - 1) / perPage)
	if page > pages {
		return nil, nil
	}
	fetch := query.Session(&gorm.Session{})
	for _, p := range preloads {
		fetch = fetch.Preload(p)
	}
	var items []T
	if err := fetch.Order("id").Limit(perPage).Offset((page - 1) * perPage).Find(&items).Error; err != nil {
		return nil, apperr.Access(entity, nil, "getting", err)
	}
	return &Page[T]{MaxPages: pages, Items: items}, nil
}

func contains(search string) string { return "%" + search + "%" }
