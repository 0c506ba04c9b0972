package services

import (
	"github.com/safatanc/course-library/internal/app/errors"
	"github.com/safatanc/course-library/internal/app/models"
	"github.com/safatanc/course-library/pkg/propertymapping"
	"github.com/safatanc/course-library/pkg/sorting"
)

// NewPropertyMappingRegistry registers how public DTO fields translate to entity
// fields. It fails at startup on any inconsistent registration.
func NewPropertyMappingRegistry() (*propertymapping.Registry, error) {
	return propertymapping.NewRegistry(
		propertymapping.For[models.AuthorDto, models.Author](map[string]propertymapping.Value{
			"id":           propertymapping.NewValue(false, "ID"),
			"mainCategory": propertymapping.NewValue(false, "MainCategory"),
			"age":          propertymapping.NewValue(true, "DateOfBirth"),
			"name":         propertymapping.NewValue(false, "FirstName", "LastName"),
		}),
		propertymapping.For[models.CourseDto, models.Course](map[string]propertymapping.Value{
			"id":          propertymapping.NewValue(false, "ID"),
			"title":       propertymapping.NewValue(false, "Title"),
			"description": propertymapping.NewValue(false, "Description"),
		}),
	)
}

// resolveSort turns a public ordering string into entity ordering steps
func resolveSort[TSource, TDestination any](registry *propertymapping.Registry, orderBy string) ([]sorting.Step, error) {
	mapping, err := propertymapping.GetMapping[TSource, TDestination](registry)
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Property mapping is not configured")
	}

	steps, err := sorting.Build(orderBy, mapping)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	return steps, nil
}
