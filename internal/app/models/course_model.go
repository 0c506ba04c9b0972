package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/safatanc/course-library/pkg/shaping"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:1500" json:"description"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"authorId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type CourseDto struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    uuid.UUID `json:"authorId"`
}

// CourseCreateRequest is also the body of a full update
type CourseCreateRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1500"`
}

type CourseUpdateRequest = CourseCreateRequest

type CoursePatchRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1500"`
}

type CoursesResourceParameters struct {
	OrderBy string `query:"orderBy"`
	Fields  string `query:"fields"`
}

func (c *Course) ToDto() CourseDto {
	return CourseDto{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		AuthorID:    c.AuthorID,
	}
}

func (r *CourseCreateRequest) ToEntity() *Course {
	return &Course{
		Title:       r.Title,
		Description: r.Description,
	}
}

// ApplyTo copies the request onto an existing course
func (r *CourseCreateRequest) ApplyTo(course *Course) {
	course.Title = r.Title
	course.Description = r.Description
}

// ApplyTo copies the provided fields onto an existing course
func (r *CoursePatchRequest) ApplyTo(course *Course) {
	if r.Title != nil {
		course.Title = *r.Title
	}
	if r.Description != nil {
		course.Description = *r.Description
	}
}

var CourseDtoFields = shaping.MustAccessors(
	shaping.Field[CourseDto]{Name: "id", Get: func(c CourseDto) any { return c.ID }},
	shaping.Field[CourseDto]{Name: "title", Get: func(c CourseDto) any { return c.Title }},
	shaping.Field[CourseDto]{Name: "description", Get: func(c CourseDto) any { return c.Description }},
	shaping.Field[CourseDto]{Name: "authorId", Get: func(c CourseDto) any { return c.AuthorID }},
)
