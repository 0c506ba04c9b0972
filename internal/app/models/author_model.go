package models

import (
	"cmp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safatanc/course-library/pkg/shaping"
	"github.com/safatanc/course-library/pkg/sorting"
)

type Author struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName    string     `gorm:"size:50;not null" json:"firstName"`
	LastName     string     `gorm:"size:50;not null" json:"lastName"`
	DateOfBirth  time.Time  `gorm:"not null" json:"dateOfBirth"`
	DateOfDeath  *time.Time `json:"dateOfDeath,omitempty"`
	MainCategory string     `gorm:"size:50;not null" json:"mainCategory"`
	Courses      []Course   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"courses,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// AuthorDto is the public representation of an author. Name and Age are derived.
type AuthorDto struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	MainCategory string    `json:"mainCategory"`
}

type AuthorFullDto struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	MainCategory string    `json:"mainCategory"`
}

type AuthorCreateRequest struct {
	FirstName    string                `json:"firstName" validate:"required,max=50"`
	LastName     string                `json:"lastName" validate:"required,max=50"`
	DateOfBirth  time.Time             `json:"dateOfBirth" validate:"required"`
	DateOfDeath  *time.Time            `json:"dateOfDeath,omitempty"`
	MainCategory string                `json:"mainCategory" validate:"required,max=50"`
	Courses      []CourseCreateRequest `json:"courses,omitempty" validate:"omitempty,dive"`
}

// AuthorsResourceParameters are the query options of an author listing
type AuthorsResourceParameters struct {
	MainCategory string `query:"mainCategory"`
	SearchQuery  string `query:"searchQuery"`
	OrderBy      string `query:"orderBy"`
	Fields       string `query:"fields"`
	PageNumber   int    `query:"pageNumber"`
	PageSize     int    `query:"pageSize"`
}

// ApplyDefaults fills missing values and clamps the page size to maxPageSize
func (p *AuthorsResourceParameters) ApplyDefaults(defaultPageSize, maxPageSize int) {
	if strings.TrimSpace(p.OrderBy) == "" {
		p.OrderBy = "name"
	}
	if p.PageNumber <= 0 {
		p.PageNumber = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
}

// CurrentAge returns the age in whole years at now, or at the date of death if set
func CurrentAge(dateOfBirth time.Time, dateOfDeath *time.Time, now time.Time) int {
	until := now
	if dateOfDeath != nil {
		until = *dateOfDeath
	}

	age := until.Year() - dateOfBirth.Year()
	if until.Month() < dateOfBirth.Month() ||
		(until.Month() == dateOfBirth.Month() && until.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

func (a *Author) ToDto() AuthorDto {
	return AuthorDto{
		ID:           a.ID,
		Name:         a.FirstName + " " + a.LastName,
		Age:          CurrentAge(a.DateOfBirth, a.DateOfDeath, time.Now()),
		MainCategory: a.MainCategory,
	}
}

func (a *Author) ToFullDto() AuthorFullDto {
	return AuthorFullDto{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		DateOfBirth:  a.DateOfBirth,
		MainCategory: a.MainCategory,
	}
}

func (r *AuthorCreateRequest) ToEntity() *Author {
	author := &Author{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		DateOfBirth:  r.DateOfBirth,
		DateOfDeath:  r.DateOfDeath,
		MainCategory: r.MainCategory,
	}
	for _, course := range r.Courses {
		author.Courses = append(author.Courses, *course.ToEntity())
	}
	return author
}

// AuthorDtoFields is the shaping table of AuthorDto
var AuthorDtoFields = shaping.MustAccessors(
	shaping.Field[AuthorDto]{Name: "id", Get: func(a AuthorDto) any { return a.ID }},
	shaping.Field[AuthorDto]{Name: "name", Get: func(a AuthorDto) any { return a.Name }},
	shaping.Field[AuthorDto]{Name: "age", Get: func(a AuthorDto) any { return a.Age }},
	shaping.Field[AuthorDto]{Name: "mainCategory", Get: func(a AuthorDto) any { return a.MainCategory }},
)

// AuthorComparators orders authors in memory by entity field name
var AuthorComparators = sorting.Comparators[Author]{
	"ID":           func(a, b Author) int { return strings.Compare(a.ID.String(), b.ID.String()) },
	"FirstName":    func(a, b Author) int { return strings.Compare(a.FirstName, b.FirstName) },
	"LastName":     func(a, b Author) int { return strings.Compare(a.LastName, b.LastName) },
	"DateOfBirth":  func(a, b Author) int { return a.DateOfBirth.Compare(b.DateOfBirth) },
	"MainCategory": func(a, b Author) int { return cmp.Compare(a.MainCategory, b.MainCategory) },
}
