package sorting

import (
	"fmt"
	"slices"
	"strings"

	"github.com/safatanc/course-library/pkg/propertymapping"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Direction is the direction of one ordering step
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Step orders by a single internal field
type Step struct {
	Field     string
	Direction Direction
}

// UnknownFieldError is returned for a field that cannot be sorted on
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown sort field %q", e.Field)
}

// Build parses an ordering string such as "name, age desc" and resolves every
// public field through mapping. The first step is the primary key; the rest
// break ties in order. A blank orderBy yields no steps.
func Build(orderBy string, mapping propertymapping.Mapping) ([]Step, error) {
	if strings.TrimSpace(orderBy) == "" {
		return nil, nil
	}

	var steps []Step
	for _, part := range strings.Split(orderBy, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, token, _ := strings.Cut(part, " ")
		ascending := !strings.EqualFold(strings.TrimSpace(token), string(Descending))

		value, ok := mapping.Lookup(name)
		if !ok {
			return nil, &UnknownFieldError{Field: name}
		}

		direction := Descending
		if ascending != value.Revert {
			direction = Ascending
		}
		for _, destination := range value.DestinationNames {
			steps = append(steps, Step{Field: destination, Direction: direction})
		}
	}
	return steps, nil
}

// ApplyToQuery appends the steps to a gorm query as ORDER BY columns. Internal
// field names are converted to column names with the connection's naming strategy.
func ApplyToQuery(db *gorm.DB, steps []Step) *gorm.DB {
	for _, step := range steps {
		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: db.NamingStrategy.ColumnName("", step.Field)},
			Desc:   step.Direction == Descending,
		})
	}
	return db
}

// Comparators maps an internal field name to a three-way comparison of two values
type Comparators[T any] map[string]func(a, b T) int

// SortSlice stably sorts items by the composed steps
func SortSlice[T any](items []T, steps []Step, comparators Comparators[T]) error {
	if len(steps) == 0 {
		return nil
	}

	compares := make([]func(a, b T) int, 0, len(steps))
	for _, step := range steps {
		compare, ok := comparators[step.Field]
		if !ok {
			return &UnknownFieldError{Field: step.Field}
		}
		if step.Direction == Descending {
			asc := compare
			compare = func(a, b T) int { return asc(b, a) }
		}
		compares = append(compares, compare)
	}

	slices.SortStableFunc(items, func(a, b T) int {
		for _, compare := range compares {
			if c := compare(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return nil
}
