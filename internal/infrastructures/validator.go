package infrastructures

import (
	"github.com/go-playground/validator/v10"
	"github.com/safatanc/course-library/internal/app/errors"
	"github.com/safatanc/course-library/internal/app/models"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()
	validate.RegisterStructValidation(courseTitleDiffersFromDescription, models.CourseCreateRequest{})

	return &Validator{
		validate: validate,
	}
}

func (v *Validator) Validate(i interface{}) error {
	if i == nil {
		return errors.NewBadRequestError("Invalid request body")
	}

	err := v.validate.Struct(i)
	if err != nil {
		return errors.NewUnprocessableEntityError(err.Error())
	}
	return nil
}

func courseTitleDiffersFromDescription(sl validator.StructLevel) {
	course := sl.Current().Interface().(models.CourseCreateRequest)
	if course.Title == course.Description {
		sl.ReportError(course.Description, "Description", "description", "titlediffersfromdescription", "")
	}
}
