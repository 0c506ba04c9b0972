package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/safatanc/course-library/internal/app/errors"
	"github.com/safatanc/course-library/internal/app/models"
	"github.com/safatanc/course-library/internal/infrastructures"
	"github.com/safatanc/course-library/pkg/propertymapping"
	"github.com/safatanc/course-library/pkg/sorting"
	"gorm.io/gorm"
)

type CourseService struct {
	db            *gorm.DB
	validator     *infrastructures.Validator
	mappings      *propertymapping.Registry
	authorService *AuthorService
}

func NewCourseService(db *gorm.DB, validator *infrastructures.Validator, mappings *propertymapping.Registry, authorService *AuthorService) *CourseService {
	return &CourseService{
		db:            db,
		validator:     validator,
		mappings:      mappings,
		authorService: authorService,
	}
}

// requireAuthor parses authorId and checks the author exists
func (s *CourseService) requireAuthor(ctx context.Context, authorId string) (uuid.UUID, error) {
	authorUUID, err := uuid.Parse(authorId)
	if err != nil {
		return uuid.Nil, errors.NewBadRequestError("Invalid author ID format")
	}

	exists, err := s.authorService.AuthorExists(ctx, authorUUID)
	if err != nil {
		return uuid.Nil, err
	}
	if !exists {
		return uuid.Nil, errors.NewNotFoundError("Author not found")
	}

	return authorUUID, nil
}

func (s *CourseService) GetCoursesForAuthor(ctx context.Context, authorId string, params *models.CoursesResourceParameters) ([]models.Course, error) {
	authorUUID, err := s.requireAuthor(ctx, authorId)
	if err != nil {
		return nil, err
	}

	orderBy := params.OrderBy
	if strings.TrimSpace(orderBy) == "" {
		orderBy = "title"
	}
	steps, err := resolveSort[models.CourseDto, models.Course](s.mappings, orderBy)
	if err != nil {
		return nil, err
	}

	var courses []models.Course
	query := sorting.ApplyToQuery(s.db.WithContext(ctx).Where("author_id = ?", authorUUID), steps)
	if err := query.Find(&courses).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get courses")
	}

	return courses, nil
}

func (s *CourseService) GetCourseForAuthor(ctx context.Context, authorId, courseId string) (*models.Course, error) {
	authorUUID, err := s.requireAuthor(ctx, authorId)
	if err != nil {
		return nil, err
	}

	courseUUID, err := uuid.Parse(courseId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid course ID format")
	}

	course, err := s.findCourse(ctx, authorUUID, courseUUID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, errors.NewNotFoundError("Course not found")
	}

	return course, nil
}

// findCourse returns nil without an error when the author has no such course
func (s *CourseService) findCourse(ctx context.Context, authorId, courseId uuid.UUID) (*models.Course, error) {
	var course models.Course
	err := s.db.WithContext(ctx).Where("author_id = ? AND id = ?", authorId, courseId).First(&course).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.NewInternalServerError(err, "Failed to get course")
	}

	return &course, nil
}

func (s *CourseService) CreateCourseForAuthor(ctx context.Context, authorId string, req *models.CourseCreateRequest) (*models.Course, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	authorUUID, err := s.requireAuthor(ctx, authorId)
	if err != nil {
		return nil, err
	}

	return s.insertCourse(ctx, authorUUID, uuid.New(), req)
}

func (s *CourseService) insertCourse(ctx context.Context, authorId, courseId uuid.UUID, req *models.CourseCreateRequest) (*models.Course, error) {
	course := req.ToEntity()
	course.ID = courseId
	course.AuthorID = authorId

	if err := s.db.WithContext(ctx).Create(course).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create course")
	}

	return course, nil
}

// UpsertCourseForAuthor replaces a course, or creates it under the given id when
// it does not exist. created reports which happened.
func (s *CourseService) UpsertCourseForAuthor(ctx context.Context, authorId, courseId string, req *models.CourseUpdateRequest) (course *models.Course, created bool, err error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, false, err
	}

	return s.upsert(ctx, authorId, courseId, func(existing *models.Course) (*models.CourseCreateRequest, error) {
		return req, nil
	})
}

// PatchCourseForAuthor applies the provided fields to a course, creating it when
// it does not exist. The patched result is validated as a whole.
func (s *CourseService) PatchCourseForAuthor(ctx context.Context, authorId, courseId string, req *models.CoursePatchRequest) (course *models.Course, created bool, err error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, false, err
	}

	return s.upsert(ctx, authorId, courseId, func(existing *models.Course) (*models.CourseCreateRequest, error) {
		patched := models.Course{}
		if existing != nil {
			patched = *existing
		}
		req.ApplyTo(&patched)

		full := &models.CourseCreateRequest{Title: patched.Title, Description: patched.Description}
		if err := s.validator.Validate(full); err != nil {
			return nil, err
		}
		return full, nil
	})
}

func (s *CourseService) upsert(ctx context.Context, authorId, courseId string, build func(existing *models.Course) (*models.CourseCreateRequest, error)) (*models.Course, bool, error) {
	authorUUID, err := s.requireAuthor(ctx, authorId)
	if err != nil {
		return nil, false, err
	}

	courseUUID, err := uuid.Parse(courseId)
	if err != nil {
		return nil, false, errors.NewBadRequestError("Invalid course ID format")
	}

	existing, err := s.findCourse(ctx, authorUUID, courseUUID)
	if err != nil {
		return nil, false, err
	}

	req, err := build(existing)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		course, err := s.insertCourse(ctx, authorUUID, courseUUID, req)
		return course, true, err
	}

	req.ApplyTo(existing)
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, false, errors.NewInternalServerError(err, "Failed to update course")
	}

	return existing, false, nil
}

func (s *CourseService) DeleteCourseForAuthor(ctx context.Context, authorId, courseId string) error {
	course, err := s.GetCourseForAuthor(ctx, authorId, courseId)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(course).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete course")
	}

	return nil
}
