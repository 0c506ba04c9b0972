package services

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/google/uuid"
	"github.com/safatanc/course-library/internal/app/errors"
	"github.com/safatanc/course-library/internal/app/models"
	"github.com/safatanc/course-library/internal/infrastructures"
	"github.com/safatanc/course-library/pkg/paging"
	"github.com/safatanc/course-library/pkg/propertymapping"
	"github.com/safatanc/course-library/pkg/sorting"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type AuthorService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
	mappings  *propertymapping.Registry
}

func NewAuthorService(db *gorm.DB, validator *infrastructures.Validator, mappings *propertymapping.Registry) *AuthorService {
	return &AuthorService{
		db:        db,
		validator: validator,
		mappings:  mappings,
	}
}

// GetAuthors filters, orders and pages authors. params must already carry
// defaults; the page size is not clamped here.
func (s *AuthorService) GetAuthors(ctx context.Context, params *models.AuthorsResourceParameters) (*paging.PagedList[models.Author], error) {
	steps, err := resolveSort[models.AuthorDto, models.Author](s.mappings, params.OrderBy)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Model(&models.Author{})

	if mainCategory := strings.TrimSpace(params.MainCategory); mainCategory != "" {
		query = query.Where("main_category = ?", mainCategory)
	}

	if searchQuery := strings.TrimSpace(params.SearchQuery); searchQuery != "" {
		like := "%" + searchQuery + "%"
		query = query.Where("main_category ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", like, like, like)
	}

	query = sorting.ApplyToQuery(query, steps)

	page, err := paging.Create[models.Author](ctx, paging.NewGormSource[models.Author](query), params.PageNumber, params.PageSize)
	if err != nil {
		var invalid *paging.InvalidPageError
		if stdErrors.As(err, &invalid) {
			return nil, errors.NewBadRequestError(err.Error())
		}
		return nil, errors.NewInternalServerError(err, "Failed to get authors")
	}

	return page, nil
}

func (s *AuthorService) GetAuthor(ctx context.Context, authorId string) (*models.Author, error) {
	authorUUID, err := uuid.Parse(authorId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid author ID format")
	}

	var author models.Author
	err = s.db.WithContext(ctx).Where("id = ?", authorUUID).First(&author).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Author not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get author")
	}

	return &author, nil
}

func (s *AuthorService) AuthorExists(ctx context.Context, authorId uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Author{}).Where("id = ?", authorId).Count(&count).Error; err != nil {
		return false, errors.NewInternalServerError(err, "Failed to check author")
	}
	return count > 0, nil
}

func (s *AuthorService) CreateAuthor(ctx context.Context, req *models.AuthorCreateRequest) (*models.Author, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	author := newAuthor(req)
	if err := s.db.WithContext(ctx).Create(author).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create author")
	}

	return author, nil
}

func (s *AuthorService) DeleteAuthor(ctx context.Context, authorId string) error {
	author, err := s.GetAuthor(ctx, authorId)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", author.ID).Delete(&models.Course{}).Error; err != nil {
			return err
		}
		return tx.Delete(author).Error
	})
	if err != nil {
		return errors.NewInternalServerError(err, "Failed to delete author")
	}

	return nil
}

// GetAuthorCollection returns every requested author ordered by name, or a not
// found error if any of them is missing
func (s *AuthorService) GetAuthorCollection(ctx context.Context, ids []uuid.UUID) ([]models.Author, error) {
	ids = lo.Uniq(ids)

	var authors []models.Author
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&authors).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get authors")
	}

	if len(authors) != len(ids) {
		return nil, errors.NewNotFoundError("One or more authors not found")
	}

	steps, err := resolveSort[models.AuthorDto, models.Author](s.mappings, "name")
	if err != nil {
		return nil, err
	}
	if err := sorting.SortSlice(authors, steps, models.AuthorComparators); err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to sort authors")
	}

	return authors, nil
}

func (s *AuthorService) CreateAuthorCollection(ctx context.Context, reqs []models.AuthorCreateRequest) ([]models.Author, error) {
	if len(reqs) == 0 {
		return nil, errors.NewBadRequestError("No authors provided")
	}

	for i := range reqs {
		if err := s.validator.Validate(&reqs[i]); err != nil {
			return nil, err
		}
	}

	authors := lo.Map(reqs, func(req models.AuthorCreateRequest, _ int) models.Author {
		return *newAuthor(&req)
	})

	if err := s.db.WithContext(ctx).Create(&authors).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create authors")
	}

	return authors, nil
}

// newAuthor assigns identifiers on the service side instead of using identity columns
func newAuthor(req *models.AuthorCreateRequest) *models.Author {
	author := req.ToEntity()
	author.ID = uuid.New()
	for i := range author.Courses {
		author.Courses[i].ID = uuid.New()
		author.Courses[i].AuthorID = author.ID
	}
	return author
}
