package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safatanc/course-library/internal/app/errors"
	"github.com/safatanc/course-library/internal/app/models"
	"github.com/safatanc/course-library/internal/app/pkg"
	"github.com/safatanc/course-library/internal/app/services"
	"github.com/safatanc/course-library/pkg/propertymapping"
	"github.com/safatanc/course-library/pkg/shaping"
)

type CourseHandler struct {
	courseService *services.CourseService
	mappings      *propertymapping.Registry
}

func NewCourseHandler(courseService *services.CourseService, mappings *propertymapping.Registry) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		mappings:      mappings,
	}
}

func (h *CourseHandler) RegisterRoutes(router fiber.Router) {
	courseGroup := router.Group("/api/authors/:authorId/courses")

	courseGroup.Get("/", h.GetCourses)
	courseGroup.Post("/", h.CreateCourse)
	courseGroup.Get("/:courseId", h.GetCourse)
	courseGroup.Put("/:courseId", h.UpdateCourse)
	courseGroup.Patch("/:courseId", h.PatchCourse)
	courseGroup.Delete("/:courseId", h.DeleteCourse)
}

func (h *CourseHandler) GetCourses(c *fiber.Ctx) error {
	var params models.CoursesResourceParameters
	if err := c.QueryParser(&params); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid query parameters"))
	}

	if !propertymapping.MappingExistsFor[models.CourseDto, models.Course](h.mappings, params.OrderBy) {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid orderBy: "+params.OrderBy))
	}
	if !models.CourseDtoFields.HasFields(params.Fields) {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid fields: "+params.Fields))
	}

	courses, err := h.courseService.GetCoursesForAuthor(c.UserContext(), c.Params("authorId"), &params)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	shaped := make([]*shaping.Object, 0, len(courses))
	for _, course := range courses {
		obj, err := shapeCourse(c, &course, params.Fields)
		if err != nil {
			return pkg.ErrorResponse(c, err)
		}
		shaped = append(shaped, obj)
	}

	return pkg.SuccessResponse(c, shaped)
}

func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	fields := c.Query("fields")
	if !models.CourseDtoFields.HasFields(fields) {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid fields: "+fields))
	}

	course, err := h.courseService.GetCourseForAuthor(c.UserContext(), c.Params("authorId"), c.Params("courseId"))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	obj, err := shapeCourse(c, course, fields)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, obj)
}

func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req models.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid request body"))
	}

	course, err := h.courseService.CreateCourseForAuthor(c.UserContext(), c.Params("authorId"), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return h.created(c, course)
}

// UpdateCourse replaces a course, creating it under the given id if it is missing
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	var req models.CourseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid request body"))
	}

	course, created, err := h.courseService.UpsertCourseForAuthor(c.UserContext(), c.Params("authorId"), c.Params("courseId"), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	if created {
		return h.created(c, course)
	}

	return pkg.NoContentResponse(c)
}

func (h *CourseHandler) PatchCourse(c *fiber.Ctx) error {
	var req models.CoursePatchRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid request body"))
	}

	course, created, err := h.courseService.PatchCourseForAuthor(c.UserContext(), c.Params("authorId"), c.Params("courseId"), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	if created {
		return h.created(c, course)
	}

	return pkg.NoContentResponse(c)
}

func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	if err := h.courseService.DeleteCourseForAuthor(c.UserContext(), c.Params("authorId"), c.Params("courseId")); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.NoContentResponse(c)
}

func (h *CourseHandler) created(c *fiber.Ctx, course *models.Course) error {
	obj, err := shapeCourse(c, course, "")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.CreatedResponse(c, c.BaseURL()+coursePath(course.AuthorID, course.ID), obj)
}

func shapeCourse(c *fiber.Ctx, course *models.Course, fields string) (*shaping.Object, error) {
	dto := course.ToDto()
	obj, err := models.CourseDtoFields.Shape(dto, fields)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	obj.Set("links", courseLinks(c, dto.AuthorID, dto.ID))
	return obj, nil
}
