package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

type paginationResponse struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func newPagination(p ports.PageInfo) paginationResponse {
	return paginationResponse{
		Total:       p.Total,
		Page:        p.Page,
		Limit:       p.Limit,
		TotalPages:  p.TotalPages,
		HasNextPage: p.HasNextPage,
		HasPrevPage: p.HasPrevPage,
	}
}

type listCoursesResponse struct {
	Courses    []*domain.Course   `json:"courses"`
	Pagination paginationResponse `json:"pagination"`
}

// Create handles POST /course.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      ports.CourseInput  true  "Course details"
// @Success      201   {object}  Response{data=domain.Course}
// @Failure      400   {object}  Response
// @Failure      403   {object}  Response
// @Router       /course [post]
func (h *CourseHandler) Create(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	var req ports.CourseInput
	if err := bind(c, &req); err != nil {
		return err
	}

	course, err := h.service.Create(c.Request().Context(), account, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Course created successfully", course)
}

// Get handles GET /course/:courseId.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        courseId  path      string  true  "Course id"
// @Success      200       {object}  Response{data=domain.Course}
// @Failure      400       {object}  Response
// @Failure      404       {object}  Response
// @Router       /course/{courseId} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.Get(c.Request().Context(), currentAccount(c), c.Param("courseId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Course retrieved successfully", course)
}

// List handles GET /course.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Param        page         query     int     false  "Page (default 1)"
// @Param        limit        query     int     false  "Page size (default 10, max 100)"
// @Param        category     query     string  false  "Category, partial and case-insensitive"
// @Param        ageGroup     query     string  false  "Age group"  Enums(3-5, 6-9, 10-12, 13+)
// @Param        instructor   query     string  false  "Teacher profile id"
// @Param        isPremium    query     bool    false  "Premium filter"
// @Param        isPublished  query     bool    false  "Published filter (teachers and admins)"
// @Param        sortBy       query     string  false  "createdAt, title, ageGroup or level"
// @Param        sortOrder    query     string  false  "asc or desc"
// @Success      200          {object}  Response{data=listCoursesResponse}
// @Failure      400          {object}  Response
// @Router       /course [get]
func (h *CourseHandler) List(c echo.Context) error {
	filter, err := parseCourseFilter(c)
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), currentAccount(c), filter)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Courses retrieved successfully", coursePageResponse(page))
}

// ListByCategory handles GET /course/category/:category.
//
// @Summary      List published courses of a category
// @Tags         courses
// @Produce      json
// @Param        category   path      string  true   "Category, partial and case-insensitive"
// @Param        page       query     int     false  "Page (default 1)"
// @Param        limit      query     int     false  "Page size (default 10, max 100)"
// @Param        sortBy     query     string  false  "createdAt, title, ageGroup or level"
// @Param        sortOrder  query     string  false  "asc or desc"
// @Success      200        {object}  Response{data=listCoursesResponse}
// @Failure      400        {object}  Response
// @Router       /course/category/{category} [get]
func (h *CourseHandler) ListByCategory(c echo.Context) error {
	filter := ports.ListCoursesFilter{
		SortBy:   c.QueryParam("sortBy"),
		SortDesc: !strings.EqualFold(c.QueryParam("sortOrder"), "asc"),
	}
	if err := bindPage(c, &filter.Page, &filter.Limit); err != nil {
		return err
	}

	category := c.Param("category")
	if unescaped, err := url.PathUnescape(category); err == nil {
		category = unescaped
	}

	page, err := h.service.ListByCategory(c.Request().Context(), category, filter)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Courses retrieved successfully", coursePageResponse(page))
}

func coursePageResponse(page *ports.CoursePage) listCoursesResponse {
	items := page.Items
	if items == nil {
		items = []*domain.Course{}
	}
	return listCoursesResponse{Courses: items, Pagination: newPagination(page.PageInfo)}
}

// Update handles PUT /course/:courseId.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        courseId  path      string             true  "Course id"
// @Param        body      body      ports.CourseInput  true  "Course details"
// @Success      200       {object}  Response{data=domain.Course}
// @Failure      400       {object}  Response
// @Failure      403       {object}  Response
// @Failure      404       {object}  Response
// @Router       /course/{courseId} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	var req ports.CourseInput
	if err := bind(c, &req); err != nil {
		return err
	}

	course, err := h.service.Update(c.Request().Context(), account, c.Param("courseId"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Course updated successfully", course)
}

// Delete handles DELETE /course/:courseId.
//
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Security     SessionCookie
// @Param        courseId  path      string  true  "Course id"
// @Success      200       {object}  Response
// @Failure      403       {object}  Response
// @Failure      404       {object}  Response
// @Router       /course/{courseId} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), account, c.Param("courseId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Course deleted successfully", nil)
}

func parseCourseFilter(c echo.Context) (ports.ListCoursesFilter, error) {
	f := ports.ListCoursesFilter{
		Category:     strings.TrimSpace(c.QueryParam("category")),
		AgeGroup:     c.QueryParam("ageGroup"),
		InstructorID: c.QueryParam("instructor"),
		SortBy:       c.QueryParam("sortBy"),
		SortDesc:     !strings.EqualFold(c.QueryParam("sortOrder"), "asc"),
	}

	if err := bindPage(c, &f.Page, &f.Limit); err != nil {
		return f, err
	}

	var err error
	if f.IsPremium, err = optionalBool(c, "isPremium"); err != nil {
		return f, err
	}
	if f.IsPublished, err = optionalBool(c, "isPublished"); err != nil {
		return f, err
	}
	return f, nil
}

func bindPage(c echo.Context, page, limit *int) error {
	err := echo.QueryParamsBinder(c).
		Int("page", page).
		Int("limit", limit).
		BindError()
	if err != nil {
		return domain.NewValidationError("page", "page and limit must be integers")
	}
	return nil
}

func optionalBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, name+" must be true or false")
	}
	return &v, nil
}
