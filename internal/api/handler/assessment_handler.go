package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

// AssessmentHandler serves the /test routes.
type AssessmentHandler struct {
	service ports.AssessmentService
}

func NewAssessmentHandler(service ports.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

type lessonSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	CourseID string `json:"courseId"`
}

type listAssessmentsResponse struct {
	Tests      []*domain.Assessment `json:"tests"`
	Lesson     *lessonSummary       `json:"lessonInfo,omitempty"`
	Course     *courseSummary       `json:"courseInfo,omitempty"`
	Pagination paginationResponse   `json:"pagination"`
}

func assessmentPageResponse(page *ports.AssessmentPage) listAssessmentsResponse {
	items := page.Items
	if items == nil {
		items = []*domain.Assessment{}
	}
	resp := listAssessmentsResponse{
		Tests:      items,
		Course:     summarizeCourse(page.Course),
		Pagination: newPagination(page.PageInfo),
	}
	if page.Lesson != nil {
		resp.Lesson = &lessonSummary{ID: page.Lesson.ID, Title: page.Lesson.Title, CourseID: page.Lesson.CourseID}
	}
	return resp
}

// Create handles POST /test.
//
// @Summary      Create a test for a lesson
// @Tags         tests
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      ports.AssessmentInput  true  "Test details"
// @Success      201   {object}  Response{data=domain.Assessment}
// @Failure      400   {object}  Response
// @Failure      403   {object}  Response
// @Failure      404   {object}  Response
// @Router       /test [post]
func (h *AssessmentHandler) Create(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	var req ports.AssessmentInput
	if err := bind(c, &req); err != nil {
		return err
	}

	assessment, err := h.service.Create(c.Request().Context(), account, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Test created successfully", assessment)
}

// Get handles GET /test/:testId.
//
// @Summary      Get a test
// @Tags         tests
// @Produce      json
// @Param        testId  path      string  true  "Test id"
// @Success      200     {object}  Response{data=domain.Assessment}
// @Failure      400     {object}  Response
// @Failure      404     {object}  Response
// @Router       /test/{testId} [get]
func (h *AssessmentHandler) Get(c echo.Context) error {
	assessment, err := h.service.Get(c.Request().Context(), currentAccount(c), c.Param("testId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Test retrieved successfully", assessment)
}

// ListByLesson handles GET /test/lesson/:lessonId.
//
// @Summary      List the tests of a lesson
// @Tags         tests
// @Produce      json
// @Param        lessonId   path      string  true   "Lesson id"
// @Param        page       query     int     false  "Page (default 1)"
// @Param        limit      query     int     false  "Page size (default 10, max 100)"
// @Param        sortBy     query     string  false  "createdAt, title or totalPoints"
// @Param        sortOrder  query     string  false  "asc or desc (default)"
// @Success      200        {object}  Response{data=listAssessmentsResponse}
// @Failure      400        {object}  Response
// @Failure      404        {object}  Response
// @Router       /test/lesson/{lessonId} [get]
func (h *AssessmentHandler) ListByLesson(c echo.Context) error {
	filter, err := parseAssessmentFilter(c)
	if err != nil {
		return err
	}

	page, err := h.service.ListByLesson(c.Request().Context(), currentAccount(c), c.Param("lessonId"), filter)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Tests retrieved successfully", assessmentPageResponse(page))
}

// ListByCourse handles GET /test/course/:courseId.
//
// @Summary      List the tests of every lesson of a course
// @Tags         tests
// @Produce      json
// @Param        courseId   path      string  true   "Course id"
// @Param        page       query     int     false  "Page (default 1)"
// @Param        limit      query     int     false  "Page size (default 10, max 100)"
// @Param        sortBy     query     string  false  "createdAt, title or totalPoints"
// @Param        sortOrder  query     string  false  "asc or desc (default)"
// @Success      200        {object}  Response{data=listAssessmentsResponse}
// @Failure      400        {object}  Response
// @Failure      404        {object}  Response
// @Router       /test/course/{courseId} [get]
func (h *AssessmentHandler) ListByCourse(c echo.Context) error {
	filter, err := parseAssessmentFilter(c)
	if err != nil {
		return err
	}

	page, err := h.service.ListByCourse(c.Request().Context(), currentAccount(c), c.Param("courseId"), filter)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Tests retrieved successfully", assessmentPageResponse(page))
}

// Update handles PUT /test/:testId.
//
// @Summary      Update a test
// @Tags         tests
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        testId  path      string                 true  "Test id"
// @Param        body    body      ports.AssessmentInput  true  "Test details"
// @Success      200     {object}  Response{data=domain.Assessment}
// @Failure      400     {object}  Response
// @Failure      403     {object}  Response
// @Failure      404     {object}  Response
// @Router       /test/{testId} [put]
func (h *AssessmentHandler) Update(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	var req ports.AssessmentInput
	if err := bind(c, &req); err != nil {
		return err
	}

	assessment, err := h.service.Update(c.Request().Context(), account, c.Param("testId"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Test updated successfully", assessment)
}

// Delete handles DELETE /test/:testId.
//
// @Summary      Delete a test
// @Tags         tests
// @Produce      json
// @Security     SessionCookie
// @Param        testId  path      string  true  "Test id"
// @Success      200     {object}  Response
// @Failure      403     {object}  Response
// @Failure      404     {object}  Response
// @Router       /test/{testId} [delete]
func (h *AssessmentHandler) Delete(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), account, c.Param("testId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Test deleted successfully", nil)
}

func parseAssessmentFilter(c echo.Context) (ports.ListAssessmentsFilter, error) {
	f := ports.ListAssessmentsFilter{
		SortBy:   c.QueryParam("sortBy"),
		SortDesc: !strings.EqualFold(c.QueryParam("sortOrder"), "asc"),
	}
	err := bindPage(c, &f.Page, &f.Limit)
	return f, err
}
