package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

type LessonHandler struct {
	service ports.LessonService
}

func NewLessonHandler(service ports.LessonService) *LessonHandler {
	return &LessonHandler{service: service}
}

type courseSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

func summarizeCourse(c *domain.Course) *courseSummary {
	if c == nil {
		return nil
	}
	return &courseSummary{ID: c.ID, Title: c.Title, Category: c.Category}
}

type listLessonsResponse struct {
	Lessons    []*domain.Lesson   `json:"lessons"`
	Course     *courseSummary     `json:"courseInfo"`
	Pagination paginationResponse `json:"pagination"`
}

// Create handles POST /lesson.
//
// @Summary      Create a lesson
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      ports.LessonInput  true  "Lesson details"
// @Success      201   {object}  Response{data=domain.Lesson}
// @Failure      400   {object}  Response
// @Failure      403   {object}  Response
// @Failure      404   {object}  Response
// @Router       /lesson [post]
func (h *LessonHandler) Create(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	var req ports.LessonInput
	if err := bind(c, &req); err != nil {
		return err
	}

	lesson, err := h.service.Create(c.Request().Context(), account, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Lesson created successfully", lesson)
}

// Get handles GET /lesson/:lessonId.
//
// @Summary      Get a lesson
// @Tags         lessons
// @Produce      json
// @Param        lessonId  path      string  true  "Lesson id"
// @Success      200       {object}  Response{data=domain.Lesson}
// @Failure      400       {object}  Response
// @Failure      404       {object}  Response
// @Router       /lesson/{lessonId} [get]
func (h *LessonHandler) Get(c echo.Context) error {
	lesson, err := h.service.Get(c.Request().Context(), currentAccount(c), c.Param("lessonId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Lesson retrieved successfully", lesson)
}

// ListByCourse handles GET /lesson/course/:courseId.
//
// @Summary      List the lessons of a course
// @Tags         lessons
// @Produce      json
// @Param        courseId     path      string  true   "Course id"
// @Param        page         query     int     false  "Page (default 1)"
// @Param        limit        query     int     false  "Page size (default 10, max 100)"
// @Param        isPublished  query     bool    false  "Published filter (teachers and admins)"
// @Param        sortBy       query     string  false  "order, title, createdAt or updatedAt"
// @Param        sortOrder    query     string  false  "asc (default) or desc"
// @Success      200          {object}  Response{data=listLessonsResponse}
// @Failure      400          {object}  Response
// @Failure      404          {object}  Response
// @Router       /lesson/course/{courseId} [get]
func (h *LessonHandler) ListByCourse(c echo.Context) error {
	filter := ports.ListLessonsFilter{
		SortBy:   c.QueryParam("sortBy"),
		SortDesc: strings.EqualFold(c.QueryParam("sortOrder"), "desc"),
	}
	if err := bindPage(c, &filter.Page, &filter.Limit); err != nil {
		return err
	}
	var err error
	if filter.IsPublished, err = optionalBool(c, "isPublished"); err != nil {
		return err
	}

	page, err := h.service.ListByCourse(c.Request().Context(), currentAccount(c), c.Param("courseId"), filter)
	if err != nil {
		return err
	}

	items := page.Items
	if items == nil {
		items = []*domain.Lesson{}
	}
	return respond(c, http.StatusOK, "Lessons retrieved successfully", listLessonsResponse{
		Lessons:    items,
		Course:     summarizeCourse(page.Course),
		Pagination: newPagination(page.PageInfo),
	})
}

// Update handles PUT /lesson/:lessonId.
//
// @Summary      Update a lesson
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        lessonId  path      string             true  "Lesson id"
// @Param        body      body      ports.LessonInput  true  "Lesson details"
// @Success      200       {object}  Response{data=domain.Lesson}
// @Failure      400       {object}  Response
// @Failure      403       {object}  Response
// @Failure      404       {object}  Response
// @Router       /lesson/{lessonId} [put]
func (h *LessonHandler) Update(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	var req ports.LessonInput
	if err := bind(c, &req); err != nil {
		return err
	}

	lesson, err := h.service.Update(c.Request().Context(), account, c.Param("lessonId"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Lesson updated successfully", lesson)
}

// Delete handles DELETE /lesson/:lessonId.
//
// @Summary      Delete a lesson and its tests
// @Tags         lessons
// @Produce      json
// @Security     SessionCookie
// @Param        lessonId  path      string  true  "Lesson id"
// @Success      200       {object}  Response
// @Failure      403       {object}  Response
// @Failure      404       {object}  Response
// @Router       /lesson/{lessonId} [delete]
func (h *LessonHandler) Delete(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), account, c.Param("lessonId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Lesson deleted successfully", nil)
}
