package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

type KidHandler struct {
	service ports.KidService
}

func NewKidHandler(service ports.KidService) *KidHandler {
	return &KidHandler{service: service}
}

type updateKidRequest struct {
	FullName        *string        `json:"fullName"`
	DateOfBirth     *Date          `json:"dateOfBirth" swaggertype:"string"`
	Gender          *string        `json:"gender"`
	Avatar          *string        `json:"avatar"`
	UnlockedAvatars []string       `json:"unlockedAvatars"`
	Points          *int           `json:"points"`
	Level           *int           `json:"level"`
	Streak          *domain.Streak `json:"streak"`
}

type kidsOfParentResponse struct {
	Parent *domain.ParentProfile `json:"parent"`
	Kids   []*domain.KidProfile  `json:"kids"`
	Count  int                   `json:"count"`
}

// Get handles GET /kid/:kidId.
//
// @Summary      Get a kid profile
// @Tags         kids
// @Produce      json
// @Security     SessionCookie
// @Param        kidId  path      string  true  "Kid profile id"
// @Success      200    {object}  Response{data=domain.KidProfile}
// @Failure      400    {object}  Response
// @Failure      403    {object}  Response
// @Failure      404    {object}  Response
// @Router       /kid/{kidId} [get]
func (h *KidHandler) Get(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	kid, err := h.service.Get(c.Request().Context(), account, c.Param("kidId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Kid retrieved successfully", kid)
}

// Update handles PUT /kid/:kidId. Omitted fields are left unchanged.
//
// @Summary      Update a kid profile
// @Tags         kids
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        kidId  path      string            true  "Kid profile id"
// @Param        body   body      updateKidRequest  true  "Fields to change"
// @Success      200    {object}  Response{data=domain.KidProfile}
// @Failure      400    {object}  Response
// @Failure      403    {object}  Response
// @Failure      404    {object}  Response
// @Router       /kid/{kidId} [put]
func (h *KidHandler) Update(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	var req updateKidRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	kid, err := h.service.Update(c.Request().Context(), account, c.Param("kidId"), ports.KidUpdate{
		FullName:        req.FullName,
		DateOfBirth:     req.DateOfBirth.ptr(),
		Gender:          req.Gender,
		Avatar:          req.Avatar,
		UnlockedAvatars: req.UnlockedAvatars,
		Points:          req.Points,
		Level:           req.Level,
		Streak:          req.Streak,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Kid updated successfully", kid)
}

// Delete handles DELETE /kid/:kidId. The kid's account goes with it.
//
// @Summary      Delete a kid
// @Tags         kids
// @Produce      json
// @Security     SessionCookie
// @Param        kidId  path      string  true  "Kid profile id"
// @Success      200    {object}  Response
// @Failure      403    {object}  Response
// @Failure      404    {object}  Response
// @Router       /kid/{kidId} [delete]
func (h *KidHandler) Delete(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), account, c.Param("kidId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Kid deleted successfully", nil)
}

// ListByParent handles GET /kid/parent/:parentId.
//
// @Summary      List a parent's kids
// @Tags         kids
// @Produce      json
// @Security     SessionCookie
// @Param        parentId  path      string  true  "Parent profile id"
// @Success      200       {object}  Response{data=kidsOfParentResponse}
// @Failure      403       {object}  Response
// @Failure      404       {object}  Response
// @Router       /kid/parent/{parentId} [get]
func (h *KidHandler) ListByParent(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	res, err := h.service.ListByParent(c.Request().Context(), account, c.Param("parentId"))
	if err != nil {
		return err
	}
	kids := res.Kids
	if kids == nil {
		kids = []*domain.KidProfile{}
	}
	return respond(c, http.StatusOK, "Kids retrieved successfully", kidsOfParentResponse{
		Parent: res.Parent,
		Kids:   kids,
		Count:  len(kids),
	})
}
