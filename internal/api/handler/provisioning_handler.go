package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailymate/dailymate-api/internal/core/domain"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

// ProvisioningHandler exposes one create endpoint per role.
type ProvisioningHandler struct {
	service     ports.ProvisioningService
	authService ports.AuthService
}

func NewProvisioningHandler(service ports.ProvisioningService, authService ports.AuthService) *ProvisioningHandler {
	return &ProvisioningHandler{service: service, authService: authService}
}

type accountFields struct {
	Email    string `json:"email" example:"parent@example.com"`
	Password string `json:"password" example:"secret123"`
}

func (a accountFields) input() ports.AccountInput {
	in := ports.AccountInput{Email: a.Email, Password: a.Password}
	in.Normalize()
	return in
}

type createParentRequest struct {
	accountFields
	FullName    string `json:"fullName"`
	DateOfBirth *Date  `json:"dateOfBirth" swaggertype:"string" example:"1988-03-21"`
	Gender      string `json:"gender" enums:"male,female"`
	Image       string `json:"image"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

type createKidRequest struct {
	accountFields
	FullName    string `json:"fullName"`
	DateOfBirth Date   `json:"dateOfBirth" swaggertype:"string" example:"2016-07-15"`
	Gender      string `json:"gender" enums:"male,female"`
	ParentID    string `json:"parentId"`
}

type createTeacherRequest struct {
	accountFields
	FullName        string   `json:"fullName"`
	PhoneNumber     string   `json:"phoneNumber"`
	Specializations []string `json:"specializations"`
	Bio             string   `json:"bio"`
}

type createAdminRequest struct {
	accountFields
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

// CreateParent provisions a parent account and profile.
//
// @Summary      Create parent
// @Tags         provisioning
// @Accept       json
// @Produce      json
// @Param        body  body      createParentRequest  true  "Parent details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Failure      500   {object}  Response
// @Router       /parent/create [post]
func (h *ProvisioningHandler) CreateParent(c echo.Context) error {
	var req createParentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.service.ProvisionParent(c.Request().Context(), ports.ParentInput{
		AccountInput: req.input(),
		FullName:     req.FullName,
		DateOfBirth:  req.DateOfBirth.ptr(),
		Gender:       req.Gender,
		Image:        req.Image,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Parent created successfully", identity(res.Account, res.Profile))
}

// CreateKid provisions a kid. When the caller is signed in as a parent the
// kid is linked to that parent.
//
// @Summary      Create kid
// @Tags         provisioning
// @Accept       json
// @Produce      json
// @Param        body  body      createKidRequest  true  "Kid details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Failure      404   {object}  Response
// @Failure      500   {object}  Response
// @Router       /kid/create [post]
func (h *ProvisioningHandler) CreateKid(c echo.Context) error {
	var req createKidRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	parentID, err := h.sessionParentID(c)
	if err != nil {
		return err
	}
	if parentID == "" {
		parentID = req.ParentID
	}

	res, err := h.service.ProvisionKid(c.Request().Context(), ports.KidInput{
		AccountInput: req.input(),
		FullName:     req.FullName,
		DateOfBirth:  req.DateOfBirth.Time,
		Gender:       req.Gender,
		ParentID:     parentID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Kid created successfully", identity(res.Account, res.Profile))
}

// CreateTeacher provisions a teacher. Admin only.
//
// @Summary      Create teacher
// @Tags         provisioning
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createTeacherRequest  true  "Teacher details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Failure      403   {object}  Response
// @Router       /teacher/create [post]
func (h *ProvisioningHandler) CreateTeacher(c echo.Context) error {
	var req createTeacherRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.service.ProvisionTeacher(c.Request().Context(), ports.TeacherInput{
		AccountInput:    req.input(),
		FullName:        req.FullName,
		PhoneNumber:     req.PhoneNumber,
		Specializations: req.Specializations,
		Bio:             req.Bio,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Teacher created successfully", identity(res.Account, res.Profile))
}

// CreateAdmin provisions an admin. Admin only.
//
// @Summary      Create admin
// @Tags         provisioning
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createAdminRequest  true  "Admin details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Failure      403   {object}  Response
// @Router       /admin/create [post]
func (h *ProvisioningHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.service.ProvisionAdmin(c.Request().Context(), ports.AdminInput{
		AccountInput: req.input(),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Admin created successfully", identity(res.Account, res.Profile))
}

func (h *ProvisioningHandler) sessionParentID(c echo.Context) (string, error) {
	account := currentAccount(c)
	if account == nil || account.Role != domain.RoleParent {
		return "", nil
	}
	principal, err := h.authService.Status(c.Request().Context(), account)
	if err != nil {
		return "", err
	}
	if parent, ok := principal.Profile.(*domain.ParentProfile); ok {
		return parent.ID, nil
	}
	return "", nil
}
