package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailymate/dailymate-api/internal/api/middleware"
	"github.com/dailymate/dailymate-api/internal/core/ports"
)

type AuthHandler struct {
	authService  ports.AuthService
	verification ports.VerificationService
	cookie       middleware.SessionCookie
}

func NewAuthHandler(authService ports.AuthService, verification ports.VerificationService, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, verification: verification, cookie: cookie}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type userResponse struct {
	User map[string]any `json:"user"`
}

// Login authenticates with email and password and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Response{data=userResponse}
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Failure      429   {object}  Response
// @Router       /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, h.cookie.Value(c))
	if err != nil {
		return err
	}

	h.cookie.Set(c, res.SessionID)
	return respond(c, http.StatusOK, "Login successful", userResponse{
		User: identity(res.Principal.Account, res.Principal.Profile),
	})
}

// Status returns the principal behind the session cookie.
//
// @Summary      Session status
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  Response{data=userResponse}
// @Failure      401  {object}  Response
// @Router       /auth/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	principal, err := h.authService.Status(c.Request().Context(), account)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Authenticated", userResponse{
		User: identity(principal.Account, principal.Profile),
	})
}

// Logout destroys the current session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), h.cookie.Value(c)); err != nil {
		return err
	}
	h.cookie.Clear(c)
	return respond(c, http.StatusOK, "Logged out successfully", nil)
}

// ChangePassword replaces the password of the signed-in account.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      ports.ChangePasswordInput  true  "Current and new password"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Router       /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	account, err := requireAccount(c)
	if err != nil {
		return err
	}

	var req ports.ChangePasswordInput
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.authService.ChangePassword(c.Request().Context(), account.ID, req); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Password changed successfully", nil)
}

// SendVerification mails a fresh email-verification code.
//
// @Summary      Send verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      emailRequest  true  "Account email"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      404   {object}  Response
// @Failure      500   {object}  Response
// @Router       /auth/send-verification [post]
func (h *AuthHandler) SendVerification(c echo.Context) error {
	var req emailRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.verification.SendVerification(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Verification code sent to your email", nil)
}

// VerifyEmail redeems a verification code.
//
// @Summary      Verify email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyEmailRequest  true  "Email and code"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Router       /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.verification.VerifyEmail(c.Request().Context(), req.Email, req.Code); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Email verified successfully", nil)
}

// ForgotPassword mails a password-reset code.
//
// @Summary      Forgot password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      emailRequest  true  "Account email"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      404   {object}  Response
// @Failure      500   {object}  Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req emailRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.verification.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Password reset code sent to your email", nil)
}

// ResetPassword redeems a reset code and sets a new password.
//
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.ResetPasswordInput  true  "Email, code and new password"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ports.ResetPasswordInput
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.verification.ResetPassword(c.Request().Context(), req); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Password reset successfully", nil)
}
