package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// currentAccount returns the account LoadSession attached, or nil.
func currentAccount(c echo.Context) *domain.Account {
	account, _ := c.Get("account").(*domain.Account)
	return account
}

// requireAccount is the fast-fail check for handlers mounted behind
// RequireSession.
func requireAccount(c echo.Context) (*domain.Account, error) {
	account := currentAccount(c)
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	return account, nil
}
