package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/api/metrics"
	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// SessionCookie describes the cookie that carries the opaque session id.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (sc SessionCookie) Value(c echo.Context) string {
	cookie, err := c.Cookie(sc.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (sc SessionCookie) Set(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(sc.TTL.Seconds()),
		Expires:  time.Now().Add(sc.TTL),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (sc SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionResolver is the part of the auth service the gate needs.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*domain.Account, error)
	Refresh(ctx context.Context, sessionID string) error
}

// LoadSession resolves the session cookie, if any, and attaches the account
// to the context under "account". A cookie that no longer resolves is
// cleared and the request continues unauthenticated.
func LoadSession(resolver SessionResolver, cookie SessionCookie, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := cookie.Value(c)
			if sessionID == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			account, err := resolver.Resolve(ctx, sessionID)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					return err
				}
				metrics.SessionsRejectedTotal.Inc()
				cookie.Clear(c)
				return next(c)
			}

			if err := resolver.Refresh(ctx, sessionID); err != nil {
				log.Warn().Err(err).Str("account_id", account.ID).Msg("failed to refresh session")
			} else {
				cookie.Set(c, sessionID)
			}

			c.Set("account", account)
			return next(c)
		}
	}
}

// RequireSession rejects requests LoadSession did not authenticate.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get("account").(*domain.Account); !ok {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}
