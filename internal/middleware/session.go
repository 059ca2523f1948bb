package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/session"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type sessionLookup interface {
	Lookup(ctx context.Context, sessionID string) (string, error)
}

// Authenticate кладёт Principal в контекст запроса, если cookie сессии валидна.
// Запросы без сессии пропускаются дальше как анонимные.
func Authenticate(sessions sessionLookup, cookieName string, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			c.Next()
			return
		}

		userID, err := sessions.Lookup(c.Request.Context(), sid)
		if err != nil {
			if !errors.Is(err, domain.ErrNotAuthenticated) {
				log.Warn("session lookup failed",
					logger.String("request_id", c.GetString(RequestIDKey)),
					logger.String("error", err.Error()),
				)
			}
			c.Next()
			return
		}

		ctx := session.WithPrincipal(c.Request.Context(), domain.Principal{UserID: userID, SessionID: sid})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func RequireAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, ok := session.PrincipalFrom(c.Request.Context()); !ok {
			c.Set("error", domain.ErrNotAuthenticated.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"message": "User not authenticated"})
			return
		}
		c.Next()
	}
}
