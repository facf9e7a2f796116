package httpapi

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aura/internal/auth"
	"aura/internal/domain"
	"aura/internal/observability"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "aura_request_id"
	userKey         = "aura_user"
)

// requestLogger assigns a request id, records metrics and logs one line per request
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)
		observability.ObserveHTTP(c.Request.Method, c.FullPath(), status, elapsed)

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		log.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", elapsed),
			slog.String("request_id", id),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// authRequired resolves the bearer token to the current user record
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			s.fail(c, fmt.Errorf("%w: access token required", auth.ErrInvalidToken))
			return
		}
		u, err := s.svc.Auth.Authenticate(c, token)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

// currentUser is set by authRequired; nil on public routes
func currentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

func (s *Server) rateLimited() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter != nil && !s.limiter.allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			s.fail(c, errTooManyRequests)
			return
		}
		c.Next()
	}
}
