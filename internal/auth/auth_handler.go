package auth

import (
	"net/http"
	"time"

	"rota-console/internal/middleware"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
}

type Handler struct {
	service Service
	cookie  CookieConfig
	now     func() time.Time
	logger  *zap.Logger
}

func NewHandler(s Service, cookie CookieConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	if cookie.Name == "" {
		cookie.Name = "access_token"
	}
	return &Handler{service: s, cookie: cookie, now: time.Now, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	session, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	maxAge := int(session.ExpiresAt.Sub(h.now()).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	h.setSessionCookie(c, session.Token, maxAge)

	response.Success(c, http.StatusOK, LoginResponse{
		Username:    session.Username,
		ExpiresAt:   session.ExpiresAt,
		AccessToken: session.Token,
	}, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	if tokenID, expiresAt, ok := middleware.SessionToken(c); ok {
		if err := h.service.Logout(c.Request.Context(), tokenID, expiresAt); err != nil {
			h.writeServiceError(c, err)
			return
		}
	}

	h.setSessionCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{"signed_out": true}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	profile, err := h.service.Me(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile, nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"changed": true}, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	profile, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, profile, nil)
}
