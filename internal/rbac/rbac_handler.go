package rbac

import (
	"net/http"
	"strings"

	"rota-console/internal/domain"
	"rota-console/internal/middleware"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("rbac request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Permissions lists what the caller's role may do, for menu rendering.
func (h *Handler) Permissions(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	perms, err := h.service.Permissions(id.Role())
	if err != nil {
		h.writeError(c, apperror.ErrInternal.WithErr(err))
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{
		Role:        id.Role(),
		Permissions: perms,
	}, nil)
}

func (h *Handler) Check(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	allowed, err := h.service.Enforce(domain.EnforceRequest{
		Role:     id.Role(),
		Resource: strings.TrimSpace(req.Resource),
		Action:   strings.TrimSpace(req.Action),
	})
	if err != nil {
		h.writeError(c, apperror.ErrInternal.WithErr(err))
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}
