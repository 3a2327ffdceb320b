package lookup

import (
	"net/http"

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
	l := zap.L().Named("lookup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) LeaveFilters(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		httpErr := apperror.ToHTTP(apperror.ErrUnauthorized)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	filters, err := h.service.LeaveFilters(c.Request.Context(), actor)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("lookup request failed", zap.Int("status", httpErr.Status), zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, filters, nil)
}
