package leave

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"rota-console/internal/identity"
	leaveerrors "rota-console/internal/leave/errors"
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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) actor(c *gin.Context) (identity.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
	}
	return id, ok
}

func (h *Handler) leaveID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return 0, false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	filter, err := q.ToFilter(actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	items, meta := response.Paginate(result.Items, page, pageSize)
	result.Items = items

	if result.Warning != nil {
		h.logger.Warn("leave list degraded", zap.String("code", result.Warning.Code))
	}
	response.SuccessWithWarning(c, http.StatusOK, result, &meta, result.Warning)
}

// Export streams the unpaginated list as a spreadsheet. A degraded list is an
// error here since an empty file would look like a real answer.
func (h *Handler) Export(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	filter, err := q.ToFilter(actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if result.Warning != nil {
		h.writeServiceError(c, apperror.ErrRemoteUnavailable)
		return
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, result); err != nil {
		h.writeServiceError(c, apperror.ErrInternal.WithErr(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(result)))
	c.Data(http.StatusOK, exportMIME, buf.Bytes())
}

func (h *Handler) GetByID(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.leaveID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Draft(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	draft, err := h.service.Draft(c.Request.Context(), actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, draft, nil)
}

func (h *Handler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("create leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Transition(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.leaveID(c)
	if !ok {
		return
	}

	var req UpdateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("transition leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Transition(c.Request.Context(), actor, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.leaveID(c)
	if !ok {
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
