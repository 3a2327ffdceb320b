package shift

import (
	"net/http"
	"strconv"

	"rota-console/internal/identity"
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
	l := zap.L().Named("shift.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("shift request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
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

func (h *Handler) Week(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var q WeekQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	filter, err := q.ToFilter(actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	result, err := h.service.Week(c.Request.Context(), actor, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))
	items, meta := response.Paginate(result.Items, page, pageSize)
	result.Items = items
	response.SuccessWithWarning(c, http.StatusOK, result, &meta, result.Warning)
}

func (h *Handler) CalendarShifts(c *gin.Context) {
	actor, filter, ok := h.calendarFilter(c)
	if !ok {
		return
	}
	shifts, err := h.service.CalendarShifts(c.Request.Context(), actor, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, shifts, nil)
}

// CalendarLeave ignores any status parameter; the feed is approved leave only.
func (h *Handler) CalendarLeave(c *gin.Context) {
	actor, filter, ok := h.calendarFilter(c)
	if !ok {
		return
	}
	leaves, err := h.service.CalendarLeave(c.Request.Context(), actor, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, leaves, nil)
}

func (h *Handler) calendarFilter(c *gin.Context) (identity.Identity, CalendarFilter, bool) {
	actor, ok := h.actor(c)
	if !ok {
		return identity.Identity{}, CalendarFilter{}, false
	}

	var q CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return identity.Identity{}, CalendarFilter{}, false
	}
	filter, err := q.ToFilter(actor)
	if err != nil {
		h.logger.Debug("calendar query rejected", zap.String("start", q.Start), zap.String("end", q.End))
		h.writeServiceError(c, err)
		return identity.Identity{}, CalendarFilter{}, false
	}
	return actor, filter, true
}
