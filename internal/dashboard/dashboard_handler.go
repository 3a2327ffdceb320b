package dashboard

import (
	"bytes"
	"net/http"
	"time"

	"rota-console/internal/middleware"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	now     func() time.Time
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, now: time.Now, logger: l}
}

func (h *Handler) Get(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		httpErr := apperror.ToHTTP(apperror.ErrUnauthorized)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	composite, err := h.service.Build(c.Request.Context(), actor, WindowFor(h.now()))
	if err != nil {
		h.logger.Warn("dashboard aborted", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.ErrRemoteUnavailable.WithErr(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	var warning *response.Notice
	if len(composite.Failures) > 0 {
		warning = &response.Notice{
			Code:    apperror.CodeServiceUnavailable,
			Message: "Some dashboard sections could not be loaded",
		}
	}
	response.SuccessWithWarning(c, http.StatusOK, composite, nil, warning)
}

// OnCallCalendar exports the upcoming on-call week as iCalendar. mine=true
// narrows it to the caller's own assignments.
func (h *Handler) OnCallCalendar(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		httpErr := apperror.ToHTTP(apperror.ErrUnauthorized)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	mine := c.Query("mine") == "true"
	employeeID, linked := actor.EmployeeID()
	if mine && !linked {
		httpErr := apperror.ToHTTP(apperror.ErrConfiguration)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	now := h.now()
	days, err := h.service.OnCall(c.Request.Context(), actor, WindowFor(now))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("on-call calendar failed", zap.Int("status", httpErr.Status), zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	if mine {
		days = FilterByEmployee(days, employeeID)
	}

	var buf bytes.Buffer
	if err := WriteOnCallCalendar(&buf, days, now); err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInternal.WithErr(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="on-call.ics"`)
	c.Data(http.StatusOK, calendarMIME, buf.Bytes())
}
