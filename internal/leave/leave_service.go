package leave

import (
	"context"
	"net/http"
	"time"

	"rota-console/internal/domain"
	"rota-console/internal/events"
	"rota-console/internal/gateway"
	"rota-console/internal/identity"
	leaveerrors "rota-console/internal/leave/errors"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/contextutil"
	"rota-console/internal/shared/response"

	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor identity.Identity, req CreateLeaveRequest) (LeaveResponse, error)
	Transition(ctx context.Context, actor identity.Identity, id int, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actor identity.Identity, id int) (LeaveResponse, error)
	List(ctx context.Context, actor identity.Identity, filter ListFilter) (ListResult, error)
	Get(ctx context.Context, actor identity.Identity, id int) (LeaveResponse, error)
	Draft(ctx context.Context, actor identity.Identity) (LeaveDraft, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, actor identity.Identity, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.Stringer("actor", actor),
		zap.Int("employee_id", req.EmployeeID),
		zap.Int("leave_type_id", req.LeaveTypeID),
		zap.Time("start", req.LeaveStartDateTime),
		zap.Time("end", req.LeaveEndDateTime),
	)

	if actor.IsUnidentified() {
		s.logger.Warn("create leave refused, employee linkage missing", zap.String("username", actor.Username()))
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotLinked
	}
	if !req.LeaveEndDateTime.After(req.LeaveStartDateTime) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	employeeID := req.EmployeeID
	if !actor.IsAdmin() {
		own, _ := actor.EmployeeID()
		if employeeID == 0 {
			employeeID = own
		}
		if employeeID != own {
			s.logger.Warn("create leave for another employee refused",
				zap.Stringer("actor", actor),
				zap.Int("employee_id", employeeID),
			)
			return LeaveResponse{}, leaveerrors.ErrFileForSelfOnly
		}
	}
	if employeeID == 0 {
		return LeaveResponse{}, apperror.RequiredField("employee_id")
	}

	created, err := s.repo.Create(ctx, domain.CreateLeaveRequest{
		EmployeeID:         employeeID,
		LeaveTypeID:        req.LeaveTypeID,
		LeaveStartDateTime: req.LeaveStartDateTime.UTC(),
		LeaveEndDateTime:   req.LeaveEndDateTime.UTC(),
		Reason:             req.Reason,
	})
	if err != nil {
		s.logger.Warn("create leave rejected by gateway", zap.Error(err))
		switch gateway.StatusCode(err) {
		case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
			rejected := leaveerrors.ErrLeaveRejectedByGateway.WithErr(err)
			if detail := gateway.Detail(err); detail != "" {
				rejected.Message = detail
			}
			return LeaveResponse{}, rejected
		}
		return LeaveResponse{}, gateway.ToAppError(err)
	}

	s.logger.Info("create leave success",
		zap.Int("leave_id", created.LeaveRequestID),
		zap.Int("employee_id", created.EmployeeID),
	)
	s.publish(ctx, actor, events.EventLeaveRequested, "", created)

	return mapToResponse(created, actor), nil
}

func (s *service) Transition(ctx context.Context, actor identity.Identity, id int, req UpdateLeaveStatusRequest) (LeaveResponse, error) {
	s.logger.Debug("transition leave status requested",
		zap.Stringer("actor", actor),
		zap.Int("leave_id", id),
		zap.Stringer("target_status", req.NewStatus),
	)

	if req.NewStatus != domain.LeaveStatusApproved && req.NewStatus != domain.LeaveStatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidTargetStatus
	}
	if !actor.IsAdmin() {
		s.logger.Warn("transition leave status refused, actor is not admin", zap.Stringer("actor", actor))
		return LeaveResponse{}, leaveerrors.ErrDecisionAdminOnly
	}

	updated, err := s.repo.UpdateStatus(ctx, id, domain.UpdateLeaveStatus{
		NewStatus:     req.NewStatus,
		ApproverNotes: req.ApproverNotes,
	})
	if err != nil {
		s.logger.Warn("transition leave status failed",
			zap.Int("leave_id", id),
			zap.Int("gateway_status", gateway.StatusCode(err)),
			zap.Error(err),
		)
		return LeaveResponse{}, mapGatewayError(err, map[int]*apperror.AppError{
			http.StatusBadRequest: leaveerrors.ErrNoLongerPending,
			http.StatusConflict:   leaveerrors.ErrNoLongerPending,
			http.StatusNotFound:   leaveerrors.ErrLeaveNotFound,
		})
	}

	s.logger.Info("transition leave status success",
		zap.Int("leave_id", id),
		zap.Stringer("status", updated.Status),
	)
	s.publish(ctx, actor, events.EventLeaveDecided, domain.LeaveStatusPending.String(), updated)

	return mapToResponse(updated, actor), nil
}

func (s *service) Cancel(ctx context.Context, actor identity.Identity, id int) (LeaveResponse, error) {
	s.logger.Debug("cancel leave requested", zap.Stringer("actor", actor), zap.Int("leave_id", id))

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapGatewayError(err, map[int]*apperror.AppError{
			http.StatusNotFound: leaveerrors.ErrLeaveNotFound,
		})
	}

	if !canCancel(actor, current) {
		s.logger.Warn("cancel leave refused",
			zap.Stringer("actor", actor),
			zap.Int("leave_id", id),
			zap.Int("owner_employee_id", current.EmployeeID),
			zap.Stringer("status", current.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrCancelNotAllowed
	}

	if err := s.repo.Cancel(ctx, id); err != nil {
		s.logger.Warn("cancel leave failed at gateway",
			zap.Int("leave_id", id),
			zap.Int("gateway_status", gateway.StatusCode(err)),
			zap.Error(err),
		)
		return LeaveResponse{}, mapCancelError(err)
	}

	from := current.Status
	current.Status = domain.LeaveStatusCancelled
	s.logger.Info("cancel leave success", zap.Int("leave_id", id), zap.Stringer("from_status", from))
	s.publish(ctx, actor, events.EventLeaveCancelled, from.String(), current)

	return mapToResponse(current, actor), nil
}

func (s *service) List(ctx context.Context, actor identity.Identity, filter ListFilter) (ListResult, error) {
	start, end := s.listWindow(filter)
	if end.Before(start) {
		return ListResult{}, leaveerrors.ErrInvalidListRange
	}

	query := domain.LeaveRequestFilter{
		StartDate:   &start,
		EndDate:     &end,
		LeaveTypeID: filter.LeaveTypeID,
		Status:      filter.Status,
	}
	// Non-admins are scoped by the Gateway from their credential.
	if actor.IsAdmin() {
		query.EmployeeID = filter.EmployeeID
		query.TeamID = filter.TeamID
	} else if filter.EmployeeID != nil || filter.TeamID != nil {
		s.logger.Debug("discarding employee/team filter for non-admin", zap.Stringer("actor", actor))
	}

	result := ListResult{
		StartDate: start.Format(domain.DateLayout),
		EndDate:   end.Format(domain.DateLayout),
		Items:     []LeaveResponse{},
	}

	items, err := s.repo.List(ctx, query)
	if err != nil {
		switch gateway.StatusCode(err) {
		case http.StatusForbidden, http.StatusUnauthorized:
			return ListResult{}, gateway.ToAppError(err)
		}
		s.logger.Warn("list leave degraded to empty result", zap.Error(err))
		httpErr := apperror.ToHTTP(gateway.ToAppError(err))
		result.Warning = &response.Notice{Code: httpErr.Code, Message: httpErr.Message}
		return result, nil
	}

	for _, item := range items {
		result.Items = append(result.Items, mapToResponse(item, actor))
	}
	return result, nil
}

func (s *service) Get(ctx context.Context, actor identity.Identity, id int) (LeaveResponse, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapGatewayError(err, map[int]*apperror.AppError{
			http.StatusNotFound: leaveerrors.ErrLeaveNotFound,
		})
	}

	if !actor.IsAdmin() && !actor.Owns(l.EmployeeID) {
		s.logger.Warn("get leave refused",
			zap.Stringer("actor", actor),
			zap.Int("leave_id", id),
			zap.Int("owner_employee_id", l.EmployeeID),
		)
		return LeaveResponse{}, leaveerrors.ErrViewNotAllowed
	}
	return mapToResponse(l, actor), nil
}

func (s *service) Draft(_ context.Context, actor identity.Identity) (LeaveDraft, error) {
	if actor.IsUnidentified() {
		return LeaveDraft{}, leaveerrors.ErrEmployeeNotLinked
	}

	now := s.now().UTC()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	draft := LeaveDraft{
		LeaveStartDateTime: tomorrow.Add(9 * time.Hour),
		LeaveEndDateTime:   tomorrow.Add(17 * time.Hour),
	}
	if !actor.IsAdmin() {
		own, _ := actor.EmployeeID()
		draft.EmployeeID = &own
	}
	return draft, nil
}

// listWindow defaults to the current calendar month.
func (s *service) listWindow(filter ListFilter) (time.Time, time.Time) {
	var start time.Time
	if filter.StartDate != nil {
		start = *filter.StartDate
	} else {
		now := s.now().UTC()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	end := start.AddDate(0, 1, -1)
	if filter.EndDate != nil {
		end = *filter.EndDate
	}
	return start, end
}

func (s *service) publish(ctx context.Context, actor identity.Identity, eventType, from string, l domain.LeaveRequest) {
	event := events.LeaveStatusChangedEvent{
		EventType:      eventType,
		LeaveRequestID: l.LeaveRequestID,
		EmployeeID:     l.EmployeeID,
		LeaveTypeID:    l.LeaveTypeID,
		FromStatus:     from,
		Status:         l.Status.String(),
		ActorKind:      actor.Kind().String(),
		ActorUsername:  actor.Username(),
		RequestID:      contextutil.GetRequestID(ctx),
		OccurredAt:     s.now().UTC(),
	}
	if id, ok := actor.EmployeeID(); ok {
		event.ActorEmployeeID = &id
	}

	if err := s.publisher.PublishLeaveStatusChanged(ctx, event); err != nil {
		s.logger.Warn("publish leave event failed",
			zap.String("event_type", eventType),
			zap.Int("leave_id", l.LeaveRequestID),
			zap.Error(err),
		)
	}
}

func canCancel(actor identity.Identity, l domain.LeaveRequest) bool {
	if !l.Status.CanTransitionTo(domain.LeaveStatusCancelled) {
		return false
	}
	return actor.IsAdmin() || actor.Owns(l.EmployeeID)
}

// mapGatewayError applies per-operation overrides before the default mapping.
func mapGatewayError(err error, overrides map[int]*apperror.AppError) error {
	if override, ok := overrides[gateway.StatusCode(err)]; ok {
		return override.WithErr(err)
	}
	return gateway.ToAppError(err)
}

// mapCancelError reports any refusal other than auth as a conflict; the
// Gateway does not say why a cancel failed.
func mapCancelError(err error) error {
	status := gateway.StatusCode(err)
	switch {
	case status == 0, status >= http.StatusInternalServerError,
		status == http.StatusUnauthorized, status == http.StatusForbidden:
		return gateway.ToAppError(err)
	default:
		return leaveerrors.ErrNoLongerCancellable.WithErr(err)
	}
}

func mapToResponse(l domain.LeaveRequest, actor identity.Identity) LeaveResponse {
	return LeaveResponse{
		ID:               l.LeaveRequestID,
		EmployeeID:       l.EmployeeID,
		EmployeeName:     l.EmployeeFullName(),
		TeamID:           l.TeamID,
		TeamName:         l.TeamName,
		LeaveTypeID:      l.LeaveTypeID,
		LeaveTypeName:    l.LeaveTypeName,
		StartDateTime:    l.LeaveStartDateTime,
		EndDateTime:      l.LeaveEndDateTime,
		Reason:           l.Reason,
		Status:           l.Status,
		StatusName:       l.Status.String(),
		RequestedDate:    l.RequestedDate,
		ApproverUserID:   l.ApproverUserID,
		ApproverUsername: l.ApproverUsername,
		ApprovalDate:     l.ApprovalDate,
		ApproverNotes:    l.ApproverNotes,
		CanCancel:        canCancel(actor, l),
	}
}
