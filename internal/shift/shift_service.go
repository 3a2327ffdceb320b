package shift

import (
	"context"
	"net/http"
	"time"

	"rota-console/internal/domain"
	"rota-console/internal/gateway"
	"rota-console/internal/identity"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/response"
	shifterrors "rota-console/internal/shift/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Week(ctx context.Context, actor identity.Identity, filter WeekFilter) (WeekResult, error)
	CalendarShifts(ctx context.Context, actor identity.Identity, filter CalendarFilter) ([]ShiftResponse, error)
	CalendarLeave(ctx context.Context, actor identity.Identity, filter CalendarFilter) ([]CalendarLeave, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

// Week lists shifts for one week, Sunday through Saturday by default. A
// Gateway failure other than auth degrades to an empty week with a warning.
func (s *service) Week(ctx context.Context, actor identity.Identity, filter WeekFilter) (WeekResult, error) {
	start, end := s.weekWindow(filter)
	if end.Before(start) {
		return WeekResult{}, shifterrors.ErrInvalidWeekRange
	}

	query := domain.ShiftFilter{StartDate: &start, EndDate: &end, IsOnCall: filter.IsOnCall}
	s.scope(actor, &query.EmployeeID, &query.TeamID, filter.EmployeeID, filter.TeamID)

	result := WeekResult{
		StartDate: start.Format(domain.DateLayout),
		EndDate:   end.Format(domain.DateLayout),
		Items:     []ShiftResponse{},
	}

	shifts, err := s.repo.List(ctx, query)
	if err != nil {
		switch gateway.StatusCode(err) {
		case http.StatusForbidden, http.StatusUnauthorized:
			return WeekResult{}, gateway.ToAppError(err)
		}
		s.logger.Warn("list shifts degraded to empty result", zap.Error(err))
		httpErr := apperror.ToHTTP(gateway.ToAppError(err))
		result.Warning = &response.Notice{Code: httpErr.Code, Message: httpErr.Message}
		return result, nil
	}

	for _, sh := range shifts {
		result.Items = append(result.Items, mapShift(sh))
	}
	return result, nil
}

func (s *service) CalendarShifts(ctx context.Context, actor identity.Identity, filter CalendarFilter) ([]ShiftResponse, error) {
	if filter.End.Before(filter.Start) {
		return nil, shifterrors.ErrInvalidCalendarRange
	}

	query := domain.ShiftFilter{StartDate: &filter.Start, EndDate: &filter.End, IsOnCall: filter.IsOnCall}
	s.scope(actor, &query.EmployeeID, &query.TeamID, filter.EmployeeID, filter.TeamID)

	shifts, err := s.repo.List(ctx, query)
	if err != nil {
		s.logger.Warn("calendar shifts failed", zap.Stringer("actor", actor), zap.Error(err))
		return nil, gateway.ToAppError(err)
	}

	out := make([]ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		out = append(out, mapShift(sh))
	}
	return out, nil
}

// CalendarLeave only ever asks the Gateway for approved leave.
func (s *service) CalendarLeave(ctx context.Context, actor identity.Identity, filter CalendarFilter) ([]CalendarLeave, error) {
	if filter.End.Before(filter.Start) {
		return nil, shifterrors.ErrInvalidCalendarRange
	}

	approved := domain.LeaveStatusApproved
	query := domain.LeaveRequestFilter{
		StartDate:   &filter.Start,
		EndDate:     &filter.End,
		LeaveTypeID: filter.LeaveTypeID,
		Status:      &approved,
	}
	s.scope(actor, &query.EmployeeID, &query.TeamID, filter.EmployeeID, filter.TeamID)

	leaves, err := s.repo.ListLeave(ctx, query)
	if err != nil {
		s.logger.Warn("calendar leave failed", zap.Stringer("actor", actor), zap.Error(err))
		return nil, gateway.ToAppError(err)
	}

	out := make([]CalendarLeave, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, mapLeave(l))
	}
	return out, nil
}

// scope copies the employee and team filters for Admin only. Everyone else
// is scoped by the Gateway from their credential.
func (s *service) scope(actor identity.Identity, employeeDst, teamDst **int, employeeID, teamID *int) {
	if actor.IsAdmin() {
		*employeeDst = employeeID
		*teamDst = teamID
		return
	}
	if employeeID != nil || teamID != nil {
		s.logger.Debug("discarding employee/team filter for non-admin", zap.Stringer("actor", actor))
	}
}

func (s *service) weekWindow(filter WeekFilter) (time.Time, time.Time) {
	var start time.Time
	if filter.StartDate != nil {
		start = *filter.StartDate
	} else {
		now := s.now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		start = today.AddDate(0, 0, -int(today.Weekday()))
	}

	end := start.AddDate(0, 0, 6)
	if filter.EndDate != nil {
		end = *filter.EndDate
	}
	return start, end
}
