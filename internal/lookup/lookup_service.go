package lookup

import (
	"context"
	"sort"
	"strings"

	"rota-console/internal/domain"
	"rota-console/internal/gateway"
	"rota-console/internal/identity"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=lookup_service.go -destination=mock/lookup_service_mock.go -package=mock
type Service interface {
	LeaveFilters(ctx context.Context, actor identity.Identity) (LeaveFilters, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("lookup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.service")
	}
	return &service{repo: repo, logger: l}
}

// LeaveFilters returns leave types for everyone. Teams and active employees
// are only listed for Admin; other callers get empty lists.
func (s *service) LeaveFilters(ctx context.Context, actor identity.Identity) (LeaveFilters, error) {
	var (
		leaveTypes []domain.LeaveType
		teams      []domain.Team
		employees  []domain.Employee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leaveTypes, err = s.repo.LeaveTypes(gctx)
		return err
	})
	if actor.IsAdmin() {
		g.Go(func() error {
			var err error
			teams, err = s.repo.Teams(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			employees, err = s.repo.Employees(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("lookup fetch failed", zap.Stringer("actor", actor), zap.Error(err))
		return LeaveFilters{}, gateway.ToAppError(err)
	}

	out := LeaveFilters{
		LeaveTypes: make([]LeaveTypeOption, 0, len(leaveTypes)),
		Teams:      make([]TeamOption, 0, len(teams)),
		Employees:  make([]EmployeeOption, 0, len(employees)),
	}
	for _, t := range leaveTypes {
		out.LeaveTypes = append(out.LeaveTypes, mapLeaveType(t))
	}
	for _, t := range teams {
		out.Teams = append(out.Teams, mapTeam(t))
	}
	for _, e := range employees {
		if e.IsActive {
			out.Employees = append(out.Employees, mapEmployee(e))
		}
	}

	sort.SliceStable(out.LeaveTypes, func(i, j int) bool {
		return lessName(out.LeaveTypes[i].Name, out.LeaveTypes[j].Name)
	})
	sort.SliceStable(out.Teams, func(i, j int) bool {
		return lessName(out.Teams[i].Name, out.Teams[j].Name)
	})
	sort.SliceStable(out.Employees, func(i, j int) bool {
		return lessName(out.Employees[i].Name, out.Employees[j].Name)
	})
	return out, nil
}

func lessName(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
