package leave_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"rota-console/internal/domain"
	"rota-console/internal/events"
	"rota-console/internal/gateway"
	"rota-console/internal/identity"
	"rota-console/internal/leave"
	leaveerrors "rota-console/internal/leave/errors"
	mock_leave "rota-console/internal/leave/mock"
	"rota-console/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 14, 15, 4, 5, 0, time.UTC)

func clock() time.Time { return fixedNow }

var (
	admin      = identity.Admin("admin", nil)
	employee7  = identity.Employee("e7", 7)
	employee11 = identity.Employee("e11", 11)
	unlinked   = identity.Unidentified("ghost")
)

// memoryGateway models the Gateway's own state checks.
type memoryGateway struct {
	mu     sync.Mutex
	nextID int
	items  map[int]domain.LeaveRequest
}

func newMemoryGateway(seed ...domain.LeaveRequest) *memoryGateway {
	g := &memoryGateway{nextID: 100, items: map[int]domain.LeaveRequest{}}
	for _, l := range seed {
		g.items[l.LeaveRequestID] = l
	}
	return g
}

func (g *memoryGateway) List(_ context.Context, _ domain.LeaveRequestFilter) ([]domain.LeaveRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.LeaveRequest, 0, len(g.items))
	for _, l := range g.items {
		out = append(out, l)
	}
	return out, nil
}

func (g *memoryGateway) Get(_ context.Context, id int) (domain.LeaveRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.items[id]
	if !ok {
		return domain.LeaveRequest{}, &gateway.Error{Op: "leave.get", StatusCode: http.StatusNotFound}
	}
	return l, nil
}

func (g *memoryGateway) Create(_ context.Context, req domain.CreateLeaveRequest) (domain.LeaveRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	l := domain.LeaveRequest{
		LeaveRequestID:     g.nextID,
		EmployeeID:         req.EmployeeID,
		LeaveTypeID:        req.LeaveTypeID,
		LeaveStartDateTime: req.LeaveStartDateTime,
		LeaveEndDateTime:   req.LeaveEndDateTime,
		Reason:             req.Reason,
		Status:             domain.LeaveStatusPending,
		RequestedDate:      fixedNow,
	}
	g.items[l.LeaveRequestID] = l
	return l, nil
}

func (g *memoryGateway) UpdateStatus(_ context.Context, id int, req domain.UpdateLeaveStatus) (domain.LeaveRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.items[id]
	if !ok {
		return domain.LeaveRequest{}, &gateway.Error{Op: "leave.update_status", StatusCode: http.StatusNotFound}
	}
	if l.Status != domain.LeaveStatusPending {
		return domain.LeaveRequest{}, &gateway.Error{Op: "leave.update_status", StatusCode: http.StatusBadRequest, Detail: "not pending"}
	}
	approver := 1
	username := "admin"
	approvedAt := fixedNow
	l.Status = req.NewStatus
	l.ApproverUserID = &approver
	l.ApproverUsername = &username
	l.ApprovalDate = &approvedAt
	l.ApproverNotes = req.ApproverNotes
	g.items[id] = l
	return l, nil
}

func (g *memoryGateway) Cancel(_ context.Context, id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.items[id]
	if !ok {
		return &gateway.Error{Op: "leave.cancel", StatusCode: http.StatusNotFound}
	}
	if !l.Status.CanTransitionTo(domain.LeaveStatusCancelled) {
		return &gateway.Error{Op: "leave.cancel", StatusCode: http.StatusBadRequest}
	}
	l.Status = domain.LeaveStatusCancelled
	g.items[id] = l
	return nil
}

type recordingPublisher struct {
	events []events.LeaveStatusChangedEvent
	err    error
}

func (p *recordingPublisher) PublishLeaveStatusChanged(_ context.Context, e events.LeaveStatusChangedEvent) error {
	p.events = append(p.events, e)
	return p.err
}

func setupMock(t *testing.T) (*mock_leave.MockRepository, *recordingPublisher, leave.Service) {
	ctrl := gomock.NewController(t)
	repo := mock_leave.NewMockRepository(ctrl)
	pub := &recordingPublisher{}
	return repo, pub, leave.NewServiceWithClock(repo, pub, clock)
}

func strPtr(s string) *string { return &s }

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	t.Run("round trip returns pending with null approver fields", func(t *testing.T) {
		gw := newMemoryGateway()
		pub := &recordingPublisher{}
		svc := leave.NewServiceWithClock(gw, pub, clock)

		created, err := svc.Create(ctx, employee7, leave.CreateLeaveRequest{
			EmployeeID:         7,
			LeaveTypeID:        2,
			LeaveStartDateTime: start,
			LeaveEndDateTime:   end,
		})
		assert.NoError(t, err)

		got, err := svc.Get(ctx, employee7, created.ID)

		assert.NoError(t, err)
		assert.Equal(t, domain.LeaveStatusPending, got.Status)
		assert.True(t, start.Equal(got.StartDateTime))
		assert.True(t, end.Equal(got.EndDateTime))
		assert.Nil(t, got.ApproverUserID)
		assert.Nil(t, got.ApproverUsername)
		assert.Nil(t, got.ApprovalDate)
		assert.True(t, got.CanCancel)

		assert.Len(t, pub.events, 1)
		assert.Equal(t, events.EventLeaveRequested, pub.events[0].EventType)
		assert.Equal(t, "Pending", pub.events[0].Status)
	})

	t.Run("unidentified employee is a configuration error before any call", func(t *testing.T) {
		_, _, svc := setupMock(t)

		_, err := svc.Create(ctx, unlinked, leave.CreateLeaveRequest{
			EmployeeID:         7,
			LeaveTypeID:        2,
			LeaveStartDateTime: end,
			LeaveEndDateTime:   start,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotLinked)
		assert.Equal(t, apperror.CodeConfiguration, apperror.CodeOf(err))
	})

	t.Run("end not after start", func(t *testing.T) {
		_, _, svc := setupMock(t)

		_, err := svc.Create(ctx, admin, leave.CreateLeaveRequest{
			EmployeeID:         7,
			LeaveTypeID:        2,
			LeaveStartDateTime: start,
			LeaveEndDateTime:   start,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("employee may only file for self", func(t *testing.T) {
		_, _, svc := setupMock(t)

		_, err := svc.Create(ctx, employee7, leave.CreateLeaveRequest{
			EmployeeID:         11,
			LeaveTypeID:        2,
			LeaveStartDateTime: start,
			LeaveEndDateTime:   end,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrFileForSelfOnly)
		assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
	})

	t.Run("employee id defaults to the caller", func(t *testing.T) {
		repo, _, svc := setupMock(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.CreateLeaveRequest) (domain.LeaveRequest, error) {
				assert.Equal(t, 7, req.EmployeeID)
				return domain.LeaveRequest{LeaveRequestID: 1, EmployeeID: 7}, nil
			})

		_, err := svc.Create(ctx, employee7, leave.CreateLeaveRequest{
			LeaveTypeID:        2,
			LeaveStartDateTime: start,
			LeaveEndDateTime:   end,
		})

		assert.NoError(t, err)
	})

	t.Run("admin must name an employee", func(t *testing.T) {
		_, _, svc := setupMock(t)

		_, err := svc.Create(ctx, admin, leave.CreateLeaveRequest{
			LeaveTypeID:        2,
			LeaveStartDateTime: start,
			LeaveEndDateTime:   end,
		})

		assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
	})

	t.Run("gateway overlap is a remote rejection carrying its detail", func(t *testing.T) {
		repo, pub, svc := setupMock(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.LeaveRequest{}, &gateway.Error{StatusCode: http.StatusBadRequest, Detail: "overlaps an existing shift"})

		_, err := svc.Create(ctx, admin, leave.CreateLeaveRequest{
			EmployeeID:         7,
			LeaveTypeID:        2,
			LeaveStartDateTime: start,
			LeaveEndDateTime:   end,
		})

		assert.Equal(t, apperror.CodeRemoteReject, apperror.CodeOf(err))
		assert.Equal(t, "overlaps an existing shift", apperror.ToHTTP(err).Message)
		assert.Empty(t, pub.events)
	})

	t.Run("gateway forbidden and transport failures", func(t *testing.T) {
		cases := map[string]struct {
			err  error
			code string
		}{
			"forbidden":    {&gateway.Error{StatusCode: http.StatusForbidden}, apperror.CodeAccessDenied},
			"unauthorized": {&gateway.Error{StatusCode: http.StatusUnauthorized}, apperror.CodeUnauthorized},
			"transport":    {&gateway.Error{Err: errors.New("dial tcp: refused")}, apperror.CodeServiceUnavailable},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				repo, _, svc := setupMock(t)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.LeaveRequest{}, tc.err)

				_, err := svc.Create(ctx, admin, leave.CreateLeaveRequest{
					EmployeeID:         7,
					LeaveTypeID:        2,
					LeaveStartDateTime: start,
					LeaveEndDateTime:   end,
				})

				assert.Equal(t, tc.code, apperror.CodeOf(err))
			})
		}
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		gw := newMemoryGateway()
		pub := &recordingPublisher{err: errors.New("queue full")}
		svc := leave.NewServiceWithClock(gw, pub, clock)

		_, err := svc.Create(ctx, employee7, leave.CreateLeaveRequest{
			LeaveTypeID:        2,
			LeaveStartDateTime: start,
			LeaveEndDateTime:   end,
		})

		assert.NoError(t, err)
		assert.Len(t, pub.events, 1)
	})
}

func TestLeaveService_Transition(t *testing.T) {
	ctx := context.Background()

	t.Run("approve then approve again conflicts", func(t *testing.T) {
		gw := newMemoryGateway(domain.LeaveRequest{LeaveRequestID: 42, EmployeeID: 7, Status: domain.LeaveStatusPending})
		pub := &recordingPublisher{}
		svc := leave.NewServiceWithClock(gw, pub, clock)

		approved, err := svc.Transition(ctx, admin, 42, leave.UpdateLeaveStatusRequest{
			NewStatus:     domain.LeaveStatusApproved,
			ApproverNotes: strPtr("ok"),
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.LeaveStatusApproved, approved.Status)
		assert.NotNil(t, approved.ApproverUsername)
		assert.Equal(t, "admin", *approved.ApproverUsername)
		assert.NotNil(t, approved.ApprovalDate)
		assert.Equal(t, "ok", *approved.ApproverNotes)

		_, err = svc.Transition(ctx, admin, 42, leave.UpdateLeaveStatusRequest{NewStatus: domain.LeaveStatusApproved})

		assert.ErrorIs(t, err, leaveerrors.ErrNoLongerPending)
		assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))
		assert.Len(t, pub.events, 1)
		assert.Equal(t, events.EventLeaveDecided, pub.events[0].EventType)
	})

	t.Run("every non-pending source fails", func(t *testing.T) {
		for _, from := range []domain.LeaveStatus{domain.LeaveStatusApproved, domain.LeaveStatusRejected, domain.LeaveStatusCancelled} {
			for _, target := range []domain.LeaveStatus{domain.LeaveStatusApproved, domain.LeaveStatusRejected} {
				gw := newMemoryGateway(domain.LeaveRequest{LeaveRequestID: 1, Status: from})
				svc := leave.NewServiceWithClock(gw, nil, clock)

				_, err := svc.Transition(ctx, admin, 1, leave.UpdateLeaveStatusRequest{NewStatus: target})

				assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err), "%s -> %s", from, target)
			}
		}
	})

	t.Run("invalid targets are rejected before the gateway", func(t *testing.T) {
		_, _, svc := setupMock(t)

		for _, target := range []domain.LeaveStatus{domain.LeaveStatusPending, domain.LeaveStatusCancelled, domain.LeaveStatus(9)} {
			_, err := svc.Transition(ctx, admin, 42, leave.UpdateLeaveStatusRequest{NewStatus: target})
			assert.ErrorIs(t, err, leaveerrors.ErrInvalidTargetStatus)
		}
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		_, _, svc := setupMock(t)

		for _, actor := range []identity.Identity{employee7, unlinked} {
			_, err := svc.Transition(ctx, actor, 42, leave.UpdateLeaveStatusRequest{NewStatus: domain.LeaveStatusRejected})
			assert.Equal(t, apperror.CodeForbidden, apperror.CodeOf(err))
		}
	})

	t.Run("gateway not found and conflict", func(t *testing.T) {
		repo, _, svc := setupMock(t)

		repo.EXPECT().
			UpdateStatus(gomock.Any(), 5, gomock.Any()).
			Return(domain.LeaveRequest{}, &gateway.Error{StatusCode: http.StatusNotFound})
		repo.EXPECT().
			UpdateStatus(gomock.Any(), 6, gomock.Any()).
			Return(domain.LeaveRequest{}, &gateway.Error{StatusCode: http.StatusConflict})

		_, err := svc.Transition(ctx, admin, 5, leave.UpdateLeaveStatusRequest{NewStatus: domain.LeaveStatusRejected})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)

		_, err = svc.Transition(ctx, admin, 6, leave.UpdateLeaveStatusRequest{NewStatus: domain.LeaveStatusRejected})
		assert.ErrorIs(t, err, leaveerrors.ErrNoLongerPending)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("other employee is forbidden, owner succeeds", func(t *testing.T) {
		gw := newMemoryGateway(domain.LeaveRequest{LeaveRequestID: 9, EmployeeID: 11, Status: domain.LeaveStatusPending})
		pub := &recordingPublisher{}
		svc := leave.NewServiceWithClock(gw, pub, clock)

		_, err := svc.Cancel(ctx, employee7, 9)
		assert.ErrorIs(t, err, leaveerrors.ErrCancelNotAllowed)
		assert.Equal(t, apperror.CodeForbidden, apperror.CodeOf(err))

		res, err := svc.Cancel(ctx, employee11, 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.LeaveStatusCancelled, res.Status)

		stored, _ := gw.Get(ctx, 9)
		assert.Equal(t, domain.LeaveStatusCancelled, stored.Status)

		assert.Len(t, pub.events, 1)
		assert.Equal(t, "Pending", pub.events[0].FromStatus)
		assert.Equal(t, "Cancelled", pub.events[0].Status)
		assert.Equal(t, 11, *pub.events[0].ActorEmployeeID)
	})

	t.Run("authorization matrix", func(t *testing.T) {
		actors := map[string]identity.Identity{"admin": admin, "owner": employee11, "other": employee7, "unlinked": unlinked}
		statuses := []domain.LeaveStatus{domain.LeaveStatusPending, domain.LeaveStatusApproved, domain.LeaveStatusRejected, domain.LeaveStatusCancelled}

		for name, actor := range actors {
			for _, status := range statuses {
				gw := newMemoryGateway(domain.LeaveRequest{LeaveRequestID: 9, EmployeeID: 11, Status: status})
				svc := leave.NewServiceWithClock(gw, nil, clock)

				_, err := svc.Cancel(ctx, actor, 9)

				cancellable := status == domain.LeaveStatusPending || status == domain.LeaveStatusApproved
				allowed := cancellable && (name == "admin" || name == "owner")
				if allowed {
					assert.NoError(t, err, "%s on %s", name, status)
				} else {
					assert.Equal(t, apperror.CodeForbidden, apperror.CodeOf(err), "%s on %s", name, status)
				}
			}
		}
	})

	t.Run("gateway refusal at write time is a conflict", func(t *testing.T) {
		repo, pub, svc := setupMock(t)

		repo.EXPECT().Get(gomock.Any(), 9).Return(domain.LeaveRequest{LeaveRequestID: 9, EmployeeID: 11, Status: domain.LeaveStatusApproved}, nil)
		repo.EXPECT().Cancel(gomock.Any(), 9).Return(&gateway.Error{StatusCode: http.StatusBadRequest})

		_, err := svc.Cancel(ctx, admin, 9)

		assert.ErrorIs(t, err, leaveerrors.ErrNoLongerCancellable)
		assert.Empty(t, pub.events)
	})

	t.Run("gateway unreachable at write time", func(t *testing.T) {
		repo, _, svc := setupMock(t)

		repo.EXPECT().Get(gomock.Any(), 9).Return(domain.LeaveRequest{LeaveRequestID: 9, EmployeeID: 11, Status: domain.LeaveStatusPending}, nil)
		repo.EXPECT().Cancel(gomock.Any(), 9).Return(&gateway.Error{Err: context.DeadlineExceeded})

		_, err := svc.Cancel(ctx, employee11, 9)

		assert.Equal(t, apperror.CodeServiceUnavailable, apperror.CodeOf(err))
	})

	t.Run("missing request", func(t *testing.T) {
		gw := newMemoryGateway()
		svc := leave.NewServiceWithClock(gw, nil, clock)

		_, err := svc.Cancel(ctx, admin, 404)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_List(t *testing.T) {
	ctx := context.Background()
	teamID := 3
	otherEmployee := 11

	t.Run("non admin filters are discarded and window defaults to the month", func(t *testing.T) {
		repo, _, svc := setupMock(t)

		repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f domain.LeaveRequestFilter) ([]domain.LeaveRequest, error) {
				assert.Nil(t, f.EmployeeID)
				assert.Nil(t, f.TeamID)
				assert.Equal(t, "2025-03-01", f.StartDate.Format(domain.DateLayout))
				assert.Equal(t, "2025-03-31", f.EndDate.Format(domain.DateLayout))
				return []domain.LeaveRequest{{LeaveRequestID: 1, EmployeeID: 7, Status: domain.LeaveStatusRejected}}, nil
			})

		res, err := svc.List(ctx, employee7, leave.ListFilter{EmployeeID: &otherEmployee, TeamID: &teamID})

		assert.NoError(t, err)
		assert.Equal(t, "2025-03-01", res.StartDate)
		assert.Equal(t, "2025-03-31", res.EndDate)
		assert.Len(t, res.Items, 1)
		assert.False(t, res.Items[0].CanCancel)
		assert.Nil(t, res.Warning)
	})

	t.Run("admin filters pass through", func(t *testing.T) {
		repo, _, svc := setupMock(t)
		status := domain.LeaveStatusPending
		start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

		repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f domain.LeaveRequestFilter) ([]domain.LeaveRequest, error) {
				assert.Equal(t, 11, *f.EmployeeID)
				assert.Equal(t, 3, *f.TeamID)
				assert.Equal(t, domain.LeaveStatusPending, *f.Status)
				assert.Equal(t, "2025-02-14", f.EndDate.Format(domain.DateLayout))
				return nil, nil
			})

		res, err := svc.List(ctx, admin, leave.ListFilter{StartDate: &start, EmployeeID: &otherEmployee, TeamID: &teamID, Status: &status})

		assert.NoError(t, err)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})

	t.Run("access denied is surfaced", func(t *testing.T) {
		repo, _, svc := setupMock(t)
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, &gateway.Error{StatusCode: http.StatusForbidden})

		_, err := svc.List(ctx, employee7, leave.ListFilter{})

		assert.Equal(t, apperror.CodeAccessDenied, apperror.CodeOf(err))
	})

	t.Run("unavailable degrades to empty with warning", func(t *testing.T) {
		repo, _, svc := setupMock(t)
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, &gateway.Error{Err: errors.New("timeout")})

		res, err := svc.List(ctx, admin, leave.ListFilter{})

		assert.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.NotNil(t, res.Warning)
		assert.Equal(t, apperror.CodeServiceUnavailable, res.Warning.Code)
	})

	t.Run("inverted window", func(t *testing.T) {
		_, _, svc := setupMock(t)
		start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

		_, err := svc.List(ctx, admin, leave.ListFilter{StartDate: &start, EndDate: &end})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidListRange)
	})
}

func TestLeaveService_Get(t *testing.T) {
	ctx := context.Background()
	gw := newMemoryGateway(domain.LeaveRequest{LeaveRequestID: 9, EmployeeID: 11, Status: domain.LeaveStatusApproved})
	svc := leave.NewServiceWithClock(gw, nil, clock)

	t.Run("owner and admin can read", func(t *testing.T) {
		for _, actor := range []identity.Identity{admin, employee11} {
			res, err := svc.Get(ctx, actor, 9)
			assert.NoError(t, err)
			assert.True(t, res.CanCancel)
		}
	})

	t.Run("others are forbidden", func(t *testing.T) {
		for _, actor := range []identity.Identity{employee7, unlinked} {
			_, err := svc.Get(ctx, actor, 9)
			assert.ErrorIs(t, err, leaveerrors.ErrViewNotAllowed)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Get(ctx, admin, 1)
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Draft(t *testing.T) {
	ctx := context.Background()
	svc := leave.NewServiceWithClock(newMemoryGateway(), nil, clock)

	d, err := svc.Draft(ctx, employee7)
	assert.NoError(t, err)
	assert.Equal(t, 7, *d.EmployeeID)
	assert.Equal(t, time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), d.LeaveStartDateTime)
	assert.Equal(t, time.Date(2025, 3, 15, 17, 0, 0, 0, time.UTC), d.LeaveEndDateTime)

	d, err = svc.Draft(ctx, admin)
	assert.NoError(t, err)
	assert.Nil(t, d.EmployeeID)

	_, err = svc.Draft(ctx, unlinked)
	assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotLinked)
}
