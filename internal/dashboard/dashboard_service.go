package dashboard

import (
	"context"
	"errors"
	"sort"
	"time"

	"rota-console/internal/domain"
	"rota-console/internal/gateway"
	"rota-console/internal/identity"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/contextutil"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Gateway is the slice of the scheduling Gateway the dashboard reads.
type Gateway interface {
	PendingLeaveCount(ctx context.Context, teamID *int) ([]domain.PendingCount, error)
	UpcomingOnCall(ctx context.Context, start, end time.Time, teamID *int) ([]domain.UpcomingOnCall, error)
	LeaveSummary(ctx context.Context, query domain.LeaveSummaryQuery) ([]domain.LeaveSummary, error)
	ShiftTypeDistribution(ctx context.Context, start, end time.Time, teamID *int) ([]domain.ShiftTypeDistribution, error)
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	// Build never fails because of a branch; it only returns an error when
	// the inbound request itself was cancelled.
	Build(ctx context.Context, actor identity.Identity, window Window) (DashboardComposite, error)
	// OnCall reads only the on-call branch and surfaces its failure.
	OnCall(ctx context.Context, actor identity.Identity, window Window) ([]OnCallDayView, error)
}

type service struct {
	gateway       Gateway
	branchTimeout time.Duration
	logger        *zap.Logger
}

func NewService(gw Gateway, branchTimeout time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{gateway: gw, branchTimeout: branchTimeout, logger: l}
}

func (s *service) Build(ctx context.Context, actor identity.Identity, window Window) (DashboardComposite, error) {
	onCallStart, onCallEnd := window.OnCallRange()
	summaryStart, summaryEnd := window.SummaryRange()

	var (
		pending  []domain.PendingCount
		onCall   []domain.UpcomingOnCall
		summary  []domain.LeaveSummary
		shifts   []domain.ShiftTypeDistribution
		failures [4]*BranchFailure
		g        errgroup.Group
	)

	if actor.IsAdmin() {
		g.Go(func() error {
			failures[0] = s.runBranch(ctx, BranchPendingCount, func(bctx context.Context) (err error) {
				pending, err = s.gateway.PendingLeaveCount(bctx, nil)
				return err
			})
			return nil
		})
	}

	g.Go(func() error {
		failures[1] = s.runBranch(ctx, BranchUpcomingOnCall, func(bctx context.Context) (err error) {
			onCall, err = s.gateway.UpcomingOnCall(bctx, onCallStart, onCallEnd, nil)
			return err
		})
		return nil
	})

	g.Go(func() error {
		query := domain.NewLeaveSummaryQuery(summaryStart, summaryEnd, domain.GroupByLeaveType)
		failures[2] = s.runBranch(ctx, BranchLeaveSummary, func(bctx context.Context) (err error) {
			summary, err = s.gateway.LeaveSummary(bctx, query)
			return err
		})
		return nil
	})

	g.Go(func() error {
		failures[3] = s.runBranch(ctx, BranchShiftDistribution, func(bctx context.Context) (err error) {
			shifts, err = s.gateway.ShiftTypeDistribution(bctx, summaryStart, summaryEnd, nil)
			return err
		})
		return nil
	})

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return DashboardComposite{}, err
	}

	composite := DashboardComposite{
		PendingLeaveCounts:    mapPendingCounts(sortPendingCounts(pending)),
		UpcomingOnCall:        mapOnCall(sortOnCall(onCall)),
		OnCallStartDate:       onCallStart.Format(domain.DateLayout),
		OnCallEndDate:         onCallEnd.Format(domain.DateLayout),
		LeaveSummaryByType:    mapLeaveSummary(sortLeaveSummary(summary)),
		ShiftTypeDistribution: withPercentages(mapShiftShares(sortShiftShares(shifts))),
		SummaryStartDate:      summaryStart.Format(domain.DateLayout),
		SummaryEndDate:        summaryEnd.Format(domain.DateLayout),
		Failures:              []BranchFailure{},
	}
	for _, f := range failures {
		if f != nil {
			composite.Failures = append(composite.Failures, *f)
		}
	}

	s.logger.Debug("dashboard built",
		zap.Stringer("actor", actor),
		zap.String("today", window.Today.Format(domain.DateLayout)),
		zap.Int("failed_branches", len(composite.Failures)),
	)
	return composite, nil
}

func (s *service) OnCall(ctx context.Context, actor identity.Identity, window Window) ([]OnCallDayView, error) {
	start, end := window.OnCallRange()

	var onCall []domain.UpcomingOnCall
	_, err := s.callBranch(ctx, BranchUpcomingOnCall, func(bctx context.Context) (err error) {
		onCall, err = s.gateway.UpcomingOnCall(bctx, start, end, nil)
		return err
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("on-call read", zap.Stringer("actor", actor), zap.Int("days", len(onCall)))
	return mapOnCall(sortOnCall(onCall)), nil
}

// runBranch folds a branch failure into a BranchFailure.
func (s *service) runBranch(ctx context.Context, branch Branch, fn func(context.Context) error) *BranchFailure {
	timedOut, err := s.callBranch(ctx, branch, fn)
	if err == nil {
		return nil
	}
	httpErr := apperror.ToHTTP(err)
	return &BranchFailure{
		Branch:   branch,
		Code:     httpErr.Code,
		Message:  httpErr.Message,
		TimedOut: timedOut,
	}
}

// callBranch gives a branch its own deadline and maps its failure onto the
// error taxonomy. Siblings are never cancelled.
func (s *service) callBranch(ctx context.Context, branch Branch, fn func(context.Context) error) (bool, error) {
	bctx := ctx
	if s.branchTimeout > 0 {
		var cancel context.CancelFunc
		bctx, cancel = context.WithTimeout(ctx, s.branchTimeout)
		defer cancel()
	}

	err := fn(bctx)
	if err == nil {
		return false, nil
	}

	timedOut := errors.Is(bctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded)
	var appErr error
	if timedOut {
		appErr = apperror.ErrRemoteUnavailable.WithErr(err)
	} else {
		appErr = gateway.ToAppError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Warn("dashboard branch failed",
		zap.String("branch", string(branch)),
		zap.Bool("timed_out", timedOut),
		zap.String("code", apperror.CodeOf(appErr)),
		zap.Error(err),
	)
	return timedOut, appErr
}

func sortPendingCounts(in []domain.PendingCount) []domain.PendingCount {
	sort.SliceStable(in, func(i, j int) bool {
		return lessOptionalName(in[i].TeamName, in[j].TeamName)
	})
	return in
}

// sortOnCall orders days ascending; assignments keep the Gateway's order.
func sortOnCall(in []domain.UpcomingOnCall) []domain.UpcomingOnCall {
	sort.SliceStable(in, func(i, j int) bool {
		return in[i].Date.Before(in[j].Date)
	})
	return in
}

func sortLeaveSummary(in []domain.LeaveSummary) []domain.LeaveSummary {
	sort.SliceStable(in, func(i, j int) bool {
		if in[i].GroupingName != in[j].GroupingName {
			return in[i].GroupingName < in[j].GroupingName
		}
		return optionalInt(in[i].GroupingID) < optionalInt(in[j].GroupingID)
	})
	return in
}

func sortShiftShares(in []domain.ShiftTypeDistribution) []domain.ShiftTypeDistribution {
	sort.SliceStable(in, func(i, j int) bool {
		if in[i].ShiftTypeName != in[j].ShiftTypeName {
			return in[i].ShiftTypeName < in[j].ShiftTypeName
		}
		return in[i].ShiftTypeID < in[j].ShiftTypeID
	})
	return in
}

// withPercentages recomputes shares from counts, rounded to two decimals.
func withPercentages(in []ShiftShareView) []ShiftShareView {
	total := 0
	for _, s := range in {
		total += s.ShiftCount
	}
	if total == 0 {
		for i := range in {
			in[i].Percentage = 0
		}
		return in
	}
	hundred := decimal.NewFromInt(100)
	denom := decimal.NewFromInt(int64(total))
	for i := range in {
		share := decimal.NewFromInt(int64(in[i].ShiftCount)).Mul(hundred).Div(denom)
		in[i].Percentage = share.Round(2).InexactFloat64()
	}
	return in
}

func lessOptionalName(a, b *string) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	default:
		return *a < *b
	}
}

func optionalInt(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}
