package dashboard

import (
	"time"

	"rota-console/internal/domain"
)

type Branch string

const (
	BranchPendingCount      Branch = "pending_count"
	BranchUpcomingOnCall    Branch = "upcoming_on_call"
	BranchLeaveSummary      Branch = "leave_summary"
	BranchShiftDistribution Branch = "shift_type_distribution"
)

const (
	onCallDays  = 7
	summaryDays = 30
)

// Window anchors every dashboard range on one UTC calendar day.
type Window struct {
	Today time.Time
}

func WindowFor(now time.Time) Window {
	y, m, d := now.UTC().Date()
	return Window{Today: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// OnCallRange is today through today+6.
func (w Window) OnCallRange() (time.Time, time.Time) {
	return w.Today, w.Today.AddDate(0, 0, onCallDays-1)
}

// SummaryRange is today-29 through today.
func (w Window) SummaryRange() (time.Time, time.Time) {
	return w.Today.AddDate(0, 0, -(summaryDays - 1)), w.Today
}

// BranchFailure names a branch that resolved to its empty default.
type BranchFailure struct {
	Branch   Branch `json:"branch"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	TimedOut bool   `json:"timed_out"`
}

type PendingCountView struct {
	Count    int     `json:"count"`
	TeamID   *int    `json:"team_id,omitempty"`
	TeamName *string `json:"team_name,omitempty"`
}

type OnCallAssignmentView struct {
	EmployeeID    int       `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	TeamID        *int      `json:"team_id,omitempty"`
	TeamName      *string   `json:"team_name,omitempty"`
	ShiftTypeID   int       `json:"shift_type_id"`
	ShiftTypeName string    `json:"shift_type_name"`
	ShiftStart    time.Time `json:"shift_start_date_time"`
	ShiftEnd      time.Time `json:"shift_end_date_time"`
}

type OnCallDayView struct {
	Date        string                 `json:"date"`
	Assignments []OnCallAssignmentView `json:"assignments"`
}

type LeaveSummaryView struct {
	GroupingID        *int    `json:"grouping_id,omitempty"`
	GroupingName      string  `json:"grouping_name"`
	GroupingDimension string  `json:"grouping_dimension"`
	LeaveRequestCount int     `json:"leave_request_count"`
	TotalLeaveDays    float64 `json:"total_leave_days"`
}

type ShiftShareView struct {
	ShiftTypeID   int     `json:"shift_type_id"`
	ShiftTypeName string  `json:"shift_type_name"`
	IsOnCall      bool    `json:"is_on_call"`
	ShiftCount    int     `json:"shift_count"`
	Percentage    float64 `json:"percentage_of_total"`
}

// DashboardComposite is built fresh per request and never cached.
type DashboardComposite struct {
	PendingLeaveCounts    []PendingCountView `json:"pending_leave_counts"`
	UpcomingOnCall        []OnCallDayView    `json:"upcoming_on_call"`
	OnCallStartDate       string             `json:"on_call_start_date"`
	OnCallEndDate         string             `json:"on_call_end_date"`
	LeaveSummaryByType    []LeaveSummaryView `json:"leave_summary_by_type"`
	ShiftTypeDistribution []ShiftShareView   `json:"shift_type_distribution"`
	SummaryStartDate      string             `json:"summary_period_start_date"`
	SummaryEndDate        string             `json:"summary_period_end_date"`
	Failures              []BranchFailure    `json:"failures"`
}

func mapPendingCounts(in []domain.PendingCount) []PendingCountView {
	out := make([]PendingCountView, 0, len(in))
	for _, p := range in {
		out = append(out, PendingCountView{Count: p.Count, TeamID: p.TeamID, TeamName: p.TeamName})
	}
	return out
}

func mapOnCall(in []domain.UpcomingOnCall) []OnCallDayView {
	out := make([]OnCallDayView, 0, len(in))
	for _, day := range in {
		assignments := make([]OnCallAssignmentView, 0, len(day.Assignments))
		for _, a := range day.Assignments {
			assignments = append(assignments, OnCallAssignmentView{
				EmployeeID:    a.EmployeeID,
				EmployeeName:  a.EmployeeName,
				TeamID:        a.TeamID,
				TeamName:      a.TeamName,
				ShiftTypeID:   a.ShiftTypeID,
				ShiftTypeName: a.ShiftTypeName,
				ShiftStart:    a.ShiftStartDateTime,
				ShiftEnd:      a.ShiftEndDateTime,
			})
		}
		out = append(out, OnCallDayView{
			Date:        day.Date.Format(domain.DateLayout),
			Assignments: assignments,
		})
	}
	return out
}

func mapLeaveSummary(in []domain.LeaveSummary) []LeaveSummaryView {
	out := make([]LeaveSummaryView, 0, len(in))
	for _, s := range in {
		out = append(out, LeaveSummaryView{
			GroupingID:        s.GroupingID,
			GroupingName:      s.GroupingName,
			GroupingDimension: s.GroupingDimension,
			LeaveRequestCount: s.LeaveRequestCount,
			TotalLeaveDays:    s.TotalLeaveDays,
		})
	}
	return out
}

func mapShiftShares(in []domain.ShiftTypeDistribution) []ShiftShareView {
	out := make([]ShiftShareView, 0, len(in))
	for _, s := range in {
		out = append(out, ShiftShareView{
			ShiftTypeID:   s.ShiftTypeID,
			ShiftTypeName: s.ShiftTypeName,
			IsOnCall:      s.IsOnCall,
			ShiftCount:    s.ShiftCount,
			Percentage:    s.PercentageOfTotal,
		})
	}
	return out
}
