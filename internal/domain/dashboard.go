package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the date format the Gateway expects in query strings.
const DateLayout = "2006-01-02"

type PendingCount struct {
	Count    int     `json:"count"`
	TeamID   *int    `json:"teamId,omitempty"`
	TeamName *string `json:"teamName,omitempty"`
}

type OnCallAssignment struct {
	EmployeeID         int       `json:"employeeId"`
	EmployeeName       string    `json:"employeeName"`
	TeamID             *int      `json:"teamId,omitempty"`
	TeamName           *string   `json:"teamName,omitempty"`
	ShiftTypeID        int       `json:"shiftTypeId"`
	ShiftTypeName      string    `json:"shiftTypeName"`
	ShiftStartDateTime time.Time `json:"shiftStartDateTime"`
	ShiftEndDateTime   time.Time `json:"shiftEndDateTime"`
}

type UpcomingOnCall struct {
	Date        time.Time          `json:"date"`
	Assignments []OnCallAssignment `json:"assignments"`
}

type LeaveSummary struct {
	GroupingID        *int    `json:"groupingId,omitempty"`
	GroupingName      string  `json:"groupingName"`
	LeaveRequestCount int     `json:"leaveRequestCount"`
	TotalLeaveDays    float64 `json:"totalLeaveDays"`
	GroupingDimension string  `json:"groupingDimension"`
}

type ShiftTypeDistribution struct {
	ShiftTypeID       int     `json:"shiftTypeId"`
	ShiftTypeName     string  `json:"shiftTypeName"`
	IsOnCall          bool    `json:"isOnCall"`
	ShiftCount        int     `json:"shiftCount"`
	PercentageOfTotal float64 `json:"percentageOfTotal"`
}

type LeaveSummaryGrouping int

const (
	GroupByNone LeaveSummaryGrouping = iota
	GroupByLeaveType
	GroupByTeam
	GroupByEmployee
)

var groupingNames = [...]string{"None", "LeaveType", "Team", "Employee"}

func (g LeaveSummaryGrouping) String() string {
	if g >= GroupByNone && g <= GroupByEmployee {
		return groupingNames[g]
	}
	return fmt.Sprintf("LeaveSummaryGrouping(%d)", int(g))
}

func ParseLeaveSummaryGrouping(raw string) (LeaveSummaryGrouping, error) {
	for i, name := range groupingNames {
		if strings.EqualFold(name, strings.TrimSpace(raw)) {
			return LeaveSummaryGrouping(i), nil
		}
	}
	return 0, fmt.Errorf("unknown grouping %q", raw)
}

// LeaveSummaryQuery drives one leave-summary call. It is immutable: build it
// with NewLeaveSummaryQuery and derive variants with the With* methods.
type LeaveSummaryQuery struct {
	startDate   time.Time
	endDate     time.Time
	teamID      *int
	employeeID  *int
	leaveTypeID *int
	groupBy     LeaveSummaryGrouping
}

func NewLeaveSummaryQuery(start, end time.Time, groupBy LeaveSummaryGrouping) LeaveSummaryQuery {
	return LeaveSummaryQuery{startDate: start, endDate: end, groupBy: groupBy}
}

func (q LeaveSummaryQuery) WithTeam(id int) LeaveSummaryQuery {
	q.teamID = &id
	return q
}

func (q LeaveSummaryQuery) WithEmployee(id int) LeaveSummaryQuery {
	q.employeeID = &id
	return q
}

func (q LeaveSummaryQuery) WithLeaveType(id int) LeaveSummaryQuery {
	q.leaveTypeID = &id
	return q
}

func (q LeaveSummaryQuery) StartDate() time.Time          { return q.startDate }
func (q LeaveSummaryQuery) EndDate() time.Time            { return q.endDate }
func (q LeaveSummaryQuery) GroupBy() LeaveSummaryGrouping { return q.groupBy }

// Values renders the query string parameters. Dates are YYYY-MM-DD.
func (q LeaveSummaryQuery) Values() url.Values {
	v := url.Values{}
	if !q.startDate.IsZero() {
		v.Set("startDate", q.startDate.Format(DateLayout))
	}
	if !q.endDate.IsZero() {
		v.Set("endDate", q.endDate.Format(DateLayout))
	}
	if q.employeeID != nil {
		v.Set("employeeId", strconv.Itoa(*q.employeeID))
	}
	if q.teamID != nil {
		v.Set("teamId", strconv.Itoa(*q.teamID))
	}
	if q.leaveTypeID != nil {
		v.Set("leaveTypeId", strconv.Itoa(*q.leaveTypeID))
	}
	v.Set("groupBy", q.groupBy.String())
	return v
}
