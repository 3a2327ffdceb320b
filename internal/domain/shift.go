package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Shift struct {
	ShiftID            int       `json:"shiftId"`
	EmployeeID         int       `json:"employeeId"`
	EmployeeFirstName  string    `json:"employeeFirstName"`
	EmployeeLastName   string    `json:"employeeLastName"`
	TeamID             *int      `json:"teamId"`
	TeamName           *string   `json:"teamName"`
	ShiftTypeID        *int      `json:"shiftTypeId"`
	ShiftTypeName      *string   `json:"shiftTypeName"`
	IsOnCall           bool      `json:"isOnCall"`
	ShiftStartDateTime time.Time `json:"shiftStartDateTime"`
	ShiftEndDateTime   time.Time `json:"shiftEndDateTime"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (s Shift) EmployeeFullName() string {
	return strings.TrimSpace(s.EmployeeFirstName + " " + s.EmployeeLastName)
}

// ShiftFilter mirrors the Gateway shift query. Nil fields are omitted.
type ShiftFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	EmployeeID *int
	TeamID     *int
	IsOnCall   *bool
}

func (f ShiftFilter) Values() url.Values {
	v := url.Values{}
	if f.StartDate != nil {
		v.Set("startDate", f.StartDate.Format(DateLayout))
	}
	if f.EndDate != nil {
		v.Set("endDate", f.EndDate.Format(DateLayout))
	}
	if f.EmployeeID != nil {
		v.Set("employeeId", strconv.Itoa(*f.EmployeeID))
	}
	if f.TeamID != nil {
		v.Set("teamId", strconv.Itoa(*f.TeamID))
	}
	if f.IsOnCall != nil {
		v.Set("isOnCall", strconv.FormatBool(*f.IsOnCall))
	}
	return v
}
