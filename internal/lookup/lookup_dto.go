package lookup

import "rota-console/internal/domain"

type LeaveTypeOption struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	RequiresApproval bool   `json:"requires_approval"`
}

type TeamOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type EmployeeOption struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	TeamID *int   `json:"team_id,omitempty"`
}

// LeaveFilters populates the leave list filter bar and the create form.
type LeaveFilters struct {
	LeaveTypes []LeaveTypeOption `json:"leave_types"`
	Teams      []TeamOption      `json:"teams"`
	Employees  []EmployeeOption  `json:"employees"`
}

func mapLeaveType(t domain.LeaveType) LeaveTypeOption {
	return LeaveTypeOption{ID: t.LeaveTypeID, Name: t.LeaveTypeName, RequiresApproval: t.RequiresApproval}
}

func mapTeam(t domain.Team) TeamOption {
	return TeamOption{ID: t.TeamID, Name: t.TeamName}
}

func mapEmployee(e domain.Employee) EmployeeOption {
	return EmployeeOption{ID: e.EmployeeID, Name: e.FullName(), TeamID: e.TeamID}
}
