package domain

type LeaveType struct {
	LeaveTypeID      int     `json:"leaveTypeId"`
	LeaveTypeName    string  `json:"leaveTypeName"`
	RequiresApproval bool    `json:"requiresApproval"`
	Description      *string `json:"description,omitempty"`
}

type Team struct {
	TeamID      int     `json:"teamId"`
	TeamName    string  `json:"teamName"`
	Description *string `json:"description,omitempty"`
}

type Employee struct {
	EmployeeID  int     `json:"employeeId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	TeamID      *int    `json:"teamId,omitempty"`
	TeamName    *string `json:"teamName,omitempty"`
	IsActive    bool    `json:"isActive"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
