package domain

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	Token      *string    `json:"token,omitempty"`
	Expiration *time.Time `json:"expiration,omitempty"`
}

type UserProfile struct {
	UserID           int        `json:"userId"`
	EmployeeID       int        `json:"employeeId"`
	EmployeeFullName string     `json:"employeeFullName"`
	Username         string     `json:"username"`
	RoleID           int        `json:"roleId"`
	RoleName         string     `json:"roleName"`
	IsActive         bool       `json:"isActive"`
	LastLogin        *time.Time `json:"lastLogin,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type ChangePassword struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

type RegisterUser struct {
	EmployeeID      int    `json:"employeeId"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	RoleID          int    `json:"roleId"`
}
