package auth

import "time"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Username    string    `json:"username"`
	ExpiresAt   time.Time `json:"expires_at"`
	AccessToken string    `json:"access_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required,min=8,max=100"`
	ConfirmNewPassword string `json:"confirm_new_password" binding:"required"`
}

type RegisterRequest struct {
	EmployeeID      int    `json:"employee_id" binding:"required,gt=0"`
	Username        string `json:"username" binding:"required,min=3"`
	Password        string `json:"password" binding:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	RoleID          int    `json:"role_id" binding:"required,gt=0"`
}

type ProfileResponse struct {
	UserID       int        `json:"user_id"`
	EmployeeID   int        `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Username     string     `json:"username"`
	RoleID       int        `json:"role_id"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// Session is a Gateway-issued credential ready to be stored in the cookie.
type Session struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}
