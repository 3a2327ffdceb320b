package rbac

import "rota-console/internal/domain"

// CheckRequest asks whether the caller's role may perform action on resource.
type CheckRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type PermissionsResponse struct {
	Role        string                      `json:"role"`
	Permissions []domain.PermissionResponse `json:"permissions"`
}
