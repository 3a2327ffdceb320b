package rbac

import "rota-console/internal/domain"

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

type RoleInheritanceRow struct {
	Role   string
	Parent string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions() ([]RolePermissionRow, error)
	GetRoleInheritance() ([]RoleInheritanceRow, error)
}

// staticRepository serves the console's fixed role table. Roles themselves
// are issued by the Gateway; only what each role may do here lives in code.
type staticRepository struct{}

func NewStaticRepository() Repository {
	return staticRepository{}
}

func (staticRepository) GetRolePermissions() ([]RolePermissionRow, error) {
	return []RolePermissionRow{
		{domain.RoleEmployee, "leave", "read"},
		{domain.RoleEmployee, "leave", "create"},
		{domain.RoleEmployee, "leave", "cancel"},
		{domain.RoleEmployee, "dashboard", "read"},
		{domain.RoleEmployee, "lookup", "read"},
		{domain.RoleEmployee, "shift", "read"},
		{domain.RoleEmployee, "profile", "read"},
		{domain.RoleEmployee, "profile", "update"},

		{domain.RoleAdmin, "leave", "*"},
		{domain.RoleAdmin, "user", "*"},
		{domain.RoleAdmin, "lookup", "*"},
		{domain.RoleAdmin, "shift", "*"},
	}, nil
}

func (staticRepository) GetRoleInheritance() ([]RoleInheritanceRow, error) {
	return []RoleInheritanceRow{
		{Role: domain.RoleAdmin, Parent: domain.RoleEmployee},
	}, nil
}
