package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(zap.NewNop())

	t.Run("admin without employee link", func(t *testing.T) {
		id := r.Resolve(Claims{Username: "root", Roles: []string{"Admin"}})

		assert.True(t, id.IsAdmin())
		assert.Equal(t, KindAdmin, id.Kind())
		_, ok := id.EmployeeID()
		assert.False(t, ok)
	})

	t.Run("admin with employee link", func(t *testing.T) {
		id := r.Resolve(Claims{Roles: []string{"admin"}, Attributes: map[string]string{ClaimEmployeeID: "3"}})

		assert.True(t, id.IsAdmin())
		emp, ok := id.EmployeeID()
		assert.True(t, ok)
		assert.Equal(t, 3, emp)
	})

	t.Run("employee", func(t *testing.T) {
		id := r.Resolve(Claims{Roles: []string{"Employee"}, Attributes: map[string]string{ClaimEmployeeID: "7"}})

		assert.Equal(t, KindEmployee, id.Kind())
		assert.True(t, id.Owns(7))
		assert.False(t, id.Owns(11))
	})

	t.Run("missing employee attribute", func(t *testing.T) {
		id := r.Resolve(Claims{Roles: []string{"Employee"}})

		assert.True(t, id.IsUnidentified())
		assert.False(t, id.Owns(0))
	})

	t.Run("malformed employee attribute", func(t *testing.T) {
		for _, raw := range []string{"abc", "-4", "0", "7.5"} {
			id := r.Resolve(Claims{Attributes: map[string]string{ClaimEmployeeID: raw}})
			assert.True(t, id.IsUnidentified(), raw)
		}
	})
}

func TestIdentity_ZeroValueIsUnidentified(t *testing.T) {
	var id Identity
	assert.True(t, id.IsUnidentified())
	assert.False(t, id.IsAdmin())
	assert.Equal(t, RoleEmployee, id.Role())
}

func TestIdentity_Role(t *testing.T) {
	assert.Equal(t, RoleAdmin, Admin("root", nil).Role())
	assert.Equal(t, RoleEmployee, Employee("jane", 7).Role())
}

func TestClaimsFromMap(t *testing.T) {
	c := ClaimsFromMap(map[string]any{
		"sub":         "u-1",
		"unique_name": "jdoe",
		claimRoleURI:  []any{"Admin", "Scheduler"},
		"employeeId":  float64(42),
	})

	assert.Equal(t, "u-1", c.Subject)
	assert.Equal(t, "jdoe", c.Username)
	assert.ElementsMatch(t, []string{"Admin", "Scheduler"}, c.Roles)
	assert.Equal(t, "42", c.Attributes[ClaimEmployeeID])

	id := NewResolver(zap.NewNop()).Resolve(c)
	assert.True(t, id.IsAdmin())
	emp, _ := id.EmployeeID()
	assert.Equal(t, 42, emp)
}

func TestClaimsFromMap_SingleRoleString(t *testing.T) {
	c := ClaimsFromMap(map[string]any{"role": "Employee", "employeeId": "9"})

	assert.Equal(t, []string{"Employee"}, c.Roles)
	id := NewResolver(zap.NewNop()).Resolve(c)
	assert.Equal(t, KindEmployee, id.Kind())
}
