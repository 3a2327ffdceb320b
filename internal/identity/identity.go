package identity

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"

	// ClaimEmployeeID is the session attribute that links a login to an employee record.
	ClaimEmployeeID = "employeeId"
	// claimRoleURI is the role claim type the Gateway's token issuer emits.
	claimRoleURI = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

type Kind int

const (
	// KindUnidentifiedEmployee is the zero value: a non-admin session whose
	// employee linkage is missing or malformed.
	KindUnidentifiedEmployee Kind = iota
	KindEmployee
	KindAdmin
)

func (k Kind) String() string {
	switch k {
	case KindAdmin:
		return "admin"
	case KindEmployee:
		return "employee"
	default:
		return "unidentified_employee"
	}
}

// Identity is the resolved caller of one inbound request. It is a value:
// build it once per request and pass it explicitly.
type Identity struct {
	kind       Kind
	employeeID int
	hasEmpID   bool
	username   string
}

func Admin(username string, employeeID *int) Identity {
	id := Identity{kind: KindAdmin, username: username}
	if employeeID != nil {
		id.employeeID, id.hasEmpID = *employeeID, true
	}
	return id
}

func Employee(username string, employeeID int) Identity {
	return Identity{kind: KindEmployee, username: username, employeeID: employeeID, hasEmpID: true}
}

func Unidentified(username string) Identity {
	return Identity{kind: KindUnidentifiedEmployee, username: username}
}

func (i Identity) Kind() Kind         { return i.kind }
func (i Identity) IsAdmin() bool      { return i.kind == KindAdmin }
func (i Identity) Username() string   { return i.username }
func (i Identity) IsUnidentified() bool {
	return i.kind == KindUnidentifiedEmployee
}

// Role is the policy subject for route guards. Unidentified employees keep
// the employee routes; the leave rules refuse them later.
func (i Identity) Role() string {
	if i.kind == KindAdmin {
		return RoleAdmin
	}
	return RoleEmployee
}

// EmployeeID returns the linked employee, if any.
func (i Identity) EmployeeID() (int, bool) {
	return i.employeeID, i.hasEmpID
}

// Owns reports whether the caller is the employee with the given id.
func (i Identity) Owns(employeeID int) bool {
	return i.hasEmpID && i.employeeID == employeeID
}

func (i Identity) String() string {
	if i.hasEmpID {
		return fmt.Sprintf("%s(%d)", i.kind, i.employeeID)
	}
	return i.kind.String()
}

// Claims are the session attributes the browser-session layer recovered
// from the Gateway token.
type Claims struct {
	Subject    string
	Username   string
	Roles      []string
	Attributes map[string]string
}

type Resolver struct {
	logger *zap.Logger
}

func NewResolver(logger ...*zap.Logger) *Resolver {
	l := zap.L().Named("identity.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("identity.resolver")
	}
	return &Resolver{logger: l}
}

// Resolve never fails: malformed employee linkage yields an unidentified
// employee, which callers treat as a configuration fault.
func (r *Resolver) Resolve(c Claims) Identity {
	empID, ok := parseEmployeeID(c.Attributes[ClaimEmployeeID])

	if hasRole(c.Roles, RoleAdmin) {
		if ok {
			return Admin(c.Username, &empID)
		}
		return Admin(c.Username, nil)
	}

	if !ok {
		r.logger.Warn("session has no usable employee linkage",
			zap.String("username", c.Username),
			zap.String("subject", c.Subject),
			zap.String("raw_employee_id", c.Attributes[ClaimEmployeeID]),
		)
		return Unidentified(c.Username)
	}
	return Employee(c.Username, empID)
}

func parseEmployeeID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if strings.EqualFold(strings.TrimSpace(r), want) {
			return true
		}
	}
	return false
}

// ClaimsFromMap converts decoded token claims into Claims. Role claims may be
// a single string or a list; numeric attributes are stringified.
func ClaimsFromMap(m map[string]any) Claims {
	c := Claims{Attributes: map[string]string{}}

	c.Subject = stringClaim(m["sub"])
	c.Username = firstNonEmpty(
		stringClaim(m["unique_name"]),
		stringClaim(m["name"]),
		stringClaim(m["http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"]),
		c.Subject,
	)

	for _, key := range []string{"role", "roles", claimRoleURI} {
		c.Roles = append(c.Roles, listClaim(m[key])...)
	}

	for k, v := range m {
		switch k {
		case "sub", "role", "roles", claimRoleURI:
			continue
		}
		if s := stringClaim(v); s != "" {
			c.Attributes[k] = s
		}
	}
	return c
}

func stringClaim(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

func listClaim(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := stringClaim(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Resolve resolves claims with the default logger.
func Resolve(c Claims) Identity {
	return NewResolver().Resolve(c)
}
