package authz

import "github.com/google/uuid"

// Principal is the closed set of account kinds that can act on the API.
// Owner-admins and employees live in separate identity tables, so the two
// variants never share an id space.
type Principal interface {
	principal()
}

// Owner is an owner-admin account. It manages one or more organizations and
// carries no permission set of its own.
type Owner struct {
	AdminID uuid.UUID
}

// Staff is an employee account, bound to exactly one organization.
type Staff struct {
	EmployeeID     uuid.UUID
	OrganizationID uuid.UUID
	RoleCode       string
}

func (Owner) principal() {}
func (Staff) principal() {}

// Privileged role codes. These are matched against Role.code, a tenant-editable
// string: a custom role renamed to one of these codes gains the privilege.
// Kept as-is from the original system; see the escalation test in policy_test.go.
const (
	RoleCodeSuperAdmin = "super_admin"
	RoleCodeHRAdmin    = "hr_admin"
	RoleCodeHRManager  = "hr_manager"
	RoleCodeManager    = "manager"
	RoleCodeEmployee   = "employee"
	RoleCodeReadonly   = "readonly"
)

var superAdminCodes = map[string]struct{}{
	RoleCodeSuperAdmin: {},
}

var hrAdminCodes = map[string]struct{}{
	RoleCodeSuperAdmin: {},
	RoleCodeHRAdmin:    {},
}

// IsSuperAdmin reports whether the staff's role code is in the super-admin set.
func (s Staff) IsSuperAdmin() bool {
	_, ok := superAdminCodes[s.RoleCode]
	return ok
}

// IsHRAdmin reports whether the staff's role code is in the HR-admin set.
func (s Staff) IsHRAdmin() bool {
	_, ok := hrAdminCodes[s.RoleCode]
	return ok
}
