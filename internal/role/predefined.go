package role

import "github.com/SalimDiallo/LouraBackend/internal/permission"

// predefinedRole describes one of the seeded system roles. Permissions list
// catalog codes; anything that later disappears from the catalog is dropped
// on the next sync instead of failing it.
type predefinedRole struct {
	Code        string
	Name        string
	Description string
	Permissions []string
}

// PredefinedRoles returns the system role templates in sync order. The super
// admin template always carries the full catalog, so it never goes stale.
func PredefinedRoles() []predefinedRole {
	return []predefinedRole{
		{
			Code:        "super_admin",
			Name:        "Super Administrator",
			Description: "Full access to every feature",
			Permissions: permission.Codes(),
		},
		{
			Code:        "hr_admin",
			Name:        "HR Administrator",
			Description: "Complete human resources management",
			Permissions: []string{
				"can_view_employee", "can_create_employee", "can_update_employee",
				"can_delete_employee", "can_activate_employee",
				"can_view_department", "can_create_department", "can_update_department",
				"can_delete_department",
				"can_view_position", "can_create_position", "can_update_position",
				"can_delete_position",
				"can_view_contract", "can_create_contract", "can_update_contract",
				"can_delete_contract",
				"can_view_leave", "can_create_leave", "can_update_leave",
				"can_delete_leave", "can_approve_leave", "can_manage_leave_types",
				"can_manage_leave_balances",
				"can_view_payroll", "can_create_payroll", "can_update_payroll",
				"can_delete_payroll", "can_process_payroll",
				"can_view_role", "can_create_role", "can_update_role",
				"can_assign_role",
				"can_view_reports", "can_export_reports",
			},
		},
		{
			Code:        "hr_manager",
			Name:        "HR Manager",
			Description: "Day-to-day HR operations",
			Permissions: []string{
				"can_view_employee", "can_create_employee", "can_update_employee",
				"can_view_department", "can_update_department",
				"can_view_position",
				"can_view_contract", "can_create_contract", "can_update_contract",
				"can_view_leave", "can_create_leave", "can_update_leave",
				"can_approve_leave",
				"can_view_payroll",
				"can_view_role",
				"can_view_reports", "can_export_reports",
			},
		},
		{
			Code:        "manager",
			Name:        "Team Manager",
			Description: "Management of a single team",
			Permissions: []string{
				"can_view_employee",
				"can_view_department",
				"can_view_leave", "can_create_leave", "can_approve_leave",
				"can_view_reports",
			},
		},
		{
			Code:        "employee",
			Name:        "Employee",
			Description: "Baseline access for staff",
			Permissions: []string{
				"can_view_employee",
				"can_view_department",
				"can_view_leave", "can_create_leave",
				"can_view_payroll",
			},
		},
		{
			Code:        "readonly",
			Name:        "Read Only",
			Description: "Consultation without changes",
			Permissions: []string{
				"can_view_employee",
				"can_view_department",
				"can_view_position",
				"can_view_leave",
				"can_view_reports",
			},
		},
	}
}
