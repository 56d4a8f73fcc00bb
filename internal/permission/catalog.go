package permission

// Definition describes one catalog entry. The catalog is fixed at build time
// and loaded into the store by Sync.
type Definition struct {
	Name        string
	Category    string
	Description string
}

const (
	CategoryEmployees   = "Employees"
	CategoryDepartments = "Departments"
	CategoryPositions   = "Positions"
	CategoryContracts   = "Contracts"
	CategoryLeaves      = "Leaves"
	CategoryPayroll     = "Payroll"
	CategoryRoles       = "Roles"
	CategoryReports     = "Reports"
)

// Catalog maps permission code to its definition.
var Catalog = map[string]Definition{
	// Employees
	"can_view_employee": {
		Name:        "View employees",
		Category:    CategoryEmployees,
		Description: "Can view the employee list and details",
	},
	"can_create_employee": {
		Name:        "Create employees",
		Category:    CategoryEmployees,
		Description: "Can create new employees",
	},
	"can_update_employee": {
		Name:        "Update employees",
		Category:    CategoryEmployees,
		Description: "Can update employee information",
	},
	"can_delete_employee": {
		Name:        "Delete employees",
		Category:    CategoryEmployees,
		Description: "Can delete employees",
	},
	"can_activate_employee": {
		Name:        "Activate/deactivate employees",
		Category:    CategoryEmployees,
		Description: "Can activate or deactivate employee accounts",
	},
	"can_manage_employee_permissions": {
		Name:        "Manage employee permissions",
		Category:    CategoryEmployees,
		Description: "Can grant or revoke employee permissions",
	},

	// Departments
	"can_view_department": {
		Name:        "View departments",
		Category:    CategoryDepartments,
		Description: "Can view the department list and details",
	},
	"can_create_department": {
		Name:        "Create departments",
		Category:    CategoryDepartments,
		Description: "Can create new departments",
	},
	"can_update_department": {
		Name:        "Update departments",
		Category:    CategoryDepartments,
		Description: "Can update department information",
	},
	"can_delete_department": {
		Name:        "Delete departments",
		Category:    CategoryDepartments,
		Description: "Can delete departments",
	},

	// Positions
	"can_view_position": {
		Name:        "View positions",
		Category:    CategoryPositions,
		Description: "Can view the position list and details",
	},
	"can_create_position": {
		Name:        "Create positions",
		Category:    CategoryPositions,
		Description: "Can create new positions",
	},
	"can_update_position": {
		Name:        "Update positions",
		Category:    CategoryPositions,
		Description: "Can update position information",
	},
	"can_delete_position": {
		Name:        "Delete positions",
		Category:    CategoryPositions,
		Description: "Can delete positions",
	},

	// Contracts
	"can_view_contract": {
		Name:        "View contracts",
		Category:    CategoryContracts,
		Description: "Can view the contract list and details",
	},
	"can_create_contract": {
		Name:        "Create contracts",
		Category:    CategoryContracts,
		Description: "Can create new contracts",
	},
	"can_update_contract": {
		Name:        "Update contracts",
		Category:    CategoryContracts,
		Description: "Can update contract information",
	},
	"can_delete_contract": {
		Name:        "Delete contracts",
		Category:    CategoryContracts,
		Description: "Can delete contracts",
	},

	// Leaves
	"can_view_leave": {
		Name:        "View leaves",
		Category:    CategoryLeaves,
		Description: "Can view the leave list and details",
	},
	"can_create_leave": {
		Name:        "Create leave requests",
		Category:    CategoryLeaves,
		Description: "Can create leave requests",
	},
	"can_update_leave": {
		Name:        "Update leaves",
		Category:    CategoryLeaves,
		Description: "Can update leave requests",
	},
	"can_delete_leave": {
		Name:        "Delete leaves",
		Category:    CategoryLeaves,
		Description: "Can delete leave requests",
	},
	"can_approve_leave": {
		Name:        "Approve leaves",
		Category:    CategoryLeaves,
		Description: "Can approve or reject leave requests",
	},
	"can_manage_leave_types": {
		Name:        "Manage leave types",
		Category:    CategoryLeaves,
		Description: "Can create and update leave types",
	},
	"can_manage_leave_balances": {
		Name:        "Manage leave balances",
		Category:    CategoryLeaves,
		Description: "Can adjust employee leave balances",
	},

	// Payroll
	"can_view_payroll": {
		Name:        "View payroll",
		Category:    CategoryPayroll,
		Description: "Can view payroll information",
	},
	"can_create_payroll": {
		Name:        "Create payslips",
		Category:    CategoryPayroll,
		Description: "Can create payslips",
	},
	"can_update_payroll": {
		Name:        "Update payroll",
		Category:    CategoryPayroll,
		Description: "Can update payroll information",
	},
	"can_delete_payroll": {
		Name:        "Delete payslips",
		Category:    CategoryPayroll,
		Description: "Can delete payslips",
	},
	"can_process_payroll": {
		Name:        "Process payroll",
		Category:    CategoryPayroll,
		Description: "Can mark payslips as paid",
	},

	// Roles
	"can_view_role": {
		Name:        "View roles",
		Category:    CategoryRoles,
		Description: "Can view the role list and details",
	},
	"can_create_role": {
		Name:        "Create roles",
		Category:    CategoryRoles,
		Description: "Can create new roles",
	},
	"can_update_role": {
		Name:        "Update roles",
		Category:    CategoryRoles,
		Description: "Can update existing roles",
	},
	"can_delete_role": {
		Name:        "Delete roles",
		Category:    CategoryRoles,
		Description: "Can delete roles",
	},
	"can_assign_role": {
		Name:        "Assign roles",
		Category:    CategoryRoles,
		Description: "Can assign roles to employees",
	},

	// Reports
	"can_view_reports": {
		Name:        "View reports",
		Category:    CategoryReports,
		Description: "Can view reports and statistics",
	},
	"can_export_reports": {
		Name:        "Export reports",
		Category:    CategoryReports,
		Description: "Can export reports as PDF/Excel",
	},
}

// Codes returns every catalog code. Order is unspecified.
func Codes() []string {
	codes := make([]string, 0, len(Catalog))
	for code := range Catalog {
		codes = append(codes, code)
	}
	return codes
}
