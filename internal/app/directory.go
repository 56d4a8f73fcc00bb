package app

import (
	"context"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/employee"
	"github.com/SalimDiallo/LouraBackend/internal/organization"

	"github.com/google/uuid"
)

// directory adapts the organization and employee repositories to the lookup
// interface the policy engine works against.
type directory struct {
	orgs      organization.Repository
	employees employee.Repository
}

func newDirectory(orgs organization.Repository, employees employee.Repository) authz.Directory {
	return &directory{orgs: orgs, employees: employees}
}

func (d *directory) OrganizationsForAdmin(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error) {
	return d.orgs.OrgIDsByAdmin(ctx, adminID)
}

func (d *directory) HasSubordinates(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	return d.employees.HasSubordinates(ctx, employeeID)
}
