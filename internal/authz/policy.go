package authz

import (
	"context"

	"github.com/google/uuid"
)

// Action classifies an operation the way HTTP methods do: reads are safe,
// writes require role elevation.
type Action int

const (
	ActionRead Action = iota
	ActionWrite
)

// Resource is an organization-scoped record under an authorization check.
type Resource interface {
	ResourceOrganizationID() uuid.UUID
}

// OwnedResource additionally belongs to a single employee (a leave request,
// a payslip). ok is false when the resource has no owning employee.
type OwnedResource interface {
	Resource
	ResourceOwnerEmployeeID() (id uuid.UUID, ok bool)
}

// Env is everything a predicate may inspect. Resource is nil for
// collection-level checks.
type Env struct {
	Principal Principal
	Scope     Scope
	Action    Action
	Resource  Resource
}

type Predicate func(ctx context.Context, env Env) (bool, error)

// All combines predicates with logical AND, short-circuiting on the first
// deny or error.
func All(preds ...Predicate) Predicate {
	return func(ctx context.Context, env Env) (bool, error) {
		for _, p := range preds {
			ok, err := p(ctx, env)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// Allow evaluates the declared chain for a request. When a resource is
// present, InScope is ANDed in first regardless of the chain.
func Allow(ctx context.Context, env Env, preds ...Predicate) (bool, error) {
	if env.Resource != nil {
		ok, err := InScope(ctx, env)
		if err != nil || !ok {
			return false, err
		}
	}
	return All(preds...)(ctx, env)
}

// InScope requires the resource's organization to lie inside the principal's
// scope. With no resource it only requires a non-empty scope.
func InScope(ctx context.Context, env Env) (bool, error) {
	if env.Resource == nil {
		return !env.Scope.IsEmpty(), nil
	}
	return env.Scope.Contains(env.Resource.ResourceOrganizationID()), nil
}

// ReadOrElevated passes safe actions for any in-scope principal and defers
// writes to the elevated predicate.
func ReadOrElevated(elevated Predicate) Predicate {
	return func(ctx context.Context, env Env) (bool, error) {
		if env.Action == ActionRead {
			return true, nil
		}
		return elevated(ctx, env)
	}
}

// IsOwner passes only for owner-admin principals.
func IsOwner(ctx context.Context, env Env) (bool, error) {
	_, ok := env.Principal.(Owner)
	return ok, nil
}

// IsStaff passes only for employee principals.
func IsStaff(ctx context.Context, env Env) (bool, error) {
	_, ok := env.Principal.(Staff)
	return ok, nil
}

// IsHRAdmin: owner-admins always pass; staff pass on the HR-admin code set.
func IsHRAdmin(ctx context.Context, env Env) (bool, error) {
	switch p := env.Principal.(type) {
	case Owner:
		return true, nil
	case Staff:
		return p.IsHRAdmin(), nil
	default:
		return false, nil
	}
}

// IsOwnerOrHRAdmin: the resource's owning employee, or anyone IsHRAdmin
// accepts. Without an owned resource it falls back to the HR-admin check.
func IsOwnerOrHRAdmin(ctx context.Context, env Env) (bool, error) {
	if staff, ok := env.Principal.(Staff); ok {
		if owned, ok := env.Resource.(OwnedResource); ok {
			if ownerID, has := owned.ResourceOwnerEmployeeID(); has && ownerID == staff.EmployeeID {
				return true, nil
			}
		}
	}
	return IsHRAdmin(ctx, env)
}

// Engine carries the directory dependency for predicates that need lookups.
type Engine struct {
	dir Directory
}

func NewEngine(dir Directory) *Engine {
	return &Engine{dir: dir}
}

func (e *Engine) ResolveScope(ctx context.Context, p Principal) (Scope, error) {
	return ResolveScope(ctx, e.dir, p)
}

// IsManagerOrHRAdmin extends IsHRAdmin with the manager role code and, for
// staff without it, an actual subordinate lookup.
func (e *Engine) IsManagerOrHRAdmin() Predicate {
	return func(ctx context.Context, env Env) (bool, error) {
		switch p := env.Principal.(type) {
		case Owner:
			return true, nil
		case Staff:
			if p.IsHRAdmin() || p.RoleCode == RoleCodeManager || p.RoleCode == RoleCodeHRManager {
				return true, nil
			}
			return e.dir.HasSubordinates(ctx, p.EmployeeID)
		default:
			return false, nil
		}
	}
}
