package authz

import (
	"context"

	"github.com/google/uuid"
)

// Directory is the lookup capability the engine needs from the rest of the
// system. Concrete employee/organization packages implement it; authz never
// imports them.
type Directory interface {
	OrganizationsForAdmin(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error)
	HasSubordinates(ctx context.Context, employeeID uuid.UUID) (bool, error)
}

// Scope is the set of organizations a principal may act within.
type Scope struct {
	orgs map[uuid.UUID]struct{}
}

func NewScope(orgIDs ...uuid.UUID) Scope {
	s := Scope{orgs: make(map[uuid.UUID]struct{}, len(orgIDs))}
	for _, id := range orgIDs {
		s.orgs[id] = struct{}{}
	}
	return s
}

func (s Scope) Contains(orgID uuid.UUID) bool {
	_, ok := s.orgs[orgID]
	return ok
}

func (s Scope) IsEmpty() bool {
	return len(s.orgs) == 0
}

// OrgIDs returns the scope members for repository-level filtering.
func (s Scope) OrgIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.orgs))
	for id := range s.orgs {
		ids = append(ids, id)
	}
	return ids
}

// ResolveScope derives the organization scope for a principal.
// An unrecognized principal kind yields an empty scope, never an error:
// every downstream check then denies.
func ResolveScope(ctx context.Context, dir Directory, p Principal) (Scope, error) {
	switch p := p.(type) {
	case Owner:
		orgIDs, err := dir.OrganizationsForAdmin(ctx, p.AdminID)
		if err != nil {
			return Scope{}, err
		}
		return NewScope(orgIDs...), nil
	case Staff:
		return NewScope(p.OrganizationID), nil
	default:
		return NewScope(), nil
	}
}
