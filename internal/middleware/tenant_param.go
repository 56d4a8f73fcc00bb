package middleware

import (
	"net/http"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestOrganization picks the tenant the request operates on and writes
// the error response itself when it cannot. Staff are pinned to their own
// organization; owner-admins name one of theirs with the organization_id
// query parameter, checked against their resolved scope.
func RequestOrganization(c *gin.Context) (uuid.UUID, bool) {
	principal, ok := GetPrincipal(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return uuid.Nil, false
	}

	switch p := principal.(type) {
	case authz.Staff:
		return p.OrganizationID, true
	case authz.Owner:
		orgID, err := uuid.Parse(c.Query("organization_id"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"organization_id query parameter is required", nil)
			return uuid.Nil, false
		}
		scope, ok := GetScope(c)
		if !ok || !scope.Contains(orgID) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "organization not found", nil)
			return uuid.Nil, false
		}
		return orgID, true
	default:
		response.Error(c, http.StatusForbidden, "FORBIDDEN",
			"You do not have permission to access this resource", nil)
		return uuid.Nil, false
	}
}

// ScopeOrgIDs returns the resolved scope as a slice for repo-level filters.
func ScopeOrgIDs(c *gin.Context) []uuid.UUID {
	scope, ok := GetScope(c)
	if !ok {
		return nil
	}
	return scope.OrgIDs()
}
