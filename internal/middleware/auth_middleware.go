package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ContextPrincipal = "principal"
	ContextScope     = "scope"
	ContextActorID   = "actor_id"

	// Principal kind claim values. Owner-admins and employees are separate
	// account universes; the token says which table the subject lives in.
	PrincipalKindAdmin    = "admin"
	PrincipalKindEmployee = "employee"
)

// Authenticate parses the bearer token (header or cookie) and attaches the
// resolved principal to the request. Tokens carrying a refresh claim are
// rejected here; they are only good for the refresh endpoint.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return secret, nil
		})

		if err != nil || !token.Valid {
			code := "INVALID_TOKEN"
			message := "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code = "TOKEN_EXPIRED"
				message = "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		if use, _ := claims["token_use"].(string); use == "refresh" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Refresh token cannot access resources", nil)
			c.Abort()
			return
		}

		principal, err := principalFromClaims(claims)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", err.Error(), nil)
			c.Abort()
			return
		}

		c.Set(ContextPrincipal, principal)
		switch p := principal.(type) {
		case authz.Owner:
			c.Set(ContextActorID, p.AdminID.String())
		case authz.Staff:
			c.Set(ContextActorID, p.EmployeeID.String())
			c.Set("organization_id", p.OrganizationID.String())
			c.Set("role_code", p.RoleCode)
		}

		c.Next()
	}
}

func principalFromClaims(claims jwt.MapClaims) (authz.Principal, error) {
	kind, _ := claims["principal_kind"].(string)
	sub, _ := claims["sub"].(string)

	subID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("subject not found in token")
	}

	switch kind {
	case PrincipalKindAdmin:
		return authz.Owner{AdminID: subID}, nil
	case PrincipalKindEmployee:
		orgClaim, _ := claims["organization_id"].(string)
		orgID, err := uuid.Parse(orgClaim)
		if err != nil {
			return nil, fmt.Errorf("organization not found in token")
		}
		roleCode, _ := claims["role_code"].(string)
		return authz.Staff{
			EmployeeID:     subID,
			OrganizationID: orgID,
			RoleCode:       roleCode,
		}, nil
	default:
		return nil, fmt.Errorf("unknown principal kind")
	}
}

// GetPrincipal retrieves the authenticated principal set by Authenticate.
func GetPrincipal(c *gin.Context) (authz.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(authz.Principal)
	return p, ok
}

// GetScope retrieves the organization scope set by ResolveScope.
func GetScope(c *gin.Context) (authz.Scope, bool) {
	v, ok := c.Get(ContextScope)
	if !ok {
		return authz.Scope{}, false
	}
	s, ok := v.(authz.Scope)
	return s, ok
}
