package middleware

import (
	"net/http"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ResolveScope derives the principal's organization scope once per request.
// An unresolvable principal gets an empty scope, which denies everywhere
// downstream instead of erroring.
func ResolveScope(engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		scope, err := engine.ResolveScope(c.Request.Context(), principal)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to resolve scope", nil)
			c.Abort()
			return
		}

		c.Set(ContextScope, scope)
		c.Next()
	}
}

// Authorize gates a route on the declared predicate chain. Object-level scope
// checks still run in the services; this is the collection-level gate.
func Authorize(action authz.Action, preds ...authz.Predicate) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok1 := GetPrincipal(c)
		scope, ok2 := GetScope(c)

		if !ok1 || !ok2 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		env := authz.Env{
			Principal: principal,
			Scope:     scope,
			Action:    action,
		}

		allowed, err := authz.Allow(c.Request.Context(), env, preds...)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
