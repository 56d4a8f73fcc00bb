package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the public login/refresh endpoints on the bare group
// and the authenticated ones behind the supplied middleware chain.
func RegisterRoutes(public *gin.RouterGroup, authed *gin.RouterGroup, h *Handler) {
	a := public.Group("/auth")
	{
		a.POST("/login", h.LoginEmployee)
		a.POST("/admin/login", h.LoginAdmin)
		a.POST("/admin/register", h.RegisterAdmin)
		a.POST("/refresh", h.Refresh)
		a.POST("/logout", h.Logout)
	}

	me := authed.Group("/auth")
	{
		me.GET("/me", h.Me)
		me.POST("/change-password", h.ChangePassword)
	}
}
