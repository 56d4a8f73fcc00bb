package employee

import (
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", middleware.Authorize(authz.ActionRead), h.GetAll)
		employees.GET("/:id", middleware.Authorize(authz.ActionRead), h.GetById)
		employees.GET("/:id/permissions", middleware.Authorize(authz.ActionRead, authz.IsHRAdmin), h.GetPermissions)

		employees.POST("", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Create)
		employees.PUT("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Update)
		employees.POST("/:id/activate", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Activate)
		employees.POST("/:id/deactivate", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Deactivate)
		employees.POST("/:id/role", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.AssignRole)
		employees.POST("/:id/permissions", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.GrantPermission)
		employees.DELETE("/:id/permissions/:code", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.RevokePermission)
	}
}
