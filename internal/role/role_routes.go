package role

import (
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	roles := r.Group("/roles")
	{
		roles.GET("", middleware.Authorize(authz.ActionRead), h.GetAll)
		roles.GET("/:id", middleware.Authorize(authz.ActionRead), h.GetById)
		roles.POST("", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Create)
		roles.PUT("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Update)
		roles.DELETE("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Delete)
	}
}
