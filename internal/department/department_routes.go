package department

import (
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	depts := r.Group("/departments")
	{
		depts.GET("", middleware.Authorize(authz.ActionRead), h.GetAll)
		depts.GET("/:id", middleware.Authorize(authz.ActionRead), h.GetById)
		depts.POST("", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Create)
		depts.PUT("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Update)
		depts.DELETE("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Delete)
	}
}
