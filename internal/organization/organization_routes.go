package organization

import (
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	// The sector catalog is shared reference data; any authenticated caller
	// may read it.
	r.GET("/categories", h.ListCategories)

	orgs := r.Group("/organizations")
	orgs.Use(middleware.Authorize(authz.ActionWrite, authz.IsOwner))
	{
		orgs.POST("", h.Create)
		orgs.GET("", h.GetAll)
		orgs.GET("/:id", h.GetById)
		orgs.PUT("/:id", h.Update)
		orgs.DELETE("/:id", h.Delete)
		orgs.PUT("/:id/settings", h.UpdateSettings)
	}
}
