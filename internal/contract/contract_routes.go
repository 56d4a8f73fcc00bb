package contract

import (
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	contracts := r.Group("/contracts")
	{
		contracts.GET("", middleware.Authorize(authz.ActionRead), h.GetAll)
		contracts.GET("/:id", middleware.Authorize(authz.ActionRead), h.GetById)
		contracts.POST("", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Create)
		contracts.PUT("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Update)
		contracts.DELETE("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Delete)
	}
}
