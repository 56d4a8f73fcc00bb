package position

import (
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	positions := r.Group("/positions")
	{
		positions.GET("", middleware.Authorize(authz.ActionRead), h.GetAll)
		positions.GET("/:id", middleware.Authorize(authz.ActionRead), h.GetById)
		positions.POST("", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Create)
		positions.PUT("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Update)
		positions.DELETE("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.Delete)
	}
}
