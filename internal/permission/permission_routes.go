package permission

import (
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	permissions := r.Group("/permissions")
	{
		permissions.GET("", middleware.Authorize(authz.ActionRead), h.List)
	}
}
