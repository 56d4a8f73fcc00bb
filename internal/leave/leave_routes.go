package leave

import (
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, engine *authz.Engine) {
	types := r.Group("/leave-types")
	{
		types.GET("", middleware.Authorize(authz.ActionRead), h.ListLeaveTypes)
		types.POST("", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.CreateLeaveType)
		types.PUT("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.UpdateLeaveType)
		types.DELETE("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.DeleteLeaveType)
	}

	leaves := r.Group("/leaves")
	{
		leaves.GET("", middleware.Authorize(authz.ActionRead), h.GetAll)
		leaves.GET("/:id", middleware.Authorize(authz.ActionRead), h.GetById)
		leaves.POST("", middleware.Authorize(authz.ActionWrite, authz.IsStaff), h.Submit)
		leaves.POST("/:id/approve", middleware.Authorize(authz.ActionWrite, engine.IsManagerOrHRAdmin()), h.Approve)
		leaves.POST("/:id/reject", middleware.Authorize(authz.ActionWrite, engine.IsManagerOrHRAdmin()), h.Reject)
		leaves.POST("/:id/cancel", middleware.Authorize(authz.ActionWrite, authz.IsStaff), h.Cancel)
	}

	balances := r.Group("/leave-balances")
	{
		balances.GET("", middleware.Authorize(authz.ActionRead), h.ListBalances)
		balances.PUT("", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.AdjustBalance)
	}
}
