package payroll

import (
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	periods := r.Group("/payroll-periods")
	{
		periods.GET("", middleware.Authorize(authz.ActionRead, authz.IsHRAdmin), h.ListPeriods)
		periods.GET("/:id", middleware.Authorize(authz.ActionRead, authz.IsHRAdmin), h.GetPeriod)
		periods.POST("", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.CreatePeriod)
		periods.PUT("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.UpdatePeriod)
		periods.DELETE("/:id", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.DeletePeriod)
	}

	payslips := r.Group("/payslips")
	{
		payslips.GET("", middleware.Authorize(authz.ActionRead), h.ListPayslips)
		payslips.GET("/:id", middleware.Authorize(authz.ActionRead), h.GetPayslip)
		payslips.GET("/:id/pdf", middleware.Authorize(authz.ActionRead), h.DownloadPayslip)
		payslips.POST("", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.CreatePayslip)
		payslips.POST("/:id/mark-as-paid", middleware.Authorize(authz.ActionWrite, authz.IsHRAdmin), h.MarkPaid)
	}
}
