package payrollerrors

import (
	"net/http"

	"github.com/SalimDiallo/LouraBackend/internal/shared/apperror"
)

var (
	ErrInvalidPeriodID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll period id",
		http.StatusBadRequest,
	)
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll period not found",
		http.StatusNotFound,
	)
	ErrPeriodNameTaken = apperror.New(
		apperror.CodeConflict,
		"a payroll period with this name already exists in the organization",
		http.StatusConflict,
	)
	ErrPeriodClosed = apperror.New(
		apperror.CodeInvalidState,
		"payroll period is completed and no longer accepts changes",
		http.StatusConflict,
	)
	ErrPeriodNotEmpty = apperror.New(
		apperror.CodeInvalidState,
		"payroll period still has payslips",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"payroll period status can only move forward",
		http.StatusConflict,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must not be before start_date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"dates must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip id",
		http.StatusBadRequest,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrDuplicatePayslip = apperror.New(
		apperror.CodeConflict,
		"employee already has a payslip in this period",
		http.StatusConflict,
	)
	ErrEmployeeNotInOrganization = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to the period's organization",
		http.StatusBadRequest,
	)
	ErrAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"payslip is already marked as paid",
		http.StatusConflict,
	)
)
