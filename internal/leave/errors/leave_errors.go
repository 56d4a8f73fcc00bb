package leaveerrors

import (
	"net/http"

	"github.com/SalimDiallo/LouraBackend/internal/shared/apperror"
)

var (
	ErrInvalidLeaveRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNameTaken = apperror.New(
		apperror.CodeConflict,
		"a leave type with this name already exists in the organization",
		http.StatusConflict,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must be on or after start_date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrTotalDaysMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"total_days does not match the requested date span",
		http.StatusBadRequest,
	)
	ErrMaxConsecutiveExceeded = apperror.New(
		apperror.CodeInvalidInput,
		"request exceeds the maximum consecutive days for this leave type",
		http.StatusBadRequest,
	)
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"leave request is no longer pending",
		http.StatusConflict,
	)
	ErrNotRequester = apperror.New(
		apperror.CodeForbidden,
		"only the requesting employee can cancel this leave request",
		http.StatusForbidden,
	)
	ErrStaffOnly = apperror.New(
		apperror.CodeForbidden,
		"only employees can submit leave requests",
		http.StatusForbidden,
	)
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave balance not found",
		http.StatusNotFound,
	)
)
