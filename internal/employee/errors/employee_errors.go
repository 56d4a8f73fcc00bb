package employeeerrors

import (
	"net/http"

	"github.com/SalimDiallo/LouraBackend/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"an employee with this email already exists in the organization",
		http.StatusConflict,
	)
	ErrEmployeeNumberTaken = apperror.New(
		apperror.CodeConflict,
		"an employee with this employee_number already exists in the organization",
		http.StatusConflict,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTerminationDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid termination_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeNotFound,
		"manager not found in this organization",
		http.StatusNotFound,
	)
	ErrSelfManager = apperror.New(
		apperror.CodeInvalidInput,
		"an employee cannot be their own manager",
		http.StatusBadRequest,
	)
	ErrRoleNotAssignable = apperror.New(
		apperror.CodeNotFound,
		"role not found for this organization",
		http.StatusNotFound,
	)
	ErrUnknownPermissionCode = apperror.New(
		apperror.CodeInvalidInput,
		"unknown permission code",
		http.StatusBadRequest,
	)
	ErrPermissionAlreadyGranted = apperror.New(
		apperror.CodeConflict,
		"permission already granted to this employee",
		http.StatusConflict,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"employee account is deactivated",
		http.StatusConflict,
	)
)
