package departmenterrors

import (
	"net/http"

	"github.com/SalimDiallo/LouraBackend/internal/shared/apperror"
)

var (
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameTaken = apperror.New(
		apperror.CodeConflict,
		"a department with this name already exists in the organization",
		http.StatusConflict,
	)
	ErrHeadNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"department head not found in this organization",
		http.StatusBadRequest,
	)
	ErrDepartmentInUse = apperror.New(
		apperror.CodeInvalidState,
		"department still has employees assigned",
		http.StatusConflict,
	)
)
