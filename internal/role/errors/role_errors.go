package roleerrors

import (
	"net/http"

	"github.com/SalimDiallo/LouraBackend/internal/shared/apperror"
)

var (
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid role id",
		http.StatusBadRequest,
	)
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"role not found",
		http.StatusNotFound,
	)
	ErrRoleCodeTaken = apperror.New(
		apperror.CodeConflict,
		"a role with this code already exists in the organization",
		http.StatusConflict,
	)
	ErrSystemRoleImmutable = apperror.New(
		apperror.CodeInvalidState,
		"system roles cannot be modified or deleted",
		http.StatusConflict,
	)
	ErrRoleInUse = apperror.New(
		apperror.CodeInvalidState,
		"role is still assigned to employees",
		http.StatusConflict,
	)
)
