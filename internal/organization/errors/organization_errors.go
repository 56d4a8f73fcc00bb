package organizationerrors

import (
	"net/http"

	"github.com/SalimDiallo/LouraBackend/internal/shared/apperror"
)

var (
	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid organization id",
		http.StatusBadRequest,
	)
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"organization not found",
		http.StatusNotFound,
	)
	ErrSubdomainTaken = apperror.New(
		apperror.CodeConflict,
		"subdomain is already in use",
		http.StatusConflict,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeNotFound,
		"organization not found",
		http.StatusNotFound,
	)
	ErrAdminNotFound = apperror.New(
		apperror.CodeNotFound,
		"admin account not found",
		http.StatusNotFound,
	)
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"category not found",
		http.StatusNotFound,
	)
)
