package positionerrors

import (
	"net/http"

	"github.com/SalimDiallo/LouraBackend/internal/shared/apperror"
)

var (
	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid position id",
		http.StatusBadRequest,
	)
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"position not found",
		http.StatusNotFound,
	)
	ErrPositionTitleTaken = apperror.New(
		apperror.CodeConflict,
		"a position with this title already exists in the organization",
		http.StatusConflict,
	)
	ErrInvalidSalaryBand = apperror.New(
		apperror.CodeInvalidInput,
		"min_salary must not exceed max_salary",
		http.StatusBadRequest,
	)
	ErrPositionInUse = apperror.New(
		apperror.CodeInvalidState,
		"position is still assigned to employees",
		http.StatusConflict,
	)
)
