package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/SalimDiallo/LouraBackend/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_employee_org_email":
			return employeeerrors.ErrEmailTaken
		case "uq_employee_org_number":
			return employeeerrors.ErrEmployeeNumberTaken
		case "uq_employee_custom_permission":
			return employeeerrors.ErrPermissionAlreadyGranted
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_employee_org_email") {
			return employeeerrors.ErrEmailTaken
		}
		if strings.Contains(errMsg, "uq_employee_org_number") {
			return employeeerrors.ErrEmployeeNumberTaken
		}
		if strings.Contains(errMsg, "uq_employee_custom_permission") {
			return employeeerrors.ErrPermissionAlreadyGranted
		}
	}

	return err
}
