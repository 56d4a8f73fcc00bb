package payroll

import (
	"errors"
	"strings"

	payrollerrors "github.com/SalimDiallo/LouraBackend/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapPeriodError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPeriodNotFound
	}
	if isUniqueViolation(err, "uq_payroll_period_org_name") {
		return payrollerrors.ErrPeriodNameTaken
	}
	return err
}

func mapPayslipError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayslipNotFound
	}
	if isUniqueViolation(err, "uq_payslip_period_employee") {
		return payrollerrors.ErrDuplicatePayslip
	}
	return err
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraint)
}
