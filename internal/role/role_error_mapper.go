package role

import (
	"errors"
	"strings"

	roleerrors "github.com/SalimDiallo/LouraBackend/internal/role/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return roleerrors.ErrRoleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" &&
			(pgErr.ConstraintName == "uq_role_org_code" || pgErr.ConstraintName == "uq_role_system_code") {
			return roleerrors.ErrRoleCodeTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") &&
		(strings.Contains(errMsg, "uq_role_org_code") || strings.Contains(errMsg, "uq_role_system_code")) {
		return roleerrors.ErrRoleCodeTaken
	}

	return err
}
