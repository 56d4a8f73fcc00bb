package organization

import (
	"errors"
	"strings"

	organizationerrors "github.com/SalimDiallo/LouraBackend/internal/organization/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return organizationerrors.ErrOrganizationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_organization_subdomain" {
			return organizationerrors.ErrSubdomainTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_organization_subdomain") {
		return organizationerrors.ErrSubdomainTaken
	}

	return err
}
