package contract

import (
	"errors"

	contracterrors "github.com/SalimDiallo/LouraBackend/internal/contract/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contracterrors.ErrContractNotFound
	}
	return err
}
