package application

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/autobatya/workshop-api/internal/domains/ledger/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid ledger input")
	// ErrConstraintViolated signals the storage engine rejected the write,
	// e.g. a foreign key to a nonexistent parent. The whole ledger
	// transaction rolls back, so no stock or total mutation survives.
	ErrConstraintViolated = errors.New("storage constraint violated")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrMissingClientName) ||
		errors.Is(err, domain.ErrInvalidEmployeeID) ||
		errors.Is(err, domain.ErrMissingOrderID) ||
		errors.Is(err, domain.ErrInvalidServiceID) ||
		errors.Is(err, domain.ErrInvalidPartID) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return fmt.Errorf("%w: %w", ErrConstraintViolated, err)
	}
	return err
}
