package application

import (
	"errors"
	"fmt"

	"github.com/autobatya/workshop-api/internal/domains/catalog/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid catalog input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingPartName) || errors.Is(err, domain.ErrMissingServiceName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
