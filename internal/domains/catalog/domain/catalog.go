package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingPartName    = errors.New("part name is required")
	ErrMissingServiceName = errors.New("service name is required")
)

// Part is a stocked spare part. Quantity is co-owned with the order ledger:
// the catalog writes it on direct part updates, the ledger adjusts it as a
// side effect of line-item mutations. It may go negative; no floor is
// enforced anywhere.
type Part struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Quantity int
	Supplier string
}

func (p *Part) Validate() error {
	if p.Name == "" {
		return ErrMissingPartName
	}
	return nil
}

// Service is a workshop labor offering. Immutable with respect to the
// ledger: line items reference it, nothing ever mutates it on their behalf.
type Service struct {
	ID            int64
	Name          string
	Price         decimal.Decimal
	DurationHours float64
}

func (s *Service) Validate() error {
	if s.Name == "" {
		return ErrMissingServiceName
	}
	return nil
}
