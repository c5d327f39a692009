package repositories

import (
	"context"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	// FindSupplierByID retrieves a supplier by its unique identifier.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves all suppliers, newest first.
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	// SaveSupplier persists a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// UpdateSupplier persists changes to an existing supplier.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
}

// SupplierRepositoryFacade combines all supplier repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
