package services

import (
	"context"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// SupplierReaderSvc defines read operations for supplier data
type SupplierReaderSvc interface {
	// GetSupplierByID retrieves a supplier by ID.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves suppliers, newest first.
	ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) ([]domain.Supplier, error)
}

// SupplierWriterSvc defines write operations for supplier data
type SupplierWriterSvc interface {
	// CreateSupplier registers a new supplier.
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error)

	// UpdateSupplier updates a supplier's contact details.
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error)
}

// SupplierSvcFacade combines all supplier service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
