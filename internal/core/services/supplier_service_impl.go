package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// supplierServiceImpl implements the SupplierSvcFacade interface
type supplierServiceImpl struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierServiceImpl creates a new supplier service
func NewSupplierServiceImpl(repo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierServiceImpl{supplierRepo: repo}
}

// Ensure supplierServiceImpl implements the SupplierSvcFacade interface
var _ portssvc.SupplierSvcFacade = (*supplierServiceImpl)(nil)

func (s *supplierServiceImpl) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier",
			slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierServiceImpl) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

func (s *supplierServiceImpl) ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) ([]domain.Supplier, error) {
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.supplierRepo.ListSuppliers(ctx, limit, offset)
}

func (s *supplierServiceImpl) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = requestingUserID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier",
			slog.String("supplier_id", supplierID))
		return nil, err
	}
	return supplier, nil
}
