package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

// CollectionReportGenerator genera el PDF del reporte de recolecciones de un rango.
type CollectionReportGenerator interface {
	CollectionsReport(items []*entity.MilkCollection, from, to time.Time, total decimal.Decimal) ([]byte, error)
}

// MilkUseCase registro y consulta de recolecciones de leche.
type MilkUseCase struct {
	milkRepo     repository.MilkCollectionRepository
	supplierRepo repository.SupplierRepository
	reports      CollectionReportGenerator
}

// NewMilkUseCase construye el caso de uso.
func NewMilkUseCase(
	milkRepo repository.MilkCollectionRepository,
	supplierRepo repository.SupplierRepository,
	reports CollectionReportGenerator,
) *MilkUseCase {
	return &MilkUseCase{milkRepo: milkRepo, supplierRepo: supplierRepo, reports: reports}
}

// RegisterCollection valida el borrador y registra la recolección. El proveedor
// debe existir.
func (uc *MilkUseCase) RegisterCollection(userID string, in dto.RegisterCollectionRequest) (*dto.CollectionResponse, error) {
	v, errs := forms.ValidateMilkCollectionDraft(in.Draft())
	if errs != nil {
		return nil, errs
	}
	supplier, err := uc.supplierRepo.GetByID(v.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	mc := &entity.MilkCollection{
		ID:             uuid.New().String(),
		SupplierID:     v.SupplierID,
		CollectionDate: v.CollectionDate,
		Quantity:       v.Quantity,
		Temperature:    v.Temperature,
		FatContent:     v.FatContent,
		Density:        v.Density,
		Acidity:        v.Acidity,
		Notes:          v.Notes,
		CreatedAt:      time.Now(),
		CreatedBy:      userID,
	}
	if err := uc.milkRepo.Create(mc); err != nil {
		return nil, err
	}
	return toCollectionResponse(mc), nil
}

// ListByRange devuelve las recolecciones del rango con el total de litros.
func (uc *MilkUseCase) ListByRange(from, to time.Time, supplierID string) (*dto.CollectionListResponse, error) {
	list, err := uc.milkRepo.ListByRange(from, to, supplierID)
	if err != nil {
		return nil, err
	}
	out := &dto.CollectionListResponse{Items: make([]dto.CollectionResponse, 0, len(list))}
	total := decimal.Zero
	for _, mc := range list {
		out.Items = append(out.Items, *toCollectionResponse(mc))
		total = total.Add(mc.Quantity)
	}
	out.Total = total
	return out, nil
}

// RangeReport genera el PDF de recolecciones del rango.
func (uc *MilkUseCase) RangeReport(from, to time.Time, supplierID string) ([]byte, error) {
	list, err := uc.milkRepo.ListByRange(from, to, supplierID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, mc := range list {
		total = total.Add(mc.Quantity)
	}
	return uc.reports.CollectionsReport(list, from, to, total)
}

func toCollectionResponse(mc *entity.MilkCollection) *dto.CollectionResponse {
	if mc == nil {
		return nil
	}
	return &dto.CollectionResponse{
		ID:             mc.ID,
		SupplierID:     mc.SupplierID,
		CollectionDate: mc.CollectionDate,
		Quantity:       mc.Quantity,
		Temperature:    mc.Temperature,
		FatContent:     mc.FatContent,
		Density:        mc.Density,
		Acidity:        mc.Acidity,
		Notes:          mc.Notes,
		CreatedAt:      mc.CreatedAt,
	}
}
