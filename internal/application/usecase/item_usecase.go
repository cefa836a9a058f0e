package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/pricing"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

// ItemUseCase alta y consulta de ítems del inventario (materias primas y
// productos). Flujo de alta: validar borrador → calcular precios derivados →
// persistir. El stock solo cambia vía movimientos.
type ItemUseCase struct {
	rawRepo     repository.RawMaterialRepository
	productRepo repository.ProductRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(rawRepo repository.RawMaterialRepository, productRepo repository.ProductRepository) *ItemUseCase {
	return &ItemUseCase{rawRepo: rawRepo, productRepo: productRepo}
}

// CreateRawMaterial valida el borrador como materia prima y la persiste.
func (uc *ItemUseCase) CreateRawMaterial(in dto.CreateItemRequest) (*dto.RawMaterialResponse, error) {
	v, errs := forms.ValidateItemDraft(in.Draft(catalog.ItemKindRawMaterial))
	if errs != nil {
		return nil, errs
	}
	v.ApplyPricing(pricing.ComputeDerived(v.PricingFacts(), v.ItemKind))

	now := time.Now()
	rm := &entity.RawMaterial{
		ID:                uuid.New().String(),
		Name:              v.Name,
		Description:       v.Description,
		Unit:              v.Unit,
		MinStockLevel:     v.MinStockLevel,
		MaxStockLevel:     v.MaxStockLevel,
		PurchasePrice:     *v.PurchasePrice,
		SupplierPrice:     v.SupplierPrice,
		TaxRate:           v.TaxRate,
		HTPrice:           v.HTPrice,
		TTCPrice:          v.TTCPrice,
		Barcode:           v.Barcode,
		ShelfLifeDays:     v.ShelfLifeDays,
		StorageConditions: v.StorageConditions,
		Stock:             decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.rawRepo.Create(rm); err != nil {
		return nil, err
	}
	return toRawMaterialResponse(rm), nil
}

// CreateProduct valida el borrador como producto y lo persiste.
func (uc *ItemUseCase) CreateProduct(in dto.CreateItemRequest) (*dto.ProductResponse, error) {
	v, errs := forms.ValidateItemDraft(in.Draft(catalog.ItemKindProduct))
	if errs != nil {
		return nil, errs
	}
	v.ApplyPricing(pricing.ComputeDerived(v.PricingFacts(), v.ItemKind))

	now := time.Now()
	p := &entity.Product{
		ID:                uuid.New().String(),
		Name:              v.Name,
		Description:       v.Description,
		Unit:              v.Unit,
		ProductType:       v.ProductType,
		MinStockLevel:     v.MinStockLevel,
		MaxStockLevel:     v.MaxStockLevel,
		WholesalePrice:    v.WholesalePrice,
		RetailPrice:       *v.RetailPrice,
		TaxRate:           v.TaxRate,
		HTPrice:           v.HTPrice,
		TTCPrice:          v.TTCPrice,
		CostPrice:         v.CostPrice,
		ProfitMargin:      v.ProfitMargin,
		Barcode:           v.Barcode,
		ShelfLifeDays:     v.ShelfLifeDays,
		StorageConditions: v.StorageConditions,
		Stock:             decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListRawMaterials lista materias primas con su stock y la marca bajo-mínimo.
func (uc *ItemUseCase) ListRawMaterials(limit, offset int) (*dto.RawMaterialListResponse, error) {
	list, err := uc.rawRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RawMaterialResponse, 0, len(list))
	for _, rm := range list {
		items = append(items, *toRawMaterialResponse(rm))
	}
	return &dto.RawMaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListProducts lista productos con su stock y la marca bajo-mínimo.
func (uc *ItemUseCase) ListProducts(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetRawMaterial obtiene una materia prima por ID.
func (uc *ItemUseCase) GetRawMaterial(id string) (*dto.RawMaterialResponse, error) {
	rm, err := uc.rawRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rm == nil {
		return nil, nil
	}
	return toRawMaterialResponse(rm), nil
}

// GetProduct obtiene un producto por ID.
func (uc *ItemUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// UpdateLevels actualiza los niveles mínimo/máximo de stock de un ítem.
// Los campos vacíos limpian el nivel correspondiente.
func (uc *ItemUseCase) UpdateLevels(itemKind, id string, in dto.UpdateLevelsRequest) error {
	errs := forms.FieldErrors{}
	minLevel := parseOptionalLevel(errs, "min_stock_level", in.MinStockLevel)
	maxLevel := parseOptionalLevel(errs, "max_stock_level", in.MaxStockLevel)
	if len(errs) > 0 {
		return errs
	}
	switch itemKind {
	case catalog.ItemKindRawMaterial:
		return uc.rawRepo.UpdateLevels(id, minLevel, maxLevel)
	case catalog.ItemKindProduct:
		return uc.productRepo.UpdateLevels(id, minLevel, maxLevel)
	}
	return domain.ErrInvalidInput
}

func parseOptionalLevel(errs forms.FieldErrors, field, raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		errs[field] = forms.FieldError{Code: forms.CodeInvalidNumber, Message: "nivel de stock inválido"}
		return nil
	}
	return &d
}

// belowMinimum indica si el stock está por debajo del nivel mínimo configurado.
func belowMinimum(stock decimal.Decimal, minLevel *decimal.Decimal) bool {
	return minLevel != nil && stock.LessThan(*minLevel)
}

func toRawMaterialResponse(rm *entity.RawMaterial) *dto.RawMaterialResponse {
	if rm == nil {
		return nil
	}
	return &dto.RawMaterialResponse{
		ID:                rm.ID,
		Name:              rm.Name,
		Description:       rm.Description,
		Unit:              rm.Unit,
		MinStockLevel:     rm.MinStockLevel,
		MaxStockLevel:     rm.MaxStockLevel,
		PurchasePrice:     rm.PurchasePrice,
		SupplierPrice:     rm.SupplierPrice,
		TaxRate:           rm.TaxRate,
		HTPrice:           rm.HTPrice,
		TTCPrice:          rm.TTCPrice,
		Barcode:           rm.Barcode,
		ShelfLifeDays:     rm.ShelfLifeDays,
		StorageConditions: rm.StorageConditions,
		Stock:             rm.Stock,
		BelowMinimum:      belowMinimum(rm.Stock, rm.MinStockLevel),
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Unit:              p.Unit,
		ProductType:       p.ProductType,
		MinStockLevel:     p.MinStockLevel,
		MaxStockLevel:     p.MaxStockLevel,
		WholesalePrice:    p.WholesalePrice,
		RetailPrice:       p.RetailPrice,
		TaxRate:           p.TaxRate,
		HTPrice:           p.HTPrice,
		TTCPrice:          p.TTCPrice,
		CostPrice:         p.CostPrice,
		ProfitMargin:      p.ProfitMargin,
		Barcode:           p.Barcode,
		ShelfLifeDays:     p.ShelfLifeDays,
		StorageConditions: p.StorageConditions,
		Stock:             p.Stock,
		BelowMinimum:      belowMinimum(p.Stock, p.MinStockLevel),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
