package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	domaininv "github.com/tu-usuario/lacteos-pro/internal/domain/inventory"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// (entrada/salida) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// Register valida el borrador del formulario y aplica el movimiento.
// Devuelve forms.FieldErrors cuando el borrador es inválido; errores de dominio
// (ErrNotFound, ErrInsufficientStock) cuando la aplicación falla.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !catalog.IsValidItemKind(in.ItemKind) || in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	validated, errs := forms.ValidateMovementDraft(in.Draft(), in.Direction)
	if errs != nil {
		return nil, errs
	}
	mov := movementFromValidated(in.ItemKind, in.ItemID, userID, validated)

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		rawRepo repository.RawMaterialRepository,
		productRepo repository.ProductRepository,
	) error {
		switch in.ItemKind {
		case catalog.ItemKindRawMaterial:
			return applyRawMaterial(movRepo, rawRepo, mov, validated)
		case catalog.ItemKindProduct:
			return applyProduct(movRepo, productRepo, mov, validated)
		}
		return domain.ErrInvalidInput
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// History devuelve los últimos movimientos de un ítem.
func (uc *RegisterMovementUseCase) History(itemKind, itemID string, limit int) (*dto.MovementListResponse, error) {
	if !catalog.IsValidItemKind(itemKind) || itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	list, err := uc.movRepo.ListByItem(itemKind, itemID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items}, nil
}

// applyRawMaterial: bloquea la fila, ajusta el stock y guarda el movimiento.
// En entradas con precio unitario se recalcula el costo promedio de compra.
func applyRawMaterial(
	movRepo repository.StockMovementRepository,
	rawRepo repository.RawMaterialRepository,
	mov *entity.StockMovement,
	v *forms.ValidatedMovement,
) error {
	stock, err := rawRepo.GetStockForUpdate(mov.ItemID)
	if err != nil {
		return err
	}
	newStock, err := adjustedStock(stock, v)
	if err != nil {
		return err
	}
	if v.Direction == catalog.DirectionIn && v.UnitPrice != nil {
		rm, err := rawRepo.GetByID(mov.ItemID)
		if err != nil {
			return err
		}
		if rm == nil {
			return domain.ErrNotFound
		}
		newCost := domaininv.AverageCost(stock, rm.PurchasePrice, v.Quantity, *v.UnitPrice)
		if err := rawRepo.UpdatePurchasePrice(mov.ItemID, newCost); err != nil {
			return err
		}
	}
	if err := rawRepo.UpdateStock(mov.ItemID, newStock); err != nil {
		return err
	}
	return movRepo.Create(mov)
}

// applyProduct: igual que materias primas, pero el costo promedio alimenta
// cost_price (divisor del margen de ganancia).
func applyProduct(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	mov *entity.StockMovement,
	v *forms.ValidatedMovement,
) error {
	stock, err := productRepo.GetStockForUpdate(mov.ItemID)
	if err != nil {
		return err
	}
	newStock, err := adjustedStock(stock, v)
	if err != nil {
		return err
	}
	if v.Direction == catalog.DirectionIn && v.UnitPrice != nil {
		p, err := productRepo.GetByID(mov.ItemID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		current := decimal.Zero
		if p.CostPrice != nil {
			current = *p.CostPrice
		}
		newCost := domaininv.AverageCost(stock, current, v.Quantity, *v.UnitPrice)
		if err := productRepo.UpdateCostPrice(mov.ItemID, newCost); err != nil {
			return err
		}
	}
	if err := productRepo.UpdateStock(mov.ItemID, newStock); err != nil {
		return err
	}
	return movRepo.Create(mov)
}

// adjustedStock aplica la dirección: entrada suma, salida verifica stock suficiente y resta.
func adjustedStock(stock decimal.Decimal, v *forms.ValidatedMovement) (decimal.Decimal, error) {
	if v.Direction == catalog.DirectionIn {
		return stock.Add(v.Quantity), nil
	}
	if stock.LessThan(v.Quantity) {
		return decimal.Zero, domain.ErrInsufficientStock
	}
	return stock.Sub(v.Quantity), nil
}

func movementFromValidated(itemKind, itemID, userID string, v *forms.ValidatedMovement) *entity.StockMovement {
	return &entity.StockMovement{
		ID:             uuid.New().String(),
		ItemKind:       itemKind,
		ItemID:         itemID,
		Direction:      v.Direction,
		Quantity:       v.Quantity,
		MovementDate:   v.MovementDate,
		BatchNumber:    v.BatchNumber,
		UnitPrice:      v.UnitPrice,
		ExpirationDate: v.ExpirationDate,
		SupplierID:     v.SupplierID,
		ClientID:       v.ClientID,
		Notes:          v.Notes,
		CreatedAt:      time.Now(),
		CreatedBy:      userID,
	}
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:             m.ID,
		ItemKind:       m.ItemKind,
		ItemID:         m.ItemID,
		Direction:      m.Direction,
		Quantity:       m.Quantity,
		MovementDate:   m.MovementDate,
		BatchNumber:    m.BatchNumber,
		UnitPrice:      m.UnitPrice,
		ExpirationDate: m.ExpirationDate,
		SupplierID:     m.SupplierID,
		ClientID:       m.ClientID,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
}
