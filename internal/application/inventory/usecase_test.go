package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
	appinv "github.com/tu-usuario/lacteos-pro/internal/application/inventory"
	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	created []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMovementRepo) ListByItem(itemKind, itemID string, limit int) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0)
	for _, m := range f.created {
		if m.ItemKind == itemKind && m.ItemID == itemID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeRawRepo struct {
	item  *entity.RawMaterial
	stock decimal.Decimal
}

func (f *fakeRawRepo) Create(*entity.RawMaterial) error { return nil }

func (f *fakeRawRepo) GetByID(id string) (*entity.RawMaterial, error) {
	if f.item == nil || f.item.ID != id {
		return nil, nil
	}
	return f.item, nil
}

func (f *fakeRawRepo) List(int, int) ([]*entity.RawMaterial, error) { return nil, nil }

func (f *fakeRawRepo) UpdateLevels(string, *decimal.Decimal, *decimal.Decimal) error { return nil }

func (f *fakeRawRepo) GetStockForUpdate(id string) (decimal.Decimal, error) {
	if f.item == nil || f.item.ID != id {
		return decimal.Zero, domain.ErrNotFound
	}
	return f.stock, nil
}

func (f *fakeRawRepo) UpdateStock(id string, stock decimal.Decimal) error {
	f.stock = stock
	return nil
}

func (f *fakeRawRepo) UpdatePurchasePrice(id string, price decimal.Decimal) error {
	f.item.PurchasePrice = price
	return nil
}

type fakeProductRepo struct {
	item  *entity.Product
	stock decimal.Decimal
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if f.item == nil || f.item.ID != id {
		return nil, nil
	}
	return f.item, nil
}

func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) UpdateLevels(string, *decimal.Decimal, *decimal.Decimal) error { return nil }

func (f *fakeProductRepo) GetStockForUpdate(id string) (decimal.Decimal, error) {
	if f.item == nil || f.item.ID != id {
		return decimal.Zero, domain.ErrNotFound
	}
	return f.stock, nil
}

func (f *fakeProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	f.stock = stock
	return nil
}

func (f *fakeProductRepo) UpdateCostPrice(id string, cost decimal.Decimal) error {
	f.item.CostPrice = &cost
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra los fakes, sin SQL.
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	rawRepo     *fakeRawRepo
	productRepo *fakeProductRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	rawRepo repository.RawMaterialRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.movRepo, f.rawRepo, f.productRepo)
}

func newFixture() (*appinv.RegisterMovementUseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{
		movRepo: &fakeMovementRepo{},
		rawRepo: &fakeRawRepo{
			item: &entity.RawMaterial{
				ID:            "rm-leche",
				Name:          "Leche cruda",
				Unit:          catalog.UnitL,
				PurchasePrice: decimal.RequireFromString("1800"),
			},
			stock: decimal.RequireFromString("100"),
		},
		productRepo: &fakeProductRepo{
			item: &entity.Product{
				ID:          "prod-queso",
				Name:        "Queso campesino",
				Unit:        catalog.UnitKg,
				RetailPrice: decimal.RequireFromString("12500"),
			},
			stock: decimal.RequireFromString("20"),
		},
	}
	uc := appinv.NewRegisterMovementUseCase(runner, runner.movRepo)
	return uc, runner
}

func movementRequest(direction, quantity string) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		ItemKind:     catalog.ItemKindRawMaterial,
		ItemID:       "rm-leche",
		Direction:    direction,
		Quantity:     quantity,
		MovementDate: "2025-03-10",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EntradaSumaStock(t *testing.T) {
	uc, runner := newFixture()

	resp, err := uc.Register(context.Background(), "user-1", movementRequest(catalog.DirectionIn, "50"))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, runner.rawRepo.stock.Equal(decimal.RequireFromString("150")),
		"100 + 50 = 150, got %s", runner.rawRepo.stock)
	require.Len(t, runner.movRepo.created, 1)
	assert.Equal(t, catalog.DirectionIn, runner.movRepo.created[0].Direction)
	assert.Equal(t, "user-1", runner.movRepo.created[0].CreatedBy)
}

func TestRegister_SalidaRestaStock(t *testing.T) {
	uc, runner := newFixture()

	_, err := uc.Register(context.Background(), "user-1", movementRequest(catalog.DirectionOut, "30"))
	require.NoError(t, err)

	assert.True(t, runner.rawRepo.stock.Equal(decimal.RequireFromString("70")),
		"100 - 30 = 70, got %s", runner.rawRepo.stock)
}

func TestRegister_SalidaConStockInsuficiente(t *testing.T) {
	uc, runner := newFixture()

	_, err := uc.Register(context.Background(), "user-1", movementRequest(catalog.DirectionOut, "500"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada debe haberse tocado.
	assert.True(t, runner.rawRepo.stock.Equal(decimal.RequireFromString("100")))
	assert.Empty(t, runner.movRepo.created)
}

func TestRegister_EntradaConPrecioRecalculaCostoPromedio(t *testing.T) {
	uc, runner := newFixture()

	req := movementRequest(catalog.DirectionIn, "50")
	req.UnitPrice = "2100"
	_, err := uc.Register(context.Background(), "user-1", req)
	require.NoError(t, err)

	// (100*1800 + 50*2100) / 150 = 1900
	assert.True(t, runner.rawRepo.item.PurchasePrice.Equal(decimal.RequireFromString("1900")),
		"got %s", runner.rawRepo.item.PurchasePrice)
}

func TestRegister_EntradaSinPrecioNoTocaElCosto(t *testing.T) {
	uc, runner := newFixture()

	_, err := uc.Register(context.Background(), "user-1", movementRequest(catalog.DirectionIn, "50"))
	require.NoError(t, err)

	assert.True(t, runner.rawRepo.item.PurchasePrice.Equal(decimal.RequireFromString("1800")))
}

func TestRegister_ProductoEntradaConPrecioActualizaCostPrice(t *testing.T) {
	uc, runner := newFixture()

	req := dto.RegisterMovementRequest{
		ItemKind:     catalog.ItemKindProduct,
		ItemID:       "prod-queso",
		Direction:    catalog.DirectionIn,
		Quantity:     "10",
		MovementDate: "2025-03-10",
		UnitPrice:    "9000",
	}
	_, err := uc.Register(context.Background(), "user-1", req)
	require.NoError(t, err)

	require.NotNil(t, runner.productRepo.item.CostPrice)
	// Sin costo previo: (20*0 + 10*9000) / 30 = 3000
	assert.True(t, runner.productRepo.item.CostPrice.Equal(decimal.RequireFromString("3000")),
		"got %s", runner.productRepo.item.CostPrice)
	assert.True(t, runner.productRepo.stock.Equal(decimal.RequireFromString("30")))
}

func TestRegister_BorradorInvalidoDevuelveFieldErrors(t *testing.T) {
	uc, runner := newFixture()

	req := movementRequest(catalog.DirectionIn, "0")
	_, err := uc.Register(context.Background(), "user-1", req)
	require.Error(t, err)

	var fieldErrs forms.FieldErrors
	require.True(t, errors.As(err, &fieldErrs), "el error debe ser forms.FieldErrors")
	assert.Equal(t, forms.CodeInvalidQuantity, fieldErrs["quantity"].Code)
	assert.Empty(t, runner.movRepo.created)
}

func TestRegister_ItemKindInvalido(t *testing.T) {
	uc, _ := newFixture()

	req := movementRequest(catalog.DirectionIn, "10")
	req.ItemKind = "servicio"
	_, err := uc.Register(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ItemInexistente(t *testing.T) {
	uc, _ := newFixture()

	req := movementRequest(catalog.DirectionIn, "10")
	req.ItemID = "rm-desconocida"
	_, err := uc.Register(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// History
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_DevuelveMovimientosDelItem(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Register(context.Background(), "user-1", movementRequest(catalog.DirectionIn, "50"))
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), "user-1", movementRequest(catalog.DirectionOut, "20"))
	require.NoError(t, err)

	list, err := uc.History(catalog.ItemKindRawMaterial, "rm-leche", 10)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}

func TestHistory_ItemKindInvalido(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.History("servicio", "rm-leche", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
