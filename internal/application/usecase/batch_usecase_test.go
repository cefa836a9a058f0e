package usecase_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
	"github.com/tu-usuario/lacteos-pro/internal/application/usecase"
	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeBatchRepo struct {
	byID      map[string]*entity.ProductionBatch
	byNumber  map[string]*entity.ProductionBatch
	numberErr error // inyectable: falla de la consulta por número de lote
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{
		byID:     map[string]*entity.ProductionBatch{},
		byNumber: map[string]*entity.ProductionBatch{},
	}
}

func (f *fakeBatchRepo) Create(b *entity.ProductionBatch) error {
	if _, ok := f.byNumber[b.BatchNumber]; ok {
		return domain.ErrDuplicate
	}
	f.byID[b.ID] = b
	f.byNumber[b.BatchNumber] = b
	return nil
}

func (f *fakeBatchRepo) GetByID(id string) (*entity.ProductionBatch, error) {
	return f.byID[id], nil
}

func (f *fakeBatchRepo) GetByBatchNumber(number string) (*entity.ProductionBatch, error) {
	if f.numberErr != nil {
		return nil, f.numberErr
	}
	return f.byNumber[number], nil
}

func (f *fakeBatchRepo) List(limit, offset int) ([]*entity.ProductionBatch, error) {
	out := make([]*entity.ProductionBatch, 0, len(f.byID))
	for _, b := range f.byID {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBatchRepo) Update(b *entity.ProductionBatch) error {
	f.byID[b.ID] = b
	return nil
}

type fakeRecipeRepo struct {
	recipes map[string]*entity.Recipe
}

func (f *fakeRecipeRepo) Create(*entity.Recipe) error { return nil }

func (f *fakeRecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	return f.recipes[id], nil
}

func (f *fakeRecipeRepo) List(int, int) ([]*entity.Recipe, error) { return nil, nil }

func (f *fakeRecipeRepo) Delete(string) error { return nil }

func newBatchFixture() (*usecase.BatchUseCase, *fakeBatchRepo) {
	batchRepo := newFakeBatchRepo()
	recipeRepo := &fakeRecipeRepo{recipes: map[string]*entity.Recipe{
		"rec-queso": {
			ID:            "rec-queso",
			Name:          "Queso campesino x kg",
			ProductID:     "prod-queso",
			YieldQuantity: decimal.RequireFromString("1"),
			YieldUnit:     catalog.UnitKg,
		},
	}}
	return usecase.NewBatchUseCase(batchRepo, recipeRepo), batchRepo
}

func createBatchRequest() dto.CreateBatchRequest {
	return dto.CreateBatchRequest{
		RecipeID:        "rec-queso",
		PlannedQuantity: "40",
		StartDate:       "2025-03-10",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestBatchCreate_GeneraNumeroDeLote(t *testing.T) {
	uc, _ := newBatchFixture()

	resp, err := uc.Create(createBatchRequest())
	require.NoError(t, err)

	assert.Equal(t, catalog.BatchStatusPlanned, resp.Status)
	assert.Regexp(t, regexp.MustCompile(`^B\d{8}-\d{4}$`), resp.BatchNumber)
}

func TestBatchCreate_RespetaNumeroExplicito(t *testing.T) {
	uc, _ := newBatchFixture()

	req := createBatchRequest()
	req.BatchNumber = "B20250310-QUESO"
	resp, err := uc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, "B20250310-QUESO", resp.BatchNumber)
}

func TestBatchCreate_NumeroDuplicado(t *testing.T) {
	uc, _ := newBatchFixture()

	req := createBatchRequest()
	req.BatchNumber = "B20250310-0001"
	_, err := uc.Create(req)
	require.NoError(t, err)

	_, err = uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestBatchCreate_FallaDeConsultaPorNumeroSePropaga(t *testing.T) {
	uc, batchRepo := newBatchFixture()
	batchRepo.numberErr = errors.New("conexión perdida")

	req := createBatchRequest()
	req.BatchNumber = "B20250310-0001"
	_, err := uc.Create(req)

	// Una falla de la consulta no debe confundirse con "número libre".
	require.Error(t, err)
	assert.ErrorContains(t, err, "conexión perdida")
	assert.Empty(t, batchRepo.byID)
}

func TestBatchCreate_RecetaInexistente(t *testing.T) {
	uc, _ := newBatchFixture()

	req := createBatchRequest()
	req.RecipeID = "rec-fantasma"
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBatchCreate_SinReceta(t *testing.T) {
	uc, _ := newBatchFixture()

	req := createBatchRequest()
	req.RecipeID = ""
	_, err := uc.Create(req)

	var fieldErrs forms.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, forms.CodeMissingField, fieldErrs["recipe_id"].Code)
}

func TestBatchCreate_CantidadPlanificadaInvalida(t *testing.T) {
	uc, _ := newBatchFixture()

	req := createBatchRequest()
	req.PlannedQuantity = "0"
	_, err := uc.Create(req)

	var fieldErrs forms.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, forms.CodeInvalidQuantity, fieldErrs["planned_quantity"].Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus: grafo de transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestBatchUpdateStatus_FlujoCompleto(t *testing.T) {
	uc, _ := newBatchFixture()
	created, err := uc.Create(createBatchRequest())
	require.NoError(t, err)

	resp, err := uc.UpdateStatus(created.ID, dto.UpdateBatchStatusRequest{Status: catalog.BatchStatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, catalog.BatchStatusInProgress, resp.Status)

	resp, err = uc.UpdateStatus(created.ID, dto.UpdateBatchStatusRequest{
		Status:         catalog.BatchStatusCompleted,
		ActualQuantity: "38.5",
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.BatchStatusCompleted, resp.Status)
	require.NotNil(t, resp.ActualQuantity)
	assert.True(t, resp.ActualQuantity.Equal(decimal.RequireFromString("38.5")))
	assert.NotNil(t, resp.EndDate, "completar el lote fija la fecha de fin")
}

func TestBatchUpdateStatus_CompletarSinCantidadReal(t *testing.T) {
	uc, _ := newBatchFixture()
	created, err := uc.Create(createBatchRequest())
	require.NoError(t, err)
	_, err = uc.UpdateStatus(created.ID, dto.UpdateBatchStatusRequest{Status: catalog.BatchStatusInProgress})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(created.ID, dto.UpdateBatchStatusRequest{Status: catalog.BatchStatusCompleted})

	var fieldErrs forms.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, forms.CodeInvalidQuantity, fieldErrs["actual_quantity"].Code)
}

func TestBatchUpdateStatus_TransicionInvalida(t *testing.T) {
	uc, _ := newBatchFixture()
	created, err := uc.Create(createBatchRequest())
	require.NoError(t, err)

	// planned → completed no está permitido (debe pasar por in_progress).
	_, err = uc.UpdateStatus(created.ID, dto.UpdateBatchStatusRequest{
		Status:         catalog.BatchStatusCompleted,
		ActualQuantity: "40",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBatchUpdateStatus_EstadoTerminalNoAvanza(t *testing.T) {
	uc, _ := newBatchFixture()
	created, err := uc.Create(createBatchRequest())
	require.NoError(t, err)
	_, err = uc.UpdateStatus(created.ID, dto.UpdateBatchStatusRequest{Status: catalog.BatchStatusCancelled})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(created.ID, dto.UpdateBatchStatusRequest{Status: catalog.BatchStatusInProgress})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBatchUpdateStatus_CancelarFijaFechaDeFin(t *testing.T) {
	uc, _ := newBatchFixture()
	created, err := uc.Create(createBatchRequest())
	require.NoError(t, err)

	resp, err := uc.UpdateStatus(created.ID, dto.UpdateBatchStatusRequest{Status: catalog.BatchStatusCancelled})
	require.NoError(t, err)
	assert.NotNil(t, resp.EndDate)
}

func TestBatchUpdateStatus_LoteInexistente(t *testing.T) {
	uc, _ := newBatchFixture()
	_, err := uc.UpdateStatus("lote-fantasma", dto.UpdateBatchStatusRequest{Status: catalog.BatchStatusInProgress})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateBatchNumber
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateBatchNumber_Formato(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)
	got := usecase.GenerateBatchNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^B20250310-\d{4}$`), got)
}
