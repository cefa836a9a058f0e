package usecase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

// BatchUseCase creación y avance de lotes de producción.
type BatchUseCase struct {
	batchRepo  repository.BatchRepository
	recipeRepo repository.RecipeRepository
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(batchRepo repository.BatchRepository, recipeRepo repository.RecipeRepository) *BatchUseCase {
	return &BatchUseCase{batchRepo: batchRepo, recipeRepo: recipeRepo}
}

// Create crea un lote en estado planned. Si no viene número de lote se genera
// uno con el formato BYYYYMMDD-XXXX; si viene, debe ser único.
func (uc *BatchUseCase) Create(in dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	errs := forms.FieldErrors{}
	if in.RecipeID == "" {
		errs["recipe_id"] = forms.FieldError{Code: forms.CodeMissingField, Message: "la receta es requerida"}
	}
	qty := parseRequiredQuantity(errs, "planned_quantity", in.PlannedQuantity)
	startDate := parseRequiredDate(errs, "start_date", in.StartDate)
	if len(errs) > 0 {
		return nil, errs
	}

	recipe, err := uc.recipeRepo.GetByID(in.RecipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}

	batchNumber := in.BatchNumber
	if batchNumber == "" {
		batchNumber = GenerateBatchNumber(time.Now())
	} else {
		existing, err := uc.batchRepo.GetByBatchNumber(batchNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	batch := &entity.ProductionBatch{
		ID:              uuid.New().String(),
		RecipeID:        in.RecipeID,
		BatchNumber:     batchNumber,
		PlannedQuantity: *qty,
		Status:          catalog.BatchStatusPlanned,
		StartDate:       *startDate,
		SupervisorID:    in.SupervisorID,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// UpdateStatus avanza el estado del lote. Transiciones permitidas:
// planned → in_progress | cancelled; in_progress → completed | cancelled.
// Al completar es obligatoria la cantidad real producida.
func (uc *BatchUseCase) UpdateStatus(id string, in dto.UpdateBatchStatusRequest) (*dto.BatchResponse, error) {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	if !catalog.IsValidBatchStatus(in.Status) || !validTransition(batch.Status, in.Status) {
		return nil, domain.ErrConflict
	}

	if in.Status == catalog.BatchStatusCompleted {
		errs := forms.FieldErrors{}
		actual := parseRequiredQuantity(errs, "actual_quantity", in.ActualQuantity)
		if len(errs) > 0 {
			return nil, errs
		}
		batch.ActualQuantity = actual
		end := time.Now()
		batch.EndDate = &end
	}
	if in.Status == catalog.BatchStatusCancelled {
		end := time.Now()
		batch.EndDate = &end
	}
	batch.Status = in.Status
	batch.UpdatedAt = time.Now()
	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// GetByID obtiene un lote por ID.
func (uc *BatchUseCase) GetByID(id string) (*dto.BatchResponse, error) {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, nil
	}
	return toBatchResponse(batch), nil
}

// List lista lotes con paginación.
func (uc *BatchUseCase) List(limit, offset int) (*dto.BatchListResponse, error) {
	list, err := uc.batchRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BatchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBatchResponse(b))
	}
	return &dto.BatchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GenerateBatchNumber genera un número de lote BYYYYMMDD-XXXX.
func GenerateBatchNumber(now time.Time) string {
	return fmt.Sprintf("B%s-%04d", now.Format("20060102"), rand.Intn(10000))
}

// validTransition aplica el grafo de estados del lote.
func validTransition(from, to string) bool {
	switch from {
	case catalog.BatchStatusPlanned:
		return to == catalog.BatchStatusInProgress || to == catalog.BatchStatusCancelled
	case catalog.BatchStatusInProgress:
		return to == catalog.BatchStatusCompleted || to == catalog.BatchStatusCancelled
	}
	return false
}

func toBatchResponse(b *entity.ProductionBatch) *dto.BatchResponse {
	if b == nil {
		return nil
	}
	return &dto.BatchResponse{
		ID:              b.ID,
		RecipeID:        b.RecipeID,
		BatchNumber:     b.BatchNumber,
		PlannedQuantity: b.PlannedQuantity,
		ActualQuantity:  b.ActualQuantity,
		Status:          b.Status,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		SupervisorID:    b.SupervisorID,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
