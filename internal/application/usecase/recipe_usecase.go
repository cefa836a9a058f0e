package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
	"github.com/tu-usuario/lacteos-pro/internal/domain"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

// RecipeUseCase alta y consulta de recetas de producción.
type RecipeUseCase struct {
	recipeRepo  repository.RecipeRepository
	productRepo repository.ProductRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(recipeRepo repository.RecipeRepository, productRepo repository.ProductRepository) *RecipeUseCase {
	return &RecipeUseCase{recipeRepo: recipeRepo, productRepo: productRepo}
}

// Create valida el borrador de receta y la persiste con sus ingredientes.
// El producto objetivo debe existir; las referencias de los ingredientes las
// verifica la capa de persistencia (claves foráneas).
func (uc *RecipeUseCase) Create(in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	v, errs := forms.ValidateRecipeDraft(in.Draft())
	if errs != nil {
		return nil, errs
	}
	product, err := uc.productRepo.GetByID(v.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	recipe := &entity.Recipe{
		ID:            uuid.New().String(),
		Name:          v.Name,
		ProductID:     v.ProductID,
		Description:   v.Description,
		Instructions:  v.Instructions,
		YieldQuantity: v.YieldQuantity,
		YieldUnit:     v.YieldUnit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for i, ing := range v.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, entity.RecipeIngredient{
			ID:             uuid.New().String(),
			RecipeID:       recipe.ID,
			IngredientKind: ing.IngredientKind,
			RawMaterialID:  ing.RawMaterialID,
			ProductID:      ing.ProductID,
			Quantity:       ing.Quantity,
			Unit:           ing.Unit,
			Notes:          ing.Notes,
			Position:       i,
		})
	}
	if err := uc.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

// GetByID obtiene una receta con sus ingredientes.
func (uc *RecipeUseCase) GetByID(id string) (*dto.RecipeResponse, error) {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, nil
	}
	return toRecipeResponse(recipe), nil
}

// List lista recetas con paginación.
func (uc *RecipeUseCase) List(limit, offset int) (*dto.RecipeListResponse, error) {
	list, err := uc.recipeRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRecipeResponse(r))
	}
	return &dto.RecipeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una receta por ID.
func (uc *RecipeUseCase) Delete(id string) error {
	return uc.recipeRepo.Delete(id)
}

func toRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	if r == nil {
		return nil
	}
	ingredients := make([]dto.IngredientResponse, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, dto.IngredientResponse{
			ID:             ing.ID,
			IngredientKind: ing.IngredientKind,
			RawMaterialID:  ing.RawMaterialID,
			ProductID:      ing.ProductID,
			Quantity:       ing.Quantity,
			Unit:           ing.Unit,
			Notes:          ing.Notes,
		})
	}
	return &dto.RecipeResponse{
		ID:            r.ID,
		Name:          r.Name,
		ProductID:     r.ProductID,
		Description:   r.Description,
		Instructions:  r.Instructions,
		YieldQuantity: r.YieldQuantity,
		YieldUnit:     r.YieldUnit,
		Ingredients:   ingredients,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
