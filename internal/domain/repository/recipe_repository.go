package repository

import "github.com/tu-usuario/lacteos-pro/internal/domain/entity"

// RecipeRepository puerto de persistencia para recetas y sus ingredientes.
type RecipeRepository interface {
	// Create persiste la receta con todos sus ingredientes en una sola transacción.
	Create(r *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
	List(limit, offset int) ([]*entity.Recipe, error)
	Delete(id string) error
}
