package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
)

// CatalogHandler expone los conjuntos cerrados para las listas de selección de la UI.
type CatalogHandler struct{}

// NewCatalogHandler construye el handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Get godoc
// @Summary      Catálogo de unidades y tipos
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/catalog [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"units":         catalog.Units(),
		"product_types": catalog.ProductTypes(),
		"item_kinds":    []string{catalog.ItemKindRawMaterial, catalog.ItemKindProduct},
		"directions":    []string{catalog.DirectionIn, catalog.DirectionOut},
		"batch_statuses": []string{
			catalog.BatchStatusPlanned, catalog.BatchStatusInProgress,
			catalog.BatchStatusCompleted, catalog.BatchStatusCancelled,
		},
	})
}
