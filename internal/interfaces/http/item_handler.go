package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/usecase"
	"github.com/tu-usuario/lacteos-pro/internal/domain/catalog"
)

// ItemHandler maneja las peticiones HTTP de materias primas y productos (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// CreateRawMaterial godoc
// @Summary      Crear materia prima
// @Tags         raw-materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos de la materia prima (numéricos como string)"
// @Success      201   {object}  dto.RawMaterialResponse
// @Failure      422   {object}  dto.FieldErrorResponse
// @Router       /api/raw-materials [post]
func (h *ItemHandler) CreateRawMaterial(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateRawMaterial(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del producto (numéricos como string)"
// @Success      201   {object}  dto.ProductResponse
// @Failure      422   {object}  dto.FieldErrorResponse
// @Router       /api/products [post]
func (h *ItemHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateProduct(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRawMaterials godoc
// @Summary      Listar materias primas
// @Tags         raw-materials
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.RawMaterialListResponse
// @Router       /api/raw-materials [get]
func (h *ItemHandler) ListRawMaterials(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListRawMaterials(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ItemHandler) ListProducts(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListProducts(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetRawMaterial godoc
// @Summary      Obtener materia prima por ID
// @Tags         raw-materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.RawMaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [get]
func (h *ItemHandler) GetRawMaterial(c *fiber.Ctx) error {
	out, err := h.uc.GetRawMaterial(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "materia prima no encontrada"})
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ItemHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// UpdateRawMaterialLevels godoc
// @Summary      Actualizar niveles mín/máx de una materia prima
// @Tags         raw-materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.UpdateLevelsRequest  true  "min_stock_level, max_stock_level (vacío limpia)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.FieldErrorResponse
// @Router       /api/raw-materials/{id}/levels [put]
func (h *ItemHandler) UpdateRawMaterialLevels(c *fiber.Ctx) error {
	return h.updateLevels(c, catalog.ItemKindRawMaterial)
}

// UpdateProductLevels godoc
// @Summary      Actualizar niveles mín/máx de un producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.UpdateLevelsRequest  true  "min_stock_level, max_stock_level (vacío limpia)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.FieldErrorResponse
// @Router       /api/products/{id}/levels [put]
func (h *ItemHandler) UpdateProductLevels(c *fiber.Ctx) error {
	return h.updateLevels(c, catalog.ItemKindProduct)
}

func (h *ItemHandler) updateLevels(c *fiber.Ctx, itemKind string) error {
	var in dto.UpdateLevelsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateLevels(itemKind, c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams lee limit/offset de la query con los defaults del listado.
func pageParams(c *fiber.Ctx) (int, int) {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	return page.Limit, page.Offset
}
