package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/usecase"
)

// PartnerHandler maneja las peticiones HTTP de proveedores y clientes (protegido).
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// CreateSupplier godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.PartnerResponse
// @Failure      422   {object}  dto.FieldErrorResponse
// @Router       /api/suppliers [post]
func (h *PartnerHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSupplier(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.PartnerListResponse
// @Router       /api/suppliers [get]
func (h *PartnerHandler) ListSuppliers(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListSuppliers(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateClient godoc
// @Summary      Crear cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.PartnerResponse
// @Failure      422   {object}  dto.FieldErrorResponse
// @Router       /api/clients [post]
func (h *PartnerHandler) CreateClient(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateClient(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListClients godoc
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.PartnerListResponse
// @Router       /api/clients [get]
func (h *PartnerHandler) ListClients(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListClients(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
