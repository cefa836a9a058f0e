package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/usecase"
)

// MilkHandler maneja las peticiones HTTP de recolecciones de leche (protegido).
type MilkHandler struct {
	uc *usecase.MilkUseCase
}

// NewMilkHandler construye el handler.
func NewMilkHandler(uc *usecase.MilkUseCase) *MilkHandler {
	return &MilkHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar recolección de leche
// @Tags         milk-collections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCollectionRequest  true  "supplier_id, collection_date, quantity y parámetros de calidad"
// @Success      201   {object}  dto.CollectionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.FieldErrorResponse
// @Router       /api/milk-collections [post]
func (h *MilkHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterCollectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterCollection(userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar recolecciones de un rango de fechas
// @Tags         milk-collections
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  true   "Fecha inicial YYYY-MM-DD"
// @Param        to           query  string  true   "Fecha final YYYY-MM-DD"
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Success      200  {object}  dto.CollectionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/milk-collections [get]
func (h *MilkHandler) List(c *fiber.Ctx) error {
	from, to, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to son requeridos en formato YYYY-MM-DD"})
	}
	out, err := h.uc.ListByRange(from, to, c.Query("supplier_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de recolecciones de un rango
// @Tags         milk-collections
// @Security     Bearer
// @Produce      application/pdf
// @Param        from         query  string  true   "Fecha inicial YYYY-MM-DD"
// @Param        to           query  string  true   "Fecha final YYYY-MM-DD"
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/milk-collections/report [get]
func (h *MilkHandler) Report(c *fiber.Ctx) error {
	from, to, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to son requeridos en formato YYYY-MM-DD"})
	}
	pdfBytes, err := h.uc.RangeReport(from, to, c.Query("supplier_id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recolecciones.pdf"`)
	return c.Send(pdfBytes)
}

// rangeParams parsea from/to de la query. El rango cubre hasta el fin del día "to".
func rangeParams(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to.Add(24*time.Hour - time.Nanosecond), nil
}
