package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/lacteos-pro/internal/application/dto"
	"github.com/tu-usuario/lacteos-pro/internal/application/forms"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

// PartnerUseCase alta y consulta de proveedores y clientes. Ambos comparten
// estructura; el tipo lo decide el handler según la ruta.
type PartnerUseCase struct {
	supplierRepo repository.SupplierRepository
	clientRepo   repository.ClientRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(supplierRepo repository.SupplierRepository, clientRepo repository.ClientRepository) *PartnerUseCase {
	return &PartnerUseCase{supplierRepo: supplierRepo, clientRepo: clientRepo}
}

// CreateSupplier crea un proveedor.
func (uc *PartnerUseCase) CreateSupplier(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if err := validatePartner(in); err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.TrimSpace(in.Email),
		Address:       strings.TrimSpace(in.Address),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, err
	}
	return supplierResponse(s), nil
}

// CreateClient crea un cliente.
func (uc *PartnerUseCase) CreateClient(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if err := validatePartner(in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Client{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.TrimSpace(in.Email),
		Address:       strings.TrimSpace(in.Address),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.clientRepo.Create(c); err != nil {
		return nil, err
	}
	return clientResponse(c), nil
}

// ListSuppliers lista proveedores con paginación.
func (uc *PartnerUseCase) ListSuppliers(limit, offset int) (*dto.PartnerListResponse, error) {
	list, err := uc.supplierRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PartnerListResponse{
		Items: make([]dto.PartnerResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, s := range list {
		out.Items = append(out.Items, *supplierResponse(s))
	}
	return out, nil
}

// ListClients lista clientes con paginación.
func (uc *PartnerUseCase) ListClients(limit, offset int) (*dto.PartnerListResponse, error) {
	list, err := uc.clientRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PartnerListResponse{
		Items: make([]dto.PartnerResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, c := range list {
		out.Items = append(out.Items, *clientResponse(c))
	}
	return out, nil
}

func validatePartner(in dto.CreatePartnerRequest) error {
	errs := forms.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = forms.FieldError{Code: forms.CodeMissingField, Message: "el nombre es requerido"}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func supplierResponse(s *entity.Supplier) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func clientResponse(c *entity.Client) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
