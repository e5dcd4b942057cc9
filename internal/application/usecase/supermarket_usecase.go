package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// SupermarketUseCase reglas de negocio para sucursales. Las operaciones de
// lectura reciben al actor autenticado y recortan la visibilidad según su rol.
type SupermarketUseCase struct {
	repo repository.SupermarketRepository
}

// NewSupermarketUseCase construye el caso de uso.
func NewSupermarketUseCase(repo repository.SupermarketRepository) *SupermarketUseCase {
	return &SupermarketUseCase{repo: repo}
}

// List lista sucursales activas según la visibilidad del actor:
// admin/provider ven todas; manager/worker solo la suya. Un manager/worker
// sin sucursal asignada es un error del dato, no una lista vacía.
func (uc *SupermarketUseCase) List(actor *entity.User, limit, offset int) (*dto.SupermarketListResponse, error) {
	var list []*entity.Supermarket
	var err error

	switch actor.Role {
	case entity.RoleAdmin, entity.RoleProvider:
		list, err = uc.repo.ListActive(limit, offset)
	case entity.RoleManager, entity.RoleWorker:
		if actor.SupermarketID == nil {
			return nil, domain.ErrNoBranchAssigned
		}
		var own *entity.Supermarket
		own, err = uc.repo.GetActiveByID(*actor.SupermarketID)
		if own != nil {
			list = []*entity.Supermarket{own}
		}
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.SupermarketResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupermarketResponse(s))
	}
	return &dto.SupermarketListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Create crea una sucursal nueva. El nombre es único en toda la cadena.
func (uc *SupermarketUseCase) Create(actor *entity.User, in dto.CreateSupermarketRequest) (*dto.SupermarketResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	s := &entity.Supermarket{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Status:    entity.StatusActive,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSupermarketResponse(s), nil
}

// Update actualiza nombre/dirección/teléfono. Devuelve nil si no existe.
func (uc *SupermarketUseCase) Update(id string, in dto.UpdateSupermarketRequest) (*dto.SupermarketResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != s.Name {
		existing, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		s.Name = *in.Name
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSupermarketResponse(s), nil
}

// Delete archiva la sucursal (borrado lógico). Archivar una sucursal ya
// archivada vuelve a responder éxito.
func (uc *SupermarketUseCase) Delete(id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Archive(id)
}

func toSupermarketResponse(s *entity.Supermarket) *dto.SupermarketResponse {
	if s == nil {
		return nil
	}
	return &dto.SupermarketResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		Status:    string(s.Status),
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
