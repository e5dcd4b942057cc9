package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// UserUseCase reglas de negocio para el staff: listado con visibilidad por
// rol, altas/cambios con supresión de sucursal para roles globales y borrado
// lógico. El password solo se rehashea cuando llega uno nuevo en texto plano.
type UserUseCase struct {
	userRepo        repository.UserRepository
	supermarketRepo repository.SupermarketRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, supermarketRepo repository.SupermarketRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, supermarketRepo: supermarketRepo}
}

// List lista usuarios activos. Admin ve todas las sucursales; manager solo
// la suya (y sin sucursal asignada es un error del dato).
func (uc *UserUseCase) List(actor *entity.User, limit, offset int) (*dto.UserListResponse, error) {
	var list []*entity.User
	var err error

	switch actor.Role {
	case entity.RoleAdmin:
		list, err = uc.userRepo.List(limit, offset)
	case entity.RoleManager:
		if actor.SupermarketID == nil {
			return nil, domain.ErrNoBranchAssigned
		}
		list, err = uc.userRepo.ListBySupermarket(*actor.SupermarketID, limit, offset)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toStaffResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Create da de alta un usuario de staff. Rol por defecto: worker. Si el rol
// es global (admin/provider) se descarta cualquier sucursal enviada; si es
// manager/worker la sucursal es obligatoria y debe existir activa.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := entity.RoleWorker
	if in.Role != "" {
		r, ok := entity.ParseRole(in.Role)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		role = r
	}

	supermarketID, supermarketName, err := uc.resolveBranch(role, in.SupermarketID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	status := entity.StatusActive
	if in.Active != nil && !*in.Active {
		status = entity.StatusArchived
	}

	now := time.Now()
	user := &entity.User{
		ID:              uuid.New().String(),
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           email,
		PasswordHash:    string(hash),
		Role:            role,
		Status:          status,
		SupermarketID:   supermarketID,
		SupermarketName: supermarketName,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toStaffResponse(user), nil
}

// Update aplica cambios parciales a un usuario. Devuelve nil si no existe.
// Cambiar a rol global desvincula la sucursal; cambiar a manager/worker
// exige una (la enviada o la que ya tenía).
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != user.Email {
			existing, err := uc.userRepo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	// Rehash únicamente cuando llega un password nuevo; tocar otros campos
	// jamás vuelve a hashear el hash almacenado.
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	role := user.Role
	if in.Role != nil {
		r, ok := entity.ParseRole(*in.Role)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		role = r
	}

	branchIn := in.SupermarketID
	if branchIn == nil {
		branchIn = user.SupermarketID
	}
	supermarketID, supermarketName, err := uc.resolveBranch(role, branchIn)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.SupermarketID = supermarketID
	user.SupermarketName = supermarketName

	if in.Active != nil {
		if *in.Active {
			user.Status = entity.StatusActive
		} else {
			user.Status = entity.StatusArchived
		}
	}

	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toStaffResponse(user), nil
}

// Delete archiva el usuario (borrado lógico, conserva historial).
// Archivar un archivado vuelve a responder éxito.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.Archive(id)
}

// resolveBranch aplica la regla de sucursal según el rol: los roles globales
// no llevan sucursal (se descarta la enviada); manager/worker la exigen y
// debe existir activa.
func (uc *UserUseCase) resolveBranch(role entity.Role, supermarketID *string) (*string, *string, error) {
	if role.Global() {
		return nil, nil, nil
	}
	if supermarketID == nil || *supermarketID == "" {
		return nil, nil, domain.ErrNoBranchAssigned
	}
	s, err := uc.supermarketRepo.GetActiveByID(*supermarketID)
	if err != nil {
		return nil, nil, err
	}
	if s == nil {
		return nil, nil, domain.ErrNotFound
	}
	return &s.ID, &s.Name, nil
}

func toStaffResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.SupermarketID != nil {
		ref := &dto.SupermarketRef{ID: *u.SupermarketID}
		if u.SupermarketName != nil {
			ref.Name = *u.SupermarketName
		}
		resp.Supermarket = ref
	}
	return resp
}
