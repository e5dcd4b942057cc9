package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/supermercado-api/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación: registro, login, refresh y perfil.
// Emite pares de tokens pero no sabe de cookies: eso es del transporte.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   pkgjwt.Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg pkgjwt.Config) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea una cuenta: hashea el password con bcrypt, persiste y
// emite el par de tokens inicial. Devuelve ErrEmailAlreadyExists si el email
// ya existe (comparación en minúsculas).
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, pkgjwt.Pair, error) {
	email := normalizeEmail(in.Email)
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, pkgjwt.Pair{}, err
	}
	if existing != nil {
		return nil, pkgjwt.Pair{}, domain.ErrEmailAlreadyExists
	}

	role := entity.RoleWorker
	if in.Role != "" {
		r, ok := entity.ParseRole(in.Role)
		if !ok {
			return nil, pkgjwt.Pair{}, domain.ErrInvalidInput
		}
		role = r
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, pkgjwt.Pair{}, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, pkgjwt.Pair{}, err
	}

	pair, err := pkgjwt.GeneratePair(uc.jwtCfg, user.ID)
	if err != nil {
		return nil, pkgjwt.Pair{}, err
	}
	return toUserResponse(user), pair, nil
}

// Login verifica email/password y emite un par de tokens nuevo.
// Un usuario archivado no puede obtener tokens aunque el password sea correcto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, pkgjwt.Pair, error) {
	user, err := uc.userRepo.GetByEmail(normalizeEmail(in.Email))
	if err != nil {
		return nil, pkgjwt.Pair{}, err
	}
	if user == nil {
		return nil, pkgjwt.Pair{}, domain.ErrUserNotFound
	}
	// Un hash vacío (cuenta solo federada) nunca verifica.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, pkgjwt.Pair{}, domain.ErrUnauthorized
	}
	if !user.Status.Active() {
		return nil, pkgjwt.Pair{}, domain.ErrInactiveUser
	}

	pair, err := pkgjwt.GeneratePair(uc.jwtCfg, user.ID)
	if err != nil {
		return nil, pkgjwt.Pair{}, err
	}
	return &dto.LoginResponse{
		Message: "Inicio de sesión exitoso",
		User:    *toUserResponse(user),
	}, pair, nil
}

// Refresh valida el refresh token y emite un par NUEVO (rotación en cada
// refresh). No pide password. ErrForbidden cuando el token es inválido o
// expiró (el cliente debe reautenticarse); ErrUserNotFound cuando el sujeto
// ya no existe o fue archivado.
func (uc *AuthUseCase) Refresh(refreshToken string) (pkgjwt.Pair, error) {
	userID, err := pkgjwt.ParseRefresh(uc.jwtCfg, refreshToken)
	if err != nil {
		return pkgjwt.Pair{}, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetActiveByID(userID)
	if err != nil {
		return pkgjwt.Pair{}, err
	}
	if user == nil {
		return pkgjwt.Pair{}, domain.ErrUserNotFound
	}
	return pkgjwt.GeneratePair(uc.jwtCfg, user.ID)
}

// Profile devuelve el usuario autenticado (con el nombre de su sucursal).
func (uc *AuthUseCase) Profile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetActiveByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
