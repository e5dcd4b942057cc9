package dto

import "time"

// CreateUserRequest entrada para crear un usuario de staff (password en
// texto, se hashea en el use case).
type CreateUserRequest struct {
	FirstName     string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName      string  `json:"last_name" validate:"required,min=1,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=6"`
	Role          string  `json:"role" validate:"omitempty,oneof=admin manager worker provider"`
	SupermarketID *string `json:"supermarket_id" validate:"omitempty,uuid"`
	Active        *bool   `json:"active"`
}

// UpdateUserRequest entrada parcial para actualizar un usuario. Password
// solo se rehashea si viene.
type UpdateUserRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName      *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Password      *string `json:"password" validate:"omitempty,min=6"`
	Role          *string `json:"role" validate:"omitempty,oneof=admin manager worker provider"`
	SupermarketID *string `json:"supermarket_id" validate:"omitempty,uuid"`
	Active        *bool   `json:"active"`
}

// SupermarketRef referencia mínima a la sucursal en respuestas de usuario.
type SupermarketRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	Status      string          `json:"status"`
	Supermarket *SupermarketRef `json:"supermarket,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
