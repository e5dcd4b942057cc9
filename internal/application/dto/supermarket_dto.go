package dto

import "time"

// CreateSupermarketRequest entrada para crear una sucursal.
type CreateSupermarketRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone"`
}

// UpdateSupermarketRequest entrada parcial para actualizar una sucursal.
type UpdateSupermarketRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// SupermarketResponse salida de una sucursal.
type SupermarketResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupermarketListResponse lista paginada de sucursales.
type SupermarketListResponse struct {
	Items []SupermarketResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
