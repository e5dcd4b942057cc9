package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto bajo una sucursal.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock" validate:"min=0"`
	MinStock      *int            `json:"min_stock" validate:"omitempty,min=1"`
	Category      string          `json:"category"`
	SupermarketID string          `json:"supermarket_id" validate:"required,uuid"`
}

// UpdateProductRequest entrada parcial para actualizar un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	MinStock    *int             `json:"min_stock" validate:"omitempty,min=1"`
	Category    *string          `json:"category"`
}

// ProductResponse salida de un producto. Alert/AlertMessage solo viajan
// cuando una actualización deja el stock en o bajo el mínimo.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	MinStock      int             `json:"min_stock"`
	Category      string          `json:"category"`
	SupermarketID string          `json:"supermarket_id"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Alert        bool   `json:"alert,omitempty"`
	AlertMessage string `json:"alert_message,omitempty"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
