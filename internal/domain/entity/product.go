package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de UNA sucursal.
// El par (SKU, SupermarketID) es único: dos sucursales distintas pueden
// repetir SKU. El SKU se normaliza a mayúsculas al escribir.
type Product struct {
	ID            string
	Name          string
	SKU           string
	Description   string
	Price         decimal.Decimal // >= 0
	Stock         int             // >= 0
	MinStock      int             // >= 1, por defecto 10
	Category      string
	SupermarketID string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// SupermarketName lo pueblan las consultas con JOIN (reporte de stock
	// bajo); no es columna de products.
	SupermarketName string
}

// LowStock indica si el producto está en o bajo su umbral de reposición.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

// SuggestedReorder cantidad sugerida para reponer: llegar al doble del
// mínimo descontando lo que queda.
func (p *Product) SuggestedReorder() int {
	n := p.MinStock*2 - p.Stock
	if n < 0 {
		return 0
	}
	return n
}
