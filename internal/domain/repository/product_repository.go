package repository

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySupermarketAndSKU(supermarketID, sku string) (*entity.Product, error)
	Update(p *entity.Product) error
	// ListBySupermarket lista productos activos de una sucursal.
	ListBySupermarket(supermarketID string, limit, offset int) ([]*entity.Product, error)
	// ListLowStock productos activos con stock <= min_stock, con nombre de
	// sucursal poblado. supermarketID nil = todas las sucursales activas.
	ListLowStock(supermarketID *string) ([]*entity.Product, error)
	// Archive marca el producto como archivado. Idempotente.
	Archive(id string) error
}
