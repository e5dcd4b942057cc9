package repository

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// SupermarketRepository define el puerto de persistencia para Supermarket (DIP).
type SupermarketRepository interface {
	Create(s *entity.Supermarket) error
	GetByID(id string) (*entity.Supermarket, error)
	GetActiveByID(id string) (*entity.Supermarket, error)
	GetByName(name string) (*entity.Supermarket, error)
	Update(s *entity.Supermarket) error
	// ListActive lista sucursales activas.
	ListActive(limit, offset int) ([]*entity.Supermarket, error)
	// Archive marca la sucursal como archivada. Idempotente.
	Archive(id string) error
}
