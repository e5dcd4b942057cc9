package repository

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Active* excluyen registros archivados; el resto ve todo.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetActiveByID resuelve el sujeto de un token: un usuario archivado
	// después de emitido el token debe dejar de resolver.
	GetActiveByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// List lista usuarios activos de todas las sucursales (visión admin).
	List(limit, offset int) ([]*entity.User, error)
	// ListBySupermarket lista usuarios activos de una sucursal (visión manager).
	ListBySupermarket(supermarketID string, limit, offset int) ([]*entity.User, error)
	// Archive marca el usuario como archivado. Archivar un archivado es no-op.
	Archive(id string) error
}
