package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.SupermarketRepository = (*SupermarketRepo)(nil)

// SupermarketRepo implementación del puerto SupermarketRepository sobre PostgreSQL.
type SupermarketRepo struct {
	pool *pgxpool.Pool
}

// NewSupermarketRepository construye el adaptador de persistencia para sucursales.
func NewSupermarketRepository(pool *pgxpool.Pool) *SupermarketRepo {
	return &SupermarketRepo{pool: pool}
}

const supermarketColumns = `id, name, address, phone, status, created_by, created_at, updated_at`

// Create persiste una nueva sucursal.
func (r *SupermarketRepo) Create(s *entity.Supermarket) error {
	query := `
		INSERT INTO supermarkets (id, name, address, phone, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Name, s.Address, s.Phone, string(s.Status), s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supermarket: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID, sin importar su estado.
func (r *SupermarketRepo) GetByID(id string) (*entity.Supermarket, error) {
	query := `SELECT ` + supermarketColumns + ` FROM supermarkets WHERE id = $1`
	return r.queryOne(query, id)
}

// GetActiveByID obtiene una sucursal por ID solo si está activa.
func (r *SupermarketRepo) GetActiveByID(id string) (*entity.Supermarket, error) {
	query := `SELECT ` + supermarketColumns + ` FROM supermarkets WHERE id = $1 AND status = 'active'`
	return r.queryOne(query, id)
}

// GetByName obtiene una sucursal por nombre exacto (chequeo de duplicados).
func (r *SupermarketRepo) GetByName(name string) (*entity.Supermarket, error) {
	query := `SELECT ` + supermarketColumns + ` FROM supermarkets WHERE name = $1`
	return r.queryOne(query, name)
}

// Update actualiza una sucursal.
func (r *SupermarketRepo) Update(s *entity.Supermarket) error {
	query := `
		UPDATE supermarkets SET name = $2, address = $3, phone = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Name, s.Address, s.Phone, string(s.Status), s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supermarket: %w", err)
	}
	return nil
}

// ListActive lista sucursales activas con paginación.
func (r *SupermarketRepo) ListActive(limit, offset int) ([]*entity.Supermarket, error) {
	query := `
		SELECT ` + supermarketColumns + ` FROM supermarkets
		WHERE status = 'active' ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list supermarkets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supermarket
	for rows.Next() {
		s, err := scanSupermarket(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan supermarket: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Archive marca la sucursal como archivada. No-op si ya lo estaba.
func (r *SupermarketRepo) Archive(id string) error {
	query := `UPDATE supermarkets SET status = 'archived', updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("archive supermarket: %w", err)
	}
	return nil
}

func (r *SupermarketRepo) queryOne(query string, args ...any) (*entity.Supermarket, error) {
	s, err := scanSupermarket(func(dest ...any) error {
		return r.pool.QueryRow(context.Background(), query, args...).Scan(dest...)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supermarket: %w", err)
	}
	return s, nil
}

func scanSupermarket(scan func(dest ...any) error) (*entity.Supermarket, error) {
	var s entity.Supermarket
	var status string
	if err := scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &status, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.Status = entity.Status(status)
	return &s, nil
}
