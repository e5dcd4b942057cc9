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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Los SELECT hacen LEFT JOIN con supermarkets para poblar el nombre de la
// sucursal en la misma consulta.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `
	u.id, u.first_name, u.last_name, u.email, u.password_hash, u.role, u.status,
	u.supermarket_id, u.created_at, u.updated_at, s.name AS supermarket_name`

const userFrom = `
	FROM users u
	LEFT JOIN supermarkets s ON s.id = u.supermarket_id`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash, role, status, supermarket_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		string(user.Role), string(user.Status), user.SupermarketID,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, sin importar su estado.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT` + userColumns + userFrom + ` WHERE u.id = $1`
	return r.queryOne(query, id)
}

// GetActiveByID obtiene un usuario por ID solo si está activo. Es la consulta
// del middleware de sesión: un usuario archivado deja de resolver.
func (r *UserRepo) GetActiveByID(id string) (*entity.User, error) {
	query := `SELECT` + userColumns + userFrom + ` WHERE u.id = $1 AND u.status = 'active'`
	return r.queryOne(query, id)
}

// GetByEmail obtiene un usuario por email (en minúsculas), sin importar su
// estado: el chequeo de duplicados debe ver también archivados.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT` + userColumns + userFrom + ` WHERE u.email = $1 LIMIT 1`
	return r.queryOne(query, email)
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, password_hash = $5,
		    role = $6, status = $7, supermarket_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		string(user.Role), string(user.Status), user.SupermarketID, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios activos de todas las sucursales con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT` + userColumns + userFrom + `
		WHERE u.status = 'active'
		ORDER BY u.created_at DESC LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListBySupermarket lista usuarios activos de una sucursal con paginación.
func (r *UserRepo) ListBySupermarket(supermarketID string, limit, offset int) ([]*entity.User, error) {
	query := `SELECT` + userColumns + userFrom + `
		WHERE u.status = 'active' AND u.supermarket_id = $1
		ORDER BY u.created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMany(query, supermarketID, limit, offset)
}

// Archive marca el usuario como archivado. No-op si ya lo estaba.
func (r *UserRepo) Archive(id string) error {
	query := `UPDATE users SET status = 'archived', updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("archive user: %w", err)
	}
	return nil
}

func (r *UserRepo) queryOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	var role, status string
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &role, &status,
		&u.SupermarketID, &u.CreatedAt, &u.UpdatedAt, &u.SupermarketName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = entity.Role(role)
	u.Status = entity.Status(status)
	return &u, nil
}

func (r *UserRepo) queryMany(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var role, status string
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &role, &status,
			&u.SupermarketID, &u.CreatedAt, &u.UpdatedAt, &u.SupermarketName,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = entity.Role(role)
		u.Status = entity.Status(status)
		list = append(list, &u)
	}
	return list, rows.Err()
}
