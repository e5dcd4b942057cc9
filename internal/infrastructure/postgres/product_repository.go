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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// El índice único (sku, supermarket_id) respalda la regla de SKU por sucursal.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `
	p.id, p.name, p.sku, p.description, p.price, p.stock, p.min_stock,
	p.category, p.supermarket_id, p.status, p.created_at, p.updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sku, description, price, stock, min_stock, category, supermarket_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.Name, p.SKU, p.Description, p.Price, p.Stock, p.MinStock,
		p.Category, p.SupermarketID, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		// La sucursal pudo ser borrada entre la validación y el INSERT.
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, sin importar su estado.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`
	return r.queryOne(query, id)
}

// GetBySupermarketAndSKU obtiene un producto por sucursal y SKU (en mayúsculas).
func (r *ProductRepo) GetBySupermarketAndSKU(supermarketID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.supermarket_id = $1 AND p.sku = $2`
	return r.queryOne(query, supermarketID, sku)
}

// Update actualiza un producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, min_stock = $6,
		    category = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.MinStock,
		p.Category, string(p.Status), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListBySupermarket lista productos activos de una sucursal con paginación.
func (r *ProductRepo) ListBySupermarket(supermarketID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products p
		WHERE p.supermarket_id = $1 AND p.status = 'active'
		ORDER BY p.name LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, supermarketID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return r.collect(rows, false)
}

// ListLowStock productos activos con stock <= min_stock, con el nombre de la
// sucursal poblado para el reporte. supermarketID nil = toda la cadena.
func (r *ProductRepo) ListLowStock(supermarketID *string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `, s.name AS supermarket_name
		FROM products p
		JOIN supermarkets s ON s.id = p.supermarket_id
		WHERE p.status = 'active' AND s.status = 'active' AND p.stock <= p.min_stock
		  AND ($1::uuid IS NULL OR p.supermarket_id = $1)
		ORDER BY s.name, p.stock - p.min_stock`
	rows, err := r.pool.Query(context.Background(), query, supermarketID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return r.collect(rows, true)
}

// Archive marca el producto como archivado. No-op si ya lo estaba o no existe.
func (r *ProductRepo) Archive(id string) error {
	query := `UPDATE products SET status = 'archived', updated_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("archive product: %w", err)
	}
	return nil
}

func (r *ProductRepo) queryOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	var status string
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.Stock, &p.MinStock,
		&p.Category, &p.SupermarketID, &status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Status = entity.Status(status)
	return &p, nil
}

func (r *ProductRepo) collect(rows pgx.Rows, withSupermarketName bool) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var status string
		dest := []any{
			&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.Stock, &p.MinStock,
			&p.Category, &p.SupermarketID, &status, &p.CreatedAt, &p.UpdatedAt,
		}
		if withSupermarketName {
			dest = append(dest, &p.SupermarketName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Status = entity.Status(status)
		list = append(list, &p)
	}
	return list, rows.Err()
}
