package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

const defaultMinStock = 10

// ProductUseCase reglas de negocio para productos: SKU único por sucursal y
// evaluación de stock bajo en cada actualización. La alerta acompaña la
// respuesta, nunca bloquea la escritura.
type ProductUseCase struct {
	productRepo     repository.ProductRepository
	supermarketRepo repository.SupermarketRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, supermarketRepo repository.SupermarketRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, supermarketRepo: supermarketRepo}
}

// Create crea un producto bajo una sucursal. El SKU se guarda en mayúsculas;
// el par (SKU, sucursal) es único pero dos sucursales pueden repetir SKU.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.ToUpper(strings.TrimSpace(in.SKU))
	if sku == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	minStock := defaultMinStock
	if in.MinStock != nil {
		if *in.MinStock < 1 {
			return nil, domain.ErrInvalidInput
		}
		minStock = *in.MinStock
	}

	s, err := uc.supermarketRepo.GetActiveByID(in.SupermarketID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.productRepo.GetBySupermarketAndSKU(in.SupermarketID, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	category := in.Category
	if category == "" {
		category = "General"
	}

	now := time.Now()
	p := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		SKU:           sku,
		Description:   in.Description,
		Price:         in.Price,
		Stock:         in.Stock,
		MinStock:      minStock,
		Category:      category,
		SupermarketID: in.SupermarketID,
		Status:        entity.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListBySupermarket lista productos activos de una sucursal.
func (uc *ProductUseCase) ListBySupermarket(supermarketID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.ListBySupermarket(supermarketID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica cambios parciales y evalúa el umbral de reposición: si el
// stock resultante queda en o bajo el mínimo, la respuesta lleva alert=true
// con la cantidad restante. Devuelve nil si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.Stock = *in.Stock
	}
	if in.MinStock != nil {
		if *in.MinStock < 1 {
			return nil, domain.ErrInvalidInput
		}
		p.MinStock = *in.MinStock
	}
	if in.Category != nil {
		p.Category = *in.Category
	}

	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}

	resp := toProductResponse(p)
	if p.LowStock() {
		resp.Alert = true
		resp.AlertMessage = fmt.Sprintf("Stock Crítico: Solo quedan %d unidades", p.Stock)
	}
	return resp, nil
}

// Delete archiva el producto. Sin verificación de existencia: archivar un
// producto inexistente o ya archivado responde éxito igual.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.productRepo.Archive(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Description:   p.Description,
		Price:         p.Price,
		Stock:         p.Stock,
		MinStock:      p.MinStock,
		Category:      p.Category,
		SupermarketID: p.SupermarketID,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
