package report

import (
	"context"
	"time"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// PDFGenerator puerto de renderizado del reporte de reposición.
type PDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, generatedAt time.Time, scope string, items []*entity.Product) ([]byte, error)
}

// LowStockUseCase arma el reporte de productos en o bajo su stock mínimo.
// Un manager siempre reporta sobre su propia sucursal; un admin puede pedir
// una sucursal concreta o toda la cadena.
type LowStockUseCase struct {
	productRepo     repository.ProductRepository
	supermarketRepo repository.SupermarketRepository
	pdf             PDFGenerator
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(
	productRepo repository.ProductRepository,
	supermarketRepo repository.SupermarketRepository,
	pdf PDFGenerator,
) *LowStockUseCase {
	return &LowStockUseCase{productRepo: productRepo, supermarketRepo: supermarketRepo, pdf: pdf}
}

// Generate produce el PDF. supermarketID solo lo honra el admin; para un
// manager el alcance es siempre su sucursal asignada.
func (uc *LowStockUseCase) Generate(ctx context.Context, actor *entity.User, supermarketID *string) ([]byte, error) {
	scope := "Todas las sucursales"
	var branchID *string

	switch actor.Role {
	case entity.RoleManager:
		if actor.SupermarketID == nil {
			return nil, domain.ErrNoBranchAssigned
		}
		branchID = actor.SupermarketID
	case entity.RoleAdmin:
		branchID = supermarketID
	default:
		return nil, domain.ErrForbidden
	}

	if branchID != nil {
		s, err := uc.supermarketRepo.GetActiveByID(*branchID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, domain.ErrNotFound
		}
		scope = s.Name
	}

	items, err := uc.productRepo.ListLowStock(branchID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateLowStockPDF(ctx, time.Now(), scope, items)
}
