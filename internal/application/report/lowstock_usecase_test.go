package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/internal/application/report"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// fakeProductRepo solo implementa lo que el caso de uso del reporte toca.
type fakeProductRepo struct {
	lowStock []*entity.Product
	askedFor *string
}

func (r *fakeProductRepo) Create(p *entity.Product) error                 { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)     { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                 { return nil }
func (r *fakeProductRepo) Archive(id string) error                        { return nil }
func (r *fakeProductRepo) GetBySupermarketAndSKU(supermarketID, sku string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListBySupermarket(supermarketID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListLowStock(supermarketID *string) ([]*entity.Product, error) {
	r.askedFor = supermarketID
	return r.lowStock, nil
}

type fakeSupermarketRepo struct {
	active map[string]*entity.Supermarket
}

func (r *fakeSupermarketRepo) Create(s *entity.Supermarket) error                    { return nil }
func (r *fakeSupermarketRepo) GetByID(id string) (*entity.Supermarket, error)        { return nil, nil }
func (r *fakeSupermarketRepo) GetByName(name string) (*entity.Supermarket, error)    { return nil, nil }
func (r *fakeSupermarketRepo) Update(s *entity.Supermarket) error                    { return nil }
func (r *fakeSupermarketRepo) Archive(id string) error                               { return nil }
func (r *fakeSupermarketRepo) ListActive(limit, offset int) ([]*entity.Supermarket, error) {
	return nil, nil
}
func (r *fakeSupermarketRepo) GetActiveByID(id string) (*entity.Supermarket, error) {
	return r.active[id], nil
}

// fakePDF captura el alcance con el que se pidió renderizar.
type fakePDF struct {
	scope string
	items []*entity.Product
}

func (f *fakePDF) GenerateLowStockPDF(ctx context.Context, generatedAt time.Time, scope string, items []*entity.Product) ([]byte, error) {
	f.scope = scope
	f.items = items
	return []byte("%PDF-fake"), nil
}

func strPtr(s string) *string { return &s }

func newReportUC(lowStock []*entity.Product) (*report.LowStockUseCase, *fakeProductRepo, *fakePDF) {
	products := &fakeProductRepo{lowStock: lowStock}
	supermarkets := &fakeSupermarketRepo{active: map[string]*entity.Supermarket{
		"s1": {ID: "s1", Name: "Sucursal Centro", Status: entity.StatusActive},
	}}
	pdf := &fakePDF{}
	return report.NewLowStockUseCase(products, supermarkets, pdf), products, pdf
}

func TestLowStockReport_AdminSinFiltro_TodaLaCadena(t *testing.T) {
	uc, products, pdf := newReportUC([]*entity.Product{{ID: "p1", Name: "Arroz", Stock: 2, MinStock: 10}})
	admin := &entity.User{ID: "u1", Role: entity.RoleAdmin}

	out, err := uc.Generate(context.Background(), admin, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Nil(t, products.askedFor, "sin filtro el admin reporta toda la cadena")
	assert.Equal(t, "Todas las sucursales", pdf.scope)
	assert.Len(t, pdf.items, 1)
}

func TestLowStockReport_AdminConFiltro_UsaElNombreDeLaSucursal(t *testing.T) {
	uc, products, pdf := newReportUC(nil)
	admin := &entity.User{ID: "u1", Role: entity.RoleAdmin}

	_, err := uc.Generate(context.Background(), admin, strPtr("s1"))
	require.NoError(t, err)
	require.NotNil(t, products.askedFor)
	assert.Equal(t, "s1", *products.askedFor)
	assert.Equal(t, "Sucursal Centro", pdf.scope)
}

// Un manager no elige: el alcance es siempre su sucursal asignada, aunque
// envíe otra por query.
func TestLowStockReport_ManagerIgnoraElFiltro(t *testing.T) {
	uc, products, _ := newReportUC(nil)
	manager := &entity.User{ID: "u1", Role: entity.RoleManager, SupermarketID: strPtr("s1")}

	_, err := uc.Generate(context.Background(), manager, strPtr("otra"))
	require.NoError(t, err)
	require.NotNil(t, products.askedFor)
	assert.Equal(t, "s1", *products.askedFor)
}

func TestLowStockReport_ManagerSinSucursal_RetornaError(t *testing.T) {
	uc, _, _ := newReportUC(nil)
	manager := &entity.User{ID: "u1", Role: entity.RoleManager}

	_, err := uc.Generate(context.Background(), manager, nil)
	assert.ErrorIs(t, err, domain.ErrNoBranchAssigned)
}

func TestLowStockReport_WorkerNoPuede(t *testing.T) {
	uc, _, _ := newReportUC(nil)
	worker := &entity.User{ID: "u1", Role: entity.RoleWorker, SupermarketID: strPtr("s1")}

	_, err := uc.Generate(context.Background(), worker, nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLowStockReport_SucursalInexistente_Retorna404(t *testing.T) {
	uc, _, _ := newReportUC(nil)
	admin := &entity.User{ID: "u1", Role: entity.RoleAdmin}

	_, err := uc.Generate(context.Background(), admin, strPtr("no-existe"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
