package usecase_test

import (
	"sort"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetActiveByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok || !u.Status.Active() {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Status.Active() {
			cp := *u
			out = append(out, &cp)
		}
	}
	sortUsers(out)
	return page(out, limit, offset), nil
}

func (r *fakeUserRepo) ListBySupermarket(supermarketID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Status.Active() && u.SupermarketID != nil && *u.SupermarketID == supermarketID {
			cp := *u
			out = append(out, &cp)
		}
	}
	sortUsers(out)
	return page(out, limit, offset), nil
}

func (r *fakeUserRepo) Archive(id string) error {
	if u, ok := r.users[id]; ok {
		u.Status = entity.StatusArchived
	}
	return nil
}

type fakeSupermarketRepo struct {
	supermarkets map[string]*entity.Supermarket
}

func newFakeSupermarketRepo() *fakeSupermarketRepo {
	return &fakeSupermarketRepo{supermarkets: map[string]*entity.Supermarket{}}
}

func (r *fakeSupermarketRepo) Create(s *entity.Supermarket) error {
	cp := *s
	r.supermarkets[s.ID] = &cp
	return nil
}

func (r *fakeSupermarketRepo) GetByID(id string) (*entity.Supermarket, error) {
	s, ok := r.supermarkets[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupermarketRepo) GetActiveByID(id string) (*entity.Supermarket, error) {
	s, ok := r.supermarkets[id]
	if !ok || !s.Status.Active() {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupermarketRepo) GetByName(name string) (*entity.Supermarket, error) {
	for _, s := range r.supermarkets {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupermarketRepo) Update(s *entity.Supermarket) error {
	cp := *s
	r.supermarkets[s.ID] = &cp
	return nil
}

func (r *fakeSupermarketRepo) ListActive(limit, offset int) ([]*entity.Supermarket, error) {
	var out []*entity.Supermarket
	for _, s := range r.supermarkets {
		if s.Status.Active() {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *fakeSupermarketRepo) Archive(id string) error {
	if s, ok := r.supermarkets[id]; ok {
		s.Status = entity.StatusArchived
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySupermarketAndSKU(supermarketID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SupermarketID == supermarketID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) ListBySupermarket(supermarketID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Status.Active() && p.SupermarketID == supermarketID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *fakeProductRepo) ListLowStock(supermarketID *string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if !p.Status.Active() || !p.LowStock() {
			continue
		}
		if supermarketID != nil && p.SupermarketID != *supermarketID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Archive(id string) error {
	if p, ok := r.products[id]; ok {
		p.Status = entity.StatusArchived
	}
	return nil
}

func sortUsers(list []*entity.User) {
	sort.Slice(list, func(i, j int) bool { return list[i].Email < list[j].Email })
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
