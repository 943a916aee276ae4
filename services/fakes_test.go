package services

import (
	"errors"

	"sabor-backend/entity"
)

// memCartStore mimics the persistence bridge in memory. Load hands back a
// deep copy, so only Save makes a mutation stick, like real storage.
type memCartStore struct {
	carts   map[ScopeKey]*entity.Cart
	saves   int
	deletes int
	saveErr error
	loadErr error
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[ScopeKey]*entity.Cart)}
}

func copyCart(c *entity.Cart) *entity.Cart {
	out := &entity.Cart{UserID: c.UserID, TableID: c.TableID}
	out.ID = c.ID
	out.Items = append([]entity.CartItem(nil), c.Items...)
	return out
}

func (s *memCartStore) Load(scope ScopeKey) (*entity.Cart, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if c, ok := s.carts[scope]; ok {
		return copyCart(c), nil
	}
	return &entity.Cart{UserID: scope.UserID, TableID: scope.TableID}, nil
}

func (s *memCartStore) Save(scope ScopeKey, cart *entity.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.carts[scope] = copyCart(cart)
	return nil
}

func (s *memCartStore) Delete(scope ScopeKey) error {
	s.deletes++
	delete(s.carts, scope)
	return nil
}

type fakeProducts struct {
	products map[uint]*entity.Product
}

func newFakeProducts(ps ...*entity.Product) *fakeProducts {
	f := &fakeProducts{products: make(map[uint]*entity.Product)}
	for _, p := range ps {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProducts) FindByID(id uint) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeProducts) ListAvailable() ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.Available {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) ListAll() ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProducts) Create(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProducts) Update(id uint, updates map[string]any) error { return nil }
func (f *fakeProducts) Delete(id uint) error                         { delete(f.products, id); return nil }
func (f *fakeProducts) GetImage(id uint) (*entity.Product, error)    { return f.FindByID(id) }

type fakeDiscounts struct {
	rates map[string]float64
}

func (f *fakeDiscounts) FindRate(code string) (float64, bool, error) {
	rate, ok := f.rates[code]
	return rate, ok, nil
}

type fakeOrders struct {
	created   []*entity.Order
	createErr error
	lastList  OrderFilters
}

func (f *fakeOrders) Create(o *entity.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrders) List(filters OrderFilters) ([]entity.Order, error) {
	f.lastList = filters
	var out []entity.Order
	for _, o := range f.created {
		out = append(out, *o)
	}
	return out, nil
}

type fakeTables struct {
	tables map[uint]*entity.Table
}

func newFakeTables(ts ...*entity.Table) *fakeTables {
	f := &fakeTables{tables: make(map[uint]*entity.Table)}
	for _, t := range ts {
		f.tables[t.ID] = t
	}
	return f
}

func (f *fakeTables) List() ([]entity.Table, error) {
	var out []entity.Table
	for _, t := range f.tables {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTables) FindByID(id uint) (*entity.Table, error) {
	if t, ok := f.tables[id]; ok {
		return t, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeTables) SetOccupied(id uint, occupied bool) (bool, error) {
	t, ok := f.tables[id]
	if !ok || t.Occupied == occupied {
		return false, nil
	}
	t.Occupied = occupied
	return true, nil
}

func (f *fakeTables) Create(t *entity.Table) error { f.tables[t.ID] = t; return nil }
func (f *fakeTables) Delete(id uint) error         { delete(f.tables, id); return nil }
