package services

import (
	"log"

	"sabor-backend/entity"
)

// CartService runs the aggregate operations and mirrors every mutation to
// the store (write-through). A failed save is logged, never surfaced: the
// aggregate just handled stays authoritative for this request.
type CartService struct {
	Store    CartStore
	Products ProductStore
}

func NewCartService(store CartStore, products ProductStore) *CartService {
	return &CartService{Store: store, Products: products}
}

func (s *CartService) Get(scope ScopeKey) (*entity.Cart, int64, error) {
	cart, err := s.Store.Load(scope)
	if err != nil {
		return nil, 0, err
	}
	return cart, cart.Subtotal(), nil
}

// Add merges one unit of the product into the cart. Only available dishes
// can be added.
func (s *CartService) Add(scope ScopeKey, productID uint) (*entity.Cart, error) {
	p, err := s.Products.FindByID(productID)
	if err != nil || !p.Available {
		return nil, ErrProductNotFound
	}

	cart, err := s.Store.Load(scope)
	if err != nil {
		return nil, err
	}
	cart.Add(p)
	s.persist(scope, cart)
	return cart, nil
}

func (s *CartService) Increase(scope ScopeKey, productID uint) (*entity.Cart, error) {
	cart, err := s.Store.Load(scope)
	if err != nil {
		return nil, err
	}
	if cart.Increase(productID) {
		s.persist(scope, cart)
	}
	return cart, nil
}

func (s *CartService) Decrease(scope ScopeKey, productID uint) (*entity.Cart, error) {
	cart, err := s.Store.Load(scope)
	if err != nil {
		return nil, err
	}
	if cart.Decrease(productID) {
		s.persist(scope, cart)
	}
	return cart, nil
}

func (s *CartService) Remove(scope ScopeKey, productID uint) (*entity.Cart, error) {
	cart, err := s.Store.Load(scope)
	if err != nil {
		return nil, err
	}
	if cart.RemoveLine(productID) {
		s.persist(scope, cart)
	}
	return cart, nil
}

func (s *CartService) Clear(scope ScopeKey) error {
	return s.Store.Delete(scope)
}

func (s *CartService) persist(scope ScopeKey, cart *entity.Cart) {
	if err := s.Store.Save(scope, cart); err != nil {
		log.Printf("cart save failed for %s: %v", scope, err)
	}
}
