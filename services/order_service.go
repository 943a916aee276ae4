package services

import (
	"sabor-backend/entity"
)

// OrderService serves the history views on top of the order store.
type OrderService struct {
	Store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{Store: store}
}

// History lists orders with the admin filters applied. Unknown sort
// inputs fall back to newest-first by date.
func (s *OrderService) History(f OrderFilters) ([]entity.Order, error) {
	if f.SortBy != SortByTotal {
		f.SortBy = SortByDate
	}
	if f.SortOrder != SortAsc {
		f.SortOrder = SortDesc
	}
	return s.Store.List(f)
}

// HistoryForClient restricts the listing to one client's own orders.
func (s *OrderService) HistoryForClient(clientName string, f OrderFilters) ([]entity.Order, error) {
	f.ClientName = clientName
	return s.History(f)
}
