package services

import (
	"fmt"
	"log"
	"math"
	"time"

	"sabor-backend/entity"

	"github.com/google/uuid"
)

// CheckoutService turns the current cart into an immutable order record.
// The cart is snapshotted before any store I/O, so a mutation arriving
// while the submission is in flight cannot alter the order.
type CheckoutService struct {
	Carts     CartStore
	Orders    OrderStore
	Discounts DiscountStore
	Tables    *TableService
}

func NewCheckoutService(carts CartStore, orders OrderStore, discounts DiscountStore, tables *TableService) *CheckoutService {
	return &CheckoutService{Carts: carts, Orders: orders, Discounts: discounts, Tables: tables}
}

type CheckoutInput struct {
	PaymentMethod string
	DiscountCode  string
}

// ApplyDiscount computes subtotal × (1 − rate) exactly in centavos; the
// discount amount is rounded to the nearest centavo.
func ApplyDiscount(subtotal int64, rate float64) int64 {
	discount := int64(math.Round(float64(subtotal) * rate))
	return subtotal - discount
}

// Checkout validates, snapshots and submits. On success the cart scope is
// erased and the table released; on a store failure both are untouched so
// the user can retry without re-entering anything.
func (s *CheckoutService) Checkout(user *entity.User, table *entity.Table, in CheckoutInput) (*entity.Order, error) {
	cart, err := s.Carts.Load(ScopeKey{UserID: user.ID, TableID: table.ID})
	if err != nil {
		return nil, err
	}

	if cart.IsEmpty() || !validPayment(in.PaymentMethod) {
		return nil, ErrInvalidCheckout
	}

	rate := 0.0
	if in.DiscountCode != "" {
		r, ok, err := s.Discounts.FindRate(in.DiscountCode)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInvalidDiscountCode
		}
		rate = r
	}

	subtotal := cart.Subtotal()
	order := &entity.Order{
		OrderNo:       uuid.NewString(),
		Client:        user.Name,
		TableNumber:   table.TableNumber,
		PaymentMethod: in.PaymentMethod,
		State:         entity.OrderStatePreparing,
		Subtotal:      subtotal,
		DiscountRate:  rate,
		Total:         ApplyDiscount(subtotal, rate),
		PlacedAt:      time.Now(),
		UserID:        user.ID,
	}
	for i := range cart.Items {
		it := cart.Items[i]
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Qty:       it.Qty,
			Total:     it.Price * int64(it.Qty),
		})
	}

	if err := s.Orders.Create(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderSubmission, err)
	}

	// Post-commit cleanup. No transactional guarantee with the order
	// write: a crash here leaves the table occupied (known gap).
	scope := ScopeKey{UserID: user.ID, TableID: table.ID}
	if err := s.Carts.Delete(scope); err != nil {
		log.Printf("cart cleanup failed for %s: %v", scope, err)
	}
	if err := s.Tables.Release(table.ID); err != nil {
		log.Printf("table release failed for %d: %v", table.ID, err)
	}

	return order, nil
}

func validPayment(method string) bool {
	return method == entity.PaymentCash || method == entity.PaymentCard
}
