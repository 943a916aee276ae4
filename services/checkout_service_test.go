package services

import (
	"errors"
	"testing"

	"sabor-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutFixture(t *testing.T) (*CheckoutService, *memCartStore, *fakeOrders, *fakeTables, *entity.User, *entity.Table) {
	t.Helper()

	user := &entity.User{Name: "Berny", Role: "client"}
	user.ID = 7

	table := &entity.Table{TableNumber: 4, Occupied: true}
	table.ID = 4

	carts := newMemCartStore()
	orders := &fakeOrders{}
	tables := newFakeTables(table)
	discounts := &fakeDiscounts{rates: map[string]float64{"EMMETT": 0.1}}

	svc := NewCheckoutService(carts, orders, discounts, NewTableService(tables, nil))
	return svc, carts, orders, tables, user, table
}

func fillCart(t *testing.T, carts *memCartStore, scope ScopeKey) {
	t.Helper()
	cart, err := carts.Load(scope)
	require.NoError(t, err)
	cart.Add(testProduct(1, "Tacos", 5000))
	cart.Increase(1)
	cart.Add(testProduct(2, "Enchiladas", 6000))
	require.NoError(t, carts.Save(scope, cart))
}

func TestCheckout_EmptyCartNeverReachesStore(t *testing.T) {
	svc, _, orders, _, user, table := checkoutFixture(t)

	_, err := svc.Checkout(user, table, CheckoutInput{PaymentMethod: entity.PaymentCash})

	assert.ErrorIs(t, err, ErrInvalidCheckout)
	assert.Empty(t, orders.created)
}

func TestCheckout_MissingPaymentMethod(t *testing.T) {
	svc, carts, orders, _, user, table := checkoutFixture(t)
	fillCart(t, carts, ScopeKey{UserID: user.ID, TableID: table.ID})

	_, err := svc.Checkout(user, table, CheckoutInput{PaymentMethod: ""})

	assert.ErrorIs(t, err, ErrInvalidCheckout)
	assert.Empty(t, orders.created)
}

func TestCheckout_InvalidDiscountCodeBlocksSubmission(t *testing.T) {
	svc, carts, orders, _, user, table := checkoutFixture(t)
	fillCart(t, carts, ScopeKey{UserID: user.ID, TableID: table.ID})

	_, err := svc.Checkout(user, table, CheckoutInput{
		PaymentMethod: entity.PaymentCard,
		DiscountCode:  "emmett", // wrong case
	})

	assert.ErrorIs(t, err, ErrInvalidDiscountCode)
	assert.Empty(t, orders.created)
}

func TestCheckout_SuccessBuildsImmutableRecord(t *testing.T) {
	svc, carts, orders, _, user, table := checkoutFixture(t)
	scope := ScopeKey{UserID: user.ID, TableID: table.ID}
	fillCart(t, carts, scope)

	order, err := svc.Checkout(user, table, CheckoutInput{
		PaymentMethod: entity.PaymentCash,
		DiscountCode:  "EMMETT",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderNo)
	assert.Equal(t, "Berny", order.Client)
	assert.Equal(t, 4, order.TableNumber)
	assert.Equal(t, entity.PaymentCash, order.PaymentMethod)
	assert.Equal(t, entity.OrderStatePreparing, order.State)
	assert.Equal(t, int64(16000), order.Subtotal)
	assert.Equal(t, 0.1, order.DiscountRate)
	assert.Equal(t, int64(14400), order.Total)
	assert.False(t, order.PlacedAt.IsZero())

	require.Len(t, order.Items, 2)
	assert.Equal(t, uint(1), order.Items[0].ProductID)
	assert.Equal(t, "Tacos", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Qty)
	assert.Equal(t, int64(10000), order.Items[0].Total)
	assert.Equal(t, uint(2), order.Items[1].ProductID)
	assert.Equal(t, "Enchiladas", order.Items[1].Name)
	assert.Equal(t, 1, order.Items[1].Qty)

	require.Len(t, orders.created, 1)
}

func TestCheckout_SuccessClearsCartAndReleasesTable(t *testing.T) {
	svc, carts, _, tables, user, table := checkoutFixture(t)
	scope := ScopeKey{UserID: user.ID, TableID: table.ID}
	fillCart(t, carts, scope)

	_, err := svc.Checkout(user, table, CheckoutInput{PaymentMethod: entity.PaymentCard})
	require.NoError(t, err)

	cart, err := carts.Load(scope)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	released, err := tables.FindByID(table.ID)
	require.NoError(t, err)
	assert.False(t, released.Occupied)
}

func TestCheckout_RejectedSubmissionPreservesCartAndTable(t *testing.T) {
	svc, carts, orders, tables, user, table := checkoutFixture(t)
	scope := ScopeKey{UserID: user.ID, TableID: table.ID}
	fillCart(t, carts, scope)

	orders.createErr = errors.New("backend unavailable")

	_, err := svc.Checkout(user, table, CheckoutInput{PaymentMethod: entity.PaymentCash})
	assert.ErrorIs(t, err, ErrOrderSubmission)

	// cart unchanged, user can retry without re-entering items
	cart, loadErr := carts.Load(scope)
	require.NoError(t, loadErr)
	assert.Len(t, cart.Items, 2)

	still, findErr := tables.FindByID(table.ID)
	require.NoError(t, findErr)
	assert.True(t, still.Occupied)

	// retry succeeds once the store recovers
	orders.createErr = nil
	_, err = svc.Checkout(user, table, CheckoutInput{PaymentMethod: entity.PaymentCash})
	require.NoError(t, err)
	require.Len(t, orders.created, 1)
}

func TestCheckout_SubmissionUsesSnapshotNotLiveCart(t *testing.T) {
	svc, carts, orders, _, user, table := checkoutFixture(t)
	scope := ScopeKey{UserID: user.ID, TableID: table.ID}
	fillCart(t, carts, scope)

	order, err := svc.Checkout(user, table, CheckoutInput{PaymentMethod: entity.PaymentCash})
	require.NoError(t, err)

	// mutating what is left of the session cannot touch the record
	cart, _ := carts.Load(scope)
	cart.Add(testProduct(3, "Pozole", 7000))

	assert.Equal(t, int64(16000), order.Subtotal)
	require.Len(t, orders.created, 1)
	assert.Len(t, orders.created[0].Items, 2)
}
