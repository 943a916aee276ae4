package services

import (
	"fmt"
	"time"

	"sabor-backend/entity"
)

// ScopeKey isolates persisted cart state per session: one cart per
// authenticated user per selected table.
type ScopeKey struct {
	UserID  uint
	TableID uint
}

func (k ScopeKey) String() string {
	return fmt.Sprintf("cart:%d:%d", k.UserID, k.TableID)
}

// CartStore is the persistence bridge for the cart aggregate. Save is a
// full write-through mirror invoked after every mutation; Delete erases
// the scope on checkout or logout.
type CartStore interface {
	Load(scope ScopeKey) (*entity.Cart, error)
	Save(scope ScopeKey, cart *entity.Cart) error
	Delete(scope ScopeKey) error
}

type UserStore interface {
	FindByEmail(email string) (*entity.User, error)
	CountByEmail(email string) (int64, error)
	Create(user *entity.User) error
	FindByID(id uint) (*entity.User, error)
}

type DiscountStore interface {
	FindRate(code string) (float64, bool, error)
}

type OrderStore interface {
	Create(o *entity.Order) error
	List(f OrderFilters) ([]entity.Order, error)
}

type TableStore interface {
	List() ([]entity.Table, error)
	FindByID(id uint) (*entity.Table, error)
	SetOccupied(id uint, occupied bool) (bool, error)
	Create(t *entity.Table) error
	Delete(id uint) error
}

type ProductStore interface {
	ListAvailable() ([]entity.Product, error)
	ListAll() ([]entity.Product, error)
	FindByID(id uint) (*entity.Product, error)
	Create(p *entity.Product) error
	Update(id uint, updates map[string]any) error
	Delete(id uint) error
	GetImage(id uint) (*entity.Product, error)
}

// Publisher pushes fresh snapshots to live subscribers (websocket hub).
type Publisher interface {
	Publish(topic string, payload any)
}

// ---- order history filters ----

type SortField string

const (
	SortByDate  SortField = "date"
	SortByTotal SortField = "total"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// OrderFilters mirrors the history view's controls: a date window with
// optional time-of-day bounds, an exact client name, and sorting.
type OrderFilters struct {
	StartDate  string // 2006-01-02
	EndDate    string
	StartTime  string // 15:04, defaults 00:00 / 23:59
	EndTime    string
	ClientName string
	SortBy     SortField
	SortOrder  SortDirection
}

func (f OrderFilters) StartBound() (time.Time, bool) {
	if f.StartDate == "" {
		return time.Time{}, false
	}
	t := f.StartTime
	if t == "" {
		t = "00:00"
	}
	ts, err := time.ParseInLocation("2006-01-02 15:04", f.StartDate+" "+t, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (f OrderFilters) EndBound() (time.Time, bool) {
	if f.EndDate == "" {
		return time.Time{}, false
	}
	t := f.EndTime
	if t == "" {
		t = "23:59"
	}
	ts, err := time.ParseInLocation("2006-01-02 15:04", f.EndDate+" "+t, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts.Add(59 * time.Second), true
}
