package entity

import (
	"gorm.io/gorm"
)

// Cart is the per-session aggregate of selected dishes. One cart per
// (user, table) pair; a session that switches tables gets its own cart.
type Cart struct {
	gorm.Model
	UserID  uint  `gorm:"uniqueIndex:idx_cart_scope" json:"userId"`
	User    User  `json:"-"`
	TableID uint  `gorm:"uniqueIndex:idx_cart_scope" json:"tableId"`
	Table   Table `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// line returns the line for productID, or nil. Lines are keyed strictly
// by product id: at most one line per product.
func (c *Cart) line(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Add merges a product into the cart: +1 on an existing line, or a new
// line with qty 1 appended at the end. Insertion order is kept.
func (c *Cart) Add(p *Product) {
	if it := c.line(p.ID); it != nil {
		it.Qty++
		return
	}
	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Qty:       1,
		Position:  len(c.Items),
	})
}

// Increase bumps the line's qty by one. Absent line is a silent no-op.
func (c *Cart) Increase(productID uint) bool {
	it := c.line(productID)
	if it == nil {
		return false
	}
	it.Qty++
	return true
}

// Decrease lowers the line's qty by one and drops the line when the qty
// would reach zero. The cart never holds a zero or negative qty line.
func (c *Cart) Decrease(productID uint) bool {
	it := c.line(productID)
	if it == nil {
		return false
	}
	if it.Qty <= 1 {
		return c.RemoveLine(productID)
	}
	it.Qty--
	return true
}

// RemoveLine drops the line regardless of its quantity.
func (c *Cart) RemoveLine(productID uint) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			for j := range c.Items {
				c.Items[j].Position = j
			}
			return true
		}
	}
	return false
}

func (c *Cart) ClearLines() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal is the exact sum of price × qty over all lines, in centavos.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for i := range c.Items {
		sum += c.Items[i].Price * int64(c.Items[i].Qty)
	}
	return sum
}
