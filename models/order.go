package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	OrderTypeDineIn   = "dine_in"
	OrderTypeTakeAway = "take_away"

	PaymentCash = "cash"
	PaymentBCA  = "bca"
)

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	OrderType     string          `gorm:"type:varchar(20);not null" json:"order_type"`
	PaymentMethod string          `gorm:"type:varchar(20);not null" json:"payment_method"`
	AdminFee      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"admin_fee"`
	Items         []OrderItem     `json:"items"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// AddItem appends a line for the given menu item, snapshotting its current
// price into PriceAtOrder, and recomputes the order total.
func (o *Order) AddItem(item MenuItem, quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Message: fmt.Sprintf("quantity must be positive, got %d", quantity)}
	}

	o.Items = append(o.Items, OrderItem{
		MenuItemID:   item.ID,
		MenuItem:     item,
		Quantity:     quantity,
		PriceAtOrder: item.Price,
	})
	o.CalculateTotal()
	return nil
}

// CalculateTotal sets Total to the exact decimal sum of every line's
// price_at_order * quantity. Must run after any change to Items; Total is
// never taken from client input.
func (o *Order) CalculateTotal() {
	total := decimal.Zero
	for _, line := range o.Items {
		total = total.Add(line.PriceAtOrder.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	o.Total = total
	o.UpdatedAt = time.Now()
}

// SetStatus validates the new status and applies it. Any status can follow
// any other; there is no transition table.
func (o *Order) SetStatus(status string) error {
	if !ValidStatus(status) {
		return &ValidationError{Message: fmt.Sprintf("invalid status %q, must be one of pending, completed, cancelled", status)}
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func ValidOrderType(orderType string) bool {
	return orderType == OrderTypeDineIn || orderType == OrderTypeTakeAway
}

func ValidPaymentMethod(method string) bool {
	return method == PaymentCash || method == PaymentBCA
}
