package domain

import "time"

// Customer is the snapshot captured at order creation. It is never mutated
// afterwards.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItem is one line of an order. Modifiers and the preparation note are
// per-item; the order-level note lives on Order.
type OrderItem struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unitPrice"`
	Modifiers []string `json:"modifiers,omitempty"`
	Note      string   `json:"note,omitempty"`
}

func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type Order struct {
	ID           uint
	RestaurantID int
	OrderNumber  string
	Status       Status
	Customer     Customer
	Items        []OrderItem

	// Note is the order-level special instruction, distinct from the
	// per-item preparation notes.
	Note string

	Tax      float64
	Discount float64

	PrepTimeMinutes    *int
	CancellationReason *string
	CancelledBy        *string
	RefundReason       *string
	RefundAmount       *float64

	CreatedAt    time.Time
	AcceptedAt   *time.Time
	ReadyAt      *time.Time
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	RefundedAt   *time.Time
	UpdatedAt    time.Time
}

// TotalAmount is always the sum of line totals. Discounts are carried as a
// delta next to it, never folded in.
func (o Order) TotalAmount() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.LineTotal()
	}
	return total
}

// TotalDue is what the customer pays: line totals plus tax minus discount.
func (o Order) TotalDue() float64 {
	return o.TotalAmount() + o.Tax - o.Discount
}
