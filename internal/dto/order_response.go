package dto

import "time"

type OrderItemDTO struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unitPrice"`
	Modifiers []string `json:"modifiers,omitempty"`
	Note      string   `json:"note,omitempty"`
}

type CustomerDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OrderResponse struct {
	TraceID            string         `json:"traceId"`
	OrderNumber        string         `json:"orderNumber"`
	RestaurantID       int            `json:"restaurantId"`
	Status             string         `json:"status"`
	Customer           CustomerDTO    `json:"customer"`
	Items              []OrderItemDTO `json:"items"`
	Note               string         `json:"note,omitempty"`
	TotalAmount        float64        `json:"totalAmount"`
	Tax                float64        `json:"tax"`
	Discount           float64        `json:"discount"`
	PrepTimeMinutes    *int           `json:"prepTimeMinutes,omitempty"`
	CancellationReason *string        `json:"cancellationReason,omitempty"`
	CancelledBy        *string        `json:"cancelledBy,omitempty"`
	RefundReason       *string        `json:"refundReason,omitempty"`
	RefundAmount       *float64       `json:"refundAmount,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	AcceptedAt         *time.Time     `json:"acceptedAt,omitempty"`
	ReadyAt            *time.Time     `json:"readyAt,omitempty"`
	DispatchedAt       *time.Time     `json:"dispatchedAt,omitempty"`
	DeliveredAt        *time.Time     `json:"deliveredAt,omitempty"`
	CancelledAt        *time.Time     `json:"cancelledAt,omitempty"`
	RefundedAt         *time.Time     `json:"refundedAt,omitempty"`
	Print              *PrintDTO      `json:"print,omitempty"`
	Timestamp          time.Time      `json:"timestamp"`
}

// PrintDTO reports the outcome of the receipt the transition triggered.
// Print failure is informational: the status change has already been
// committed by the time this is populated.
type PrintDTO struct {
	Kind    string `json:"kind"`
	Success bool   `json:"success"`
	Mock    bool   `json:"mock"`
	Error   string `json:"error,omitempty"`
}

type OrderListResponse struct {
	TraceID   string          `json:"traceId"`
	Orders    []OrderResponse `json:"orders"`
	Timestamp time.Time       `json:"timestamp"`
}

type ErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}
