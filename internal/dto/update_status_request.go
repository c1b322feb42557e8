package dto

type UpdateStatusRequest struct {
	Status          string   `json:"status"`
	Actor           string   `json:"actor"`
	Reason          string   `json:"reason,omitempty"`
	PrepTimeMinutes *int     `json:"prepTimeMinutes,omitempty"`
	RefundAmount    *float64 `json:"refundAmount,omitempty"`
}

type UpdatePrepTimeRequest struct {
	PrepTimeMinutes int `json:"prepTimeMinutes"`
}
