package dto

import "time"

type PrinterStatusResponse struct {
	TraceID   string    `json:"traceId"`
	Mode      string    `json:"mode"`
	Code      int       `json:"code"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type PrintTestResponse struct {
	TraceID   string    `json:"traceId"`
	Success   bool      `json:"success"`
	Mock      bool      `json:"mock"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PrintJobLogResponse replays the last print session for diagnostics: its
// terminal state plus the instructions it emitted, in execution order.
type PrintJobLogResponse struct {
	TraceID      string               `json:"traceId"`
	State        string               `json:"state"`
	Instructions []PrintInstructionDTO `json:"instructions"`
	Timestamp    time.Time            `json:"timestamp"`
}

type PrintInstructionDTO struct {
	Command string `json:"command"`
	Text    string `json:"text,omitempty"`
	Lines   int    `json:"lines,omitempty"`
	Payload string `json:"payload,omitempty"`
}
