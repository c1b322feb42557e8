package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tillroll/internal/dto"
	"tillroll/internal/printer"
)

type PrintRunner interface {
	TestPage(ctx context.Context) printer.Result
	LastSession() *printer.Session
}

type DeviceStatusReader interface {
	Read(ctx context.Context) (printer.DeviceStatus, error)
}

type CapabilityDetector interface {
	Detect() printer.Capability
}

// PrinterController exposes the device diagnostics: live status, a test
// print, and the last session's instruction log.
type PrinterController struct {
	runner   PrintRunner
	reader   DeviceStatusReader
	detector CapabilityDetector
	logger   *zap.Logger
}

func NewPrinterController(runner PrintRunner, reader DeviceStatusReader, detector CapabilityDetector, logger *zap.Logger) *PrinterController {
	return &PrinterController{
		runner:   runner,
		reader:   reader,
		detector: detector,
		logger:   logger,
	}
}

func (c *PrinterController) Status(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	capability := c.detector.Detect()

	status, err := c.reader.Read(r.Context())
	if err != nil {
		logger.Warn("device status read failed", zap.Error(err))
	}

	c.writeJSON(w, http.StatusOK, dto.PrinterStatusResponse{
		TraceID:   traceID,
		Mode:      capability.Mode.String(),
		Code:      int(status),
		Status:    status.String(),
		Message:   printer.Describe(status),
		Timestamp: time.Now().UTC(),
	})
}

func (c *PrinterController) TestPrint(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	result := c.runner.TestPage(r.Context())

	response := dto.PrintTestResponse{
		TraceID:   traceID,
		Success:   result.Success,
		Mock:      result.Mock,
		Timestamp: time.Now().UTC(),
	}
	if result.Err != nil {
		response.Error = result.Err.Error()
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusServiceUnavailable
	}
	c.writeJSON(w, status, response)
}

func (c *PrinterController) LastJob(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	session := c.runner.LastSession()
	if session == nil {
		c.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
			TraceID:   traceID,
			Status:    http.StatusNotFound,
			Message:   "no print job has run yet",
			Code:      "NOT_FOUND",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	log := session.Log()
	instructions := make([]dto.PrintInstructionDTO, len(log))
	for i, in := range log {
		instructions[i] = dto.PrintInstructionDTO{
			Command: in.Op.String(),
			Text:    in.Text,
			Lines:   in.Lines,
			Payload: in.Payload,
		}
	}

	c.writeJSON(w, http.StatusOK, dto.PrintJobLogResponse{
		TraceID:      traceID,
		State:        session.State().String(),
		Instructions: instructions,
		Timestamp:    time.Now().UTC(),
	})
}

func (c *PrinterController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
