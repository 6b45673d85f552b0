package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamTripCompute = "stream:trip:compute"
	StreamTripDone    = "stream:trip:done"
)

// TripComputeEvent - входящее событие на асинхронный расчёт поездки
type TripComputeEvent struct {
	RequestID          uuid.UUID `json:"request_id"`
	OriginAddress      string    `json:"origin_address"`
	DestinationAddress string    `json:"destination_address"`
	VehicleType        string    `json:"vehicle_type,omitempty"`
	Query              string    `json:"query,omitempty"`
}

// TripDoneEvent - результат расчёта
type TripDoneEvent struct {
	RequestID uuid.UUID    `json:"request_id"`
	Trip      *TripDetails `json:"trip,omitempty"`
	Error     string       `json:"error,omitempty"`
	ErrorCode string       `json:"error_code,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// Validate checks the fields a trip computation cannot start without.
func (e TripComputeEvent) Validate() error {
	if e.RequestID == uuid.Nil {
		return NewInvalidInput("request_id", "is required")
	}
	if strings.TrimSpace(e.OriginAddress) == "" {
		return NewInvalidInput("origin_address", "is required")
	}
	if strings.TrimSpace(e.DestinationAddress) == "" {
		return NewInvalidInput("destination_address", "is required")
	}
	return nil
}
