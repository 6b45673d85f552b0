package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTripComputeEvent_Validate(t *testing.T) {
	tests := []struct {
		name      string
		event     TripComputeEvent
		wantField string
	}{
		{
			name: "complete event",
			event: TripComputeEvent{
				RequestID:          uuid.New(),
				OriginAddress:      "Divisoria, CDO",
				DestinationAddress: "Gingoog City",
			},
		},
		{
			name: "missing request id",
			event: TripComputeEvent{
				OriginAddress:      "Divisoria, CDO",
				DestinationAddress: "Gingoog City",
			},
			wantField: "request_id",
		},
		{
			name: "blank origin",
			event: TripComputeEvent{
				RequestID:          uuid.New(),
				OriginAddress:      "   ",
				DestinationAddress: "Gingoog City",
			},
			wantField: "origin_address",
		},
		{
			name: "missing destination",
			event: TripComputeEvent{
				RequestID:     uuid.New(),
				OriginAddress: "Divisoria, CDO",
			},
			wantField: "destination_address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var invalid *InvalidInputError
			if assert.True(t, errors.As(err, &invalid)) {
				assert.Equal(t, tt.wantField, invalid.Field)
			}
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestParseVehicleType(t *testing.T) {
	tests := []struct {
		input string
		want  VehicleType
		ok    bool
	}{
		{"jeepney", VehicleJeepney, true},
		{" JEEPNEY ", VehicleJeepney, true},
		{"Private Car", VehiclePrivateCar, true},
		{"private-car", VehiclePrivateCar, true},
		{"car", VehiclePrivateCar, true},
		{"Bus", VehicleBus, true},
		{"tricycle", VehicleType("tricycle"), false},
		{"", VehicleType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVehicleType(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestPlacesQuery_Clamped(t *testing.T) {
	q := PlacesQuery{RadiusM: 500000, Limit: 0}.Clamped()
	assert.Equal(t, MaxPlacesRadius, q.RadiusM)
	assert.Equal(t, MinPlacesLimit, q.Limit)

	q = PlacesQuery{RadiusM: -3, Limit: 80}.Clamped()
	assert.Equal(t, MinPlacesRadius, q.RadiusM)
	assert.Equal(t, MaxPlacesLimit, q.Limit)

	q = PlacesQuery{RadiusM: 1500, Limit: 5}.Clamped()
	assert.Equal(t, 1500, q.RadiusM)
	assert.Equal(t, 5, q.Limit)
}
