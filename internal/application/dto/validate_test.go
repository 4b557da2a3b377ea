package dto

import (
	"errors"
	"math"
	"testing"

	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_OK(t *testing.T) {
	req := CreatePatientRequest{FirstName: "Maria", LastName: "Silva", DateOfBirth: "1990-04-12", Gender: "F"}
	assert.NoError(t, Validate(req))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	req := CreatePatientRequest{FirstName: "Maria", DateOfBirth: "12/04/1990", Gender: "X"}
	err := Validate(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "last_name")
	assert.Contains(t, err.Error(), "date_of_birth")
	assert.Contains(t, err.Error(), "gender")
}

func TestValidate_PartialUpdateSkipsNil(t *testing.T) {
	assert.NoError(t, Validate(UpdateInventoryItemRequest{}))

	bad := "teleporter"
	assert.Error(t, Validate(UpdateInventoryItemRequest{Category: &bad}))
}

func TestValidate_ScheduleTimes(t *testing.T) {
	req := CreateStaffScheduleRequest{UserID: "u1", Date: "2026-10-19", StartTime: "08:00", EndTime: "25:00"}
	assert.Error(t, Validate(req))

	req.EndTime = "16:00"
	assert.NoError(t, Validate(req))
}

func TestValidate_MovementQuantityBounds(t *testing.T) {
	req := RecordMovementRequest{ItemID: "i1", Type: "in", Quantity: math.MaxInt32}
	assert.NoError(t, Validate(req))

	req.Quantity = math.MaxInt32 + 1
	assert.True(t, errors.Is(Validate(req), domain.ErrInvalidInput))

	req.Quantity = math.MinInt
	assert.Error(t, Validate(req))
}

func TestPageRequest_DefaultPage(t *testing.T) {
	p := PageRequest{}
	p.DefaultPage()
	assert.Equal(t, DefaultLimit, p.Limit)

	p = PageRequest{Limit: 500, Offset: -3}
	p.DefaultPage()
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}
