package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "booking"}
		assert.Equal(t, "booking not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "booking"}
		err2 := &NotFoundError{Entity: "booking"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "booking"}
		err2 := &NotFoundError{Entity: "vehicle"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrBookingNotFound, ErrBookingNotFound))
		assert.False(t, errors.Is(ErrBookingNotFound, ErrSlotNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrBookingNotFound))
		assert.False(t, IsNotFound(ErrSlotNotBookable))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "vehicle", Context: "with this plate"}
		assert.Equal(t, "vehicle already exists with this plate", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "vehicle"}
		assert.Equal(t, "vehicle already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "visitor", Context: "with this CPF"}
		err2 := &AlreadyExistsError{Entity: "visitor", Context: "with this CPF"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrVehicleExists))
		assert.False(t, IsAlreadyExists(ErrVehicleNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "contact_email", Message: "invalid format"}
		assert.Equal(t, "validation error: contact_email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("reason", "is required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrBookingNotFound))
	})
}

func TestPolicyViolationError(t *testing.T) {
	t.Run("Error message with policy", func(t *testing.T) {
		err := &PolicyViolationError{Policy: "slot-capacity", Message: "slot is full"}
		assert.Equal(t, "policy violation (slot-capacity): slot is full", err.Error())
	})

	t.Run("Error message without policy", func(t *testing.T) {
		err := &PolicyViolationError{Message: "not allowed"}
		assert.Equal(t, "policy violation: not allowed", err.Error())
	})

	t.Run("errors.Is compares by policy", func(t *testing.T) {
		err := NewPolicyViolationError("slot-capacity", "different wording")
		assert.True(t, errors.Is(err, ErrSlotNotBookable))
		assert.False(t, errors.Is(err, ErrCancellationWindow))
	})

	t.Run("IsPolicyViolation helper", func(t *testing.T) {
		assert.True(t, IsPolicyViolation(ErrCancellationWindow))
		assert.True(t, IsPolicyViolation(ErrBookingAlreadyFinal))
		assert.True(t, IsPolicyViolation(ErrVisitorBlocked))
		assert.False(t, IsPolicyViolation(ErrBookingNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Scheduling policy errors", func(t *testing.T) {
		assert.Error(t, ErrSlotNotBookable)
		assert.Error(t, ErrBookingAlreadyFinal)
		assert.Error(t, ErrCancellationWindow)
	})

	t.Run("Business logic errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidStatus)
		assert.Error(t, ErrInvalidManagerAction)
		assert.Error(t, ErrInvalidDateFormat)
		assert.Error(t, ErrInvalidTimeSlot)
		assert.Error(t, ErrInvalidPriority)
	})
}
