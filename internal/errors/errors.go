package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this plate"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PolicyViolationError represents a business-policy rejection: the request is
// well-formed and the entity exists, but the operation is not allowed in the
// entity's current state (full slot, terminal booking, closed window).
type PolicyViolationError struct {
	Policy  string
	Message string
}

func (e *PolicyViolationError) Error() string {
	if e.Policy != "" {
		return fmt.Sprintf("policy violation (%s): %s", e.Policy, e.Message)
	}
	return fmt.Sprintf("policy violation: %s", e.Message)
}

// Is enables errors.Is() comparison for PolicyViolationError
func (e *PolicyViolationError) Is(target error) bool {
	t, ok := target.(*PolicyViolationError)
	if !ok {
		return false
	}
	return e.Policy == t.Policy
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrSlotNotFound               = &NotFoundError{Entity: "schedule slot"}
	ErrBookingNotFound            = &NotFoundError{Entity: "booking"}
	ErrVehicleNotFound            = &NotFoundError{Entity: "vehicle"}
	ErrEmployeeNotFound           = &NotFoundError{Entity: "employee"}
	ErrVisitorNotFound            = &NotFoundError{Entity: "visitor"}
	ErrMaintenanceRequestNotFound = &NotFoundError{Entity: "maintenance request"}
)

// Already Exists Errors
var (
	ErrSlotExists     = &AlreadyExistsError{Entity: "schedule slot", Context: "for this date and time"}
	ErrVehicleExists  = &AlreadyExistsError{Entity: "vehicle", Context: "with this plate"}
	ErrEmployeeExists = &AlreadyExistsError{Entity: "employee", Context: "with this CPF"}
	ErrVisitorExists  = &AlreadyExistsError{Entity: "visitor", Context: "with this CPF"}
)

// Scheduling Policy Errors
var (
	ErrSlotNotBookable         = &PolicyViolationError{Policy: "slot-capacity", Message: "slot is blocked or fully booked"}
	ErrBookingAlreadyFinal     = &PolicyViolationError{Policy: "booking-lifecycle", Message: "booking is already completed or cancelled"}
	ErrCancellationWindow      = &PolicyViolationError{Policy: "cancellation-window", Message: "bookings can only be cancelled at least 3 hours before the slot starts"}
	ErrVisitorBlocked          = &PolicyViolationError{Policy: "access-control", Message: "visitor is blocked and cannot check in"}
	ErrMaintenanceAlreadyFinal = &PolicyViolationError{Policy: "maintenance-lifecycle", Message: "maintenance request is already resolved or cancelled"}
)

// Business Logic Errors
var (
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidManagerAction = errors.New("invalid manager action")
	ErrInvalidDateFormat    = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidTimeSlot      = errors.New("invalid time slot, expected HH:MM")
	ErrInvalidPriority      = errors.New("invalid priority")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPolicyViolation checks if an error is a PolicyViolationError
func IsPolicyViolation(err error) bool {
	var policyErr *PolicyViolationError
	return errors.As(err, &policyErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPolicyViolationError creates a new PolicyViolationError
func NewPolicyViolationError(policy, message string) error {
	return &PolicyViolationError{Policy: policy, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
