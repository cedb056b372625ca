package device

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrInvalidQubit    = errors.New("qubit index out of range")
	ErrInvalidRate     = errors.New("negative noise rate")
	ErrInvalidDuration = errors.New("negative gate duration")
	ErrUnsupportedGate = errors.New("gate not in device vocabulary")
	ErrNoSuchEdge      = errors.New("qubits not connected in the device")
	ErrSerialization   = errors.New("malformed device snapshot")
	ErrCorruptModel    = errors.New("device table violates model invariants")
	ErrUnknownDevice   = errors.New("unknown device identifier")
)

// DeviceError provides structured error information for device operations.
type DeviceError struct {
	Op     string // Operation that failed (e.g., "SetSingleQubitGateTime")
	Device string // Device identifier (if applicable)
	Gate   string // Gate name (for gate-time operations)
	Qubits []int  // Qubit indices involved
	Cause  error  // Underlying error
	Detail string // Additional context
}

// Error implements the error interface.
func (e *DeviceError) Error() string {
	msg := e.Op
	if e.Device != "" {
		msg = fmt.Sprintf("%s on %s", msg, e.Device)
	}
	if e.Gate != "" {
		msg = fmt.Sprintf("%s gate %s", msg, e.Gate)
	}
	if len(e.Qubits) > 0 {
		msg = fmt.Sprintf("%s qubits %v", msg, e.Qubits)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return fmt.Sprintf("%s: %v", msg, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *DeviceError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *DeviceError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// Convenience constructors for common error patterns

func invalidQubitError(op, device string, qubit, numberQubits int) error {
	return &DeviceError{
		Op:     op,
		Device: device,
		Qubits: []int{qubit},
		Cause:  ErrInvalidQubit,
		Detail: fmt.Sprintf("device has %d qubits", numberQubits),
	}
}

func unsupportedGateError(op, device, gate string) error {
	return &DeviceError{Op: op, Device: device, Gate: gate, Cause: ErrUnsupportedGate}
}

func noSuchEdgeError(op, device string, a, b int) error {
	return &DeviceError{Op: op, Device: device, Qubits: []int{a, b}, Cause: ErrNoSuchEdge}
}

func serializationError(op string, cause error) error {
	return &DeviceError{Op: op, Cause: ErrSerialization, Detail: cause.Error()}
}

// IsInvalidInput returns true if the error reports a caller mistake rather
// than a broken internal invariant.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidQubit) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrUnsupportedGate) ||
		errors.Is(err, ErrNoSuchEdge)
}
