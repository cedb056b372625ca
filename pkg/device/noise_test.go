package device

import (
	"errors"
	"reflect"
	"testing"
)

// TestAddDamping tests the damping contribution lands on the diagonal
func TestAddDamping(t *testing.T) {
	lucy := NewOQCLucyDevice()
	if err := lucy.AddDamping(0, 0.5); err != nil {
		t.Fatalf("AddDamping failed: %v", err)
	}
	rates := lucy.QubitDecoherenceRates()
	if rates[0][0] != 0.5 {
		t.Errorf("Expected rate 0.5, got %v", rates[0][0])
	}
	if rates[1][1] != 0 {
		t.Errorf("Expected untouched qubit to stay zero, got %v", rates[1][1])
	}
}

// TestAddDamping_Additive tests repeated calls accumulate like a single call
func TestAddDamping_Additive(t *testing.T) {
	split := NewOQCLucyDevice()
	combined := NewOQCLucyDevice()

	if err := split.AddDamping(3, 0.2); err != nil {
		t.Fatalf("AddDamping failed: %v", err)
	}
	if err := split.AddDamping(3, 0.3); err != nil {
		t.Fatalf("AddDamping failed: %v", err)
	}
	if err := combined.AddDamping(3, 0.5); err != nil {
		t.Fatalf("AddDamping failed: %v", err)
	}

	if !reflect.DeepEqual(split.QubitDecoherenceRates(), combined.QubitDecoherenceRates()) {
		t.Error("Split and combined damping produced different matrices")
	}
}

// TestAddDampingAndDephasing_Independent tests both contributions combine on the diagonal
func TestAddDampingAndDephasing_Independent(t *testing.T) {
	lucy := NewOQCLucyDevice()
	if err := lucy.AddDamping(2, 0.4); err != nil {
		t.Fatalf("AddDamping failed: %v", err)
	}
	if err := lucy.AddDephasing(2, 0.1); err != nil {
		t.Fatalf("AddDephasing failed: %v", err)
	}
	if got := lucy.QubitDecoherenceRates()[2][2]; got != 0.5 {
		t.Errorf("Expected combined rate 0.5, got %v", got)
	}

	// Reversed call order on a fresh device gives the same matrix
	reversed := NewOQCLucyDevice()
	reversed.AddDephasing(2, 0.1)
	reversed.AddDamping(2, 0.4)
	if !reflect.DeepEqual(lucy.QubitDecoherenceRates(), reversed.QubitDecoherenceRates()) {
		t.Error("Call order changed the decoherence matrix")
	}
}

// TestAddDamping_Errors tests error kinds and that failures leave no trace
func TestAddDamping_Errors(t *testing.T) {
	lucy := NewOQCLucyDevice()
	before := lucy.QubitDecoherenceRates()

	err := lucy.AddDamping(8, 0.1)
	if !errors.Is(err, ErrInvalidQubit) {
		t.Errorf("Expected ErrInvalidQubit, got %v", err)
	}

	err = lucy.AddDamping(0, -1.0)
	if !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Expected ErrInvalidRate, got %v", err)
	}

	err = lucy.AddDephasing(-1, 0.1)
	if !errors.Is(err, ErrInvalidQubit) {
		t.Errorf("Expected ErrInvalidQubit, got %v", err)
	}

	if !reflect.DeepEqual(before, lucy.QubitDecoherenceRates()) {
		t.Error("Failed calls mutated the decoherence matrix")
	}
}

// TestSetSingleQubitGateTime tests overwrite semantics and exact readback
func TestSetSingleQubitGateTime(t *testing.T) {
	harmony := NewIonQHarmonyDevice()

	if err := harmony.SetSingleQubitGateTime("RotateZ", 0, 0.5); err != nil {
		t.Fatalf("SetSingleQubitGateTime failed: %v", err)
	}
	if got, ok := harmony.SingleQubitGateTime("RotateZ", 0); !ok || got != 0.5 {
		t.Errorf("Expected 0.5, got (%v, %v)", got, ok)
	}

	// Overwrites, does not accumulate
	if err := harmony.SetSingleQubitGateTime("RotateZ", 0, 0.2); err != nil {
		t.Fatalf("SetSingleQubitGateTime failed: %v", err)
	}
	if got, _ := harmony.SingleQubitGateTime("RotateZ", 0); got != 0.2 {
		t.Errorf("Expected overwrite to 0.2, got %v", got)
	}

	// Other qubits keep their default
	if got, _ := harmony.SingleQubitGateTime("RotateZ", 1); got != 1.0 {
		t.Errorf("Expected untouched default 1.0, got %v", got)
	}
}

// TestSetSingleQubitGateTime_Errors tests the full error taxonomy
func TestSetSingleQubitGateTime_Errors(t *testing.T) {
	harmony := NewIonQHarmonyDevice()

	if err := harmony.SetSingleQubitGateTime("PauliZ", 0, 0.5); !errors.Is(err, ErrUnsupportedGate) {
		t.Errorf("Expected ErrUnsupportedGate, got %v", err)
	}
	if err := harmony.SetSingleQubitGateTime("RotateZ", 34, 0.5); !errors.Is(err, ErrInvalidQubit) {
		t.Errorf("Expected ErrInvalidQubit, got %v", err)
	}
	if err := harmony.SetSingleQubitGateTime("RotateZ", 0, -0.5); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Expected ErrInvalidDuration, got %v", err)
	}
}

// TestSetTwoQubitGateTime tests edge-gated overwrite semantics
func TestSetTwoQubitGateTime(t *testing.T) {
	harmony := NewIonQHarmonyDevice()

	if err := harmony.SetTwoQubitGateTime("MolmerSorensenXX", 0, 1, 0.5); err != nil {
		t.Fatalf("SetTwoQubitGateTime failed: %v", err)
	}
	if got, ok := harmony.TwoQubitGateTime("MolmerSorensenXX", 0, 1); !ok || got != 0.5 {
		t.Errorf("Expected 0.5, got (%v, %v)", got, ok)
	}
	// Unordered pair: the reversed lookup sees the same entry
	if got, _ := harmony.TwoQubitGateTime("MolmerSorensenXX", 1, 0); got != 0.5 {
		t.Errorf("Expected symmetric readback 0.5, got %v", got)
	}

	if err := harmony.SetTwoQubitGateTime("MolmerSorensenXX", 0, 1, 0.2); err != nil {
		t.Fatalf("SetTwoQubitGateTime failed: %v", err)
	}
	if got, _ := harmony.TwoQubitGateTime("MolmerSorensenXX", 0, 1); got != 0.2 {
		t.Errorf("Expected overwrite to 0.2, got %v", got)
	}
}

// TestSetTwoQubitGateTime_Errors tests the full error taxonomy
func TestSetTwoQubitGateTime_Errors(t *testing.T) {
	aspen := NewRigettiAspenM3Device()

	if err := aspen.SetTwoQubitGateTime("MolmerSorensenXX", 0, 1, 0.5); !errors.Is(err, ErrUnsupportedGate) {
		t.Errorf("Expected ErrUnsupportedGate, got %v", err)
	}
	if err := aspen.SetTwoQubitGateTime("XY", 0, 99, 0.5); !errors.Is(err, ErrInvalidQubit) {
		t.Errorf("Expected ErrInvalidQubit, got %v", err)
	}
	// Qubits 0 and 9 sit in different octagons with no coupler
	if err := aspen.SetTwoQubitGateTime("XY", 0, 9, 0.5); !errors.Is(err, ErrNoSuchEdge) {
		t.Errorf("Expected ErrNoSuchEdge, got %v", err)
	}
	if err := aspen.SetTwoQubitGateTime("XY", 0, 1, -0.5); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Expected ErrInvalidDuration, got %v", err)
	}

	// Lucy has edges but an empty two-qubit vocabulary
	lucy := NewOQCLucyDevice()
	if err := lucy.SetTwoQubitGateTime("MolmerSorensenXX", 0, 1, 0.5); !errors.Is(err, ErrUnsupportedGate) {
		t.Errorf("Expected ErrUnsupportedGate on Lucy, got %v", err)
	}
}

// TestErrorClassification tests the IsInvalidInput helper
func TestErrorClassification(t *testing.T) {
	lucy := NewOQCLucyDevice()
	err := lucy.AddDamping(99, 0.1)
	if !IsInvalidInput(err) {
		t.Errorf("Expected caller-input classification, got %v", err)
	}

	var devErr *DeviceError
	if !errors.As(err, &devErr) {
		t.Fatalf("Expected *DeviceError, got %T", err)
	}
	if devErr.Op != "AddDamping" {
		t.Errorf("Expected op AddDamping, got %s", devErr.Op)
	}
}
