package device

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDeviceInvariants uses property-based testing to verify model invariants
// These properties should ALWAYS hold true for any valid device mutation
func TestDeviceInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20 // Reduced from 100 for reasonable test time

	properties := gopter.NewProperties(parameters)

	// Property 1: damping accumulates additively on the diagonal
	properties.Property("damping accumulates additively", prop.ForAll(
		func(qubit int, r1, r2 float64) bool {
			dev := NewOQCLucyDevice()
			if err := dev.AddDamping(qubit, r1); err != nil {
				return true // Out-of-range inputs are rejected, nothing to check
			}
			if err := dev.AddDamping(qubit, r2); err != nil {
				return true
			}
			return dev.QubitDecoherenceRates()[qubit][qubit] == r1+r2
		},
		gen.IntRange(0, 7),
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 1e6),
	))

	// Property 2: a stored gate time reads back exactly
	properties.Property("set then get returns the exact duration", prop.ForAll(
		func(qubit int, duration float64) bool {
			dev := NewIonQHarmonyDevice()
			if err := dev.SetSingleQubitGateTime("RotateZ", qubit, duration); err != nil {
				return true
			}
			got, ok := dev.SingleQubitGateTime("RotateZ", qubit)
			return ok && got == duration
		},
		gen.IntRange(0, 10),
		gen.Float64Range(0, 1e9),
	))

	// Property 3: rejected mutations never change the decoherence matrix
	properties.Property("failed noise calls leave no trace", prop.ForAll(
		func(qubit int, rate float64) bool {
			dev := NewOQCLucyDevice()
			before := dev.QubitDecoherenceRates()
			err := dev.AddDephasing(qubit, rate)
			after := dev.QubitDecoherenceRates()
			if err != nil {
				for i := range before {
					for j := range before[i] {
						if before[i][j] != after[i][j] {
							return false
						}
					}
				}
				return true
			}
			return qubit >= 0 && qubit < 8 && rate >= 0
		},
		gen.IntRange(-5, 15),
		gen.Float64Range(-10, 10),
	))

	// Property 4: JSON round trips preserve structural equality
	properties.Property("json round trip preserves equality", prop.ForAll(
		func(qubit int, damping, dephasing, duration float64) bool {
			dev := NewIonQAria1Device()
			if err := dev.AddDamping(qubit, damping); err != nil {
				return true
			}
			if err := dev.AddDephasing(qubit, dephasing); err != nil {
				return true
			}
			if err := dev.SetSingleQubitGateTime("GPi", qubit, duration); err != nil {
				return true
			}

			data, err := EncodeDeviceJSON(dev)
			if err != nil {
				return false
			}
			restored, err := DecodeDeviceJSON(data)
			if err != nil {
				return false
			}
			return Equal(dev, restored)
		},
		gen.IntRange(0, 24),
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 100),
	))

	// Property 5: two-qubit lookups report times exactly on ring edges
	properties.Property("gate times exist exactly on edges", prop.ForAll(
		func(a, b int) bool {
			dev := newDeviceModel("ring-8", "local", 8, nil, []string{"XY"}, nil, ringEdges(8))
			// Ring adjacency: neighbors differ by 1 mod 8
			diff := (a - b + 8) % 8
			adjacent := diff == 1 || diff == 7
			_, ok := dev.TwoQubitGateTime("XY", a, b)
			return ok == adjacent
		},
		gen.IntRange(0, 7),
		gen.IntRange(0, 7),
	))

	properties.TestingRun(t)
}
