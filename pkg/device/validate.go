package device

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// validateSnapshot rejects snapshots that are schema-mismatched or that would
// violate the model invariants: out-of-range qubit indices, self-loop edges,
// negative durations or rates, wrong-sized noise tables.
func validateSnapshot(s *deviceSnapshot) error {
	const op = "validateSnapshot"

	if err := validate.Struct(s); err != nil {
		return serializationError(op, err)
	}
	if s.SchemaVersion != snapshotSchemaVersion {
		return serializationError(op, fmt.Errorf("unsupported schema version %d", s.SchemaVersion))
	}

	n := s.NumberQubits
	singleVocab := toSet(s.SingleQubitGateNames)
	twoVocab := toSet(s.TwoQubitGateNames)
	multiVocab := toSet(s.MultiQubitGateNames)

	edgeSet := make(map[edgeKey]struct{}, len(s.Edges))
	for _, e := range s.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return serializationError(op, fmt.Errorf("edge %v out of range for %d qubits", e, n))
		}
		if e[0] == e[1] {
			return serializationError(op, fmt.Errorf("edge %v is a self loop", e))
		}
		edgeSet[newEdgeKey(e[0], e[1])] = struct{}{}
	}

	for _, e := range s.SingleQubitGateTimes {
		if e.Qubit >= n {
			return serializationError(op, fmt.Errorf("single-qubit entry %s/%d out of range for %d qubits", e.Gate, e.Qubit, n))
		}
		if _, ok := singleVocab[e.Gate]; !ok {
			return serializationError(op, fmt.Errorf("single-qubit entry names gate %q outside the vocabulary", e.Gate))
		}
	}
	for _, e := range s.TwoQubitGateTimes {
		if e.QubitA >= n || e.QubitB >= n {
			return serializationError(op, fmt.Errorf("two-qubit entry %s/(%d,%d) out of range for %d qubits", e.Gate, e.QubitA, e.QubitB, n))
		}
		if _, ok := twoVocab[e.Gate]; !ok {
			return serializationError(op, fmt.Errorf("two-qubit entry names gate %q outside the vocabulary", e.Gate))
		}
		if _, ok := edgeSet[newEdgeKey(e.QubitA, e.QubitB)]; !ok {
			return serializationError(op, fmt.Errorf("two-qubit entry %s/(%d,%d) targets a pair with no edge", e.Gate, e.QubitA, e.QubitB))
		}
	}
	for _, e := range s.MultiQubitGateTimes {
		for _, q := range e.Qubits {
			if q >= n {
				return serializationError(op, fmt.Errorf("multi-qubit entry %s/%v out of range for %d qubits", e.Gate, e.Qubits, n))
			}
		}
		if _, ok := multiVocab[e.Gate]; !ok {
			return serializationError(op, fmt.Errorf("multi-qubit entry names gate %q outside the vocabulary", e.Gate))
		}
	}

	if len(s.Damping) != 0 && len(s.Damping) != n {
		return serializationError(op, fmt.Errorf("damping table has %d entries, want %d", len(s.Damping), n))
	}
	if len(s.Dephasing) != 0 && len(s.Dephasing) != n {
		return serializationError(op, fmt.Errorf("dephasing table has %d entries, want %d", len(s.Dephasing), n))
	}
	if s.DecoherenceRates != nil {
		if len(s.DecoherenceRates) != n {
			return serializationError(op, fmt.Errorf("decoherence matrix has %d rows, want %d", len(s.DecoherenceRates), n))
		}
		for i, row := range s.DecoherenceRates {
			if len(row) != n {
				return serializationError(op, fmt.Errorf("decoherence matrix row %d has %d entries, want %d", i, len(row), n))
			}
			for j, v := range row {
				if v < 0 {
					return serializationError(op, fmt.Errorf("decoherence matrix entry (%d,%d) is negative", i, j))
				}
			}
		}
	}

	return nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
