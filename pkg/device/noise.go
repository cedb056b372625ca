package device

// AddDamping accumulates a damping contribution onto the diagonal decoherence
// entry of the given qubit. Repeated calls add up; they never overwrite.
func (m *deviceModel) AddDamping(qubit int, rate float64) error {
	if qubit < 0 || qubit >= m.numberQubits {
		return invalidQubitError("AddDamping", m.name, qubit, m.numberQubits)
	}
	if rate < 0 {
		return &DeviceError{Op: "AddDamping", Device: m.name, Qubits: []int{qubit}, Cause: ErrInvalidRate}
	}
	m.damping[qubit] += rate
	return nil
}

// AddDephasing accumulates a dephasing contribution onto the diagonal
// decoherence entry of the given qubit. Independent of AddDamping: both feed
// the same reported diagonal but neither disturbs the other.
func (m *deviceModel) AddDephasing(qubit int, rate float64) error {
	if qubit < 0 || qubit >= m.numberQubits {
		return invalidQubitError("AddDephasing", m.name, qubit, m.numberQubits)
	}
	if rate < 0 {
		return &DeviceError{Op: "AddDephasing", Device: m.name, Qubits: []int{qubit}, Cause: ErrInvalidRate}
	}
	m.dephasing[qubit] += rate
	return nil
}

// SetSingleQubitGateTime overwrites the stored duration for (gate, qubit).
func (m *deviceModel) SetSingleQubitGateTime(gate string, qubit int, duration float64) error {
	const op = "SetSingleQubitGateTime"
	if !m.inSingleVocabulary(gate) {
		return unsupportedGateError(op, m.name, gate)
	}
	if qubit < 0 || qubit >= m.numberQubits {
		return invalidQubitError(op, m.name, qubit, m.numberQubits)
	}
	if duration < 0 {
		return &DeviceError{Op: op, Device: m.name, Gate: gate, Qubits: []int{qubit}, Cause: ErrInvalidDuration}
	}
	times, ok := m.singleQubitGates[gate]
	if !ok {
		times = make(map[int]float64)
		m.singleQubitGates[gate] = times
	}
	times[qubit] = duration
	return nil
}

// SetTwoQubitGateTime overwrites the stored duration for the gate on the
// unordered pair {control, target}, which must be a connectivity edge.
func (m *deviceModel) SetTwoQubitGateTime(gate string, control, target int, duration float64) error {
	const op = "SetTwoQubitGateTime"
	if !m.inTwoVocabulary(gate) {
		return unsupportedGateError(op, m.name, gate)
	}
	if control < 0 || control >= m.numberQubits {
		return invalidQubitError(op, m.name, control, m.numberQubits)
	}
	if target < 0 || target >= m.numberQubits {
		return invalidQubitError(op, m.name, target, m.numberQubits)
	}
	if !m.hasEdge(control, target) {
		return noSuchEdgeError(op, m.name, control, target)
	}
	if duration < 0 {
		return &DeviceError{Op: op, Device: m.name, Gate: gate, Qubits: []int{control, target}, Cause: ErrInvalidDuration}
	}
	times, ok := m.twoQubitGates[gate]
	if !ok {
		times = make(map[edgeKey]float64)
		m.twoQubitGates[gate] = times
	}
	times[newEdgeKey(control, target)] = duration
	return nil
}
