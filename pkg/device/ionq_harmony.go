package device

// IonQHarmonyDevice describes the 11-qubit IonQ Harmony trapped-ion processor.
// Ion traps offer all-to-all connectivity: any pair of qubits shares an edge.
type IonQHarmonyDevice struct {
	deviceModel
}

// NewIonQHarmonyDevice creates a Harmony descriptor with its fixed topology
// and gate vocabulary. Every supported operation starts with a timing of 1.0;
// decoherence rates start at zero.
func NewIonQHarmonyDevice() *IonQHarmonyDevice {
	return &IonQHarmonyDevice{
		deviceModel: *newDeviceModel(
			"arn:aws:braket:us-east-1::device/qpu/ionq/Harmony",
			"us-east-1",
			11,
			[]string{"RotateZ", "GPi", "GPi2"},
			[]string{"MolmerSorensenXX"},
			nil,
			allToAllEdges(11),
		),
	}
}
