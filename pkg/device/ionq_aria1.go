package device

// IonQAria1Device describes the 25-qubit IonQ Aria-1 trapped-ion processor.
// Same native vocabulary as Harmony, larger all-to-all register.
type IonQAria1Device struct {
	deviceModel
}

// NewIonQAria1Device creates an Aria-1 descriptor with its fixed topology and
// gate vocabulary.
func NewIonQAria1Device() *IonQAria1Device {
	return &IonQAria1Device{
		deviceModel: *newDeviceModel(
			"arn:aws:braket:us-east-1::device/qpu/ionq/Aria-1",
			"us-east-1",
			25,
			[]string{"RotateZ", "GPi", "GPi2"},
			[]string{"MolmerSorensenXX"},
			nil,
			allToAllEdges(25),
		),
	}
}
