package device

import "strings"

// DeviceKind tags the hardware variant held by an AWSDevice.
type DeviceKind string

const (
	KindIonQHarmony    DeviceKind = "ionq.harmony"
	KindIonQAria1      DeviceKind = "ionq.aria1"
	KindOQCLucy        DeviceKind = "oqc.lucy"
	KindRigettiAspenM3 DeviceKind = "rigetti.aspen-m3"
)

// AWSDevice holds exactly one hardware variant and exposes the full
// capability set by delegating to it. It is the catalog-facing sum type:
// callers that receive "some Braket device" work with an AWSDevice without
// caring which variant is inside.
type AWSDevice struct {
	kind DeviceKind
	Device
}

// Kind reports the active variant.
func (d *AWSDevice) Kind() DeviceKind { return d.kind }

// Unwrap returns the concrete variant held by the AWSDevice.
func (d *AWSDevice) Unwrap() Device { return d.Device }

// WrapDevice packs a concrete variant into an AWSDevice. Fails with
// ErrUnknownDevice for types outside the catalog (including GenericDevice,
// which deliberately has no variant identity).
func WrapDevice(d Device) (*AWSDevice, error) {
	if aws, ok := d.(*AWSDevice); ok {
		return aws, nil
	}
	kind, err := kindOfDevice(d)
	if err != nil {
		return nil, err
	}
	return &AWSDevice{kind: kind, Device: d}, nil
}

func kindOfDevice(d Device) (DeviceKind, error) {
	switch d.(type) {
	case *IonQHarmonyDevice:
		return KindIonQHarmony, nil
	case *IonQAria1Device:
		return KindIonQAria1, nil
	case *OQCLucyDevice:
		return KindOQCLucy, nil
	case *RigettiAspenM3Device:
		return KindRigettiAspenM3, nil
	default:
		return "", &DeviceError{Op: "WrapDevice", Cause: ErrUnknownDevice,
			Detail: "type is not a catalog variant"}
	}
}

func newDeviceOfKind(kind DeviceKind) (Device, error) {
	switch kind {
	case KindIonQHarmony:
		return NewIonQHarmonyDevice(), nil
	case KindIonQAria1:
		return NewIonQAria1Device(), nil
	case KindOQCLucy:
		return NewOQCLucyDevice(), nil
	case KindRigettiAspenM3:
		return NewRigettiAspenM3Device(), nil
	default:
		return nil, &DeviceError{Op: "newDeviceOfKind", Device: string(kind), Cause: ErrUnknownDevice}
	}
}

// NewAWSDevice resolves a device identifier to a freshly constructed variant.
// Both the full Braket ARN and the bare device name ("Harmony", "Aria-1",
// "Lucy", "Aspen-M-3") are accepted, case-insensitively for the short form.
func NewAWSDevice(name string) (*AWSDevice, error) {
	var dev Device
	switch {
	case name == "arn:aws:braket:us-east-1::device/qpu/ionq/Harmony",
		strings.EqualFold(name, "Harmony"):
		dev = NewIonQHarmonyDevice()
	case name == "arn:aws:braket:us-east-1::device/qpu/ionq/Aria-1",
		strings.EqualFold(name, "Aria-1"):
		dev = NewIonQAria1Device()
	case name == "arn:aws:braket:eu-west-2::device/qpu/oqc/Lucy",
		strings.EqualFold(name, "Lucy"):
		dev = NewOQCLucyDevice()
	case name == "arn:aws:braket:us-west-1::device/qpu/rigetti/Aspen-M-3",
		strings.EqualFold(name, "Aspen-M-3"):
		dev = NewRigettiAspenM3Device()
	default:
		return nil, &DeviceError{Op: "NewAWSDevice", Device: name, Cause: ErrUnknownDevice}
	}
	return WrapDevice(dev)
}
