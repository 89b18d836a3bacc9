package domain

import (
	"fmt"
	"slices"
)

// Device identifies a thermoelectric module model. The set is closed.
type Device string

const (
	DEVICE_OT08XX05 Device = "ot08xx05"
	DEVICE_OT12XX06 Device = "ot12xx06"
	DEVICE_OT15XX05 Device = "ot15xx05"
	DEVICE_OT20XX04 Device = "ot20xx04"

	DEFAULT_DEVICE = DEVICE_OT15XX05
)

// leg area/length ratio per module
var geometryFactors = map[Device]float64{
	DEVICE_OT08XX05: 0.016,
	DEVICE_OT12XX06: 0.024,
	DEVICE_OT15XX05: 0.030,
	DEVICE_OT20XX04: 0.040,
}

func ParseDevice(name string) (Device, error) {
	d := Device(name)
	if _, ok := geometryFactors[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDevice, name)
	}
	return d, nil
}

func (d Device) GeometryFactor() float64 {
	return geometryFactors[d]
}

func (d Device) String() string {
	return string(d)
}

func Devices() []Device {
	devices := make([]Device, 0, len(geometryFactors))
	for d := range geometryFactors {
		devices = append(devices, d)
	}
	slices.Sort(devices)
	return devices
}
