package domain

type DiscoveryDevice struct {
	Id           string
	Name         string
	Version      string
	Model        string
	Manufacturer string
	ViaDevice    string
}

type GenericSensor struct {
	Device            DiscoveryDevice
	Id                string
	SensorType        string
	Name              string
	UniqueId          string
	UnitOfMeasurement string
	StateClass        string // measurement, duration, total_increasing
	DeviceClass       string // voltage, current, power, temperature
	EntityCategory    string // diagnostic, config, nil
	EnabledByDefault  *bool
	Icon              string
}

type GenericInputNumber struct {
	Device            DiscoveryDevice
	Id                string
	Name              string
	UniqueId          string
	Icon              string
	UnitOfMeasurement string
	Max               float64
	Min               float64
	Step              float64
	Mode              string
	InitialValue      float64
}

type GenericSelect struct {
	Device   DiscoveryDevice
	Id       string
	Name     string
	UniqueId string
	Icon     string
	Options  []string
}
