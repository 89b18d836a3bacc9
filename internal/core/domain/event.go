package domain

import "fmt"

type SensorUpdateEventMixIn struct {
	Id string
}

type SensorUpdateEvent interface {
	SensorUpdateEvent() string
	SensorId() string
}

func (e SensorUpdateEventMixIn) SensorUpdateEvent() string {
	return fmt.Sprintf("%T", e)
}

func (e SensorUpdateEventMixIn) SensorId() string {
	return e.Id
}

type FloatSensorUpdateEvent struct {
	SensorUpdateEventMixIn
	Value    float64
	Decimals uint
}

// BridgeStateUpdateEvent is the online state of the MQTT bridge.
type BridgeStateUpdateEvent struct {
	SensorUpdateEventMixIn
	Value bool
}

type InputNumberSensorUpdateEvent struct {
	SensorUpdateEventMixIn
	Value    float64
	Decimals uint
}

type SelectSensorUpdateEvent struct {
	SensorUpdateEventMixIn
	Value string
}

// StatusUpdateEvent carries a full snapshot, published after every successful apply.
type StatusUpdateEvent struct {
	SensorUpdateEventMixIn
	Status Status
}

// OperatingPointUpdateEvent is emitted in constant heat pumping mode after a temperature update.
type OperatingPointUpdateEvent struct {
	SensorUpdateEventMixIn
	OperatingPoint OperatingPoint
}
