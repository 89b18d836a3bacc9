package events

import (
	. "github.com/berfenger/tec2mqtt/internal/core/domain"
)

func floatEvent(id string, value float64, decimals uint) FloatSensorUpdateEvent {
	return FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: id,
		},
		Value:    value,
		Decimals: decimals,
	}
}

// StatusToUpdateEvents splits a status snapshot into one event per sensor,
// followed by the full snapshot.
func StatusToUpdateEvents(status Status) []any {
	var events []any

	// temperatures
	events = append(events, floatEvent(SENSOR_ID_TEC_COLD_TEMP, status.Tc, 2))
	events = append(events, floatEvent(SENSOR_ID_TEC_HOT_TEMP, status.Th, 2))
	events = append(events, floatEvent(SENSOR_ID_TEC_AVG_TEMP, status.TAvg, 2))
	events = append(events, floatEvent(SENSOR_ID_TEC_DELTA_TEMP, status.TDelta, 2))
	// applied values
	events = append(events, floatEvent(SENSOR_ID_TEC_APPLIED_CURRENT, status.AppliedI, 3))
	events = append(events, floatEvent(SENSOR_ID_TEC_APPLIED_VOLTAGE, status.AppliedV, 3))
	events = append(events, floatEvent(SENSOR_ID_TEC_QC, status.Qc, 3))
	events = append(events, floatEvent(SENSOR_ID_TEC_POWER, status.Power, 3))
	// limits
	events = append(events, floatEvent(SENSOR_ID_TEC_IMAX, status.Imax, 3))
	events = append(events, floatEvent(SENSOR_ID_TEC_IOPT, status.Iopt, 3))
	// last solve
	events = append(events, floatEvent(SENSOR_ID_TEC_DESIRED_QC, status.DesiredQc, 3))
	events = append(events, floatEvent(SENSOR_ID_TEC_CALCULATED_I, status.CalculatedI, 3))
	events = append(events, floatEvent(SENSOR_ID_TEC_CALCULATED_V, status.CalculatedV, 3))
	// material
	events = append(events, floatEvent(SENSOR_ID_TEC_RHO, status.Rho, 9))
	events = append(events, floatEvent(SENSOR_ID_TEC_ALPHA, status.Alpha, 9))
	events = append(events, floatEvent(SENSOR_ID_TEC_KAPPA, status.Kappa, 9))
	events = append(events, floatEvent(SENSOR_ID_TEC_ZETA, status.Zeta, 9))

	events = append(events, SelectSensorUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: SELECT_ID_DEVICE,
		},
		Value: status.Device,
	})
	events = append(events, StatusUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: SENSOR_ID_TEC_STATUS,
		},
		Status: status,
	})

	return events
}

func OperatingPointUpdateEvents(op OperatingPoint) []any {
	var events []any
	events = append(events, OperatingPointUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: SENSOR_ID_TEC_OPERATING_POINT,
		},
		OperatingPoint: op,
	})
	return events
}

func TargetQcUpdateEvents(value float64) []any {
	var events []any
	events = append(events, InputNumberSensorUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: INPUT_NUMBER_ID_TARGET_QC,
		},
		Value:    value,
		Decimals: 2,
	})
	return events
}
