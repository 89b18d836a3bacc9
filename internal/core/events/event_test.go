package events

import (
	"testing"

	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusToUpdateEvents(t *testing.T) {
	status := domain.Status{Device: "ot15xx05", Tc: 290, Th: 300, TAvg: 295, TDelta: 10, AppliedI: 1.2}
	events := StatusToUpdateEvents(status)

	require.NotEmpty(t, events)
	last, ok := events[len(events)-1].(domain.StatusUpdateEvent)
	require.True(t, ok, "full snapshot goes last")
	assert.Equal(t, status, last.Status)

	ids := map[string]any{}
	for _, e := range events {
		ev, ok := e.(domain.SensorUpdateEvent)
		require.True(t, ok)
		ids[ev.SensorId()] = e
	}
	assert.Len(t, ids, len(events), "sensor ids are unique")

	tc, ok := ids[domain.SENSOR_ID_TEC_COLD_TEMP].(domain.FloatSensorUpdateEvent)
	require.True(t, ok)
	assert.Equal(t, 290.0, tc.Value)

	current, ok := ids[domain.SENSOR_ID_TEC_APPLIED_CURRENT].(domain.FloatSensorUpdateEvent)
	require.True(t, ok)
	assert.Equal(t, 1.2, current.Value)

	device, ok := ids[domain.SELECT_ID_DEVICE].(domain.SelectSensorUpdateEvent)
	require.True(t, ok)
	assert.Equal(t, "ot15xx05", device.Value)
}

func TestOperatingPointUpdateEvents(t *testing.T) {
	op := domain.OperatingPoint{Qc: 1, Current: 0.5, Voltage: 2}
	events := OperatingPointUpdateEvents(op)
	require.Len(t, events, 1)
	ev, ok := events[0].(domain.OperatingPointUpdateEvent)
	require.True(t, ok)
	assert.Equal(t, op, ev.OperatingPoint)
	assert.Equal(t, domain.SENSOR_ID_TEC_OPERATING_POINT, ev.SensorId())
}
