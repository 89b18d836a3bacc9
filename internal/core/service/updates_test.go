package service

import (
	"testing"

	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestUpdater(t *testing.T, targetQc float64) (*ThermoElectricUpdater, *ThermoElectric, *recordingPublisher, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	pub := &recordingPublisher{}
	tec := NewThermoElectric(30, domain.DEFAULT_DEVICE, pub)
	bindings := &FieldBindings{}
	require.NoError(t, bindings.BindVoltage("v"))
	require.NoError(t, bindings.BindCurrent("i"))
	require.NoError(t, bindings.BindTemperatures("tc", "th"))
	return NewThermoElectricUpdater(tec, bindings, targetQc, zap.New(core)), tec, pub, logs
}

func TestDuplicateBinding(t *testing.T) {
	bindings := &FieldBindings{}
	require.NoError(t, bindings.BindVoltage("v"))

	err := bindings.BindVoltage("v2")
	require.ErrorIs(t, err, domain.ErrDuplicateRegistration)
	assert.Equal(t, "v", bindings.Voltage(), "first binding stays active")

	require.NoError(t, bindings.BindTemperatures("tc", "th"))
	require.ErrorIs(t, bindings.BindTemperatures("a", "b"), domain.ErrDuplicateRegistration)
	tc, th := bindings.Temperatures()
	assert.Equal(t, "tc", tc)
	assert.Equal(t, "th", th)

	assert.Error(t, bindings.BindCurrent(""))
	assert.Empty(t, bindings.Current())
}

func TestUpdateVoltageRoutesToVoltage(t *testing.T) {
	u, tec, pub, logs := newTestUpdater(t, 1)

	require.True(t, u.UpdateV(domain.UpdateValues{"v": 12}))
	assert.Equal(t, 12.0, tec.Voltage())
	assert.Equal(t, 0.0, tec.Current())
	assert.Len(t, pub.statuses, 1)
	assert.Zero(t, logs.Len())

	require.True(t, u.UpdateI(domain.UpdateValues{"i": 2, "v": 3}))
	assert.Equal(t, 2.0, tec.Current())
	assert.Equal(t, 12.0, tec.Voltage(), "single field update only touches its field")
}

func TestUpdateMissingFieldIsDropped(t *testing.T) {
	u, tec, pub, logs := newTestUpdater(t, 1)

	assert.False(t, u.UpdateV(domain.UpdateValues{"voltage": 12}))
	assert.False(t, u.UpdateI(nil))
	assert.Equal(t, 0.0, tec.Voltage())
	assert.Empty(t, pub.statuses)
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestUpdateVIRequiresBothFields(t *testing.T) {
	u, tec, pub, logs := newTestUpdater(t, 1)

	assert.False(t, u.UpdateVI(domain.UpdateValues{"v": 5}))
	assert.Equal(t, 0.0, tec.Voltage())
	assert.Equal(t, 0.0, tec.Current())
	assert.Empty(t, pub.statuses, "nothing is published for a dropped update")
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "update_vi")
}

func TestUpdateVIClampsNegatives(t *testing.T) {
	u, tec, pub, _ := newTestUpdater(t, 1)

	require.True(t, u.UpdateVI(domain.UpdateValues{"v": -0.2, "i": 1.2}))
	assert.Equal(t, 0.0, tec.Voltage())
	assert.Equal(t, 1.2, tec.Current())
	assert.Len(t, pub.statuses, 1)
}

func TestUpdateTemperatures(t *testing.T) {
	u, tec, pub, logs := newTestUpdater(t, 1)

	assert.False(t, u.UpdateTemperatures(domain.UpdateValues{"tc": 290}))
	assert.Equal(t, DEFAULT_TEMPERATURE, tec.Tc())
	assert.Equal(t, 1, logs.Len())

	require.True(t, u.UpdateTemperatures(domain.UpdateValues{"tc": 290, "th": 305}))
	assert.Equal(t, 290.0, tec.Tc())
	assert.Equal(t, 305.0, tec.Th())
	require.Len(t, pub.statuses, 1)
	assert.Equal(t, 15.0, pub.statuses[0].TDelta)
}

func TestUpdateTemperaturesConstantQc(t *testing.T) {
	u, tec, _, _ := newTestUpdater(t, 1.5)

	op, err := u.UpdateTemperaturesConstantQc(domain.UpdateValues{"tc": 293, "th": 298})
	require.NoError(t, err)
	require.NotNil(t, op)
	assert.Equal(t, 1.5, op.Qc)
	assert.InDelta(t, 1.5, tec.Qc(op.Current), 1e-9)

	op, err = u.UpdateTemperaturesConstantQc(domain.UpdateValues{"th": 298})
	assert.NoError(t, err)
	assert.Nil(t, op)

	u.TargetQc = 1000
	op, err = u.UpdateTemperaturesConstantQc(domain.UpdateValues{"tc": 293, "th": 298})
	require.ErrorIs(t, err, domain.ErrUnachievableOperatingPoint)
	assert.Nil(t, op)
}
