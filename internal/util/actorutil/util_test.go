package actorutil

import (
	"testing"

	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/berfenger/tec2mqtt/internal/mqtt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCommandToRequest(t *testing.T) {
	req, err := ParsedMQTTCommandToCommand(mqtt.ParsedMQTTCommand{
		DeviceId: "vi",
		Command:  mqtt.COMMAND_UPDATE,
		Payload:  `{"v": 5, "i": 0.5}`,
	})
	require.NoError(t, err)
	update, ok := req.(domain.ThermoElectricUpdateRequest)
	require.True(t, ok)
	assert.Equal(t, domain.UPDATE_KIND_VI, update.Kind)
	assert.Equal(t, domain.UpdateValues{"v": 5, "i": 0.5}, update.Values)

	_, err = ParsedMQTTCommandToCommand(mqtt.ParsedMQTTCommand{
		DeviceId: "vi",
		Command:  mqtt.COMMAND_UPDATE,
		Payload:  `not json`,
	})
	assert.Error(t, err)
}

func TestSelectAndNumberCommandToRequest(t *testing.T) {
	req, err := ParsedMQTTCommandToCommand(mqtt.ParsedMQTTCommand{
		DeviceId: domain.SELECT_ID_DEVICE,
		Command:  mqtt.COMMAND_SELECT,
		Payload:  "ot08xx05\n",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ThermoElectricSelectDeviceRequest{Name: "ot08xx05"}, req)

	req, err = ParsedMQTTCommandToCommand(mqtt.ParsedMQTTCommand{
		DeviceId: domain.INPUT_NUMBER_ID_TARGET_QC,
		Command:  mqtt.COMMAND_NUMBER,
		Payload:  "2.25",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ThermoElectricSetTargetQcRequest{Qc: 2.25}, req)

	req, err = ParsedMQTTCommandToCommand(mqtt.ParsedMQTTCommand{
		DeviceId: "unknown",
		Command:  mqtt.COMMAND_NUMBER,
		Payload:  "1",
	})
	assert.NoError(t, err)
	assert.Nil(t, req)
}
