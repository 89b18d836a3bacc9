package mqtt

import (
	"testing"

	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSelectDiscoveryMessage(t *testing.T) {
	c := testClient()
	dev := domain.ThermoElectricDevice("loremTopic", domain.DEFAULT_DEVICE)
	sel := domain.ThermoElectricSelects(dev)[0]

	msg := GenericSelectToHADiscoveryMessage(c, sel)

	assert.Equal(t, "loremTopic/select/device/state", msg.StateTopic)
	assert.Equal(t, "loremTopic/select/device/set", msg.CommandTopic)
	assert.Equal(t, []string{"ot08xx05", "ot12xx06", "ot15xx05", "ot20xx04"}, msg.Options)
	assert.Equal(t, []string{dev.Id}, msg.Device.Id)
	assert.Equal(t, "homeassistant/select/"+dev.Id+"/device/config", HADiscoverySelectTopic(c.DiscoveryPrefix(), sel))
}

func TestSensorDiscoveryMessage(t *testing.T) {
	c := testClient()
	bridge := domain.BridgeDevice("loremTopic")

	msg := GenericSensorToHADiscoveryMessage(c, domain.BridgeSensors(bridge)[0])
	assert.Equal(t, c.BridgeStateTopic(), msg.StateTopic)
	assert.Equal(t, MQTT_PAYLOAD_ONLINE, msg.PayloadOn)

	dev := domain.ThermoElectricDevice("loremTopic", domain.DEFAULT_DEVICE)
	for _, s := range domain.ThermoElectricSensors(dev) {
		msg := GenericSensorToHADiscoveryMessage(c, s)
		assert.Equal(t, c.SensorStateTopic(s.Id), msg.StateTopic)
		assert.Empty(t, msg.PayloadOn)
	}
}
