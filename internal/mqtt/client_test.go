package mqtt

import (
	"testing"

	"github.com/berfenger/tec2mqtt/internal/config"
	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *MQTTClient {
	cfg := &config.Config{
		MQTT: config.MQTTConfig{
			Host:             "localhost",
			Port:             1883,
			BaseTopic:        "loremTopic",
			HADiscoveryTopic: "homeassistant",
		},
	}
	return CreateMQTTClient(cfg, OptsFromConfig(cfg), nil, nil)
}

func TestUpdateCommandParse(t *testing.T) {

	assert := assert.New(t)

	r := updateCommandExtractor("loremTopic")
	matches := r.FindAllStringSubmatch("loremTopic/update/vi", 1)

	assert.Equal("vi", matches[0][1], "update kind extract")
}

func TestUpdateCommandParseFail(t *testing.T) {

	assert := assert.New(t)

	r := updateCommandExtractor("loremTopic")

	assert.Empty(r.FindAllStringSubmatch("loremTopic/update/power", 1), "unknown kind")
	assert.Empty(r.FindAllStringSubmatch("otherTopic/update/vi", 1), "other base topic")
	assert.Empty(r.FindAllStringSubmatch("loremTopic/update/vi/extra", 1), "trailing level")
}

func TestSelectCommandParse(t *testing.T) {

	assert := assert.New(t)

	r := selectCommandExtractor("loremTopic")
	matches := r.FindAllStringSubmatch("loremTopic/select/device/set", 1)
	assert.Equal("device", matches[0][1], "select id extract")

	assert.Empty(r.FindAllStringSubmatch("loremTopic/select/device/state", 1), "state topic is not a command")
}

func TestInputNumberCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/number/number_name/set"
	r := inputNumberCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal("number_name", matches[0][1], "number_id extract")
}

func TestInputNumberCommandParseFail(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/select/number_name/set"
	r := inputNumberCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(0, len(matches), "no matches")
}

func TestParseCommand(t *testing.T) {
	c := testClient()

	cmd, err := parseCommand(c, "loremTopic/update/temperatures", []byte(`{"tc":290,"th":300}`))
	require.NoError(t, err)
	assert.Equal(t, COMMAND_UPDATE, cmd.Command)
	assert.Equal(t, "temperatures", cmd.DeviceId)

	cmd, err = parseCommand(c, "loremTopic/select/device/set", []byte("ot12xx06"))
	require.NoError(t, err)
	assert.Equal(t, COMMAND_SELECT, cmd.Command)
	assert.Equal(t, "ot12xx06", cmd.Payload)

	cmd, err = parseCommand(c, "loremTopic/number/target_qc/set", []byte("2.5"))
	require.NoError(t, err)
	assert.Equal(t, COMMAND_NUMBER, cmd.Command)
	assert.Equal(t, domain.INPUT_NUMBER_ID_TARGET_QC, cmd.DeviceId)

	_, err = parseCommand(c, "loremTopic/number/target_qc/set", []byte("lots"))
	assert.Error(t, err, "number payload must be numeric")

	_, err = parseCommand(c, "loremTopic/sensor/tec_qc/state", []byte("1"))
	assert.Error(t, err, "own state topics are ignored")
}

func TestParseUpdateValues(t *testing.T) {
	values, err := ParseUpdateValues(`{"v": 12.5, "i": 1, "label": "psu"}`)
	require.NoError(t, err)
	assert.Equal(t, domain.UpdateValues{"v": 12.5, "i": 1}, values)

	_, err = ParseUpdateValues(`12.5`)
	assert.ErrorContains(t, err, "json unmarshal error")
}

func TestTopics(t *testing.T) {
	c := testClient()

	assert.Equal(t, "loremTopic/status", c.StatusTopic())
	assert.Equal(t, "loremTopic/operating_point", c.OperatingPointTopic())
	assert.Equal(t, "loremTopic/update/vi", c.UpdateTopic(domain.UPDATE_KIND_VI))
	assert.Equal(t, "loremTopic/bridge/state", c.BridgeStateTopic())
}
