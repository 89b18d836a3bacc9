package actor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/berfenger/tec2mqtt/internal/util"
	"github.com/berfenger/tec2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func waitFor(t *testing.T, sink <-chan PublishedMessage, topic string) PublishedMessage {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg := <-sink:
			if msg.Topic == topic {
				return msg
			}
		case <-timeout:
			t.Fatalf("nothing published on %s", topic)
			return PublishedMessage{}
		}
	}
}

func TestMQTTActor(t *testing.T) {

	cfg := util.LoadTestConfig()

	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)

	context := as.Root

	es := &eventstream.EventStream{}
	sink := make(chan PublishedMessage, 100)

	props := actor.PropsFromProducer(func() actor.Actor { return NewTestMQTTActor(&cfg, es, sink, logger) })
	pid := context.Spawn(props)

	msg := domain.ActorHealthRequest{}
	result, err := context.RequestFuture(pid, msg, 2*time.Second).Result()
	require.NoError(t, err)
	resp, ok := result.(domain.ActorHealthResponse)
	assert.True(t, ok)
	assert.True(t, resp.Healthy)

	published := waitFor(t, sink, "tec2mqtt/bridge/state")
	assert.Equal(t, "online", published.Payload)
	assert.True(t, published.Retain)

	es.Publish(domain.FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: domain.SENSOR_ID_TEC_COLD_TEMP,
		},
		Value:    290.126,
		Decimals: 2,
	})
	published = waitFor(t, sink, "tec2mqtt/sensor/tec_cold_temperature/state")
	assert.Equal(t, "290.13", published.Payload)
	assert.False(t, published.Retain)

	es.Publish(domain.OperatingPointUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: domain.SENSOR_ID_TEC_OPERATING_POINT,
		},
		OperatingPoint: domain.OperatingPoint{Qc: 1.5, Current: 0.6, Voltage: 2.1},
	})
	published = waitFor(t, sink, "tec2mqtt/operating_point")
	var op map[string]float64
	require.NoError(t, json.Unmarshal([]byte(published.Payload), &op))
	assert.Equal(t, 0.6, op["current"])
	assert.Equal(t, 2.1, op["voltage"])
	assert.Equal(t, 1.5, op["qc"])

	es.Publish(domain.StatusUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: domain.SENSOR_ID_TEC_STATUS,
		},
		Status: domain.Status{Device: "ot15xx05", Stages: 30},
	})
	published = waitFor(t, sink, "tec2mqtt/status")
	assert.True(t, published.Retain, "status is retained")
	assert.Contains(t, published.Payload, `"device":"ot15xx05"`)

	es.Publish(domain.SelectSensorUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: domain.SELECT_ID_DEVICE,
		},
		Value: "ot12xx06",
	})
	published = waitFor(t, sink, "tec2mqtt/select/device/state")
	assert.Equal(t, "ot12xx06", published.Payload)

	require.NoError(t, context.StopFuture(pid).Wait())
	published = waitFor(t, sink, "tec2mqtt/bridge/state")
	assert.Equal(t, "offline", published.Payload)

	as.Shutdown()
}
