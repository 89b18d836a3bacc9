package actor

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/berfenger/tec2mqtt/internal/config"
	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/berfenger/tec2mqtt/internal/mqtt"
	"github.com/berfenger/tec2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

type MQTTActor struct {
	config         *config.Config
	behavior       actor.Behavior
	stash          *actorutil.Stash
	client         *mqtt.MQTTClient
	eventStream    *eventstream.EventStream
	eventStreamSub *eventstream.Subscription
	sink           chan<- PublishedMessage
	logger         *zap.Logger
}

type MQTTConnected struct {
}

type MQTTSubscribed struct {
}

type MQTTConnectionLost struct {
	Error error
}

type publishResult struct {
	ReplyTo *actor.PID
	Error   error
}

type ParsedCommand struct {
	Command *mqtt.ParsedMQTTCommand
}

// PublishedMessage is a message as it is handed to the broker.
type PublishedMessage struct {
	Topic   string
	Payload string
	Retain  bool
}

func NewMQTTActor(config *config.Config, eventStream *eventstream.EventStream, logger *zap.Logger) *MQTTActor {
	act := &MQTTActor{
		config:      config,
		behavior:    actor.NewBehavior(),
		stash:       &actorutil.Stash{},
		eventStream: eventStream,
		logger:      actorutil.ActorLogger(domain.ACTOR_ID_MQTT, logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *MQTTActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *MQTTActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("mqtt@starting started")

		root, self := ctx.ActorSystem().Root, ctx.Self()

		// create MQTT client
		state.client = mqtt.CreateMQTTClient(state.config, mqtt.OptsFromConfig(state.config), func(_ pahomqtt.Client) {
		}, func(_ pahomqtt.Client, err error) {
			root.Send(self, MQTTConnectionLost{Error: err})
		})

		// connect to MQTT server
		state.client.Connect(func(err error) {
			if err != nil {
				root.Send(self, MQTTConnectionLost{Error: err})
			} else {
				root.Send(self, MQTTConnected{})
			}
		}, 10*time.Second)

	case MQTTConnected:
		state.logger.Debug("mqtt@starting connected")

		root, self := ctx.ActorSystem().Root, ctx.Self()

		state.publishBridgeState(true)

		// subscribe to MQTT command topic
		state.client.SubscribeToCommandTopic(func(c pahomqtt.Client, m pahomqtt.Message) {
			cmd, err := state.client.ParseMQTTCommand(m)
			if err == nil && cmd != nil {
				root.Send(self, ParsedCommand{Command: cmd})
			}
		}, func(err error) {
			if err != nil {
				root.Send(self, MQTTConnectionLost{Error: err})
			} else {
				root.Send(self, MQTTSubscribed{})
			}
		}, 1*time.Second)
	case MQTTSubscribed:
		// init completed, transition to default state
		state.logger.Debug("mqtt@starting subscribed")
		state.subscribeEventStream(ctx)
		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	case MQTTConnectionLost:
		// if connection lost, stop actor and let supervisor decide
		state.logger.Error("mqtt@starting connection lost", zap.Error(msg.Error))
		panic(msg.Error)
	case *actor.Restarting:
		state.stop()
	default:
		state.logger.Debug("mqtt@starting stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *MQTTActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Restarting:
		state.stop()
	case *actor.Stopping:
		state.stop()
	case domain.ActorHealthRequest:
		state.logger.Debug("mqtt@default ActorHealthRequest")
		// respond health check request
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_MQTT,
			Healthy: true,
			State:   "idle",
		})
	case ParsedCommand:
		// route command to parent
		state.logger.Debug("mqtt@default parsedCommand", zap.Any("command", msg.Command))
		ctx.Send(ctx.Parent(), msg)
	case domain.PublishMessageRequest:
		state.logger.Debug("mqtt@default PublishMessageRequest", zap.Any("message", msg))
		state.publishMessage(ctx, msg.Topic, msg.Payload, msg.Retain, actorutil.ForRequest(msg).ReplyTo(ctx))
	case domain.PublishSensorUpdateRequest:
		// receive message from event bus and publish to MQTT if needed
		state.logger.Debug("mqtt@default PublishSensorUpdateRequest", zap.String("type", fmt.Sprintf("%T", msg.Event)))
		state.publishSensorValue(ctx, msg.Event, msg.Retain)
	case domain.PublishDiscoveryRequest:
		state.logger.Debug("mqtt@default PublishHADiscovery")
		err := state.PublishHomeAssistantDiscovery(msg.Sensors, msg.InputNumbers, msg.Selects)
		if err != nil {
			state.logger.Error("mqtt@default PublishHADiscovery error", zap.Error(err))
		}
		actorutil.ForRequest(msg).Respond(ctx, domain.PublishDiscoveryResponse{
			ActorResponseMixIn: domain.ResponseWithError(err),
		})
	case MQTTConnectionLost:
		// if connection lost, stop actor and let supervisor decide
		state.logger.Error("mqtt@default connection lost", zap.Error(msg.Error))
		panic(msg.Error)
	default:
		state.logger.Debug("mqtt@default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

// forward sensor events from the event bus to the actor mailbox
func (state *MQTTActor) subscribeEventStream(ctx actor.Context) {
	if state.eventStream == nil || state.eventStreamSub != nil {
		return
	}
	root, self := ctx.ActorSystem().Root, ctx.Self()
	state.eventStreamSub = state.eventStream.Subscribe(func(value any) {
		if event, ok := value.(domain.SensorUpdateEvent); ok {
			root.Send(self, domain.PublishSensorUpdateRequest{Event: event})
		}
	})
}

func (state *MQTTActor) event2MQTTMessage(event any) (*PublishedMessage, error) {
	switch msg := event.(type) {
	case domain.FloatSensorUpdateEvent:
		return &PublishedMessage{
			Topic:   state.client.SensorStateTopic(msg.Id),
			Payload: formatFloat(msg.Value, msg.Decimals),
		}, nil
	case domain.InputNumberSensorUpdateEvent:
		return &PublishedMessage{
			Topic:   state.client.InputNumberStateTopic(msg.Id),
			Payload: formatFloat(msg.Value, msg.Decimals),
			Retain:  true,
		}, nil
	case domain.SelectSensorUpdateEvent:
		return &PublishedMessage{
			Topic:   state.client.SelectStateTopic(msg.Id),
			Payload: msg.Value,
			Retain:  true,
		}, nil
	case domain.StatusUpdateEvent:
		payload, err := json.Marshal(msg.Status)
		if err != nil {
			return nil, err
		}
		return &PublishedMessage{
			Topic:   state.client.StatusTopic(),
			Payload: string(payload),
			Retain:  true,
		}, nil
	case domain.OperatingPointUpdateEvent:
		payload, err := json.Marshal(msg.OperatingPoint)
		if err != nil {
			return nil, err
		}
		return &PublishedMessage{
			Topic:   state.client.OperatingPointTopic(),
			Payload: string(payload),
		}, nil
	case domain.BridgeStateUpdateEvent:
		var stringMessage string
		if msg.Value {
			stringMessage = mqtt.MQTT_PAYLOAD_ONLINE
		} else {
			stringMessage = mqtt.MQTT_PAYLOAD_OFFLINE
		}
		return &PublishedMessage{
			Topic:   state.client.BridgeStateTopic(),
			Payload: stringMessage,
			Retain:  true,
		}, nil
	default:
		return nil, nil
	}
}

func (state *MQTTActor) publishSensorValue(ctx actor.Context, event domain.SensorUpdateEvent, retain bool) {
	msg, err := state.event2MQTTMessage(event)
	if err != nil {
		state.logger.Error("mqtt@publish: could not encode event", zap.String("sensor", event.SensorId()), zap.Error(err))
		return
	}
	if msg != nil {
		root, self := ctx.ActorSystem().Root, ctx.Self()
		state.logger.Sugar().Debugf("mqtt@publish: sensor publish %s => %s", msg.Topic, msg.Payload)
		state.client.Publish(msg.Topic, msg.Payload, 1, msg.Retain || retain, func(err error) {
			root.Send(self, publishResult{Error: err})
		}, 5*time.Second)
		state.behavior.BecomeStacked(state.EventPublishResultReceive)
	}
}

func (state *MQTTActor) publishMessage(ctx actor.Context, topic, payload string, retain bool, replyTo *actor.PID) {
	root, self := ctx.ActorSystem().Root, ctx.Self()
	state.logger.Sugar().Debugf("mqtt@publish: message publish %s => %s", topic, payload)
	state.client.Publish(topic, payload, 1, retain, func(err error) {
		root.Send(self, publishResult{ReplyTo: replyTo, Error: err})
	}, 5*time.Second)
	state.behavior.BecomeStacked(state.MessagePublishResultReceive)
}

func (state *MQTTActor) MessagePublishResultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case publishResult:
		// log error and return to default state
		if msg.Error != nil {
			state.logger.Error("mqtt@publishing could not publish a message", zap.Error(msg.Error))
		}
		if msg.ReplyTo != nil {
			ctx.Send(msg.ReplyTo, domain.PublishMessageResponse{
				ActorResponseMixIn: domain.ResponseWithError(msg.Error),
			})
		}
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("mqtt@publishing stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *MQTTActor) EventPublishResultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case publishResult:
		// log error and return to default state
		if msg.Error != nil {
			state.logger.Error("mqtt@publishing could not publish a message", zap.Error(msg.Error))
		}
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("mqtt@publishing stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *MQTTActor) PublishHomeAssistantDiscovery(sensors []domain.GenericSensor,
	inputNumbers []domain.GenericInputNumber, selects []domain.GenericSelect) error {
	prefix := state.client.DiscoveryPrefix()
	for i := range sensors {
		msg := mqtt.GenericSensorToHADiscoveryMessage(state.client, sensors[i])
		payload, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		topic := mqtt.HADiscoverySensorTopic(prefix, sensors[i])
		state.client.Publish(topic, payload, 0, true, func(error) {}, 1*time.Second)
	}
	for i := range inputNumbers {
		msg := mqtt.GenericInputNumberToHADiscoveryMessage(state.client, inputNumbers[i])
		payload, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		topic := mqtt.HADiscoveryInputNumberTopic(prefix, inputNumbers[i])
		state.client.Publish(topic, payload, 0, true, func(error) {}, 1*time.Second)
	}
	for i := range selects {
		msg := mqtt.GenericSelectToHADiscoveryMessage(state.client, selects[i])
		payload, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		topic := mqtt.HADiscoverySelectTopic(prefix, selects[i])
		state.client.Publish(topic, payload, 0, true, func(error) {}, 1*time.Second)
	}
	return nil
}

func (state *MQTTActor) stop() {
	state.logger.Debug("mqtt: disconnect")
	if state.eventStreamSub != nil {
		state.eventStream.Unsubscribe(state.eventStreamSub)
		state.eventStreamSub = nil
	}
	if state.client != nil {
		state.publishBridgeState(false)
		state.client.Disconnect(500 * time.Millisecond)
	}
}

func bridgeStateEvent(online bool) domain.BridgeStateUpdateEvent {
	return domain.BridgeStateUpdateEvent{
		SensorUpdateEventMixIn: domain.SensorUpdateEventMixIn{
			Id: domain.SENSOR_ID_BRIDGE_STATE,
		},
		Value: online,
	}
}

func (state *MQTTActor) publishBridgeState(online bool) {
	msg, err := state.event2MQTTMessage(bridgeStateEvent(online))
	if err != nil || msg == nil {
		return
	}
	state.client.Publish(msg.Topic, msg.Payload, 0, msg.Retain, func(error) {}, 500*time.Millisecond)
}

func formatFloat(value float64, decimals uint) string {
	return fmt.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}

// Dummy actor, never connects. Messages that would be published are sent to sink when set.
func NewTestMQTTActor(config *config.Config, eventStream *eventstream.EventStream, sink chan<- PublishedMessage, logger *zap.Logger) *MQTTActor {
	act := &MQTTActor{
		config:      config,
		behavior:    actor.NewBehavior(),
		stash:       &actorutil.Stash{},
		eventStream: eventStream,
		sink:        sink,
		logger:      actorutil.ActorLogger(domain.ACTOR_ID_MQTT, logger),
	}
	act.behavior.Become(act.DummyReceive)
	return act
}

func (state *MQTTActor) DummyReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.client = mqtt.CreateMQTTClient(state.config, mqtt.OptsFromConfig(state.config), nil, nil)
		state.sinkEvent(bridgeStateEvent(true))
		state.subscribeEventStream(ctx)
	case *actor.Stopping:
		if state.eventStreamSub != nil {
			state.eventStream.Unsubscribe(state.eventStreamSub)
			state.eventStreamSub = nil
		}
		state.sinkEvent(bridgeStateEvent(false))
	case domain.ActorHealthRequest:
		state.logger.Debug("mqtt@dummy ActorHealthRequest")
		// respond health check request
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_MQTT,
			Healthy: true,
			State:   "dummy",
		})
	case ParsedCommand:
		ctx.Send(ctx.Parent(), msg)
	case domain.PublishSensorUpdateRequest:
		state.sinkEvent(msg.Event)
		if msg.ReplyToRef != nil {
			actorutil.ForRequest(msg).Respond(ctx, domain.PublishSensorUpdateResponse{})
		}
	case domain.PublishMessageRequest:
		state.toSink(PublishedMessage{Topic: msg.Topic, Payload: msg.Payload, Retain: msg.Retain})
		if msg.ReplyToRef != nil {
			actorutil.ForRequest(msg).Respond(ctx, domain.PublishMessageResponse{})
		}
	case domain.PublishDiscoveryRequest:
		prefix := state.client.DiscoveryPrefix()
		for _, s := range msg.Sensors {
			state.sinkDiscovery(mqtt.HADiscoverySensorTopic(prefix, s), mqtt.GenericSensorToHADiscoveryMessage(state.client, s))
		}
		for _, n := range msg.InputNumbers {
			state.sinkDiscovery(mqtt.HADiscoveryInputNumberTopic(prefix, n), mqtt.GenericInputNumberToHADiscoveryMessage(state.client, n))
		}
		for _, s := range msg.Selects {
			state.sinkDiscovery(mqtt.HADiscoverySelectTopic(prefix, s), mqtt.GenericSelectToHADiscoveryMessage(state.client, s))
		}
		actorutil.ForRequest(msg).Respond(ctx, domain.PublishDiscoveryResponse{})
	}
}

func (state *MQTTActor) sinkEvent(event any) {
	out, err := state.event2MQTTMessage(event)
	if err == nil && out != nil {
		state.toSink(*out)
	}
}

func (state *MQTTActor) sinkDiscovery(topic string, msg mqtt.HADiscoveryConfig) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	state.toSink(PublishedMessage{Topic: topic, Payload: string(payload), Retain: true})
}

func (state *MQTTActor) toSink(msg PublishedMessage) {
	if state.sink == nil {
		return
	}
	select {
	case state.sink <- msg:
	default:
		state.logger.Debug("mqtt@dummy sink full, message dropped", zap.String("topic", msg.Topic))
	}
}
