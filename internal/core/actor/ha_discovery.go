package actor

import (
	"errors"
	"fmt"
	"time"

	"github.com/berfenger/tec2mqtt/internal/config"
	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/berfenger/tec2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"go.uber.org/zap"
)

type HADiscoveryActor struct {
	config              *config.Config
	behavior            actor.Behavior
	stash               *actorutil.Stash
	mqttActor           *actor.PID
	thermoElectricActor *actor.PID
	eventStream         *eventstream.EventStream
	eventStreamSub      *eventstream.Subscription
	device              domain.Device

	logger *zap.Logger
}

// deviceSelected is sent to self when the published device select state changes.
type deviceSelected struct {
	device domain.Device
}

func NewHADiscoveryActor(config *config.Config, eventStream *eventstream.EventStream, mqttActor *actor.PID, thermoElectricActor *actor.PID, logger *zap.Logger) *HADiscoveryActor {
	act := &HADiscoveryActor{
		config:              config,
		eventStream:         eventStream,
		mqttActor:           mqttActor,
		thermoElectricActor: thermoElectricActor,
		behavior:            actor.NewBehavior(),
		stash:               &actorutil.Stash{},
		logger:              actorutil.ActorLogger(domain.ACTOR_ID_HA_DISCOVERY, logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *HADiscoveryActor) Receive(context actor.Context) {
	switch context.Message().(type) {
	case *actor.Stopping, *actor.Restarting:
		state.unsubscribe()
	}
	state.behavior.Receive(context)
}

func (state *HADiscoveryActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("hadiscovery@starting started")
		state.subscribeDeviceChanges(ctx)

		// MQTT Actor Request
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.mqttActor, domain.ActorHealthRequest{}, 2*time.Second), func(err error) any {
			return domain.ActorHealthResponse{
				Id:      domain.ACTOR_ID_MQTT,
				Healthy: false,
			}
		})
		state.behavior.Become(state.WaitingHealthyReceive)
	case *actor.Restarting:
	default:
		state.logger.Debug("hadiscovery@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) WaitingHealthyReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthResponse:
		state.logger.Debug("hadiscovery@healthcheck ActorHealthResponse", zap.String("sender", msg.Id), zap.Bool("healthy", msg.Healthy))
		if !msg.Healthy {
			panic(errors.New("MQTT Actor is not healthy"))
		}
		// the discovered model follows the selected device
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.thermoElectricActor, domain.ThermoElectricGetStatusRequest{}, 2*time.Second), func(err error) any {
			return domain.ThermoElectricGetStatusResponse{
				ThermoElectricResponseMixIn: domain.ThermoElectricResponseMixIn{
					ActorResponseMixIn: domain.ResponseWithError(err),
				},
			}
		})
		state.behavior.Become(state.WaitingStatusReceive)
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("hadiscovery@healthcheck: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) WaitingStatusReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ThermoElectricGetStatusResponse:
		if msg.HasResponseError() {
			panic(msg.GetResponseError())
		}
		state.logger.Debug("hadiscovery@status: ThermoElectricGetStatusResponse", zap.String("device", msg.Status.Device))
		state.publishDiscovery(ctx, domain.Device(msg.Status.Device))
		state.behavior.Become(state.PublishedReceive)
		state.stash.UnstashAll(ctx)
	case deviceSelected:
		// the status response carries the device
	default:
		state.logger.Debug("hadiscovery@status: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

// PublishedReceive republishes discovery when the device model changes.
func (state *HADiscoveryActor) PublishedReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case deviceSelected:
		if msg.device != state.device {
			state.logger.Debug("hadiscovery@published: device changed", zap.String("device", msg.device.String()))
			state.publishDiscovery(ctx, msg.device)
		}
	default:
		state.logger.Debug("hadiscovery@published: default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

func (state *HADiscoveryActor) publishDiscovery(ctx actor.Context, device domain.Device) {
	state.device = device

	var sensors []domain.GenericSensor

	bridgeDevice := domain.BridgeDevice(state.config.MQTT.BaseTopic)
	sensors = append(sensors, domain.BridgeSensors(bridgeDevice)...)

	tecDevice := domain.ThermoElectricDevice(state.config.MQTT.BaseTopic, device)
	tecDevice.ViaDevice = bridgeDevice.Id
	tecSensors := domain.ThermoElectricSensors(tecDevice)
	for i := range tecSensors {
		if i > 0 {
			tecSensors[i].Device = domain.IdDevice(tecDevice)
		}
		sensors = append(sensors, tecSensors[i])
	}

	ctx.Send(state.mqttActor, domain.PublishDiscoveryRequest{
		Sensors:      sensors,
		InputNumbers: domain.ThermoElectricInputNumbers(domain.IdDevice(tecDevice), state.config.ThermoElectric.TargetQc),
		Selects:      domain.ThermoElectricSelects(domain.IdDevice(tecDevice)),
	})
}

func (state *HADiscoveryActor) subscribeDeviceChanges(ctx actor.Context) {
	if state.eventStream == nil || state.eventStreamSub != nil {
		return
	}
	root, self := ctx.ActorSystem().Root, ctx.Self()
	state.eventStreamSub = state.eventStream.SubscribeWithPredicate(func(value any) {
		root.Send(self, deviceSelected{device: domain.Device(value.(domain.SelectSensorUpdateEvent).Value)})
	}, func(value any) bool {
		ev, ok := value.(domain.SelectSensorUpdateEvent)
		return ok && ev.Id == domain.SELECT_ID_DEVICE
	})
}

func (state *HADiscoveryActor) unsubscribe() {
	if state.eventStreamSub != nil {
		state.eventStream.Unsubscribe(state.eventStreamSub)
		state.eventStreamSub = nil
	}
}
