package actor

import (
	"fmt"
	"time"

	"github.com/berfenger/tec2mqtt/internal/config"
	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/berfenger/tec2mqtt/internal/core/events"
	"github.com/berfenger/tec2mqtt/internal/core/port"
	"github.com/berfenger/tec2mqtt/internal/core/service"
	. "github.com/berfenger/tec2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/asynkron/protoactor-go/scheduler"
	"go.uber.org/zap"
)

// ThermoElectricActor is the single owner of the cooler state.
type ThermoElectricActor struct {
	ActorWithStates
	config       *config.Config
	stash        *Stash
	scheduler    *scheduler.TimerScheduler
	cancelStatus scheduler.CancelFunc
	eventStream  *eventstream.EventStream
	tec          *service.ThermoElectric
	updater      *service.ThermoElectricUpdater

	logger *zap.Logger
}

type statusTick struct {
}

func NewThermoElectricActor(config *config.Config, eventStream *eventstream.EventStream, logger *zap.Logger) *ThermoElectricActor {
	act := &ThermoElectricActor{
		config:      config,
		stash:       &Stash{},
		eventStream: eventStream,
		logger:      ActorLogger(domain.ACTOR_ID_THERMOELECTRIC, logger),
		ActorWithStates: ActorWithStates{
			Behavior: actor.NewBehavior(),
		},
	}
	act.Become(TEStartingState{
		actor: act,
	})
	return act
}

func (state *ThermoElectricActor) Receive(context actor.Context) {
	state.Behavior.Receive(context)
}

// Starting state

type TEStartingState struct {
	actor *ThermoElectricActor
}

func (state TEStartingState) Name() string {
	return "starting"
}

func (state TEStartingState) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.actor.logger.Debug("thermoelectric@starting started")

		if err := state.actor.init(); err != nil {
			state.actor.logger.Error("thermoelectric@starting init error", zap.Error(err))
			panic(err)
		}

		if interval := state.actor.config.ThermoElectric.StatusIntervalMillis; interval > 0 {
			d := time.Duration(interval) * time.Millisecond
			state.actor.scheduler = scheduler.NewTimerScheduler(ctx)
			state.actor.cancelStatus = state.actor.scheduler.SendRepeatedly(d, d, ctx.Self(), statusTick{})
		}

		state.actor.publishStatus(state.actor.tec.Status())
		state.actor.publishEvents(events.TargetQcUpdateEvents(state.actor.updater.TargetQc))

		state.actor.Become(TEIdleState{
			actor: state.actor,
		})
		state.actor.stash.UnstashAll(ctx)
	case *actor.Restarting:
		state.actor.stopStatusTicks()
	default:
		state.actor.logger.Debug("thermoelectric@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.actor.stash.Stash(ctx, msg)
	}
}

// Idle state

type TEIdleState struct {
	actor *ThermoElectricActor
}

func (state TEIdleState) Name() string {
	return "idle"
}

func (state TEIdleState) Receive(ctx actor.Context) {
	act := state.actor
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		act.logger.Debug("thermoelectric@idle: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_THERMOELECTRIC,
			Healthy: true,
			State:   act.StateName(),
		})
	case statusTick:
		act.publishStatus(act.tec.Status())
	case domain.ThermoElectricApplyRequest:
		act.logger.Debug("thermoelectric@idle: apply", zap.Any("values", msg.Values))
		act.tec.Apply(msg.Values)
		ForRequest(msg).Respond(ctx, domain.ThermoElectricApplyResponse{
			Status: act.tec.Status(),
		})
	case domain.ThermoElectricUpdateRequest:
		act.logger.Debug("thermoelectric@idle: update", zap.String("kind", string(msg.Kind)), zap.Any("values", msg.Values))
		ForRequest(msg).Respond(ctx, act.update(msg))
	case domain.ThermoElectricSelectDeviceRequest:
		act.logger.Sugar().Debugf("thermoelectric@idle: select device %s", msg.Name)
		if err := act.tec.SelectDevice(msg.Name); err != nil {
			act.logger.Warn("thermoelectric@idle: select device rejected", zap.Error(err))
			ForRequest(msg).Respond(ctx, domain.ThermoElectricSelectDeviceResponse{
				ThermoElectricResponseMixIn: domain.ThermoElectricResponseMixIn{ActorResponseMixIn: domain.ResponseWithError(err)},
				Device:                      act.tec.Device(),
			})
			return
		}
		act.publishStatus(act.tec.Status())
		ForRequest(msg).Respond(ctx, domain.ThermoElectricSelectDeviceResponse{
			Device: act.tec.Device(),
		})
	case domain.ThermoElectricSetTargetQcRequest:
		act.logger.Sugar().Debugf("thermoelectric@idle: set target qc %f", msg.Qc)
		act.updater.TargetQc = msg.Qc
		act.publishEvents(events.TargetQcUpdateEvents(msg.Qc))
		ForRequest(msg).Respond(ctx, domain.ThermoElectricSetTargetQcResponse{
			Qc: msg.Qc,
		})
	case domain.ThermoElectricSolveRequest:
		act.logger.Sugar().Debugf("thermoelectric@idle: solve %f", msg.Qc)
		op, err := act.tec.Solve(msg.Qc)
		if err != nil {
			act.logger.Warn("thermoelectric@idle: solve failed", zap.Error(err))
		}
		ForRequest(msg).Respond(ctx, domain.ThermoElectricSolveResponse{
			ThermoElectricResponseMixIn: domain.ThermoElectricResponseMixIn{ActorResponseMixIn: domain.ResponseWithError(err)},
			OperatingPoint:              op,
		})
	case domain.ThermoElectricGetStatusRequest:
		ForRequest(msg).Respond(ctx, domain.ThermoElectricGetStatusResponse{
			Status: act.tec.Status(),
		})
	case *actor.Stopping:
		act.stopStatusTicks()
	case *actor.Restarting:
		// the pid survives a restart, and so would the timer
		act.stopStatusTicks()
	default:
		act.logger.Debug("thermoelectric@idle: recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

// Other actor function helpers

func (state *ThermoElectricActor) init() error {
	cfg := state.config
	device, err := domain.ParseDevice(cfg.ThermoElectric.Device)
	if err != nil {
		return err
	}

	publisher := port.StatusPublisherFunc(state.publishStatus)
	state.tec = service.NewThermoElectric(cfg.ThermoElectric.Stages, device, publisher)
	state.tec.SetTc(cfg.ThermoElectric.InitialTc)
	state.tec.SetTh(cfg.ThermoElectric.InitialTh)

	bindings := &service.FieldBindings{}
	if err := bindings.BindVoltage(cfg.Fields.Voltage); err != nil {
		return err
	}
	if err := bindings.BindCurrent(cfg.Fields.Current); err != nil {
		return err
	}
	if err := bindings.BindTemperatures(cfg.Fields.ColdTemperature, cfg.Fields.HotTemperature); err != nil {
		return err
	}
	state.updater = service.NewThermoElectricUpdater(state.tec, bindings, cfg.ThermoElectric.TargetQc, state.logger)
	return nil
}

func (state *ThermoElectricActor) update(msg domain.ThermoElectricUpdateRequest) domain.ThermoElectricUpdateResponse {
	var resp domain.ThermoElectricUpdateResponse
	switch msg.Kind {
	case domain.UPDATE_KIND_VOLTAGE:
		resp.Applied = state.updater.UpdateV(msg.Values)
	case domain.UPDATE_KIND_CURRENT:
		resp.Applied = state.updater.UpdateI(msg.Values)
	case domain.UPDATE_KIND_VI:
		resp.Applied = state.updater.UpdateVI(msg.Values)
	case domain.UPDATE_KIND_TEMPERATURES:
		if !state.config.ThermoElectric.ConstantQc {
			resp.Applied = state.updater.UpdateTemperatures(msg.Values)
			break
		}
		op, err := state.updater.UpdateTemperaturesConstantQc(msg.Values)
		resp.Applied = op != nil || err != nil
		resp.OperatingPoint = op
		resp.ResponseError = err
		if resp.Applied {
			// status published by the apply predates the solve
			state.publishStatus(state.tec.Status())
		}
		if err != nil {
			state.logger.Warn("thermoelectric@idle: constant qc solve failed", zap.Error(err))
		} else if op != nil {
			state.publishEvents(events.OperatingPointUpdateEvents(*op))
		}
	default:
		resp.ResponseError = fmt.Errorf("unknown update kind %q", msg.Kind)
	}
	return resp
}

func (state *ThermoElectricActor) stopStatusTicks() {
	if state.cancelStatus != nil {
		state.cancelStatus()
		state.cancelStatus = nil
	}
}

func (state *ThermoElectricActor) publishStatus(status domain.Status) {
	state.publishEvents(events.StatusToUpdateEvents(status))
}

func (state *ThermoElectricActor) publishEvents(evs []any) {
	for _, ev := range evs {
		state.eventStream.Publish(ev)
	}
}
