package actorutil

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/berfenger/tec2mqtt/internal/mqtt"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/lmittmann/tint"
	"go.uber.org/zap"
)

func PipeToSelfWithRecover(ctx actor.Context, future *actor.Future, mapFn func(error) any) {
	ctx.ReenterAfter(future, func(msg any, err error) {
		if err != nil {
			ctx.Send(ctx.Self(), mapFn(err))
			return
		}
		ctx.Send(ctx.Self(), msg)
	})
}

func NewActorSystemWithZapLogger(logger *zap.Logger) *actor.ActorSystem {
	stdOutLogger := zap.NewStdLog(logger)

	var slogLevel slog.Level = slog.LevelInfo

	switch logger.Level() {
	case zap.DebugLevel:
		slogLevel = slog.LevelDebug
	case zap.InfoLevel:
		slogLevel = slog.LevelInfo
	case zap.WarnLevel:
		slogLevel = slog.LevelWarn
	case zap.ErrorLevel:
		slogLevel = slog.LevelError
	case zap.PanicLevel:
		slogLevel = slog.LevelError
	}

	return actor.NewActorSystem(actor.WithLoggerFactory(func(system *actor.ActorSystem) *slog.Logger {

		// create a new logger
		return slog.New(tint.NewHandler(stdOutLogger.Writer(), &tint.Options{
			Level:      slogLevel,
			TimeFormat: time.DateTime,
		}))
	}))
}

func ActorLogger(actorName string, logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("actor", actorName))
}

// ParsedMQTTCommandToCommand maps an inbound MQTT command to the thermoelectric request it carries.
// Commands addressed to unknown entities yield a nil request.
func ParsedMQTTCommandToCommand(cmd mqtt.ParsedMQTTCommand) (domain.ActorRequest, error) {
	switch cmd.Command {
	case mqtt.COMMAND_UPDATE:
		kind, ok := domain.ParseUpdateKind(cmd.DeviceId)
		if !ok {
			return nil, fmt.Errorf("unknown update kind %q", cmd.DeviceId)
		}
		values, err := mqtt.ParseUpdateValues(cmd.Payload)
		if err != nil {
			return nil, err
		}
		return domain.ThermoElectricUpdateRequest{
			Kind:   kind,
			Values: values,
		}, nil
	case mqtt.COMMAND_SELECT:
		if cmd.DeviceId == domain.SELECT_ID_DEVICE {
			return domain.ThermoElectricSelectDeviceRequest{
				Name: strings.TrimSpace(cmd.Payload),
			}, nil
		}
	case mqtt.COMMAND_NUMBER:
		if cmd.DeviceId == domain.INPUT_NUMBER_ID_TARGET_QC {
			value, err := strconv.ParseFloat(cmd.Payload, 64)
			if err != nil {
				return nil, err
			}
			return domain.ThermoElectricSetTargetQcRequest{
				Qc: value,
			}, nil
		}
	}
	return nil, nil
}
