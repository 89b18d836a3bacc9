package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/berfenger/tec2mqtt/internal/core/port"
	"go.uber.org/zap"
)

// FieldBindings maps each update role to the payload field that carries it.
// A role can be bound once.
type FieldBindings struct {
	voltage         string
	current         string
	coldTemperature string
	hotTemperature  string
}

func (b *FieldBindings) BindVoltage(field string) error {
	return bind(&b.voltage, "voltage", field)
}

func (b *FieldBindings) BindCurrent(field string) error {
	return bind(&b.current, "current", field)
}

func (b *FieldBindings) BindTemperatures(tcField, thField string) error {
	if b.coldTemperature != "" || b.hotTemperature != "" {
		return fmt.Errorf("%w: temperatures already bound to %q/%q", domain.ErrDuplicateRegistration, b.coldTemperature, b.hotTemperature)
	}
	if tcField == "" || thField == "" {
		return errors.New("temperature field names cannot be empty")
	}
	b.coldTemperature = tcField
	b.hotTemperature = thField
	return nil
}

func (b *FieldBindings) Voltage() string {
	return b.voltage
}

func (b *FieldBindings) Current() string {
	return b.current
}

func (b *FieldBindings) Temperatures() (string, string) {
	return b.coldTemperature, b.hotTemperature
}

func bind(role *string, name, field string) error {
	if *role != "" {
		return fmt.Errorf("%w: %s already bound to %q", domain.ErrDuplicateRegistration, name, *role)
	}
	if field == "" {
		return fmt.Errorf("%s field name cannot be empty", name)
	}
	*role = field
	return nil
}

// ThermoElectricUpdater translates inbound update payloads into state updates.
// Payloads without the bound fields are dropped with a warning.
type ThermoElectricUpdater struct {
	TargetQc float64
	tec      *ThermoElectric
	bindings *FieldBindings
	logger   *zap.Logger
}

func NewThermoElectricUpdater(tec *ThermoElectric, bindings *FieldBindings, targetQc float64, logger *zap.Logger) *ThermoElectricUpdater {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ThermoElectricUpdater{
		TargetQc: targetQc,
		tec:      tec,
		bindings: bindings,
		logger:   logger,
	}
}

func (u *ThermoElectricUpdater) UpdateV(values domain.UpdateValues) bool {
	v, ok := values.Get(u.bindings.voltage)
	if !ok {
		u.missing("update_v", values, u.bindings.voltage)
		return false
	}
	u.tec.Apply(domain.ApplyValues{V: &v})
	return true
}

func (u *ThermoElectricUpdater) UpdateI(values domain.UpdateValues) bool {
	i, ok := values.Get(u.bindings.current)
	if !ok {
		u.missing("update_i", values, u.bindings.current)
		return false
	}
	u.tec.Apply(domain.ApplyValues{I: &i})
	return true
}

// UpdateVI applies voltage and current together. Negative readings are clamped to zero.
func (u *ThermoElectricUpdater) UpdateVI(values domain.UpdateValues) bool {
	v, vok := values.Get(u.bindings.voltage)
	i, iok := values.Get(u.bindings.current)
	if !vok || !iok {
		u.missing("update_vi", values, u.bindings.voltage, u.bindings.current)
		return false
	}
	v = math.Max(0, v)
	i = math.Max(0, i)
	u.tec.Apply(domain.ApplyValues{V: &v, I: &i})
	return true
}

func (u *ThermoElectricUpdater) UpdateTemperatures(values domain.UpdateValues) bool {
	tc, tcok := values.Get(u.bindings.coldTemperature)
	th, thok := values.Get(u.bindings.hotTemperature)
	if !tcok || !thok {
		u.missing("update_temperatures", values, u.bindings.coldTemperature, u.bindings.hotTemperature)
		return false
	}
	u.tec.Apply(domain.ApplyValues{Tc: &tc, Th: &th})
	return true
}

// UpdateTemperaturesConstantQc applies the temperatures and solves for TargetQc.
// A dropped update returns a nil operating point and no error.
func (u *ThermoElectricUpdater) UpdateTemperaturesConstantQc(values domain.UpdateValues) (*domain.OperatingPoint, error) {
	if !u.UpdateTemperatures(values) {
		return nil, nil
	}
	op, err := u.tec.Solve(u.TargetQc)
	if err != nil {
		return nil, err
	}
	return &op, nil
}

func (u *ThermoElectricUpdater) missing(update string, values domain.UpdateValues, fields ...string) {
	u.logger.Warn(update+": event dropped",
		zap.Error(domain.ErrMissingField),
		zap.Strings("fields", fields),
		zap.Any("values", values))
}

// ensure interface compliance
var _ port.UpdateHandler = (*ThermoElectricUpdater)(nil)
