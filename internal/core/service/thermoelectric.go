package service

import (
	"time"

	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/berfenger/tec2mqtt/internal/core/port"
)

const (
	DEFAULT_STAGES      = 30
	DEFAULT_TEMPERATURE = 295.0
)

// ThermoElectric holds the live state of one cooler.
// It is not safe for concurrent use; a single owner (ThermoElectricActor) serializes access.
type ThermoElectric struct {
	stages    int
	device    domain.Device
	tc        float64
	th        float64
	tcUpdated time.Time
	thUpdated time.Time
	i         float64
	v         float64
	solved    solveCache
	model     MaterialPropertyModel
	publisher port.StatusPublisher
	now       func() time.Time
}

// results of the last Solve call, kept until the next one
type solveCache struct {
	qc    float64
	roots [2]float64
	i     float64
	v     float64
}

func NewThermoElectric(stages int, device domain.Device, publisher port.StatusPublisher) *ThermoElectric {
	if stages <= 0 {
		stages = DEFAULT_STAGES
	}
	if device == "" {
		device = domain.DEFAULT_DEVICE
	}
	t := &ThermoElectric{
		stages:    stages,
		device:    device,
		publisher: publisher,
		now:       time.Now,
	}
	t.SetTc(DEFAULT_TEMPERATURE)
	t.SetTh(DEFAULT_TEMPERATURE)
	return t
}

func (t *ThermoElectric) Stages() int {
	return t.stages
}

func (t *ThermoElectric) Device() domain.Device {
	return t.device
}

// G is the geometry factor of the selected device.
func (t *ThermoElectric) G() float64 {
	return t.device.GeometryFactor()
}

func (t *ThermoElectric) SelectDevice(name string) error {
	device, err := domain.ParseDevice(name)
	if err != nil {
		return err
	}
	t.device = device
	return nil
}

func (t *ThermoElectric) Tc() float64 {
	return t.tc
}

func (t *ThermoElectric) Th() float64 {
	return t.th
}

func (t *ThermoElectric) SetTc(value float64) {
	t.tc = value
	t.tcUpdated = t.now()
}

func (t *ThermoElectric) SetTh(value float64) {
	t.th = value
	t.thUpdated = t.now()
}

func (t *ThermoElectric) TAvg() float64 {
	return (t.tc + t.th) / 2
}

func (t *ThermoElectric) TDelta() float64 {
	return t.th - t.tc
}

// Properties evaluates the material fits at the current average temperature.
func (t *ThermoElectric) Properties() MaterialProperties {
	return t.model.Properties(t.TAvg())
}

func (t *ThermoElectric) Current() float64 {
	return t.i
}

func (t *ThermoElectric) Voltage() float64 {
	return t.v
}

// Apply writes every non nil field and publishes the resulting status.
func (t *ThermoElectric) Apply(values domain.ApplyValues) {
	if values.V != nil {
		t.v = *values.V
	}
	if values.I != nil {
		t.i = *values.I
	}
	if values.Tc != nil {
		t.SetTc(*values.Tc)
	}
	if values.Th != nil {
		t.SetTh(*values.Th)
	}
	if t.publisher != nil {
		t.publisher.PublishStatus(t.Status())
	}
}

func (t *ThermoElectric) Status() domain.Status {
	p := t.Properties()
	qc := t.Qc(t.i)
	return domain.Status{
		Stages:           t.stages,
		Device:           t.device.String(),
		G:                t.G(),
		AppliedI:         t.i,
		AppliedV:         t.v,
		Imax:             t.Imax(),
		Iopt:             t.Iopt(),
		Tc:               t.tc,
		Th:               t.th,
		TAvg:             t.TAvg(),
		TDelta:           t.TDelta(),
		Rho:              p.Rho,
		Alpha:            p.Alpha,
		Kappa:            p.Kappa,
		Zeta:             p.Zeta,
		Qc:               qc,
		Power:            t.i*t.v + qc,
		DesiredQc:        t.solved.qc,
		CalculatedIRoots: t.solved.roots,
		CalculatedI:      t.solved.i,
		CalculatedV:      t.solved.v,
		TcUpdated:        t.tcUpdated,
		ThUpdated:        t.thUpdated,
	}
}
