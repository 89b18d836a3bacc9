package service

import (
	"fmt"
	"math"

	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/berfenger/tec2mqtt/internal/core/port"
)

// Qc is the heat pumped from the cold side when the given current is applied.
func (t *ThermoElectric) Qc(current float64) float64 {
	p := t.Properties()
	g := t.G()
	n := float64(t.stages)
	return 2 * n * (p.Alpha*current*t.tc - (p.Rho*current*current)/(2*g) - p.Kappa*t.TDelta()*g)
}

// Solve finds the current and voltage that pump targetQc from the cold side.
//
// Qc(I) = targetQc is the quadratic a*I^2 + b*I + c = 0. When both roots are
// positive the smaller one is used. The target and the roots are cached before
// the root is selected, the current and voltage only on success.
func (t *ThermoElectric) Solve(targetQc float64) (domain.OperatingPoint, error) {
	p := t.Properties()
	g := t.G()
	n := float64(t.stages)

	a := p.Rho / (2 * g)
	b := -p.Alpha * t.tc
	c := p.Kappa*t.TDelta()*g + targetQc/(2*n)

	t.solved.qc = targetQc
	op := domain.OperatingPoint{Qc: targetQc}

	disc := b*b - 4*a*c
	if !(disc >= 0) {
		return op, fmt.Errorf("%w (D = %g, Qc = %g)", domain.ErrNoRealRoot, disc, targetQc)
	}

	sq := math.Sqrt(disc)
	op.RootP = (-b + sq) / (2 * a)
	op.RootN = (-b - sq) / (2 * a)
	t.solved.roots = [2]float64{op.RootP, op.RootN}

	current, err := selectCurrent(op.RootP, op.RootN)
	if err != nil {
		return op, err
	}

	op.Current = current
	op.Voltage = 2 * n * ((current*p.Rho)/g + p.Alpha*t.TDelta())
	t.solved.i = op.Current
	t.solved.v = op.Voltage
	return op, nil
}

// only currents in the cooling direction are meaningful
func selectCurrent(ip, in float64) (float64, error) {
	switch {
	case ip > 0 && in > 0:
		return math.Min(ip, in), nil
	case ip > 0:
		return ip, nil
	case in > 0:
		return in, nil
	}
	return 0, fmt.Errorf("%w (roots %g, %g)", domain.ErrUnachievableOperatingPoint, ip, in)
}

// Imax is the current above which the cooling capacity degrades.
func (t *ThermoElectric) Imax() float64 {
	p := t.Properties()
	return (p.Kappa * t.G() / p.Alpha) * (math.Sqrt(1+2*p.Zeta*t.th) - 1)
}

// Iopt is the current of maximum efficiency at the current temperature split.
func (t *ThermoElectric) Iopt() float64 {
	p := t.Properties()
	tAvg := t.TAvg()
	return (p.Kappa * t.G() * t.TDelta() * (1 + math.Sqrt(1+p.Zeta*tAvg))) / (p.Alpha * tAvg)
}

// ensure interface compliance
var _ port.OperatingPointSolver = (*ThermoElectric)(nil)
