package service

import "math"

// cubic fits a*T + b*T^2 + c*T^3 + d of the vendor tables,
// tabulated at T = 273, 300, 325, 350, 375, 400, 425, 450, 475 K
type cubicFit struct {
	a, b, c, d float64
}

func (f cubicFit) at(t float64) float64 {
	return f.a*t + f.b*t*t + f.c*t*t*t + f.d
}

var (
	rhoFit   = cubicFit{a: -3.49762867e-06, b: 2.46967391e-08, c: -2.50719921e-11, d: 5.35273806e-04}
	kappaFit = cubicFit{a: 6.06270280e-06, b: -2.30792066e-07, c: 4.43869633e-10, d: 2.24397747e-02}
	zetaFit  = cubicFit{a: 1.82845995e-04, b: -5.04512226e-07, c: 4.33203649e-10, d: -1.85492384e-02}
)

const (
	MIN_FIT_TEMPERATURE = 270.0
	MAX_FIT_TEMPERATURE = 480.0
)

// MaterialProperties of the thermoelectric legs at a given average temperature.
type MaterialProperties struct {
	Rho   float64
	Kappa float64
	Zeta  float64
	Alpha float64
}

// MaterialPropertyModel evaluates the material fits. It is stateless.
// Outside [MIN_FIT_TEMPERATURE, MAX_FIT_TEMPERATURE] values are returned as computed.
type MaterialPropertyModel struct{}

// Rho is the electrical resistivity.
func (MaterialPropertyModel) Rho(t float64) float64 {
	return rhoFit.at(t)
}

// Kappa is the thermal conductance.
func (MaterialPropertyModel) Kappa(t float64) float64 {
	return kappaFit.at(t)
}

// Zeta is the figure of merit.
func (MaterialPropertyModel) Zeta(t float64) float64 {
	return zetaFit.at(t)
}

// Alpha is the Seebeck coefficient, sqrt(rho*kappa*zeta).
func (m MaterialPropertyModel) Alpha(t float64) float64 {
	return math.Sqrt(m.Rho(t) * m.Kappa(t) * m.Zeta(t))
}

func (m MaterialPropertyModel) Properties(t float64) MaterialProperties {
	rho, kappa, zeta := m.Rho(t), m.Kappa(t), m.Zeta(t)
	return MaterialProperties{
		Rho:   rho,
		Kappa: kappa,
		Zeta:  zeta,
		Alpha: math.Sqrt(rho * kappa * zeta),
	}
}
