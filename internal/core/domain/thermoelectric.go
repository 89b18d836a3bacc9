package domain

import "time"

// ApplyValues carries the fields of a state update. Nil fields are left untouched.
type ApplyValues struct {
	V  *float64
	I  *float64
	Tc *float64
	Th *float64
}

// UpdateValues is the decoded payload of an inbound update, keyed by field name.
type UpdateValues map[string]float64

func (v UpdateValues) Get(field string) (float64, bool) {
	if v == nil || field == "" {
		return 0, false
	}
	value, ok := v[field]
	return value, ok
}

type UpdateKind string

const (
	UPDATE_KIND_VOLTAGE      UpdateKind = "voltage"
	UPDATE_KIND_CURRENT      UpdateKind = "current"
	UPDATE_KIND_VI           UpdateKind = "vi"
	UPDATE_KIND_TEMPERATURES UpdateKind = "temperatures"
)

func ParseUpdateKind(kind string) (UpdateKind, bool) {
	switch k := UpdateKind(kind); k {
	case UPDATE_KIND_VOLTAGE, UPDATE_KIND_CURRENT, UPDATE_KIND_VI, UPDATE_KIND_TEMPERATURES:
		return k, true
	}
	return "", false
}

// OperatingPoint is the result of an inverse solve.
type OperatingPoint struct {
	Qc      float64 `json:"qc"`
	Current float64 `json:"current"`
	Voltage float64 `json:"voltage"`
	// roots of the heat balance quadratic, (-b+sqrt(D))/2a and (-b-sqrt(D))/2a
	RootP float64 `json:"root_p"`
	RootN float64 `json:"root_n"`
}

// Status is a point in time snapshot of a thermoelectric cooler.
type Status struct {
	Stages    int     `json:"n"`
	Device    string  `json:"device"`
	G         float64 `json:"g"`
	AppliedI  float64 `json:"i"`
	AppliedV  float64 `json:"v"`
	Imax      float64 `json:"imax"`
	Iopt      float64 `json:"iopt"`
	Tc        float64 `json:"tc"`
	Th        float64 `json:"th"`
	TAvg      float64 `json:"t_avg"`
	TDelta    float64 `json:"t_delta"`
	Rho       float64 `json:"rho"`
	Alpha     float64 `json:"alpha"`
	Kappa     float64 `json:"kappa"`
	Zeta      float64 `json:"zeta"`
	Qc        float64 `json:"qc"`
	Power     float64 `json:"power"`
	DesiredQc float64 `json:"desired_qc"`
	// results of the last solve
	CalculatedIRoots [2]float64 `json:"calculated_i_roots"`
	CalculatedI      float64    `json:"calculated_i"`
	CalculatedV      float64    `json:"calculated_v"`
	TcUpdated        time.Time  `json:"tc_updated"`
	ThUpdated        time.Time  `json:"th_updated"`
}
