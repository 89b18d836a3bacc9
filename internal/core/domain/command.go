package domain

import "fmt"

// ThermoElectricRequest

type ThermoElectricRequest interface {
	ActorRequest
	ThermoElectricCommand() string
}

type ThermoElectricRequestMixIn struct {
	ActorRequestMixIn
}

func (r ThermoElectricRequestMixIn) ThermoElectricCommand() string {
	return fmt.Sprintf("%T", r)
}

// ThermoElectricResponse

type ThermoElectricResponse interface {
	ActorResponse
	ThermoElectricResponse() string
}

type ThermoElectricResponseMixIn struct {
	ActorResponseMixIn
}

func (r ThermoElectricResponseMixIn) ThermoElectricResponse() string {
	return fmt.Sprintf("%T", r)
}

// ThermoElectric commands

type ThermoElectricApplyRequest struct {
	ThermoElectricRequestMixIn
	Values ApplyValues
}

type ThermoElectricApplyResponse struct {
	ThermoElectricResponseMixIn
	Status Status
}

// ThermoElectricUpdateRequest carries a raw inbound update routed to one of the update handlers.
type ThermoElectricUpdateRequest struct {
	ThermoElectricRequestMixIn
	Kind   UpdateKind
	Values UpdateValues
}

type ThermoElectricUpdateResponse struct {
	ThermoElectricResponseMixIn
	Applied        bool
	OperatingPoint *OperatingPoint
}

type ThermoElectricSelectDeviceRequest struct {
	ThermoElectricRequestMixIn
	Name string
}

type ThermoElectricSelectDeviceResponse struct {
	ThermoElectricResponseMixIn
	Device Device
}

type ThermoElectricSetTargetQcRequest struct {
	ThermoElectricRequestMixIn
	Qc float64
}

type ThermoElectricSetTargetQcResponse struct {
	ThermoElectricResponseMixIn
	Qc float64
}

type ThermoElectricSolveRequest struct {
	ThermoElectricRequestMixIn
	Qc float64
}

type ThermoElectricSolveResponse struct {
	ThermoElectricResponseMixIn
	OperatingPoint OperatingPoint
}

type ThermoElectricGetStatusRequest struct {
	ThermoElectricRequestMixIn
}

type ThermoElectricGetStatusResponse struct {
	ThermoElectricResponseMixIn
	Status Status
}

// ensure interface compliance
var _ ThermoElectricRequest = (*ThermoElectricApplyRequest)(nil)
var _ ThermoElectricResponse = (*ThermoElectricSolveResponse)(nil)
