package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/berfenger/tec2mqtt/internal/core/domain"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type solveBody struct {
	Qc *float64 `json:"qc"`
}

// absent fields are left untouched
type applyBody struct {
	V  *float64 `json:"v"`
	I  *float64 `json:"i"`
	Tc *float64 `json:"tc"`
	Th *float64 `json:"th"`
}

type deviceBody struct {
	Device string `json:"device"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	if s.httpLog {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())

	e.GET("/healthcheck", s.HealthCheckHandler)
	e.GET("/status", s.StatusHandler)
	e.POST("/solve", s.SolveHandler)
	e.PUT("/device", s.SelectDeviceHandler)
	e.PUT("/apply", s.ApplyHandler)

	return e
}

func (s *Server) HealthCheckHandler(c echo.Context) error {
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.ActorHealthRequest{}, 10*time.Second).Result()
	if err != nil {
		return c.String(http.StatusServiceUnavailable, "health_check: FAIL")
	}
	if response, ok := res.(domain.ActorHealthResponse); ok && response.Healthy {
		return c.String(http.StatusOK, "health_check: OK")
	}
	return c.String(http.StatusServiceUnavailable, "health_check: FAIL")
}

func (s *Server) StatusHandler(c echo.Context) error {
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.ThermoElectricGetStatusRequest{}, s.timeout).Result()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody{Error: err.Error()})
	}
	response, ok := res.(domain.ThermoElectricGetStatusResponse)
	if !ok {
		return c.JSON(http.StatusInternalServerError, errorBody{Error: "unexpected response"})
	}
	return c.JSON(http.StatusOK, response.Status)
}

// SolveHandler computes the operating point for a target Qc without applying it.
func (s *Server) SolveHandler(c echo.Context) error {
	var body solveBody
	if err := c.Bind(&body); err != nil || body.Qc == nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "body must be {\"qc\": <watts>}"})
	}
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.ThermoElectricSolveRequest{Qc: *body.Qc}, s.timeout).Result()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody{Error: err.Error()})
	}
	response, ok := res.(domain.ThermoElectricSolveResponse)
	if !ok {
		return c.JSON(http.StatusInternalServerError, errorBody{Error: "unexpected response"})
	}
	if response.HasResponseError() {
		if errors.Is(response.GetResponseError(), domain.ErrUnachievableOperatingPoint) {
			return c.JSON(http.StatusUnprocessableEntity, errorBody{Error: response.GetResponseError().Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorBody{Error: response.GetResponseError().Error()})
	}
	return c.JSON(http.StatusOK, response.OperatingPoint)
}

func (s *Server) SelectDeviceHandler(c echo.Context) error {
	var body deviceBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "body must be {\"device\": <name>}"})
	}
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.ThermoElectricSelectDeviceRequest{Name: body.Device}, s.timeout).Result()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody{Error: err.Error()})
	}
	response, ok := res.(domain.ThermoElectricSelectDeviceResponse)
	if !ok {
		return c.JSON(http.StatusInternalServerError, errorBody{Error: "unexpected response"})
	}
	if response.HasResponseError() {
		if errors.Is(response.GetResponseError(), domain.ErrInvalidDevice) {
			return c.JSON(http.StatusBadRequest, errorBody{Error: response.GetResponseError().Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorBody{Error: response.GetResponseError().Error()})
	}
	return c.JSON(http.StatusOK, deviceBody{Device: response.Device.String()})
}

func (s *Server) ApplyHandler(c echo.Context) error {
	var body applyBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "body must be {\"v\", \"i\", \"tc\", \"th\"} with numeric values"})
	}
	req := domain.ThermoElectricApplyRequest{
		Values: domain.ApplyValues{V: body.V, I: body.I, Tc: body.Tc, Th: body.Th},
	}
	res, err := s.rootContext.RequestFuture(s.masterActor, req, s.timeout).Result()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody{Error: err.Error()})
	}
	response, ok := res.(domain.ThermoElectricApplyResponse)
	if !ok {
		return c.JSON(http.StatusInternalServerError, errorBody{Error: "unexpected response"})
	}
	return c.JSON(http.StatusOK, response.Status)
}
