package port

import (
	"github.com/berfenger/tec2mqtt/internal/core/domain"
)

// StatusPublisher receives the status snapshot after every successful state update.
type StatusPublisher interface {
	PublishStatus(status domain.Status)
}

// StatusPublisherFunc adapts a plain function to StatusPublisher.
type StatusPublisherFunc func(status domain.Status)

func (f StatusPublisherFunc) PublishStatus(status domain.Status) {
	f(status)
}

type OperatingPointSolver interface {
	Qc(current float64) float64
	Solve(targetQc float64) (domain.OperatingPoint, error)
	Imax() float64
	Iopt() float64
}

// UpdateHandler is the set of update functions an event dispatcher calls.
type UpdateHandler interface {
	UpdateV(values domain.UpdateValues) bool
	UpdateI(values domain.UpdateValues) bool
	UpdateVI(values domain.UpdateValues) bool
	UpdateTemperatures(values domain.UpdateValues) bool
	UpdateTemperaturesConstantQc(values domain.UpdateValues) (*domain.OperatingPoint, error)
}
