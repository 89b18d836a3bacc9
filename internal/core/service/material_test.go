package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialPropertiesNonNegativeInFitRange(t *testing.T) {
	model := MaterialPropertyModel{}
	for temp := MIN_FIT_TEMPERATURE; temp <= MAX_FIT_TEMPERATURE; temp += 0.5 {
		p := model.Properties(temp)
		assert.GreaterOrEqual(t, p.Rho, 0.0, "rho at %.1f", temp)
		assert.GreaterOrEqual(t, p.Kappa, 0.0, "kappa at %.1f", temp)
		assert.GreaterOrEqual(t, p.Zeta, 0.0, "zeta at %.1f", temp)
		assert.GreaterOrEqual(t, p.Alpha, 0.0, "alpha at %.1f", temp)
	}
}

func TestMaterialPropertiesAt300K(t *testing.T) {
	model := MaterialPropertyModel{}
	p := model.Properties(300)

	assert.InEpsilon(t, 1.032e-3, p.Rho, 0.01)
	assert.InEpsilon(t, 1.547e-2, p.Kappa, 0.01)
	assert.InEpsilon(t, 2.595e-3, p.Zeta, 0.01)
	assert.InEpsilon(t, 2.035e-4, p.Alpha, 0.01)

	// single property accessors agree with the batch
	assert.Equal(t, p.Rho, model.Rho(300))
	assert.Equal(t, p.Kappa, model.Kappa(300))
	assert.Equal(t, p.Zeta, model.Zeta(300))
	assert.InDelta(t, p.Alpha, model.Alpha(300), 1e-15)
}
