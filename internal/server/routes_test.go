package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adactor "github.com/berfenger/tec2mqtt/internal/adapter/actor"
	coreactor "github.com/berfenger/tec2mqtt/internal/core/actor"
	"github.com/berfenger/tec2mqtt/internal/core/domain"
	"github.com/berfenger/tec2mqtt/internal/util"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testServer(t *testing.T) (http.Handler, func()) {
	as := actor.NewActorSystem()
	cfg := util.LoadTestConfig()
	logger := zap.NewNop()

	props := actor.PropsFromProducer(func() actor.Actor {
		return coreactor.NewMasterOfPuppetsActor(cfg, func(es *eventstream.EventStream) *adactor.MQTTActor {
			return adactor.NewTestMQTTActor(&cfg, es, nil, logger)
		}, logger)
	})
	pid, err := as.Root.SpawnNamed(props, domain.ACTOR_ID_MASTER)
	require.NoError(t, err)

	s := &Server{
		rootContext: as.Root,
		masterActor: pid,
		timeout:     2 * time.Second,
	}
	return s.RegisterRoutes(), func() {
		as.Root.Stop(pid)
		as.Shutdown()
	}
}

func do(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	handler, stop := testServer(t)
	defer stop()

	t.Run("healthcheck", func(t *testing.T) {
		rec := do(handler, http.MethodGet, "/healthcheck", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "health_check: OK", rec.Body.String())
	})

	t.Run("status", func(t *testing.T) {
		rec := do(handler, http.MethodGet, "/status", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var status domain.Status
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, 30, status.Stages)
		assert.Equal(t, "ot15xx05", status.Device)
		assert.Equal(t, 295.0, status.Tc)
	})

	t.Run("solve", func(t *testing.T) {
		rec := do(handler, http.MethodPost, "/solve", `{"qc": 1.5}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var op domain.OperatingPoint
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &op))
		assert.Equal(t, 1.5, op.Qc)
		assert.Greater(t, op.Current, 0.0)
		assert.Greater(t, op.Voltage, 0.0)
	})

	t.Run("solve unachievable", func(t *testing.T) {
		rec := do(handler, http.MethodPost, "/solve", `{"qc": 1000}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("solve without qc", func(t *testing.T) {
		rec := do(handler, http.MethodPost, "/solve", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("apply", func(t *testing.T) {
		rec := do(handler, http.MethodPut, "/apply", `{"v": 2.5, "i": 1.2}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var status domain.Status
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, 1.2, status.AppliedI)
		assert.Equal(t, 2.5, status.AppliedV)
		assert.Equal(t, 295.0, status.Tc)

		// absent fields keep their values
		rec = do(handler, http.MethodPut, "/apply", `{"tc": 290}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, 290.0, status.Tc)
		assert.Equal(t, 295.0, status.Th)
		assert.Equal(t, 1.2, status.AppliedI)
		assert.Equal(t, 2.5, status.AppliedV)

		rec = do(handler, http.MethodPut, "/apply", `{"i": "high"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("select device", func(t *testing.T) {
		rec := do(handler, http.MethodPut, "/device", `{"device": "ot20xx04"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"device": "ot20xx04"}`, rec.Body.String())

		rec = do(handler, http.MethodPut, "/device", `{"device": "bogus"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(handler, http.MethodGet, "/status", "")
		var status domain.Status
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, "ot20xx04", status.Device)
	})
}
