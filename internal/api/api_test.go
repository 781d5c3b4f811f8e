package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/auth"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/security"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/sim"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := auth.NewLocalProvider("test-secret")
	handlers := NewHandlers(storage.NewRunRegistry(), nil, 2)
	sec := security.NewMiddleware(security.Config{RequestsPerSecond: 1000, BurstSize: 1000})

	r := gin.New()
	SetupRoutes(r, handlers, auth.NewHandlers(provider), auth.NewMiddleware(provider), sec)

	// Log in as the default admin to get a bearer token for protected routes.
	body := bytes.NewBufferString(`{"username":"admin","password":"admin123"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Tokens auth.TokenPair `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Tokens.AccessToken)

	return r, login.Tokens.AccessToken
}

func doJSON(r *gin.Engine, token, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(r, "", http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRunSimulationRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(r, "", http.MethodPost, "/api/v1/simulations/fcfs", scheduleRequest{
		Processes: []sim.Process{{ID: "P1", BurstTime: 1}},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRunSimulationFCFS(t *testing.T) {
	r, token := newTestRouter(t)
	w := doJSON(r, token, http.MethodPost, "/api/v1/simulations/fcfs", scheduleRequest{
		Processes: []sim.Process{
			{ID: "P1", ArrivalTime: 0, BurstTime: 8},
			{ID: "P2", ArrivalTime: 1, BurstTime: 4},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RunID  string     `json:"run_id"`
		Result sim.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, sim.AlgorithmFCFS, resp.Result.Algorithm)
	assert.Equal(t, 12, resp.Result.TotalTime)

	// The run is retrievable from history.
	got := doJSON(r, token, http.MethodGet, "/api/v1/simulations/"+resp.RunID, nil)
	assert.Equal(t, http.StatusOK, got.Code)

	list := doJSON(r, token, http.MethodGet, "/api/v1/simulations", nil)
	assert.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), resp.RunID)
}

func TestRunSimulationTextFormat(t *testing.T) {
	r, token := newTestRouter(t)
	w := doJSON(r, token, http.MethodPost, "/api/v1/simulations/rr?format=text", scheduleRequest{
		Processes:   []sim.Process{{ID: "P1", ArrivalTime: 0, BurstTime: 4}},
		TimeQuantum: 2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gantt schedule")
}

func TestRunSimulationUnknownAlgorithm(t *testing.T) {
	r, token := newTestRouter(t)
	w := doJSON(r, token, http.MethodPost, "/api/v1/simulations/lottery", scheduleRequest{
		Processes: []sim.Process{{ID: "P1", BurstTime: 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown scheduling algorithm")
}

func TestRunSimulationRejectsInvalidBatch(t *testing.T) {
	r, token := newTestRouter(t)
	w := doJSON(r, token, http.MethodPost, "/api/v1/simulations/fcfs", scheduleRequest{
		Processes: []sim.Process{{ID: "P1", ArrivalTime: -1, BurstTime: 0}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "errors")
}

func TestRunSimulationRejectsBadQuantum(t *testing.T) {
	r, token := newTestRouter(t)
	w := doJSON(r, token, http.MethodPost, "/api/v1/simulations/rr", scheduleRequest{
		Processes:   []sim.Process{{ID: "P1", BurstTime: 1}},
		TimeQuantum: -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "time quantum")
}

func TestCompareSimulations(t *testing.T) {
	r, token := newTestRouter(t)
	w := doJSON(r, token, http.MethodPost, "/api/v1/simulations/compare", scheduleRequest{
		Processes: []sim.Process{
			{ID: "P1", ArrivalTime: 0, BurstTime: 8, Priority: 1},
			{ID: "P2", ArrivalTime: 0, BurstTime: 1, Priority: 2},
			{ID: "P3", ArrivalTime: 0, BurstTime: 2, Priority: 3},
		},
		TimeQuantum: 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var rep sim.ComparisonReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	require.Len(t, rep.Results, 4)
	assert.Equal(t, sim.AlgorithmSJF, rep.Comparison.BestAlgorithm)
}

func TestProcessEndpoints(t *testing.T) {
	r, token := newTestRouter(t)

	sample := doJSON(r, token, http.MethodGet, "/api/v1/processes/sample", nil)
	require.Equal(t, http.StatusOK, sample.Code)
	var sampleResp struct {
		Processes []sim.Process `json:"processes"`
	}
	require.NoError(t, json.Unmarshal(sample.Body.Bytes(), &sampleResp))
	assert.Len(t, sampleResp.Processes, 5)

	random := doJSON(r, token, http.MethodGet, "/api/v1/processes/random?count=3", nil)
	require.Equal(t, http.StatusOK, random.Code)
	var randomResp struct {
		Processes []sim.Process `json:"processes"`
	}
	require.NoError(t, json.Unmarshal(random.Body.Bytes(), &randomResp))
	assert.Len(t, randomResp.Processes, 3)

	bad := doJSON(r, token, http.MethodGet, fmt.Sprintf("/api/v1/processes/random?count=%d", -1), nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}
