package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/cache"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/generator"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/report"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/sim"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/storage"
	"github.com/Divyanshuyadav1227/cpu-Scheduling-simulator/internal/validate"
)

type Handlers struct {
	store          storage.RunStore
	cache          *cache.ResultCache
	defaultQuantum int
}

func NewHandlers(store storage.RunStore, resultCache *cache.ResultCache, defaultQuantum int) *Handlers {
	return &Handlers{
		store:          store,
		cache:          resultCache,
		defaultQuantum: defaultQuantum,
	}
}

type scheduleRequest struct {
	Processes   []sim.Process `json:"processes"`
	TimeQuantum int           `json:"time_quantum"`
}

func (h *Handlers) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// RunSimulation executes one policy over the posted batch and persists the
// run. ?format=text returns the rendered report instead of JSON.
func (h *Handlers) RunSimulation(c *gin.Context) {
	req, quantum, ok := h.bindScheduleRequest(c)
	if !ok {
		return
	}

	result, err := sim.Schedule(c.Param("algorithm"), req.Processes, quantum)
	if err != nil {
		if errors.Is(err, sim.ErrUnknownAlgorithm) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	run := h.persist(result)

	if c.Query("format") == "text" {
		var buf bytes.Buffer
		report.Write(&buf, result)
		c.String(http.StatusOK, buf.String())
		return
	}

	c.JSON(http.StatusOK, gin.H{"run_id": run.ID, "result": result})
}

// CompareSimulations runs all four policies and reports the one with the
// lowest average waiting time. Responses are memoized in Redis keyed by the
// request payload.
func (h *Handlers) CompareSimulations(c *gin.Context) {
	req, quantum, ok := h.bindScheduleRequest(c)
	if !ok {
		return
	}

	wantText := c.Query("format") == "text"

	payload, err := json.Marshal(scheduleRequest{Processes: req.Processes, TimeQuantum: quantum})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	key := cache.Key(payload)

	if !wantText {
		if cached, hit := h.cache.Get(c.Request.Context(), key); hit {
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	comparison := sim.RunAll(req.Processes, quantum)
	for _, result := range comparison.Results {
		h.persist(result)
	}

	if wantText {
		var buf bytes.Buffer
		report.WriteComparison(&buf, comparison)
		c.String(http.StatusOK, buf.String())
		return
	}

	body, err := json.Marshal(comparison)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.cache.Set(c.Request.Context(), key, body)
	c.Data(http.StatusOK, "application/json", body)
}

func (h *Handlers) ListRuns(c *gin.Context) {
	runs, err := h.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (h *Handlers) GetRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}

	run, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *Handlers) SampleProcesses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"processes": generator.Sample()})
}

func (h *Handlers) RandomProcesses(c *gin.Context) {
	count := 5
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be between 1 and 1000"})
			return
		}
		count = parsed
	}
	c.JSON(http.StatusOK, gin.H{"processes": generator.Random(count)})
}

// bindScheduleRequest parses and validates the request body, defaulting the
// quantum from config when the caller omits it.
func (h *Handlers) bindScheduleRequest(c *gin.Context) (scheduleRequest, int, bool) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return req, 0, false
	}

	if v := validate.Processes(req.Processes); !v.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"errors": v.Errors})
		return req, 0, false
	}

	quantum := req.TimeQuantum
	if quantum == 0 {
		quantum = h.defaultQuantum
	}
	if v := validate.Quantum(quantum); !v.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"errors": v.Errors})
		return req, 0, false
	}

	return req, quantum, true
}

func (h *Handlers) persist(result sim.Result) *storage.SimulationRun {
	body, err := json.Marshal(result)
	if err != nil {
		log.Println("marshal result:", err)
		return &storage.SimulationRun{}
	}

	run := &storage.SimulationRun{
		ID:                    uuid.New(),
		Algorithm:             result.Algorithm,
		ProcessCount:          len(result.Processes),
		TotalTime:             result.TotalTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageTurnaroundTime: result.AverageTurnaroundTime,
		Throughput:            result.Throughput,
		Result:                body,
		CreatedAt:             time.Now(),
	}
	if err := h.store.Save(run); err != nil {
		log.Println("save run:", err)
	}
	return run
}
