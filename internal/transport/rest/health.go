package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/phoneme-service/internal/lexicon"
)

const probeTimeout = 10 * time.Second

// dictionaryProbe is the minimal interface for dictionary health checks.
type dictionaryProbe interface {
	Store(ctx context.Context) (*lexicon.Store, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	dict    dictionaryProbe
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(dict dictionaryProbe, version string) *HealthHandler {
	return &HealthHandler{dict: dict, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string            `json:"status"`
	Version    string            `json:"version,omitempty"`
	Dictionary *DictionaryStatus `json:"dictionary,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// DictionaryStatus reports what the parser produced for the dictionary file.
type DictionaryStatus struct {
	Status   string `json:"status"`
	Source   string `json:"source,omitempty"`
	Words    int    `json:"words,omitempty"`
	Lines    int    `json:"lines,omitempty"`
	Skipped  int    `json:"skipped,omitempty"`
	LoadTime string `json:"load_time,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 once the dictionary can be served, 503
// otherwise. With the process-wide cache the first probe triggers the load.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ds := h.probe(r.Context())

	writeJSON(w, statusCode(ds), HealthResponse{
		Status:    ds.Status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check: dictionary statistics and build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ds := h.probe(r.Context())

	writeJSON(w, statusCode(ds), HealthResponse{
		Status:     ds.Status,
		Version:    h.version,
		Dictionary: &ds,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) DictionaryStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	store, err := h.dict.Store(ctx)
	if err != nil {
		return DictionaryStatus{Status: "down", Error: err.Error()}
	}

	stats := store.Stats()
	return DictionaryStatus{
		Status:   "ok",
		Source:   stats.Source,
		Words:    stats.UniqueWords,
		Lines:    stats.TotalLines,
		Skipped:  stats.SkippedLines,
		LoadTime: stats.LoadDuration.String(),
	}
}

func statusCode(ds DictionaryStatus) int {
	if ds.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
