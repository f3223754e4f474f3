package harness

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const notFoundBody = `{"detail":"Session not found"}`

// FakeAPI is an in-process prediction service. Responses are canned JSON
// documents registered by the test.
type FakeAPI struct {
	mu          sync.Mutex
	predictions map[string]string
	presets     string
	presetsCode int
	reports     map[string]string
	server      *httptest.Server
	states      map[string]string
}

// NewFakeAPI starts a fake prediction service that is closed when the test completes.
func NewFakeAPI(tb testing.TB) *FakeAPI {
	tb.Helper()

	api := &FakeAPI{
		predictions: make(map[string]string),
		presets:     "[]",
		presetsCode: http.StatusOK,
		reports:     make(map[string]string),
		states:      make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/equipment/presets", func(w http.ResponseWriter, _ *http.Request) {
		api.mu.Lock()
		body, code := api.presets, api.presetsCode
		api.mu.Unlock()
		writeJSON(w, code, body)
	})
	mux.HandleFunc("GET /api/v1/cook/{id}/prediction", api.lookup(api.predictions))
	mux.HandleFunc("GET /api/v1/cook/{id}/state", api.lookup(api.states))
	mux.HandleFunc("GET /api/v1/cook/{id}/report", api.lookup(api.reports))

	api.server = httptest.NewServer(mux)
	tb.Cleanup(api.server.Close)
	return api
}

// URL returns the base URL of the service.
func (a *FakeAPI) URL() string {
	return a.server.URL
}

// SetPresets sets the equipment presets document.
func (a *FakeAPI) SetPresets(body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.presets, a.presetsCode = body, http.StatusOK
}

// FailPresets makes the presets endpoint answer with code.
func (a *FakeAPI) FailPresets(code int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.presets, a.presetsCode = `{"detail":"presets unavailable"}`, code
}

// AddSession registers a live cook with its prediction and state documents.
func (a *FakeAPI) AddSession(sessionID, prediction, state string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.predictions[sessionID] = prediction
	a.states[sessionID] = state
}

// AddReport registers the report of a finished cook.
func (a *FakeAPI) AddReport(sessionID, report string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reports[sessionID] = report
}

func (a *FakeAPI) lookup(docs map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		body, ok := docs[r.PathValue("id")]
		a.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, notFoundBody)
			return
		}
		writeJSON(w, http.StatusOK, body)
	}
}

func writeJSON(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
