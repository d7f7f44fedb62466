package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/location"
)

func newSimulationRouter(t *testing.T) (*gin.Engine, *location.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := location.NewService(nil, location.NewDeviceFeed())
	t.Cleanup(svc.Close)

	h := NewSimulationHandler(svc, nil)
	r := gin.New()
	r.POST("/api/simulation/start", h.Start)
	r.POST("/api/simulation/stop", h.Stop)
	r.GET("/api/simulation", h.Status)
	r.POST("/api/routes", h.GenerateRoute)
	return r, svc
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSimulationStart_RejectsShortRoute(t *testing.T) {
	r, _ := newSimulationRouter(t)
	body := `{"route":[{"lat":1,"lng":2}],"rate_hz":1}`
	if w := doJSON(r, http.MethodPost, "/api/simulation/start", body); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSimulationStart_RejectsBadRate(t *testing.T) {
	r, _ := newSimulationRouter(t)
	body := `{"route":[{"lat":1,"lng":2},{"lat":3,"lng":4}],"rate_hz":-2}`
	if w := doJSON(r, http.MethodPost, "/api/simulation/start", body); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSimulationLifecycleOverHTTP(t *testing.T) {
	r, svc := newSimulationRouter(t)

	body := `{"route":[{"lat":35.0,"lng":139.0,"timestamp":1000},{"lat":35.1,"lng":139.1,"timestamp":2000}],"rate_hz":100}`
	w := doJSON(r, http.MethodPost, "/api/simulation/start", body)
	if w.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"simulating":true`) {
		t.Errorf("start response should report simulating: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/api/simulation/stop", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stop: expected 200, got %d", w.Code)
	}
	if snap := svc.Snapshot(); snap.Simulating {
		t.Errorf("service still simulating after stop")
	}

	w = doJSON(r, http.MethodGet, "/api/simulation", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"simulating":false`) {
		t.Errorf("status after stop: %d %s", w.Code, w.Body.String())
	}
}

func TestGenerateRoute_UnavailableWithoutMapsClient(t *testing.T) {
	r, _ := newSimulationRouter(t)
	body := `{"origin":"Austin, TX","destination":"Dallas, TX"}`
	if w := doJSON(r, http.MethodPost, "/api/routes", body); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}
