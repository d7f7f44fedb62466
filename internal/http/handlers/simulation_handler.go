// README: Simulation handlers; route playback control and route generation.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamneilroberts/roadtrip-buddy/internal/maps"
	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/location"
)

type SimulationHandler struct {
	location *location.Service
	routes   *maps.RouteService
}

// NewSimulationHandler creates the handler. routes may be nil when no maps
// API key is configured; the routes endpoint then reports unavailable.
func NewSimulationHandler(svc *location.Service, routes *maps.RouteService) *SimulationHandler {
	return &SimulationHandler{location: svc, routes: routes}
}

type simulationStartRequest struct {
	Route       []location.Position `json:"route"`
	RateHz      float64             `json:"rate_hz"`
	Destination *location.Position  `json:"destination"`
}

func (h *SimulationHandler) Start(c *gin.Context) {
	var req simulationStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RateHz == 0 {
		req.RateHz = 1.0
	}
	err := h.location.StartSimulation(c.Request.Context(), req.Route, req.RateHz, req.Destination)
	if err != nil {
		if errors.Is(err, location.ErrInvalidRoute) || errors.Is(err, location.ErrInvalidRate) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, h.location.Snapshot())
}

func (h *SimulationHandler) Stop(c *gin.Context) {
	h.location.StopSimulation()
	writeJSON(c, http.StatusOK, h.location.Snapshot())
}

func (h *SimulationHandler) Status(c *gin.Context) {
	snap := h.location.Snapshot()
	writeJSON(c, http.StatusOK, gin.H{
		"simulating": snap.Simulating,
		"progress":   snap.Progress,
		"current":    snap.Current,
	})
}

type routeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// GenerateRoute turns an origin/destination pair into a playable route.
func (h *SimulationHandler) GenerateRoute(c *gin.Context) {
	if h.routes == nil {
		writeError(c, http.StatusServiceUnavailable, "route generation is not configured")
		return
	}
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}
	route, err := h.routes.GetRoute(c.Request.Context(), req.Origin, req.Destination)
	if err != nil {
		writeError(c, http.StatusBadGateway, "route lookup failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"route": route})
}
