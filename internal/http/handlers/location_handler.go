// README: Location handlers; device fixes, session snapshot, watch control.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/location"
)

type LocationHandler struct {
	location *location.Service
	feed     *location.DeviceFeed
}

func NewLocationHandler(svc *location.Service, feed *location.DeviceFeed) *LocationHandler {
	return &LocationHandler{location: svc, feed: feed}
}

type fixRequest struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy"`
	TsMs     int64   `json:"timestamp"`
	Name     string  `json:"name"`
}

// Fix accepts a device-reported position. While a watch is active it flows
// through the feed; otherwise it lands on the session directly.
func (h *LocationHandler) Fix(c *gin.Context) {
	var req fixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		writeError(c, http.StatusBadRequest, "coordinates out of range")
		return
	}
	pos := location.Position{Lat: req.Lat, Lng: req.Lng, Accuracy: req.Accuracy, TsMs: req.TsMs, Name: req.Name}
	if h.location.Snapshot().Watching {
		h.feed.Push(pos)
	} else {
		h.location.ReportFix(pos)
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
}

func (h *LocationHandler) Get(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.location.Snapshot())
}

func (h *LocationHandler) StartWatch(c *gin.Context) {
	if err := h.location.StartWatching(); err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"watching": true})
}

func (h *LocationHandler) StopWatch(c *gin.Context) {
	h.location.StopWatching()
	writeJSON(c, http.StatusOK, gin.H{"watching": false})
}

func (h *LocationHandler) ClearHistory(c *gin.Context) {
	h.location.ClearHistory()
	writeJSON(c, http.StatusOK, gin.H{"status": "cleared"})
}
