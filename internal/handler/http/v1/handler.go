package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crisis_awareness_system/internal/config"
	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/shenikar/crisis_awareness_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Get the incident feed
// @Description Get buffered incidents passing the active severity/agency filters, newest first. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	incidents := h.dashboardService.ListIncidents()
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents, h.dashboardService.RecentIDs()))
}

// @Summary Get incident detail
// @Description Get a buffered incident with its routed agencies and routing trace. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentDetailResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	detail, err := h.dashboardService.GetIncident(id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, DetailToResponse(detail, h.dashboardService.RecentIDs()))
}

// @Summary Send an operator command
// @Description Publish an ack/assign/escalate/resolve command for an incident to the broker. Fire-and-forget: a failed publish is reported but never retried. Requires API key.
// @Tags Commands
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param command body CommandRequest true "Command request"
// @Success 202 {object} map[string]string "Command accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Command publish failed"
// @Router /incidents/{id}/commands [post]
func (h *Handler) sendCommand(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "sendCommand").WithField("id", id)

	var input CommandRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := &models.Command{
		Type:       models.CommandType(input.Type),
		IncidentID: id,
		User:       input.User,
		Note:       input.Note,
	}

	if err := h.dashboardService.SendCommand(c.Request.Context(), cmd); err != nil {
		if errors.Is(err, service.ErrCommandsDisabled) {
			c.JSON(http.StatusForbidden, gin.H{"error": "command publishing is disabled"})
			return
		}
		log.WithError(err).Error("Failed to send command")
		// Сбой публикации показывается как уведомление, повторов нет
		c.JSON(http.StatusBadGateway, gin.H{"error": "command publish failed"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// @Summary Set dashboard filters
// @Description Set the active severity and agency filters. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param filters body FiltersRequest true "Filters request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /filters [put]
func (h *Handler) setFilters(c *gin.Context) {
	log := h.logger.WithField("method", "setFilters")

	var input FiltersRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.dashboardService.SetFilters(input.Severity, input.Agency); err != nil {
		log.WithError(err).Warn("Failed to set filters")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Select an incident
// @Description Mark an incident as selected for the detail panel; empty id clears selection. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param selection body SelectionRequest true "Selection request"
// @Success 200 "OK"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /selection [put]
func (h *Handler) setSelection(c *gin.Context) {
	log := h.logger.WithField("method", "setSelection")

	var input SelectionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.dashboardService.Select(input.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get analytics
// @Description Get aggregate counts over visible incidents for the analytics panel. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} AnalyticsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /analytics [get]
func (h *Handler) getAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, AnalyticsToResponse(h.dashboardService.Analytics()))
}

// @Summary Get agency queues
// @Description Get per-agency incident queues built from the routing engine output. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AgencyQueueResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /queues [get]
func (h *Handler) getQueues(c *gin.Context) {
	c.JSON(http.StatusOK, QueuesToResponses(h.dashboardService.AgencyQueues(), h.dashboardService.RecentIDs()))
}

// @Summary Get map points
// @Description Get visible incidents that carry coordinates, with their routed agencies. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} MapPointResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /map [get]
func (h *Handler) getMapPoints(c *gin.Context) {
	c.JSON(http.StatusOK, MapPointsToResponses(h.dashboardService.MapPoints(), h.dashboardService.RecentIDs()))
}

// @Summary Get stream status
// @Description Get the data stream status and buffer size. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /status [get]
func (h *Handler) getStatus(c *gin.Context) {
	recentIDs := h.dashboardService.RecentIDs()
	if recentIDs == nil {
		recentIDs = []string{}
	}
	c.JSON(http.StatusOK, StatusResponse{
		Status:    string(h.dashboardService.Status()),
		Buffered:  len(h.dashboardService.ListIncidents()),
		RecentIDs: recentIDs,
	})
}

// @Summary Reset the incident buffer
// @Description Clear the buffer, recent marks and selection; filters are kept. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /system/reset [post]
func (h *Handler) resetBuffer(c *gin.Context) {
	h.dashboardService.Reset()
	c.Status(http.StatusNoContent)
}

// @Summary Stream live incidents
// @Description Server-sent event stream of incidents as they arrive. Requires API key.
// @Tags Dashboard
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Success 200 {string} string "SSE stream"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /stream [get]
func (h *Handler) streamIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "streamIncidents")

	updates, cancel := h.dashboardService.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	log.Info("Live update stream opened")
	c.Stream(func(w io.Writer) bool {
		select {
		case inc, ok := <-updates:
			if !ok {
				return false
			}
			payload, err := json.Marshal(ModelToIncidentResponse(inc, recentSet(h.dashboardService.RecentIDs())))
			if err != nil {
				log.WithError(err).Error("Failed to marshal live update")
				return true
			}
			c.SSEvent("incident", string(payload))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
	log.Info("Live update stream closed")
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
