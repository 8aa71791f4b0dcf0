package handlers

import (
	"net/http"
	"strconv"

	"crestora-backend/internal/database/models"
	"crestora-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for event operations
type EventHandler struct {
	eventService service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// CreateEvent handles POST /events
// @Summary Create a new event
// @Description Create an event (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} service.EventResponse "Successfully created event"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Event ID already taken"
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetAllEvents handles GET /events
// @Summary List events
// @Description Get all events with optional type and status filters
// @Tags events
// @Produce json
// @Param type query string false "Filter by type (title, rolling)"
// @Param status query string false "Filter by status (upcoming, in_progress, completed)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.EventListResponse "Successfully retrieved events"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Security BearerAuth
// @Router /events [get]
func (h *EventHandler) GetAllEvents(c *gin.Context) {
	var eventType *models.EventType
	if typeStr := c.Query("type"); typeStr != "" {
		t := models.EventType(typeStr)
		eventType = &t
	}
	var status *models.EventStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.EventStatus(statusStr)
		status = &s
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page parameter"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size parameter"})
		return
	}

	events, err := h.eventService.GetAll(eventType, status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEventStats handles GET /events/stats
// @Summary Event statistics
// @Description Get event and round counts
// @Tags events
// @Produce json
// @Success 200 {object} service.EventStatsResponse "Successfully retrieved stats"
// @Security BearerAuth
// @Router /events/stats [get]
func (h *EventHandler) GetEventStats(c *gin.Context) {
	stats, err := h.eventService.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetEvent handles GET /events/:eventId
// @Summary Get event by ID
// @Description Get an event with its rounds
// @Tags events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} service.EventResponse "Successfully retrieved event"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /events/{eventId} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventService.GetByID(c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// ReorderRounds handles PUT /events/:eventId/reorder
// @Summary Reorder an event's rounds
// @Description Renumber rounds in one transaction (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param order body service.ReorderRoundsRequest true "New round numbers"
// @Success 200 {array} service.RoundResponse "Rounds after renumbering"
// @Failure 400 {object} map[string]interface{} "Duplicate round numbers"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /events/{eventId}/reorder [put]
func (h *EventHandler) ReorderRounds(c *gin.Context) {
	var req service.ReorderRoundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rounds, err := h.eventService.Reorder(c.Param("eventId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rounds)
}

// DeleteEvent handles DELETE /events/:eventId
// @Summary Delete an event
// @Description Remove an event with all its rounds and scores (admin only)
// @Tags events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted event"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /events/{eventId} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.eventService.Delete(c.Param("eventId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
