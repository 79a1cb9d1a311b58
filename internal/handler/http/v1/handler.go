package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	emergencyService service.EmergencyService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(emergencyService service.EmergencyService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		emergencyService: emergencyService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Create an emergency
// @Description Create an active emergency from coordinates. Replaces the previous active emergency. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param emergency body CreateEmergencyRequest true "Emergency creation request"
// @Success 201 {object} EmergencySnapshotResponse
// @Failure 400 {object} map[string]string "Invalid request body or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [post]
func (h *Handler) createEmergency(c *gin.Context) {
	var input CreateEmergencyRequest
	log := h.logger.WithField("method", "createEmergency")

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

	// Экстренный вызов по умолчанию: высокий приоритет, вертолет требуется
	priority := models.PriorityHigh
	if input.Priority != "" {
		priority = models.Priority(input.Priority)
	}
	requiresAir := true
	if input.RequiresAirUnit != nil {
		requiresAir = *input.RequiresAirUnit
	}

	snapshot, err := h.emergencyService.CreateEmergency(c.Request.Context(), *input.Latitude, *input.Longitude, input.Description, priority, requiresAir)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		log.WithError(err).Error("Failed to create emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, SnapshotToResponse(snapshot))
}

// @Summary Get the active emergency
// @Description Get the active emergency with the nearest evacuation point and ranked arrival estimates. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} EmergencySnapshotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active emergency"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/active [get]
func (h *Handler) getActiveEmergency(c *gin.Context) {
	log := h.logger.WithField("method", "getActiveEmergency")

	snapshot, err := h.emergencyService.ActiveEmergency(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveEmergency) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active emergency"})
			return
		}
		log.WithError(err).Error("Failed to get active emergency from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, SnapshotToResponse(snapshot))
}

// @Summary Clear the active emergency
// @Description Clear the active emergency and release all assigned resources. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/active [delete]
func (h *Handler) clearEmergency(c *gin.Context) {
	log := h.logger.WithField("method", "clearEmergency")

	if err := h.emergencyService.ClearEmergency(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to clear emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear emergency"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle resource assignment
// @Description Assign a resource to the active emergency, or release it when already assigned. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} EmergencySnapshotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active emergency or unknown resource"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/active/resources/{id} [post]
func (h *Handler) toggleResource(c *gin.Context) {
	resourceID := c.Param("id")
	log := h.logger.WithField("method", "toggleResource").WithField("resource_id", resourceID)

	snapshot, err := h.emergencyService.ToggleResource(c.Request.Context(), resourceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveEmergency):
			c.JSON(http.StatusNotFound, gin.H{"error": "no active emergency"})
		case errors.Is(err, service.ErrUnknownResource):
			log.Warn("Toggle requested for unknown resource")
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown resource"})
		default:
			log.WithError(err).Error("Failed to toggle resource in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, SnapshotToResponse(snapshot))
}

// @Summary List all units
// @Description List all ground units and the air unit with original coordinates. Requires API key.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UnitsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units [get]
func (h *Handler) listUnits(c *gin.Context) {
	log := h.logger.WithField("method", "listUnits")

	groundUnits, err := h.emergencyService.ListGroundUnits(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list ground units from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	airUnit, err := h.emergencyService.GetAirUnit(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get air unit from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := &UnitsResponse{
		GroundUnits: make([]*GroundUnitResponse, len(groundUnits)),
	}
	for i, unit := range groundUnits {
		resp.GroundUnits[i] = ModelToGroundUnitResponse(unit)
	}
	if airUnit != nil {
		resp.AirUnit = ModelToAirUnitResponse(airUnit)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List evacuation points
// @Description Get all evacuation points. Requires API key.
// @Tags EvacuationPoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} EvacuationPointResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evacuation-points [get]
func (h *Handler) listEvacuationPoints(c *gin.Context) {
	log := h.logger.WithField("method", "listEvacuationPoints")

	points, err := h.emergencyService.ListEvacuationPoints(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list evacuation points from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToEvacuationPointResponses(points))
}

// @Summary Propose an evacuation point
// @Description Propose a new evacuation/landing point. Points are append-only. Requires API key.
// @Tags EvacuationPoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param point body ProposeEvacuationPointRequest true "Evacuation point proposal"
// @Success 201 {object} EvacuationPointResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evacuation-points [post]
func (h *Handler) proposeEvacuationPoint(c *gin.Context) {
	var input ProposeEvacuationPointRequest
	log := h.logger.WithField("method", "proposeEvacuationPoint")

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

	model := DTOToEvacuationPointModel(input)
	if err := h.emergencyService.ProposeEvacuationPoint(c.Request.Context(), model); err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		log.WithError(err).Error("Failed to propose evacuation point in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToEvacuationPointResponse(model))
}

// @Summary Get emergency statistics
// @Description Get the count of emergencies created within the configured time window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.emergencyService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, StatsResponse{EmergencyCount: count})
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
