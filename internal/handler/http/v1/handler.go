package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/classifier"
	"github.com/shenikar/urgences_dashboard/internal/config"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/shenikar/urgences_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, которые обслуживает API
type Services struct {
	Incidents  service.IncidentService
	Alerts     service.AlertService
	Guides     service.GuideService
	Admins     service.RegionalAdminService
	Stats      service.StatsService
	Classifier service.ClassifierService
}

type Handler struct {
	services Services
	tokens   *access.TokenService
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, tokens *access.TokenService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		tokens:   tokens,
		logger:   logger,
		validate: models.Validator(),
		cfg:      cfg,
	}
}

// bind читает тело запроса и проверяет его. При ошибке ответ уже записан.
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		h.respondError(c, log, models.ToValidationError(err))
		return false
	}
	return true
}

// respondError переводит доменную ошибку в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrForbidden):
		log.WithError(err).Warn("Access denied")
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrConflict):
		log.WithError(err).Warn("Concurrent modification")
		c.JSON(http.StatusConflict, gin.H{"error": "concurrent modification, retry the request"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Report a new incident
// @Description Report an incident. The reporter is taken from the bearer token, anonymous reports are allowed.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.services.Incidents.ReportIncident(c.Request.Context(), actorFromContext(c), DTOToIncidentInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary List incidents
// @Description List incidents visible to the caller: all for a super admin, own region for a regional admin, own reports for a citizen.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive search over description, sub type and address"
// @Param type query string false "Incident type" Enums(VITAL_EMERGENCY, CIVIL_PROBLEM)
// @Param status query string false "Incident status" Enums(ALERT_RECEIVED, RESPONDERS_EN_ROUTE, IN_PROGRESS, RESOLVED)
// @Param region query string false "Region"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	filter := access.IncidentFilter{
		Search: c.Query("search"),
		Type:   models.IncidentType(c.Query("type")),
		Status: models.IncidentStatus(c.Query("status")),
		Region: c.Query("region"),
	}

	incidents, err := h.services.Incidents.ListIncidents(c.Request.Context(), actorFromContext(c), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary List my incidents
// @Description List incidents reported by the caller, newest first.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} IncidentResponse
// @Router /incidents/mine [get]
func (h *Handler) listMyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listMyIncidents")

	incidents, err := h.services.Incidents.ListMyIncidents(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident visible to the caller.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 403 {object} map[string]string "Incident is outside of the caller scope"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.services.Incidents.GetIncident(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Set any of the four statuses. Backward moves are allowed unless strict transitions are enabled.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.services.Incidents.UpdateStatus(c.Request.Context(), actorFromContext(c), id, models.IncidentStatus(input.Status))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Comment an incident
// @Description Append an admin comment. The author is the caller name.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param comment body AddCommentRequest true "Comment"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Empty comment"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/comments [post]
func (h *Handler) addIncidentComment(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "addIncidentComment").WithField("id", id)

	var input AddCommentRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.services.Incidents.AddComment(c.Request.Context(), actorFromContext(c), id, input.Message)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Assign an incident
// @Description Assign an incident to an admin. The admin id is stored as given.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param assignment body AssignIncidentRequest true "Assignment"
// @Success 200 {object} IncidentResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/assign [patch]
func (h *Handler) assignIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "assignIncident").WithField("id", id)

	var input AssignIncidentRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.services.Incidents.AssignIncident(c.Request.Context(), actorFromContext(c), id, input.AdminID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Dashboard statistics
// @Description Incident and alert counters over the caller scope. Admin count is returned to super admins only.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.services.Stats.Stats(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Classify an image
// @Description Suggest incident type and sub type from image metadata. Never fails, returns UNKNOWN on no match.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param image body ClassifyRequest true "Image metadata"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /classify [post]
func (h *Handler) classifyImage(c *gin.Context) {
	log := h.logger.WithField("method", "classifyImage")

	var input ClassifyRequest
	if !h.bind(c, log, &input) {
		return
	}
	result, err := h.services.Classifier.ClassifyImage(c.Request.Context(), actorFromContext(c), classifier.Image{
		Name:        input.Name,
		Size:        input.Size,
		ContentType: input.ContentType,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ResultToClassifyResponse(result, models.IncidentType(input.ExpectedType)))
}

// @Summary List regions
// @Description Fixed registry of administrative regions.
// @Tags System
// @Produce json
// @Success 200 {array} string
// @Router /regions [get]
func (h *Handler) listRegions(c *gin.Context) {
	c.JSON(http.StatusOK, models.ListRegions())
}

// @Summary Demo login
// @Description Issue a bearer token for the given actor. There is no password check.
// @Tags Auth
// @Accept json
// @Produce json
// @Param actor body LoginRequest true "Actor"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	log := h.logger.WithField("method", "login")

	var input LoginRequest
	if !h.bind(c, log, &input) {
		return
	}

	actor := access.Normalize(models.Actor{
		ID:     input.ID,
		Name:   input.Name,
		Role:   models.Role(input.Role),
		Region: input.Region,
	})
	token, err := h.tokens.Issue(actor)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Token:     token,
		Actor:     ActorToDTO(actor),
		ExpiresAt: time.Now().Add(h.cfg.TokenTTL).UTC(),
	})
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
