package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List alerts
// @Description Super and regional admins see every alert, citizens see active alerts visible in their region.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AlertResponse
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	alerts, err := h.services.Alerts.ListAlerts(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Create an alert
// @Description Publish a GLOBAL or REGIONAL alert. Regional admins may only publish for their own region.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alert body AlertRequest true "Alert"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	log := h.logger.WithField("method", "createAlert")

	var input AlertRequest
	if !h.bind(c, log, &input) {
		return
	}

	alert, err := h.services.Alerts.CreateAlert(c.Request.Context(), actorFromContext(c), DTOToAlertInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Update an alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Param alert body AlertRequest true "Alert"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [put]
func (h *Handler) updateAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateAlert").WithField("id", id)

	var input AlertRequest
	if !h.bind(c, log, &input) {
		return
	}

	alert, err := h.services.Alerts.UpdateAlert(c.Request.Context(), actorFromContext(c), id, DTOToAlertInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Delete an alert
// @Tags Alerts
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [delete]
func (h *Handler) deleteAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteAlert").WithField("id", id)

	if err := h.services.Alerts.DeleteAlert(c.Request.Context(), actorFromContext(c), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List guides
// @Description Safety guides, readable by anyone.
// @Tags Guides
// @Produce json
// @Success 200 {array} GuideResponse
// @Router /guides [get]
func (h *Handler) listGuides(c *gin.Context) {
	log := h.logger.WithField("method", "listGuides")

	guides, err := h.services.Guides.ListGuides(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToGuideResponses(guides))
}

// @Summary Get guide by ID
// @Tags Guides
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} GuideResponse
// @Failure 404 {object} map[string]string "Guide not found"
// @Router /guides/{id} [get]
func (h *Handler) getGuide(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getGuide").WithField("id", id)

	guide, err := h.services.Guides.GetGuide(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGuideResponse(guide))
}

// @Summary Create a guide
// @Tags Guides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param guide body GuideRequest true "Guide"
// @Success 201 {object} GuideResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /guides [post]
func (h *Handler) createGuide(c *gin.Context) {
	log := h.logger.WithField("method", "createGuide")

	var input GuideRequest
	if !h.bind(c, log, &input) {
		return
	}

	guide, err := h.services.Guides.CreateGuide(c.Request.Context(), actorFromContext(c), DTOToGuideInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToGuideResponse(guide))
}

// @Summary Replace a guide
// @Description Replace title, content and category. Identifier and creation time are kept.
// @Tags Guides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guide ID"
// @Param guide body GuideRequest true "Guide"
// @Success 200 {object} GuideResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Guide not found"
// @Router /guides/{id} [put]
func (h *Handler) updateGuide(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateGuide").WithField("id", id)

	var input GuideRequest
	if !h.bind(c, log, &input) {
		return
	}

	guide, err := h.services.Guides.UpdateGuide(c.Request.Context(), actorFromContext(c), id, DTOToGuideInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGuideResponse(guide))
}

// @Summary Delete a guide
// @Tags Guides
// @Security BearerAuth
// @Param id path string true "Guide ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Guide not found"
// @Router /guides/{id} [delete]
func (h *Handler) deleteGuide(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteGuide").WithField("id", id)

	if err := h.services.Guides.DeleteGuide(c.Request.Context(), actorFromContext(c), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List regional admins
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RegionalAdminResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /admins [get]
func (h *Handler) listAdmins(c *gin.Context) {
	log := h.logger.WithField("method", "listAdmins")

	admins, err := h.services.Admins.ListAdmins(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionalAdminResponses(admins))
}

// @Summary List assignable admins
// @Description Active admins an incident can be assigned to. Regional admins see their own region only.
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RegionalAdminResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /admins/active [get]
func (h *Handler) listActiveAdmins(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveAdmins")

	admins, err := h.services.Admins.ListAssignable(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionalAdminResponses(admins))
}

// @Summary Create a regional admin
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param admin body RegionalAdminRequest true "Regional admin"
// @Success 201 {object} RegionalAdminResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /admins [post]
func (h *Handler) createAdmin(c *gin.Context) {
	log := h.logger.WithField("method", "createAdmin")

	var input RegionalAdminRequest
	if !h.bind(c, log, &input) {
		return
	}

	admin, err := h.services.Admins.CreateAdmin(c.Request.Context(), actorFromContext(c), DTOToRegionalAdminInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToRegionalAdminResponse(admin))
}

// @Summary Update a regional admin
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param admin body RegionalAdminRequest true "Regional admin"
// @Success 200 {object} RegionalAdminResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Admin not found"
// @Router /admins/{id} [put]
func (h *Handler) updateAdmin(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateAdmin").WithField("id", id)

	var input RegionalAdminRequest
	if !h.bind(c, log, &input) {
		return
	}

	admin, err := h.services.Admins.UpdateAdmin(c.Request.Context(), actorFromContext(c), id, DTOToRegionalAdminInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRegionalAdminResponse(admin))
}

// @Summary Delete a regional admin
// @Description Incidents assigned to the admin keep the dangling reference.
// @Tags Admins
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Admin not found"
// @Router /admins/{id} [delete]
func (h *Handler) deleteAdmin(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteAdmin").WithField("id", id)

	if err := h.services.Admins.DeleteAdmin(c.Request.Context(), actorFromContext(c), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
