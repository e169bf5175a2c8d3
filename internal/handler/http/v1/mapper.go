package v1

import (
	"github.com/shenikar/urgences_dashboard/internal/classifier"
	"github.com/shenikar/urgences_dashboard/internal/models"
)

// DTOToIncidentInput преобразует DTO создания в доменные входные данные
func DTOToIncidentInput(dto CreateIncidentRequest) models.IncidentInput {
	var attachments []models.Attachment
	if len(dto.Attachments) > 0 {
		attachments = make([]models.Attachment, len(dto.Attachments))
		for i, a := range dto.Attachments {
			attachments[i] = models.Attachment{Kind: models.AttachmentKind(a.Kind), Data: a.Data}
		}
	}
	return models.IncidentInput{
		Type:        models.IncidentType(dto.Type),
		SubType:     dto.SubType,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Address:     dto.Address,
		Region:      dto.Region,
		Description: dto.Description,
		Attachments: attachments,
		VictimCount: dto.VictimCount,
		DangerLevel: dto.DangerLevel,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:          model.ID,
		Type:        string(model.Type),
		SubType:     model.SubType,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Address:     model.Address,
		Region:      model.Region,
		Description: model.Description,
		VictimCount: model.VictimCount,
		DangerLevel: model.DangerLevel,
		Status:      string(model.Status),
		UserID:      model.UserID,
		AssignedTo:  model.AssignedTo,
		Comments:    make([]CommentResponse, len(model.Comments)),
		CreatedAt:   model.CreatedAt,
	}
	for _, a := range model.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentDTO{Kind: string(a.Kind), Data: a.Data})
	}
	for i, c := range model.Comments {
		resp.Comments[i] = CommentResponse{Author: c.Author, Message: c.Message, CreatedAt: c.CreatedAt}
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func DTOToAlertInput(dto AlertRequest) models.AlertInput {
	return models.AlertInput{
		Title:   dto.Title,
		Message: dto.Message,
		Level:   models.AlertLevel(dto.Level),
		Active:  dto.Active,
		Scope:   models.AlertScope(dto.Scope),
		Region:  dto.Region,
	}
}

func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:        model.ID,
		Title:     model.Title,
		Message:   model.Message,
		Level:     string(model.Level),
		Active:    model.Active,
		Scope:     string(model.Scope),
		Region:    model.Region,
		CreatedAt: model.CreatedAt,
	}
}

func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

func DTOToGuideInput(dto GuideRequest) models.GuideInput {
	return models.GuideInput{
		Title:    dto.Title,
		Content:  dto.Content,
		Category: models.GuideCategory(dto.Category),
	}
}

func ModelToGuideResponse(model *models.Guide) *GuideResponse {
	return &GuideResponse{
		ID:        model.ID,
		Title:     model.Title,
		Content:   model.Content,
		Category:  string(model.Category),
		CreatedAt: model.CreatedAt,
	}
}

func ModelsToGuideResponses(models []*models.Guide) []*GuideResponse {
	responses := make([]*GuideResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToGuideResponse(model)
	}
	return responses
}

func DTOToRegionalAdminInput(dto RegionalAdminRequest) models.RegionalAdminInput {
	return models.RegionalAdminInput{
		FullName: dto.FullName,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Region:   dto.Region,
		Permissions: models.Permissions{
			Read:   dto.Permissions.Read,
			Edit:   dto.Permissions.Edit,
			Delete: dto.Permissions.Delete,
		},
		NotificationsEnabled: dto.NotificationsEnabled,
		Active:               dto.Active,
	}
}

func ModelToRegionalAdminResponse(model *models.RegionalAdmin) *RegionalAdminResponse {
	return &RegionalAdminResponse{
		ID:       model.ID,
		FullName: model.FullName,
		Email:    model.Email,
		Phone:    model.Phone,
		Region:   model.Region,
		Permissions: PermissionsDTO{
			Read:   model.Permissions.Read,
			Edit:   model.Permissions.Edit,
			Delete: model.Permissions.Delete,
		},
		NotificationsEnabled: model.NotificationsEnabled,
		Active:               model.Active,
		Role:                 string(model.Role),
		CreatedAt:            model.CreatedAt,
	}
}

func ModelsToRegionalAdminResponses(models []*models.RegionalAdmin) []*RegionalAdminResponse {
	responses := make([]*RegionalAdminResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToRegionalAdminResponse(model)
	}
	return responses
}

func ModelToStatsResponse(model *models.DashboardStats) StatsResponse {
	return StatsResponse{
		TotalIncidents:  model.TotalIncidents,
		ActiveIncidents: model.ActiveIncidents,
		Resolved:        model.Resolved,
		VitalEmergency:  model.VitalEmergency,
		CivilProblem:    model.CivilProblem,
		TotalAlerts:     model.TotalAlerts,
		ActiveAlerts:    model.ActiveAlerts,
		TotalAdmins:     model.TotalAdmins,
	}
}

func ResultToClassifyResponse(result classifier.Result, expected models.IncidentType) ClassifyResponse {
	return ClassifyResponse{
		Type:        string(result.Type),
		SubType:     result.SubType,
		Confidence:  result.Confidence,
		Description: result.Description,
		Applies:     expected != "" && result.Applies(expected),
	}
}

func ActorToDTO(actor models.Actor) ActorDTO {
	return ActorDTO{
		ID:     actor.ID,
		Name:   actor.Name,
		Role:   string(actor.Role),
		Region: actor.Region,
	}
}
