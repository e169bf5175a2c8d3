package v1

import (
	"time"
)

// AttachmentDTO - вложение в Base64
// @Description Вложение в Base64 (допускается data URL)
type AttachmentDTO struct {
	Kind string `json:"kind" validate:"required,oneof=image video audio"`
	Data string `json:"data" validate:"required,attachment"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type        string          `json:"type" validate:"required,oneof=VITAL_EMERGENCY CIVIL_PROBLEM"`
	SubType     string          `json:"sub_type" validate:"required"`
	Latitude    float64         `json:"latitude" validate:"latitude"`
	Longitude   float64         `json:"longitude" validate:"longitude"`
	Address     string          `json:"address,omitempty" validate:"max=500"`
	Region      string          `json:"region,omitempty" validate:"omitempty,region"`
	Description string          `json:"description" validate:"required,max=5000"`
	Attachments []AttachmentDTO `json:"attachments,omitempty" validate:"dive"`
	VictimCount *int            `json:"victim_count,omitempty" validate:"omitempty,gte=0"`
	DangerLevel *int            `json:"danger_level,omitempty" validate:"omitempty,min=1,max=5"`
}

// UpdateStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ALERT_RECEIVED RESPONDERS_EN_ROUTE IN_PROGRESS RESOLVED"`
}

// AddCommentRequest DTO для комментария администратора
// @Description DTO для комментария администратора
type AddCommentRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// AssignIncidentRequest DTO для назначения инцидента
// @Description DTO для назначения инцидента
type AssignIncidentRequest struct {
	AdminID string `json:"admin_id" validate:"required"`
}

// CommentResponse DTO комментария
type CommentResponse struct {
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	SubType     string            `json:"sub_type"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Address     string            `json:"address,omitempty"`
	Region      string            `json:"region,omitempty"`
	Description string            `json:"description"`
	Attachments []AttachmentDTO   `json:"attachments,omitempty"`
	VictimCount *int              `json:"victim_count,omitempty"`
	DangerLevel *int              `json:"danger_level,omitempty"`
	Status      string            `json:"status"`
	UserID      string            `json:"user_id,omitempty"`
	AssignedTo  string            `json:"assigned_to,omitempty"`
	Comments    []CommentResponse `json:"comments"`
	CreatedAt   time.Time         `json:"created_at"`
}

// AlertRequest DTO для создания и изменения оповещения
// @Description DTO для создания и изменения оповещения
type AlertRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
	Level   string `json:"level" validate:"required,oneof=CRITICAL HIGH MEDIUM LOW"`
	Active  bool   `json:"active"`
	Scope   string `json:"scope" validate:"required,oneof=GLOBAL REGIONAL"`
	Region  string `json:"region,omitempty" validate:"max=255"`
}

// AlertResponse DTO оповещения
type AlertResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	Active    bool      `json:"active"`
	Scope     string    `json:"scope"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GuideRequest DTO для памятки
// @Description DTO для создания и замены памятки
type GuideRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required,oneof=FIRE EARTHQUAKE FIRST_AID FLOOD OTHER"`
}

type GuideResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// PermissionsDTO - описательные флаги прав администратора
type PermissionsDTO struct {
	Read   bool `json:"read"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

// RegionalAdminRequest DTO для справочника администраторов
// @Description DTO для создания и изменения регионального администратора
type RegionalAdminRequest struct {
	FullName             string         `json:"full_name" validate:"required,max=255"`
	Email                string         `json:"email" validate:"required,email"`
	Phone                string         `json:"phone" validate:"required,max=32"`
	Region               string         `json:"region" validate:"required,region"`
	Permissions          PermissionsDTO `json:"permissions"`
	NotificationsEnabled bool           `json:"notifications_enabled"`
	Active               bool           `json:"active"`
}

type RegionalAdminResponse struct {
	ID                   string         `json:"id"`
	FullName             string         `json:"full_name"`
	Email                string         `json:"email"`
	Phone                string         `json:"phone"`
	Region               string         `json:"region"`
	Permissions          PermissionsDTO `json:"permissions"`
	NotificationsEnabled bool           `json:"notifications_enabled"`
	Active               bool           `json:"active"`
	Role                 string         `json:"role"`
	CreatedAt            time.Time      `json:"created_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой панели
type StatsResponse struct {
	TotalIncidents  int `json:"total_incidents"`
	ActiveIncidents int `json:"active_incidents"`
	Resolved        int `json:"resolved"`
	VitalEmergency  int `json:"vital_emergency"`
	CivilProblem    int `json:"civil_problem"`
	TotalAlerts     int `json:"total_alerts"`
	ActiveAlerts    int `json:"active_alerts"`
	TotalAdmins     int `json:"total_admins"`
}

// ClassifyRequest DTO для анализа изображения
// @Description Метаданные загруженного изображения
type ClassifyRequest struct {
	Name         string `json:"name" validate:"required"`
	Size         int64  `json:"size" validate:"gte=0"`
	ContentType  string `json:"content_type"`
	ExpectedType string `json:"expected_type,omitempty" validate:"omitempty,oneof=VITAL_EMERGENCY CIVIL_PROBLEM"`
}

type ClassifyResponse struct {
	Type        string  `json:"type"`
	SubType     string  `json:"sub_type"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
	Applies     bool    `json:"applies"`
}

// LoginRequest DTO для демонстрационного входа без пароля
// @Description Участник, для которого выпускается токен
type LoginRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"required,max=255"`
	Role   string `json:"role" validate:"required,oneof=CITIZEN REGIONAL_ADMIN SUPER_ADMIN"`
	Region string `json:"region,omitempty" validate:"omitempty,region"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	Actor     ActorDTO  `json:"actor"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ActorDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Region string `json:"region,omitempty"`
}
