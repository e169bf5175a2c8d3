package models

import (
	"strings"
	"time"
)

type IncidentType string

const (
	VitalEmergency IncidentType = "VITAL_EMERGENCY"
	CivilProblem   IncidentType = "CIVIL_PROBLEM"
)

func (t IncidentType) IsValid() bool {
	return t == VitalEmergency || t == CivilProblem
}

// SubTypes - допустимые подтипы для каждого типа инцидента
var SubTypes = map[IncidentType][]string{
	VitalEmergency: {
		"ROAD_ACCIDENT",
		"FIRE",
		"FLOOD",
		"EARTHQUAKE",
		"INJURY",
		"OTHER_EMERGENCY",
	},
	CivilProblem: {
		"BROKEN_TRAFFIC_LIGHT",
		"ROAD_SIGN",
		"POTHOLE",
		"PUBLIC_LIGHTING",
		"ABANDONED_WASTE",
		"MANHOLE_COVER",
		"THREATENING_TREE",
		"WATER_LEAK",
		"DANGEROUS_ANIMAL",
		"OTHER_PROBLEM",
	},
}

// IsValidSubType проверяет, что подтип принадлежит набору подтипов типа
func IsValidSubType(t IncidentType, subType string) bool {
	for _, s := range SubTypes[t] {
		if s == subType {
			return true
		}
	}
	return false
}

type IncidentStatus string

const (
	StatusAlertReceived     IncidentStatus = "ALERT_RECEIVED"
	StatusRespondersEnRoute IncidentStatus = "RESPONDERS_EN_ROUTE"
	StatusInProgress        IncidentStatus = "IN_PROGRESS"
	StatusResolved          IncidentStatus = "RESOLVED"
)

// Statuses в порядке жизненного цикла
var Statuses = []IncidentStatus{
	StatusAlertReceived,
	StatusRespondersEnRoute,
	StatusInProgress,
	StatusResolved,
}

func (s IncidentStatus) IsValid() bool {
	return s.Rank() >= 0
}

// Rank возвращает позицию статуса в жизненном цикле или -1 для неизвестного статуса
func (s IncidentStatus) Rank() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

// StatusGuard проверяет переход от статуса, сохраненного на момент записи.
// Ошибка отменяет запись.
type StatusGuard func(current IncidentStatus) error

type AttachmentKind string

const (
	AttachmentImage AttachmentKind = "image"
	AttachmentVideo AttachmentKind = "video"
	AttachmentAudio AttachmentKind = "audio"
)

// Attachment - вложение в Base64 (допускается data URL)
type Attachment struct {
	Kind AttachmentKind `json:"kind" validate:"required,oneof=image video audio"`
	Data string         `json:"data" validate:"required,attachment"`
}

// Comment - запись в ленте комментариев инцидента. Лента только растет.
type Comment struct {
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Incident struct {
	ID          string         `json:"id"`
	Type        IncidentType   `json:"type"`
	SubType     string         `json:"sub_type"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Address     string         `json:"address,omitempty"`
	Region      string         `json:"region,omitempty"`
	Description string         `json:"description"`
	Attachments []Attachment   `json:"attachments,omitempty"`
	VictimCount *int           `json:"victim_count,omitempty"`
	DangerLevel *int           `json:"danger_level,omitempty"`
	Status      IncidentStatus `json:"status"`
	UserID      string         `json:"user_id,omitempty"`
	AssignedTo  string         `json:"assigned_to,omitempty"`
	Comments    []Comment      `json:"comments"`
	CreatedAt   time.Time      `json:"created_at"`
}

// IncidentInput - данные для создания инцидента
type IncidentInput struct {
	Type        IncidentType `json:"type" validate:"required,oneof=VITAL_EMERGENCY CIVIL_PROBLEM"`
	SubType     string       `json:"sub_type" validate:"required"`
	Latitude    float64      `json:"latitude" validate:"latitude"`
	Longitude   float64      `json:"longitude" validate:"longitude"`
	Address     string       `json:"address,omitempty" validate:"max=500"`
	Region      string       `json:"region,omitempty" validate:"omitempty,region"`
	Description string       `json:"description" validate:"required,max=5000"`
	Attachments []Attachment `json:"attachments,omitempty" validate:"dive"`
	VictimCount *int         `json:"victim_count,omitempty"`
	DangerLevel *int         `json:"danger_level,omitempty"`
	UserID      string       `json:"user_id,omitempty"`
}

// Normalize обрезает пробелы и убирает поля тяжести для гражданских проблем
func (in *IncidentInput) Normalize() {
	in.SubType = strings.TrimSpace(in.SubType)
	in.Description = strings.TrimSpace(in.Description)
	in.Address = strings.TrimSpace(in.Address)
	in.Region = strings.TrimSpace(in.Region)
	if in.Type != VitalEmergency {
		in.VictimCount = nil
		in.DangerLevel = nil
	}
}

// Validate проверяет входные данные. Вызывать после Normalize.
func (in IncidentInput) Validate() error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.VictimCount != nil && *in.VictimCount < 0 {
		return NewValidationError("victim_count", "must be non-negative")
	}
	if in.DangerLevel != nil && (*in.DangerLevel < 1 || *in.DangerLevel > 5) {
		return NewValidationError("danger_level", "must be between 1 and 5")
	}
	return nil
}

// ValidateComment проверяет текст комментария
func ValidateComment(message string) error {
	if strings.TrimSpace(message) == "" {
		return NewValidationError("message", "must not be empty")
	}
	return nil
}

// MatchesSearch - регистронезависимый поиск по описанию, подтипу и адресу
func (i *Incident) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(i.Description), q) ||
		strings.Contains(strings.ToLower(i.SubType), q) {
		return true
	}
	return i.Address != "" && strings.Contains(strings.ToLower(i.Address), q)
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() *Incident {
	c := *i
	if i.Attachments != nil {
		c.Attachments = append([]Attachment(nil), i.Attachments...)
	}
	c.Comments = append([]Comment{}, i.Comments...)
	if i.VictimCount != nil {
		v := *i.VictimCount
		c.VictimCount = &v
	}
	if i.DangerLevel != nil {
		v := *i.DangerLevel
		c.DangerLevel = &v
	}
	return &c
}
