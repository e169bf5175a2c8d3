package models

import (
	"strings"
	"time"
)

type AlertLevel string

const (
	LevelCritical AlertLevel = "CRITICAL"
	LevelHigh     AlertLevel = "HIGH"
	LevelMedium   AlertLevel = "MEDIUM"
	LevelLow      AlertLevel = "LOW"
)

type AlertScope string

const (
	ScopeGlobal   AlertScope = "GLOBAL"
	ScopeRegional AlertScope = "REGIONAL"
)

// Alert - оповещение для населения. Region задан тогда и только тогда, когда Scope = REGIONAL.
type Alert struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Level     AlertLevel `json:"level"`
	Active    bool       `json:"active"`
	Scope     AlertScope `json:"scope"`
	Region    string     `json:"region,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// VisibleIn сообщает, видно ли оповещение в регионе
func (a *Alert) VisibleIn(region string) bool {
	return a.Scope == ScopeGlobal || (a.Scope == ScopeRegional && a.Region == region)
}

type AlertInput struct {
	Title   string     `json:"title" validate:"required,max=255"`
	Message string     `json:"message" validate:"required"`
	Level   AlertLevel `json:"level" validate:"required,oneof=CRITICAL HIGH MEDIUM LOW"`
	Active  bool       `json:"active"`
	Scope   AlertScope `json:"scope" validate:"required,oneof=GLOBAL REGIONAL"`
	Region  string     `json:"region,omitempty"`
}

// Normalize приводит регион в соответствие с областью действия:
// для GLOBAL переданный регион отбрасывается.
func (in *AlertInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	in.Region = strings.TrimSpace(in.Region)
	if in.Scope == ScopeGlobal {
		in.Region = ""
	}
}

func (in AlertInput) Validate() error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.Scope == ScopeRegional && !IsValidRegion(in.Region) {
		return NewValidationError("region", "a registry region is required for REGIONAL scope")
	}
	return nil
}
