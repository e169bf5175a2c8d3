package models

import (
	"strings"
	"time"
)

// Permissions - описательные флаги, система их не применяет
type Permissions struct {
	Read   bool `json:"read"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

type RegionalAdmin struct {
	ID                   string      `json:"id"`
	FullName             string      `json:"full_name"`
	Email                string      `json:"email"`
	Phone                string      `json:"phone"`
	Region               string      `json:"region"`
	Permissions          Permissions `json:"permissions"`
	NotificationsEnabled bool        `json:"notifications_enabled"`
	Active               bool        `json:"active"`
	Role                 Role        `json:"role"`
	CreatedAt            time.Time   `json:"created_at"`
}

type RegionalAdminInput struct {
	FullName             string      `json:"full_name" validate:"required,max=255"`
	Email                string      `json:"email" validate:"required,email"`
	Phone                string      `json:"phone" validate:"required,max=32"`
	Region               string      `json:"region" validate:"required,region"`
	Permissions          Permissions `json:"permissions"`
	NotificationsEnabled bool        `json:"notifications_enabled"`
	Active               bool        `json:"active"`
}

func (in *RegionalAdminInput) Normalize() {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Region = strings.TrimSpace(in.Region)
}

func (in RegionalAdminInput) Validate() error {
	return validateStruct(in)
}
