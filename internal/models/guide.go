package models

import (
	"strings"
	"time"
)

type GuideCategory string

const (
	GuideFire       GuideCategory = "FIRE"
	GuideEarthquake GuideCategory = "EARTHQUAKE"
	GuideFirstAid   GuideCategory = "FIRST_AID"
	GuideFlood      GuideCategory = "FLOOD"
	GuideOther      GuideCategory = "OTHER"
)

type Guide struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Category  GuideCategory `json:"category"`
	CreatedAt time.Time     `json:"created_at"`
}

type GuideInput struct {
	Title    string        `json:"title" validate:"required,max=255"`
	Content  string        `json:"content" validate:"required"`
	Category GuideCategory `json:"category" validate:"required,oneof=FIRE EARTHQUAKE FIRST_AID FLOOD OTHER"`
}

func (in *GuideInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
}

func (in GuideInput) Validate() error {
	return validateStruct(in)
}
