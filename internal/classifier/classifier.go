package classifier

import (
	"context"
	"strings"
	"time"

	"github.com/shenikar/urgences_dashboard/internal/models"
)

// Unknown - тип результата, когда классификация не удалась
const Unknown models.IncidentType = "UNKNOWN"

// ApplyThreshold - результат применяется только при уверенности строго выше порога
const ApplyThreshold = 0.6

// DefaultDelay - фиксированная задержка имитируемого вызова модели
const DefaultDelay = 1500 * time.Millisecond

// Image - описание загруженного изображения
type Image struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type Result struct {
	Type        models.IncidentType `json:"type"`
	SubType     string              `json:"sub_type"`
	Confidence  float64             `json:"confidence"`
	Description string              `json:"description"`
}

// Applies сообщает, можно ли подставить результат в форму заданного типа
func (r Result) Applies(expected models.IncidentType) bool {
	return r.Type == expected && r.Confidence > ApplyThreshold
}

type rule struct {
	match  func(name string) bool
	result Result
}

func containsAny(words ...string) func(string) bool {
	return func(name string) bool {
		for _, w := range words {
			if strings.Contains(name, w) {
				return true
			}
		}
		return false
	}
}

// Правила проверяются по порядку, срабатывает первое
var rules = []rule{
	{containsAny("fire", "incendie", "flamme"), Result{models.VitalEmergency, "FIRE", 0.85, "Fire detected in the image"}},
	{containsAny("accident", "crash", "voiture"), Result{models.VitalEmergency, "ROAD_ACCIDENT", 0.80, "Road accident detected"}},
	{containsAny("blessure", "person", "sol"), Result{models.VitalEmergency, "INJURY", 0.75, "Injured or fallen person detected"}},
	{containsAny("trou", "hole", "route"), Result{models.CivilProblem, "POTHOLE", 0.70, "Pothole in the road detected"}},
	{func(n string) bool { return strings.Contains(n, "feu") && strings.Contains(n, "rouge") },
		Result{models.CivilProblem, "BROKEN_TRAFFIC_LIGHT", 0.75, "Broken traffic light detected"}},
	{containsAny("panneau", "signalisation"), Result{models.CivilProblem, "ROAD_SIGN", 0.65, "Missing or damaged road sign detected"}},
}

var fallback = Result{
	Type:        Unknown,
	SubType:     "OTHER",
	Confidence:  0.30,
	Description: "Incident type could not be identified automatically. Please select it manually.",
}

// Classifier - имитация сервиса распознавания инцидентов по фото.
// Отвечает после фиксированной задержки и никогда не возвращает ошибку.
type Classifier struct {
	delay time.Duration
}

func New(delay time.Duration) *Classifier {
	return &Classifier{delay: delay}
}

// Classify возвращает результат распознавания. При отмене контекста
// вызывающий получает результат UNKNOWN, как при неудачном распознавании.
func (c *Classifier) Classify(ctx context.Context, img Image) Result {
	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return fallback
		case <-timer.C:
		}
	}

	name := strings.ToLower(img.Name)
	for _, r := range rules {
		if r.match(name) {
			return r.result
		}
	}
	return fallback
}
