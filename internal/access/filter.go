package access

import "github.com/shenikar/urgences_dashboard/internal/models"

// IncidentFilter - фильтры списка инцидентов. Пустые поля не фильтруют.
type IncidentFilter struct {
	Search string
	Type   models.IncidentType
	Status models.IncidentStatus
	Region string
}

// Apply применяет фильтры к уже ограниченной по доступу выборке
func (f IncidentFilter) Apply(incidents []*models.Incident) []*models.Incident {
	filtered := make([]*models.Incident, 0, len(incidents))
	for _, i := range incidents {
		if f.Type != "" && i.Type != f.Type {
			continue
		}
		if f.Status != "" && i.Status != f.Status {
			continue
		}
		if f.Region != "" && i.Region != f.Region {
			continue
		}
		if !i.MatchesSearch(f.Search) {
			continue
		}
		filtered = append(filtered, i)
	}
	return filtered
}
