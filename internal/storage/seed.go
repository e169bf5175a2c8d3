package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// regionSlugs - короткие имена регионов для адресов почты стартового состава
var regionSlugs = map[string]string{
	"Tanger-Tétouan-Al Hoceïma": "tanger",
	"L'Oriental":                "oriental",
	"Fès-Meknès":                "fes",
	"Rabat-Salé-Kénitra":        "rabat",
	"Béni Mellal-Khénifra":      "benimellal",
	"Casablanca-Settat":         "casablanca",
	"Marrakech-Safi":            "marrakech",
	"Drâa-Tafilalet":            "draa",
	"Souss-Massa":               "souss",
	"Guelmim-Oued Noun":         "guelmim",
	"Laâyoune-Sakia El Hamra":   "laayoune",
	"Dakhla-Oued Ed-Dahab":      "dakhla",
}

// DefaultRegionalAdmins возвращает стартовый состав: по одному администратору на регион
func DefaultRegionalAdmins(now time.Time) []models.RegionalAdmin {
	admins := make([]models.RegionalAdmin, 0, len(models.Regions))
	for i, region := range models.Regions {
		slug := regionSlugs[region]
		admins = append(admins, models.RegionalAdmin{
			ID:                   uuid.NewString(),
			FullName:             "Admin " + region,
			Email:                fmt.Sprintf("admin.%s@urgences.ma", slug),
			Phone:                fmt.Sprintf("+2125220000%02d", i+1),
			Region:               region,
			Permissions:          models.Permissions{Read: true, Edit: true, Delete: false},
			NotificationsEnabled: true,
			Active:               true,
			Role:                 models.RoleRegionalAdmin,
			CreatedAt:            now,
		})
	}
	return admins
}

func DefaultAlerts(now time.Time) []models.Alert {
	return []models.Alert{
		{
			ID:        uuid.NewString(),
			Title:     "Vague de chaleur",
			Message:   "Températures élevées attendues. Restez hydratés et évitez les sorties aux heures chaudes.",
			Level:     models.LevelMedium,
			Active:    true,
			Scope:     models.ScopeGlobal,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Title:     "Risque d'inondation",
			Message:   "Fortes pluies prévues. Évitez les zones basses et les oueds.",
			Level:     models.LevelHigh,
			Active:    true,
			Scope:     models.ScopeRegional,
			Region:    "Casablanca-Settat",
			CreatedAt: now,
		},
	}
}

func DefaultGuides(now time.Time) []models.Guide {
	return []models.Guide{
		{
			ID:        uuid.NewString(),
			Title:     "Que faire en cas d'incendie",
			Content:   "Alertez les secours au 15. Évacuez sans prendre l'ascenseur. Fermez les portes derrière vous.",
			Category:  models.GuideFire,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Title:     "Se protéger lors d'un séisme",
			Content:   "Abritez-vous sous un meuble solide, éloignez-vous des fenêtres, ne sortez qu'après les secousses.",
			Category:  models.GuideEarthquake,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Title:     "Gestes de premiers secours",
			Content:   "Protégez, alertez, secourez. Mettez la victime en position latérale de sécurité si elle respire.",
			Category:  models.GuideFirstAid,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Title:     "En cas d'inondation",
			Content:   "Montez dans les étages, coupez l'électricité et ne traversez jamais une zone inondée.",
			Category:  models.GuideFlood,
			CreatedAt: now,
		},
	}
}

// Seed заполняет стартовыми данными коллекции, которых еще нет.
// Существующие коллекции не трогаются, поэтому повторный вызов безопасен.
func Seed(ctx context.Context, kv KV, prefix string, logger *logrus.Logger) error {
	now := time.Now().UTC()
	seeds := []struct {
		collection string
		records    any
	}{
		{RegionalAdminsCollection, DefaultRegionalAdmins(now)},
		{AlertsCollection, DefaultAlerts(now)},
		{GuidesCollection, DefaultGuides(now)},
	}

	for _, s := range seeds {
		key := Key(prefix, s.collection)
		payload, err := json.Marshal(s.records)
		if err != nil {
			return fmt.Errorf("failed to marshal seed for %s: %w", key, err)
		}
		created, err := kv.SetNX(ctx, key, payload)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", key, err)
		}
		logger.WithFields(logrus.Fields{
			"collection": key,
			"seeded":     created,
		}).Info("Collection initialization checked")
	}
	return nil
}
