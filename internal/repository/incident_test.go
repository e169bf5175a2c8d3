package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/shenikar/urgences_dashboard/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// setupTestKV поднимает miniredis и возвращает хранилище поверх него
func setupTestKV(t *testing.T) storage.KV {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return storage.NewRedisKV(client, 10)
}

func newTestIncidentRepository(t *testing.T) *IncidentRepository {
	repo := NewIncidentRepository(setupTestKV(t), storage.DefaultKeyPrefix, newTestLogger())
	return repo.(*IncidentRepository)
}

func kitchenFire() models.IncidentInput {
	return models.IncidentInput{
		Type:        models.VitalEmergency,
		SubType:     "FIRE",
		Latitude:    33.5731,
		Longitude:   -7.5898,
		Region:      "Casablanca-Settat",
		Description: "kitchen fire",
	}
}

func TestIncidentRepository_Create(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, kitchenFire())
	require.NoError(t, err)
	second, err := repo.Create(ctx, kitchenFire())
	require.NoError(t, err)

	for _, i := range []*models.Incident{first, second} {
		assert.NotEmpty(t, i.ID)
		assert.Equal(t, models.StatusAlertReceived, i.Status)
		assert.NotNil(t, i.Comments)
		assert.Empty(t, i.Comments)
		assert.False(t, i.CreatedAt.IsZero())
	}
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.GetAll(ctx), 2)
}

func TestIncidentRepository_CreateValidation(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input func(in *models.IncidentInput)
		field string
	}{
		{"blank description", func(in *models.IncidentInput) { in.Description = "   " }, "description"},
		{"unknown type", func(in *models.IncidentInput) { in.Type = "OTHER" }, "type"},
		{"subtype of another type", func(in *models.IncidentInput) { in.SubType = "POTHOLE" }, "sub_type"},
		{"unknown region", func(in *models.IncidentInput) { in.Region = "Atlantis" }, "region"},
		{"latitude out of range", func(in *models.IncidentInput) { in.Latitude = 123 }, "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := kitchenFire()
			tt.input(&in)

			incident, err := repo.Create(ctx, in)

			assert.Nil(t, incident)
			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
	assert.Empty(t, repo.GetAll(ctx))
}

func TestIncidentRepository_CivilProblemDropsSeverity(t *testing.T) {
	repo := newTestIncidentRepository(t)
	victims, danger := 2, 4

	incident, err := repo.Create(context.Background(), models.IncidentInput{
		Type:        models.CivilProblem,
		SubType:     "POTHOLE",
		Latitude:    34.02,
		Longitude:   -6.83,
		Description: "Nid de poule avenue Mohammed V",
		VictimCount: &victims,
		DangerLevel: &danger,
	})

	require.NoError(t, err)
	assert.Nil(t, incident.VictimCount)
	assert.Nil(t, incident.DangerLevel)
	assert.Empty(t, incident.Region)
}

func TestIncidentRepository_RegionScenario(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()

	incident, err := repo.Create(ctx, kitchenFire())
	require.NoError(t, err)
	assert.Equal(t, models.StatusAlertReceived, incident.Status)

	_, err = repo.UpdateStatus(ctx, incident.ID, models.StatusRespondersEnRoute)
	require.NoError(t, err)

	all := repo.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusRespondersEnRoute, all[0].Status)

	assert.Empty(t, repo.GetByRegion(ctx, "Rabat-Salé-Kénitra"))
	casa := repo.GetByRegion(ctx, "Casablanca-Settat")
	require.Len(t, casa, 1)
	assert.Equal(t, incident.ID, casa[0].ID)
}

func TestIncidentRepository_GetByRegionExactMatch(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()

	withRegion, err := repo.Create(ctx, kitchenFire())
	require.NoError(t, err)
	noRegion := kitchenFire()
	noRegion.Region = ""
	_, err = repo.Create(ctx, noRegion)
	require.NoError(t, err)
	rabat := kitchenFire()
	rabat.Region = "Rabat-Salé-Kénitra"
	_, err = repo.Create(ctx, rabat)
	require.NoError(t, err)

	got := repo.GetByRegion(ctx, "Casablanca-Settat")

	require.Len(t, got, 1)
	assert.Equal(t, withRegion.ID, got[0].ID)
	assert.Empty(t, repo.GetByRegion(ctx, ""))
}

func TestIncidentRepository_UpdateStatusIsPermissive(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()
	incident, err := repo.Create(ctx, kitchenFire())
	require.NoError(t, err)

	for _, status := range []models.IncidentStatus{
		models.StatusResolved,
		models.StatusAlertReceived,
		models.StatusInProgress,
		models.StatusRespondersEnRoute,
	} {
		_, err := repo.UpdateStatus(ctx, incident.ID, status)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, incident.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	_, err = repo.UpdateStatus(ctx, incident.ID, "CLOSED")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestIncidentRepository_UpdateStatusNotFound(t *testing.T) {
	repo := newTestIncidentRepository(t)

	_, err := repo.UpdateStatus(context.Background(), "missing", models.StatusResolved)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIncidentRepository_UpdateStatusIfGuardSeesStoredStatus(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()
	incident, err := repo.Create(ctx, kitchenFire())
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, incident.ID, models.StatusResolved)
	require.NoError(t, err)

	errChanged := errors.New("status changed")
	var seen models.IncidentStatus
	_, err = repo.UpdateStatusIf(ctx, incident.ID, models.StatusRespondersEnRoute, func(current models.IncidentStatus) error {
		seen = current
		if current != models.StatusAlertReceived {
			return errChanged
		}
		return nil
	})

	assert.ErrorIs(t, err, errChanged)
	assert.Equal(t, models.StatusResolved, seen)
	got, err := repo.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, got.Status)

	updated, err := repo.UpdateStatusIf(ctx, incident.ID, models.StatusInProgress, func(models.IncidentStatus) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
}

func TestIncidentRepository_AddCommentKeepsOrder(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()
	incident, err := repo.Create(ctx, kitchenFire())
	require.NoError(t, err)

	// Часы идут назад: время комментариев все равно не убывает
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(-time.Duration(tick) * time.Minute)
	}

	const n = 5
	for i := 0; i < n; i++ {
		_, err := repo.AddComment(ctx, incident.ID, "Admin Casablanca", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}

	got, err := repo.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, n)
	for i, c := range got.Comments {
		assert.Equal(t, "Admin Casablanca", c.Author)
		assert.Equal(t, fmt.Sprintf("message %d", i), c.Message)
		if i > 0 {
			assert.False(t, c.CreatedAt.Before(got.Comments[i-1].CreatedAt))
		}
	}
}

func TestIncidentRepository_AddCommentRejectsBlank(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()
	incident, err := repo.Create(ctx, kitchenFire())
	require.NoError(t, err)

	_, err = repo.AddComment(ctx, incident.ID, "Admin", "  ")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = repo.AddComment(ctx, "missing", "Admin", "ok")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIncidentRepository_AssignUnknownAdminAccepted(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()
	incident, err := repo.Create(ctx, kitchenFire())
	require.NoError(t, err)

	assigned, err := repo.Assign(ctx, incident.ID, "admin-that-does-not-exist")

	require.NoError(t, err)
	assert.Equal(t, "admin-that-does-not-exist", assigned.AssignedTo)
	got, err := repo.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin-that-does-not-exist", got.AssignedTo)
}

func TestIncidentRepository_GetByUserID(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()
	mine := kitchenFire()
	mine.UserID = "u1"
	_, err := repo.Create(ctx, mine)
	require.NoError(t, err)
	_, err = repo.Create(ctx, kitchenFire())
	require.NoError(t, err)

	assert.Len(t, repo.GetByUserID(ctx, "u1"), 1)
	assert.Empty(t, repo.GetByUserID(ctx, ""))
}

func TestIncidentRepository_ReturnedRecordIsDetached(t *testing.T) {
	repo := newTestIncidentRepository(t)
	ctx := context.Background()
	incident, err := repo.Create(ctx, kitchenFire())
	require.NoError(t, err)

	incident.Status = models.StatusResolved
	incident.Comments = append(incident.Comments, models.Comment{Message: "local"})

	got, err := repo.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAlertReceived, got.Status)
	assert.Empty(t, got.Comments)
}
