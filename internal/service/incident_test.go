package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/config"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/shenikar/urgences_dashboard/internal/service/mocks"
	"github.com/shenikar/urgences_dashboard/internal/webhook"
	webhook_mocks "github.com/shenikar/urgences_dashboard/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	superAdmin    = models.Actor{ID: "super", Name: "Super Admin", Role: models.RoleSuperAdmin}
	casaAdmin     = models.Actor{ID: "casa", Name: "Admin Casablanca", Role: models.RoleRegionalAdmin, Region: "Casablanca-Settat"}
	citizen       = models.Actor{ID: "u1", Name: "Citoyen", Role: models.RoleCitizen}
	anonymousUser = models.Actor{Role: models.RoleCitizen}
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestPolicy(t *testing.T) *access.Policy {
	policy, err := access.NewPolicy()
	require.NoError(t, err)
	return policy
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T, cfg *config.Config) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockRegionalAdminRepository, *webhook_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	adminsMock := mocks.NewMockRegionalAdminRepository(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	if cfg == nil {
		cfg = &config.Config{}
	}

	service := NewIncidentService(repoMock, adminsMock, newTestPolicy(t), publisherMock, newTestLogger(), cfg)
	return service.(*incidentService), repoMock, adminsMock, publisherMock
}

func testIncident(id, region string, status models.IncidentStatus, createdAt time.Time) *models.Incident {
	return &models.Incident{
		ID:          id,
		Type:        models.VitalEmergency,
		SubType:     "FIRE",
		Latitude:    33.57,
		Longitude:   -7.59,
		Region:      region,
		Description: "Incendie",
		Status:      status,
		Comments:    []models.Comment{},
		CreatedAt:   createdAt,
	}
}

func TestReportIncident_SetsReporterAndPublishes(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestIncidentService(t, nil)
	ctx := context.Background()
	in := models.IncidentInput{
		Type:        models.CivilProblem,
		SubType:     "POTHOLE",
		Latitude:    33.57,
		Longitude:   -7.59,
		Description: "Nid de poule",
	}
	created := testIncident("i1", "", models.StatusAlertReceived, time.Now().UTC())

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.IncidentInput) (*models.Incident, error) {
			assert.Equal(t, citizen.ID, got.UserID)
			return created, nil
		}).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.IncidentEvent) error {
			assert.Equal(t, webhook.EventIncidentCreated, event.Kind)
			assert.Equal(t, "i1", event.IncidentID)
			assert.Equal(t, citizen.ID, event.ActorID)
			return nil
		}).
		Times(1)

	// Действие
	incident, err := service.ReportIncident(ctx, citizen, in)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, created, incident)
}

func TestReportIncident_PublishFailureIsIgnored(t *testing.T) {
	service, repoMock, _, publisherMock := newTestIncidentService(t, nil)
	ctx := context.Background()
	created := testIncident("i1", "Casablanca-Settat", models.StatusAlertReceived, time.Now().UTC())

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(created, nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis is down"))

	incident, err := service.ReportIncident(ctx, anonymousUser, models.IncidentInput{})

	require.NoError(t, err)
	assert.Equal(t, "i1", incident.ID)
}

func TestReportIncident_ValidationError(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t, nil)
	ctx := context.Background()

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil, models.NewValidationError("description", "required"))

	incident, err := service.ReportIncident(ctx, citizen, models.IncidentInput{})

	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListIncidents_RegionalAdminScopedBeforeFilter(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t, nil)
	ctx := context.Background()
	now := time.Now().UTC()
	older := testIncident("old", "Casablanca-Settat", models.StatusAlertReceived, now.Add(-time.Hour))
	newer := testIncident("new", "Casablanca-Settat", models.StatusAlertReceived, now)
	resolved := testIncident("done", "Casablanca-Settat", models.StatusResolved, now)

	repoMock.EXPECT().
		GetByRegion(ctx, "Casablanca-Settat").
		Return([]*models.Incident{older, resolved, newer})

	incidents, err := service.ListIncidents(ctx, casaAdmin, access.IncidentFilter{Status: models.StatusAlertReceived})

	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, "new", incidents[0].ID)
	assert.Equal(t, "old", incidents[1].ID)
}

func TestListIncidents_SuperAdminSeesAll(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t, nil)
	ctx := context.Background()
	now := time.Now().UTC()
	all := []*models.Incident{
		testIncident("casa", "Casablanca-Settat", models.StatusAlertReceived, now),
		testIncident("rabat", "Rabat-Salé-Kénitra", models.StatusAlertReceived, now),
	}

	repoMock.EXPECT().GetAll(ctx).Return(all)

	incidents, err := service.ListIncidents(ctx, superAdmin, access.IncidentFilter{})

	require.NoError(t, err)
	assert.Len(t, incidents, 2)
}

func TestListIncidents_CitizenSeesOwnReports(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t, nil)
	ctx := context.Background()

	repoMock.EXPECT().GetByUserID(ctx, citizen.ID).Return([]*models.Incident{})

	incidents, err := service.ListIncidents(ctx, citizen, access.IncidentFilter{})

	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestListIncidents_AnonymousSeesNothing(t *testing.T) {
	service, _, _, _ := newTestIncidentService(t, nil)

	incidents, err := service.ListIncidents(context.Background(), anonymousUser, access.IncidentFilter{})

	require.NoError(t, err)
	assert.NotNil(t, incidents)
	assert.Empty(t, incidents)
}

func TestGetIncident_OutsideRegionForbidden(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t, nil)
	ctx := context.Background()

	repoMock.EXPECT().
		GetByID(ctx, "rabat").
		Return(testIncident("rabat", "Rabat-Salé-Kénitra", models.StatusAlertReceived, time.Now().UTC()), nil)

	incident, err := service.GetIncident(ctx, casaAdmin, "rabat")

	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestUpdateStatus_CitizenForbidden(t *testing.T) {
	service, _, _, _ := newTestIncidentService(t, nil)

	incident, err := service.UpdateStatus(context.Background(), citizen, "i1", models.StatusResolved)

	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestUpdateStatus_RegionalAdminOutsideRegionForbidden(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t, nil)
	ctx := context.Background()

	repoMock.EXPECT().
		GetByID(ctx, "rabat").
		Return(testIncident("rabat", "Rabat-Salé-Kénitra", models.StatusAlertReceived, time.Now().UTC()), nil)
	repoMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateStatus(ctx, casaAdmin, "rabat", models.StatusInProgress)

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t, nil)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, "missing").Return(nil, models.NotFoundError("incident", "missing"))

	_, err := service.UpdateStatus(ctx, superAdmin, "missing", models.StatusResolved)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateStatus_BackwardAllowedByDefault(t *testing.T) {
	service, repoMock, _, publisherMock := newTestIncidentService(t, nil)
	ctx := context.Background()
	current := testIncident("i1", "Casablanca-Settat", models.StatusResolved, time.Now().UTC())
	updated := testIncident("i1", "Casablanca-Settat", models.StatusAlertReceived, current.CreatedAt)

	repoMock.EXPECT().GetByID(ctx, "i1").Return(current, nil)
	repoMock.EXPECT().UpdateStatus(ctx, "i1", models.StatusAlertReceived).Return(updated, nil)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.IncidentEvent) error {
			assert.Equal(t, webhook.EventIncidentStatus, event.Kind)
			assert.Equal(t, models.StatusAlertReceived, event.Status)
			return nil
		})

	incident, err := service.UpdateStatus(ctx, casaAdmin, "i1", models.StatusAlertReceived)

	require.NoError(t, err)
	assert.Equal(t, models.StatusAlertReceived, incident.Status)
}

// applyGuard имитирует UpdateStatusIf репозитория: guard проверяется против stored,
// при успехе возвращается result.
func applyGuard(stored models.IncidentStatus, result *models.Incident) func(context.Context, string, models.IncidentStatus, models.StatusGuard) (*models.Incident, error) {
	return func(_ context.Context, _ string, _ models.IncidentStatus, guard models.StatusGuard) (*models.Incident, error) {
		if guard != nil {
			if err := guard(stored); err != nil {
				return nil, err
			}
		}
		return result, nil
	}
}

func TestUpdateStatus_StrictRejectsBackward(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t, &config.Config{StrictStatusTransitions: true})
	ctx := context.Background()
	current := testIncident("i1", "Casablanca-Settat", models.StatusInProgress, time.Now().UTC())

	repoMock.EXPECT().GetByID(ctx, "i1").Return(current, nil)
	repoMock.EXPECT().
		UpdateStatusIf(ctx, "i1", models.StatusRespondersEnRoute, gomock.Any()).
		DoAndReturn(applyGuard(models.StatusInProgress, nil))

	_, err := service.UpdateStatus(ctx, superAdmin, "i1", models.StatusRespondersEnRoute)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "status", validationErr.Field)
}

func TestUpdateStatus_StrictChecksStatusAtWriteTime(t *testing.T) {
	service, repoMock, _, publisherMock := newTestIncidentService(t, &config.Config{StrictStatusTransitions: true})
	ctx := context.Background()
	// Чтение видит ALERT_RECEIVED, но к моменту записи другой админ уже закрыл инцидент
	stale := testIncident("i1", "Casablanca-Settat", models.StatusAlertReceived, time.Now().UTC())

	repoMock.EXPECT().GetByID(ctx, "i1").Return(stale, nil)
	repoMock.EXPECT().
		UpdateStatusIf(ctx, "i1", models.StatusInProgress, gomock.Any()).
		DoAndReturn(applyGuard(models.StatusResolved, nil))
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateStatus(ctx, superAdmin, "i1", models.StatusInProgress)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "status", validationErr.Field)
	assert.Contains(t, validationErr.Reason, "RESOLVED")
}

func TestUpdateStatus_StrictAllowsForwardJump(t *testing.T) {
	service, repoMock, _, publisherMock := newTestIncidentService(t, &config.Config{StrictStatusTransitions: true})
	ctx := context.Background()
	current := testIncident("i1", "Casablanca-Settat", models.StatusAlertReceived, time.Now().UTC())
	updated := testIncident("i1", "Casablanca-Settat", models.StatusResolved, current.CreatedAt)

	repoMock.EXPECT().GetByID(ctx, "i1").Return(current, nil)
	repoMock.EXPECT().
		UpdateStatusIf(ctx, "i1", models.StatusResolved, gomock.Any()).
		DoAndReturn(applyGuard(models.StatusAlertReceived, updated))
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	incident, err := service.UpdateStatus(ctx, superAdmin, "i1", models.StatusResolved)

	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, incident.Status)
}

func TestAddComment_UsesActorName(t *testing.T) {
	service, repoMock, _, _ := newTestIncidentService(t, nil)
	ctx := context.Background()
	incident := testIncident("i1", "Casablanca-Settat", models.StatusInProgress, time.Now().UTC())
	commented := testIncident("i1", "Casablanca-Settat", models.StatusInProgress, incident.CreatedAt)
	commented.Comments = []models.Comment{{Author: casaAdmin.Name, Message: "Équipe sur place"}}

	repoMock.EXPECT().GetByID(ctx, "i1").Return(incident, nil)
	repoMock.EXPECT().AddComment(ctx, "i1", casaAdmin.Name, "Équipe sur place").Return(commented, nil)

	got, err := service.AddComment(ctx, casaAdmin, "i1", "Équipe sur place")

	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, casaAdmin.Name, got.Comments[0].Author)
}

func TestAssignIncident_UnknownAdminAccepted(t *testing.T) {
	service, repoMock, adminsMock, publisherMock := newTestIncidentService(t, nil)
	ctx := context.Background()
	incident := testIncident("i1", "Casablanca-Settat", models.StatusAlertReceived, time.Now().UTC())
	assigned := testIncident("i1", "Casablanca-Settat", models.StatusAlertReceived, incident.CreatedAt)
	assigned.AssignedTo = "ghost"

	repoMock.EXPECT().GetByID(ctx, "i1").Return(incident, nil)
	adminsMock.EXPECT().GetByID(ctx, "ghost").Return(nil, models.NotFoundError("regional admin", "ghost"))
	repoMock.EXPECT().Assign(ctx, "i1", "ghost").Return(assigned, nil)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.IncidentEvent) error {
			assert.Equal(t, webhook.EventIncidentAssigned, event.Kind)
			assert.Equal(t, "ghost", event.AssignedTo)
			return nil
		})

	got, err := service.AssignIncident(ctx, superAdmin, "i1", "ghost")

	require.NoError(t, err)
	assert.Equal(t, "ghost", got.AssignedTo)
}

func TestReportIncident_AutoDispatchesVitalEmergency(t *testing.T) {
	service, repoMock, _, publisherMock := newTestIncidentService(t, &config.Config{AutoDispatchDelay: 10 * time.Millisecond})
	ctx := context.Background()
	created := testIncident("i1", "Casablanca-Settat", models.StatusAlertReceived, time.Now().UTC())
	dispatched := testIncident("i1", "Casablanca-Settat", models.StatusRespondersEnRoute, created.CreatedAt)
	done := make(chan struct{})

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(created, nil)
	repoMock.EXPECT().
		UpdateStatusIf(gomock.Any(), "i1", models.StatusRespondersEnRoute, gomock.Any()).
		DoAndReturn(applyGuard(models.StatusAlertReceived, dispatched))
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.IncidentEvent) error {
			if event.Kind == webhook.EventIncidentStatus {
				close(done)
			}
			return nil
		}).
		Times(2)

	_, err := service.ReportIncident(ctx, citizen, models.IncidentInput{})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("incident was not auto-dispatched")
	}
}

func TestReportIncident_AutoDispatchSkipsChangedStatus(t *testing.T) {
	service, repoMock, _, publisherMock := newTestIncidentService(t, &config.Config{AutoDispatchDelay: 10 * time.Millisecond})
	ctx := context.Background()
	created := testIncident("i1", "Casablanca-Settat", models.StatusAlertReceived, time.Now().UTC())
	attempted := make(chan struct{})

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(created, nil)
	repoMock.EXPECT().
		UpdateStatusIf(gomock.Any(), "i1", models.StatusRespondersEnRoute, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string, status models.IncidentStatus, guard models.StatusGuard) (*models.Incident, error) {
			defer close(attempted)
			// Админ успел закрыть инцидент до срабатывания таймера
			return applyGuard(models.StatusResolved, nil)(ctx, id, status, guard)
		})
	// Только событие о создании
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := service.ReportIncident(ctx, citizen, models.IncidentInput{})
	require.NoError(t, err)

	select {
	case <-attempted:
	case <-time.After(time.Second):
		t.Fatal("auto-dispatch did not run")
	}
	// Даем таймеру завершиться, лишний Publish провалит тест на контроллере
	time.Sleep(20 * time.Millisecond)
}
