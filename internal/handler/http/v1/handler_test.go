package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/classifier"
	"github.com/shenikar/urgences_dashboard/internal/config"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/shenikar/urgences_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-jwt-secret"

type testMocks struct {
	incidents  *mocks.MockIncidentService
	alerts     *mocks.MockAlertService
	guides     *mocks.MockGuideService
	admins     *mocks.MockRegionalAdminService
	stats      *mocks.MockStatsService
	classifier *mocks.MockClassifierService
}

// newTestHandler создает роутер с мокированными сервисами
func newTestHandler(t *testing.T, apiKeys ...string) (*testMocks, *access.TokenService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		incidents:  mocks.NewMockIncidentService(ctrl),
		alerts:     mocks.NewMockAlertService(ctrl),
		guides:     mocks.NewMockGuideService(ctrl),
		admins:     mocks.NewMockRegionalAdminService(ctrl),
		stats:      mocks.NewMockStatsService(ctrl),
		classifier: mocks.NewMockClassifierService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:  apiKeys,
		TokenTTL: time.Hour,
	}
	tokens := access.NewTokenService(testSecret, cfg.TokenTTL)

	handler := NewHandler(Services{
		Incidents:  m.incidents,
		Alerts:     m.alerts,
		Guides:     m.guides,
		Admins:     m.admins,
		Stats:      m.stats,
		Classifier: m.classifier,
	}, tokens, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, tokens, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, tokens *access.TokenService, actor models.Actor) map[string]string {
	token, err := tokens.Issue(actor)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

const fireReport = `{"type":"VITAL_EMERGENCY","sub_type":"FIRE","latitude":33.57,"longitude":-7.59,"region":"Casablanca-Settat","description":"Kitchen fire"}`

func TestCreateIncident_Anonymous(t *testing.T) {
	m, _, router := newTestHandler(t)
	created := &models.Incident{
		ID:          "inc-1",
		Type:        models.VitalEmergency,
		SubType:     "FIRE",
		Region:      "Casablanca-Settat",
		Description: "Kitchen fire",
		Status:      models.StatusAlertReceived,
		Comments:    []models.Comment{},
		CreatedAt:   time.Now(),
	}

	m.incidents.EXPECT().
		ReportIncident(gomock.Any(), models.Actor{Role: models.RoleCitizen}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Actor, in models.IncidentInput) (*models.Incident, error) {
			assert.Equal(t, models.VitalEmergency, in.Type)
			assert.Equal(t, "FIRE", in.SubType)
			assert.Equal(t, "Casablanca-Settat", in.Region)
			return created, nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(fireReport))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "inc-1", resp.ID)
	assert.Equal(t, "ALERT_RECEIVED", resp.Status)
	assert.Empty(t, resp.UserID)
}

func TestCreateIncident_ActorFromToken(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	citizen := models.Actor{ID: "u1", Name: "Amina", Role: models.RoleCitizen}

	m.incidents.EXPECT().
		ReportIncident(gomock.Any(), citizen, gomock.Any()).
		Return(&models.Incident{ID: "inc-2", UserID: "u1", Status: models.StatusAlertReceived}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(fireReport), bearer(t, tokens, citizen))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	m, _, router := newTestHandler(t)

	m.incidents.EXPECT().ReportIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(`{"type": "VITAL_EMERGENCY"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	m, _, router := newTestHandler(t)
	body := `{"type":"VITAL_EMERGENCY","sub_type":"FIRE","latitude":33.57,"longitude":-7.59}` // Нет описания

	m.incidents.EXPECT().ReportIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"validation failed: description: required"}`, w.Body.String())
}

func TestCreateIncident_UnknownRegion(t *testing.T) {
	m, _, router := newTestHandler(t)
	body := `{"type":"CIVIL_PROBLEM","sub_type":"POTHOLE","latitude":34.02,"longitude":-6.84,"region":"Casablanca","description":"Hole"}`

	m.incidents.EXPECT().ReportIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"validation failed: region: region"}`, w.Body.String())
}

func TestCreateIncident_ValidationBodyMatchesServiceError(t *testing.T) {
	// Ошибка DTO и доменная ошибка валидации отдаются клиенту в одном формате
	m, _, router := newTestHandler(t)
	body := `{"type":"VITAL_EMERGENCY","sub_type":"FIRE","latitude":33.57,"longitude":-7.59,"description":"Feu"}`

	m.incidents.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.NewValidationError("latitude", "latitude"))

	fromService := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(body))
	fromDTO := makeRequest(router, http.MethodPost, "/api/v1/incidents",
		bytes.NewBufferString(`{"type":"VITAL_EMERGENCY","sub_type":"FIRE","latitude":133.57,"longitude":-7.59,"description":"Feu"}`))

	assert.Equal(t, http.StatusBadRequest, fromService.Code)
	assert.Equal(t, http.StatusBadRequest, fromDTO.Code)
	assert.JSONEq(t, fromService.Body.String(), fromDTO.Body.String())
	assert.JSONEq(t, `{"error":"validation failed: latitude: latitude"}`, fromDTO.Body.String())
}

func TestActorMiddleware_RejectsBadCredentials(t *testing.T) {
	foreign := access.NewTokenService("other-secret", time.Hour)
	foreignToken, err := foreign.Issue(models.Actor{ID: "x", Role: models.RoleSuperAdmin})
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
	}{
		{"garbage token", "Bearer not-a-token"},
		{"foreign signature", "Bearer " + foreignToken},
		{"not a bearer scheme", "Basic dXNlcjpwYXNz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _, router := newTestHandler(t)
			m.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, map[string]string{"Authorization": tc.header})

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAPIKey_Required(t *testing.T) {
	m, _, router := newTestHandler(t, "test-api-key")

	m.guides.EXPECT().ListGuides(gomock.Any(), gomock.Any()).Return([]*models.Guide{}, nil).Times(1)

	// Health-check доступен без ключа
	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/guides", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, http.MethodGet, "/api/v1/guides", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/guides", nil, map[string]string{"X-API-Key": "test-api-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetIncident_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{"forbidden", fmt.Errorf("service: get incident: %w", models.ErrForbidden), http.StatusForbidden, "access denied"},
		{"not found", models.NotFoundError("incident", "inc-9"), http.StatusNotFound, "not found"},
		{"conflict", fmt.Errorf("collection busy: %w", models.ErrConflict), http.StatusConflict, "concurrent modification"},
		{"validation", models.NewValidationError("status", "backward transition"), http.StatusBadRequest, "backward transition"},
		{"storage", errors.New("redis is down"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _, router := newTestHandler(t)
			m.incidents.EXPECT().GetIncident(gomock.Any(), gomock.Any(), "inc-9").Return(nil, tc.err).Times(1)

			w := makeRequest(router, http.MethodGet, "/api/v1/incidents/inc-9", nil)

			assert.Equal(t, tc.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestListIncidents_PassesFilter(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	admin := models.Actor{ID: "a1", Name: "Karim", Role: models.RoleSuperAdmin}
	expectedFilter := access.IncidentFilter{
		Search: "fire",
		Type:   models.VitalEmergency,
		Status: models.StatusInProgress,
		Region: "Casablanca-Settat",
	}

	m.incidents.EXPECT().
		ListIncidents(gomock.Any(), admin, expectedFilter).
		Return([]*models.Incident{{ID: "inc-1"}, {ID: "inc-2"}}, nil).
		Times(1)

	url := "/api/v1/incidents?search=fire&type=VITAL_EMERGENCY&status=IN_PROGRESS&region=Casablanca-Settat"
	w := makeRequest(router, http.MethodGet, url, nil, bearer(t, tokens, admin))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "inc-1", resp[0].ID)
}

func TestListMyIncidents_RouteNotShadowedByID(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	citizen := models.Actor{ID: "u1", Name: "Amina", Role: models.RoleCitizen}

	m.incidents.EXPECT().ListMyIncidents(gomock.Any(), citizen).Return([]*models.Incident{}, nil).Times(1)
	m.incidents.EXPECT().GetIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/mine", nil, bearer(t, tokens, citizen))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestUpdateIncidentStatus(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	admin := models.Actor{ID: "a2", Name: "Salma", Role: models.RoleRegionalAdmin, Region: "Casablanca-Settat"}

	m.incidents.EXPECT().
		UpdateStatus(gomock.Any(), admin, "inc-1", models.StatusRespondersEnRoute).
		Return(&models.Incident{ID: "inc-1", Status: models.StatusRespondersEnRoute}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/inc-1/status",
		bytes.NewBufferString(`{"status":"RESPONDERS_EN_ROUTE"}`), bearer(t, tokens, admin))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RESPONDERS_EN_ROUTE")
}

func TestUpdateIncidentStatus_UnknownStatus(t *testing.T) {
	m, _, router := newTestHandler(t)

	m.incidents.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/inc-1/status", bytes.NewBufferString(`{"status":"CLOSED"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddIncidentComment(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	admin := models.Actor{ID: "a1", Name: "Karim", Role: models.RoleSuperAdmin}
	commented := &models.Incident{
		ID:       "inc-1",
		Comments: []models.Comment{{Author: "Karim", Message: "Team dispatched", CreatedAt: time.Now()}},
	}

	m.incidents.EXPECT().AddComment(gomock.Any(), admin, "inc-1", "Team dispatched").Return(commented, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/inc-1/comments",
		bytes.NewBufferString(`{"message":"Team dispatched"}`), bearer(t, tokens, admin))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "Karim", resp.Comments[0].Author)
}

func TestAssignIncident_Forbidden(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	citizen := models.Actor{ID: "u1", Role: models.RoleCitizen}

	m.incidents.EXPECT().
		AssignIncident(gomock.Any(), citizen, "inc-1", "admin-3").
		Return(nil, models.ErrForbidden).
		Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/inc-1/assign",
		bytes.NewBufferString(`{"admin_id":"admin-3"}`), bearer(t, tokens, citizen))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateAlert(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	admin := models.Actor{ID: "a1", Name: "Karim", Role: models.RoleSuperAdmin}
	body := `{"title":"Storm","message":"Stay inside","level":"HIGH","active":true,"scope":"GLOBAL"}`

	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), admin, models.AlertInput{
			Title:   "Storm",
			Message: "Stay inside",
			Level:   models.LevelHigh,
			Active:  true,
			Scope:   models.ScopeGlobal,
		}).
		Return(&models.Alert{ID: "al-1", Title: "Storm", Scope: models.ScopeGlobal}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts", bytes.NewBufferString(body), bearer(t, tokens, admin))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"al-1"`)
}

func TestDeleteAlert_NoContent(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	admin := models.Actor{ID: "a1", Name: "Karim", Role: models.RoleSuperAdmin}

	m.alerts.EXPECT().DeleteAlert(gomock.Any(), admin, "al-1").Return(nil).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/alerts/al-1", nil, bearer(t, tokens, admin))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestUpdateGuide_NotFound(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	admin := models.Actor{ID: "a1", Name: "Karim", Role: models.RoleSuperAdmin}
	body := `{"title":"Fire","content":"Leave the building","category":"FIRE"}`

	m.guides.EXPECT().
		UpdateGuide(gomock.Any(), admin, "g-404", gomock.Any()).
		Return(nil, models.NotFoundError("guide", "g-404")).
		Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/guides/g-404", bytes.NewBufferString(body), bearer(t, tokens, admin))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListActiveAdmins(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	admin := models.Actor{ID: "a2", Name: "Salma", Role: models.RoleRegionalAdmin, Region: "Rabat-Salé-Kénitra"}

	m.admins.EXPECT().
		ListAssignable(gomock.Any(), admin).
		Return([]*models.RegionalAdmin{{ID: "ra-2", Region: "Rabat-Salé-Kénitra", Active: true}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/admins/active", nil, bearer(t, tokens, admin))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RegionalAdminResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "ra-2", resp[0].ID)
}

func TestGetStats(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	admin := models.Actor{ID: "a1", Name: "Karim", Role: models.RoleSuperAdmin}

	m.stats.EXPECT().Stats(gomock.Any(), admin).Return(&models.DashboardStats{
		TotalIncidents:  3,
		ActiveIncidents: 2,
		Resolved:        1,
		TotalAdmins:     4,
	}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/stats", nil, bearer(t, tokens, admin))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalIncidents)
	assert.Equal(t, 2, resp.ActiveIncidents)
	assert.Equal(t, 4, resp.TotalAdmins)
}

func TestClassifyImage(t *testing.T) {
	m, _, router := newTestHandler(t)

	m.classifier.EXPECT().
		ClassifyImage(gomock.Any(), gomock.Any(), classifier.Image{Name: "fire_kitchen.jpg", Size: 2048, ContentType: "image/jpeg"}).
		Return(classifier.Result{Type: models.VitalEmergency, SubType: "FIRE", Confidence: 0.92}, nil).
		Times(1)

	body := `{"name":"fire_kitchen.jpg","size":2048,"content_type":"image/jpeg","expected_type":"VITAL_EMERGENCY"}`
	w := makeRequest(router, http.MethodPost, "/api/v1/classify", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FIRE", resp.SubType)
	assert.True(t, resp.Applies)
}

func TestClassifyImage_WrongFormDoesNotApply(t *testing.T) {
	m, _, router := newTestHandler(t)

	m.classifier.EXPECT().
		ClassifyImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(classifier.Result{Type: models.VitalEmergency, SubType: "FIRE", Confidence: 0.92}, nil).
		Times(1)

	body := `{"name":"fire.jpg","size":10,"expected_type":"CIVIL_PROBLEM"}`
	w := makeRequest(router, http.MethodPost, "/api/v1/classify", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"applies":false`)
}

func TestListRegions(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/regions", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var regions []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &regions))
	assert.Len(t, regions, 12)
	assert.Equal(t, "Tanger-Tétouan-Al Hoceïma", regions[0])
}

func TestLogin_IssuesUsableToken(t *testing.T) {
	m, tokens, router := newTestHandler(t)
	body := `{"id":"a2","name":"Salma","role":"REGIONAL_ADMIN"}` // Регион не указан

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))

	require.Equal(t, http.StatusOK, w.Code)
	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.DefaultRegion, resp.Actor.Region)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	actor, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleRegionalAdmin, actor.Role)
	assert.Equal(t, models.DefaultRegion, actor.Region)

	// Выпущенный токен принимается остальными маршрутами
	m.incidents.EXPECT().ListMyIncidents(gomock.Any(), actor).Return(nil, nil).Times(1)
	w = makeRequest(router, http.MethodGet, "/api/v1/incidents/mine", nil, map[string]string{"Authorization": "Bearer " + resp.Token})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_UnknownRole(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"name":"X","role":"ROOT"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
