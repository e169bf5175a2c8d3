package access

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Authorize(t *testing.T) {
	policy, err := NewPolicy()
	require.NoError(t, err)

	citizen := models.Actor{Role: models.RoleCitizen}
	regional := models.Actor{Role: models.RoleRegionalAdmin, Region: "Casablanca-Settat"}
	super := models.Actor{Role: models.RoleSuperAdmin}

	tests := []struct {
		name     string
		actor    models.Actor
		resource Resource
		action   Action
		allowed  bool
	}{
		{"citizen reports incident", citizen, ResourceIncident, ActionCreate, true},
		{"citizen reads guides", citizen, ResourceGuide, ActionRead, true},
		{"citizen cannot manage incidents", citizen, ResourceIncident, ActionManage, false},
		{"citizen cannot read stats", citizen, ResourceStats, ActionRead, false},
		{"regional admin inherits citizen rights", regional, ResourceClassifier, ActionRead, true},
		{"regional admin manages alerts", regional, ResourceAlert, ActionManage, true},
		{"regional admin reads admin roster", regional, ResourceAdmin, ActionRead, true},
		{"regional admin cannot manage admins", regional, ResourceAdmin, ActionManage, false},
		{"super admin manages admins", super, ResourceAdmin, ActionManage, true},
		{"super admin inherits everything", super, ResourceIncident, ActionCreate, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Authorize(tt.actor, tt.resource, tt.action)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, models.ErrForbidden)
			}
		})
	}
}

func TestCanAccessIncident(t *testing.T) {
	casa := &models.Incident{ID: "1", Region: "Casablanca-Settat", UserID: "u1"}
	noRegion := &models.Incident{ID: "2", UserID: "u2"}

	assert.True(t, CanAccessIncident(models.Actor{Role: models.RoleSuperAdmin}, noRegion))

	casaAdmin := models.Actor{Role: models.RoleRegionalAdmin, Region: "Casablanca-Settat"}
	rabatAdmin := models.Actor{Role: models.RoleRegionalAdmin, Region: "Rabat-Salé-Kénitra"}
	assert.True(t, CanAccessIncident(casaAdmin, casa))
	assert.False(t, CanAccessIncident(rabatAdmin, casa))
	assert.False(t, CanAccessIncident(casaAdmin, noRegion))

	assert.True(t, CanAccessIncident(models.Actor{ID: "u1", Role: models.RoleCitizen}, casa))
	assert.False(t, CanAccessIncident(models.Actor{ID: "u2", Role: models.RoleCitizen}, casa))
	assert.False(t, CanAccessIncident(models.Actor{Role: models.RoleCitizen}, &models.Incident{}))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, models.RoleCitizen, Normalize(models.Actor{Role: "ROOT"}).Role)

	regional := Normalize(models.Actor{Role: models.RoleRegionalAdmin, Region: "Atlantis"})
	assert.Equal(t, models.DefaultRegion, regional.Region)
}

func TestIncidentFilter_Apply(t *testing.T) {
	incidents := []*models.Incident{
		{ID: "1", Type: models.VitalEmergency, SubType: "FIRE", Status: models.StatusAlertReceived, Region: "Casablanca-Settat", Description: "Feu de cuisine"},
		{ID: "2", Type: models.CivilProblem, SubType: "POTHOLE", Status: models.StatusResolved, Region: "Casablanca-Settat", Description: "Trou", Address: "Boulevard Zerktouni"},
		{ID: "3", Type: models.CivilProblem, SubType: "WATER_LEAK", Status: models.StatusAlertReceived, Description: "Fuite"},
	}

	tests := []struct {
		name   string
		filter IncidentFilter
		want   []string
	}{
		{"empty filter keeps all", IncidentFilter{}, []string{"1", "2", "3"}},
		{"by type", IncidentFilter{Type: models.CivilProblem}, []string{"2", "3"}},
		{"by status", IncidentFilter{Status: models.StatusAlertReceived}, []string{"1", "3"}},
		{"by region", IncidentFilter{Region: "Casablanca-Settat"}, []string{"1", "2"}},
		{"search description case-insensitive", IncidentFilter{Search: "CUISINE"}, []string{"1"}},
		{"search subtype", IncidentFilter{Search: "water"}, []string{"3"}},
		{"search address", IncidentFilter{Search: "zerktouni"}, []string{"2"}},
		{"combined", IncidentFilter{Type: models.CivilProblem, Status: models.StatusAlertReceived}, []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(incidents)
			ids := make([]string, 0, len(got))
			for _, i := range got {
				ids = append(ids, i.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestTokenService_IssueAndParse(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	actor := models.Actor{ID: "a1", Name: "Admin Casablanca", Role: models.RoleRegionalAdmin, Region: "Casablanca-Settat"}

	token, err := tokens.Issue(actor)
	require.NoError(t, err)

	parsed, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, actor, parsed)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issued, err := NewTokenService("other-secret", time.Hour).Issue(models.Actor{ID: "a1", Role: models.RoleSuperAdmin})
	require.NoError(t, err)

	_, err = NewTokenService("test-secret", time.Hour).Parse(issued)

	assert.Error(t, err)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	claims := &ActorClaims{
		Role: string(models.RoleSuperAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tokens.Parse(expired)

	assert.Error(t, err)
}
