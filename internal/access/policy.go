package access

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"github.com/shenikar/urgences_dashboard/internal/models"
)

type Resource string

const (
	ResourceIncident   Resource = "incident"
	ResourceAlert      Resource = "alert"
	ResourceGuide      Resource = "guide"
	ResourceAdmin      Resource = "admin"
	ResourceStats      Resource = "stats"
	ResourceClassifier Resource = "classifier"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionManage Action = "manage"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Роли наследуются: SUPER_ADMIN > REGIONAL_ADMIN > CITIZEN.
// Региональные ограничения проверяются отдельно, см. CanAccessIncident.
const rbacPolicy = `
p, CITIZEN, incident, read
p, CITIZEN, incident, create
p, CITIZEN, alert, read
p, CITIZEN, guide, read
p, CITIZEN, classifier, read
p, REGIONAL_ADMIN, incident, manage
p, REGIONAL_ADMIN, alert, manage
p, REGIONAL_ADMIN, guide, manage
p, REGIONAL_ADMIN, admin, read
p, REGIONAL_ADMIN, stats, read
p, SUPER_ADMIN, admin, manage
g, REGIONAL_ADMIN, CITIZEN
g, SUPER_ADMIN, REGIONAL_ADMIN
`

// Policy - ролевая политика доступа поверх casbin
type Policy struct {
	enforcer *casbin.Enforcer
}

func NewPolicy() (*Policy, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse access model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m, stringadapter.NewAdapter(rbacPolicy))
	if err != nil {
		return nil, fmt.Errorf("failed to create access enforcer: %w", err)
	}
	return &Policy{enforcer: enforcer}, nil
}

// Authorize возвращает ошибку ErrForbidden, если роль участника не дает права на действие
func (p *Policy) Authorize(actor models.Actor, resource Resource, action Action) error {
	ok, err := p.enforcer.Enforce(string(actor.Role), string(resource), string(action))
	if err != nil {
		return fmt.Errorf("access check failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s may not %s %s: %w", actor.Role, action, resource, models.ErrForbidden)
	}
	return nil
}

// CanAccessIncident проверяет видимость конкретного инцидента:
// супер-администратор видит все, региональный - только свой регион,
// гражданин - только свои обращения.
func CanAccessIncident(actor models.Actor, incident *models.Incident) bool {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return true
	case models.RoleRegionalAdmin:
		return incident.Region != "" && incident.Region == actor.Region
	default:
		return actor.ID != "" && incident.UserID == actor.ID
	}
}

// CanManageRegion сообщает, может ли администратор управлять данными региона
func CanManageRegion(actor models.Actor, region string) bool {
	if actor.IsSuperAdmin() {
		return true
	}
	return actor.IsRegionalAdmin() && region == actor.Region
}

// Normalize приводит участника к допустимому виду: неизвестная роль становится CITIZEN,
// региональный администратор без региона получает регион по умолчанию.
func Normalize(actor models.Actor) models.Actor {
	if !actor.Role.IsValid() {
		actor.Role = models.RoleCitizen
	}
	if actor.Role == models.RoleRegionalAdmin && !models.IsValidRegion(actor.Region) {
		actor.Region = models.DefaultRegion
	}
	return actor
}
