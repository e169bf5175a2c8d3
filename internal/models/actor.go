package models

type Role string

const (
	RoleCitizen       Role = "CITIZEN"
	RoleRegionalAdmin Role = "REGIONAL_ADMIN"
	RoleSuperAdmin    Role = "SUPER_ADMIN"
)

func (r Role) IsValid() bool {
	return r == RoleCitizen || r == RoleRegionalAdmin || r == RoleSuperAdmin
}

// Actor - участник, от имени которого выполняется запрос.
// Передается явно в каждый вызов сервиса.
type Actor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Region string `json:"region,omitempty"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleRegionalAdmin || a.Role == RoleSuperAdmin
}

func (a Actor) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

func (a Actor) IsRegionalAdmin() bool {
	return a.Role == RoleRegionalAdmin
}
