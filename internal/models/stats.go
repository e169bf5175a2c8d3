package models

// DashboardStats - сводка для панели администратора
type DashboardStats struct {
	TotalIncidents  int `json:"total_incidents"`
	ActiveIncidents int `json:"active_incidents"`
	Resolved        int `json:"resolved"`
	VitalEmergency  int `json:"vital_emergency"`
	CivilProblem    int `json:"civil_problem"`
	TotalAlerts     int `json:"total_alerts"`
	ActiveAlerts    int `json:"active_alerts"`
	TotalAdmins     int `json:"total_admins"`
}
