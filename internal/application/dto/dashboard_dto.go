package dto

import "time"

// DashboardStatsResponse indicadores del panel principal (recalculados en cada llamada).
type DashboardStatsResponse struct {
	ActivePatients         int `json:"active_patients"`
	TodayConsultations     int `json:"today_consultations"`
	Emergencies            int `json:"emergencies"`
	ActiveHospitalizations int `json:"active_hospitalizations"`
	BedCapacity            int `json:"bed_capacity"`
	OccupancyRate          int `json:"occupancy_rate"` // porcentaje entero
	LowStockAlerts         int `json:"low_stock_alerts"`
}

// ActivityResponse evento reciente del feed.
type ActivityResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	EntityID  string    `json:"entity_id"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
