package history

// VisitResponse один завершенный визит в истории
type VisitResponse struct {
	BookingID   int64   `json:"bookingId"`
	SalonID     int64   `json:"salonId"`
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`       // Цена на момент визита
	VisitDate   string  `json:"visitDate"`   // "2026-03-10"
	StartTime   string  `json:"startTime"`   // "10:00"
	Description *string `json:"description,omitempty"` // Актуальное описание услуги из каталога
}

// ServiceStatsResponse агрегаты по одной услуге
type ServiceStatsResponse struct {
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Visits      int     `json:"visits"`
	TotalSpent  float64 `json:"totalSpent"`
}

// HistoryResponse история процедур клиента с агрегатами
type HistoryResponse struct {
	ClientID    int64                  `json:"clientId"`
	TotalVisits int                    `json:"totalVisits"`
	TotalSpent  float64                `json:"totalSpent"`
	LastVisit   *string                `json:"lastVisit,omitempty"` // "2026-03-10"
	Visits      []VisitResponse        `json:"visits"`
	ByService   []ServiceStatsResponse `json:"byService"`
}
