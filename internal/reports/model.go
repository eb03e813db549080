package reports

// ParishAnalytics is the impact summary for a single parish. Month
// figures cover the current calendar month.
type ParishAnalytics struct {
	ParishID            uint     `json:"parish_id"`
	ParishName          string   `json:"parish_name"`
	City                string   `json:"city"`
	State               string   `json:"state"`
	ServicesOffered     []string `json:"services_offered"`
	TotalEvents         int64    `json:"total_events"`
	UpcomingEvents      int64    `json:"upcoming_events"`
	PastEvents          int64    `json:"past_events"`
	EventsThisMonth     int64    `json:"events_this_month"`
	TotalRegistrations  int64    `json:"total_registrations"`
	VolunteersThisMonth int64    `json:"volunteers_this_month"`
	UniqueVolunteers    int64    `json:"unique_volunteers"`
}

// ParishSummaryRow is one line of the all-parish export.
type ParishSummaryRow struct {
	ParishName         string `gorm:"column:parish_name"`
	City               string `gorm:"column:city"`
	State              string `gorm:"column:state"`
	TotalEvents        int64  `gorm:"column:total_events"`
	TotalRegistrations int64  `gorm:"column:total_registrations"`
}
