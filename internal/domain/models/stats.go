package models

// Statistics is the admin dashboard summary.
type Statistics struct {
	TotalUsers    int64          `json:"totalUsers"`
	TotalPartners int64          `json:"totalPartners"`
	TotalTours    int64          `json:"totalTours"`
	PendingTours  int64          `json:"pendingTours"`
	TotalBookings int64          `json:"totalBookings"`
	TotalRevenue  int64          `json:"totalRevenue"`
	Monthly       []MonthRevenue `json:"monthly"`
}

// MonthRevenue is one point of the revenue series.
type MonthRevenue struct {
	Month    string `json:"month"` // YYYY-MM
	Revenue  int64  `json:"revenue"`
	Bookings int64  `json:"bookings"`
}
