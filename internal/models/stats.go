package models

// Stats is the dashboard summary computed from the current collections
type Stats struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalReservations int     `json:"totalReservations"`
	TotalRevenue      int64   `json:"totalRevenue"`
	TotalCustomers    int     `json:"totalCustomers"`
	TotalReviews      int     `json:"totalReviews"`
	AvgRating         float64 `json:"avgRating"`
	TotalStaff        int     `json:"totalStaff"`
}
