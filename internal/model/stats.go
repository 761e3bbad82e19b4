package model

import "github.com/shopspring/decimal"

// DashboardStats are the aggregate figures shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers          int             `json:"totalUsers"`
	TotalOrders         int             `json:"totalOrders"`
	PendingOrders       int             `json:"pendingOrders"`
	PendingDesignOrders int             `json:"pendingDesignOrders"`
	PublishedContents   int             `json:"publishedContents"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
}
