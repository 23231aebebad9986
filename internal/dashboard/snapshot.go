package dashboard

import "time"

// RecentOrder is a summarized order row for the dashboard table.
type RecentOrder struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
	Date     string  `json:"date"`
}

// MonthRevenue is one point of the revenue trend chart.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// TopProduct is one row of the top selling products table.
type TopProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// StatusDistribution holds the four charted status counts. Orders with other
// statuses are absent here; see Snapshot.UnmappedStatuses.
type StatusDistribution struct {
	Delivered  int `json:"delivered"`
	Processing int `json:"processing"`
	Pending    int `json:"pending"`
	Cancelled  int `json:"cancelled"`
}

// StatusCount tallies one raw status value outside the charted buckets.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Snapshot is the computed analytics result for one aggregation cycle. It is
// built fresh on every successful cycle and replaced wholesale, never patched.
type Snapshot struct {
	TotalOrders             int                `json:"total_orders"`
	TotalProducts           int                `json:"total_products"`
	TotalCustomers          int                `json:"total_customers"`
	TotalRevenue            float64            `json:"total_revenue"`
	AverageOrderValue       float64            `json:"average_order_value"`
	PendingOrders           int                `json:"pending_orders"`
	CompletedOrders         int                `json:"completed_orders"`
	RevenueChangePercent    float64            `json:"revenue_change_percent"`
	LastMonthRevenue        float64            `json:"last_month_revenue"`
	RecentOrders            []RecentOrder      `json:"recent_orders"`
	OrderStatusDistribution StatusDistribution `json:"order_status_distribution"`
	UnmappedStatuses        []StatusCount      `json:"unmapped_statuses,omitempty"`
	RevenueByMonth          []MonthRevenue     `json:"revenue_by_month"`
	TopProducts             []TopProduct       `json:"top_products"`
	GeneratedAt             time.Time          `json:"generated_at"`
}
