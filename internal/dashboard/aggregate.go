package dashboard

import (
	"sort"
	"time"

	"github.com/acrispim/shopdash/internal/models"
)

const (
	recentOrdersLimit = 5
	topProductsLimit  = 5
	recentDateLayout  = "01/02/2006"

	customerFallback = "N/A"
	unknownProduct   = "Unknown Product"
)

// Aggregate computes a Snapshot from the raw collections. It is pure and
// total: empty collections, dangling product references and absent customers
// all produce defined results, never an error. The reference instant decides
// which orders count as current vs previous month.
func Aggregate(orders []models.Order, products []models.Product, users []models.User, ref time.Time) Snapshot {
	snap := Snapshot{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
		GeneratedAt:   ref,
	}

	for _, u := range users {
		if u.Role == "user" {
			snap.TotalCustomers++
		}
	}

	var currentMonthRevenue float64
	for _, o := range orders {
		snap.TotalRevenue += o.TotalAmount
		if SameMonth(o.CreatedAt, ref) {
			currentMonthRevenue += o.TotalAmount
		}
		if InPreviousMonth(o.CreatedAt, ref) {
			snap.LastMonthRevenue += o.TotalAmount
		}
		if o.Status == "pending" {
			snap.PendingOrders++
		}
		if o.Status == "delivered" {
			snap.CompletedOrders++
		}
	}

	if snap.LastMonthRevenue != 0 {
		snap.RevenueChangePercent = (currentMonthRevenue - snap.LastMonthRevenue) / snap.LastMonthRevenue * 100
	}
	if snap.TotalOrders > 0 {
		snap.AverageOrderValue = snap.TotalRevenue / float64(snap.TotalOrders)
	}

	snap.RecentOrders = recentOrders(orders)
	snap.OrderStatusDistribution, snap.UnmappedStatuses = statusDistribution(orders)
	snap.RevenueByMonth = revenueByMonth(orders)
	snap.TopProducts = topProducts(orders, products)

	return snap
}

// recentOrders returns up to five orders, newest first. The sort is stable so
// orders created at the same instant keep their input order.
func recentOrders(orders []models.Order) []RecentOrder {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > recentOrdersLimit {
		sorted = sorted[:recentOrdersLimit]
	}

	recent := make([]RecentOrder, len(sorted))
	for i, o := range sorted {
		customer := customerFallback
		if o.User != nil && o.User.Name != "" {
			customer = o.User.Name
		}
		recent[i] = RecentOrder{
			ID:       o.ID,
			Customer: customer,
			Amount:   o.TotalAmount,
			Status:   o.Status,
			Date:     o.CreatedAt.Format(recentDateLayout),
		}
	}
	return recent
}

// statusDistribution tallies the four charted buckets and, separately, every
// raw status value that fell outside them, in first-encountered order.
func statusDistribution(orders []models.Order) (StatusDistribution, []StatusCount) {
	var dist StatusDistribution
	var unmapped []StatusCount
	unmappedIdx := make(map[string]int)

	for _, o := range orders {
		switch b := BucketOf(o.Status); b.Kind {
		case BucketDelivered:
			dist.Delivered++
		case BucketProcessing:
			dist.Processing++
		case BucketPending:
			dist.Pending++
		case BucketCancelled:
			dist.Cancelled++
		case BucketUnmapped:
			i, ok := unmappedIdx[b.Raw]
			if !ok {
				i = len(unmapped)
				unmappedIdx[b.Raw] = i
				unmapped = append(unmapped, StatusCount{Status: b.Raw})
			}
			unmapped[i].Count++
		}
	}
	return dist, unmapped
}

// revenueByMonth accumulates order totals per month label. The first order
// seen for a month fixes that month's position in the output.
func revenueByMonth(orders []models.Order) []MonthRevenue {
	var months []MonthRevenue
	monthIdx := make(map[string]int)

	for _, o := range orders {
		label := MonthLabel(o.CreatedAt)
		i, ok := monthIdx[label]
		if !ok {
			i = len(months)
			monthIdx[label] = i
			months = append(months, MonthRevenue{Month: label})
		}
		months[i].Revenue += o.TotalAmount
	}
	return months
}

// topProducts ranks products by quantity sold across all order line items and
// resolves name and price from the catalog. A line item referencing a product
// missing from the catalog still ranks, with a fallback name and zero revenue.
func topProducts(orders []models.Order, products []models.Product) []TopProduct {
	var ranked []TopProduct
	rankIdx := make(map[string]int)

	for _, o := range orders {
		for _, item := range o.Items {
			id := item.Product.ID
			i, ok := rankIdx[id]
			if !ok {
				i = len(ranked)
				rankIdx[id] = i
				ranked = append(ranked, TopProduct{ProductID: id})
			}
			ranked[i].Quantity += item.Quantity
		}
	}

	// Stable: quantity ties keep first-encountered product order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}

	catalog := make(map[string]models.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	for i := range ranked {
		if p, ok := catalog[ranked[i].ProductID]; ok {
			ranked[i].Name = p.Name
			ranked[i].Revenue = p.Price * float64(ranked[i].Quantity)
		} else {
			ranked[i].Name = unknownProduct
		}
	}
	return ranked
}
