package dashboard

import (
	"math"
	"testing"
	"time"

	"github.com/acrispim/shopdash/internal/models"
)

var testRef = date(2025, time.June, 15)

func order(id string, amount float64, status string, at time.Time) models.Order {
	return models.Order{ID: id, CreatedAt: at, TotalAmount: amount, Status: status}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateEmptyCollections(t *testing.T) {
	snap := Aggregate(nil, nil, nil, testRef)

	if snap.TotalOrders != 0 || snap.TotalProducts != 0 || snap.TotalCustomers != 0 {
		t.Errorf("expected zero counts, got %+v", snap)
	}
	if snap.TotalRevenue != 0 || snap.AverageOrderValue != 0 || snap.RevenueChangePercent != 0 {
		t.Errorf("expected zero revenue figures, got %+v", snap)
	}
	if len(snap.RecentOrders) != 0 {
		t.Errorf("expected no recent orders, got %d", len(snap.RecentOrders))
	}
	if len(snap.TopProducts) != 0 {
		t.Errorf("expected no top products, got %d", len(snap.TopProducts))
	}
	if len(snap.RevenueByMonth) != 0 {
		t.Errorf("expected no monthly revenue, got %d", len(snap.RevenueByMonth))
	}
}

func TestAggregateRevenueChange(t *testing.T) {
	orders := []models.Order{
		order("o1", 100, "delivered", date(2025, time.June, 5)),
		order("o2", 50, "pending", date(2025, time.May, 20)),
	}

	snap := Aggregate(orders, nil, nil, testRef)

	if snap.TotalRevenue != 150 {
		t.Errorf("TotalRevenue = %v, want 150", snap.TotalRevenue)
	}
	if snap.TotalOrders != 2 {
		t.Errorf("TotalOrders = %v, want 2", snap.TotalOrders)
	}
	if snap.PendingOrders != 1 {
		t.Errorf("PendingOrders = %v, want 1", snap.PendingOrders)
	}
	if snap.CompletedOrders != 1 {
		t.Errorf("CompletedOrders = %v, want 1", snap.CompletedOrders)
	}
	if snap.LastMonthRevenue != 50 {
		t.Errorf("LastMonthRevenue = %v, want 50", snap.LastMonthRevenue)
	}
	if !almostEqual(snap.RevenueChangePercent, 100) {
		t.Errorf("RevenueChangePercent = %v, want 100", snap.RevenueChangePercent)
	}
	if !almostEqual(snap.AverageOrderValue, 75) {
		t.Errorf("AverageOrderValue = %v, want 75", snap.AverageOrderValue)
	}
}

func TestAggregateZeroLastMonthRevenueGuard(t *testing.T) {
	orders := []models.Order{
		order("o1", 100, "delivered", date(2025, time.June, 5)),
	}

	snap := Aggregate(orders, nil, nil, testRef)

	if snap.RevenueChangePercent != 0 {
		t.Errorf("RevenueChangePercent = %v, want 0 when last month had no revenue", snap.RevenueChangePercent)
	}
}

func TestAggregateNegativeRevenueChange(t *testing.T) {
	orders := []models.Order{
		order("o1", 40, "delivered", date(2025, time.June, 5)),
		order("o2", 200, "delivered", date(2025, time.May, 5)),
	}

	snap := Aggregate(orders, nil, nil, testRef)

	if !almostEqual(snap.RevenueChangePercent, -80) {
		t.Errorf("RevenueChangePercent = %v, want -80", snap.RevenueChangePercent)
	}
}

func TestAggregateCustomerCountFiltersRole(t *testing.T) {
	users := []models.User{
		{ID: "u1", Role: "user"},
		{ID: "u2", Role: "admin"},
		{ID: "u3", Role: "user"},
		{ID: "u4", Role: "manager"},
	}

	snap := Aggregate(nil, nil, users, testRef)

	if snap.TotalCustomers != 2 {
		t.Errorf("TotalCustomers = %v, want 2", snap.TotalCustomers)
	}
}

func TestRecentOrdersNewestFirstCappedAtFive(t *testing.T) {
	var orders []models.Order
	for day := 1; day <= 7; day++ {
		orders = append(orders, order("o"+string(rune('0'+day)), float64(day*10), "pending", date(2025, time.June, day)))
	}

	snap := Aggregate(orders, nil, nil, testRef)

	if len(snap.RecentOrders) != 5 {
		t.Fatalf("RecentOrders length = %d, want 5", len(snap.RecentOrders))
	}
	for i := 1; i < len(snap.RecentOrders); i++ {
		if snap.RecentOrders[i-1].Amount < snap.RecentOrders[i].Amount {
			t.Errorf("recent orders not newest first: %+v", snap.RecentOrders)
		}
	}
	if snap.RecentOrders[0].ID != "o7" {
		t.Errorf("newest order = %q, want o7", snap.RecentOrders[0].ID)
	}
	if snap.RecentOrders[0].Date != "06/07/2025" {
		t.Errorf("recent order date = %q, want 06/07/2025", snap.RecentOrders[0].Date)
	}
}

func TestRecentOrdersCustomerFallback(t *testing.T) {
	at := date(2025, time.June, 10)
	orders := []models.Order{
		{ID: "o1", CreatedAt: at, TotalAmount: 10, Status: "pending", User: &models.OrderCustomer{Name: "Asha Rao"}},
		{ID: "o2", CreatedAt: at.Add(-time.Hour), TotalAmount: 20, Status: "pending"},
		{ID: "o3", CreatedAt: at.Add(-2 * time.Hour), TotalAmount: 30, Status: "pending", User: &models.OrderCustomer{}},
	}

	snap := Aggregate(orders, nil, nil, testRef)

	if snap.RecentOrders[0].Customer != "Asha Rao" {
		t.Errorf("customer = %q, want Asha Rao", snap.RecentOrders[0].Customer)
	}
	if snap.RecentOrders[1].Customer != "N/A" {
		t.Errorf("customer without user = %q, want N/A", snap.RecentOrders[1].Customer)
	}
	if snap.RecentOrders[2].Customer != "N/A" {
		t.Errorf("customer with empty name = %q, want N/A", snap.RecentOrders[2].Customer)
	}
}

func TestRecentOrdersStableOnEqualTimestamps(t *testing.T) {
	at := date(2025, time.June, 10)
	orders := []models.Order{
		order("first", 1, "pending", at),
		order("second", 2, "pending", at),
		order("third", 3, "pending", at),
	}

	snap := Aggregate(orders, nil, nil, testRef)

	ids := []string{snap.RecentOrders[0].ID, snap.RecentOrders[1].ID, snap.RecentOrders[2].ID}
	want := []string{"first", "second", "third"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("tie order = %v, want %v", ids, want)
		}
	}
}

func TestStatusDistributionExcludesUnmappedButSurfacesThem(t *testing.T) {
	at := date(2025, time.June, 1)
	orders := []models.Order{
		order("o1", 1, "delivered", at),
		order("o2", 1, "processing", at),
		order("o3", 1, "confirmed", at),
		order("o4", 1, "confirmed", at),
		order("o5", 1, "out_for_delivery", at),
		order("o6", 1, "cancelled", at),
	}

	snap := Aggregate(orders, nil, nil, testRef)

	dist := snap.OrderStatusDistribution
	if dist.Delivered != 1 || dist.Processing != 1 || dist.Pending != 0 || dist.Cancelled != 1 {
		t.Errorf("distribution = %+v", dist)
	}

	charted := dist.Delivered + dist.Processing + dist.Pending + dist.Cancelled
	if charted > snap.TotalOrders {
		t.Errorf("charted statuses %d exceed total orders %d", charted, snap.TotalOrders)
	}

	if len(snap.UnmappedStatuses) != 2 {
		t.Fatalf("UnmappedStatuses = %+v, want 2 entries", snap.UnmappedStatuses)
	}
	if snap.UnmappedStatuses[0].Status != "confirmed" || snap.UnmappedStatuses[0].Count != 2 {
		t.Errorf("first unmapped = %+v, want confirmed x2", snap.UnmappedStatuses[0])
	}
	if snap.UnmappedStatuses[1].Status != "out_for_delivery" || snap.UnmappedStatuses[1].Count != 1 {
		t.Errorf("second unmapped = %+v, want out_for_delivery x1", snap.UnmappedStatuses[1])
	}
}

func TestRevenueByMonthInsertionOrderAndTotal(t *testing.T) {
	orders := []models.Order{
		order("o1", 10, "pending", date(2025, time.March, 1)),
		order("o2", 20, "pending", date(2025, time.January, 1)),
		order("o3", 5, "pending", date(2025, time.March, 20)),
		order("o4", 40, "pending", date(2025, time.February, 1)),
	}

	snap := Aggregate(orders, nil, nil, testRef)

	wantMonths := []string{"Mar", "Jan", "Feb"}
	if len(snap.RevenueByMonth) != len(wantMonths) {
		t.Fatalf("RevenueByMonth = %+v, want months %v", snap.RevenueByMonth, wantMonths)
	}
	for i, m := range wantMonths {
		if snap.RevenueByMonth[i].Month != m {
			t.Errorf("month[%d] = %q, want %q (first-encountered order)", i, snap.RevenueByMonth[i].Month, m)
		}
	}
	if snap.RevenueByMonth[0].Revenue != 15 {
		t.Errorf("Mar revenue = %v, want 15", snap.RevenueByMonth[0].Revenue)
	}

	var total float64
	for _, m := range snap.RevenueByMonth {
		total += m.Revenue
	}
	if !almostEqual(total, snap.TotalRevenue) {
		t.Errorf("monthly revenue sums to %v, total revenue is %v", total, snap.TotalRevenue)
	}
}

func TestTopProductsAccumulatesQuantities(t *testing.T) {
	at := date(2025, time.June, 1)
	products := []models.Product{{ID: "p1", Name: "Masala Chai", Price: 10}}
	orders := []models.Order{
		{ID: "o1", CreatedAt: at, Status: "pending", Items: []models.OrderItem{
			{Product: models.ProductRef{ID: "p1"}, Quantity: 3},
		}},
		{ID: "o2", CreatedAt: at, Status: "pending", Items: []models.OrderItem{
			{Product: models.ProductRef{ID: "p1"}, Quantity: 2},
		}},
	}

	snap := Aggregate(orders, products, nil, testRef)

	if len(snap.TopProducts) != 1 {
		t.Fatalf("TopProducts = %+v, want a single entry", snap.TopProducts)
	}
	top := snap.TopProducts[0]
	if top.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", top.Quantity)
	}
	if top.Name != "Masala Chai" {
		t.Errorf("name = %q", top.Name)
	}
	if !almostEqual(top.Revenue, 50) {
		t.Errorf("revenue = %v, want 50", top.Revenue)
	}
}

func TestTopProductsDanglingReference(t *testing.T) {
	at := date(2025, time.June, 1)
	orders := []models.Order{
		{ID: "o1", CreatedAt: at, Status: "pending", Items: []models.OrderItem{
			{Product: models.ProductRef{ID: "ghost"}, Quantity: 4},
		}},
	}

	snap := Aggregate(orders, nil, nil, testRef)

	if len(snap.TopProducts) != 1 {
		t.Fatalf("TopProducts = %+v, want a single entry", snap.TopProducts)
	}
	top := snap.TopProducts[0]
	if top.Name != "Unknown Product" {
		t.Errorf("name = %q, want Unknown Product", top.Name)
	}
	if top.Revenue != 0 {
		t.Errorf("revenue = %v, want 0 for a product missing from the catalog", top.Revenue)
	}
	if top.Quantity != 4 {
		t.Errorf("quantity = %d, want 4", top.Quantity)
	}
}

func TestTopProductsRankingStableAndCapped(t *testing.T) {
	at := date(2025, time.June, 1)
	items := func(refs ...models.OrderItem) []models.OrderItem { return refs }
	item := func(id string, qty int) models.OrderItem {
		return models.OrderItem{Product: models.ProductRef{ID: id}, Quantity: qty}
	}

	orders := []models.Order{
		{ID: "o1", CreatedAt: at, Status: "pending", Items: items(
			item("a", 5), item("b", 5), item("c", 7),
			item("d", 1), item("e", 2), item("f", 3),
		)},
	}

	snap := Aggregate(orders, nil, nil, testRef)

	if len(snap.TopProducts) != 5 {
		t.Fatalf("TopProducts length = %d, want 5", len(snap.TopProducts))
	}
	if snap.TopProducts[0].ProductID != "c" {
		t.Errorf("top product = %q, want c", snap.TopProducts[0].ProductID)
	}
	// a and b tie on quantity; a was encountered first.
	if snap.TopProducts[1].ProductID != "a" || snap.TopProducts[2].ProductID != "b" {
		t.Errorf("tie order = %q, %q, want a then b", snap.TopProducts[1].ProductID, snap.TopProducts[2].ProductID)
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	orders := []models.Order{
		order("o1", 10, "pending", date(2025, time.June, 2)),
		order("o2", 20, "pending", date(2025, time.June, 5)),
	}

	Aggregate(orders, nil, nil, testRef)

	if orders[0].ID != "o1" || orders[1].ID != "o2" {
		t.Errorf("input order slice was reordered: %+v", orders)
	}
}
