package orders

import (
	"sort"
	"time"

	"github.com/Aravindhan20041506/Lacto-hub/internal/models"
)

// RevenuePolicy picks which orders count toward revenue. The storefront has
// always summed every order regardless of status; delivered-only is for
// books that should ignore uncollected cash-on-delivery orders.
type RevenuePolicy string

const (
	RevenueAllOrders     RevenuePolicy = "all"
	RevenueDeliveredOnly RevenuePolicy = "delivered"
)

// Stats are the dashboard headline numbers.
type Stats struct {
	TotalOrders   int
	PendingOrders int
	OrdersOnDate  int
	Revenue       float64
}

// ComputeStats derives the dashboard numbers from an order list. Pure. The
// reference date matters only down to the calendar day, evaluated in its own
// location.
func ComputeStats(all []models.Order, ref time.Time, policy RevenuePolicy) Stats {
	var st Stats
	refYear, refMonth, refDay := ref.Date()
	for _, o := range all {
		st.TotalOrders++
		if o.Status == models.StatusPending {
			st.PendingOrders++
		}
		y, m, d := o.OrderDate.In(ref.Location()).Date()
		if y == refYear && m == refMonth && d == refDay {
			st.OrdersOnDate++
		}
		if policy == RevenueDeliveredOnly && o.Status != models.StatusDelivered {
			continue
		}
		st.Revenue += o.Total
	}
	return st
}

// NewestFirst returns a copy sorted by order date, most recent first.
func NewestFirst(all []models.Order) []models.Order {
	out := make([]models.Order, len(all))
	copy(out, all)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out
}

// FilterByStatus keeps the orders with the given status.
func FilterByStatus(all []models.Order, status string) []models.Order {
	out := make([]models.Order, 0, len(all))
	for _, o := range all {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}
