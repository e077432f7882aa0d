package kpi

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepeatCustomerRow reports a customer with more than one distinct order.
type RepeatCustomerRow struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	OrderCount   int    `json:"order_count"`
}

// MonthlyTrendRow aggregates the full order set for one calendar month.
type MonthlyTrendRow struct {
	Month           string          `json:"month"` // "YYYY-MM"
	TotalOrders     int             `json:"total_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	UniqueCustomers int             `json:"unique_customers"`
}

// RegionalRevenueRow aggregates customer-matched order lines per region.
// AvgOrderValue is a derived display value and is the only figure computed
// with floating-point division.
type RegionalRevenueRow struct {
	Region          string          `json:"region"`
	TotalOrders     int             `json:"total_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	UniqueCustomers int             `json:"unique_customers"`
	AvgOrderValue   float64         `json:"avg_order_value"`
}

// TopCustomerRow reports one of the highest-spending customers inside the
// trailing analysis window.
type TopCustomerRow struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Region       string          `json:"region"`
	OrderCount   int             `json:"order_count"`
	TotalSpend   decimal.Decimal `json:"total_spend"`
}

// Report bundles the four KPI result sets of a single analysis run.
// GeneratedAt is the run's reference now: it is captured once and every
// relative-time comparison in the run uses it.
type Report struct {
	RunID           string               `json:"run_id"`
	GeneratedAt     time.Time            `json:"generated_at"`
	WindowDays      int                  `json:"window_days"`
	RepeatCustomers []RepeatCustomerRow  `json:"repeat_customers"`
	MonthlyTrends   []MonthlyTrendRow    `json:"monthly_trends"`
	RegionalRevenue []RegionalRevenueRow `json:"regional_revenue"`
	TopCustomers    []TopCustomerRow     `json:"top_customers"`
}
