// Package kpi implements the join/aggregate engine behind the analytics run.
// The engine is written once against plain entity slices: whichever way a
// dataset was materialized (decoded straight from the input files or read
// back from the relational store), the same code computes the same KPIs.
package kpi

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/entity"
)

const (
	DefaultWindowDays   = 30
	DefaultTopCustomers = 10
)

// Dataset is one immutable snapshot of normalized records. The engine never
// mutates it, so a single dataset can back any number of computations.
type Dataset struct {
	Customers []entity.Customer
	Orders    []entity.OrderLine
}

// Engine computes the four KPIs over a Dataset. All KPI computations are
// independent: each reads the dataset and produces its own result rows.
type Engine struct {
	loc        *time.Location
	windowDays int
	topN       int
}

func NewEngine(loc *time.Location, windowDays, topN int) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if topN <= 0 {
		topN = DefaultTopCustomers
	}
	return &Engine{loc: loc, windowDays: windowDays, topN: topN}
}

// joined pairs an order line with the customer owning its mobile number.
type joined struct {
	line     *entity.OrderLine
	customer *entity.Customer
}

// join performs the inner join of order lines to customers on mobile number.
// Order lines whose mobile number has no customer row are excluded, exactly
// as an inner join would exclude them. Duplicate mobile numbers keep the
// last customer seen.
func (e *Engine) join(ds *Dataset) []joined {
	byMobile := make(map[string]*entity.Customer, len(ds.Customers))
	for i := range ds.Customers {
		c := &ds.Customers[i]
		byMobile[c.MobileNumber] = c
	}

	rows := make([]joined, 0, len(ds.Orders))
	for i := range ds.Orders {
		o := &ds.Orders[i]
		c, ok := byMobile[o.MobileNumber]
		if !ok {
			continue
		}
		rows = append(rows, joined{line: o, customer: c})
	}
	return rows
}

// Run computes all four KPIs against one reference instant and bundles them
// into a Report. Callers stamp the report with their run ID.
func (e *Engine) Run(ds *Dataset, now time.Time) *Report {
	rows := e.join(ds)
	return &Report{
		GeneratedAt:     now,
		WindowDays:      e.windowDays,
		RepeatCustomers: e.repeatCustomers(rows),
		MonthlyTrends:   e.monthlyTrends(ds),
		RegionalRevenue: e.regionalRevenue(rows),
		TopCustomers:    e.topCustomers(rows, now),
	}
}

// RepeatCustomers returns customers with more than one distinct order,
// most orders first, customer ID breaking ties.
func (e *Engine) RepeatCustomers(ds *Dataset) []RepeatCustomerRow {
	return e.repeatCustomers(e.join(ds))
}

func (e *Engine) repeatCustomers(rows []joined) []RepeatCustomerRow {
	type agg struct {
		name   string
		orders map[string]struct{}
	}
	byCustomer := make(map[string]*agg)
	for _, r := range rows {
		a, ok := byCustomer[r.customer.CustomerID]
		if !ok {
			a = &agg{name: r.customer.CustomerName, orders: make(map[string]struct{})}
			byCustomer[r.customer.CustomerID] = a
		}
		a.orders[r.line.OrderID] = struct{}{}
	}

	out := make([]RepeatCustomerRow, 0, len(byCustomer))
	for id, a := range byCustomer {
		if len(a.orders) < 2 {
			continue
		}
		out = append(out, RepeatCustomerRow{
			CustomerID:   id,
			CustomerName: a.name,
			OrderCount:   len(a.orders),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderCount != out[j].OrderCount {
			return out[i].OrderCount > out[j].OrderCount
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	return out
}

// MonthlyTrends aggregates the entire order set per calendar month in the
// engine's timezone, oldest month first. It deliberately runs over all
// orders, matched to a customer or not, so the trend reflects everything
// that was sold.
func (e *Engine) MonthlyTrends(ds *Dataset) []MonthlyTrendRow {
	return e.monthlyTrends(ds)
}

func (e *Engine) monthlyTrends(ds *Dataset) []MonthlyTrendRow {
	type agg struct {
		orders  map[string]struct{}
		mobiles map[string]struct{}
		revenue decimal.Decimal
	}
	byMonth := make(map[string]*agg)
	for i := range ds.Orders {
		o := &ds.Orders[i]
		key := o.Month(e.loc)
		a, ok := byMonth[key]
		if !ok {
			a = &agg{orders: make(map[string]struct{}), mobiles: make(map[string]struct{})}
			byMonth[key] = a
		}
		a.orders[o.OrderID] = struct{}{}
		a.mobiles[o.MobileNumber] = struct{}{}
		a.revenue = a.revenue.Add(o.TotalAmount)
	}

	out := make([]MonthlyTrendRow, 0, len(byMonth))
	for month, a := range byMonth {
		out = append(out, MonthlyTrendRow{
			Month:           month,
			TotalOrders:     len(a.orders),
			TotalRevenue:    a.revenue,
			UniqueCustomers: len(a.mobiles),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// RegionalRevenue aggregates customer-matched order lines per region,
// highest revenue first, region name breaking ties.
func (e *Engine) RegionalRevenue(ds *Dataset) []RegionalRevenueRow {
	return e.regionalRevenue(e.join(ds))
}

func (e *Engine) regionalRevenue(rows []joined) []RegionalRevenueRow {
	type agg struct {
		orders    map[string]struct{}
		customers map[string]struct{}
		revenue   decimal.Decimal
	}
	byRegion := make(map[string]*agg)
	for _, r := range rows {
		a, ok := byRegion[r.customer.Region]
		if !ok {
			a = &agg{orders: make(map[string]struct{}), customers: make(map[string]struct{})}
			byRegion[r.customer.Region] = a
		}
		a.orders[r.line.OrderID] = struct{}{}
		a.customers[r.customer.CustomerID] = struct{}{}
		a.revenue = a.revenue.Add(r.line.TotalAmount)
	}

	out := make([]RegionalRevenueRow, 0, len(byRegion))
	for region, a := range byRegion {
		out = append(out, RegionalRevenueRow{
			Region:          region,
			TotalOrders:     len(a.orders),
			TotalRevenue:    a.revenue,
			UniqueCustomers: len(a.customers),
			AvgOrderValue:   a.revenue.InexactFloat64() / float64(len(a.orders)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalRevenue.Cmp(out[j].TotalRevenue); c != 0 {
			return c > 0
		}
		return out[i].Region < out[j].Region
	})
	return out
}

// TopCustomers ranks customers by total spend inside the trailing window
// ending at now. The window start is inclusive: an order placed exactly
// windowDays before now still counts.
func (e *Engine) TopCustomers(ds *Dataset, now time.Time) []TopCustomerRow {
	return e.topCustomers(e.join(ds), now)
}

func (e *Engine) topCustomers(rows []joined, now time.Time) []TopCustomerRow {
	cutoff := now.AddDate(0, 0, -e.windowDays)

	type agg struct {
		name   string
		region string
		orders map[string]struct{}
		spend  decimal.Decimal
	}
	byCustomer := make(map[string]*agg)
	for _, r := range rows {
		if r.line.OrderDateTime.Before(cutoff) {
			continue
		}
		a, ok := byCustomer[r.customer.CustomerID]
		if !ok {
			a = &agg{
				name:   r.customer.CustomerName,
				region: r.customer.Region,
				orders: make(map[string]struct{}),
			}
			byCustomer[r.customer.CustomerID] = a
		}
		a.orders[r.line.OrderID] = struct{}{}
		a.spend = a.spend.Add(r.line.TotalAmount)
	}

	out := make([]TopCustomerRow, 0, len(byCustomer))
	for id, a := range byCustomer {
		out = append(out, TopCustomerRow{
			CustomerID:   id,
			CustomerName: a.name,
			Region:       a.region,
			OrderCount:   len(a.orders),
			TotalSpend:   a.spend,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalSpend.Cmp(out[j].TotalSpend); c != 0 {
			return c > 0
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	if len(out) > e.topN {
		out = out[:e.topN]
	}
	return out
}
