package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/entity"
	"github.com/yaseenahmed1407/AkasaAir/internal/infrastructure/ingest"
	"github.com/yaseenahmed1407/AkasaAir/pkg/apperror"
)

// Input column names, as the source files spell them.
const (
	colCustomerID    = "customer_id"
	colCustomerName  = "customer_name"
	colMobileNumber  = "mobile_number"
	colRegion        = "region"
	colOrderID       = "order_id"
	colSKUID         = "sku_id"
	colOrderDateTime = "order_date_time"
	colSKUCount      = "sku_count"
	colTotalAmount   = "total_amount"
)

var (
	customerColumns = []string{colCustomerID, colCustomerName, colMobileNumber, colRegion}
	orderColumns    = []string{colOrderID, colSKUID, colMobileNumber, colOrderDateTime, colSKUCount, colTotalAmount}
)

// Accepted order timestamp layouts. Layouts without an offset are read in
// the normalizer's location; RFC3339 values carry their own offset and are
// converted into it.
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

var (
	errEmptyValue = errors.New("value is empty")
	errNegative   = errors.New("value must not be negative")
)

// Normalizer coerces raw input tables into typed entities. It is pure: the
// same table always yields the same records, and the first record that
// cannot be coerced fails the whole batch.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc}
}

// NormalizeCustomers validates and converts a decoded customers table.
// Identifier fields stay strings end to end; a mobile number is never a
// quantity. Within one batch the last occurrence of a customer ID wins,
// matching the end state an upsert of the same batch would leave.
func (n *Normalizer) NormalizeCustomers(table *ingest.RawTable) ([]entity.Customer, error) {
	for _, col := range customerColumns {
		if !table.HasColumn(col) {
			return nil, apperror.NewSchemaError(table.Source, col)
		}
	}

	index := make(map[string]int, len(table.Rows))
	out := make([]entity.Customer, 0, len(table.Rows))
	for _, row := range table.Rows {
		c := entity.Customer{
			CustomerID:   strings.TrimSpace(row.Values[colCustomerID]),
			CustomerName: strings.TrimSpace(row.Values[colCustomerName]),
			MobileNumber: strings.TrimSpace(row.Values[colMobileNumber]),
			Region:       strings.TrimSpace(row.Values[colRegion]),
		}
		for _, check := range []struct {
			col, value string
		}{
			{colCustomerID, c.CustomerID},
			{colCustomerName, c.CustomerName},
			{colMobileNumber, c.MobileNumber},
			{colRegion, c.Region},
		} {
			if check.value == "" {
				return nil, apperror.NewParseError(table.Source, row.Index, check.col, errEmptyValue)
			}
		}

		if i, ok := index[c.CustomerID]; ok {
			out[i] = c
			continue
		}
		index[c.CustomerID] = len(out)
		out = append(out, c)
	}
	return out, nil
}

// NormalizeOrders validates and converts a decoded order-lines table.
// Amounts are parsed as exact decimals and rounded to the two places the
// store column holds, so both analysis modes see identical numbers. The
// last occurrence of an (order_id, sku_id) pair wins.
func (n *Normalizer) NormalizeOrders(table *ingest.RawTable) ([]entity.OrderLine, error) {
	for _, col := range orderColumns {
		if !table.HasColumn(col) {
			return nil, apperror.NewSchemaError(table.Source, col)
		}
	}

	type orderKey struct{ orderID, skuID string }
	index := make(map[orderKey]int, len(table.Rows))
	out := make([]entity.OrderLine, 0, len(table.Rows))
	for _, row := range table.Rows {
		o := entity.OrderLine{
			OrderID:      strings.TrimSpace(row.Values[colOrderID]),
			SKUID:        strings.TrimSpace(row.Values[colSKUID]),
			MobileNumber: strings.TrimSpace(row.Values[colMobileNumber]),
		}
		for _, check := range []struct {
			col, value string
		}{
			{colOrderID, o.OrderID},
			{colSKUID, o.SKUID},
			{colMobileNumber, o.MobileNumber},
		} {
			if check.value == "" {
				return nil, apperror.NewParseError(table.Source, row.Index, check.col, errEmptyValue)
			}
		}

		when, err := n.parseDateTime(strings.TrimSpace(row.Values[colOrderDateTime]))
		if err != nil {
			return nil, apperror.NewParseError(table.Source, row.Index, colOrderDateTime, err)
		}
		o.OrderDateTime = when

		count, err := strconv.Atoi(strings.TrimSpace(row.Values[colSKUCount]))
		if err != nil {
			return nil, apperror.NewParseError(table.Source, row.Index, colSKUCount, err)
		}
		if count < 0 {
			return nil, apperror.NewParseError(table.Source, row.Index, colSKUCount, errNegative)
		}
		o.SKUCount = count

		amount, err := decimal.NewFromString(strings.TrimSpace(row.Values[colTotalAmount]))
		if err != nil {
			return nil, apperror.NewParseError(table.Source, row.Index, colTotalAmount, err)
		}
		if amount.IsNegative() {
			return nil, apperror.NewParseError(table.Source, row.Index, colTotalAmount, errNegative)
		}
		o.TotalAmount = amount.Round(2)

		key := orderKey{o.OrderID, o.SKUID}
		if i, ok := index[key]; ok {
			out[i] = o
			continue
		}
		index[key] = len(out)
		out = append(out, o)
	}
	return out, nil
}

func (n *Normalizer) parseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, n.loc); err == nil {
			return t.In(n.loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", value)
}
