package report_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/kpi"
	"github.com/yaseenahmed1407/AkasaAir/internal/presentation/report"
)

func sampleReport() *kpi.Report {
	return &kpi.Report{
		RunID:       "abc12345",
		GeneratedAt: time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC),
		WindowDays:  30,
		RepeatCustomers: []kpi.RepeatCustomerRow{
			{CustomerID: "C001", CustomerName: "Alice", OrderCount: 2},
		},
		MonthlyTrends: []kpi.MonthlyTrendRow{
			{Month: "2024-06", TotalOrders: 1, TotalRevenue: decimal.RequireFromString("149.99"), UniqueCustomers: 1},
			{Month: "2024-07", TotalOrders: 4, TotalRevenue: decimal.RequireFromString("1527.78"), UniqueCustomers: 4},
		},
		RegionalRevenue: []kpi.RegionalRevenueRow{
			{Region: "North", TotalOrders: 3, TotalRevenue: decimal.RequireFromString("600.00"), UniqueCustomers: 2, AvgOrderValue: 200},
		},
		TopCustomers: nil,
	}
}

func TestRenderWritesAllFourSections(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.NewRenderer().Render(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Analysis run abc12345")
	assert.Contains(t, out, "=== Repeat Customers ===")
	assert.Contains(t, out, "=== Monthly Order Trends ===")
	assert.Contains(t, out, "=== Regional Revenue ===")
	assert.Contains(t, out, "=== Top Customers (Last 30 Days) ===")
	assert.Contains(t, out, "customer_id")
	assert.Contains(t, out, "C001")
	assert.Contains(t, out, "149.99")
	assert.Contains(t, out, "200.00") // avg order value rendered with two places
	assert.Contains(t, out, "(none)") // empty top customers table
}

func TestExportJSONRoundTrips(t *testing.T) {
	dir := t.TempDir()
	rep := sampleReport()

	path, err := report.ExportJSON(dir, rep)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "kpi_report_20240715_120000.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded kpi.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "abc12345", decoded.RunID)
	require.Len(t, decoded.MonthlyTrends, 2)
	assert.True(t, decoded.MonthlyTrends[0].TotalRevenue.Equal(decimal.RequireFromString("149.99")))
}

func TestExportCSVWritesOneFilePerTable(t *testing.T) {
	dir := t.TempDir()

	paths, err := report.ExportCSV(dir, sampleReport())

	require.NoError(t, err)
	require.Len(t, paths, 4)
	assert.Equal(t, filepath.Join(dir, "repeat_customers_20240715_120000.csv"), paths[0])

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"customer_id", "customer_name", "order_count"}, records[0])
	assert.Equal(t, []string{"C001", "Alice", "2"}, records[1])

	// Empty table still gets a file with just the header.
	f2, err := os.Open(paths[3])
	require.NoError(t, err)
	defer f2.Close()
	records, err = csv.NewReader(f2).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "customer_id", records[0][0])
}

func TestExportJSONCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "reports")

	_, err := report.ExportJSON(dir, sampleReport())

	require.NoError(t, err)
	_, statErr := os.Stat(dir)
	assert.NoError(t, statErr)
}
