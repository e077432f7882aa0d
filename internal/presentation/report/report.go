// Package report renders a KPI report for people (aligned console tables)
// and for files (timestamped JSON and CSV exports).
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/kpi"
)

// Column headers, spelled like the underlying fields so console, CSV and
// JSON output all agree.
var (
	repeatHeader   = []string{"customer_id", "customer_name", "order_count"}
	monthlyHeader  = []string{"month", "total_orders", "total_revenue", "unique_customers"}
	regionalHeader = []string{"region", "total_orders", "total_revenue", "unique_customers", "avg_order_value"}
	topHeader      = []string{"customer_id", "customer_name", "region", "order_count", "total_spend"}
)

// Renderer writes the four KPI tables as aligned text.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(w io.Writer, rep *kpi.Report) error {
	fmt.Fprintf(w, "Analysis run %s at %s\n", rep.RunID, rep.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	sections := []struct {
		title  string
		header []string
		rows   [][]string
	}{
		{"Repeat Customers", repeatHeader, repeatRows(rep.RepeatCustomers)},
		{"Monthly Order Trends", monthlyHeader, monthlyRows(rep.MonthlyTrends)},
		{"Regional Revenue", regionalHeader, regionalRows(rep.RegionalRevenue)},
		{fmt.Sprintf("Top Customers (Last %d Days)", rep.WindowDays), topHeader, topRows(rep.TopCustomers)},
	}
	for _, s := range sections {
		if err := renderSection(w, s.title, s.header, s.rows); err != nil {
			return err
		}
	}
	return nil
}

func renderSection(w io.Writer, title string, header []string, rows [][]string) error {
	if _, err := fmt.Fprintf(w, "\n=== %s ===\n", title); err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeRow(tw, header)
	for _, row := range rows {
		writeRow(tw, row)
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}

func repeatRows(rows []kpi.RepeatCustomerRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.CustomerID, r.CustomerName, strconv.Itoa(r.OrderCount)})
	}
	return out
}

func monthlyRows(rows []kpi.MonthlyTrendRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Month,
			strconv.Itoa(r.TotalOrders),
			r.TotalRevenue.StringFixed(2),
			strconv.Itoa(r.UniqueCustomers),
		})
	}
	return out
}

func regionalRows(rows []kpi.RegionalRevenueRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Region,
			strconv.Itoa(r.TotalOrders),
			r.TotalRevenue.StringFixed(2),
			strconv.Itoa(r.UniqueCustomers),
			strconv.FormatFloat(r.AvgOrderValue, 'f', 2, 64),
		})
	}
	return out
}

func topRows(rows []kpi.TopCustomerRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.CustomerID,
			r.CustomerName,
			r.Region,
			strconv.Itoa(r.OrderCount),
			r.TotalSpend.StringFixed(2),
		})
	}
	return out
}
