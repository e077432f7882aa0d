package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaseenahmed1407/AkasaAir/internal/domain/kpi"
)

// ExportJSON writes the whole report as one indented JSON file in dir and
// returns its path. The filename carries the run's reference time, so every
// run leaves its own file.
func ExportJSON(dir string, rep *kpi.Report) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	path := filepath.Join(dir, timestampedName("kpi_report", rep, "json"))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return "", fmt.Errorf("failed to write JSON: %w", err)
	}
	return path, nil
}

// ExportCSV writes one CSV file per KPI table in dir and returns the paths.
func ExportCSV(dir string, rep *kpi.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	tables := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"repeat_customers", repeatHeader, repeatRows(rep.RepeatCustomers)},
		{"monthly_trends", monthlyHeader, monthlyRows(rep.MonthlyTrends)},
		{"regional_revenue", regionalHeader, regionalRows(rep.RegionalRevenue)},
		{"top_customers", topHeader, topRows(rep.TopCustomers)},
	}

	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path := filepath.Join(dir, timestampedName(t.name, rep, "csv"))
		if err := writeCSV(path, t.header, t.rows); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func timestampedName(name string, rep *kpi.Report, ext string) string {
	return fmt.Sprintf("%s_%s.%s", name, rep.GeneratedAt.Format("20060102_150405"), ext)
}
