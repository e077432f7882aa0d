package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaseenahmed1407/AkasaAir/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "akasa-analytics", cfg.App.Name)
	assert.Equal(t, "INFO", cfg.App.LogLevel)
	assert.Equal(t, config.ModeMemory, cfg.Analytics.Mode)
	assert.Equal(t, "Asia/Kolkata", cfg.Analytics.Timezone)
	assert.Equal(t, 30, cfg.Analytics.WindowDays)
	assert.Equal(t, 10, cfg.Analytics.TopCustomers)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, "AkasaAir", cfg.Database.Name)
	assert.Equal(t, "task_DE_new_customers.csv", cfg.Input.CustomersFile)
	assert.Equal(t, "task_DE_new_orders.xml", cfg.Input.OrdersFile)
	assert.Equal(t, "", cfg.Report.Dir)
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("ANALYTICS_MODE", "db")
	t.Setenv("ANALYTICS_WINDOW_DAYS", "7")
	t.Setenv("ANALYTICS_TOP_CUSTOMERS", "3")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REPORT_DIR", "out")

	cfg := config.Load()

	assert.Equal(t, config.ModeDB, cfg.Analytics.Mode)
	assert.Equal(t, 7, cfg.Analytics.WindowDays)
	assert.Equal(t, 3, cfg.Analytics.TopCustomers)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "out", cfg.Report.Dir)
}

func TestDSNShape(t *testing.T) {
	db := config.DatabaseConfig{
		Host:     "localhost",
		Port:     "3306",
		Name:     "AkasaAir",
		User:     "root",
		Password: "secret",
	}

	assert.Equal(t,
		"root:secret@tcp(localhost:3306)/AkasaAir?charset=utf8mb4&parseTime=True&loc=Local",
		db.DSN())
}

func TestLocationResolves(t *testing.T) {
	a := config.AnalyticsConfig{Timezone: "UTC"}
	loc, err := a.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	bad := config.AnalyticsConfig{Timezone: "Nowhere/AtAll"}
	_, err = bad.Location()
	assert.Error(t, err)
}
