package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Analysis modes. Memory mode computes KPIs straight from the decoded
// files; db mode persists the batch first and computes from the store.
const (
	ModeMemory = "memory"
	ModeDB     = "db"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Analytics AnalyticsConfig
	Input     InputConfig
	Report    ReportConfig
}

type AppConfig struct {
	Name     string
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type AnalyticsConfig struct {
	Mode         string
	Timezone     string
	WindowDays   int
	TopCustomers int
}

type InputConfig struct {
	CustomersFile string
	OrdersFile    string
}

type ReportConfig struct {
	Dir string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "akasa-analytics")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_NAME", "AkasaAir")
	viper.SetDefault("DB_USER", "root")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("ANALYTICS_MODE", ModeMemory)
	viper.SetDefault("ANALYTICS_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("ANALYTICS_WINDOW_DAYS", 30)
	viper.SetDefault("ANALYTICS_TOP_CUSTOMERS", 10)
	viper.SetDefault("CUSTOMERS_FILE", "task_DE_new_customers.csv")
	viper.SetDefault("ORDERS_FILE", "task_DE_new_orders.xml")
	viper.SetDefault("REPORT_DIR", "")

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
		},
		Analytics: AnalyticsConfig{
			Mode:         viper.GetString("ANALYTICS_MODE"),
			Timezone:     viper.GetString("ANALYTICS_TIMEZONE"),
			WindowDays:   viper.GetInt("ANALYTICS_WINDOW_DAYS"),
			TopCustomers: viper.GetInt("ANALYTICS_TOP_CUSTOMERS"),
		},
		Input: InputConfig{
			CustomersFile: viper.GetString("CUSTOMERS_FILE"),
			OrdersFile:    viper.GetString("ORDERS_FILE"),
		},
		Report: ReportConfig{
			Dir: viper.GetString("REPORT_DIR"),
		},
	}
}

// DSN builds the MySQL connection string for the configured database.
func (c *DatabaseConfig) DSN() string {
	return c.User + ":" + c.Password +
		"@tcp(" + c.Host + ":" + c.Port + ")/" + c.Name +
		"?charset=utf8mb4&parseTime=True&loc=Local"
}

// Location resolves the configured analysis timezone.
func (c *AnalyticsConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
