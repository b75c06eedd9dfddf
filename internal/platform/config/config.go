package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/invoice_reporting/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Browser origins allowed to call the API. Empty means all origins.
	CORSAllowedOrigins []string
	// Per-IP rate in limiter format, e.g. "100-M".
	RateLimit string

	// Zone whose midnight starts reporting periods.
	Timezone string
	Location *time.Location

	YearOptionsBack int
	DateRangeLayout string
	NumberFormat    domain.NumberFormat
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("YEAR_OPTIONS_BACK", 5)
	viper.SetDefault("DATE_RANGE_LAYOUT", domain.DisplayDateLayout)
	viper.SetDefault("NUMBER_GROUP_SEPARATOR", domain.EnUSNumberFormat.GroupSeparator)
	viper.SetDefault("NUMBER_DECIMAL_SEPARATOR", domain.EnUSNumberFormat.DecimalSeparator)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "300-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	cfg.Timezone = viper.GetString("TIMEZONE")
	cfg.Location = loadLocation(cfg.Timezone)

	cfg.YearOptionsBack = viper.GetInt("YEAR_OPTIONS_BACK")
	if cfg.YearOptionsBack < 0 {
		log.Printf("Warning: Invalid value for YEAR_OPTIONS_BACK (%d). Defaulting to 5.\n", cfg.YearOptionsBack)
		cfg.YearOptionsBack = 5
	}

	cfg.DateRangeLayout = viper.GetString("DATE_RANGE_LAYOUT")
	if cfg.DateRangeLayout == "" {
		cfg.DateRangeLayout = domain.DisplayDateLayout
	}

	cfg.NumberFormat = domain.NumberFormat{
		GroupSeparator:   viper.GetString("NUMBER_GROUP_SEPARATOR"),
		DecimalSeparator: viper.GetString("NUMBER_DECIMAL_SEPARATOR"),
	}
	if cfg.NumberFormat.DecimalSeparator == "" {
		log.Println("Warning: NUMBER_DECIMAL_SEPARATOR is empty. Using en-US number format.")
		cfg.NumberFormat = domain.EnUSNumberFormat
	}

	return cfg, nil
}

func loadLocation(name string) *time.Location {
	if name == "" || strings.EqualFold(name, "Local") {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: Invalid value for TIMEZONE ('%s'). Defaulting to local time.\n", name)
		return time.Local
	}
	return loc
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
