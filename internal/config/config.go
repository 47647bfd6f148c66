package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Upload     UploadConfig
	CORS       CORSConfig
	Estimate   EstimateConfig
	Classifier ClassifierConfig
	Store      StoreConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UploadConfig holds upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EstimateConfig holds the line-item parsing and summary settings.
type EstimateConfig struct {
	// MarkupPercent is the overhead & profit rate applied on recomputation.
	MarkupPercent float64 `mapstructure:"markup_percent"`
	// TaxPercent is the sales tax rate applied on recomputation.
	TaxPercent       float64 `mapstructure:"tax_percent"`
	SummaryStrategy  string  `mapstructure:"summary_strategy"`
	DefaultAgeLife   string  `mapstructure:"default_age_life"`
	DefaultCondition string  `mapstructure:"default_condition"`
}

// ClassifierConfig holds the keyword lists per category. Lists are checked in
// the order Labor, Materials, Equipment, OverheadAndProfit.
type ClassifierConfig struct {
	Labor             []string `mapstructure:"labor_keywords"`
	Materials         []string `mapstructure:"materials_keywords"`
	Equipment         []string `mapstructure:"equipment_keywords"`
	OverheadAndProfit []string `mapstructure:"overhead_keywords"`
}

// StoreConfig bounds the in-memory document and report store.
type StoreConfig struct {
	TTL        time.Duration `mapstructure:"ttl"`
	MaxEntries int           `mapstructure:"max_entries"`
}

// Default keyword lists (roofing-trade set).
const (
	DefaultLaborKeywords     = "tear off,prime,paint,labor"
	DefaultMaterialsKeywords = "shingle,felt,flashing,vent,cap,drip edge"
	DefaultEquipmentKeywords = "equipment,rental"
	DefaultOverheadKeywords  = "overhead,profit"
)

// Load reads configuration from environment variables with the XACTDIFF_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("XACTDIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Estimate defaults
	v.SetDefault("estimate.markup_percent", 20.0)
	v.SetDefault("estimate.tax_percent", 7.0)
	v.SetDefault("estimate.summary_strategy", "recompute")
	v.SetDefault("estimate.default_age_life", "10/25 yrs")
	v.SetDefault("estimate.default_condition", "Avg.")

	// Classifier defaults
	v.SetDefault("classifier.labor_keywords", DefaultLaborKeywords)
	v.SetDefault("classifier.materials_keywords", DefaultMaterialsKeywords)
	v.SetDefault("classifier.equipment_keywords", DefaultEquipmentKeywords)
	v.SetDefault("classifier.overhead_keywords", DefaultOverheadKeywords)

	// Store defaults
	v.SetDefault("store.ttl", "2h")
	v.SetDefault("store.max_entries", 500)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                   "XACTDIFF_SERVER_PORT",
		"server.read_timeout":           "XACTDIFF_SERVER_READ_TIMEOUT",
		"server.write_timeout":          "XACTDIFF_SERVER_WRITE_TIMEOUT",
		"server.environment":            "XACTDIFF_SERVER_ENVIRONMENT",
		"log.level":                     "XACTDIFF_LOG_LEVEL",
		"log.format":                    "XACTDIFF_LOG_FORMAT",
		"upload.max_file_size_mb":       "XACTDIFF_UPLOAD_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":          "XACTDIFF_CORS_ALLOWED_ORIGINS",
		"estimate.markup_percent":       "XACTDIFF_ESTIMATE_MARKUP_PERCENT",
		"estimate.tax_percent":          "XACTDIFF_ESTIMATE_TAX_PERCENT",
		"estimate.summary_strategy":     "XACTDIFF_ESTIMATE_SUMMARY_STRATEGY",
		"estimate.default_age_life":     "XACTDIFF_ESTIMATE_DEFAULT_AGE_LIFE",
		"estimate.default_condition":    "XACTDIFF_ESTIMATE_DEFAULT_CONDITION",
		"classifier.labor_keywords":     "XACTDIFF_CLASSIFIER_LABOR_KEYWORDS",
		"classifier.materials_keywords": "XACTDIFF_CLASSIFIER_MATERIALS_KEYWORDS",
		"classifier.equipment_keywords": "XACTDIFF_CLASSIFIER_EQUIPMENT_KEYWORDS",
		"classifier.overhead_keywords":  "XACTDIFF_CLASSIFIER_OVERHEAD_KEYWORDS",
		"store.ttl":                     "XACTDIFF_STORE_TTL",
		"store.max_entries":             "XACTDIFF_STORE_MAX_ENTRIES",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if XACTDIFF_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("XACTDIFF_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Estimate = EstimateConfig{
		MarkupPercent:    v.GetFloat64("estimate.markup_percent"),
		TaxPercent:       v.GetFloat64("estimate.tax_percent"),
		SummaryStrategy:  v.GetString("estimate.summary_strategy"),
		DefaultAgeLife:   v.GetString("estimate.default_age_life"),
		DefaultCondition: v.GetString("estimate.default_condition"),
	}
	cfg.Classifier = ClassifierConfig{
		Labor:             splitList(v.GetString("classifier.labor_keywords")),
		Materials:         splitList(v.GetString("classifier.materials_keywords")),
		Equipment:         splitList(v.GetString("classifier.equipment_keywords")),
		OverheadAndProfit: splitList(v.GetString("classifier.overhead_keywords")),
	}
	cfg.Store = StoreConfig{
		TTL:        v.GetDuration("store.ttl"),
		MaxEntries: v.GetInt("store.max_entries"),
	}

	return cfg, nil
}

// DefaultClassifierConfig returns the built-in keyword lists.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Labor:             splitList(DefaultLaborKeywords),
		Materials:         splitList(DefaultMaterialsKeywords),
		Equipment:         splitList(DefaultEquipmentKeywords),
		OverheadAndProfit: splitList(DefaultOverheadKeywords),
	}
}

// splitList parses a comma-separated string, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
