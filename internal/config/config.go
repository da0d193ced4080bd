package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Tax    TaxConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
	// MaxLifetimeMin bounds how long a pooled connection is reused, in
	// minutes. Zero disables the bound.
	MaxLifetimeMin int `mapstructure:"max_lifetime_min"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT verification settings for the API.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TaxConfig holds the store's tax identity and rate defaults. Injecting these
// keeps the engine testable against other jurisdictions and rate regimes.
type TaxConfig struct {
	SellerName          string          `mapstructure:"seller_name"`
	SellerGSTIN         string          `mapstructure:"seller_gstin"`
	SellerStateCode     string          `mapstructure:"seller_state_code"`
	DefaultGSTRate      decimal.Decimal `mapstructure:"-"`
	DefaultHSNCode      string          `mapstructure:"default_hsn_code"`
	EWayBillThreshold   decimal.Decimal `mapstructure:"-"`
	RoundPurchaseOrders bool            `mapstructure:"round_purchase_orders"`
}

// Load reads configuration from environment variables with the LUMINILA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LUMINILA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "luminila")
	v.SetDefault("db.password", "luminila_secret")
	v.SetDefault("db.name", "luminila_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)
	v.SetDefault("db.max_lifetime_min", 30)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "luminila")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Tax defaults: Maharashtra jeweller profile, 3% GST on jewellery,
	// statutory 50k e-way bill threshold.
	v.SetDefault("tax.seller_name", "Luminila Jewellers")
	v.SetDefault("tax.seller_gstin", "")
	v.SetDefault("tax.seller_state_code", "27")
	v.SetDefault("tax.default_gst_rate", "3")
	v.SetDefault("tax.default_hsn_code", "7113")
	v.SetDefault("tax.eway_bill_threshold", "50000")
	v.SetDefault("tax.round_purchase_orders", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "LUMINILA_SERVER_PORT",
		"server.read_timeout":       "LUMINILA_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "LUMINILA_SERVER_WRITE_TIMEOUT",
		"server.environment":        "LUMINILA_SERVER_ENVIRONMENT",
		"db.host":                   "LUMINILA_DB_HOST",
		"db.port":                   "LUMINILA_DB_PORT",
		"db.user":                   "LUMINILA_DB_USER",
		"db.password":               "LUMINILA_DB_PASSWORD",
		"db.name":                   "LUMINILA_DB_NAME",
		"db.sslmode":                "LUMINILA_DB_SSLMODE",
		"db.max_open":               "LUMINILA_DB_MAX_OPEN",
		"db.max_idle":               "LUMINILA_DB_MAX_IDLE",
		"db.max_lifetime_min":       "LUMINILA_DB_MAX_LIFETIME_MIN",
		"jwt.secret":                "LUMINILA_JWT_SECRET",
		"jwt.issuer":                "LUMINILA_JWT_ISSUER",
		"log.level":                 "LUMINILA_LOG_LEVEL",
		"log.format":                "LUMINILA_LOG_FORMAT",
		"cors.allowed_origins":      "LUMINILA_CORS_ALLOWED_ORIGINS",
		"tax.seller_name":           "LUMINILA_TAX_SELLER_NAME",
		"tax.seller_gstin":          "LUMINILA_TAX_SELLER_GSTIN",
		"tax.seller_state_code":     "LUMINILA_TAX_SELLER_STATE_CODE",
		"tax.default_gst_rate":      "LUMINILA_TAX_DEFAULT_GST_RATE",
		"tax.default_hsn_code":      "LUMINILA_TAX_DEFAULT_HSN_CODE",
		"tax.eway_bill_threshold":   "LUMINILA_TAX_EWAY_BILL_THRESHOLD",
		"tax.round_purchase_orders": "LUMINILA_TAX_ROUND_PURCHASE_ORDERS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LUMINILA_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LUMINILA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:           v.GetString("db.host"),
		Port:           v.GetInt("db.port"),
		User:           v.GetString("db.user"),
		Password:       v.GetString("db.password"),
		Name:           v.GetString("db.name"),
		SSLMode:        v.GetString("db.sslmode"),
		MaxOpen:        v.GetInt("db.max_open"),
		MaxIdle:        v.GetInt("db.max_idle"),
		MaxLifetimeMin: v.GetInt("db.max_lifetime_min"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	rate, err := decimal.NewFromString(v.GetString("tax.default_gst_rate"))
	if err != nil {
		return nil, fmt.Errorf("invalid tax.default_gst_rate: %w", err)
	}
	threshold, err := decimal.NewFromString(v.GetString("tax.eway_bill_threshold"))
	if err != nil {
		return nil, fmt.Errorf("invalid tax.eway_bill_threshold: %w", err)
	}
	cfg.Tax = TaxConfig{
		SellerName:          v.GetString("tax.seller_name"),
		SellerGSTIN:         v.GetString("tax.seller_gstin"),
		SellerStateCode:     v.GetString("tax.seller_state_code"),
		DefaultGSTRate:      rate,
		DefaultHSNCode:      v.GetString("tax.default_hsn_code"),
		EWayBillThreshold:   threshold,
		RoundPurchaseOrders: v.GetBool("tax.round_purchase_orders"),
	}

	return cfg, nil
}
