package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivanandz/luminila-ERP-sub002/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "luminila_db", cfg.DB.Name)
	assert.Equal(t, "27", cfg.Tax.SellerStateCode)
	assert.Equal(t, "7113", cfg.Tax.DefaultHSNCode)
	assert.Equal(t, "3", cfg.Tax.DefaultGSTRate.String())
	assert.Equal(t, "50000", cfg.Tax.EWayBillThreshold.String())
	assert.False(t, cfg.Tax.RoundPurchaseOrders)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LUMINILA_TAX_SELLER_STATE_CODE", "29")
	t.Setenv("LUMINILA_TAX_DEFAULT_GST_RATE", "18")
	t.Setenv("LUMINILA_TAX_ROUND_PURCHASE_ORDERS", "true")
	t.Setenv("LUMINILA_DB_NAME", "luminila_test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "29", cfg.Tax.SellerStateCode)
	assert.Equal(t, "18", cfg.Tax.DefaultGSTRate.String())
	assert.True(t, cfg.Tax.RoundPurchaseOrders)
	assert.Equal(t, "luminila_test", cfg.DB.Name)
}

func TestLoad_InvalidRateRejected(t *testing.T) {
	t.Setenv("LUMINILA_TAX_DEFAULT_GST_RATE", "not-a-number")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_gst_rate")
}

func TestDSN(t *testing.T) {
	cfg := config.DBConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "d", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/d?sslmode=disable", cfg.DSN())
}
