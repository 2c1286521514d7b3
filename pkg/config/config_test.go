package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-movement-report/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	// Viper trata las variables vacías como no definidas.
	t.Setenv("REPORT_BALANCE_MODE", "")
	t.Setenv("REPORT_DEFAULT_FORMAT", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "latest", cfg.Report.BalanceMode)
	assert.Equal(t, "xlsx", cfg.Report.DefaultFormat)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "p@ss/word")
	t.Setenv("REPORT_BALANCE_MODE", "SUM_LOCATIONS")
	t.Setenv("REPORT_DEFAULT_FORMAT", "pdf")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "sum_locations", cfg.Report.BalanceMode)
	assert.Equal(t, "pdf", cfg.Report.DefaultFormat)
	assert.Contains(t, cfg.DB.ConnectionString(), "db.internal:5432")
	assert.Contains(t, cfg.DB.ConnectionString(), "p%40ss%2Fword", "la contraseña debe ir codificada")
}

func TestLoad_ModoInvalido(t *testing.T) {
	t.Setenv("REPORT_BALANCE_MODE", "fifo")
	t.Setenv("REPORT_DEFAULT_FORMAT", "xlsx")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_BALANCE_MODE")
}

func TestDBConfig_DatabaseURLTienePrioridad(t *testing.T) {
	c := config.DBConfig{DatabaseURL: "postgres://u:p@h:1/db", Host: "otro"}
	assert.Equal(t, "postgres://u:p@h:1/db", c.ConnectionString())
}

func TestHTTPConfig_Addr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", config.HTTPConfig{Host: "127.0.0.1", Port: 8080}.Addr())
}
