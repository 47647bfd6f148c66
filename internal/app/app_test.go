package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xactdiff/internal/app"
	"xactdiff/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	a, err := app.New(cfg)
	require.NoError(t, err)
	assert.NotNil(t, a.Estimates)
	assert.NotNil(t, a.Comparisons)
}

func TestNew_InvalidSummaryStrategy(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Estimate.SummaryStrategy = "guess"

	_, err = app.New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "guess")
}

func TestNew_NonPositiveUploadLimit(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Upload.MaxFileSizeMB = 0

	_, err = app.New(cfg)
	assert.Error(t, err)
}
