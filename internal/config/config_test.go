package config_test

import (
	"testing"

	"github.com/katalvlaran/bayesgrid/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	e, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, config.Env{}, e)
}

func TestLoadFrom_Values(t *testing.T) {
	e, err := config.LoadFrom(map[string]string{
		"BAYESGRID_SEED":     "42",
		"BAYESGRID_DRAWS":    "500",
		"BAYESGRID_WORKERS":  "4",
		"BAYESGRID_PLOT_DIR": "/tmp/plots",
		"BAYESGRID_WIDTHS":   "0.5,0.89",
	})
	require.NoError(t, err)
	assert.Equal(t, config.Env{
		Seed: 42, Draws: 500, Workers: 4, PlotDir: "/tmp/plots", Widths: []float64{0.5, 0.89},
	}, e)
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"NotANumber":      {"BAYESGRID_DRAWS": "many"},
		"NegativeSeed":    {"BAYESGRID_SEED": "-1"},
		"NegativeDraws":   {"BAYESGRID_DRAWS": "-5"},
		"NegativeWorkers": {"BAYESGRID_WORKERS": "-2"},
		"WideWidth":       {"BAYESGRID_WIDTHS": "0.5,2"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFrom(vars)
			assert.Error(t, err)
		})
	}

	_, err := config.LoadFrom(map[string]string{"BAYESGRID_WORKERS": "-1"})
	assert.ErrorIs(t, err, config.ErrInvalidEnv)
}

func TestLoad_Process(t *testing.T) {
	t.Setenv("BAYESGRID_DRAWS", "123")
	e, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 123, e.Draws)
}
