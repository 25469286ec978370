package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/bayesgrid/bridge"
	"github.com/katalvlaran/bayesgrid/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var globeModel = filepath.Join("..", "..", "model", "testdata", "globe.yaml")

// execute runs the command tree with args and returns stdout.
func execute(t *testing.T, cfg config.Env, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--quiet"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

//----------------------------------------------------------------------------//
// run
//----------------------------------------------------------------------------//

// TestRun_Table prints the header and one row for p.
func TestRun_Table(t *testing.T) {
	out, err := execute(t, config.Env{}, "", "run", globeModel, "--draws", "2000")
	require.NoError(t, err)

	assert.Contains(t, out, "model globe-tossing (run ")
	assert.Contains(t, out, "grid cells: 1000  draws: 2000  seed: 100")
	assert.Contains(t, out, "89% HDI")
	assert.Contains(t, out, "0.6667", "MAP column")
}

// TestRun_JSONAndArtifacts decodes the JSON result and checks the saved
// draws and plots.
func TestRun_JSONAndArtifacts(t *testing.T) {
	dir := t.TempDir()
	trace := filepath.Join(dir, "draws.csv")
	out, err := execute(t, config.Env{Seed: 7}, "", "run", globeModel,
		"--draws", "500", "--json", "--width", "0.8", "--plots", dir, "--save-draws", trace)
	require.NoError(t, err)

	var res struct {
		Name       string `json:"name"`
		Draws      int    `json:"draws"`
		Seed       uint64 `json:"seed"`
		Parameters []struct {
			Name    string `json:"name"`
			Summary struct {
				N         int `json:"n"`
				Intervals []struct {
					Width float64 `json:"width"`
				} `json:"intervals"`
			} `json:"summary"`
		} `json:"parameters"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "globe-tossing", res.Name)
	assert.Equal(t, 500, res.Draws)
	assert.Equal(t, uint64(7), res.Seed, "environment seed overrides the file")
	require.Len(t, res.Parameters, 1)
	assert.Equal(t, 500, res.Parameters[0].Summary.N)
	require.Len(t, res.Parameters[0].Summary.Intervals, 2)
	assert.Equal(t, 0.8, res.Parameters[0].Summary.Intervals[0].Width)

	f, err := os.Open(trace)
	require.NoError(t, err)
	defer f.Close()
	tr, err := bridge.ReadCSV(f)
	require.NoError(t, err)
	p, err := tr.Draws(context.Background(), "p")
	require.NoError(t, err)
	assert.Len(t, p, 500)

	assert.FileExists(t, filepath.Join(dir, "globe-tossing_p_posterior.png"))
	assert.FileExists(t, filepath.Join(dir, "globe-tossing_p_draws.png"))
}

// TestRun_ExampleModels runs every model shipped under examples/models.
func TestRun_ExampleModels(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "models", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			out, err := execute(t, config.Env{}, "", "run", path, "--draws", "300", "--workers", "2")
			require.NoError(t, err)
			assert.Contains(t, out, "draws: 300")
		})
	}
}

// TestRun_Errors covers a missing file and a wrong argument count.
func TestRun_Errors(t *testing.T) {
	_, err := execute(t, config.Env{}, "", "run", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, config.Env{}, "", "run")
	assert.Error(t, err)
}

//----------------------------------------------------------------------------//
// summarize
//----------------------------------------------------------------------------//

const trace = `chain,mu,sigma
0,1,10
0,2,11
1,3,12
1,4,13
`

// TestSummarize_Stdin reads a trace from stdin and summarizes every column.
func TestSummarize_Stdin(t *testing.T) {
	out, err := execute(t, config.Env{}, trace, "summarize", "-", "--width", "0.5")
	require.NoError(t, err)

	assert.Contains(t, out, "50% PI")
	assert.Contains(t, out, "50% HDI")
	assert.Contains(t, out, "mu")
	assert.Contains(t, out, "sigma")
	assert.Contains(t, out, "2.5000", "mean of mu")
}

// TestSummarize_JSONParam selects one parameter from a file.
func TestSummarize_JSONParam(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, os.WriteFile(path, []byte(trace), 0o644))

	out, err := execute(t, config.Env{Widths: []float64{0.5}}, "", "summarize", path, "--param", "sigma", "--json")
	require.NoError(t, err)

	var got []paramSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "sigma", got[0].Name)
	assert.Equal(t, 4, got[0].Summary.N)
	assert.Equal(t, 11.5, got[0].Summary.Mean)
	assert.Len(t, got[0].Summary.Intervals, 2)
}

// TestSummarize_Errors reports unknown parameters and malformed traces.
func TestSummarize_Errors(t *testing.T) {
	_, err := execute(t, config.Env{}, trace, "summarize", "-", "--param", "tau")
	assert.ErrorIs(t, err, bridge.ErrUnknownParameter)

	_, err = execute(t, config.Env{}, "p\nnot-a-number\n", "summarize", "-")
	assert.ErrorIs(t, err, bridge.ErrMalformedTrace)
}
