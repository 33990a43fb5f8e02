package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gnn "github.com/rmera/gognn"
	"github.com/rmera/gognn/chemjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runLog(t, stdin, args...)
	return out, err
}

// runLog is run, but also returns what was written to the standard error.
func runLog(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestExponentCmd(t *testing.T) {
	out, err := run(t, "", "exponent", "8", "2p")
	require.NoError(t, err)
	assert.Equal(t, "O 8 2p 2.2266\n", out)

	out, err = run(t, "", "exponent", "h")
	require.NoError(t, err)
	assert.Equal(t, "H 1 1s 1.6875\n", out)

	_, err = run(t, "", "exponent", "87")
	assert.Error(t, err)
	_, err = run(t, "", "exponent", "8", "7z")
	assert.Error(t, err)
}

func TestInitPredict(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("node_dim: 8\nedge_filter_dim: 8\nhidden_dim: 8\nn_gaussian: 5\nout_dim: 2\nseed: 3\n"), 0o644))
	weights := filepath.Join(dir, "w.zst")
	_, err := run(t, "", "init", "--config", cfg, "--out", weights)
	require.NoError(t, err)

	input := `{"Name": "water", "Symbols": ["O", "H", "H"], "Coords": [0, 0, 0, 0.9572, 0, 0, -0.24, 0.9266, 0]}
{"Name": "h2", "Symbols": ["H", "H"], "Coords": [0, 0, 0, 0.74, 0, 0]}
{"Name": "water again", "Symbols": ["O", "H", "H"], "Coords": [0, 0, 0, 0.9572, 0, 0, -0.24, 0.9266, 0]}
`
	//one structure per batch, so the batches run concurrently.
	out, err := run(t, input, "predict", "--weights", weights, "--chunk", "1", "--workers", "2")
	require.NoError(t, err)
	info := new(chemjson.Info)
	require.NoError(t, json.Unmarshal([]byte(out), info))
	assert.Equal(t, 3, info.Structures)
	require.Len(t, info.Properties, 3)
	assert.Len(t, info.Properties[0], 2)
	assert.Equal(t, info.Properties[0], info.Properties[2])

	//same model, all in one batch, and built from the configuration file.
	out2, err := run(t, input, "predict", "--weights", weights, "--config", cfg)
	require.NoError(t, err)
	info2 := new(chemjson.Info)
	require.NoError(t, json.Unmarshal([]byte(out2), info2))
	for i := range info.Properties {
		assert.InDeltaSlice(t, info.Properties[i], info2.Properties[i], 1e-9)
	}

	//the lone atom of the last structure receives no messages.
	_, log, err := runLog(t, input+`{"Name": "he", "Symbols": ["He"], "Coords": [0, 0, 0]}`, "predict", "--verbose", "--weights", weights)
	require.NoError(t, err)
	assert.Contains(t, log, "gognn: batch graph")
	assert.Contains(t, log, "max_neighbors=2")
	assert.Contains(t, log, "isolated=1")

	_, err = run(t, input, "predict")
	assert.Error(t, err, "weights are required")
	_, err = run(t, "{}", "predict", "--weights", weights)
	assert.Error(t, err)
}

func TestScalerCmd(t *testing.T) {
	out, err := run(t, "[[1, 5], [2, 5], [3, 5], [4, 5]]", "scaler")
	require.NoError(t, err)
	cfg, err := gnn.ParseConfig([]byte(out))
	require.NoError(t, err)
	require.NotNil(t, cfg.Scaler)
	assert.InDelta(t, 2.5, cfg.Scaler.Mean[0], 1e-12)
	assert.Equal(t, 1.0, cfg.Scaler.Stddev[1])

	_, err = run(t, "[[1, 2], [3]]", "scaler")
	assert.Error(t, err)
	_, err = run(t, "[]", "scaler")
	assert.Error(t, err)
}
